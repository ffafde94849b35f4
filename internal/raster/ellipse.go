package raster

// AllQuadrants enables every quadrant of Ellipse.
var AllQuadrants = [4]bool{true, true, true, true}

// Ellipse draws a midpoint ellipse centered at c with semi-axes a and b.
// quadrants selects which of the four mirrored quarters are plotted, in
// order I (+x,+y), II (-x,+y), III (-x,-y), IV (+x,-y).
//
// width is accepted for symmetry with LineWidth but the curve is always one
// pixel wide.
func (img *Image) Ellipse(c Point, a, b int, quadrants [4]bool, width float64) {
	a, b = abs(a), abs(b)
	xm, ym := c.X, c.Y

	x := -a
	y := 0
	e2 := b
	dx := (1 + 2*x) * e2 * e2
	dy := x * x
	err := dx + dy
	for {
		if quadrants[0] {
			img.Plot(xm-x, ym+y)
		}
		if quadrants[1] {
			img.Plot(xm+x, ym+y)
		}
		if quadrants[2] {
			img.Plot(xm+x, ym-y)
		}
		if quadrants[3] {
			img.Plot(xm-x, ym-y)
		}
		e2 = 2 * err
		if e2 >= dx {
			x++
			dx += 2 * b * b
			err += dx
		}
		if e2 <= dy {
			y++
			dy += 2 * a * a
			err += dy
		}
		if x > 0 {
			break
		}
	}
	// Flat ellipses (a == 1) stop early; finish the tip.
	for y < b {
		y++
		img.Plot(xm, ym+y)
		img.Plot(xm, ym-y)
	}
}

// Circle draws a one pixel circle of radius r.
func (img *Image) Circle(c Point, r int, width float64) {
	img.Ellipse(c, r, r, AllQuadrants, width)
}
