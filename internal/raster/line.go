package raster

import "math"

// LineWidth draws a stroke of the given pen width from p0 to p1.
//
// Pixels are stepped with integer Bresenham along the major axis. At every
// stepped pixel a horizontal pass thickens the stroke while the truncated
// offset from the ideal line stays within delta, where delta is derived from
// width·sqrt(1+b²) and b = dx/dy uses truncating division. The truncation
// makes steep and shallow strokes differ in shape; callers depend on the
// exact pixels, so it is kept. A width that yields delta == 0 draws a plain
// one pixel Bresenham line.
func (img *Image) LineWidth(p0, p1 Point, width float64) {
	x1, y1 := p0.X, p0.Y
	x2, y2 := p1.X, p1.Y

	dx := x2 - x1
	ax := abs(dx * 2)
	sx := -1
	if dx > 0 {
		sx = 1
	}

	dy := y2 - y1
	ay := abs(dy * 2)
	sy := -1
	if dy > 0 {
		sy = 1
	}

	// Horizontal segments have no run over rise.
	b := 0
	if dy != 0 {
		b = dx / dy
	}
	double := int(width * math.Sqrt(float64(1+b*b)))

	total := func(px, py int) int {
		if dy == 0 {
			return px - x1
		}
		return px - (py*dx)/dy + (y1*dx)/dy - x1
	}

	x, y := x1, y1
	if ax > ay {
		delta := double / 2
		d := ay - ax/2
		for {
			img.Plot(x, y)
			img.thicken(x, y, delta, total)
			if x == x2 {
				return
			}
			if d >= 0 {
				y += sy
				d -= ax
			}
			x += sx
			d += ay
		}
	}

	delta := double / 3
	d := ax - ay/2
	for {
		img.Plot(x, y)
		img.thicken(x, y, delta, total)
		if y == y2 {
			return
		}
		if d >= 0 {
			x += sx
			d -= ay
		}
		y += sy
		d += ax
	}
}

// thicken extends row y left and right of x while total stays in [-delta, delta].
// The pixel that first leaves the band is still plotted.
func (img *Image) thicken(x, y, delta int, total func(px, py int) int) {
	if delta <= 0 {
		return
	}
	for px := x; ; {
		if t := total(px, y); t < -delta || t > delta {
			break
		}
		px++
		img.Plot(px, y)
	}
	for px := x; ; {
		if t := total(px, y); t < -delta || t > delta {
			break
		}
		px--
		img.Plot(px, y)
	}
}

// Polyline joins consecutive points with LineWidth strokes.
func (img *Image) Polyline(pts []Point, width float64) {
	for i := 1; i < len(pts); i++ {
		img.LineWidth(pts[i-1], pts[i], width)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
