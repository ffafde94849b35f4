package raster

// Square draws the outline of the square with corners c±(half, half).
func (img *Image) Square(c Point, half int, width float64) {
	tl := Pt(c.X-half, c.Y-half)
	tr := Pt(c.X+half, c.Y-half)
	br := Pt(c.X+half, c.Y+half)
	bl := Pt(c.X-half, c.Y+half)
	img.Polyline([]Point{tl, tr, br, bl, tl}, width)
}

// Triangle draws the outline of triangle abc.
func (img *Image) Triangle(a, b, c Point, width float64) {
	img.Polyline([]Point{a, b, c, a}, width)
}

// edgeFunc is a·x + b·y + c for the line through two vertices.
type edgeFunc struct {
	a, b, c int
}

func (e edgeFunc) eval(x, y int) int {
	return e.a*x + e.b*y + e.c
}

// newEdge returns the edge through p and q oriented so that r is not negative.
func newEdge(p, q, r Point) edgeFunc {
	e := edgeFunc{
		a: p.Y - q.Y,
		b: q.X - p.X,
		c: p.X*q.Y - q.X*p.Y,
	}
	if e.eval(r.X, r.Y) < 0 {
		e = edgeFunc{-e.a, -e.b, -e.c}
	}
	return e
}

// FillTriangle plots every pixel of the bounding box of abc at which all
// three oriented edge functions are non-negative. Boundary pixels are
// included.
func (img *Image) FillTriangle(a, b, c Point) {
	e0 := newEdge(a, b, c)
	e1 := newEdge(b, c, a)
	e2 := newEdge(c, a, b)

	minX, maxX := min(a.X, b.X, c.X), max(a.X, b.X, c.X)
	minY, maxY := min(a.Y, b.Y, c.Y), max(a.Y, b.Y, c.Y)

	// Nothing outside the buffer can be plotted.
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, img.width-1), min(maxY, img.height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if e0.eval(x, y) >= 0 && e1.eval(x, y) >= 0 && e2.eval(x, y) >= 0 {
				img.Plot(x, y)
			}
		}
	}
}

// DrawOutline plots a one pixel border along the image edge.
func (img *Image) DrawOutline() {
	for i := 0; i < img.height; i++ {
		img.Plot(0, i)
		img.Plot(img.width-1, i)
	}
	for i := 0; i < img.width; i++ {
		img.Plot(i, img.height-1)
		img.Plot(i, 0)
	}
}

// DrawGrid overlays GridGray lines every step pixels. Drawn pixels are left
// alone so the grid stays behind the figure.
func (img *Image) DrawGrid(step int) {
	if step <= 0 {
		return
	}
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			if x%step != 0 && y%step != 0 {
				continue
			}
			if img.pix[y*img.width+x] == Background {
				img.pix[y*img.width+x] = GridGray
			}
		}
	}
}
