package raster

import (
	"math"
	"math/rand/v2"
)

// LineThrough returns the line through p and q. It is degenerate (A = B = 0)
// when p == q.
func LineThrough(p, q Point) Line {
	a := float64(p.Y - q.Y)
	b := float64(q.X - p.X)
	return Line{A: a, B: b, C: -(a*float64(p.X) + b*float64(p.Y))}
}

// Bisector returns the perpendicular bisector of segment pq: the points
// equidistant from p and q.
func Bisector(p, q Point) Line {
	a := float64(q.X - p.X)
	b := float64(q.Y - p.Y)
	mx, my := float64(p.X+q.X)/2, float64(p.Y+q.Y)/2
	return Line{A: a, B: b, C: -(a*mx + b*my)}
}

// Eval returns a·x + b·y + c; its sign tells the side of the line.
func (l Line) Eval(x, y float64) float64 {
	return l.A*x + l.B*y + l.C
}

// Intersect returns the crossing point of l and m. It reports false for
// parallel or degenerate lines.
func (l Line) Intersect(m Line) (x, y float64, ok bool) {
	det := l.A*m.B - m.A*l.B
	if det == 0 {
		return 0, 0, false
	}
	x = (l.B*m.C - m.B*l.C) / det
	y = (m.A*l.C - l.A*m.C) / det
	return x, y, true
}

// Contains reports whether p lies inside or on c.
func (c Circle) Contains(p Point) bool {
	dx, dy := float64(p.X-c.Center.X), float64(p.Y-c.Center.Y)
	return math.Hypot(dx, dy) <= c.Radius+circleSlack
}

// circleSlack absorbs rounding in containment tests.
const circleSlack = 1e-9

// disc is a circle with a fractional center, used while the enclosing
// circle is being built.
type disc struct {
	x, y, r float64
}

func (d disc) contains(p Point) bool {
	return math.Hypot(float64(p.X)-d.x, float64(p.Y)-d.y) <= d.r+circleSlack
}

func discOf2(p, q Point) disc {
	x, y := float64(p.X+q.X)/2, float64(p.Y+q.Y)/2
	return disc{x, y, math.Hypot(float64(p.X)-x, float64(p.Y)-y)}
}

// discOf3 is the circumcircle of pqr, centered where the perpendicular
// bisectors of pq and qr cross. For collinear points it falls back to the
// circle over the farthest pair.
func discOf3(p, q, r Point) disc {
	x, y, ok := Bisector(p, q).Intersect(Bisector(q, r))
	if !ok {
		d := discOf2(p, q)
		for _, e := range []disc{discOf2(q, r), discOf2(p, r)} {
			if e.r > d.r {
				d = e
			}
		}
		return d
	}
	return disc{x, y, math.Hypot(float64(p.X)-x, float64(p.Y)-y)}
}

// Circumcircle returns the circle through p, q and r, widened to cover them
// after its center is rounded. Collinear points get the circle over their
// farthest pair.
func Circumcircle(p, q, r Point) Circle {
	return discOf3(p, q, r).circle(p, q, r)
}

// BoundingCircle returns the smallest circle enclosing pts, found with
// Welzl's incremental construction over a shuffled copy. The center is
// rounded to the nearest pixel and the radius grown so every point stays
// inside. An empty set gives the zero Circle.
func BoundingCircle(pts []Point) Circle {
	switch len(pts) {
	case 0:
		return Circle{}
	case 1:
		return Circle{Center: pts[0]}
	}

	ps := make([]Point, len(pts))
	copy(ps, pts)
	rand.Shuffle(len(ps), func(i, j int) { ps[i], ps[j] = ps[j], ps[i] })

	d := discOf2(ps[0], ps[1])
	for i := 2; i < len(ps); i++ {
		if !d.contains(ps[i]) {
			d = discWith1(ps[:i], ps[i])
		}
	}
	return d.circle(ps...)
}

// discWith1 is the smallest disc enclosing pts with q on its boundary.
func discWith1(pts []Point, q Point) disc {
	d := discOf2(pts[0], q)
	for j := 1; j < len(pts); j++ {
		if !d.contains(pts[j]) {
			d = discWith2(pts[:j], pts[j], q)
		}
	}
	return d
}

// discWith2 is the smallest disc enclosing pts with q1 and q2 on its
// boundary.
func discWith2(pts []Point, q1, q2 Point) disc {
	d := discOf2(q1, q2)
	for _, p := range pts {
		if !d.contains(p) {
			d = discOf3(q1, q2, p)
		}
	}
	return d
}

// circle rounds d to integer coordinates, growing the radius to cover pts.
func (d disc) circle(pts ...Point) Circle {
	c := Circle{Center: Pt(int(math.Round(d.x)), int(math.Round(d.y)))}
	for _, p := range pts {
		c.Radius = max(c.Radius, math.Hypot(float64(p.X-c.Center.X), float64(p.Y-c.Center.Y)))
	}
	return c
}

// LineAcross draws the part of l that crosses the image. Degenerate lines
// draw nothing.
func (img *Image) LineAcross(l Line, width float64) {
	var p0, p1 Point
	switch {
	case l.A == 0 && l.B == 0:
		return
	case math.Abs(l.B) >= math.Abs(l.A):
		// At most one row per column: walk x.
		x1 := float64(img.width - 1)
		p0 = Pt(0, int(math.Round(-l.C/l.B)))
		p1 = Pt(img.width-1, int(math.Round(-(l.A*x1+l.C)/l.B)))
	default:
		y1 := float64(img.height - 1)
		p0 = Pt(int(math.Round(-l.C/l.A)), 0)
		p1 = Pt(int(math.Round(-(l.B*y1+l.C)/l.A)), img.height-1)
	}
	img.LineWidth(p0, p1, width)
}
