package raster

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestLineThrough(t *testing.T) {
	p, q := Pt(1, 2), Pt(4, 8)
	l := LineThrough(p, q)
	if l.Eval(1, 2) != 0 || l.Eval(4, 8) != 0 {
		t.Errorf("%+v misses its own points", l)
	}
	if l.Eval(0, 0) == 0 {
		t.Errorf("%+v passes through the origin", l)
	}
}

func TestBisectorIntersect(t *testing.T) {
	vertical := Bisector(Pt(0, 0), Pt(10, 0))
	if got := vertical.Eval(5, 17); got != 0 {
		t.Errorf("bisector of a horizontal segment at (5, 17) = %v", got)
	}
	horizontal := Bisector(Pt(0, 0), Pt(0, 6))
	x, y, ok := vertical.Intersect(horizontal)
	if !ok || x != 5 || y != 3 {
		t.Errorf("Intersect = (%v, %v), %v; want (5, 3), true", x, y, ok)
	}

	if _, _, ok := vertical.Intersect(Bisector(Pt(0, 4), Pt(10, 4))); ok {
		t.Error("parallel lines intersect")
	}
}

func TestCircumcircle(t *testing.T) {
	c := Circumcircle(Pt(0, 0), Pt(8, 0), Pt(0, 6))
	if c.Center != Pt(4, 3) || c.Radius != 5 {
		t.Errorf("got %+v, want center (4, 3) radius 5", c)
	}
	c = Circumcircle(Pt(0, 0), Pt(3, 3), Pt(10, 10))
	if c.Center != Pt(5, 5) || !c.Contains(Pt(3, 3)) {
		t.Errorf("collinear points: got %+v", c)
	}
}

func TestBoundingCircle(t *testing.T) {
	tests := []struct {
		name   string
		pts    []Point
		center Point
		radius float64
	}{
		{"empty", nil, Point{}, 0},
		{"single", []Point{{7, 9}}, Pt(7, 9), 0},
		{"pair", []Point{{0, 0}, {10, 0}}, Pt(5, 0), 5},
		{"right triangle", []Point{{0, 0}, {8, 0}, {0, 6}}, Pt(4, 3), 5},
		{"obtuse triangle", []Point{{0, 0}, {20, 0}, {10, 2}}, Pt(10, 0), 10},
		{"square with inner points", []Point{{0, 0}, {10, 0}, {0, 10}, {10, 10}, {5, 5}, {3, 7}}, Pt(5, 5), math.Sqrt(50)},
		{"collinear", []Point{{0, 0}, {5, 5}, {10, 10}, {2, 2}}, Pt(5, 5), math.Sqrt(50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 10 {
				c := BoundingCircle(tt.pts)
				if c.Center != tt.center || math.Abs(c.Radius-tt.radius) > 1e-9 {
					t.Fatalf("got %+v, want center %v radius %v", c, tt.center, tt.radius)
				}
			}
		})
	}
}

func TestBoundingCircleIsMinimal(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := range 20 {
		pts := make([]Point, 25)
		for i := range pts {
			pts[i] = Pt(rng.IntN(200), rng.IntN(150))
		}

		c := BoundingCircle(pts)
		for _, p := range pts {
			if !c.Contains(p) {
				t.Fatalf("round %d: %+v leaves out %v", round, c, p)
			}
		}

		// Compare with the smallest circle over every pair and triple.
		best := math.Inf(1)
		encloses := func(d disc) bool {
			for _, p := range pts {
				if !d.contains(p) {
					return false
				}
			}
			return true
		}
		for i := range pts {
			for j := i + 1; j < len(pts); j++ {
				if d := discOf2(pts[i], pts[j]); d.r < best && encloses(d) {
					best = d.r
				}
				for k := j + 1; k < len(pts); k++ {
					if d := discOf3(pts[i], pts[j], pts[k]); d.r < best && encloses(d) {
						best = d.r
					}
				}
			}
		}
		// Rounding the center moves it at most half a pixel diagonal.
		if c.Radius < best-1e-9 || c.Radius > best+math.Sqrt2/2+1e-9 {
			t.Errorf("round %d: radius %v, smallest enclosing %v", round, c.Radius, best)
		}
	}
}

func TestLineAcross(t *testing.T) {
	tests := []struct {
		name  string
		line  Line
		count int
		on    Point
	}{
		{"vertical", Bisector(Pt(0, 0), Pt(10, 0)), 20, Pt(5, 13)},
		{"horizontal", Bisector(Pt(3, 0), Pt(3, 6)), 30, Pt(29, 3)},
		{"diagonal", LineThrough(Pt(0, 0), Pt(1, 1)), 20, Pt(19, 19)},
		{"degenerate", LineThrough(Pt(4, 4), Pt(4, 4)), 0, Pt(-1, -1)},
		{"outside", LineThrough(Pt(0, 100), Pt(1, 100)), 0, Pt(-1, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(30, 20, 0, 0)
			img.LineAcross(tt.line, 0)
			got := drawn(img)
			if len(got) != tt.count {
				t.Errorf("drew %d pixels, want %d", len(got), tt.count)
			}
			if tt.count > 0 && !got[tt.on] {
				t.Errorf("pixel %v not drawn", tt.on)
			}
		})
	}
}
