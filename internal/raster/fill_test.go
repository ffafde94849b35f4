package raster

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestFloodFillBorderedSquare(t *testing.T) {
	img := New(50, 50, 0, 0)
	img.LineWidth(Pt(0, 0), Pt(49, 0), 0)
	img.LineWidth(Pt(49, 0), Pt(49, 49), 0)
	img.LineWidth(Pt(49, 49), Pt(0, 49), 0)
	img.LineWidth(Pt(0, 49), Pt(0, 0), 0)

	if got := img.CountColor(Foreground); got != 4*49 {
		t.Fatalf("border has %d pixels, want %d", got, 4*49)
	}

	img.FloodFill(25, 25)
	if got := img.CountColor(Background); got != 0 {
		t.Errorf("%d background pixels remain", got)
	}
}

func TestFloodFillBounded(t *testing.T) {
	img := New(40, 40, 0, 0)
	img.Square(Pt(15, 15), 5, 0)
	img.FloodFill(15, 15)

	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			inside := x >= 10 && x <= 20 && y >= 10 && y <= 20
			c, _ := img.Get(x, y)
			if inside && c != Foreground {
				t.Errorf("pixel (%d, %d) inside the square not filled", x, y)
			}
			if !inside && c != Background {
				t.Errorf("pixel (%d, %d) outside the square changed", x, y)
			}
		}
	}
}

func TestFloodFillIdempotent(t *testing.T) {
	img := New(30, 30, 0, 0)
	img.Circle(Pt(15, 15), 9, 0)
	img.FloodFill(15, 15)
	before := slices.Clone(img.Pixels())

	img.FloodFill(15, 15)
	if !slices.Equal(before, img.Pixels()) {
		t.Error("second fill of the same region changed pixels")
	}

	img.FloodFill(6, 15) // on the outline
	if !slices.Equal(before, img.Pixels()) {
		t.Error("fill seeded on a drawn pixel changed pixels")
	}
}

func TestFloodFillEdges(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"top left", 0, 0},
		{"bottom right", 9, 9},
		{"right edge", 9, 4},
		{"bottom edge", 3, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(10, 10, 0, 0)
			img.FloodFill(tt.x, tt.y)
			if got := img.CountColor(Foreground); got != 100 {
				t.Errorf("filled %d pixels, want 100", got)
			}
		})
	}

	t.Run("outside", func(t *testing.T) {
		img := New(10, 10, 0, 0)
		img.FloodFill(-1, 5)
		img.FloodFill(5, 10)
		if got := img.CountColor(Foreground); got != 0 {
			t.Errorf("seed outside the image filled %d pixels", got)
		}
	})
}

func TestFloodFillConcave(t *testing.T) {
	// A U shape: the fill has to wrap around the inner wall.
	img := New(20, 20, 0, 0)
	img.DrawOutline()
	img.LineWidth(Pt(10, 0), Pt(10, 15), 0)
	img.FloodFill(2, 2)
	if got := img.CountColor(Background); got != 0 {
		t.Errorf("%d background pixels remain", got)
	}
}

func TestFloodFillColor(t *testing.T) {
	img := New(12, 12, 0, 0)
	img.DrawOutline()
	img.FloodFillColor(5, 5, Red)
	if got := img.CountColor(Red); got != 10*10 {
		t.Errorf("red pixels = %d, want 100", got)
	}

	img = New(4, 4, 0, 0)
	img.FloodFillColor(1, 1, Background)
	if got := img.CountColor(Background); got != 16 {
		t.Errorf("background fill changed pixels")
	}
}

func TestFillTriangleMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))
	cross := func(o, p, q Point) int {
		return (p.X-o.X)*(q.Y-o.Y) - (p.Y-o.Y)*(q.X-o.X)
	}
	rnd := func() Point {
		return Pt(rng.IntN(60)-10, rng.IntN(60)-10)
	}

	for n := 0; n < 200; n++ {
		a, b, c := rnd(), rnd(), rnd()
		s := cross(a, b, c)
		if s == 0 {
			continue
		}
		img := New(40, 40, 0, 0)
		img.FillTriangle(a, b, c)

		for y := 0; y < 40; y++ {
			for x := 0; x < 40; x++ {
				p := Pt(x, y)
				want := s*cross(a, b, p) >= 0 && s*cross(b, c, p) >= 0 && s*cross(c, a, p) >= 0
				got, _ := img.Get(x, y)
				if (got == Foreground) != want {
					t.Fatalf("triangle %v %v %v: pixel %v drawn = %v, want %v", a, b, c, p, got == Foreground, want)
				}
			}
		}
	}
}

func TestFillTriangleIncludesVertices(t *testing.T) {
	img := New(20, 20, 0, 0)
	a, b, c := Pt(2, 3), Pt(17, 5), Pt(8, 16)
	img.FillTriangle(c, b, a)
	for _, p := range []Point{a, b, c} {
		if got, _ := img.Get(p.X, p.Y); got != Foreground {
			t.Errorf("vertex %v not filled", p)
		}
	}
}
