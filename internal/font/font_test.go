package font

import (
	"errors"
	"testing"

	"github.com/tomz197/bitmappers/internal/raster"
)

// testAtlas is a 4×2 grid of 3×3 cells; cell i has i+1 pixels set in its
// top row (wrapping into the next rows).
func testAtlas(t *testing.T) *Font {
	t.Helper()
	atlas := raster.New(12, 6, 0, 0)
	for i := 0; i < 8; i++ {
		ox, oy := i%4*3, i/4*3
		for k := 0; k <= i; k++ {
			atlas.Plot(ox+k%3, oy+k/3)
		}
	}
	f, err := New(atlas, 3, 3, 0, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestGlyph(t *testing.T) {
	f := testAtlas(t)
	for i := 0; i < 8; i++ {
		g, err := f.Glyph(rune(i))
		if err != nil {
			t.Fatalf("Glyph(%d): %v", i, err)
		}
		if g.Width() != 3 || g.Height() != 3 {
			t.Fatalf("Glyph(%d) is %dx%d", i, g.Width(), g.Height())
		}
		if got := g.CountColor(raster.Foreground); got != i+1 {
			t.Errorf("Glyph(%d) has %d pixels, want %d", i, got, i+1)
		}
	}
}

func TestGlyphAliasing(t *testing.T) {
	f := testAtlas(t)
	a, err := f.Glyph(5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := f.Glyph(256 + 5)
	if err != nil {
		t.Fatal(err)
	}
	if a.CountColor(raster.Foreground) != b.CountColor(raster.Foreground) {
		t.Error("code point 261 does not alias onto 5")
	}
}

func TestGlyphMissing(t *testing.T) {
	f := testAtlas(t)
	for _, r := range []rune{8, 'A', 255} {
		if _, err := f.Glyph(r); !errors.Is(err, ErrMissingGlyph) {
			t.Errorf("Glyph(%q) error = %v, want ErrMissingGlyph", r, err)
		}
	}
}

func TestWriteString(t *testing.T) {
	f := testAtlas(t)
	dst := raster.New(20, 5, 0, 0)

	if err := WriteString(dst, f, "\x00\x01\x02", raster.Pt(1, 1)); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if got := dst.CountColor(raster.Foreground); got != 1+2+3 {
		t.Errorf("drew %d pixels, want 6", got)
	}
	// Second glyph starts one advance to the right.
	for _, p := range []raster.Point{{X: 4, Y: 1}, {X: 5, Y: 1}} {
		if c, _ := dst.Get(p.X, p.Y); c != raster.Foreground {
			t.Errorf("pixel %v not drawn", p)
		}
	}
}

func TestWriteStringMissingGlyph(t *testing.T) {
	f := testAtlas(t)
	dst := raster.New(20, 5, 0, 0)

	err := WriteString(dst, f, "\x00Z\x00", raster.Pt(0, 0))
	if !errors.Is(err, ErrMissingGlyph) {
		t.Fatalf("error = %v, want ErrMissingGlyph", err)
	}
	// The missing glyph still advances: the third glyph starts at x = 6.
	if c, _ := dst.Get(6, 0); c != raster.Foreground {
		t.Error("glyph after the missing one is misplaced")
	}
	if got := dst.CountColor(raster.Foreground); got != 2 {
		t.Errorf("drew %d pixels, want 2", got)
	}
}

func TestNewRejectsBadCells(t *testing.T) {
	atlas := raster.New(8, 8, 0, 0)
	for _, tc := range [][4]int{{0, 8, 0, 0}, {8, -1, 0, 0}, {9, 8, 0, 0}, {4, 4, 6, 0}, {4, 4, -1, 0}, {4, 4, 0, -2}} {
		if _, err := New(atlas, tc[0], tc[1], tc[2], tc[3]); err == nil {
			t.Errorf("New(%v) succeeded", tc)
		}
	}
}

func TestBasic(t *testing.T) {
	f := Basic()
	if f.GlyphWidth != 7 || f.GlyphHeight != 13 {
		t.Fatalf("cell = %dx%d, want 7x13", f.GlyphWidth, f.GlyphHeight)
	}

	a, err := f.Glyph('A')
	if err != nil {
		t.Fatalf("Glyph('A'): %v", err)
	}
	if a.CountColor(raster.Foreground) == 0 {
		t.Error("glyph 'A' is blank")
	}
	sp, err := f.Glyph(' ')
	if err != nil {
		t.Fatalf("Glyph(' '): %v", err)
	}
	if sp.CountColor(raster.Foreground) != 0 {
		t.Error("space glyph has pixels")
	}
	if _, err := f.Glyph('é'); err != nil {
		t.Errorf("Glyph('é'): %v", err)
	}

	dst := raster.New(100, 20, 0, 0)
	if err := WriteString(dst, f, "Hello!", raster.Pt(2, 2)); err != nil {
		t.Errorf("WriteString: %v", err)
	}
	if f.Width("Hello!") != 42 {
		t.Errorf("Width = %d, want 42", f.Width("Hello!"))
	}
}
