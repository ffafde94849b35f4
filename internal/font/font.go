// Package font draws text with fixed-pitch bitmap fonts.
//
// A font is a glyph atlas laid out as a grid of equal cells. A rune selects
// the cell uint32(r) % 256 in row-major order, so only code points 0-255 map
// to distinct glyphs; higher code points alias onto their low byte.
package font

import (
	"errors"
	"fmt"

	"github.com/tomz197/bitmappers/internal/raster"
	"github.com/tomz197/bitmappers/internal/xbm"
)

// ErrMissingGlyph is returned for a rune whose cell lies outside the atlas.
var ErrMissingGlyph = errors.New("missing glyph")

// Font is a glyph atlas plus its cell geometry.
type Font struct {
	Atlas       *raster.Image
	GlyphWidth  int
	GlyphHeight int
	XOffset     int // atlas position of the first cell
	YOffset     int
}

// New returns a font over atlas with cells of gw×gh pixels.
func New(atlas *raster.Image, gw, gh, xOffset, yOffset int) (*Font, error) {
	if gw <= 0 || gh <= 0 {
		return nil, fmt.Errorf("glyph cell %dx%d: size must be positive", gw, gh)
	}
	if xOffset < 0 || yOffset < 0 {
		return nil, fmt.Errorf("atlas offset (%d, %d): must not be negative", xOffset, yOffset)
	}
	if atlas.Width()-xOffset < gw {
		return nil, fmt.Errorf("atlas %d pixels wide cannot hold a %d pixel glyph at offset %d", atlas.Width(), gw, xOffset)
	}
	return &Font{Atlas: atlas, GlyphWidth: gw, GlyphHeight: gh, XOffset: xOffset, YOffset: yOffset}, nil
}

// FromXBM loads a font atlas from an XBM file.
func FromXBM(path string, gw, gh int) (*Font, error) {
	bm, err := xbm.Open(path)
	if err != nil {
		return nil, err
	}
	atlas, err := bm.Image()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(atlas, gw, gh, 0, 0)
}

func (f *Font) columns() int {
	return (f.Atlas.Width() - f.XOffset) / f.GlyphWidth
}

// cell returns the atlas origin of the glyph for r.
func (f *Font) cell(r rune) (raster.Point, error) {
	idx := int(uint32(r) % 256)
	cols := f.columns()
	p := raster.Pt(f.XOffset+idx%cols*f.GlyphWidth, f.YOffset+idx/cols*f.GlyphHeight)
	if p.Y < 0 || p.Y+f.GlyphHeight > f.Atlas.Height() {
		return p, fmt.Errorf("%w: %q", ErrMissingGlyph, r)
	}
	return p, nil
}

// Glyph extracts the glyph for r into a new GlyphWidth×GlyphHeight image.
func (f *Font) Glyph(r rune) (*raster.Image, error) {
	from, err := f.cell(r)
	if err != nil {
		return nil, err
	}
	g := raster.New(f.GlyphWidth, f.GlyphHeight, 0, 0)
	g.Copy(f.Atlas, raster.Pt(0, 0), from, f.GlyphWidth, f.GlyphHeight)
	return g, nil
}

// WriteString draws text into dst starting at origin, advancing GlyphWidth
// per rune with no kerning or wrapping. Missing glyphs leave a blank cell and
// are reported together in the returned error.
func WriteString(dst *raster.Image, f *Font, text string, origin raster.Point) error {
	var errs []error
	at := origin
	for _, r := range text {
		from, err := f.cell(r)
		if err != nil {
			errs = append(errs, err)
		} else {
			dst.Copy(f.Atlas, at, from, f.GlyphWidth, f.GlyphHeight)
		}
		at.X += f.GlyphWidth
	}
	return errors.Join(errs...)
}

// Width returns the pixel width of text set in f.
func (f *Font) Width(text string) int {
	n := 0
	for range text {
		n++
	}
	return n * f.GlyphWidth
}
