package demo

import (
	"fmt"

	"github.com/tomz197/bitmappers/internal/dither"
	"github.com/tomz197/bitmappers/internal/font"
	"github.com/tomz197/bitmappers/internal/input"
	"github.com/tomz197/bitmappers/internal/raster"
)

type scale struct {
	sprite *raster.Image
	factor int
}

// newScale draws a small sprite with the primitives themselves.
func newScale(Options) Demo {
	s := raster.New(24, 16, 0, 0)
	s.DrawOutline()
	s.Circle(raster.Pt(7, 7), 4, 0)
	s.FloodFill(7, 7)
	s.FillTriangle(raster.Pt(14, 12), raster.Pt(21, 12), raster.Pt(17, 3))
	return &scale{sprite: s, factor: 3}
}

func (d *scale) Name() string { return "scale" }
func (d *scale) Help() string { return "+/- factor" }

func (d *scale) Update(in input.Input) {
	d.factor = adjust(in, d.factor, 1, 8)
}

func (d *scale) Render(img *raster.Image) {
	w, h := d.sprite.Width(), d.sprite.Height()
	img.Copy(d.sprite, raster.Pt(4, 18), raster.Pt(0, 0), w, h)

	big := d.sprite.Resize(w*d.factor, h*d.factor, 0, 0)
	img.Copy(big, raster.Pt(32, 18), raster.Pt(0, 0), big.Width(), big.Height())

	// Shrinking the enlarged copy back restores the original.
	back := big.Resize(w, h, 0, 0)
	img.Copy(back, raster.Pt(4, 40), raster.Pt(0, 0), w, h)
	label(img, fmt.Sprintf("x%d", d.factor), raster.Pt(2, 2))
}

var pangram = []string{"The quick brown", "fox jumps over", "the lazy dog.", "0123456789 !?&"}

type fontDemo struct {
	fonts []*font.Font
	cur   int
}

func newFontDemo(opts Options) Demo {
	d := &fontDemo{fonts: []*font.Font{font.Basic()}}
	if opts.Font != nil {
		d.fonts = append(d.fonts, opts.Font)
	}
	return d
}

func (d *fontDemo) Name() string { return "font" }
func (d *fontDemo) Help() string { return "tab next font" }

func (d *fontDemo) Update(in input.Input) {
	if in.Tab {
		d.cur = (d.cur + 1) % len(d.fonts)
	}
}

func (d *fontDemo) Render(img *raster.Image) {
	f := d.fonts[d.cur]
	at := raster.Pt(4, 4)
	for _, line := range pangram {
		// Fonts with a partial atlas leave blank cells for missing glyphs.
		_ = font.WriteString(img, f, line, at)
		at.Y += f.GlyphHeight + 2
	}
	img.LineWidth(raster.Pt(4, at.Y), raster.Pt(4+f.Width(pangram[0]), at.Y), 0)
}

type ditherMode int

const (
	ditherNone ditherMode = iota
	ditherFloydSteinberg
	ditherAtkinson
)

func (m ditherMode) String() string {
	switch m {
	case ditherFloydSteinberg:
		return "floyd-steinberg"
	case ditherAtkinson:
		return "atkinson"
	}
	return "original"
}

type ditherDemo struct {
	source *raster.Image
	mode   ditherMode
	cached *raster.Image
}

func newDither(opts Options) Demo {
	src := opts.Image
	if src == nil {
		src = gradient(opts.Width, opts.Height)
	}
	fit := src.Resize(opts.Width, opts.Height, 0, 0)
	return &ditherDemo{source: fit, mode: ditherFloydSteinberg}
}

// gradient is a diagonal ramp from black to white with a colored band.
func gradient(w, h int) *raster.Image {
	img := raster.New(w, h, 0, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8((x + y) * 255 / max(w+h-2, 1))
			c := raster.FromRGB(v, v, v)
			if y > h/3 && y < h/2 {
				c = raster.FromRGB(v, 255-v, 128)
			}
			img.PlotColor(x, y, c)
		}
	}
	return img
}

func (d *ditherDemo) Name() string { return "dither" }
func (d *ditherDemo) Help() string { return "tab next kernel" }

func (d *ditherDemo) Update(in input.Input) {
	if in.Tab {
		d.mode = (d.mode + 1) % 3
		d.cached = nil
	}
}

func (d *ditherDemo) Render(img *raster.Image) {
	if d.cached == nil {
		d.cached = d.source.Resize(d.source.Width(), d.source.Height(), 0, 0)
		switch d.mode {
		case ditherFloydSteinberg:
			dither.FloydSteinberg(d.cached)
		case ditherAtkinson:
			dither.Atkinson(d.cached)
		}
	}
	d.cached.DrawRaw(img.Pixels(), img.Width())
	label(img, d.mode.String(), raster.Pt(2, 2))
}
