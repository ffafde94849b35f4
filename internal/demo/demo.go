// Package demo holds the interactive scenes shown by the terminal loop. Each
// scene exercises one family of rasterizers on a shared raster image.
package demo

import (
	"errors"
	"fmt"

	"github.com/tomz197/bitmappers/internal/font"
	"github.com/tomz197/bitmappers/internal/input"
	"github.com/tomz197/bitmappers/internal/raster"
)

// ErrUnknownDemo is returned by New for a name not in the registry.
var ErrUnknownDemo = errors.New("unknown demo")

// Demo is one interactive scene.
type Demo interface {
	Name() string
	// Help is a one-line summary of the scene's keys.
	Help() string
	Update(in input.Input)
	// Render draws the scene into img, which arrives cleared.
	Render(img *raster.Image)
}

// Options configures the scenes built by New.
type Options struct {
	Width  int
	Height int

	// Font is shown next to the built-in font by the font demo when set.
	Font *font.Font
	// Image is the source of the dither demo; nil uses a generated gradient.
	Image *raster.Image
}

type entry struct {
	name string
	new  func(Options) Demo
}

var registry = []entry{
	{"lines", newLines},
	{"ellipse", newEllipse},
	{"fill", newFill},
	{"triangle", newTriangle},
	{"bezier", newBezier},
	{"arc", newArc},
	{"scale", newScale},
	{"font", newFontDemo},
	{"hilbert", newHilbert},
	{"zorder", newZOrder},
	{"gosper", newGosper},
	{"bounding", newBounding},
	{"dither", newDither},
}

// Names lists the registered demos in display order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// Index returns the registry position of name, or -1.
func Index(name string) int {
	for i, e := range registry {
		if e.name == name {
			return i
		}
	}
	return -1
}

// New builds the demo called name.
func New(name string, opts Options) (Demo, error) {
	i := Index(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
	}
	return registry[i].new(opts), nil
}

// label writes text with the built-in font. The built-in atlas covers every
// cell, so the error is always nil.
func label(img *raster.Image, text string, at raster.Point) {
	_ = font.WriteString(img, font.Basic(), text, at)
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// adjust applies Plus/Minus to v within [lo, hi].
func adjust(in input.Input, v, lo, hi int) int {
	if in.Plus {
		v++
	}
	if in.Minus {
		v--
	}
	return clamp(v, lo, hi)
}
