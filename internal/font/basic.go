package font

import (
	"sync"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tomz197/bitmappers/internal/raster"
)

// basicColumns is the number of cells per atlas row of the built-in font.
const basicColumns = 16

var basicFont = sync.OnceValue(func() *Font {
	face := basicfont.Face7x13
	gw, gh := face.Advance, face.Height

	atlas := raster.New(basicColumns*gw, 256/basicColumns*gh, 0, 0)
	for c := 0; c < 256; c++ {
		cx, cy := c%basicColumns*gw, c/basicColumns*gh
		dr, mask, mp, _, ok := face.Glyph(fixed.P(cx, cy+face.Ascent), rune(c))
		if !ok {
			continue
		}
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			for x := dr.Min.X; x < dr.Max.X; x++ {
				_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					atlas.Plot(x, y)
				}
			}
		}
	}
	return &Font{Atlas: atlas, GlyphWidth: gw, GlyphHeight: gh}
})

// Basic returns the built-in 7×13 font covering Latin-1. The font is shared;
// its atlas must not be modified.
func Basic() *Font {
	return basicFont()
}
