// Package raster implements integer rasterization on a pixel buffer.
//
// All drawing primitives clip silently: writes outside the buffer are no-ops
// and reads outside it report absence. Rasterization loops that overshoot the
// buffer while thickening a stroke therefore never fail.
package raster

import (
	"errors"
	"fmt"
)

// ErrPixelCount is returned when a pixel slice does not match the dimensions.
var ErrPixelCount = errors.New("pixel count does not match dimensions")

// Point is an integer coordinate pair.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Line is the implicit form a·x + b·y + c = 0.
type Line struct {
	A, B, C float64
}

// Circle is a center and a radius.
type Circle struct {
	Center Point
	Radius float64
}

// Image is a width×height grid of colors placed at (XOffset, YOffset) inside
// a larger destination buffer. Pixels are stored row-major.
type Image struct {
	width  int
	height int
	pix    []Color

	// Placement inside the destination passed to Draw.
	XOffset int
	YOffset int
}

// New allocates an image with every pixel set to Background.
func New(width, height, xOffset, yOffset int) *Image {
	width, height = max(width, 0), max(height, 0)
	img := &Image{
		width:   width,
		height:  height,
		pix:     make([]Color, width*height),
		XOffset: xOffset,
		YOffset: yOffset,
	}
	img.Clear()
	return img
}

// NewFromPixels wraps an existing pixel slice. The slice is not copied.
func NewFromPixels(width, height int, pix []Color) (*Image, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, fmt.Errorf("%dx%d image with %d pixels: %w", width, height, len(pix), ErrPixelCount)
	}
	return &Image{width: width, height: height, pix: pix}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Pixels returns the backing row-major pixel slice.
func (img *Image) Pixels() []Color {
	return img.pix
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

// Plot sets (x, y) to Foreground. Out-of-bounds coordinates are ignored.
func (img *Image) Plot(x, y int) {
	img.PlotColor(x, y, Foreground)
}

// PlotColor sets (x, y) to c. Out-of-bounds coordinates are ignored.
func (img *Image) PlotColor(x, y int, c Color) {
	if !img.inBounds(x, y) {
		return
	}
	img.pix[y*img.width+x] = c
}

// Get returns the color at (x, y). The boolean is false outside the image.
func (img *Image) Get(x, y int) (Color, bool) {
	if !img.inBounds(x, y) {
		return 0, false
	}
	return img.pix[y*img.width+x], true
}

// IsBackground reports whether (x, y) is inside the image and unset.
func (img *Image) IsBackground(x, y int) bool {
	c, ok := img.Get(x, y)
	return ok && c == Background
}

// Clear resets every pixel to Background.
func (img *Image) Clear() {
	for i := range img.pix {
		img.pix[i] = Background
	}
}

// Draw composites the image into dst, a flat buffer with the given stride.
// Foreground pixels become fg, background pixels are left untouched and any
// other color is copied verbatim.
func (img *Image) Draw(dst []Color, stride int, fg Color) {
	img.draw(dst, stride, fg, 0, false)
}

// DrawWithBackground is like Draw but also paints background pixels with bg.
func (img *Image) DrawWithBackground(dst []Color, stride int, fg, bg Color) {
	img.draw(dst, stride, fg, bg, true)
}

func (img *Image) draw(dst []Color, stride int, fg, bg Color, paintBG bool) {
	for y := 0; y < img.height; y++ {
		dy := img.YOffset + y
		if dy < 0 {
			continue
		}
		for x := 0; x < img.width; x++ {
			dx := img.XOffset + x
			if dx < 0 || dx >= stride {
				continue
			}
			i := dy*stride + dx
			if i >= len(dst) {
				return
			}
			switch c := img.pix[y*img.width+x]; c {
			case Foreground:
				dst[i] = fg
			case Background:
				if paintBG {
					dst[i] = bg
				}
			default:
				dst[i] = c
			}
		}
	}
}

// DrawRaw copies every pixel verbatim into dst.
func (img *Image) DrawRaw(dst []Color, stride int) {
	for y := 0; y < img.height; y++ {
		dy := img.YOffset + y
		if dy < 0 {
			continue
		}
		for x := 0; x < img.width; x++ {
			dx := img.XOffset + x
			if dx < 0 || dx >= stride {
				continue
			}
			i := dy*stride + dx
			if i >= len(dst) {
				return
			}
			dst[i] = img.pix[y*img.width+x]
		}
	}
}
