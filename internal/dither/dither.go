// Package dither reduces color images to Foreground/Background by error
// diffusion.
package dither

import "github.com/tomz197/bitmappers/internal/raster"

// tap spreads weight/divisor of the quantization error to the pixel offset
// positions ahead in scan order.
type tap struct {
	offset int
	weight float64
}

// FloydSteinberg dithers img in place with the Floyd–Steinberg kernel.
func FloydSteinberg(img *raster.Image) {
	w := img.Width()
	diffuse(img, w+1, 16, []tap{{0, 7}, {w - 2, 3}, {w - 1, 5}, {w, 1}})
}

// Atkinson dithers img in place with Atkinson's kernel, which spreads only
// three quarters of the error.
func Atkinson(img *raster.Image) {
	w := img.Width()
	diffuse(img, 2*w, 8, []tap{{0, 1}, {1, 1}, {w - 2, 1}, {w - 1, 1}, {w, 1}, {2*w - 1, 1}})
}

// Luma returns the perceived brightness of c in [0, 1].
func Luma(c raster.Color) float64 {
	r, g, b := c.RGB()
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
}

// diffuse walks the pixels in row-major order. The pending error of the next
// window pixels lives in a ring; offsets are relative to the pixel after the
// current one.
func diffuse(img *raster.Image, window int, divisor float64, taps []tap) {
	if window <= 0 {
		return
	}
	errs := make([]float64, window)
	head := 0
	pix := img.Pixels()
	for i, c := range pix {
		v := Luma(c) + errs[head]
		errs[head] = 0
		head = (head + 1) % window

		out, q := raster.Foreground, 0.0
		if v > 0.5 {
			out, q = raster.Background, 1
		}
		pix[i] = out

		e := (v - q) / divisor
		for _, t := range taps {
			if t.offset < 0 || t.offset >= window {
				continue
			}
			errs[(head+t.offset)%window] += e * t.weight
		}
	}
}
