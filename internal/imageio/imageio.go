// Package imageio converts between image files and raster images.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp" // register BMP
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/tomz197/bitmappers/internal/raster"
)

// Decode reads any registered image format into a raster image whose pixels
// hold the packed RGB color of the source.
func Decode(r io.Reader) (*raster.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := src.Bounds()
	img := raster.New(b.Dx(), b.Dy(), 0, 0)
	pix := img.Pixels()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			pix[y*b.Dx()+x] = raster.FromRGB(c.R, c.G, c.B)
		}
	}
	return img, nil
}

// Open decodes the image file at path.
func Open(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// FromRGBBytes packs a raw RGB stream, three bytes per pixel, into an image.
func FromRGBBytes(width, height int, rgb []byte) (*raster.Image, error) {
	if width < 0 || height < 0 || len(rgb) != width*height*3 {
		return nil, fmt.Errorf("%d bytes for %dx%d RGB: %w", len(rgb), width, height, raster.ErrPixelCount)
	}
	pix := make([]raster.Color, width*height)
	for i := range pix {
		pix[i] = raster.FromRGB(rgb[3*i], rgb[3*i+1], rgb[3*i+2])
	}
	return raster.NewFromPixels(width, height, pix)
}

// ToRGBA renders img with Foreground mapped to fg and Background to bg.
// Other colors are copied verbatim.
func ToRGBA(img *raster.Image, fg, bg raster.Color) *image.RGBA {
	w, h := img.Width(), img.Height()
	frame := make([]raster.Color, w*h)
	xo, yo := img.XOffset, img.YOffset
	img.XOffset, img.YOffset = 0, 0
	img.DrawWithBackground(frame, w, fg, bg)
	img.XOffset, img.YOffset = xo, yo
	return FrameToRGBA(frame, w, h)
}

// FrameToRGBA converts a flat color buffer of the given stride and height.
func FrameToRGBA(frame []raster.Color, stride, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, stride, height))
	for i, c := range frame {
		if i >= stride*height {
			break
		}
		r, g, b := c.RGB()
		out.Pix[4*i] = r
		out.Pix[4*i+1] = g
		out.Pix[4*i+2] = b
		out.Pix[4*i+3] = 0xff
	}
	return out
}

// EncodePNG writes img as PNG using the ToRGBA color mapping.
func EncodePNG(w io.Writer, img *raster.Image, fg, bg raster.Color) error {
	return png.Encode(w, ToRGBA(img, fg, bg))
}

// Scale enlarges src by an integer factor with nearest-neighbour sampling,
// keeping pixel edges sharp. Factors below 1 are treated as 1.
func Scale(src *image.RGBA, factor int) *image.RGBA {
	factor = max(factor, 1)
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
