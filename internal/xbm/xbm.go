// Package xbm reads X BitMap images: the C-header-like format made of
// "#define NAME_width N", "#define NAME_height N" and a
// "static char NAME_bits[] = {0x.., ...};" array.
package xbm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/tomz197/bitmappers/internal/raster"
)

// ErrMalformed is returned when the input does not follow the XBM layout.
var ErrMalformed = errors.New("malformed xbm")

var (
	widthRe  = regexp.MustCompile(`(?m)^\s*#\s*define\s+(\w+?)_width\s+(\d+)\s*$`)
	heightRe = regexp.MustCompile(`(?m)^\s*#\s*define\s+\w+?_height\s+(\d+)\s*$`)
	bitsRe   = regexp.MustCompile(`(?s)static\s+(?:unsigned\s+)?char\s+\w+?_bits\s*\[\s*\]\s*=\s*\{([^}]*)\}\s*;`)
)

// Bitmap is a decoded XBM file.
type Bitmap struct {
	Name   string
	Width  int
	Height int
	Bits   []byte // rows padded to whole bytes, least significant bit first
}

// Decode parses an XBM document.
func Decode(r io.Reader) (*Bitmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read xbm: %w", err)
	}
	src := string(data)

	wm := widthRe.FindStringSubmatch(src)
	if wm == nil {
		return nil, fmt.Errorf("%w: missing width define", ErrMalformed)
	}
	hm := heightRe.FindStringSubmatch(src)
	if hm == nil {
		return nil, fmt.Errorf("%w: missing height define", ErrMalformed)
	}
	bm := bitsRe.FindStringSubmatch(src)
	if bm == nil {
		return nil, fmt.Errorf("%w: missing bits array", ErrMalformed)
	}

	width, err := strconv.Atoi(wm[2])
	if err != nil || width <= 0 {
		return nil, fmt.Errorf("%w: width %q", ErrMalformed, wm[2])
	}
	height, err := strconv.Atoi(hm[1])
	if err != nil || height <= 0 {
		return nil, fmt.Errorf("%w: height %q", ErrMalformed, hm[1])
	}

	var bits []byte
	for _, field := range strings.Split(bm[1], ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseUint(field, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: byte %q", ErrMalformed, field)
		}
		bits = append(bits, byte(v))
	}

	if want := (width + 7) / 8 * height; len(bits) < want {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d, want %d", ErrMalformed, len(bits), width, height, want)
	}

	return &Bitmap{Name: wm[1], Width: width, Height: height, Bits: bits}, nil
}

// Open decodes the XBM file at path.
func Open(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bm, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bm, nil
}

// Image unpacks the bitmap into a raster image placed at the origin.
func (b *Bitmap) Image() (*raster.Image, error) {
	pix := BitsToPixels(b.Bits, b.Width)
	n := b.Width * b.Height
	if len(pix) < n {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrMalformed, len(pix), b.Width, b.Height)
	}
	return raster.NewFromPixels(b.Width, b.Height, pix[:n])
}

// BitsToPixels unpacks XBM bits, least significant bit first within each
// byte. A row ends after width pixels; the unused high bits of the row's last
// byte are skipped. Set bits become Foreground, clear bits Background.
func BitsToPixels(bits []byte, width int) []raster.Color {
	if width <= 0 {
		return nil
	}
	out := make([]raster.Color, 0, len(bits)*8)
	col := 0
	for _, b := range bits {
		for n := 0; n < 8; n++ {
			if b>>n&1 != 0 {
				out = append(out, raster.Foreground)
			} else {
				out = append(out, raster.Background)
			}
			col++
			if col == width {
				col = 0
				break
			}
		}
	}
	return out
}
