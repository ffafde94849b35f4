package raster

// Color is a packed 24-bit RGB value: (r<<16) | (g<<8) | b.
type Color uint32

// FromRGB packs three 8-bit channels into a Color.
func FromRGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB unpacks the color channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Palette used by the demos.
const (
	White     Color = 0xffffff
	Black     Color = 0x000000
	AzureBlue Color = 0x007fff
	Red       Color = 0x9d250a
	GridGray  Color = 0xdcdcdc
)

// Sentinel values stored in an Image.
// Background marks an unset pixel, Foreground a drawn one.
// Any other value is a colored overlay and is composited verbatim.
const (
	Background = White
	Foreground = Black
)
