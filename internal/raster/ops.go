package raster

// Resize returns a nearest-neighbour resampled copy of img with the given
// dimensions and placement. Destination pixel (dx, dy) samples source pixel
// (dx*w/newWidth, dy*h/newHeight) with truncating division; every
// non-background source color is carried over.
func (img *Image) Resize(newWidth, newHeight, xOffset, yOffset int) *Image {
	out := New(newWidth, newHeight, xOffset, yOffset)
	for dy := 0; dy < out.height; dy++ {
		sy := dy * img.height / out.height
		for dx := 0; dx < out.width; dx++ {
			sx := dx * img.width / out.width
			if c, ok := img.Get(sx, sy); ok && c != Background {
				out.PlotColor(dx, dy, c)
			}
		}
	}
	return out
}

// Copy blits the w×h rectangle of src starting at from into img at dst.
// Only Foreground source pixels are copied; both sides are clipped.
func (img *Image) Copy(src *Image, dst, from Point, w, h int) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if c, ok := src.Get(from.X+i, from.Y+j); ok && c == Foreground {
				img.Plot(dst.X+i, dst.Y+j)
			}
		}
	}
}

// CountColor returns how many pixels hold c.
func (img *Image) CountColor(c Color) int {
	n := 0
	for _, p := range img.pix {
		if p == c {
			n++
		}
	}
	return n
}
