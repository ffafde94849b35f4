package raster

// FloodFill fills the 4-connected Background region containing (x, y) with
// Foreground. A seed that is not Background leaves the image unchanged.
func (img *Image) FloodFill(x, y int) {
	img.FloodFillColor(x, y, Foreground)
}

// FloodFillColor is FloodFill with an explicit fill color. Filling with
// Background is a no-op.
//
// The fill is a scanline fill over an explicit stack: each popped seed is
// extended to the left edge of its run, the run is painted rightwards, and the
// first pixel of every new run met in the rows above and below is pushed.
// Pixels outside the image are walls.
func (img *Image) FloodFillColor(x, y int, c Color) {
	if c == Background || !img.IsBackground(x, y) {
		return
	}

	stack := []Point{{X: x, Y: y}}
	for len(stack) > 0 {
		seed := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !img.IsBackground(seed.X, seed.Y) {
			continue
		}

		x1, row := seed.X, seed.Y
		for img.IsBackground(x1-1, row) {
			x1--
		}

		spanAbove, spanBelow := false, false
		for ; img.IsBackground(x1, row); x1++ {
			img.PlotColor(x1, row, c)

			above := img.IsBackground(x1, row-1)
			if !spanAbove && above {
				stack = append(stack, Point{X: x1, Y: row - 1})
				spanAbove = true
			} else if spanAbove && !above {
				spanAbove = false
			}

			below := img.IsBackground(x1, row+1)
			if !spanBelow && below {
				stack = append(stack, Point{X: x1, Y: row + 1})
				spanBelow = true
			} else if spanBelow && !below {
				spanBelow = false
			}
		}
	}
}
