package draw

import (
	"io"
	"strconv"
	"strings"

	"github.com/tomz197/bitmappers/internal/raster"
)

// BlockUpperHalf paints the top sub-pixel of a cell with the foreground color
// and the bottom one with the background color.
const BlockUpperHalf = '▀'

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under a typical 1500 byte MTU once SSH and TCP headers
// are added.
const maxChunkSize = 1400

// Canvas is a width×height color framebuffer presented on a terminal with
// two pixels per cell using half-block characters. The frame is scaled with
// nearest-neighbour sampling to the largest area that fits the terminal while
// keeping its aspect ratio, and centered.
type Canvas struct {
	width  int
	height int
	frame  []raster.Color // Flat slice: [y * width + x]

	termWidth  int // Actual terminal columns
	termHeight int // Actual terminal rows available to the canvas

	// Presented area in cells and its 0-based offset inside the terminal.
	cols      int
	rows      int
	offsetCol int
	offsetRow int

	// Cell colors written by the previous Render, two per cell; nil forces
	// a full redraw.
	shown []raster.Color

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewCanvas creates a canvas with a width×height frame. Call Resize before
// the first Render.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		frame:  make([]raster.Color, width*height),
	}
}

// Frame returns the framebuffer, suitable as the destination of
// raster.Image.Draw with stride Width().
func (c *Canvas) Frame() []raster.Color {
	return c.frame
}

// Width returns the frame width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the frame height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills the frame with bg.
func (c *Canvas) Clear(bg raster.Color) {
	for i := range c.frame {
		c.frame[i] = bg
	}
}

// Resize fits the frame into a termWidth×termHeight terminal. Nothing
// changes when the size is the same as before.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth, termHeight = max(termWidth, 0), max(termHeight, 0)
	if termWidth == c.termWidth && termHeight == c.termHeight && c.shown != nil {
		return
	}
	c.termWidth = termWidth
	c.termHeight = termHeight

	c.cols, c.rows = 0, 0
	if c.width > 0 && c.height > 0 {
		// Each cell is one pixel wide and two tall.
		c.cols = termWidth
		c.rows = c.cols * c.height / c.width / 2
		if c.rows > termHeight {
			c.rows = termHeight
			c.cols = c.rows * 2 * c.width / c.height
		}
	}
	c.offsetCol = (termWidth - c.cols) / 2
	c.offsetRow = (termHeight - c.rows) / 2
	c.shown = make([]raster.Color, 0, 2*c.cols*c.rows)
}

// Invalidate makes the next Render repaint every cell.
func (c *Canvas) Invalidate() {
	c.shown = c.shown[:0]
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Cols returns the number of terminal columns the frame occupies.
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the number of terminal rows the frame occupies.
func (c *Canvas) Rows() int {
	return c.rows
}

// sample returns the frame color shown at sub-pixel (col, sub) of the
// presented area.
func (c *Canvas) sample(col, sub int) raster.Color {
	x := col * c.width / c.cols
	y := sub * c.height / (2 * c.rows)
	return c.frame[y*c.width+x]
}

// Render writes the cells whose colors changed since the previous Render.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	full := len(c.shown) == 0
	if full {
		c.shown = c.shown[:2*c.cols*c.rows]
	}

	for row := 0; row < c.rows; row++ {
		// Cursor and colors carry over between consecutive cells of a run.
		cursorAt := -1
		var lastTop, lastBottom raster.Color
		for col := 0; col < c.cols; col++ {
			top := c.sample(col, 2*row)
			bottom := c.sample(col, 2*row+1)
			i := 2 * (row*c.cols + col)
			if !full && c.shown[i] == top && c.shown[i+1] == bottom {
				continue
			}
			c.shown[i], c.shown[i+1] = top, bottom

			if cursorAt != col {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
				c.setColor(38, top)
				c.setColor(48, bottom)
			} else {
				if top != lastTop {
					c.setColor(38, top)
				}
				if bottom != lastBottom {
					c.setColor(48, bottom)
				}
			}
			c.renderBuf.WriteRune(BlockUpperHalf)
			cursorAt = col + 1
			lastTop, lastBottom = top, bottom
		}
	}
	if c.renderBuf.Len() == 0 {
		return
	}
	c.renderBuf.WriteString("\033[0m")

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// setColor emits a 24-bit SGR sequence; layer is 38 for the foreground and
// 48 for the background.
func (c *Canvas) setColor(layer int, col raster.Color) {
	r, g, b := col.RGB()
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2")
	for _, v := range [3]uint8{r, g, b} {
		c.renderBuf.WriteByte(';')
		c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(v), 10))
	}
	c.renderBuf.WriteByte('m')
}
