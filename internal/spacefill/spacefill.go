// Package spacefill generates the vertices of space-filling curves.
package spacefill

import (
	"math"

	"github.com/tomz197/bitmappers/internal/raster"
)

// hilbert holds, per row, the four sub-curves of one refinement. Each entry
// encodes the row of the sub-curve to recurse into as tens-1 and the compass
// move taken after it as units.
var hilbert = [4][4]int{
	{22, 10, 16, 38},
	{10, 22, 24, 48},
	{44, 36, 30, 18},
	{36, 44, 42, 28},
}

// compass maps a direction code to a unit move. Y grows downwards, so north
// is negative. Code 8 does not move.
var compass = [9]raster.Point{
	{X: 1, Y: 0},   // E
	{X: 1, Y: -1},  // NE
	{X: 0, Y: -1},  // N
	{X: -1, Y: -1}, // NW
	{X: -1, Y: 0},  // W
	{X: -1, Y: 1},  // SW
	{X: 0, Y: 1},   // S
	{X: 1, Y: 1},   // SE
	{},
}

// Hilbert returns the 4^order vertices of a Hilbert curve of the given order
// starting at start, spaced step pixels apart.
func Hilbert(order, step int, start raster.Point) []raster.Point {
	if order < 0 {
		return nil
	}
	pts := []raster.Point{start}
	var walk func(row, order int)
	walk = func(row, order int) {
		if order == 0 {
			return
		}
		for _, code := range hilbert[row] {
			walk(code/10-1, order-1)
			d := code % 10
			if d == 8 {
				continue
			}
			last := pts[len(pts)-1]
			pts = append(pts, raster.Pt(last.X+compass[d].X*step, last.Y+compass[d].Y*step))
		}
	}
	walk(0, order)
	return pts
}

// ZOrder returns the 4^order vertices of a Morton curve with its origin at
// (0, 0). The even bits of each index give x and the odd bits give y.
func ZOrder(order, step int) []raster.Point {
	if order < 0 || order > 15 {
		return nil
	}
	n := 1 << (2 * order)
	pts := make([]raster.Point, n)
	for i := range n {
		x, y := deinterleave(uint32(i))
		pts[i] = raster.Pt(int(x)*step, int(y)*step)
	}
	return pts
}

func deinterleave(v uint32) (x, y uint32) {
	return compact(v), compact(v >> 1)
}

// compact gathers the even bits of v into the low half.
func compact(v uint32) uint32 {
	v &= 0x55555555
	v = (v | v>>1) & 0x33333333
	v = (v | v>>2) & 0x0f0f0f0f
	v = (v | v>>4) & 0x00ff00ff
	v = (v | v>>8) & 0x0000ffff
	return v
}

// Gosper returns the 7^order+1 vertices of the Gosper flowsnake starting at
// start, heading up. Each segment is step pixels long.
func Gosper(order int, step float64, start raster.Point) []raster.Point {
	if order < 0 {
		return nil
	}
	t := turtle{
		x:     float64(start.X),
		y:     float64(start.Y),
		angle: -math.Pi / 2,
		step:  step,
		pts:   []raster.Point{start},
	}
	t.run('A', order)
	return t.pts
}

var productions = map[byte]string{
	'A': "A-B--B+A++AA+B-",
	'B': "+A-BB--B-A++A+B",
}

const sixty = math.Pi / 3

type turtle struct {
	x, y  float64
	angle float64
	step  float64
	pts   []raster.Point
}

func (t *turtle) run(sym byte, order int) {
	switch sym {
	case '+':
		t.angle -= sixty
	case '-':
		t.angle += sixty
	default:
		if order == 0 {
			t.forward()
			return
		}
		for i := range len(productions[sym]) {
			t.run(productions[sym][i], order-1)
		}
	}
}

func (t *turtle) forward() {
	s, c := math.Sincos(t.angle)
	t.x += c * t.step
	t.y += s * t.step
	t.pts = append(t.pts, raster.Pt(int(math.Round(t.x)), int(math.Round(t.y))))
}

// Draw strokes the curve through pts onto img.
func Draw(img *raster.Image, pts []raster.Point, width float64) {
	img.Polyline(pts, width)
}
