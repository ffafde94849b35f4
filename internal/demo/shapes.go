package demo

import (
	"fmt"
	"math"

	"github.com/tomz197/bitmappers/internal/input"
	"github.com/tomz197/bitmappers/internal/raster"
)

type lines struct {
	h     *Handles
	width int
}

func newLines(opts Options) Demo {
	w, h := opts.Width, opts.Height
	return &lines{
		h:     newHandles(opts, raster.Pt(w/4, h/4), raster.Pt(w*3/4, h*2/3)),
		width: 3,
	}
}

func (d *lines) Name() string { return "lines" }
func (d *lines) Help() string { return "space grab/drop, +/- width" }

func (d *lines) Update(in input.Input) {
	d.h.Update(in)
	d.width = adjust(in, d.width, 0, 20)
}

func (d *lines) Render(img *raster.Image) {
	// A one-pixel fan covering every octant.
	c := raster.Pt(20, img.Height()-20)
	for i := 0; i < 16; i++ {
		a := float64(i) * math.Pi / 8
		img.LineWidth(c, c.Add(raster.Pt(int(15*math.Cos(a)), int(15*math.Sin(a)))), 0)
	}
	img.LineWidth(d.h.Points[0], d.h.Points[1], float64(d.width))
	label(img, fmt.Sprintf("width %d", d.width), raster.Pt(2, 2))
	d.h.Render(img)
}

type ellipse struct {
	h         *Handles
	quadrants [4]bool
}

func newEllipse(opts Options) Demo {
	c := raster.Pt(opts.Width/2, opts.Height/2)
	return &ellipse{
		h:         newHandles(opts, c, c.Add(raster.Pt(opts.Width/3, opts.Height/4))),
		quadrants: raster.AllQuadrants,
	}
}

func (d *ellipse) Name() string { return "ellipse" }
func (d *ellipse) Help() string { return "space grab center/corner, 1-4 toggle quadrants" }

func (d *ellipse) Update(in input.Input) {
	d.h.Update(in)
	if in.Number >= 1 && in.Number <= 4 {
		d.quadrants[in.Number-1] = !d.quadrants[in.Number-1]
	}
}

func (d *ellipse) Render(img *raster.Image) {
	c, corner := d.h.Points[0], d.h.Points[1]
	img.Ellipse(c, corner.X-c.X, corner.Y-c.Y, d.quadrants, 0)
	img.Circle(c, 4, 0)

	q := []byte("----")
	for i, on := range d.quadrants {
		if on {
			q[i] = byte('1' + i)
		}
	}
	label(img, "quadrants "+string(q), raster.Pt(2, 2))
	d.h.Render(img)
}

// fillPalette is indexed by the digit pressed in the fill demo.
var fillPalette = []raster.Color{raster.Foreground, raster.AzureBlue, raster.Red, raster.GridGray}

type fillSeed struct {
	at    raster.Point
	color raster.Color
}

type fill struct {
	h     *Handles
	color int
	seeds []fillSeed
}

func newFill(opts Options) Demo {
	d := &fill{h: newHandles(opts)}
	d.h.Cursor = raster.Pt(opts.Width/2, opts.Height/2)
	return d
}

func (d *fill) Name() string { return "fill" }
func (d *fill) Help() string { return "enter/space fill at cursor, 0-3 color, tab clear" }

func (d *fill) Update(in input.Input) {
	d.h.Update(in)
	if in.Number >= 0 && in.Number < len(fillPalette) {
		d.color = in.Number
	}
	if in.Enter || in.Space {
		d.seeds = append(d.seeds, fillSeed{at: d.h.Cursor, color: fillPalette[d.color]})
	}
	if in.Tab {
		d.seeds = nil
	}
}

func (d *fill) Render(img *raster.Image) {
	w, h := img.Width(), img.Height()
	img.DrawOutline()
	img.Circle(raster.Pt(w/4, h/2), h/4, 0)
	img.Square(raster.Pt(w/2, h/2), h/5, 1)
	img.Triangle(raster.Pt(w*5/8, h*5/6), raster.Pt(w*7/8, h/6), raster.Pt(w-4, h*5/6), 0)
	// A ring: filling it must stop at the inner circle.
	img.Circle(raster.Pt(w/4, h/2), h/8, 0)

	for _, s := range d.seeds {
		if s.color == raster.Foreground {
			img.FloodFill(s.at.X, s.at.Y)
		} else {
			img.FloodFillColor(s.at.X, s.at.Y, s.color)
		}
	}
	d.h.Render(img)
}

type triangle struct {
	h       *Handles
	outline bool
}

func newTriangle(opts Options) Demo {
	w, h := opts.Width, opts.Height
	return &triangle{h: newHandles(opts, raster.Pt(w/2, h/8), raster.Pt(w/6, h*7/8), raster.Pt(w*5/6, h*2/3))}
}

func (d *triangle) Name() string { return "triangle" }
func (d *triangle) Help() string { return "space grab/drop vertex, tab outline/filled" }

func (d *triangle) Update(in input.Input) {
	d.h.Update(in)
	if in.Tab {
		d.outline = !d.outline
	}
}

func (d *triangle) Render(img *raster.Image) {
	a, b, c := d.h.Points[0], d.h.Points[1], d.h.Points[2]
	if d.outline {
		img.Triangle(a, b, c, 0)
	} else {
		img.FillTriangle(a, b, c)
	}
	img.DrawGrid(10)
	d.h.Render(img)
}
