package demo

import (
	"fmt"
	"math"

	"github.com/tomz197/bitmappers/internal/curve"
	"github.com/tomz197/bitmappers/internal/input"
	"github.com/tomz197/bitmappers/internal/raster"
	"github.com/tomz197/bitmappers/internal/spacefill"
)

// bezierSamples is the number of segments a curve is flattened into.
const bezierSamples = 100

type bezier struct {
	h        *Handles
	rational bool
	weight   int // inner weights in tenths
}

func newBezier(opts Options) Demo {
	w, h := opts.Width, opts.Height
	return &bezier{
		h: newHandles(opts,
			raster.Pt(w/8, h*5/6), raster.Pt(w/3, h/6),
			raster.Pt(w*2/3, h/6), raster.Pt(w*7/8, h*5/6)),
		weight: 10,
	}
}

func (d *bezier) Name() string { return "bezier" }
func (d *bezier) Help() string { return "space grab/drop, tab rational, +/- weight" }

func (d *bezier) Update(in input.Input) {
	d.h.Update(in)
	if in.Tab {
		d.rational = !d.rational
	}
	if d.rational {
		d.weight = adjust(in, d.weight, 0, 50)
	}
}

func (d *bezier) weights() []float64 {
	w := float64(d.weight) / 10
	return []float64{1, w, w, 1}
}

func (d *bezier) Render(img *raster.Image) {
	pts := d.h.Points
	var s []raster.Point
	if d.rational {
		w := d.weights()
		s = curve.Sample(bezierSamples, func(t float64) (raster.Point, bool) { return curve.Rational(pts, w, t) })
		label(img, fmt.Sprintf("w=%.1f", w[1]), raster.Pt(2, 2))
	} else {
		s = curve.Sample(bezierSamples, func(t float64) (raster.Point, bool) { return curve.Bezier(pts, t) })
	}
	img.Polyline(s, 1)

	for i := 1; i < len(pts); i++ {
		dashed(img, pts[i-1], pts[i])
	}
	for i, p := range pts {
		label(img, fmt.Sprintf("P%d", i), p.Add(raster.Pt(3, 3)))
	}
	d.h.Render(img)
}

// dashed draws every other group of three pixels of the segment pq in gray.
func dashed(img *raster.Image, p, q raster.Point) {
	n := max(abs(q.X-p.X), abs(q.Y-p.Y))
	for i := 0; i <= n; i++ {
		if i/3%2 == 1 || n == 0 {
			continue
		}
		x := p.X + (q.X-p.X)*i/n
		y := p.Y + (q.Y-p.Y)*i/n
		if img.IsBackground(x, y) {
			img.PlotColor(x, y, raster.GridGray)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type arc struct {
	h    *Handles
	step int // rotation step in hundredths of a radian
}

func newArc(opts Options) Demo {
	w, h := opts.Width, opts.Height
	return &arc{
		h:    newHandles(opts, raster.Pt(w/6, h*5/6), raster.Pt(w*5/6, h/6), raster.Pt(w/6, h/6)),
		step: 5,
	}
}

func (d *arc) Name() string { return "arc" }
func (d *arc) Help() string { return "space grab p/q/k, +/- step" }

func (d *arc) Update(in input.Input) {
	d.h.Update(in)
	d.step = adjust(in, d.step, 1, 100)
}

func (d *arc) Render(img *raster.Image) {
	p, q, k := d.h.Points[0], d.h.Points[1], d.h.Points[2]
	dashed(img, k, p)
	dashed(img, k, q)
	img.Polyline(curve.Arc(p, q, k, float64(d.step)/100), 0)
	label(img, fmt.Sprintf("t=%.2f", float64(d.step)/100), raster.Pt(2, 2))
	d.h.Render(img)
}

// spaceFill shows one space-filling curve whose order is changed with +/-.
type spaceFill struct {
	name     string
	order    int
	maxOrder int
	points   func(order int, w, h int) []raster.Point
}

func (d *spaceFill) Name() string { return d.name }
func (d *spaceFill) Help() string { return "+/- order" }

func (d *spaceFill) Update(in input.Input) {
	d.order = adjust(in, d.order, 0, d.maxOrder)
}

func (d *spaceFill) Render(img *raster.Image) {
	spacefill.Draw(img, d.points(d.order, img.Width(), img.Height()), 0)
	label(img, fmt.Sprintf("order %d", d.order), raster.Pt(2, 2))
}

// gridStep returns the spacing that fits a 2^order grid into the image, and
// the grid's top-left corner.
func gridStep(order, w, h int) (int, raster.Point) {
	side := min(w, h) - 4
	cells := 1<<order - 1
	step := side
	if cells > 0 {
		step = side / cells
	}
	step = max(step, 1)
	span := cells * step
	return step, raster.Pt((w-span)/2, (h-span)/2)
}

func newHilbert(Options) Demo {
	return &spaceFill{
		name:     "hilbert",
		order:    3,
		maxOrder: 6,
		points: func(order, w, h int) []raster.Point {
			step, tl := gridStep(order, w, h)
			start := tl.Add(raster.Pt(0, (1<<order-1)*step))
			return spacefill.Hilbert(order, step, start)
		},
	}
}

func newZOrder(Options) Demo {
	return &spaceFill{
		name:     "zorder",
		order:    3,
		maxOrder: 6,
		points: func(order, w, h int) []raster.Point {
			step, tl := gridStep(order, w, h)
			pts := spacefill.ZOrder(order, step)
			for i := range pts {
				pts[i] = pts[i].Add(tl)
			}
			return pts
		},
	}
}

func newGosper(Options) Demo {
	return &spaceFill{
		name:     "gosper",
		order:    2,
		maxOrder: 4,
		points: func(order, w, h int) []raster.Point {
			// Each order scales the curve by sqrt(7).
			step := max(float64(min(w, h))*0.6/math.Pow(math.Sqrt(7), float64(order)), 1.5)
			return spacefill.Gosper(order, step, raster.Pt(w/3, h*4/5))
		},
	}
}
