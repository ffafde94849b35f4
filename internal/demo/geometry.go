package demo

import (
	"fmt"
	"math"

	"github.com/tomz197/bitmappers/internal/input"
	"github.com/tomz197/bitmappers/internal/raster"
)

// bounding shows the smallest circle around its handles. Tab switches to
// the circumcircle of the first three, built from two perpendicular
// bisectors.
type bounding struct {
	h            *Handles
	circumcircle bool
}

func newBounding(opts Options) Demo {
	w, h := opts.Width, opts.Height
	return &bounding{h: newHandles(opts,
		raster.Pt(w/3, h/3), raster.Pt(w*2/3, h/4), raster.Pt(w/2, h*3/4),
		raster.Pt(w*3/5, h/2), raster.Pt(w/4, h*3/5))}
}

func (d *bounding) Name() string { return "bounding" }
func (d *bounding) Help() string { return "space grab/drop, tab circumcircle of P0-P2" }

func (d *bounding) Update(in input.Input) {
	d.h.Update(in)
	if in.Tab {
		d.circumcircle = !d.circumcircle
	}
}

func (d *bounding) Render(img *raster.Image) {
	pts := d.h.Points
	var c raster.Circle
	if d.circumcircle {
		a, b, q := pts[0], pts[1], pts[2]
		img.LineAcross(raster.Bisector(a, b), 0)
		img.LineAcross(raster.Bisector(b, q), 0)
		for _, e := range [][2]raster.Point{{a, b}, {b, q}, {q, a}} {
			dashed(img, e[0], e[1])
		}
		c = raster.Circumcircle(a, b, q)
	} else {
		c = raster.BoundingCircle(pts)
	}
	img.Circle(c.Center, int(math.Ceil(c.Radius)), 0)
	img.Circle(c.Center, 1, 0)

	for i, p := range pts {
		label(img, fmt.Sprintf("P%d", i), p.Add(raster.Pt(3, 3)))
	}
	label(img, fmt.Sprintf("r=%.1f", c.Radius), raster.Pt(2, 2))
	d.h.Render(img)
}
