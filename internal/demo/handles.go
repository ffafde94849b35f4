package demo

import (
	"github.com/tomz197/bitmappers/internal/input"
	"github.com/tomz197/bitmappers/internal/loop/config"
	"github.com/tomz197/bitmappers/internal/raster"
)

// DragState is either Idle or Dragging.
type DragState interface {
	dragState()
}

// Idle means no handle follows the cursor.
type Idle struct{}

// Dragging means handle Target follows the cursor.
type Dragging struct {
	Target int
}

func (Idle) dragState()     {}
func (Dragging) dragState() {}

// Handles is a set of control points moved with a keyboard cursor. Space
// grabs the handle nearest the cursor and drops it again; Escape drops it.
type Handles struct {
	Points []raster.Point
	Cursor raster.Point
	State  DragState

	width  int
	height int
}

func newHandles(opts Options, pts ...raster.Point) *Handles {
	h := &Handles{
		Points: pts,
		State:  Idle{},
		width:  opts.Width,
		height: opts.Height,
	}
	if len(pts) > 0 {
		h.Cursor = pts[0]
	}
	return h
}

// Update moves the cursor and the dragged handle.
func (h *Handles) Update(in input.Input) {
	if in.Left {
		h.Cursor.X -= config.CursorSpeed
	}
	if in.Right {
		h.Cursor.X += config.CursorSpeed
	}
	if in.Up {
		h.Cursor.Y -= config.CursorSpeed
	}
	if in.Down {
		h.Cursor.Y += config.CursorSpeed
	}
	h.Cursor.X = clamp(h.Cursor.X, 0, h.width-1)
	h.Cursor.Y = clamp(h.Cursor.Y, 0, h.height-1)

	switch s := h.State.(type) {
	case Idle:
		if in.Space {
			if i := h.nearest(); i >= 0 {
				h.State = Dragging{Target: i}
			}
		}
	case Dragging:
		h.Points[s.Target] = h.Cursor
		if in.Space || in.Escape {
			h.State = Idle{}
		}
	}
}

// nearest returns the handle within GrabRadius of the cursor closest to it,
// or -1.
func (h *Handles) nearest() int {
	best, bestDist := -1, config.GrabRadius*config.GrabRadius
	for i, p := range h.Points {
		dx, dy := p.X-h.Cursor.X, p.Y-h.Cursor.Y
		if d := dx*dx + dy*dy; d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Render marks every handle with a small blue box and the cursor with a red
// cross.
func (h *Handles) Render(img *raster.Image) {
	for _, p := range h.Points {
		for _, d := range []raster.Point{{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 0},
			{X: 1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1}} {
			q := p.Add(d)
			img.PlotColor(q.X, q.Y, raster.AzureBlue)
		}
	}
	c := h.Cursor
	for d := -2; d <= 2; d++ {
		img.PlotColor(c.X+d, c.Y, raster.Red)
		img.PlotColor(c.X, c.Y+d, raster.Red)
	}
}
