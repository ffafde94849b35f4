package demo

import (
	"errors"
	"math"
	"testing"

	"github.com/tomz197/bitmappers/internal/input"
	"github.com/tomz197/bitmappers/internal/raster"
)

var testOpts = Options{Width: 160, Height: 120}

// idle is a frame with no keys pressed.
var idle = input.Input{Number: -1}

func press(f func(*input.Input)) input.Input {
	in := idle
	f(&in)
	return in
}

func TestEveryDemoRenders(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			d, err := New(name, testOpts)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if d.Name() != name {
				t.Errorf("Name() = %q", d.Name())
			}
			if d.Help() == "" {
				t.Error("empty help")
			}

			img := raster.New(testOpts.Width, testOpts.Height, 0, 0)
			for _, in := range []input.Input{
				idle,
				press(func(in *input.Input) { in.Plus = true }),
				press(func(in *input.Input) { in.Tab = true }),
				press(func(in *input.Input) { in.Right, in.Down = true, true }),
			} {
				d.Update(in)
				img.Clear()
				d.Render(img)
				if img.CountColor(raster.Background) == len(img.Pixels()) {
					t.Fatalf("frame after %+v is blank", in)
				}
			}
		})
	}
}

func TestNewUnknown(t *testing.T) {
	if _, err := New("teapot", testOpts); !errors.Is(err, ErrUnknownDemo) {
		t.Errorf("error = %v, want ErrUnknownDemo", err)
	}
	if Index("teapot") != -1 || Index("lines") != 0 {
		t.Error("Index does not match the registry")
	}
}

func TestHandlesDrag(t *testing.T) {
	h := newHandles(testOpts, raster.Pt(10, 10), raster.Pt(50, 50))

	h.Update(press(func(in *input.Input) { in.Space = true }))
	if s, ok := h.State.(Dragging); !ok || s.Target != 0 {
		t.Fatalf("state after grab = %#v, want Dragging{0}", h.State)
	}

	right := press(func(in *input.Input) { in.Right = true })
	for range 5 {
		h.Update(right)
	}
	if h.Points[0] != raster.Pt(15, 10) {
		t.Errorf("dragged handle at %v, want (15, 10)", h.Points[0])
	}

	h.Update(press(func(in *input.Input) { in.Space = true }))
	if _, ok := h.State.(Idle); !ok {
		t.Fatalf("state after drop = %#v, want Idle", h.State)
	}
	h.Update(right)
	if h.Points[0] != raster.Pt(15, 10) {
		t.Errorf("dropped handle moved to %v", h.Points[0])
	}
}

func TestHandlesGrabNeedsProximity(t *testing.T) {
	h := newHandles(testOpts, raster.Pt(10, 10))
	h.Cursor = raster.Pt(80, 80)
	h.Update(press(func(in *input.Input) { in.Space = true }))
	if _, ok := h.State.(Idle); !ok {
		t.Errorf("grabbed a distant handle: %#v", h.State)
	}
}

func TestHandlesCursorStaysInside(t *testing.T) {
	h := newHandles(testOpts, raster.Pt(0, 0))
	h.Update(press(func(in *input.Input) { in.Left, in.Up = true, true }))
	if h.Cursor != raster.Pt(0, 0) {
		t.Errorf("cursor left the image: %v", h.Cursor)
	}
}

func TestEllipseQuadrantToggle(t *testing.T) {
	d := newEllipse(testOpts).(*ellipse)
	d.Update(press(func(in *input.Input) { in.Number = 2 }))
	want := [4]bool{true, false, true, true}
	if d.quadrants != want {
		t.Errorf("quadrants = %v, want %v", d.quadrants, want)
	}
}

func TestFillAtCursor(t *testing.T) {
	d := newFill(testOpts).(*fill)
	img := raster.New(testOpts.Width, testOpts.Height, 0, 0)
	d.Render(img)
	before := img.CountColor(raster.Foreground)

	// The cursor starts at the center of the square.
	d.Update(press(func(in *input.Input) { in.Enter = true }))
	img.Clear()
	d.Render(img)
	if after := img.CountColor(raster.Foreground); after <= before {
		t.Errorf("fill did not add pixels: %d -> %d", before, after)
	}

	d.Update(press(func(in *input.Input) { in.Tab = true }))
	img.Clear()
	d.Render(img)
	if got := img.CountColor(raster.Foreground); got != before {
		t.Errorf("tab left %d pixels, want %d", got, before)
	}
}

func TestDitherIsTwoTone(t *testing.T) {
	d := newDither(testOpts).(*ditherDemo)
	img := raster.New(testOpts.Width, testOpts.Height, 0, 0)
	d.Render(img)
	for i, c := range img.Pixels() {
		if c != raster.Foreground && c != raster.Background {
			t.Fatalf("pixel %d = %#06x", i, c)
		}
	}
}

func TestAdjust(t *testing.T) {
	plus := press(func(in *input.Input) { in.Plus = true })
	minus := press(func(in *input.Input) { in.Minus = true })
	if got := adjust(plus, 3, 0, 3); got != 3 {
		t.Errorf("adjust past max = %d", got)
	}
	if got := adjust(minus, 0, 0, 3); got != 0 {
		t.Errorf("adjust past min = %d", got)
	}
	if got := adjust(plus, 1, 0, 3); got != 2 {
		t.Errorf("adjust = %d, want 2", got)
	}
}

func TestBoundingDrawsEnclosingCircle(t *testing.T) {
	d := newBounding(testOpts).(*bounding)
	for _, circumcircle := range []bool{false, true} {
		d.circumcircle = circumcircle
		c := raster.BoundingCircle(d.h.Points)
		pts := d.h.Points
		if circumcircle {
			c = raster.Circumcircle(pts[0], pts[1], pts[2])
			pts = pts[:3]
		}
		for _, p := range pts {
			if !c.Contains(p) {
				t.Errorf("circumcircle=%v: %+v leaves out %v", circumcircle, c, p)
			}
		}

		img := raster.New(testOpts.Width, testOpts.Height, 0, 0)
		d.Render(img)
		r := int(math.Ceil(c.Radius))
		for _, p := range []raster.Point{c.Center.Add(raster.Pt(-r, 0)), c.Center.Add(raster.Pt(r, 0))} {
			if col, ok := img.Get(p.X, p.Y); ok && col != raster.Foreground {
				t.Errorf("circumcircle=%v: circle pixel %v not drawn", circumcircle, p)
			}
		}
	}
}
