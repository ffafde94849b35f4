package raster

import (
	"errors"
	"testing"
)

func TestPlotGet(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		inside bool
	}{
		{"origin", 0, 0, true},
		{"last pixel", 9, 4, true},
		{"middle", 5, 2, true},
		{"negative x", -1, 2, false},
		{"negative y", 3, -1, false},
		{"x past width", 10, 0, false},
		{"y past height", 0, 5, false},
		{"far away", 1000, -1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(10, 5, 0, 0)
			img.Plot(tt.x, tt.y)

			c, ok := img.Get(tt.x, tt.y)
			if ok != tt.inside {
				t.Fatalf("Get(%d, %d) ok = %v, want %v", tt.x, tt.y, ok, tt.inside)
			}
			if tt.inside && c != Foreground {
				t.Errorf("Get(%d, %d) = %#06x, want Foreground", tt.x, tt.y, c)
			}
			want := 0
			if tt.inside {
				want = 1
			}
			if got := img.CountColor(Foreground); got != want {
				t.Errorf("drawn pixels = %d, want %d", got, want)
			}
		})
	}
}

func TestOutOfBoundsIsNotBackground(t *testing.T) {
	img := New(3, 3, 0, 0)
	if img.IsBackground(-1, 0) {
		t.Error("IsBackground(-1, 0) = true, want false")
	}
	if c, ok := img.Get(3, 3); ok || c == Background {
		t.Errorf("Get(3, 3) = %#06x, %v; want absent", c, ok)
	}
}

func TestNewFromPixels(t *testing.T) {
	pix := make([]Color, 6)
	img, err := NewFromPixels(3, 2, pix)
	if err != nil {
		t.Fatalf("NewFromPixels: %v", err)
	}
	img.PlotColor(2, 1, Red)
	if pix[5] != Red {
		t.Errorf("backing slice not shared: pix[5] = %#06x", pix[5])
	}

	if _, err := NewFromPixels(4, 2, pix); !errors.Is(err, ErrPixelCount) {
		t.Errorf("NewFromPixels(4, 2) error = %v, want ErrPixelCount", err)
	}
}

func TestClear(t *testing.T) {
	img := New(4, 4, 0, 0)
	img.Plot(1, 1)
	img.PlotColor(2, 2, Red)
	img.Clear()
	if got := img.CountColor(Background); got != 16 {
		t.Errorf("background pixels after Clear = %d, want 16", got)
	}
}

func TestDraw(t *testing.T) {
	const stride = 6
	img := New(2, 2, 1, 1)
	img.Plot(0, 0)
	img.PlotColor(1, 0, GridGray)

	fg, bg, sentinel := Red, AzureBlue, Color(0x123456)

	t.Run("without background", func(t *testing.T) {
		dst := make([]Color, stride*4)
		for i := range dst {
			dst[i] = sentinel
		}
		img.Draw(dst, stride, fg)
		if dst[1*stride+1] != fg {
			t.Errorf("foreground pixel = %#06x, want %#06x", dst[1*stride+1], fg)
		}
		if dst[1*stride+2] != GridGray {
			t.Errorf("overlay pixel = %#06x, want GridGray", dst[1*stride+2])
		}
		if dst[2*stride+1] != sentinel {
			t.Errorf("background pixel overwritten: %#06x", dst[2*stride+1])
		}
	})

	t.Run("with background", func(t *testing.T) {
		dst := make([]Color, stride*4)
		img.DrawWithBackground(dst, stride, fg, bg)
		if dst[2*stride+1] != bg || dst[2*stride+2] != bg {
			t.Errorf("background pixels = %#06x %#06x, want %#06x", dst[2*stride+1], dst[2*stride+2], bg)
		}
		if dst[0] != 0 {
			t.Errorf("pixel outside placement touched: %#06x", dst[0])
		}
	})

	t.Run("clipped", func(t *testing.T) {
		big := New(5, 5, 4, 2)
		big.DrawOutline()
		dst := make([]Color, stride*4)
		big.Draw(dst, stride, fg)
		// Columns 4 and 5, rows 2 and 3 are the only destination pixels.
		for i, c := range dst {
			x, y := i%stride, i/stride
			inside := x >= 4 && y >= 2
			if !inside && c != 0 {
				t.Errorf("pixel (%d, %d) = %#06x outside the placement", x, y, c)
			}
		}
	})
}

func TestDrawRaw(t *testing.T) {
	img := New(2, 1, 0, 0)
	img.PlotColor(1, 0, Red)
	dst := make([]Color, 2)
	img.DrawRaw(dst, 2)
	if dst[0] != Background || dst[1] != Red {
		t.Errorf("DrawRaw = %#06x, want [White Red]", dst)
	}
}

func TestFromRGB(t *testing.T) {
	c := FromRGB(0x12, 0x34, 0x56)
	if c != 0x123456 {
		t.Fatalf("FromRGB = %#06x, want 0x123456", c)
	}
	r, g, b := c.RGB()
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("RGB() = %#x %#x %#x", r, g, b)
	}
	if FromRGB(255, 255, 255) != White || FromRGB(0, 127, 255) != AzureBlue {
		t.Error("named colors do not follow the packing rule")
	}
}
