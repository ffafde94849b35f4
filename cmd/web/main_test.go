package main

import (
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/bitmappers/internal/loop"
	lconfig "github.com/tomz197/bitmappers/internal/loop/config"
	"github.com/tomz197/bitmappers/internal/raster"
)

func testServer(t *testing.T) *httptest.Server {
	opts := loop.Options{Foreground: raster.Black, Background: raster.White}
	srv := httptest.NewServer(newMux(opts, "demo.example", log.New(io.Discard)))
	t.Cleanup(srv.Close)
	return srv
}

func TestIndex(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{"demo.example", `/render/hilbert.png?scale=3`, "<figcaption>dither</figcaption>"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("index lacks %q", want)
		}
	}
}

func TestRender(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/render/lines.png?scale=2")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2*lconfig.ViewWidth || b.Dy() != 2*lconfig.ViewHeight {
		t.Errorf("bounds = %v", b)
	}
}

func TestRenderErrors(t *testing.T) {
	srv := testServer(t)
	tests := []struct {
		path string
		code int
	}{
		{"/render/teapot.png", http.StatusNotFound},
		{"/render/lines.gif", http.StatusNotFound},
		{"/render/lines.png?scale=0", http.StatusBadRequest},
		{"/render/lines.png?scale=big", http.StatusBadRequest},
		{"/nowhere", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.code {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.code)
			}
		})
	}
}
