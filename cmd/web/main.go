package main

import (
	_ "embed"
	"fmt"
	"html"
	"image/png"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tomz197/bitmappers/internal/config"
	"github.com/tomz197/bitmappers/internal/demo"
	"github.com/tomz197/bitmappers/internal/imageio"
	"github.com/tomz197/bitmappers/internal/loop"
	lconfig "github.com/tomz197/bitmappers/internal/loop/config"
	"github.com/tomz197/bitmappers/internal/raster"
)

const (
	defaultHost  = "0.0.0.0"
	defaultPort  = "8080"
	defaultScale = 3
	maxScale     = 8
)

//go:embed index.html
var htmlPage string

func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "web"})

	opts, err := loop.OptionsFromEnv()
	if err != nil {
		logger.Fatal("configuration error", "err", err)
	}

	mux := newMux(opts, sshHost, logger)
	addr := fmt.Sprintf("%s:%s", host, port)
	logger.Info("Starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

func newMux(opts loop.Options, sshHost string, logger *log.Logger) *http.ServeMux {
	page := indexPage(sshHost)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})

	mux.HandleFunc("GET /render/{file}", func(w http.ResponseWriter, r *http.Request) {
		name, ok := strings.CutSuffix(r.PathValue("file"), ".png")
		if !ok {
			http.NotFound(w, r)
			return
		}
		scale := defaultScale
		if s := r.URL.Query().Get("scale"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > maxScale {
				http.Error(w, fmt.Sprintf("scale must be 1-%d", maxScale), http.StatusBadRequest)
				return
			}
			scale = n
		}

		dopts := opts.Demos
		dopts.Width, dopts.Height = lconfig.ViewWidth, lconfig.ViewHeight
		d, err := demo.New(name, dopts)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		img := raster.New(lconfig.ViewWidth, lconfig.ViewHeight, 0, 0)
		d.Render(img)

		w.Header().Set("Content-Type", "image/png")
		out := imageio.Scale(imageio.ToRGBA(img, opts.Foreground, opts.Background), scale)
		if err := png.Encode(w, out); err != nil {
			logger.Error("encode frame", "demo", name, "err", err)
		}
	})
	return mux
}

// indexPage fills the page template with one figure per demo.
func indexPage(sshHost string) string {
	var figs strings.Builder
	for _, name := range demo.Names() {
		n := html.EscapeString(name)
		fmt.Fprintf(&figs, `<figure><img src="/render/%s.png?scale=%d" width="%d" height="%d" alt="%s"><figcaption>%s</figcaption></figure>`+"\n",
			n, defaultScale, lconfig.ViewWidth*defaultScale, lconfig.ViewHeight*defaultScale, n, n)
	}
	page := strings.Replace(htmlPage, "{{.SSHHost}}", html.EscapeString(sshHost), -1)
	return strings.Replace(page, "{{.Demos}}", figs.String(), -1)
}
