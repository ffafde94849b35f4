// Command xbm2go converts an XBM bitmap into Go source declaring its
// dimensions and packed bits.
//
// Usage:
//
//	xbm2go [-pkg name] [-o out.go] file.xbm
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/bitmappers/internal/xbm"
)

func main() {
	pkg := flag.String("pkg", "main", "package clause of the generated file")
	out := flag.String("o", "", "output file (default stdout)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: xbm2go [-pkg name] [-o out.go] file.xbm\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "xbm2go"})
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	bm, err := xbm.Open(flag.Arg(0))
	if err != nil {
		logger.Fatal("read bitmap", "err", err)
	}
	src, err := bm.GoSource(*pkg)
	if err != nil {
		logger.Fatal("generate source", "err", err)
	}

	if *out == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		logger.Fatal("write output", "err", err)
	}
	logger.Info("converted", "bitmap", bm.Name, "width", bm.Width, "height", bm.Height, "out", *out)
}
