package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/bitmappers/internal/config"
	"github.com/tomz197/bitmappers/internal/demo"
	"github.com/tomz197/bitmappers/internal/loop"
)

func main() {
	opts, err := loop.OptionsFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		if os.Args[1] == "list" {
			fmt.Println(strings.Join(demo.Names(), "\n"))
			return
		}
		opts.Demo = os.Args[1]
	}

	// The terminal belongs to the demo, so logs go to a file or nowhere.
	logOut := io.Discard
	if path := config.GetEnv("BITMAPPERS_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	opts.Logger = log.NewWithOptions(logOut, log.Options{ReportTimestamp: true, Prefix: "bitmappers"})

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(ctx, reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "bitmappers error: %v\n", err)
		os.Exit(1)
	}
}
