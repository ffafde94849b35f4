// Package loop runs the interactive demo browser with the standard
// Input → Update → Draw cycle.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/bitmappers/internal/demo"
	"github.com/tomz197/bitmappers/internal/draw"
	"github.com/tomz197/bitmappers/internal/input"
	"github.com/tomz197/bitmappers/internal/loop/config"
	"github.com/tomz197/bitmappers/internal/raster"
)

// statusRows is the number of terminal rows kept below the canvas.
const statusRows = 1

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	// Logger receives session events; nil discards them.
	Logger *log.Logger
	// Demo is the name of the first demo; empty selects config.DefaultDemo.
	Demo string
	// Foreground and Background replace the two sentinel colors on screen.
	Foreground raster.Color
	Background raster.Color
	// Demos is passed to every demo constructor. Width and Height are set
	// from the view resolution.
	Demos demo.Options
	// IdleTimeout ends the session after this long without input; zero
	// disables it.
	IdleTimeout time.Duration
}

// Session drives one terminal: it owns the input stream, the demo image and
// the canvas it is presented on.
type Session struct {
	state        *State
	opts         Options
	image        *raster.Image
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	termWidth    int
	termHeight   int
}

// NewSession prepares a session reading keys from r and drawing to w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) (*Session, error) {
	if opts.Demo == "" {
		opts.Demo = config.DefaultDemo
	}
	opts.Demos.Width, opts.Demos.Height = config.ViewWidth, config.ViewHeight

	d, err := demo.New(opts.Demo, opts.Demos)
	if err != nil {
		return nil, err
	}

	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		state:        NewState(d, demo.Index(opts.Demo)),
		opts:         opts,
		image:        raster.New(config.ViewWidth, config.ViewHeight, 0, 0),
		canvas:       draw.NewCanvas(config.ViewWidth, config.ViewHeight),
		chunkWriter:  draw.NewChunkWriter(w, 0, 0),
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    time.Now(),
		termSizeFunc: termSizeFunc,
		logger:       logger,
	}, nil
}

// Run starts the session loop. It blocks until the user quits, the input
// ends, or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	s.logger.Info("session started", "demo", s.state.Demo.Name())

	for s.state.Running {
		if err := ctx.Err(); err != nil {
			s.logger.Info("session cancelled", "err", err)
			break
		}

		frameStart := time.Now()

		// ===== INPUT PHASE =====
		s.processInput()

		// ===== UPDATE PHASE =====
		if err := s.updateScreen(); err != nil {
			return err
		}
		if err := s.updateDemo(); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	draw.ResetColors(s.writer)
	draw.ClearScreen(s.writer)
	s.logger.Info("session ended", "demo", s.state.Demo.Name())
	return nil
}

// Run is shorthand for NewSession followed by Session.Run.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	s, err := NewSession(r, w, opts)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

// processInput reads all pending input and tracks inactivity.
func (s *Session) processInput() {
	s.state.Input = input.ReadInput(s.inputStream)

	if s.state.Input.Any() {
		s.lastInput = time.Now()
	} else if s.opts.IdleTimeout > 0 && time.Since(s.lastInput) > s.opts.IdleTimeout {
		s.logger.Info("disconnecting idle session", "idle", time.Since(s.lastInput).Round(time.Second))
		s.state.Running = false
	}
	s.state.idle = s.opts.IdleTimeout > 0 && time.Since(s.lastInput) > s.opts.IdleTimeout*3/4

	if s.state.Input.Quit {
		s.state.Running = false
	}
}

// updateScreen handles terminal resize. On an actual size change the
// terminal is cleared and the canvas repainted in full.
func (s *Session) updateScreen() error {
	termWidth, termHeight, err := draw.TerminalSize(s.termSizeFunc)
	if err != nil {
		return err
	}
	if termWidth == s.termWidth && termHeight == s.termHeight {
		return nil
	}
	s.termWidth, s.termHeight = termWidth, termHeight

	s.chunkWriter.WriteString("\033[0m\033[H\033[2J")
	s.canvas.Resize(termWidth, termHeight-statusRows)
	s.canvas.Invalidate()
	s.state.lastStatus = ""
	s.logger.Debug("terminal resized", "width", termWidth, "height", termHeight)
	return nil
}

// updateDemo switches demos on [ and ], then feeds the input to the current one.
func (s *Session) updateDemo() error {
	in := s.state.Input
	step := 0
	if in.Next {
		step++
	}
	if in.Prev {
		step--
	}
	if step != 0 {
		n := len(demo.Names())
		index := ((s.state.Index+step)%n + n) % n
		if err := s.switchDemo(index); err != nil {
			return err
		}
		// Keys of the switching frame belong to the old demo.
		return nil
	}

	s.state.Demo.Update(in)
	return nil
}

func (s *Session) switchDemo(index int) error {
	name := demo.Names()[index]
	d, err := demo.New(name, s.opts.Demos)
	if err != nil {
		return err
	}
	s.logger.Info("demo switched", "from", s.state.Demo.Name(), "to", name)
	s.state.Demo, s.state.Index = d, index
	return nil
}
