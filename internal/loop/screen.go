package loop

import (
	"fmt"

	"github.com/tomz197/bitmappers/internal/demo"
)

// drawFrame renders the demo into the image, presents it on the canvas and
// writes the status line.
func (s *Session) drawFrame() error {
	s.image.Clear()
	s.state.Demo.Render(s.image)

	s.canvas.Clear(s.opts.Background)
	s.image.DrawWithBackground(s.canvas.Frame(), s.canvas.Width(), s.opts.Foreground, s.opts.Background)
	s.canvas.Render(s.chunkWriter)

	s.drawStatus()
	return s.chunkWriter.Flush()
}

// statusText is the bottom line: position, demo name and its keys.
func (s *Session) statusText() string {
	if s.state.idle {
		return "idle: press any key to stay connected"
	}
	d := s.state.Demo
	return fmt.Sprintf("[%d/%d] %s | %s | [ ] switch, q quit",
		s.state.Index+1, len(demo.Names()), d.Name(), d.Help())
}

// drawStatus rewrites the status line when its text changed.
func (s *Session) drawStatus() {
	text := s.statusText()
	if text == s.state.lastStatus || s.termHeight < 1 {
		return
	}
	s.state.lastStatus = text
	if len(text) > s.termWidth {
		text = text[:max(s.termWidth, 0)]
	}
	s.chunkWriter.WriteAt(1, s.termHeight, "\033[0m")
	s.chunkWriter.WriteString(text)
	s.chunkWriter.ClearLine()
}
