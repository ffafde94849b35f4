// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a movement key is considered "held" after its
// last press. Terminals repeat held keys, so this bridges the repeat gap.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state. Movement keys stay set
// while held; every other field reports a press within this frame only.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Space  bool
	Enter  bool
	Tab    bool
	Plus   bool
	Minus  bool
	Next   bool // ]
	Prev   bool // [
	Escape bool
	// Number is the last digit pressed this frame, or -1.
	Number  int
	Pressed []byte
}

// Any reports whether the frame carries any key press.
func (in Input) Any() bool {
	return len(in.Pressed) > 0 || in.Left || in.Right || in.Up || in.Down
}

// keyState tracks the last time each movement key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool

	// pending holds an escape sequence cut off at the end of the last frame.
	pending []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream closes when r returns an error, including io.EOF.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
// A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	var buf []byte
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.parse(buf, time.Now())
	if s.closed {
		in.Quit = true
	}
	return in
}

// parse applies the bytes read this frame at time now. An escape sequence
// cut off at the end of buf is held back and completed by the next frame's
// bytes; if the next frame brings none, the held bytes are read as plain keys.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	in := Input{Number: -1}
	data := buf
	if len(s.pending) > 0 {
		data = append(s.pending, buf...)
		s.pending = nil
	}
	flush := len(buf) == 0

	end := len(data)
scan:
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b != '\x1b' {
			applyByte(s, &in, b, now)
			continue
		}

		n, final := escapeSequence(data[i:])
		switch {
		case n < 0 && !flush:
			s.pending = append([]byte(nil), data[i:]...)
			end = i
			break scan
		case n <= 0:
			applyByte(s, &in, b, now)
			continue
		}
		switch final {
		case 'A':
			s.state.up = now
		case 'B':
			s.state.down = now
		case 'C':
			s.state.right = now
		case 'D':
			s.state.left = now
		}
		i += n - 1
	}
	in.Pressed = data[:end]

	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	return in
}

// escapeSequence measures the sequence starting with ESC at b[0]. It returns
// the length and final byte of a CSI (ESC [ params final) or SS3 (ESC O
// final) sequence, 0 when ESC starts no sequence, and -1 when b ends before
// the sequence does. Parameters such as the modifier in ESC [ 1;5A are
// skipped.
func escapeSequence(b []byte) (n int, final byte) {
	if len(b) < 2 {
		return -1, 0
	}
	switch b[1] {
	case '[':
		for j := 2; j < len(b); j++ {
			c := b[j]
			switch {
			case c >= 0x40 && c <= 0x7e:
				return j + 1, c
			case c < 0x20 || c > 0x3f:
				// Not a CSI byte: drop what was read so far.
				return j, 0
			}
		}
		return -1, 0
	case 'O':
		if len(b) < 3 {
			return -1, 0
		}
		return 3, b[2]
	}
	return 0, 0
}

func applyByte(s *Stream, in *Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'a', 'A', 'h', 'H':
		s.state.left = now
	case 'd', 'D', 'l', 'L':
		s.state.right = now
	case 'w', 'W', 'k', 'K':
		s.state.up = now
	case 's', 'S', 'j', 'J':
		s.state.down = now
	case ' ':
		in.Space = true
	case '\n', '\r':
		in.Enter = true
	case '\t':
		in.Tab = true
	case '+', '=':
		in.Plus = true
	case '-', '_':
		in.Minus = true
	case ']':
		in.Next = true
	case '[':
		in.Prev = true
	case '\x1b':
		in.Escape = true
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		in.Number = int(b - '0')
	}
}
