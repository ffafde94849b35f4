package loop

import (
	"github.com/tomz197/bitmappers/internal/demo"
	"github.com/tomz197/bitmappers/internal/input"
)

// State holds the per-session browser state.
type State struct {
	Input   input.Input
	Demo    demo.Demo
	Index   int // registry position of Demo
	Running bool

	lastStatus string // Status line currently on screen
	idle       bool   // Whether the idle warning is on screen
}

// NewState creates a running state showing the demo at index.
func NewState(d demo.Demo, index int) *State {
	return &State{Demo: d, Index: index, Running: true}
}
