// Package config centralizes the tunable parameters of the interactive loop.
package config

import "time"

// View resolution - the demo image in pixels.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 160
	ViewHeight = 120
)

// Rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Demos
const (
	DefaultDemo = "lines"
	CursorSpeed = 1 // pixels per frame while a movement key is held
	GrabRadius  = 6 // pixels between the cursor and a handle it can grab
)

// Inactivity
const (
	InactivityDisconnectUser = 300 // Seconds
)
