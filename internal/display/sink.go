// Package display defines where rendered frames go and provides a terminal
// implementation.
package display

import "errors"

var (
	// ErrBadFrame reports a pixel buffer whose length does not match its
	// dimensions.
	ErrBadFrame = errors.New("display: pixel count does not match frame size")
	// ErrClosed reports a push to a sink whose surface is gone.
	ErrClosed = errors.New("display: sink closed")
)

// Sink presents frames of packed 0xRRGGBB pixels and reports when the user
// wants to quit.
type Sink interface {
	Push(pixels []uint32, width, height int) error
	QuitRequested() bool
}
