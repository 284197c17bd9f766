package app

import (
	"io"

	"onepaslots/internal/runtime/clock"
)

// Option customizes an App.
type Option func(*App)

// WithClock replaces the wall clock used for "today", the check timestamp
// and every sleep.
func WithClock(c clock.Clock) Option {
	return func(a *App) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithOutput sets where the plain-text summary is printed (default stdout).
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		if w != nil {
			a.out = w
		}
	}
}
