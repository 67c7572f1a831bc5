//go:build nowindow

package orbitwin

import "github.com/papapumpkin/bbdl/internal/orbit"

// Options configures the window.
type Options struct {
	Width, Height int
	Scale         float64
	Reloads       <-chan orbit.Reload
}

// Run reports ErrUnavailable; this build has no window backend.
func Run(*Scene, Options) error { return ErrUnavailable }
