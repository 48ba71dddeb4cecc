package draw

import "errors"

// Sentinel errors for draw package.
var (
	// ErrUnknownBackend is wrapped by NewBackend for unregistered names.
	ErrUnknownBackend = errors.New("draw: unknown backend")

	// ErrNilBackend is returned by Playback without a backend.
	ErrNilBackend = errors.New("draw: nil backend")
)
