package ripple

import "errors"

var (
	// ErrCycle is returned when a computed reads itself, directly or through
	// other nodes, while it is being recomputed.
	ErrCycle = errors.New("ripple: cyclic dependency")

	// ErrDisposed is returned when a disposed node's resources are used.
	ErrDisposed = errors.New("ripple: use after dispose")
)
