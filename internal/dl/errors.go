// SPDX-License-Identifier: EPL-2.0

package dl

import "errors"

var (
	// ErrOpen is returned when a shared library cannot be loaded.
	ErrOpen = errors.New("cannot load library")

	// ErrMissingSymbol is returned when a required entry point is absent.
	ErrMissingSymbol = errors.New("missing symbol")

	// ErrUnsupportedPlatform is returned where runtime loading is not
	// available.
	ErrUnsupportedPlatform = errors.New("runtime library loading not supported on this platform")
)
