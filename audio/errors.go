// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"

	"github.com/ik5/audsrc/pcm"
)

var (
	// ErrBindingNotLoaded is returned when a source is built against a
	// runtime library that failed to load or lacked a symbol.
	ErrBindingNotLoaded = errors.New("backend library not loaded")

	// ErrUnsupportedFormat is returned for sample layouts or channel
	// positions that have no interchange representation.
	ErrUnsupportedFormat = pcm.ErrUnsupportedFormat

	// ErrShortBuffer is returned when dst cannot hold the requested frames.
	ErrShortBuffer = errors.New("dst too small for requested frames")

	// ErrUnknownBackend is returned by Registry.Open for unregistered names.
	ErrUnknownBackend = errors.New("unknown backend")
)
