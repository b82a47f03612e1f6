// SPDX-License-Identifier: EPL-2.0

package chanmap

import (
	"errors"
	"fmt"

	"github.com/ik5/audsrc/pcm"
)

var (
	// ErrUnknownChannel is returned when a backend reports a channel position
	// that has no canonical label.
	ErrUnknownChannel = fmt.Errorf("%w: unknown channel position", pcm.ErrUnsupportedFormat)

	// ErrNoDefaultLayout is returned when no standard layout exists for a
	// channel count.
	ErrNoDefaultLayout = fmt.Errorf("%w: no standard layout", pcm.ErrUnsupportedFormat)

	// ErrLengthMismatch is returned when a map does not agree with the
	// channel count of the stream.
	ErrLengthMismatch = errors.New("channel map length mismatch")
)
