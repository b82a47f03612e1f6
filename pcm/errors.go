// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrUnsupportedFormat indicates a sample layout, bit depth or channel
	// arrangement that cannot be represented in the interchange format.
	ErrUnsupportedFormat = errors.New("unsupported sample format")
)
