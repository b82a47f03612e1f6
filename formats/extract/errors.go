// SPDX-License-Identifier: EPL-2.0

package extract

import "errors"

var (
	ErrBadRange   = errors.New("extract: invalid range")
	ErrNoChannels = errors.New("extract: session reports no channels")
)
