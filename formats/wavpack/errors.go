// SPDX-License-Identifier: EPL-2.0

package wavpack

import "errors"

var (
	// ErrOpen is returned when WavpackOpenFileInputEx rejects the input.
	ErrOpen = errors.New("wavpack: cannot open")

	// ErrSeek is returned when WavpackSeekSample fails.
	ErrSeek = errors.New("wavpack: seek failed")
)
