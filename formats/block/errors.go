// SPDX-License-Identifier: EPL-2.0

package block

import "errors"

var (
	// ErrBadBlockSize is returned when a decoder reports no usable block
	// size.
	ErrBadBlockSize = errors.New("block: invalid maximum block size")

	// ErrBlockOverflow is returned by decoders asked to decode into a
	// buffer smaller than their block.
	ErrBlockOverflow = errors.New("block: decoded block larger than buffer")
)
