// SPDX-License-Identifier: EPL-2.0

package tags

import "errors"

var (
	// ErrNotRIFF is returned when a wrapper does not start with a RIFF/WAVE
	// header.
	ErrNotRIFF = errors.New("not a RIFF WAVE header")

	// ErrNotCAF is returned when a stream is not a CAF file.
	ErrNotCAF = errors.New("not a CAF file")

	// ErrNotAIFF is returned when a stream is not an AIFF or AIFC file.
	ErrNotAIFF = errors.New("not an AIFF file")

	// ErrNoID3 is returned when an AIFF file has no ID3 chunk.
	ErrNoID3 = errors.New("no ID3 chunk")

	// ErrBadCueSheet is returned for cue sheets that cannot be parsed.
	ErrBadCueSheet = errors.New("malformed cue sheet")
)
