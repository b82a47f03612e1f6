// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files and
// github.com/dhowden/tag to read their ID3 tags.
//
// # Decoding MP3 Files
//
//	src, err := mp3.Open("audio.mp3")
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	buf := make([]byte, 4096*src.Format().BytesPerFrame())
//	n, err := src.ReadSamples(buf, 4096)
//
// # Output Format
//
// go-mp3 always produces 16-bit stereo, so every source reports two
// channels, mono files included. Samples are delivered as 32-bit
// high-aligned integers. The channel map is nil (standard stereo).
//
// # Ranges
//
// SetRange and SeekTo translate frame positions into byte offsets of the
// decoded stream.
package mp3
