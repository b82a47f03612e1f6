// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
// Vorbis is a free, open-source lossy audio compression format.
//
// # Decoding Vorbis Files
//
//	src, err := vorbis.Open("audio.ogg")
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
//   - Sample format: 32-bit float in host byte order
//   - Channels: Vorbis I order, reported through ChannelMap for up to 8
//   - Sample rate: Depends on file
//
// Files with more than 8 channels have no defined order and report a nil
// channel map.
//
// # Tags and Ranges
//
// Tags come from the comment header. SetRange and SeekTo reposition the
// decoder, which requires the input to be seekable; Open always is.
package vorbis
