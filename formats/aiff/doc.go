// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
// Currently supported:
//   - AIFF and uncompressed AIFC
//   - PCM 16, 24 and 32-bit
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
//	src, err := aiff.Open("audio.aif")
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	buf := make([]byte, 4096*src.Format().BytesPerFrame())
//	n, err := src.ReadSamples(buf, 4096)
//
// Samples are decoded in blocks of 4096 frames and delivered as 32-bit
// high-aligned integers.
//
// # Tags
//
// Tags are read from the "ID3 " chunk, if any. A broken ID3 chunk costs the
// tags but not the audio.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: Sample size other than 16, 24 or 32
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
//
// The last two wrap audio.ErrUnsupportedFormat.
package aiff
