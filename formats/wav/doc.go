// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// It uses the github.com/go-audio library for robust WAV file handling.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 8, 16, 24 and 32-bit
//   - Any channel count and sample rate
//
// IEEE float and compressed WAV files are rejected with
// ErrUnsupportedWavLayout.
//
// # Decoding WAV Files
//
//	src, err := wav.Open("audio.wav")
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	buf := make([]byte, 4096*src.Format().BytesPerFrame())
//	n, err := src.ReadSamples(buf, 4096)
//
// Samples are delivered as 32-bit high-aligned integers. 8-bit files are
// stored unsigned and come out re-centered around zero.
//
// Tags come from the LIST/INFO chunk.
//
// # Writing WAV Files
//
// WritePCM creates a PCM file from right-justified samples:
//
//	samples := []int32{100, -100, 200, -200}
//	err := wav.WritePCM(file, 8000, 1, 16, samples)
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrUnsupportedBitDepth: Sample size the writer cannot produce
//   - ErrUnsupportedWavLayout: Unsupported WAV file structure
//
// Example:
//
//	src, err := wav.Open(path)
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    fmt.Println("Try another backend")
//	}
package wav
