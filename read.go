// SPDX-License-Identifier: EPL-2.0

package audsrc

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/pcm"
)

// ReadInt16 drains r and returns its interleaved samples as 16-bit PCM.
// Integer sources keep their top 16 bits; float sources are clamped to
// [-1, 1] and scaled. chunkFrames sets how many frames are read per call,
// 4096 when not positive.
//
// Example:
//
//	src, _ := flac.Open("track.flac")
//	defer src.Close()
//	samples, err := audsrc.ReadInt16(src, 4096)
func ReadInt16(r audio.Reader, chunkFrames int) ([]int16, error) {
	if chunkFrames <= 0 {
		chunkFrames = 4096
	}

	f := r.Format()
	buf := make([]byte, chunkFrames*f.BytesPerFrame())
	conv := make([]int16, chunkFrames*f.Channels)

	// Start from the reported length when there is one.
	var out []int16
	if n := r.Length(); n > 0 {
		out = make([]int16, 0, n*int64(f.Channels))
	}

	for {
		n, err := r.ReadSamples(buf, chunkFrames)
		if n > 0 {
			m := pcm.ToInt16(conv, buf[:n*f.BytesPerFrame()], f)
			out = append(out, conv[:m]...)
		}

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w", err)
		}
	}
}
