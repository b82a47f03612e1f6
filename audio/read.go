// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audsrc/chanmap"
	"github.com/ik5/audsrc/pcm"
)

// CheckBuffer verifies that dst can hold frames frames of f.
func CheckBuffer(f pcm.Format, dst []byte, frames int) error {
	if frames < 0 {
		return fmt.Errorf("%w: negative frame count %d", ErrShortBuffer, frames)
	}
	if need := frames * f.BytesPerFrame(); len(dst) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(dst), need)
	}

	return nil
}

// ReadAll drains r in chunks of chunkFrames frames.
func ReadAll(r Reader, chunkFrames int) ([]byte, error) {
	if chunkFrames <= 0 {
		chunkFrames = 4096
	}

	bpf := r.Format().BytesPerFrame()
	buf := make([]byte, chunkFrames*bpf)
	var out []byte

	for {
		n, err := r.ReadSamples(buf, chunkFrames)
		out = append(out, buf[:n*bpf]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if n == 0 {
			return out, nil
		}
	}
}

// ChannelMapOf returns the map reported by s, or the standard layout for
// its channel count when s has none.
func ChannelMapOf(s Source) (chanmap.Map, error) {
	if m := s.ChannelMap(); m != nil {
		return m, nil
	}

	return chanmap.Default(s.Format().Channels)
}
