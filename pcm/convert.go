// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"math"
)

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16 bits.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing.
	return int16(x * 32767.0)
}

// Float64At reads the i-th packed double sample from buf.
func Float64At(buf []byte, i int) float64 {
	return math.Float64frombits(binary.NativeEndian.Uint64(buf[8*i:]))
}

// ToInt16 converts the packed samples in buf, laid out as f, to 16-bit
// samples in dst. Integer samples keep their top 16 bits. It returns the
// number of samples converted, bounded by len(dst).
func ToInt16(dst []int16, buf []byte, f Format) int {
	bps := f.BytesPerSample()
	if bps == 0 {
		return 0
	}

	n := min(len(dst), len(buf)/bps)

	switch {
	case !f.Float:
		for i := range n {
			dst[i] = int16(Int32At(buf, i) >> 16)
		}
	case f.PackedBits == 32:
		for i := range n {
			dst[i] = Float32ToInt16(Float32At(buf, i))
		}
	default:
		for i := range n {
			dst[i] = Float32ToInt16(float32(Float64At(buf, i)))
		}
	}

	return n
}
