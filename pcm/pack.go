// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"math"
)

// Int16ToInt32 places a 16-bit sample in the high half of a 32-bit slot.
func Int16ToInt32(v int16) int32 {
	return int32(v) << 16
}

// HighAlign shifts a right-justified sample of the given depth into the top
// bits of a 32-bit slot.
func HighAlign(v int32, bits int) int32 {
	if bits >= IntPackedBits {
		return v
	}
	return v << uint(IntPackedBits-bits)
}

// PutInt32s packs right-justified samples of the given depth into dst,
// high-aligned and in host order. It returns the number of bytes written.
// dst must hold at least 4*len(src) bytes.
func PutInt32s(dst []byte, src []int32, bits int) int {
	shift := uint(0)
	if bits < IntPackedBits {
		shift = uint(IntPackedBits - bits)
	}

	for i, v := range src {
		binary.NativeEndian.PutUint32(dst[4*i:], uint32(v<<shift))
	}

	return 4 * len(src)
}

// PutInt16LE converts little-endian 16-bit samples from src into packed
// 32-bit samples in dst. It returns the number of samples converted.
func PutInt16LE(dst, src []byte) int {
	n := len(src) / 2
	for i := range n {
		v := int16(binary.LittleEndian.Uint16(src[2*i:]))
		binary.NativeEndian.PutUint32(dst[4*i:], uint32(Int16ToInt32(v)))
	}

	return n
}

// PutFloat32s stores float samples in host order and returns the number of
// bytes written.
func PutFloat32s(dst []byte, src []float32) int {
	for i, v := range src {
		binary.NativeEndian.PutUint32(dst[4*i:], math.Float32bits(v))
	}

	return 4 * len(src)
}

// ShiftInPlace high-aligns right-justified host-order 32-bit samples that
// already sit in buf.
func ShiftInPlace(buf []byte, bits int) {
	if bits >= IntPackedBits {
		return
	}

	shift := uint(IntPackedBits - bits)
	for i := 0; i+4 <= len(buf); i += 4 {
		v := int32(binary.NativeEndian.Uint32(buf[i:]))
		binary.NativeEndian.PutUint32(buf[i:], uint32(v<<shift))
	}
}

// Int32At reads the i-th packed 32-bit sample from buf.
func Int32At(buf []byte, i int) int32 {
	return int32(binary.NativeEndian.Uint32(buf[4*i:]))
}

// Float32At reads the i-th packed float sample from buf.
func Float32At(buf []byte, i int) float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(buf[4*i:]))
}
