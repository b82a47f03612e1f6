// SPDX-License-Identifier: EPL-2.0

package pcm

import "fmt"

// Negotiate picks the interchange packing for a backend's native samples.
//
// Integers of any depth from 1 to 32 bits, signed or unsigned, are packed to
// IntPackedBits and delivered signed; unsigned backends are expected to
// re-center their samples while packing. 32-bit float stays 32-bit and
// 64-bit float stays 64-bit. Everything else is rejected.
func Negotiate(sampleRate, channels, bits int, kind Kind) (Format, error) {
	if sampleRate <= 0 || channels <= 0 {
		return Format{}, fmt.Errorf("%w: %d Hz, %d channels", ErrUnsupportedFormat, sampleRate, channels)
	}

	f := Format{
		SampleRate:    sampleRate,
		Channels:      channels,
		BitsPerSample: bits,
		Signed:        true,
	}

	switch kind {
	case SignedInt, UnsignedInt:
		if bits < 1 || bits > IntPackedBits {
			return Format{}, fmt.Errorf("%w: %d-bit %s integer", ErrUnsupportedFormat, bits, kind)
		}
		f.PackedBits = IntPackedBits
	case Float:
		if bits != 32 && bits != 64 {
			return Format{}, fmt.Errorf("%w: %d-bit float", ErrUnsupportedFormat, bits)
		}
		f.PackedBits = bits
		f.Float = true
	default:
		return Format{}, fmt.Errorf("%w: kind %s", ErrUnsupportedFormat, kind)
	}

	return f, nil
}
