// SPDX-License-Identifier: EPL-2.0

package pcm

import "fmt"

// IntPackedBits is the width every integer sample is packed to, whatever its
// native bit depth.
const IntPackedBits = 32

// Kind is the numeric kind a backend reports for its native samples.
type Kind int

const (
	SignedInt Kind = iota
	UnsignedInt
	Float
)

func (k Kind) String() string {
	switch k {
	case SignedInt:
		return "signed"
	case UnsignedInt:
		return "unsigned"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry names the read entry point a backend must be driven through to
// produce samples in a given Format.
type Entry int

const (
	EntryInt Entry = iota
	EntryFloat
	EntryDouble
)

func (e Entry) String() string {
	switch e {
	case EntryInt:
		return "int"
	case EntryFloat:
		return "float"
	case EntryDouble:
		return "double"
	default:
		return fmt.Sprintf("Entry(%d)", int(e))
	}
}

// Format describes interleaved PCM as delivered by a source.
//
// BitsPerSample is the native depth reported by the backend; PackedBits is the
// room each sample takes in the interchange buffer. Integer samples are
// high-aligned inside their 32-bit slot, so a 16-bit sample of 0x1234 is
// delivered as 0x12340000. Samples are stored in host byte order.
type Format struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	PackedBits    int
	Float         bool
	Signed        bool
}

// BytesPerSample is the packed size of one sample.
func (f Format) BytesPerSample() int { return f.PackedBits / 8 }

// BytesPerFrame is the packed size of one frame (one sample per channel).
func (f Format) BytesPerFrame() int { return f.Channels * f.BytesPerSample() }

// Entry reports which reader has to be used to fill buffers of this format.
func (f Format) Entry() Entry {
	switch {
	case !f.Float:
		return EntryInt
	case f.PackedBits == 32:
		return EntryFloat
	default:
		return EntryDouble
	}
}

func (f Format) String() string {
	kind := "int"
	if f.Float {
		kind = "float"
	}
	return fmt.Sprintf("%d Hz, %d ch, %d-bit %s in %d", f.SampleRate, f.Channels, f.BitsPerSample, kind, f.PackedBits)
}
