// SPDX-License-Identifier: EPL-2.0

package chanmap

import (
	"fmt"
	"math/bits"
	"strings"
)

// Label is a canonical speaker position. Its value is the WAVE channel mask
// bit position plus one.
type Label uint8

const (
	FrontLeft Label = iota + 1
	FrontRight
	FrontCenter
	LowFrequency
	BackLeft
	BackRight
	FrontLeftOfCenter
	FrontRightOfCenter
	BackCenter
	SideLeft
	SideRight
	TopCenter
	TopFrontLeft
	TopFrontCenter
	TopFrontRight
	TopBackLeft
	TopBackCenter
	TopBackRight
)

// MaxLabel is the highest label with a known meaning.
const MaxLabel = TopBackRight

var labelNames = [...]string{
	FrontLeft:          "FL",
	FrontRight:         "FR",
	FrontCenter:        "FC",
	LowFrequency:       "LFE",
	BackLeft:           "BL",
	BackRight:          "BR",
	FrontLeftOfCenter:  "FLC",
	FrontRightOfCenter: "FRC",
	BackCenter:         "BC",
	SideLeft:           "SL",
	SideRight:          "SR",
	TopCenter:          "TC",
	TopFrontLeft:       "TFL",
	TopFrontCenter:     "TFC",
	TopFrontRight:      "TFR",
	TopBackLeft:        "TBL",
	TopBackCenter:      "TBC",
	TopBackRight:       "TBR",
}

// Valid reports whether l is a known position.
func (l Label) Valid() bool {
	return l >= FrontLeft && l <= MaxLabel
}

func (l Label) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Label(%d)", uint8(l))
	}
	return labelNames[l]
}

// Map is an ordered list of labels, one per interleaved channel. A nil Map
// means the source did not report one and Default applies.
type Map []Label

// Validate checks that every label is known and that the map covers
// exactly channels channels. A nil map is always valid.
func (m Map) Validate(channels int) error {
	if m == nil {
		return nil
	}
	if len(m) != channels {
		return fmt.Errorf("%w: %d labels for %d channels", ErrLengthMismatch, len(m), channels)
	}
	for i, l := range m {
		if !l.Valid() {
			return fmt.Errorf("%w: %d at index %d", ErrUnknownChannel, l, i)
		}
	}

	return nil
}

// Mask returns the WAVE speaker mask for m. Repeated labels collapse into
// one bit.
func (m Map) Mask() uint32 {
	var mask uint32
	for _, l := range m {
		if l.Valid() {
			mask |= 1 << (l - 1)
		}
	}

	return mask
}

func (m Map) String() string {
	parts := make([]string, len(m))
	for i, l := range m {
		parts[i] = l.String()
	}

	return strings.Join(parts, " ")
}

var defaults = [...]Map{
	1: {FrontCenter},
	2: {FrontLeft, FrontRight},
	3: {FrontLeft, FrontRight, FrontCenter},
	4: {FrontLeft, FrontRight, BackLeft, BackRight},
	5: {FrontLeft, FrontRight, FrontCenter, BackLeft, BackRight},
	6: {FrontLeft, FrontRight, FrontCenter, LowFrequency, BackLeft, BackRight},
	7: {FrontLeft, FrontRight, FrontCenter, LowFrequency, BackCenter, SideLeft, SideRight},
	8: {FrontLeft, FrontRight, FrontCenter, LowFrequency, BackLeft, BackRight, SideLeft, SideRight},
}

// Default synthesizes the standard layout for 1 to 8 channels. The returned
// map is a fresh copy.
func Default(channels int) (Map, error) {
	if channels < 1 || channels >= len(defaults) {
		return nil, fmt.Errorf("%w: %d channels", ErrNoDefaultLayout, channels)
	}

	return clone(defaults[channels]), nil
}

var vorbisOrder = [...]Map{
	1: {FrontCenter},
	2: {FrontLeft, FrontRight},
	3: {FrontLeft, FrontCenter, FrontRight},
	4: {FrontLeft, FrontRight, BackLeft, BackRight},
	5: {FrontLeft, FrontCenter, FrontRight, BackLeft, BackRight},
	6: {FrontLeft, FrontCenter, FrontRight, BackLeft, BackRight, LowFrequency},
	7: {FrontLeft, FrontCenter, FrontRight, SideLeft, SideRight, BackCenter, LowFrequency},
	8: {FrontLeft, FrontCenter, FrontRight, SideLeft, SideRight, BackLeft, BackRight, LowFrequency},
}

// FromVorbis returns the channel order mandated by the Vorbis I
// specification for 1 to 8 channels.
func FromVorbis(channels int) (Map, error) {
	if channels < 1 || channels >= len(vorbisOrder) {
		return nil, fmt.Errorf("%w: %d vorbis channels", ErrNoDefaultLayout, channels)
	}

	return clone(vorbisOrder[channels]), nil
}

// FromMask expands a WAVE or WavPack speaker mask into a Map, lowest bit
// first. A zero mask has no explicit positions and yields Default(channels).
func FromMask(mask uint32, channels int) (Map, error) {
	if mask == 0 {
		return Default(channels)
	}
	if mask>>uint(MaxLabel) != 0 {
		return nil, fmt.Errorf("%w: mask %#x", ErrUnknownChannel, mask)
	}
	if n := bits.OnesCount32(mask); n != channels {
		return nil, fmt.Errorf("%w: mask %#x has %d positions for %d channels", ErrLengthMismatch, mask, n, channels)
	}

	m := make(Map, 0, channels)
	for l := FrontLeft; l <= MaxLabel; l++ {
		if mask&(1<<(l-1)) != 0 {
			m = append(m, l)
		}
	}

	return m, nil
}

func clone(m Map) Map {
	out := make(Map, len(m))
	copy(out, m)

	return out
}
