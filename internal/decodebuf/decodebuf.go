// SPDX-License-Identifier: EPL-2.0

// Package decodebuf tracks one decoded block and how much of it has been
// handed to the caller.
package decodebuf

// Buffer holds a block of interleaved right-justified samples produced by a
// block decoder. Counters are in frames.
type Buffer struct {
	nsamples int
	done     int
	channels int
	data     []int32
}

// New allocates a buffer able to hold capFrames frames of channels samples.
func New(channels, capFrames int) *Buffer {
	return &Buffer{
		channels: channels,
		data:     make([]int32, channels*capFrames),
	}
}

// Rest is the number of decoded frames not yet delivered.
func (b *Buffer) Rest() int { return b.nsamples - b.done }

// Empty reports whether the buffer has to be refilled.
func (b *Buffer) Empty() bool { return b.nsamples == 0 }

// Advance marks n frames as delivered. Once every frame of the block has
// been delivered both counters drop back to zero.
func (b *Buffer) Advance(n int) {
	b.done += n
	if b.done >= b.nsamples {
		b.done = 0
		b.nsamples = 0
	}
}

// Storage is the whole backing array, sized for the largest block.
func (b *Buffer) Storage() []int32 { return b.data }

// Fill records that the decoder wrote frames frames into Storage.
func (b *Buffer) Fill(frames int) {
	b.nsamples = frames
	b.done = 0
}

// Pending returns the interleaved samples not yet delivered.
func (b *Buffer) Pending() []int32 {
	return b.data[b.done*b.channels : b.nsamples*b.channels]
}

// Reset discards whatever is left of the current block.
func (b *Buffer) Reset() {
	b.nsamples = 0
	b.done = 0
}

// Capacity is the largest block, in frames, the buffer can hold.
func (b *Buffer) Capacity() int {
	if b.channels == 0 {
		return 0
	}
	return len(b.data) / b.channels
}
