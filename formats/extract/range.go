// SPDX-License-Identifier: EPL-2.0

package extract

// Range tracks how much of a selected stretch of frames a session has
// handed out. A zero length means "to the end of the stream".
type Range struct {
	Start  int64
	Length int64
	done   int64
}

// NewRange validates start and length.
func NewRange(start, length int64) (Range, error) {
	if start < 0 || length < 0 {
		return Range{}, ErrBadRange
	}

	return Range{Start: start, Length: length}, nil
}

// Clamp limits a request to what is left of the range.
func (r *Range) Clamp(frames int) int {
	if r.Length == 0 {
		return frames
	}

	return int(min(int64(frames), r.Length-r.done))
}

// Consume records n delivered frames.
func (r *Range) Consume(n int) { r.done += int64(n) }

// Exhausted reports whether a bounded range has been fully delivered.
func (r *Range) Exhausted() bool { return r.Length > 0 && r.done >= r.Length }

// Position is the absolute frame the next Extract starts at.
func (r *Range) Position() int64 { return r.Start + r.done }
