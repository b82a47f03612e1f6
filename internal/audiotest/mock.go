// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audsrc/chanmap"
	"github.com/ik5/audsrc/pcm"
	"github.com/ik5/audsrc/tags"
)

// MockSource is a test helper that generates high-aligned 32-bit integer
// frames. It implements audio.Seeker and audio.Tagged (without importing
// them to avoid cycles).
type MockSource struct {
	format      pcm.Format
	channelMap  chanmap.Map
	totalFrames int64
	position    int64
	waveform    func(frame int64, channel int) int32
	closed      bool

	TagMap      tags.Map
	ChapterList []tags.Chapter
}

// NewMockSource creates a source of totalFrames frames of native depth
// bits. waveform returns right-justified samples.
func NewMockSource(sampleRate, channels, bits int, totalFrames int64, waveform func(frame int64, channel int) int32) *MockSource {
	f, err := pcm.Negotiate(sampleRate, channels, bits, pcm.SignedInt)
	if err != nil {
		panic(fmt.Sprintf("audiotest: %v", err))
	}

	return &MockSource{
		format:      f,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a 16-bit mock source that generates silence.
func NewSilentSource(sampleRate, channels int, totalFrames int64) *MockSource {
	return NewMockSource(sampleRate, channels, 16, totalFrames, func(int64, int) int32 {
		return 0
	})
}

// NewSineSource creates a 16-bit mock source that generates a sine wave.
func NewSineSource(sampleRate, channels int, totalFrames int64, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, 16, totalFrames, func(frame int64, _ int) int32 {
		t := float64(frame) / float64(sampleRate)
		return int32(math.Round(math.Sin(2*math.Pi*frequency*t) * math.MaxInt16))
	})
}

// NewRampSource creates a 16-bit source whose sample value is the frame
// index times the channel count plus the channel, which makes every sample
// of the stream unique.
func NewRampSource(sampleRate, channels int, totalFrames int64) *MockSource {
	return NewMockSource(sampleRate, channels, 16, totalFrames, func(frame int64, ch int) int32 {
		return int32((frame*int64(channels) + int64(ch)) % math.MaxInt16)
	})
}

// WithChannelMap sets the map reported by ChannelMap.
func (m *MockSource) WithChannelMap(cm chanmap.Map) *MockSource {
	m.channelMap = cm
	return m
}

func (m *MockSource) Format() pcm.Format       { return m.format }
func (m *MockSource) ChannelMap() chanmap.Map  { return m.channelMap }
func (m *MockSource) Length() int64            { return m.totalFrames }
func (m *MockSource) Tags() tags.Map           { return m.TagMap }
func (m *MockSource) Chapters() []tags.Chapter { return m.ChapterList }
func (m *MockSource) Position() (int64, error) { return m.position, nil }
func (m *MockSource) Closed() bool             { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

func (m *MockSource) SeekTo(frame int64) error {
	if frame < 0 || frame > m.totalFrames {
		return fmt.Errorf("audiotest: seek to %d outside [0, %d]", frame, m.totalFrames)
	}
	m.position = frame
	return nil
}

func (m *MockSource) ReadSamples(dst []byte, frames int) (int, error) {
	if m.position >= m.totalFrames {
		return 0, io.EOF
	}

	n := min(int64(frames), m.totalFrames-m.position)
	ch := m.format.Channels
	for i := range n {
		for c := range ch {
			v := pcm.HighAlign(m.waveform(m.position+i, c), m.format.BitsPerSample)
			binary.NativeEndian.PutUint32(dst[4*(int(i)*ch+c):], uint32(v))
		}
	}
	m.position += n

	return int(n), nil
}
