// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"

	"github.com/ik5/audsrc/chanmap"
	"github.com/ik5/audsrc/formats/block"
	"github.com/ik5/audsrc/pcm"
	"github.com/ik5/audsrc/tags"
)

// mockFrames serves pre-built frames.
type mockFrames struct {
	frames []*frame.Frame
	err    error
}

func (m *mockFrames) ParseNext() (*frame.Frame, error) {
	if len(m.frames) == 0 {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}
	f := m.frames[0]
	m.frames = m.frames[1:]
	return f, nil
}

func stereoFrame(left, right []int32) *frame.Frame {
	return &frame.Frame{
		Header: frame.Header{BlockSize: uint16(len(left))},
		Subframes: []*frame.Subframe{
			{Samples: left},
			{Samples: right},
		},
	}
}

func streamInfo(channels, bits uint8) *meta.StreamInfo {
	return &meta.StreamInfo{
		BlockSizeMin:  4,
		BlockSizeMax:  4,
		SampleRate:    44100,
		NChannels:     channels,
		BitsPerSample: bits,
		NSamples:      6,
	}
}

func TestDecoder_Interleaves(t *testing.T) {
	t.Parallel()

	frames := &mockFrames{frames: []*frame.Frame{
		stereoFrame([]int32{1, 2, 3, 4}, []int32{-1, -2, -3, -4}),
		stereoFrame([]int32{5, 6}, []int32{-5, -6}),
	}}

	dec, err := newDecoder(streamInfo(2, 16), nil, frames, nil)
	if err != nil {
		t.Fatal(err)
	}
	src, err := block.New(dec)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	if src.Length() != 6 {
		t.Errorf("Length() = %d, want 6", src.Length())
	}

	buf := make([]byte, 10*src.Format().BytesPerFrame())
	n, err := src.ReadSamples(buf, 10)
	if err != nil || n != 6 {
		t.Fatalf("ReadSamples() = %d, %v; want 6, nil", n, err)
	}

	want := []int32{1, -1, 2, -2, 3, -3, 4, -4, 5, -5, 6, -6}
	for i, w := range want {
		if got := pcm.Int32At(buf, i); got != w<<16 {
			t.Errorf("sample %d = %#x, want %#x", i, got, w<<16)
		}
	}
}

func TestDecoder_Tags(t *testing.T) {
	t.Parallel()

	blocks := []*meta.Block{
		{Body: &meta.VorbisComment{
			Vendor: "reference libFLAC 1.4.3",
			Tags: [][2]string{
				{"TITLE", "Etude"},
				{"ARTIST", "Pianist"},
				{"TRACKNUMBER", "2"},
				{"TRACKTOTAL", "9"},
			},
		}},
	}

	dec, err := newDecoder(streamInfo(2, 24), blocks, &mockFrames{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	got, _ := dec.Tags()
	if got[tags.Title] != "Etude" || got[tags.Artist] != "Pianist" || got[tags.Track] != "2/9" {
		t.Errorf("Tags() = %v", got)
	}
	if dec.Info().ChannelMap != nil {
		t.Errorf("ChannelMap = %v, want nil without a mask", dec.Info().ChannelMap)
	}
}

func TestDecoder_ChannelMask(t *testing.T) {
	t.Parallel()

	blocks := []*meta.Block{
		{Body: &meta.VorbisComment{Tags: [][2]string{{"WAVEFORMATEXTENSIBLE_CHANNEL_MASK", "0x60F"}}}},
	}

	si := streamInfo(6, 16)
	dec, err := newDecoder(si, blocks, &mockFrames{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := chanmap.Map{chanmap.FrontLeft, chanmap.FrontRight, chanmap.FrontCenter, chanmap.LowFrequency, chanmap.SideLeft, chanmap.SideRight}
	if got := dec.Info().ChannelMap; got.String() != want.String() {
		t.Errorf("ChannelMap = %v, want %v", got, want)
	}

	blocks[0].Body = &meta.VorbisComment{Tags: [][2]string{{"WAVEFORMATEXTENSIBLE_CHANNEL_MASK", "0x3"}}}
	if _, err := newDecoder(si, blocks, &mockFrames{}, nil); !errors.Is(err, chanmap.ErrLengthMismatch) {
		t.Errorf("newDecoder() error = %v, want ErrLengthMismatch", err)
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("crc mismatch")
	dec, err := newDecoder(streamInfo(2, 16), nil, &mockFrames{err: boom}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := dec.DecodeBlock(make([]int32, 8)); !errors.Is(err, boom) {
		t.Errorf("DecodeBlock() error = %v, want %v", err, boom)
	}

	big := &mockFrames{frames: []*frame.Frame{stereoFrame(make([]int32, 8), make([]int32, 8))}}
	dec, _ = newDecoder(streamInfo(2, 16), nil, big, nil)
	if _, err := dec.DecodeBlock(make([]int32, 8)); !errors.Is(err, block.ErrBlockOverflow) {
		t.Errorf("DecodeBlock() error = %v, want ErrBlockOverflow", err)
	}

	mono := &mockFrames{frames: []*frame.Frame{{
		Header:    frame.Header{BlockSize: 1},
		Subframes: []*frame.Subframe{{Samples: []int32{1}}},
	}}}
	dec, _ = newDecoder(streamInfo(2, 16), nil, mono, nil)
	if _, err := dec.DecodeBlock(make([]int32, 8)); !errors.Is(err, ErrChannelLayout) {
		t.Errorf("DecodeBlock() error = %v, want ErrChannelLayout", err)
	}
}

func TestOpen_NotFlac(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fake.flac")
	if err := os.WriteFile(path, []byte("RIFF....WAVEfmt "), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); !errors.Is(err, ErrNotFlacFile) {
		t.Errorf("Open() error = %v, want ErrNotFlacFile", err)
	}
}

func TestOpen_Missing(t *testing.T) {
	t.Parallel()

	if _, err := Open(filepath.Join(t.TempDir(), "missing.flac")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open() error = %v, want ErrNotExist", err)
	}
}
