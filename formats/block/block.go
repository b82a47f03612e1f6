// SPDX-License-Identifier: EPL-2.0

package block

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/chanmap"
	"github.com/ik5/audsrc/internal/decodebuf"
	"github.com/ik5/audsrc/pcm"
	"github.com/ik5/audsrc/tags"
)

// Info describes the stream produced by a Decoder.
type Info struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	// Kind is SignedInt or UnsignedInt. Unsigned decoders still hand out
	// signed, zero-centered samples from DecodeBlock.
	Kind pcm.Kind
	// Frames is the stream length, -1 when unknown.
	Frames     int64
	ChannelMap chanmap.Map
}

// Decoder produces samples in blocks whose size it chooses.
type Decoder interface {
	Info() Info
	// MaxBlockFrames is the largest block DecodeBlock can produce.
	MaxBlockFrames() int
	// DecodeBlock decodes the next block into dst as interleaved
	// right-justified samples and returns its size in frames. It returns
	// 0 at the end of the stream.
	DecodeBlock(dst []int32) (int, error)
	// Tags read from the container.
	Tags() (tags.Map, error)
	Close() error
}

// Source adapts a Decoder to audio.Reader.
type Source struct {
	dec      Decoder
	format   pcm.Format
	cmap     chanmap.Map
	length   int64
	buf      *decodebuf.Buffer
	position int64
	eof      bool
	tags     tags.Map
}

var (
	_ audio.Reader = (*Source)(nil)
	_ audio.Tagged = (*Source)(nil)
)

// New wraps dec. On error dec has been closed.
func New(dec Decoder) (*Source, error) {
	s, err := newSource(dec)
	if err != nil {
		_ = dec.Close()
		return nil, err
	}

	return s, nil
}

func newSource(dec Decoder) (*Source, error) {
	info := dec.Info()
	if info.Kind == pcm.Float {
		return nil, fmt.Errorf("%w: float block decoder", audio.ErrUnsupportedFormat)
	}

	f, err := pcm.Negotiate(info.SampleRate, info.Channels, info.BitsPerSample, info.Kind)
	if err != nil {
		return nil, err
	}
	if err := info.ChannelMap.Validate(info.Channels); err != nil {
		return nil, err
	}

	maxFrames := dec.MaxBlockFrames()
	if maxFrames <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBlockSize, maxFrames)
	}

	t, err := dec.Tags()
	if err != nil {
		return nil, fmt.Errorf("block: tags: %w", err)
	}

	length := info.Frames
	if length < 0 {
		length = -1
	}

	return &Source{
		dec:    dec,
		format: f,
		cmap:   info.ChannelMap,
		length: length,
		buf:    decodebuf.New(info.Channels, maxFrames),
		tags:   t.Clone(),
	}, nil
}

func (s *Source) Format() pcm.Format       { return s.format }
func (s *Source) ChannelMap() chanmap.Map  { return s.cmap }
func (s *Source) Length() int64            { return s.length }
func (s *Source) Tags() tags.Map           { return s.tags }
func (s *Source) Chapters() []tags.Chapter { return nil }

// Position is the number of frames delivered so far, plus any skipped.
func (s *Source) Position() (int64, error) { return s.position, nil }

// Skip moves the position counter forward by frames. The decoder itself is
// not told, so samples keep coming from where decoding stopped.
// TODO: decide whether Skip should also drop frames from the decoder; the
// position and the decoded stream drift apart after it is called.
func (s *Source) Skip(frames int64) {
	s.position += frames
}

// ReadSamples fills dst from the current block, decoding new blocks as the
// previous one runs out.
func (s *Source) ReadSamples(dst []byte, frames int) (int, error) {
	if err := audio.CheckBuffer(s.format, dst, frames); err != nil {
		return 0, err
	}

	ch := s.format.Channels
	bpf := s.format.BytesPerFrame()
	done := 0

	for done < frames && !s.eof {
		if s.buf.Empty() {
			n, err := s.dec.DecodeBlock(s.buf.Storage())
			if err != nil && !errors.Is(err, io.EOF) {
				s.position += int64(done)
				return done, err
			}
			if n == 0 {
				s.eof = true
				break
			}
			s.buf.Fill(n)
		}

		n := min(s.buf.Rest(), frames-done)
		pcm.PutInt32s(dst[done*bpf:], s.buf.Pending()[:n*ch], s.format.BitsPerSample)
		s.buf.Advance(n)
		done += n
	}

	s.position += int64(done)
	if done == 0 && frames > 0 {
		return 0, io.EOF
	}

	return done, nil
}

func (s *Source) Close() error {
	s.buf.Reset()
	return s.dec.Close()
}
