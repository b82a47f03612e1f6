// SPDX-License-Identifier: EPL-2.0

package extract

import (
	"fmt"
	"io"

	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/chanmap"
	"github.com/ik5/audsrc/pcm"
	"github.com/ik5/audsrc/tags"
)

// Session is a stateful extraction context. Format is final when the
// session is handed to New, and Extract writes samples in that format.
type Session interface {
	Format() pcm.Format
	ChannelMap() chanmap.Map
	Tags() tags.Map
	// Duration is the stream length in frames, -1 when unknown.
	Duration() int64
	// SetRange restarts extraction at start and stops after length frames;
	// length 0 extracts to the end.
	SetRange(start, length int64) error
	// Extract writes up to frames frames into dst. complete reports that
	// the session has nothing further to decode; frames already written
	// in the same call are still valid.
	Extract(dst []byte, frames int) (n int, complete bool, err error)
	Close() error
}

// Source adapts a Session to audio.Reader.
type Source struct {
	session     Session
	format      pcm.Format
	cmap        chanmap.Map
	tags        tags.Map
	duration    int64
	start       int64
	samplesRead int64
	completed   bool
	eof         bool
}

var (
	_ audio.Seeker = (*Source)(nil)
	_ audio.Tagged = (*Source)(nil)
)

// New wraps s. On error s has been closed.
func New(s Session) (*Source, error) {
	src, err := newSource(s)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	return src, nil
}

func newSource(s Session) (*Source, error) {
	f := s.Format()
	if f.Channels <= 0 {
		return nil, ErrNoChannels
	}

	kind := pcm.SignedInt
	if f.Float {
		kind = pcm.Float
	}
	nf, err := pcm.Negotiate(f.SampleRate, f.Channels, f.BitsPerSample, kind)
	if err != nil {
		return nil, err
	}
	if nf != f {
		return nil, fmt.Errorf("%w: session packs %s", audio.ErrUnsupportedFormat, f)
	}

	cmap := s.ChannelMap()
	if err := cmap.Validate(f.Channels); err != nil {
		return nil, err
	}

	duration := s.Duration()
	if duration < 0 {
		duration = -1
	}

	return &Source{
		session:  s,
		format:   f,
		cmap:     cmap,
		tags:     s.Tags().Clone(),
		duration: duration,
	}, nil
}

func (s *Source) Format() pcm.Format       { return s.format }
func (s *Source) ChannelMap() chanmap.Map  { return s.cmap }
func (s *Source) Tags() tags.Map           { return s.tags }
func (s *Source) Chapters() []tags.Chapter { return nil }

// Length is the session duration, or the selected range length once
// SetRange bounded it.
func (s *Source) Length() int64 { return s.duration }

// Completed reports whether the session signalled completion. Samples may
// still be pending; read until ReadSamples returns io.EOF.
func (s *Source) Completed() bool { return s.completed }

// SetRange selects the frames to extract, starting at start. A length of 0
// runs to the end of the stream.
func (s *Source) SetRange(start, length int64) error {
	if start < 0 || length < 0 {
		return fmt.Errorf("%w: start %d, length %d", ErrBadRange, start, length)
	}

	if err := s.session.SetRange(start, length); err != nil {
		return fmt.Errorf("extract: set range: %w", err)
	}

	full := s.session.Duration()
	switch {
	case length > 0:
		s.duration = length
	case full >= 0:
		s.duration = max(full-start, 0)
	default:
		s.duration = -1
	}

	s.start = start
	s.samplesRead = 0
	s.completed = false
	s.eof = false

	return nil
}

// SeekTo restarts extraction at frame, dropping any range end.
func (s *Source) SeekTo(frame int64) error {
	if err := s.SetRange(frame, 0); err != nil {
		return err
	}
	s.duration = s.session.Duration()

	return nil
}

func (s *Source) Position() (int64, error) { return s.start + s.samplesRead, nil }

// ReadSamples keeps extracting until frames frames are written or the
// session produces nothing more.
func (s *Source) ReadSamples(dst []byte, frames int) (int, error) {
	if err := audio.CheckBuffer(s.format, dst, frames); err != nil {
		return 0, err
	}

	bpf := s.format.BytesPerFrame()
	done := 0

	for done < frames && !s.eof {
		n, complete, err := s.session.Extract(dst[done*bpf:frames*bpf], frames-done)
		if complete {
			s.completed = true
		}
		done += n
		if err != nil {
			s.samplesRead += int64(done)
			return done, fmt.Errorf("extract: %w", err)
		}
		if n == 0 {
			s.eof = true
		}
	}

	s.samplesRead += int64(done)
	if done == 0 && frames > 0 {
		return 0, io.EOF
	}

	return done, nil
}

func (s *Source) Close() error { return s.session.Close() }
