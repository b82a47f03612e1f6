// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dhowden/tag"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/chanmap"
	"github.com/ik5/audsrc/formats/extract"
	"github.com/ik5/audsrc/pcm"
	"github.com/ik5/audsrc/tags"
)

// go-mp3 always decodes to 16-bit little-endian stereo.
const (
	channels      = 2
	bytesPerFrame = 4
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	io.ReadSeeker
	SampleRate() int
	// Length is the decoded size in bytes, negative when unknown.
	Length() int64
}

type session struct {
	dec      mp3Reader
	closer   io.Closer
	format   pcm.Format
	tags     tags.Map
	raw      []byte
	rng      extract.Range
	finished bool
}

func newSession(dec mp3Reader, t tags.Map, closer io.Closer) (*session, error) {
	f, err := pcm.Negotiate(dec.SampleRate(), channels, 16, pcm.SignedInt)
	if err != nil {
		return nil, err
	}

	return &session{
		dec:    dec,
		closer: closer,
		format: f,
		tags:   t,
		raw:    make([]byte, 8192),
	}, nil
}

func (s *session) Format() pcm.Format      { return s.format }
func (s *session) ChannelMap() chanmap.Map { return nil }
func (s *session) Tags() tags.Map          { return s.tags }

func (s *session) Duration() int64 {
	if n := s.dec.Length(); n > 0 {
		return n / bytesPerFrame
	}
	return -1
}

func (s *session) SetRange(start, length int64) error {
	rng, err := extract.NewRange(start, length)
	if err != nil {
		return err
	}
	if _, err := s.dec.Seek(start*bytesPerFrame, io.SeekStart); err != nil {
		return fmt.Errorf("mp3: %w", err)
	}

	s.rng = rng
	s.finished = false

	return nil
}

func (s *session) Extract(dst []byte, frames int) (int, bool, error) {
	if s.finished || s.rng.Exhausted() {
		return 0, true, nil
	}

	want := s.rng.Clamp(frames) * bytesPerFrame
	if cap(s.raw) < want {
		s.raw = make([]byte, want)
	}

	n, err := io.ReadFull(s.dec, s.raw[:want])
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.finished = true
	case err != nil:
		return 0, false, fmt.Errorf("mp3: %w", err)
	}

	got := n / bytesPerFrame
	pcm.PutInt16LE(dst, s.raw[:got*bytesPerFrame])
	s.rng.Consume(got)

	return got, s.finished || s.rng.Exhausted(), nil
}

func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Open decodes the MP3 file at path. Tags come from its ID3 tag.
func Open(path string) (*extract.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	src, err := newSource(f, f, logrus.WithFields(logrus.Fields{"backend": "mp3", "path": path}))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return src, nil
}

// NewSource decodes MP3 data from rs.
func NewSource(rs io.ReadSeeker) (*extract.Source, error) {
	return newSource(rs, nil, logrus.WithField("backend", "mp3"))
}

func newSource(rs io.ReadSeeker, closer io.Closer, log *logrus.Entry) (*extract.Source, error) {
	t, err := tags.ReadID3(rs)
	switch {
	case errors.Is(err, tag.ErrNoTagsFound):
		t = tags.Map{}
	case err != nil:
		log.WithError(err).Debug("ignoring unreadable ID3 tag")
		t = tags.Map{}
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	dec, err := gomp3.NewDecoder(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	s, err := newSession(dec, t, closer)
	if err != nil {
		return nil, err
	}

	log.WithField("format", s.format).Debug("opened")

	return extract.New(s)
}

type Decoder struct{}

func (Decoder) Open(path string) (audio.Reader, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}
