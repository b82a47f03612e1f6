// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jfreymuth/oggvorbis"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/chanmap"
	"github.com/ik5/audsrc/formats/extract"
	"github.com/ik5/audsrc/pcm"
	"github.com/ik5/audsrc/tags"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read returns the number of values decoded, always whole frames.
	Read([]float32) (int, error)
	SetPosition(pos int64) error
	Length() int64
}

// session extracts float32 frames from an Ogg Vorbis stream.
type session struct {
	dec      oggReader
	closer   io.Closer
	format   pcm.Format
	cmap     chanmap.Map
	tags     tags.Map
	buf      []float32
	rng      extract.Range
	finished bool
}

func newSession(dec oggReader, comments []string, closer io.Closer, log *logrus.Entry) (*session, error) {
	f, err := pcm.Negotiate(dec.SampleRate(), dec.Channels(), 32, pcm.Float)
	if err != nil {
		return nil, err
	}

	cmap, err := chanmap.FromVorbis(f.Channels)
	if err != nil {
		// no defined order past 8 channels
		log.WithField("channels", f.Channels).Debug("no vorbis channel order")
		cmap = nil
	}

	return &session{
		dec:    dec,
		closer: closer,
		format: f,
		cmap:   cmap,
		tags:   tags.FromVorbisComments(comments),
		buf:    make([]float32, 4096),
	}, nil
}

func (s *session) Format() pcm.Format      { return s.format }
func (s *session) ChannelMap() chanmap.Map { return s.cmap }
func (s *session) Tags() tags.Map          { return s.tags }

func (s *session) Duration() int64 {
	if n := s.dec.Length(); n > 0 {
		return n
	}
	return -1
}

func (s *session) SetRange(start, length int64) error {
	rng, err := extract.NewRange(start, length)
	if err != nil {
		return err
	}
	if err := s.dec.SetPosition(start); err != nil {
		return fmt.Errorf("vorbis: %w", err)
	}

	s.rng = rng
	s.finished = false

	return nil
}

func (s *session) Extract(dst []byte, frames int) (int, bool, error) {
	if s.finished || s.rng.Exhausted() {
		return 0, true, nil
	}

	ch := s.format.Channels
	want := s.rng.Clamp(frames) * ch
	if cap(s.buf) < want {
		s.buf = make([]float32, want)
	}
	buf := s.buf[:want]

	var (
		n   int
		err error
	)
	for n == 0 && err == nil {
		n, err = s.dec.Read(buf)
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return 0, false, fmt.Errorf("vorbis: %w", err)
	}
	if err != nil {
		s.finished = true
	}

	got := n / ch
	pcm.PutFloat32s(dst, buf[:got*ch])
	s.rng.Consume(got)

	return got, s.finished || s.rng.Exhausted(), nil
}

func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Open decodes the Ogg Vorbis file at path. Samples are 32-bit float in
// Vorbis channel order.
func Open(path string) (*extract.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}

	src, err := newSource(f, f, logrus.WithFields(logrus.Fields{"backend": "vorbis", "path": path}))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return src, nil
}

// NewSource decodes Ogg Vorbis data from r. SetRange needs r to be an
// io.Seeker.
func NewSource(r io.Reader) (*extract.Source, error) {
	return newSource(r, nil, logrus.WithField("backend", "vorbis"))
}

func newSource(r io.Reader, closer io.Closer, log *logrus.Entry) (*extract.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	s, err := newSession(dec, dec.CommentHeader().Comments, closer, log)
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
