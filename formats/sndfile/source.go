// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/chanmap"
	"github.com/ik5/audsrc/pcm"
	"github.com/ik5/audsrc/tags"
)

type readFunc func(sf uintptr, ptr unsafe.Pointer, frames int64) int64

// Source reads any file libsndfile can decode.
type Source struct {
	m          *Module
	file       *os.File
	sf         uintptr
	format     pcm.Format
	cmap       chanmap.Map
	length     int64
	formatName string
	tags       tags.Map
	readf      readFunc
}

var (
	_ audio.Seeker = (*Source)(nil)
	_ audio.Tagged = (*Source)(nil)
)

// Open opens path through m.
func Open(m *Module, path string) (*Source, error) {
	if !m.Loaded() {
		return nil, audio.ErrBindingNotLoaded
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sndfile: %w", err)
	}

	return NewSource(m, f)
}

// NewSource decodes f through m and takes ownership of f, which is closed
// with the source or on error.
func NewSource(m *Module, f *os.File) (*Source, error) {
	if !m.Loaded() {
		_ = f.Close()
		return nil, audio.ErrBindingNotLoaded
	}

	log := logrus.WithFields(logrus.Fields{"backend": "sndfile", "path": f.Name()})

	s, err := newSource(m, f, log)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return s, nil
}

func newSource(m *Module, f *os.File, log *logrus.Entry) (*Source, error) {
	var info sfInfo
	sf := m.openVirtual(m.vio, sfmRead, &info, f.Fd())
	if sf == 0 {
		return nil, fmt.Errorf("%w: %s", ErrOpen, m.strerror(0))
	}

	s := &Source{m: m, file: f, sf: sf, length: info.Frames}
	if err := s.init(&info, log); err != nil {
		m.close(sf)
		return nil, err
	}

	log.WithFields(logrus.Fields{"format": s.format, "container": s.formatName}).Debug("opened")

	return s, nil
}

func (s *Source) init(info *sfInfo, log *logrus.Entry) error {
	s.formatName = s.majorFormatName(info.Format & sfFormatTypeMask)

	sub := info.Format & sfFormatSubMask
	st, ok := subtypes[sub]
	if !ok {
		return fmt.Errorf("%w 0x%04x", ErrUnsupportedSubtype, sub)
	}

	f, err := pcm.Negotiate(int(info.SampleRate), int(info.Channels), st.bits, st.kind)
	if err != nil {
		return err
	}
	s.format = f

	switch f.Entry() {
	case pcm.EntryInt:
		s.readf = s.m.readfInt
	case pcm.EntryFloat:
		s.readf = s.m.readfFloat
	default:
		s.readf = s.m.readfDouble
	}

	codes := make([]int32, f.Channels)
	if s.m.command(s.sf, sfcGetChannelMapInfo, unsafe.Pointer(&codes[0]), int32(4*len(codes))) != sfFalse {
		if s.cmap, err = chanmap.FromSndfile(codes); err != nil {
			return err
		}
	}

	s.tags = s.readTags(log)

	return nil
}

// majorFormatName looks up the file extension libsndfile registers for a
// major format, "" when it is not listed.
func (s *Source) majorFormatName(major int32) string {
	var count int32
	s.m.command(s.sf, sfcGetFormatMajorCount, unsafe.Pointer(&count), int32(unsafe.Sizeof(count)))

	for i := range count {
		fi := sfFormatInfo{Format: i}
		s.m.command(s.sf, sfcGetFormatMajor, unsafe.Pointer(&fi), int32(unsafe.Sizeof(fi)))
		if fi.Format == major {
			return cString(fi.Extension)
		}
	}

	return ""
}

// readTags reads the container's own tag chunk. The file is read through
// ReadAt so libsndfile's offset stays where it was.
func (s *Source) readTags(log *logrus.Entry) tags.Map {
	var read func(io.ReadSeeker) (tags.Map, error)
	switch s.formatName {
	case "aiff":
		read = tags.ReadAIFFID3
	case "caf":
		read = tags.ReadCAF
	default:
		return tags.Map{}
	}

	st, err := s.file.Stat()
	if err != nil {
		log.WithError(err).Debug("skipping tags")
		return tags.Map{}
	}

	t, err := read(io.NewSectionReader(s.file, 0, st.Size()))
	if err != nil {
		log.WithError(err).Debug("ignoring unreadable tags")
		return tags.Map{}
	}

	return t
}

func (s *Source) Format() pcm.Format       { return s.format }
func (s *Source) ChannelMap() chanmap.Map  { return s.cmap }
func (s *Source) Length() int64            { return s.length }
func (s *Source) Tags() tags.Map           { return s.tags }
func (s *Source) Chapters() []tags.Chapter { return nil }

// FormatName is the extension of the container's major format, such as
// "wav", "aiff" or "caf".
func (s *Source) FormatName() string { return s.formatName }

func (s *Source) ReadSamples(dst []byte, frames int) (int, error) {
	if err := audio.CheckBuffer(s.format, dst, frames); err != nil {
		return 0, err
	}
	if frames == 0 {
		return 0, nil
	}

	n := s.readf(s.sf, unsafe.Pointer(&dst[0]), int64(frames))
	if n <= 0 {
		return 0, io.EOF
	}

	return int(n), nil
}

func (s *Source) SeekTo(frame int64) error {
	if s.m.seek(s.sf, frame, seekSet) == -1 {
		return fmt.Errorf("%w: frame %d", ErrSeek, frame)
	}
	return nil
}

func (s *Source) Position() (int64, error) {
	pos := s.m.seek(s.sf, 0, seekCur)
	if pos == -1 {
		return 0, ErrSeek
	}
	return pos, nil
}

func (s *Source) Close() error {
	if s.sf != 0 {
		s.m.close(s.sf)
		s.sf = 0
	}
	return s.file.Close()
}

// cString copies a NUL-terminated C string.
func cString(p *byte) string {
	if p == nil {
		return ""
	}

	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}

	return string(unsafe.Slice(p, n))
}
