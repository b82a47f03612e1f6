// SPDX-License-Identifier: EPL-2.0

package wavpack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/chanmap"
	"github.com/ik5/audsrc/pcm"
	"github.com/ik5/audsrc/tags"
)

// maxBlockSize bounds the first block read when looking for a wrapper.
const maxBlockSize = 1 << 20

// Source reads WavPack files, together with their correction file when
// one is present.
type Source struct {
	m        *Module
	wpc      uintptr
	file     *os.File
	wvc      *os.File
	format   pcm.Format
	cmap     chanmap.Map
	length   int64
	tags     tags.Map
	chapters []tags.Chapter
	pivot    []int32
	wide     bool
}

var (
	_ audio.Seeker = (*Source)(nil)
	_ audio.Tagged = (*Source)(nil)
)

// Open opens path through m. For "x.wv" a correction file "x.wvc" next to
// it is used when it exists.
func Open(m *Module, path string) (*Source, error) {
	if !m.Loaded() {
		return nil, audio.ErrBindingNotLoaded
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavpack: %w", err)
	}

	var wvc *os.File
	if strings.HasSuffix(strings.ToLower(path), ".wv") {
		if c, err := os.Open(path + "c"); err == nil {
			wvc = c
		}
	}

	return NewSource(m, f, wvc)
}

// NewSource decodes f, with wvc as its correction file when not nil. It
// takes ownership of both files.
func NewSource(m *Module, f, wvc *os.File) (*Source, error) {
	s := &Source{m: m, file: f, wvc: wvc}
	if !m.Loaded() {
		_ = s.closeFiles()
		return nil, audio.ErrBindingNotLoaded
	}

	log := logrus.WithFields(logrus.Fields{"backend": "wavpack", "path": f.Name()})
	if err := s.open(log); err != nil {
		_ = s.closeFiles()
		return nil, err
	}

	log.WithFields(logrus.Fields{"format": s.format, "wide": s.wide, "correction": wvc != nil}).Debug("opened")

	return s, nil
}

func (s *Source) open(log *logrus.Entry) error {
	flags := int32(openTags | openNormalize)
	var wvcID uintptr
	if s.wvc != nil {
		flags |= openWVC
		wvcID = s.wvc.Fd()
	}

	var errBuf [80]byte
	s.wpc = s.m.openFileInputEx(s.m.reader, s.file.Fd(), wvcID, &errBuf[0], flags, 0)
	if s.wpc == 0 {
		return fmt.Errorf("%w: %s", ErrOpen, cString(errBuf[:]))
	}

	if err := s.init(log); err != nil {
		s.m.closeFile(s.wpc)
		s.wpc = 0
		return err
	}

	return nil
}

func (s *Source) init(log *logrus.Entry) error {
	m, wpc := s.m, s.wpc

	bits := int(m.getBitsPerSample(wpc))
	kind := pcm.SignedInt
	if m.getMode(wpc)&modeFloat != 0 {
		kind = pcm.Float
		bits = 32
	}

	f, err := pcm.Negotiate(int(m.getSampleRate(wpc)), int(m.getNumChannels(wpc)), bits, kind)
	if err != nil {
		return err
	}
	s.format = f

	// narrow samples go through a pivot, everything else straight into dst
	s.wide = f.Float || f.BitsPerSample > 16

	s.length = -1
	if n := m.getNumSamples(wpc); n != unknownSamples {
		s.length = int64(n)
	}

	if s.cmap, err = chanmap.FromMask(uint32(m.getChannelMask(wpc)), f.Channels); err != nil {
		return err
	}

	s.tags = s.wrapperTags(log)
	s.readAPE(log)

	return nil
}

// wrapperTags reads LIST/INFO from the RIFF header stored in the first
// block, if the file was packed from a WAV file.
func (s *Source) wrapperTags(log *logrus.Entry) tags.Map {
	var hdr [8]byte
	if _, err := s.file.ReadAt(hdr[:], 0); err != nil || string(hdr[:4]) != "wvpk" {
		return tags.Map{}
	}

	size := int64(binary.LittleEndian.Uint32(hdr[4:])) + 8
	if size > maxBlockSize {
		return tags.Map{}
	}

	block := make([]byte, size)
	if _, err := s.file.ReadAt(block, 0); err != nil {
		log.WithError(err).Debug("cannot read first block")
		return tags.Map{}
	}

	var n uint32
	p := s.m.getWrapperLocation(unsafe.Pointer(&block[0]), &n)
	if p == nil || n == 0 {
		return tags.Map{}
	}

	off := uintptr(p) - uintptr(unsafe.Pointer(&block[0]))
	if off >= uintptr(len(block)) || uintptr(n) > uintptr(len(block))-off {
		log.Debug("wrapper outside first block")
		return tags.Map{}
	}

	t, err := tags.ReadRIFFInfo(bytes.NewReader(block[off : off+uintptr(n)]))
	if err != nil {
		log.WithError(err).Debug("ignoring wrapper")
		return tags.Map{}
	}

	return t
}

// readAPE enumerates the APE tag items from index 0 until the library
// reports none left. APE values win over the wrapper's.
func (s *Source) readAPE(log *logrus.Entry) {
	if s.m.getNumTagItems(s.wpc) <= 0 {
		return
	}

	var name [256]byte

	for i := int32(0); ; i++ {
		n := s.m.getTagItemIndexed(s.wpc, i, &name[0], int32(len(name)))
		if n <= 0 {
			return
		}
		key := string(name[:min(int(n), len(name)-1)])

		size := s.m.getTagItem(s.wpc, key, nil, 0)
		if size <= 0 {
			continue
		}
		value := make([]byte, size+1)
		s.m.getTagItem(s.wpc, key, &value[0], size+1)
		v := strings.TrimSpace(string(value[:size]))

		if strings.EqualFold(key, "cuesheet") {
			chapters, err := tags.ParseCueSheet(v)
			if err != nil {
				log.WithError(err).Debug("ignoring cuesheet")
				continue
			}
			s.chapters = chapters
			continue
		}

		if id, ok := tags.LookupAPE(key); ok && v != "" {
			s.tags[id] = v
		}
	}
}

func (s *Source) Format() pcm.Format       { return s.format }
func (s *Source) ChannelMap() chanmap.Map  { return s.cmap }
func (s *Source) Length() int64            { return s.length }
func (s *Source) Tags() tags.Map           { return s.tags }
func (s *Source) Chapters() []tags.Chapter { return s.chapters }

func (s *Source) ReadSamples(dst []byte, frames int) (int, error) {
	if err := audio.CheckBuffer(s.format, dst, frames); err != nil {
		return 0, err
	}
	if frames == 0 {
		return 0, nil
	}

	var n int
	if s.wide {
		n = s.unpackWide(dst, frames)
	} else {
		n = s.unpackNarrow(dst, frames)
	}
	if n == 0 {
		return 0, io.EOF
	}

	return n, nil
}

// unpackNarrow unpacks 16-bit and smaller samples into the pivot and
// high-aligns them on the way out.
func (s *Source) unpackNarrow(dst []byte, frames int) int {
	want := frames * s.format.Channels
	if cap(s.pivot) < want {
		s.pivot = make([]int32, want)
	}
	s.pivot = s.pivot[:want]

	n := int(s.m.unpackSamples(s.wpc, unsafe.Pointer(&s.pivot[0]), uint32(frames)))
	pcm.PutInt32s(dst, s.pivot[:n*s.format.Channels], s.format.BitsPerSample)

	return n
}

// unpackWide lets the library write 32-bit slots into dst directly. Float
// samples arrive as IEEE bits and are left as they are.
func (s *Source) unpackWide(dst []byte, frames int) int {
	n := int(s.m.unpackSamples(s.wpc, unsafe.Pointer(&dst[0]), uint32(frames)))
	if !s.format.Float {
		pcm.ShiftInPlace(dst[:n*s.format.BytesPerFrame()], s.format.BitsPerSample)
	}

	return n
}

func (s *Source) SeekTo(frame int64) error {
	if frame < 0 || frame >= unknownSamples {
		return fmt.Errorf("%w: frame %d", ErrSeek, frame)
	}
	if s.m.seekSample(s.wpc, uint32(frame)) == 0 {
		return fmt.Errorf("%w: frame %d", ErrSeek, frame)
	}
	return nil
}

func (s *Source) Position() (int64, error) {
	return int64(s.m.getSampleIndex(s.wpc)), nil
}

func (s *Source) Close() error {
	if s.wpc != 0 {
		s.m.closeFile(s.wpc)
		s.wpc = 0
	}
	return s.closeFiles()
}

func (s *Source) closeFiles() error {
	var errs []error
	if s.wvc != nil {
		errs = append(errs, s.wvc.Close())
	}
	errs = append(errs, s.file.Close())

	return errors.Join(errs...)
}

// cString returns buf up to its first NUL.
func cString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}
