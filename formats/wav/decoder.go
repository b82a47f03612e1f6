// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/formats/block"
	"github.com/ik5/audsrc/pcm"
	"github.com/ik5/audsrc/tags"
)

// blockFrames is the number of frames pulled from the data chunk per block.
const blockFrames = 4096

const (
	formatPCM        = 1
	formatExtensible = 0xfffe
)

// pcmReader is an interface for wav.Decoder to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type decoder struct {
	dec      pcmReader
	closer   io.Closer
	info     block.Info
	intBuf   *goaudio.IntBuffer
	unsigned bool
	tags     tags.Map
}

func (d *decoder) Info() block.Info        { return d.info }
func (d *decoder) MaxBlockFrames() int     { return blockFrames }
func (d *decoder) Tags() (tags.Map, error) { return d.tags, nil }

func (d *decoder) DecodeBlock(dst []int32) (int, error) {
	ch := d.info.Channels
	want := min(len(dst), blockFrames*ch)
	d.intBuf.Data = d.intBuf.Data[:want]

	n, err := d.dec.PCMBuffer(d.intBuf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("wav: %w", err)
	}

	frames := n / ch
	for i, v := range d.intBuf.Data[:frames*ch] {
		if d.unsigned {
			v -= 128
		}
		dst[i] = int32(v)
	}

	return frames, nil
}

func (d *decoder) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

// Open decodes the WAV file at path.
func Open(path string) (*block.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	src, err := newSource(f, f, logrus.WithFields(logrus.Fields{"backend": "wav", "path": path}))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return src, nil
}

// NewSource decodes WAV data from rs. rs is closed with the source when it
// implements io.Closer.
func NewSource(rs io.ReadSeeker) (*block.Source, error) {
	closer, _ := rs.(io.Closer)
	return newSource(rs, closer, logrus.WithField("backend", "wav"))
}

func newSource(rs io.ReadSeeker, closer io.Closer, log *logrus.Entry) (*block.Source, error) {
	t := readTags(rs, log)

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	d := wav.NewDecoder(rs)
	if !d.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if d.WavAudioFormat != formatPCM && d.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedWavLayout, d.WavAudioFormat)
	}
	if err := d.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	channels := int(d.NumChans)
	bits := int(d.BitDepth)
	if channels == 0 || bits == 0 || bits > 32 || bits%8 != 0 {
		return nil, fmt.Errorf("%w: %d channels, %d bits", ErrUnsupportedWavLayout, channels, bits)
	}

	kind := pcm.SignedInt
	if bits == 8 {
		kind = pcm.UnsignedInt
	}

	frames := int64(-1)
	if size := d.PCMLen(); size > 0 {
		frames = size / int64(channels*bits/8)
	}

	log.WithFields(logrus.Fields{"channels": channels, "bits": bits, "rate": d.SampleRate}).Debug("opened")

	return block.New(&decoder{
		dec:    d,
		closer: closer,
		info: block.Info{
			SampleRate:    int(d.SampleRate),
			Channels:      channels,
			BitsPerSample: bits,
			Kind:          kind,
			Frames:        frames,
		},
		intBuf: &goaudio.IntBuffer{
			Data:           make([]int, blockFrames*channels),
			Format:         d.Format(),
			SourceBitDepth: bits,
		},
		unsigned: kind == pcm.UnsignedInt,
		tags:     t,
	})
}

// readTags scans the whole file for a LIST/INFO chunk. Failures only cost
// the tags.
func readTags(rs io.ReadSeeker, log *logrus.Entry) tags.Map {
	d := wav.NewDecoder(rs)
	d.ReadMetadata()
	if err := d.Err(); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Debug("ignoring unreadable metadata")
	}
	if d.Metadata == nil {
		return tags.Map{}
	}

	return fromMetadata(d.Metadata)
}

func fromMetadata(md *wav.Metadata) tags.Map {
	m := tags.Map{}
	for id, v := range map[tags.ID]string{
		tags.Title:     md.Title,
		tags.Artist:    md.Artist,
		tags.Album:     md.Product,
		tags.Genre:     md.Genre,
		tags.Date:      md.CreationDate,
		tags.Track:     md.TrackNbr,
		tags.Comment:   md.Comments,
		tags.Copyright: md.Copyright,
		tags.Encoder:   md.Software,
	} {
		if v != "" {
			m[id] = v
		}
	}

	return m
}

type Decoder struct{}

func (Decoder) Open(path string) (audio.Reader, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}
