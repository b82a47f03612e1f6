// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/formats/block"
	"github.com/ik5/audsrc/pcm"
	"github.com/ik5/audsrc/tags"
)

const blockFrames = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// decoder wraps go-audio aiff.Decoder as a block.Decoder
type decoder struct {
	dec    aiffReader
	closer io.Closer
	info   block.Info
	intBuf *goaudio.IntBuffer
	tags   tags.Map
}

func newDecoder(dec aiffReader, bitDepth int, frames int64, t tags.Map, closer io.Closer) (*decoder, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return &decoder{
		dec:    dec,
		closer: closer,
		info: block.Info{
			SampleRate:    format.SampleRate,
			Channels:      format.NumChannels,
			BitsPerSample: bitDepth,
			Kind:          pcm.SignedInt,
			Frames:        frames,
		},
		intBuf: &goaudio.IntBuffer{
			Data:           make([]int, blockFrames*format.NumChannels),
			Format:         format,
			SourceBitDepth: bitDepth,
		},
		tags: t,
	}, nil
}

func (d *decoder) Info() block.Info        { return d.info }
func (d *decoder) MaxBlockFrames() int     { return blockFrames }
func (d *decoder) Tags() (tags.Map, error) { return d.tags, nil }

func (d *decoder) DecodeBlock(dst []int32) (int, error) {
	ch := d.info.Channels
	d.intBuf.Data = d.intBuf.Data[:min(len(dst), blockFrames*ch)]

	// go-audio reports io.EOF together with the last samples
	n, err := d.dec.PCMBuffer(d.intBuf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("aiff: %w", err)
	}

	frames := n / ch
	for i, v := range d.intBuf.Data[:frames*ch] {
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

// Open decodes the AIFF or AIFC file at path. Tags come from its ID3 chunk.
func Open(path string) (*block.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("aiff: %w", err)
	}

	src, err := newSource(f, f, logrus.WithFields(logrus.Fields{"backend": "aiff", "path": path}))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return src, nil
}

// NewSource decodes AIFF data from r. Readers that cannot seek are loaded
// into memory first, since go-audio needs an io.ReadSeeker.
func NewSource(r io.Reader) (*block.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	closer, _ := r.(io.Closer)
	return newSource(rs, closer, logrus.WithField("backend", "aiff"))
}

func newSource(rs io.ReadSeeker, closer io.Closer, log *logrus.Entry) (*block.Source, error) {
	t, err := tags.ReadAIFFID3(rs)
	switch {
	case errors.Is(err, tags.ErrNotAIFF):
		return nil, ErrNotAiffFile
	case errors.Is(err, tags.ErrNoID3):
		t = tags.Map{}
	case err != nil:
		log.WithError(err).Debug("ignoring unreadable ID3 chunk")
		t = tags.Map{}
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("aiff: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	d, err := newDecoder(dec, int(dec.BitDepth), int64(dec.NumSampleFrames), t, closer)
	if err != nil {
		return nil, err
	}

	log.WithField("format", d.info).Debug("opened")

	return block.New(d)
}

type Decoder struct{}

func (Decoder) Open(path string) (audio.Reader, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}
