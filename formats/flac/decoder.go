// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/chanmap"
	"github.com/ik5/audsrc/formats/block"
	"github.com/ik5/audsrc/pcm"
	"github.com/ik5/audsrc/tags"
)

// frameParser is the part of *flac.Stream used for decoding, so tests can
// feed frames directly.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

// decoder turns FLAC frames into interleaved blocks.
type decoder struct {
	file     io.Closer
	frames   frameParser
	info     block.Info
	maxBlock int
	tags     tags.Map
}

func (d *decoder) Info() block.Info        { return d.info }
func (d *decoder) MaxBlockFrames() int     { return d.maxBlock }
func (d *decoder) Tags() (tags.Map, error) { return d.tags, nil }

func (d *decoder) DecodeBlock(dst []int32) (int, error) {
	fr, err := d.frames.ParseNext()
	if errors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("flac: %w", err)
	}

	ch := d.info.Channels
	if len(fr.Subframes) != ch {
		return 0, fmt.Errorf("%w: %d, want %d", ErrChannelLayout, len(fr.Subframes), ch)
	}

	n := int(fr.BlockSize)
	if n*ch > len(dst) {
		return 0, fmt.Errorf("%w: %d frames", block.ErrBlockOverflow, n)
	}

	for c, sub := range fr.Subframes {
		for i, v := range sub.Samples[:n] {
			dst[i*ch+c] = v
		}
	}

	return n, nil
}

func (d *decoder) Close() error {
	if d.file == nil {
		return nil
	}
	return d.file.Close()
}

// Open decodes the FLAC file at path. Tags come from the VORBIS_COMMENT
// block.
func Open(path string) (*block.Source, error) {
	log := logrus.WithFields(logrus.Fields{"backend": "flac", "path": path})

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("flac: %w", err)
	}

	stream, err := flac.Parse(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	dec, err := newDecoder(stream.Info, stream.Blocks, stream, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	log.WithField("format", dec.info).Debug("opened")

	return block.New(dec)
}

func newDecoder(si *meta.StreamInfo, blocks []*meta.Block, frames frameParser, file io.Closer) (*decoder, error) {
	if si == nil {
		return nil, ErrNotFlacFile
	}

	frameCount := int64(si.NSamples)
	if frameCount == 0 {
		frameCount = -1
	}

	comments := vorbisComments(blocks)

	cmap, err := channelMask(comments, int(si.NChannels))
	if err != nil {
		return nil, err
	}

	return &decoder{
		file:   file,
		frames: frames,
		info: block.Info{
			SampleRate:    int(si.SampleRate),
			Channels:      int(si.NChannels),
			BitsPerSample: int(si.BitsPerSample),
			Kind:          pcm.SignedInt,
			Frames:        frameCount,
			ChannelMap:    cmap,
		},
		maxBlock: int(si.BlockSizeMax),
		tags:     tags.FromVorbisPairs(comments),
	}, nil
}

func vorbisComments(blocks []*meta.Block) [][2]string {
	var out [][2]string
	for _, b := range blocks {
		if vc, ok := b.Body.(*meta.VorbisComment); ok {
			out = append(out, vc.Tags...)
		}
	}

	return out
}

// channelMask honors WAVEFORMATEXTENSIBLE_CHANNEL_MASK. Without it the
// channel order is the FLAC default, which is the standard layout.
func channelMask(comments [][2]string, channels int) (chanmap.Map, error) {
	for _, c := range comments {
		if !strings.EqualFold(c[0], "WAVEFORMATEXTENSIBLE_CHANNEL_MASK") {
			continue
		}

		mask, err := strconv.ParseUint(strings.TrimSpace(c[1]), 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: channel mask %q", audio.ErrUnsupportedFormat, c[1])
		}

		return chanmap.FromMask(uint32(mask), channels)
	}

	return nil, nil
}

// Decoder opens FLAC files for an audio.Registry.
type Decoder struct{}

func (Decoder) Open(path string) (audio.Reader, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}
