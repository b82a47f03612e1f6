// SPDX-License-Identifier: EPL-2.0

package tags

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

var (
	listID = [4]byte{'L', 'I', 'S', 'T'}
	infoID = [4]byte{'I', 'N', 'F', 'O'}
)

// ReadRIFFInfo collects LIST/INFO tags from a RIFF WAVE header. The stream
// may stop anywhere after the data chunk header, as it does in the wrapper
// stored by WavPack.
func ReadRIFFInfo(r io.Reader) (Map, error) {
	p := riff.New(r)

	id, _, err := p.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotRIFF, err)
	}
	var form [4]byte
	if _, err := io.ReadFull(r, form[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotRIFF, err)
	}
	if id != riff.RiffID || form != riff.WavFormatID {
		return nil, fmt.Errorf("%w: %q/%q", ErrNotRIFF, id[:], form[:])
	}

	m := make(Map)
	for {
		chunk, err := p.NextChunk()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return m, nil
		}
		if err != nil {
			return m, err
		}
		if chunk.ID == riff.DataFormatID {
			return m, nil
		}
		if chunk.ID != listID {
			chunk.Drain()
			continue
		}

		body, err := readChunk(chunk, int64(chunk.Size))
		if err != nil {
			return m, nil
		}
		parseInfoList(m, body)
	}
}

func parseInfoList(m Map, body []byte) {
	if len(body) < 4 || !bytes.Equal(body[:4], infoID[:]) {
		return
	}

	rest := body[4:]
	for len(rest) >= 8 {
		key := string(rest[:4])
		size := int(binary.LittleEndian.Uint32(rest[4:8]))
		rest = rest[8:]
		if size > len(rest) {
			size = len(rest)
		}

		if id, ok := LookupRIFF(key); ok {
			m.set(id, string(bytes.TrimRight(rest[:size], "\x00")))
		}

		size += size & 1
		if size > len(rest) {
			return
		}
		rest = rest[size:]
	}
}
