// SPDX-License-Identifier: EPL-2.0

package tags

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dhowden/tag"
)

// ReadID3 reads the tags at the start of r (ID3v2, falling back to the
// other layouts understood by dhowden/tag).
func ReadID3(r io.ReadSeeker) (Map, error) {
	md, err := tag.ReadFrom(r)
	if err != nil {
		return nil, err
	}

	return FromMetadata(md), nil
}

// ReadAIFFID3 walks the chunks of an AIFF or AIFC file and decodes the
// ID3v2 tag stored in its "ID3 " chunk.
func ReadAIFFID3(r io.ReadSeeker) (Map, error) {
	var form struct {
		ID   [4]byte
		Size uint32
		Type [4]byte
	}
	if err := binary.Read(r, binary.BigEndian, &form); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAIFF, err)
	}
	if string(form.ID[:]) != "FORM" || (string(form.Type[:]) != "AIFF" && string(form.Type[:]) != "AIFC") {
		return nil, ErrNotAIFF
	}

	for {
		var ch struct {
			ID   [4]byte
			Size uint32
		}
		err := binary.Read(r, binary.BigEndian, &ch)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrNoID3
		}
		if err != nil {
			return nil, err
		}

		switch string(ch.ID[:]) {
		case "ID3 ", "id3 ":
			body, err := readChunk(r, int64(ch.Size))
			if err != nil {
				return nil, err
			}
			md, err := tag.ReadID3v2Tags(bytes.NewReader(body))
			if err != nil {
				return nil, err
			}
			return FromMetadata(md), nil
		}

		skip := int64(ch.Size) + int64(ch.Size&1)
		if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
			return nil, err
		}
	}
}

// FromMetadata converts the generic view of dhowden/tag.
func FromMetadata(md tag.Metadata) Map {
	m := make(Map)

	m.set(Title, md.Title())
	m.set(Artist, md.Artist())
	m.set(AlbumArtist, md.AlbumArtist())
	m.set(Album, md.Album())
	m.set(Genre, md.Genre())
	m.set(Composer, md.Composer())
	m.set(Comment, md.Comment())
	m.set(Lyrics, md.Lyrics())

	if y := md.Year(); y > 0 {
		m.set(Date, strconv.Itoa(y))
	}
	if n, total := md.Track(); n > 0 {
		m.set(Track, numberOf(n, total))
	}
	if n, total := md.Disc(); n > 0 {
		m.set(Disc, numberOf(n, total))
	}

	raw := md.Raw()
	for _, k := range []string{"TSSE", "TSS"} {
		if s, ok := raw[k].(string); ok {
			m.set(Encoder, s)
		}
	}
	for _, k := range []string{"TCOP", "TCR"} {
		if s, ok := raw[k].(string); ok {
			m.set(Copyright, s)
		}
	}

	return m
}

func numberOf(n, total int) string {
	if total > 0 {
		return strconv.Itoa(n) + "/" + strconv.Itoa(total)
	}
	return strconv.Itoa(n)
}
