// SPDX-License-Identifier: EPL-2.0

package tags

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	cafFileType = [4]byte{'c', 'a', 'f', 'f'}
	cafInfoType = [4]byte{'i', 'n', 'f', 'o'}
	cafDataType = [4]byte{'d', 'a', 't', 'a'}
)

type cafChunkHeader struct {
	Type [4]byte
	Size int64
}

// ReadCAF collects tags from the info chunk of a Core Audio Format file.
// A file without one yields an empty map.
func ReadCAF(r io.ReadSeeker) (Map, error) {
	var hdr struct {
		FileType    [4]byte
		FileVersion int16
		FileFlags   int16
	}
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotCAF, err)
	}
	if hdr.FileType != cafFileType {
		return nil, ErrNotCAF
	}

	m := make(Map)
	for {
		var ch cafChunkHeader
		err := binary.Read(r, binary.BigEndian, &ch)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return m, nil
		}
		if err != nil {
			return m, err
		}

		switch ch.Type {
		case cafInfoType:
			return m, readCAFStrings(m, io.LimitReader(r, ch.Size))
		case cafDataType:
			if ch.Size < 0 {
				// data runs to the end of the file
				return m, nil
			}
		}

		if ch.Size < 0 {
			return m, fmt.Errorf("%w: chunk %q has size %d", ErrNotCAF, ch.Type[:], ch.Size)
		}
		if _, err := r.Seek(ch.Size, io.SeekCurrent); err != nil {
			return m, err
		}
	}
}

func readCAFStrings(m Map, r io.Reader) error {
	br := bufio.NewReader(r)

	var n uint32
	if err := binary.Read(br, binary.BigEndian, &n); err != nil {
		return err
	}

	for range n {
		key, err := br.ReadString(0)
		if err != nil {
			return err
		}
		value, err := br.ReadString(0)
		if err != nil {
			return err
		}

		if id, ok := LookupCAF(strings.TrimSuffix(key, "\x00")); ok {
			m.set(id, strings.TrimSuffix(value, "\x00"))
		}
	}

	return nil
}
