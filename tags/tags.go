// SPDX-License-Identifier: EPL-2.0

package tags

import (
	"maps"
	"strings"
	"time"
)

// ID identifies a tag by an iTunes style four character code.
type ID uint32

func fourcc(a, b, c, d byte) ID {
	return ID(a)<<24 | ID(b)<<16 | ID(c)<<8 | ID(d)
}

// Tag identifiers.
var (
	Title       = fourcc(0xa9, 'n', 'a', 'm')
	Artist      = fourcc(0xa9, 'A', 'R', 'T')
	AlbumArtist = fourcc('a', 'A', 'R', 'T')
	Album       = fourcc(0xa9, 'a', 'l', 'b')
	Genre       = fourcc(0xa9, 'g', 'e', 'n')
	Date        = fourcc(0xa9, 'd', 'a', 'y')
	Track       = fourcc('t', 'r', 'k', 'n')
	Disc        = fourcc('d', 'i', 's', 'k')
	Comment     = fourcc(0xa9, 'c', 'm', 't')
	Composer    = fourcc(0xa9, 'w', 'r', 't')
	Grouping    = fourcc(0xa9, 'g', 'r', 'p')
	Lyrics      = fourcc(0xa9, 'l', 'y', 'r')
	Encoder     = fourcc(0xa9, 't', 'o', 'o')
	Copyright   = fourcc('c', 'p', 'r', 't')
)

// String renders the code, with 0xa9 shown as ©.
func (id ID) String() string {
	var sb strings.Builder
	for shift := 24; shift >= 0; shift -= 8 {
		b := byte(id >> uint(shift))
		if b == 0xa9 {
			sb.WriteRune('©')
			continue
		}
		sb.WriteByte(b)
	}

	return sb.String()
}

// Map holds one value per tag.
type Map map[ID]string

// Clone returns an independent copy. A nil map clones to an empty one.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	maps.Copy(out, m)

	return out
}

// set stores v under id unless v is blank or id already has a value.
func (m Map) set(id ID, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	if _, ok := m[id]; ok {
		return
	}
	m[id] = v
}

// Chapter is a named position in a stream.
type Chapter struct {
	Title  string
	Offset time.Duration
}
