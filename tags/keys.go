// SPDX-License-Identifier: EPL-2.0

package tags

import "strings"

var vorbisKeys = map[string]ID{
	"TITLE":        Title,
	"ARTIST":       Artist,
	"ALBUMARTIST":  AlbumArtist,
	"ALBUM ARTIST": AlbumArtist,
	"ALBUM":        Album,
	"GENRE":        Genre,
	"DATE":         Date,
	"YEAR":         Date,
	"TRACKNUMBER":  Track,
	"DISCNUMBER":   Disc,
	"COMMENT":      Comment,
	"DESCRIPTION":  Comment,
	"COMPOSER":     Composer,
	"GROUPING":     Grouping,
	"LYRICS":       Lyrics,
	"ENCODER":      Encoder,
	"COPYRIGHT":    Copyright,
}

var apeKeys = map[string]ID{
	"title":        Title,
	"artist":       Artist,
	"album artist": AlbumArtist,
	"albumartist":  AlbumArtist,
	"album":        Album,
	"genre":        Genre,
	"year":         Date,
	"track":        Track,
	"disc":         Disc,
	"comment":      Comment,
	"composer":     Composer,
	"grouping":     Grouping,
	"lyrics":       Lyrics,
	"tool":         Encoder,
	"encoder":      Encoder,
	"copyright":    Copyright,
}

var riffKeys = map[string]ID{
	"INAM": Title,
	"IART": Artist,
	"IPRD": Album,
	"IGNR": Genre,
	"ICRD": Date,
	"ITRK": Track,
	"IPRT": Track,
	"ICMT": Comment,
	"ICOP": Copyright,
	"ISFT": Encoder,
}

var cafKeys = map[string]ID{
	"title":                Title,
	"artist":               Artist,
	"album":                Album,
	"genre":                Genre,
	"year":                 Date,
	"recorded date":        Date,
	"track number":         Track,
	"composer":             Composer,
	"comments":             Comment,
	"copyright":            Copyright,
	"encoding application": Encoder,
	"lyricist":             Lyrics,
}

// LookupVorbis maps a Vorbis comment field name to an ID. Field names are
// case-insensitive.
func LookupVorbis(key string) (ID, bool) {
	id, ok := vorbisKeys[strings.ToUpper(key)]
	return id, ok
}

// LookupAPE maps an APEv2 item key to an ID. Keys are case-insensitive.
func LookupAPE(key string) (ID, bool) {
	id, ok := apeKeys[strings.ToLower(key)]
	return id, ok
}

// LookupRIFF maps a LIST/INFO sub-chunk id to an ID.
func LookupRIFF(key string) (ID, bool) {
	id, ok := riffKeys[key]
	return id, ok
}

// LookupCAF maps a CAF info chunk key to an ID.
func LookupCAF(key string) (ID, bool) {
	id, ok := cafKeys[strings.ToLower(key)]
	return id, ok
}
