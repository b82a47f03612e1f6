// SPDX-License-Identifier: EPL-2.0

package tags

import "strings"

// FromVorbisComments converts "FIELD=value" comments. TRACKTOTAL and
// DISCTOTAL are folded into Track and Disc as "n/total".
func FromVorbisComments(comments []string) Map {
	pairs := make([][2]string, 0, len(comments))
	for _, c := range comments {
		k, v, ok := strings.Cut(c, "=")
		if !ok {
			continue
		}
		pairs = append(pairs, [2]string{k, v})
	}

	return FromVorbisPairs(pairs)
}

// FromVorbisPairs converts already split field/value pairs. The first
// value of a repeated field wins.
func FromVorbisPairs(pairs [][2]string) Map {
	m := make(Map)
	var trackTotal, discTotal string

	for _, p := range pairs {
		switch strings.ToUpper(p[0]) {
		case "TRACKTOTAL", "TOTALTRACKS":
			trackTotal = strings.TrimSpace(p[1])
			continue
		case "DISCTOTAL", "TOTALDISCS":
			discTotal = strings.TrimSpace(p[1])
			continue
		}
		if id, ok := LookupVorbis(p[0]); ok {
			m.set(id, p[1])
		}
	}

	withTotal(m, Track, trackTotal)
	withTotal(m, Disc, discTotal)

	return m
}

func withTotal(m Map, id ID, total string) {
	n, ok := m[id]
	if !ok || total == "" || strings.Contains(n, "/") {
		return
	}
	m[id] = n + "/" + total
}
