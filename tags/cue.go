// SPDX-License-Identifier: EPL-2.0

package tags

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// cueFramesPerSecond is the resolution of INDEX timestamps (CD frames).
const cueFramesPerSecond = 75

// ParseCueSheet turns the tracks of an embedded cue sheet into chapters,
// one per TRACK that has an INDEX 01. A track without a TITLE is named
// after its number.
func ParseCueSheet(sheet string) ([]Chapter, error) {
	var (
		chapters []Chapter
		inTrack  bool
		number   string
		title    string
		offset   time.Duration
		indexed  bool
	)

	flush := func() {
		if !inTrack || !indexed {
			return
		}
		name := title
		if name == "" {
			name = "Track " + number
		}
		chapters = append(chapters, Chapter{Title: name, Offset: offset})
	}

	sc := bufio.NewScanner(strings.NewReader(sheet))
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToUpper(fields[0]) {
		case "TRACK":
			flush()
			if len(fields) < 2 {
				return nil, fmt.Errorf("%w: line %d: TRACK without number", ErrBadCueSheet, line)
			}
			inTrack, number, title, offset, indexed = true, fields[1], "", 0, false
		case "TITLE":
			if inTrack {
				title = unquote(strings.TrimSpace(sc.Text())[len(fields[0]):])
			}
		case "INDEX":
			if !inTrack || len(fields) < 3 || fields[1] != "01" {
				continue
			}
			d, err := parseCueTime(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrBadCueSheet, line, err)
			}
			offset, indexed = d, true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	return chapters, nil
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// parseCueTime parses mm:ss:ff.
func parseCueTime(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("bad timestamp %q", s)
	}

	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("bad timestamp %q", s)
		}
		v[i] = n
	}
	if v[1] >= 60 || v[2] >= cueFramesPerSecond {
		return 0, fmt.Errorf("bad timestamp %q", s)
	}

	frames := (v[0]*60+v[1])*cueFramesPerSecond + v[2]

	return time.Duration(frames) * time.Second / cueFramesPerSecond, nil
}
