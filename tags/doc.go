// SPDX-License-Identifier: EPL-2.0

/*
Package tags normalizes metadata found in audio containers.

Each container stores text metadata its own way: Vorbis comments in FLAC and
Ogg, APEv2 items in WavPack, LIST/INFO chunks in WAVE, an info chunk in CAF,
ID3v2 frames in MP3 and AIFF. The readers in this package fold all of them
into a Map keyed by ID, an iTunes style four character code, so callers see a
single vocabulary whatever the source.

Fields without a known ID are dropped. When a field repeats, the first value
wins.

Embedded cue sheets are turned into chapters:

	chapters, err := tags.ParseCueSheet(sheet)
	for _, c := range chapters {
		fmt.Println(c.Offset, c.Title)
	}
*/
package tags
