// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC files with github.com/mewkiz/flac.
//
// Each FLAC frame is one block for the block adapter, so a Source never
// holds more than one frame of decoded audio. Samples keep their native
// depth in Format().BitsPerSample and are delivered high-aligned in 32 bits.
//
// Tags are read from the VORBIS_COMMENT block. A
// WAVEFORMATEXTENSIBLE_CHANNEL_MASK comment overrides the default channel
// order.
//
// Example:
//
//	src, err := flac.Open("album.flac")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	fmt.Println(src.Format(), src.Tags()[tags.Title])
package flac
