// SPDX-License-Identifier: EPL-2.0

// Package extract adapts stateful extraction sessions to audio.Reader.
//
// A session decodes from a selectable range of the stream and may report
// completion while it still holds decoded samples. The Source therefore
// records the completion flag separately and only ends the stream when
// Extract yields no frames:
//
//	src, err := extract.New(session)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	_ = src.SetRange(44100, 44100*10)
//	data, err := audio.ReadAll(src, 4096)
//
// Range is a helper for sessions that have to honor the range end
// themselves.
package extract
