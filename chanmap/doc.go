// SPDX-License-Identifier: EPL-2.0

/*
Package chanmap turns backend specific channel position codes into one
canonical ordering.

Every decoder names its speakers differently: libsndfile has its own
enumeration, WavPack and WAVE carry a speaker bit mask, Vorbis fixes the order
by channel count. chanmap maps all of them onto Label, whose value is the
WAVE mask bit position plus one, so downstream code only deals with a single
vocabulary.

# Unknown positions

A position that has no canonical label is an error, never a guess. Silently
coercing it would reorder audio without anyone noticing:

	m, err := chanmap.FromSndfile(codes)
	if errors.Is(err, chanmap.ErrUnknownChannel) {
		// reject the stream
	}

# Absent maps

A nil Map means the backend did not report positions. Default synthesizes the
standard layout for 1 to 8 channels:

	m, _ := chanmap.Default(6) // FL FR FC LFE BL BR
*/
package chanmap
