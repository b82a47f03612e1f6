// SPDX-License-Identifier: EPL-2.0

// Package wavpack reads WavPack files through libwavpack, loaded at runtime
// with purego.
//
//	m := wavpack.Load("libwavpack.so.1")
//	src, err := wavpack.Open(m, "concert.wv")
//	if err != nil {
//	    // audio.ErrBindingNotLoaded when the library is missing
//	}
//	defer src.Close()
//
// A "concert.wvc" correction file next to the input is picked up
// automatically for lossless hybrid playback.
//
// Samples of 16 bits or less are unpacked into an intermediate buffer and
// high-aligned on the way out; wider and float samples are unpacked straight
// into the caller's buffer. All integer output is 32-bit high-aligned.
//
// Tags come from the LIST/INFO chunk of the RIFF header that WavPack keeps
// when packing a WAV file, overridden by APEv2 items. An APE "Cuesheet"
// item becomes the chapter list.
package wavpack
