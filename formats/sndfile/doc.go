// SPDX-License-Identifier: EPL-2.0

// Package sndfile reads audio through libsndfile, loaded at runtime with
// purego. No cgo is involved; when the library is missing the Module is
// inert and sources fail with audio.ErrBindingNotLoaded.
//
//	m := sndfile.Load("libsndfile.so.1")
//	if !m.Loaded() {
//	    log.Println(m.Err())
//	}
//
//	src, err := sndfile.Open(m, "take1.caf")
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
// libsndfile reads the file through a virtual I/O table whose callbacks
// work on the descriptor of the opened file.
//
// Integer encodings (PCM 8 to 32 bits, ALAC) come out as 32-bit
// high-aligned integers through sf_readf_int, FLOAT through sf_readf_float
// and DOUBLE through sf_readf_double. Other encodings are rejected with
// ErrUnsupportedSubtype.
//
// Tags are read from the ID3 chunk of AIFF files and the info chunk of CAF
// files; other containers have none.
package sndfile
