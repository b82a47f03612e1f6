// SPDX-License-Identifier: EPL-2.0

// Package audsrc exposes audio files of many formats as one kind of PCM
// source.
//
// Every backend adapter implements audio.Reader: it reports a pcm.Format,
// an optional chanmap.Map and a length in frames, and fills caller buffers
// with interleaved frames. Integer samples arrive as 32-bit host-order
// values with the native bits at the top; float samples stay 32 or 64 bit.
// Most adapters also implement audio.Seeker and audio.Tagged.
//
// # Backends
//
// Pure Go backends, usable without any native library:
//   - FLAC via formats/flac
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - AIFF (PCM 16/24/32-bit) via formats/aiff
//   - Ogg Vorbis via formats/vorbis
//   - MP3 via formats/mp3
//
// Backends bound at runtime to a shared library, with no cgo:
//   - libsndfile via formats/sndfile
//   - WavPack via formats/wavpack
//
// A missing library does not fail the program: Load returns an inert
// module whose Open reports audio.ErrBindingNotLoaded.
//
// # Quick Start
//
//	src, err := flac.Open("track.flac")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	buf := make([]byte, 4096*src.Format().BytesPerFrame())
//	for {
//	    n, err := src.ReadSamples(buf, 4096)
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    // use buf[:n*src.Format().BytesPerFrame()]
//	}
//
// ReadInt16 collects a whole source as 16-bit PCM when that is all a
// program needs.
//
// # Choosing a backend
//
// Nothing here probes files. Programs pick the backend, usually through
// an audio.Registry built by config.Modules.Registry:
//
//	cfg, _ := config.Load("audsrc.yaml")
//	mods := cfg.LoadModules()
//	defer mods.Close()
//
//	src, err := mods.Registry().Open("wavpack", "album.wv")
//
// See the individual subpackages for more detailed documentation.
package audsrc
