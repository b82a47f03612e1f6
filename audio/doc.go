// SPDX-License-Identifier: EPL-2.0

// Package audio defines the contract every backend adapter implements.
//
// Adapters wrap decoders with very different native APIs (block decoders,
// runtime-loaded libraries, extraction sessions) and present them through
// the same small set of interfaces:
//   - Source: sample format, channel map, length, Close
//   - Reader: interleaved frames through ReadSamples
//   - Seeker: frame-accurate SeekTo and Position
//   - Tagged: tags and chapters extracted when the file was opened
//
// # Source Interface
//
//	type Reader interface {
//	    Format() pcm.Format
//	    ChannelMap() chanmap.Map
//	    Length() int64
//	    Close() error
//	    ReadSamples(dst []byte, frames int) (int, error)
//	}
//
// Format and ChannelMap are fixed once the adapter is constructed. A nil
// channel map means the backend reported none; ChannelMapOf substitutes the
// standard layout for the channel count.
//
// # Sample Format
//
// Samples are interleaved, in host byte order:
//   - integers of any native depth are packed into 32-bit signed slots,
//     high-aligned (a 16-bit 0x1234 arrives as 0x12340000)
//   - 32-bit float stays 32-bit, 64-bit float stays 64-bit
//
// Format().BitsPerSample still reports the native depth, so consumers that
// need it can shift back.
//
// # Construction
//
// Constructors either return a fully usable adapter or an error, and release
// whatever they acquired on the way. Backends that load a library at runtime
// fail with ErrBindingNotLoaded when the library is missing; an external
// prober is expected to try the next backend.
//
// The Registry maps backend names to Openers for programs that let the user
// pick a backend. It never inspects files.
//
// # Error Handling
//
// ReadSamples returns (0, io.EOF) once the stream is exhausted. Other errors
// come from the underlying decoder or file:
//
//	for {
//	    n, err := src.ReadSamples(buf, frames)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Process n frames from buf
//	}
package audio
