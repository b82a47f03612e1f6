// SPDX-License-Identifier: EPL-2.0

// Package pcm describes interleaved PCM as exchanged between sources and
// their consumers.
//
// Backends report samples in whatever depth and numeric kind they store.
// Negotiate collapses those into three interchange packings:
//   - every integer depth (8, 16, 20, 24, 32 bits) is packed into a signed
//     32-bit slot, high-aligned
//   - 32-bit float stays 32-bit float
//   - 64-bit float stays 64-bit float
//
// The decision is made once per source and also fixes the read entry point
// (Format.Entry) the source drives its backend through:
//
//	f, err := pcm.Negotiate(44100, 2, 24, pcm.SignedInt)
//	// f.PackedBits == 32, f.Entry() == pcm.EntryInt
//
// The pack helpers convert backend buffers into interchange bytes, which are
// always in host byte order.
package pcm
