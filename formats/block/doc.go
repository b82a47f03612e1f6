// SPDX-License-Identifier: EPL-2.0

// Package block adapts decoders that produce samples in blocks of their own
// size, such as FLAC frames or PCM chunks, to audio.Reader.
//
// The Source keeps one decoded block and hands it out across as many
// ReadSamples calls as needed. A new block is only decoded once the previous
// one has been fully delivered, so no sample is returned twice and a request
// for N frames yields exactly N frames unless the stream ends first.
//
// Backends implement Decoder; see the flac, wav and aiff packages.
package block
