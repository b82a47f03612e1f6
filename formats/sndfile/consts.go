// SPDX-License-Identifier: EPL-2.0

package sndfile

import "github.com/ik5/audsrc/pcm"

const (
	sfmRead = 0x10

	sfFalse = 0

	sfcGetFormatMajorCount = 0x1030
	sfcGetFormatMajor      = 0x1031
	sfcGetChannelMapInfo   = 0x1100

	sfFormatTypeMask = 0x0FFF0000
	sfFormatSubMask  = 0x0000FFFF

	seekSet = 0
	seekCur = 1
)

// sfInfo mirrors SF_INFO.
type sfInfo struct {
	Frames     int64
	SampleRate int32
	Channels   int32
	Format     int32
	Sections   int32
	Seekable   int32
}

// sfFormatInfo mirrors SF_FORMAT_INFO.
type sfFormatInfo struct {
	Format    int32
	Name      *byte
	Extension *byte
}

// virtualIO mirrors SF_VIRTUAL_IO. Write stays zero: sources are read-only.
type virtualIO struct {
	GetFilelen uintptr
	Seek       uintptr
	Read       uintptr
	Write      uintptr
	Tell       uintptr
}

type subtype struct {
	bits int
	kind pcm.Kind
}

// subtypes lists the encodings that have an interchange packing. libsndfile
// hands PCM_U8 out through sf_readf_int already signed.
var subtypes = map[int32]subtype{
	0x0001: {8, pcm.SignedInt},   // PCM_S8
	0x0002: {16, pcm.SignedInt},  // PCM_16
	0x0003: {24, pcm.SignedInt},  // PCM_24
	0x0004: {32, pcm.SignedInt},  // PCM_32
	0x0005: {8, pcm.UnsignedInt}, // PCM_U8
	0x0006: {32, pcm.Float},      // FLOAT
	0x0007: {64, pcm.Float},      // DOUBLE
	0x0070: {16, pcm.SignedInt},  // ALAC_16
	0x0071: {20, pcm.SignedInt},  // ALAC_20
	0x0072: {24, pcm.SignedInt},  // ALAC_24
	0x0073: {32, pcm.SignedInt},  // ALAC_32
}
