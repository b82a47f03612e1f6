// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WritePCM writes interleaved right-justified samples as a PCM WAV file.
// 8-bit output is stored unsigned, as WAVE requires.
func WritePCM(w io.Writer, sampleRate, channels, bitsPerSample int, samples []int32) error {
	if bitsPerSample%8 != 0 || bitsPerSample < 8 || bitsPerSample > 32 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitsPerSample)
	}

	bytesPerSample := bitsPerSample / 8
	byteRate := uint32(sampleRate * channels * bytesPerSample)
	blockAlign := uint16(channels * bytesPerSample)
	dataSize := uint32(len(samples) * bytesPerSample)
	riffSize := 36 + dataSize + dataSize&1

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, 44)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(bitsPerSample))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	// For better performance with large files, write in chunks
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*bytesPerSample)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf = buf[:len(chunk)*bytesPerSample]

		for j, s := range chunk {
			putSample(buf[j*bytesPerSample:], s, bytesPerSample)
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if dataSize&1 == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

func putSample(dst []byte, s int32, size int) {
	switch size {
	case 1:
		dst[0] = byte(s + 128)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(s))
	case 3:
		dst[0] = byte(s)
		dst[1] = byte(s >> 8)
		dst[2] = byte(s >> 16)
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(s))
	}
}
