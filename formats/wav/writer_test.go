// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWritePCM_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rate       int
		channels   int
		bits       int
		samples    int
		wantSize   int
		blockAlign uint16
	}{
		{name: "16-bit mono", rate: 8000, channels: 1, bits: 16, samples: 5, wantSize: 44 + 10, blockAlign: 2},
		{name: "24-bit stereo", rate: 48000, channels: 2, bits: 24, samples: 4, wantSize: 44 + 12, blockAlign: 6},
		{name: "8-bit odd data is padded", rate: 11025, channels: 1, bits: 8, samples: 3, wantSize: 44 + 3 + 1, blockAlign: 1},
		{name: "32-bit empty", rate: 96000, channels: 2, bits: 32, samples: 0, wantSize: 44, blockAlign: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			if err := WritePCM(buf, tt.rate, tt.channels, tt.bits, make([]int32, tt.samples)); err != nil {
				t.Fatalf("WritePCM() error = %v", err)
			}

			data := buf.Bytes()
			if len(data) != tt.wantSize {
				t.Fatalf("size = %d, want %d", len(data), tt.wantSize)
			}
			if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
				t.Errorf("markers = %q %q", data[0:4], data[8:12])
			}

			dataSize := uint32(tt.samples * tt.bits / 8)
			if got := binary.LittleEndian.Uint32(data[4:8]); got != 36+dataSize+dataSize&1 {
				t.Errorf("RIFF size = %d", got)
			}
			if got := binary.LittleEndian.Uint32(data[24:28]); got != uint32(tt.rate) {
				t.Errorf("sample rate = %d, want %d", got, tt.rate)
			}
			if got := binary.LittleEndian.Uint16(data[32:34]); got != tt.blockAlign {
				t.Errorf("block align = %d, want %d", got, tt.blockAlign)
			}
			if got := binary.LittleEndian.Uint32(data[40:44]); got != dataSize {
				t.Errorf("data size = %d, want %d", got, dataSize)
			}
		})
	}
}

func TestWritePCM_SampleData(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WritePCM(buf, 8000, 1, 24, []int32{0x123456, -1}); err != nil {
		t.Fatal(err)
	}

	want := []byte{0x56, 0x34, 0x12, 0xff, 0xff, 0xff}
	if got := buf.Bytes()[44:]; !bytes.Equal(got, want) {
		t.Errorf("data = % x, want % x", got, want)
	}

	buf.Reset()
	if err := WritePCM(buf, 8000, 1, 8, []int32{-128, 0, 127}); err != nil {
		t.Fatal(err)
	}
	if got := buf.Bytes()[44:47]; !bytes.Equal(got, []byte{0, 128, 255}) {
		t.Errorf("8-bit data = % x, want unsigned", got)
	}
}

func TestWritePCM_BadDepth(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{0, 12, 40} {
		err := WritePCM(new(bytes.Buffer), 8000, 1, bits, nil)
		if !errors.Is(err, ErrUnsupportedBitDepth) {
			t.Errorf("WritePCM(bits=%d) error = %v, want ErrUnsupportedBitDepth", bits, err)
		}
	}
}

func BenchmarkWritePCM(b *testing.B) {
	samples := make([]int32, 44100*2)
	buf := new(bytes.Buffer)

	b.ReportAllocs()
	for range b.N {
		buf.Reset()
		_ = WritePCM(buf, 44100, 2, 16, samples)
	}
}
