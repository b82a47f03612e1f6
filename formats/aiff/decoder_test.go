// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/formats/block"
	"github.com/ik5/audsrc/pcm"
	"github.com/ik5/audsrc/tags"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate   int
	channels     int
	samples      []int
	offset       int
	returnErrors bool
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	samplesToRead := min(len(buf.Data), len(m.samples)-m.offset)
	copy(buf.Data, m.samples[m.offset:m.offset+samplesToRead])
	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return samplesToRead, io.EOF
	}

	return samplesToRead, nil
}

// sampleRate44100 is 44100 as an 80-bit IEEE extended float.
var sampleRate44100 = []byte{0x40, 0x0e, 0xac, 0x44, 0, 0, 0, 0, 0, 0}

func chunk(id string, body []byte) []byte {
	var b bytes.Buffer
	b.WriteString(id)
	_ = binary.Write(&b, binary.BigEndian, uint32(len(body)))
	b.Write(body)
	if len(body)%2 == 1 {
		b.WriteByte(0)
	}
	return b.Bytes()
}

// aiff16 builds a 16-bit AIFF file with extra chunks placed ahead of SSND.
func aiff16(channels int, samples []int16, extra ...[]byte) []byte {
	var comm bytes.Buffer
	_ = binary.Write(&comm, binary.BigEndian, int16(channels))
	_ = binary.Write(&comm, binary.BigEndian, uint32(len(samples)/channels))
	_ = binary.Write(&comm, binary.BigEndian, int16(16))
	comm.Write(sampleRate44100)

	var ssnd bytes.Buffer
	_ = binary.Write(&ssnd, binary.BigEndian, uint32(0))
	_ = binary.Write(&ssnd, binary.BigEndian, uint32(0))
	for _, s := range samples {
		_ = binary.Write(&ssnd, binary.BigEndian, s)
	}

	var body bytes.Buffer
	body.WriteString("AIFF")
	body.Write(chunk("COMM", comm.Bytes()))
	for _, e := range extra {
		body.Write(e)
	}
	body.Write(chunk("SSND", ssnd.Bytes()))

	var file bytes.Buffer
	file.WriteString("FORM")
	_ = binary.Write(&file, binary.BigEndian, uint32(body.Len()))
	file.Write(body.Bytes())

	return file.Bytes()
}

func id3Title(title string) []byte {
	var frame bytes.Buffer
	frame.WriteString("TIT2")
	_ = binary.Write(&frame, binary.BigEndian, uint32(len(title)+1))
	frame.Write([]byte{0, 0, 0})
	frame.WriteString(title)

	var b bytes.Buffer
	b.WriteString("ID3")
	b.Write([]byte{3, 0, 0, 0, 0, 0, byte(frame.Len())})
	b.Write(frame.Bytes())
	return b.Bytes()
}

func TestNewSource_File(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1, -1, 16384, 32767, -32768}
	file := aiff16(2, samples, chunk("ID3 ", id3Title("Prelude")))

	src, err := NewSource(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}
	defer src.Close()

	f := src.Format()
	if f.SampleRate != 44100 || f.Channels != 2 || f.BitsPerSample != 16 || f.PackedBits != 32 {
		t.Errorf("Format() = %+v", f)
	}
	if src.Length() != 3 {
		t.Errorf("Length() = %d, want 3", src.Length())
	}
	if got := src.Tags()[tags.Title]; got != "Prelude" {
		t.Errorf("Tags()[Title] = %q, want Prelude", got)
	}

	data, err := audio.ReadAll(src, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range samples {
		if got := pcm.Int32At(data, i); got != int32(s)<<16 {
			t.Errorf("sample %d = %#x, want %#x", i, got, int32(s)<<16)
		}
	}
}

func TestNewSource_NoTags(t *testing.T) {
	t.Parallel()

	src, err := NewSource(bytes.NewReader(aiff16(1, []int16{1, 2, 3})))
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}
	if len(src.Tags()) != 0 {
		t.Errorf("Tags() = %v, want empty", src.Tags())
	}
}

func TestNewSource_NonSeekable(t *testing.T) {
	t.Parallel()

	r := io.MultiReader(bytes.NewReader(aiff16(1, []int16{5, 6})))
	src, err := NewSource(r)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}
	defer src.Close()

	if src.Length() != 2 {
		t.Errorf("Length() = %d, want 2", src.Length())
	}

	data, err := audio.ReadAll(src, 1)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(data) != 8 || pcm.Int32At(data, 0) != 5<<16 || pcm.Int32At(data, 1) != 6<<16 {
		t.Errorf("ReadAll() = % x, want 5 and 6 high-aligned", data)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "text", data: []byte("This is not AIFF data")},
		{name: "empty", data: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewSource(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("NewSource() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestNewDecoder_BitDepth(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{8, 12, 20} {
		_, err := newDecoder(&mockAiffReader{sampleRate: 8000, channels: 1}, bits, 0, nil, nil)
		if !errors.Is(err, ErrUnsupportedBitDepth) {
			t.Errorf("newDecoder(%d bits) error = %v, want ErrUnsupportedBitDepth", bits, err)
		}
		if !errors.Is(err, audio.ErrUnsupportedFormat) {
			t.Errorf("newDecoder(%d bits) error does not wrap ErrUnsupportedFormat", bits)
		}
	}

	if _, err := newDecoder(&mockAiffReader{sampleRate: 8000}, 16, 0, nil, nil); !errors.Is(err, ErrUnsupportedAiffLayout) {
		t.Errorf("zero channels error = %v, want ErrUnsupportedAiffLayout", err)
	}
}

func TestSource_24Bit(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{sampleRate: 48000, channels: 1, samples: []int{-8388608, 0, 8388607}}
	d, err := newDecoder(mock, 24, 3, tags.Map{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	src, err := block.New(d)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 4*4)
	n, err := src.ReadSamples(buf, 4)
	if err != nil || n != 3 {
		t.Fatalf("ReadSamples() = %d, %v; want 3, nil", n, err)
	}

	want := []int32{-8388608 << 8, 0, 8388607 << 8}
	for i, w := range want {
		if got := pcm.Int32At(buf, i); got != w {
			t.Errorf("sample %d = %#x, want %#x", i, got, w)
		}
	}

	if n, err := src.ReadSamples(buf, 4); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() at end = %d, %v; want 0, EOF", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{sampleRate: 48000, channels: 2, returnErrors: true}
	d, err := newDecoder(mock, 16, -1, tags.Map{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	src, err := block.New(d)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := src.ReadSamples(make([]byte, 64), 8); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int, 2*44100)
	buf := make([]byte, 4096*8)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		mock := &mockAiffReader{sampleRate: 44100, channels: 2, samples: samples}
		d, _ := newDecoder(mock, 16, 44100, tags.Map{}, nil)
		src, _ := block.New(d)
		for {
			if n, _ := src.ReadSamples(buf, 4096); n == 0 {
				break
			}
		}
	}
}
