// SPDX-License-Identifier: EPL-2.0

package tags

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func riffChunk(id string, body []byte) []byte {
	var b bytes.Buffer
	b.WriteString(id)
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(body)))
	b.Write(body)
	if len(body)%2 == 1 {
		b.WriteByte(0)
	}
	return b.Bytes()
}

func wrapperHeader(chunks ...[]byte) []byte {
	var body bytes.Buffer
	body.WriteString("WAVE")
	for _, c := range chunks {
		body.Write(c)
	}

	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(body.Len()+1<<20))
	b.Write(body.Bytes())

	return b.Bytes()
}

func TestReadRIFFInfo(t *testing.T) {
	t.Parallel()

	fmtBody := make([]byte, 16)
	binary.LittleEndian.PutUint16(fmtBody[0:], 1)
	binary.LittleEndian.PutUint16(fmtBody[2:], 2)

	var info bytes.Buffer
	info.WriteString("INFO")
	info.Write(riffChunk("INAM", []byte("Title\x00")))
	info.Write(riffChunk("IART", []byte("Band\x00")))
	info.Write(riffChunk("IXYZ", []byte("skip")))
	info.Write(riffChunk("ICRD", []byte("2001")))

	// The data chunk header is the last thing stored; no samples follow.
	data := []byte("data\x00\x00\x10\x00")

	hdr := wrapperHeader(riffChunk("fmt ", fmtBody), riffChunk("LIST", info.Bytes()))
	hdr = append(hdr, data...)

	got, err := ReadRIFFInfo(bytes.NewReader(hdr))
	if err != nil {
		t.Fatalf("ReadRIFFInfo() error = %v", err)
	}

	want := Map{Title: "Title", Artist: "Band", Date: "2001"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadRIFFInfo() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRIFFInfo_NoList(t *testing.T) {
	t.Parallel()

	hdr := wrapperHeader(riffChunk("fmt ", make([]byte, 16)))

	got, err := ReadRIFFInfo(bytes.NewReader(hdr))
	if err != nil {
		t.Fatalf("ReadRIFFInfo() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadRIFFInfo() = %v, want empty", got)
	}
}

func TestReadRIFFInfo_NotRIFF(t *testing.T) {
	t.Parallel()

	_, err := ReadRIFFInfo(bytes.NewReader([]byte("FORM\x00\x00\x00\x04AIFF")))
	if !errors.Is(err, ErrNotRIFF) {
		t.Errorf("ReadRIFFInfo() error = %v, want ErrNotRIFF", err)
	}
}
