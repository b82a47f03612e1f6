// SPDX-License-Identifier: EPL-2.0

//go:build darwin || linux

package wavpack

import (
	"io"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/ik5/audsrc/internal/fdio"
)

var (
	readerOnce  sync.Once
	readerTable streamReader
)

// sharedStreamReader builds the callback table once; each callback gets
// the file descriptor as its id.
func sharedStreamReader() *streamReader {
	readerOnce.Do(func() {
		readerTable = streamReader{
			ReadBytes:    purego.NewCallback(readBytes),
			GetPos:       purego.NewCallback(getPos),
			SetPosAbs:    purego.NewCallback(setPosAbs),
			SetPosRel:    purego.NewCallback(setPosRel),
			PushBackByte: purego.NewCallback(pushBackByte),
			GetLength:    purego.NewCallback(getLength),
			CanSeek:      purego.NewCallback(canSeek),
		}
	})

	return &readerTable
}

func readBytes(id uintptr, data unsafe.Pointer, count int32) int32 {
	if count <= 0 {
		return 0
	}

	n, _ := fdio.FD(id).ReadFull(unsafe.Slice((*byte)(data), count))
	return int32(n)
}

func getPos(id uintptr) uint32 {
	pos, err := fdio.FD(id).Tell()
	if err != nil {
		return unknownSamples
	}
	return uint32(pos)
}

func setPosAbs(id uintptr, pos uint32) int32 {
	if _, err := fdio.FD(id).Seek(int64(pos), io.SeekStart); err != nil {
		return -1
	}
	return 0
}

func setPosRel(id uintptr, delta int32, whence int32) int32 {
	if _, err := fdio.FD(id).Seek(int64(delta), int(whence)); err != nil {
		return -1
	}
	return 0
}

// pushBackByte follows ungetc: it returns c, or -1 when the offset could
// not be moved back.
func pushBackByte(id uintptr, c int32) int32 {
	if _, err := fdio.FD(id).Unread(); err != nil {
		return -1
	}
	return c
}

func getLength(id uintptr) uint32 {
	n, err := fdio.FD(id).Size()
	if err != nil {
		return 0
	}
	return uint32(n)
}

func canSeek(id uintptr) int32 {
	if _, err := fdio.FD(id).Tell(); err != nil {
		return 0
	}
	return 1
}
