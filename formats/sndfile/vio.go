// SPDX-License-Identifier: EPL-2.0

//go:build darwin || linux

package sndfile

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/ik5/audsrc/internal/fdio"
)

// The callbacks receive the file descriptor as their cookie. purego
// callbacks are never freed, so one table serves every source.
var (
	vioOnce  sync.Once
	vioTable virtualIO
)

func sharedVirtualIO() *virtualIO {
	vioOnce.Do(func() {
		vioTable = virtualIO{
			GetFilelen: purego.NewCallback(vioSize),
			Seek:       purego.NewCallback(vioSeek),
			Read:       purego.NewCallback(vioRead),
			Tell:       purego.NewCallback(vioTell),
		}
	})

	return &vioTable
}

func vioSize(cookie uintptr) int64 {
	n, err := fdio.FD(cookie).Size()
	if err != nil {
		return -1
	}
	return n
}

func vioSeek(offset int64, whence int32, cookie uintptr) int64 {
	pos, err := fdio.FD(cookie).Seek(offset, int(whence))
	if err != nil {
		return -1
	}
	return pos
}

func vioRead(ptr unsafe.Pointer, count int64, cookie uintptr) int64 {
	if count <= 0 {
		return 0
	}

	// a short count tells libsndfile about both EOF and errors
	n, _ := fdio.FD(cookie).ReadFull(unsafe.Slice((*byte)(ptr), count))
	return int64(n)
}

func vioTell(cookie uintptr) int64 {
	pos, err := fdio.FD(cookie).Tell()
	if err != nil {
		return -1
	}
	return pos
}
