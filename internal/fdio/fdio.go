// SPDX-License-Identifier: EPL-2.0

//go:build unix

// Package fdio performs positioned I/O directly on a file descriptor. It
// backs the virtual I/O callbacks handed to runtime-loaded decoders, which
// only ever see the descriptor number.
package fdio

import (
	"errors"
	"io"

	"golang.org/x/sys/unix"
)

// FD is an open file descriptor. It implements io.ReadSeeker and
// io.ReaderAt without taking ownership of the descriptor.
type FD int

// Size returns the current length of the file.
func (fd FD) Size() (int64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(fd), &st); err != nil {
		return 0, err
	}

	return st.Size, nil
}

func (fd FD) Seek(offset int64, whence int) (int64, error) {
	return unix.Seek(int(fd), offset, whence)
}

// Tell returns the current file offset.
func (fd FD) Tell() (int64, error) {
	return unix.Seek(int(fd), 0, io.SeekCurrent)
}

// Read reads up to len(p) bytes, restarting on EINTR. It returns io.EOF
// when nothing is left.
func (fd FD) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for {
		n, err := unix.Read(int(fd), p)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}

		return n, nil
	}
}

// ReadAt reads len(p) bytes at off without moving the file offset.
func (fd FD) ReadAt(p []byte, off int64) (int, error) {
	total := 0
	for total < len(p) {
		n, err := unix.Pread(int(fd), p[total:], off+int64(total))
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.EOF
		}
		total += n
	}

	return total, nil
}

// ReadFull fills p, stopping early only at end of file. It returns the
// number of bytes read.
func (fd FD) ReadFull(p []byte) (int, error) {
	n, err := io.ReadFull(fd, p)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return n, nil
	}

	return n, err
}

// Unread moves the offset back by one byte and returns the byte now under
// it.
func (fd FD) Unread() (byte, error) {
	pos, err := unix.Seek(int(fd), -1, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	var b [1]byte
	if _, err := fd.ReadAt(b[:], pos); err != nil {
		return 0, err
	}

	return b[0], nil
}
