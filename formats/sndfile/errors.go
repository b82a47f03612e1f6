// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"errors"
	"fmt"

	"github.com/ik5/audsrc/audio"
)

var (
	// ErrOpen is returned when libsndfile refuses the file.
	ErrOpen = errors.New("sndfile: cannot open")

	// ErrSeek is returned when sf_seek fails.
	ErrSeek = errors.New("sndfile: sf_seek failed")

	// ErrUnsupportedSubtype is returned for encodings with no interchange
	// packing.
	ErrUnsupportedSubtype = fmt.Errorf("%w: sndfile subtype", audio.ErrUnsupportedFormat)
)
