// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"

	"github.com/ik5/audsrc/audio"
)

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = fmt.Errorf("%w: WAV layout", audio.ErrUnsupportedFormat)
	ErrUnsupportedBitDepth  = errors.New("bits per sample must be 8, 16, 24 or 32")
)
