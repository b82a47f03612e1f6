// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"

	"github.com/ik5/audsrc/audio"
)

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth indicates a sample size other than 16, 24 or 32
	ErrUnsupportedBitDepth = fmt.Errorf("%w: AIFF bit depth", audio.ErrUnsupportedFormat)

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout
	ErrUnsupportedAiffLayout = fmt.Errorf("%w: AIFF layout", audio.ErrUnsupportedFormat)
)
