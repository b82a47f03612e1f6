// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ik5/audsrc/chanmap"
	"github.com/ik5/audsrc/pcm"
)

func TestErrUnsupportedFormat_SharedSentinel(t *testing.T) {
	t.Parallel()

	_, err := pcm.Negotiate(44100, 2, 12, pcm.Float)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("pcm error %v does not match ErrUnsupportedFormat", err)
	}

	_, err = chanmap.FromSndfile([]int32{0})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("chanmap error %v does not match ErrUnsupportedFormat", err)
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	for _, sentinel := range []error{ErrBindingNotLoaded, ErrShortBuffer, ErrUnknownBackend} {
		wrapped := fmt.Errorf("sndfile: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is() failed for wrapped %v", sentinel)
		}
		if errors.Is(wrapped, ErrUnsupportedFormat) {
			t.Errorf("%v should not match ErrUnsupportedFormat", sentinel)
		}
	}
}
