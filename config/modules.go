// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"

	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/formats/aiff"
	"github.com/ik5/audsrc/formats/flac"
	"github.com/ik5/audsrc/formats/mp3"
	"github.com/ik5/audsrc/formats/sndfile"
	"github.com/ik5/audsrc/formats/vorbis"
	"github.com/ik5/audsrc/formats/wav"
	"github.com/ik5/audsrc/formats/wavpack"
)

// Modules are the runtime-loaded backends. Either may be inert.
type Modules struct {
	Sndfile *sndfile.Module
	Wavpack *wavpack.Module
}

// LoadModules loads both libraries. It never fails: check Loaded on each.
func (c *Config) LoadModules() Modules {
	return Modules{
		Sndfile: sndfile.Load(c.Libraries.Sndfile),
		Wavpack: wavpack.Load(c.Libraries.Wavpack),
	}
}

func (m Modules) Close() error {
	return errors.Join(m.Sndfile.Close(), m.Wavpack.Close())
}

// Registry registers every backend under its name. Backends bound to an
// inert module stay registered and fail with audio.ErrBindingNotLoaded.
func (m Modules) Registry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("aiff", aiff.Decoder{})
	r.Register("flac", flac.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("vorbis", vorbis.Decoder{})
	r.Register("wav", wav.Decoder{})

	r.Register("sndfile", audio.OpenerFunc(func(path string) (audio.Reader, error) {
		src, err := sndfile.Open(m.Sndfile, path)
		if err != nil {
			return nil, err
		}
		return src, nil
	}))
	r.Register("wavpack", audio.OpenerFunc(func(path string) (audio.Reader, error) {
		src, err := wavpack.Open(m.Wavpack, path)
		if err != nil {
			return nil, err
		}
		return src, nil
	}))

	return r
}
