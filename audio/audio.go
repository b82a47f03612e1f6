// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ik5/audsrc/chanmap"
	"github.com/ik5/audsrc/pcm"
	"github.com/ik5/audsrc/tags"
)

// Source is what every backend adapter exposes once it has been opened.
type Source interface {
	// Format of the samples written by ReadSamples. Never changes.
	Format() pcm.Format
	// ChannelMap of the interleaved channels, nil when the backend did not
	// report one.
	ChannelMap() chanmap.Map
	// Length of the stream in frames, -1 when unknown.
	Length() int64
	// Close releases the decoder and the file.
	Close() error
}

// Reader is a Source that delivers interleaved frames.
type Reader interface {
	Source
	// ReadSamples writes up to frames whole frames into dst and returns how
	// many were written. It returns fewer than asked only at the end of the
	// stream, and (0, io.EOF) once the stream is exhausted. dst must hold
	// frames*Format().BytesPerFrame() bytes.
	ReadSamples(dst []byte, frames int) (int, error)
}

// Seeker is a Reader with frame-accurate positioning.
type Seeker interface {
	Reader
	SeekTo(frame int64) error
	Position() (int64, error)
}

// Tagged is implemented by sources that carry metadata. Both values are
// computed when the source is opened.
type Tagged interface {
	Tags() tags.Map
	Chapters() []tags.Chapter
}

// Opener opens a file with one particular backend.
type Opener interface {
	Open(path string) (Reader, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(path string) (Reader, error)

func (f OpenerFunc) Open(path string) (Reader, error) { return f(path) }

// Registry of openers by backend name (e.g. "flac", "sndfile", "wavpack").
// It does not guess: callers pick the backend.
type Registry struct {
	openers map[string]Opener

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		openers: make(map[string]Opener),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(name string, o Opener) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.openers[name] = o
}

func (r *Registry) Get(name string) (Opener, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	o, ok := r.openers[name]
	return o, ok
}

// Names returns the registered backend names, sorted.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.openers))
	for n := range r.openers {
		names = append(names, n)
	}
	slices.Sort(names)

	return names
}

// Open opens path with the backend registered under name.
func (r *Registry) Open(name, path string) (Reader, error) {
	o, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, name)
	}

	return o.Open(path)
}
