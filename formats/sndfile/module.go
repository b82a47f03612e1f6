// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsrc/internal/dl"
)

// Module is a loaded libsndfile. A Module whose Loaded reports false is
// inert and every Open against it fails with audio.ErrBindingNotLoaded.
// A loaded Module is read-only and may be shared between goroutines.
type Module struct {
	lib    *dl.Library
	path   string
	err    error
	loaded bool
	vio    *virtualIO

	versionString func() string
	openVirtual   func(vio *virtualIO, mode int32, info *sfInfo, cookie uintptr) uintptr
	close         func(sf uintptr) int32
	strerror      func(sf uintptr) string
	command       func(sf uintptr, cmd int32, data unsafe.Pointer, size int32) int32
	seek          func(sf uintptr, frames int64, whence int32) int64
	readfInt      func(sf uintptr, ptr unsafe.Pointer, frames int64) int64
	readfFloat    func(sf uintptr, ptr unsafe.Pointer, frames int64) int64
	readfDouble   func(sf uintptr, ptr unsafe.Pointer, frames int64) int64
}

func (m *Module) symbols() []dl.Symbol {
	return []dl.Symbol{
		{Name: "sf_version_string", Fn: &m.versionString},
		{Name: "sf_open_virtual", Fn: &m.openVirtual},
		{Name: "sf_close", Fn: &m.close},
		{Name: "sf_strerror", Fn: &m.strerror},
		{Name: "sf_command", Fn: &m.command},
		{Name: "sf_seek", Fn: &m.seek},
		{Name: "sf_readf_int", Fn: &m.readfInt},
		{Name: "sf_readf_float", Fn: &m.readfFloat},
		{Name: "sf_readf_double", Fn: &m.readfDouble},
	}
}

// Load binds libsndfile from path. It never fails outright: check Loaded,
// and Err for the reason a module is inert.
func Load(path string) *Module {
	m := &Module{path: path}
	log := logrus.WithFields(logrus.Fields{"backend": "sndfile", "library": path})

	lib, err := dl.Bind(path, m.symbols())
	if err != nil {
		m.err = err
		log.WithError(err).Debug("library not loaded")
		return m
	}

	m.lib = lib
	m.vio = sharedVirtualIO()
	m.loaded = true
	log.WithField("version", m.versionString()).Debug("library loaded")

	return m
}

// Loaded reports whether every entry point was resolved.
func (m *Module) Loaded() bool { return m != nil && m.loaded }

// Err explains why the module is not loaded.
func (m *Module) Err() error { return m.err }

// Path is the library path given to Load.
func (m *Module) Path() string { return m.path }

// Version returns the libsndfile version string, or "" when not loaded.
func (m *Module) Version() string {
	if !m.Loaded() {
		return ""
	}
	return m.versionString()
}

// Close unloads the library. Sources opened from m must be closed first.
func (m *Module) Close() error {
	if m == nil || m.lib == nil {
		return nil
	}

	m.loaded = false
	return m.lib.Close()
}
