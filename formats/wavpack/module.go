// SPDX-License-Identifier: EPL-2.0

package wavpack

import (
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsrc/internal/dl"
)

const (
	openWVC       = 0x1
	openTags      = 0x2
	openNormalize = 0x10

	modeFloat = 0x8

	unknownSamples = 0xFFFFFFFF
)

// streamReader mirrors WavpackStreamReader. WriteBytes stays zero.
type streamReader struct {
	ReadBytes    uintptr
	GetPos       uintptr
	SetPosAbs    uintptr
	SetPosRel    uintptr
	PushBackByte uintptr
	GetLength    uintptr
	CanSeek      uintptr
	WriteBytes   uintptr
}

// Module is a loaded libwavpack. Like sndfile.Module it is either fully
// bound or inert, and read-only once Load returns.
type Module struct {
	lib    *dl.Library
	path   string
	err    error
	loaded bool
	reader *streamReader

	versionString      func() string
	openFileInputEx    func(reader *streamReader, wvID, wvcID uintptr, errBuf *byte, flags, normOffset int32) uintptr
	closeFile          func(wpc uintptr) uintptr
	getBitsPerSample   func(wpc uintptr) int32
	getChannelMask     func(wpc uintptr) int32
	getMode            func(wpc uintptr) int32
	getNumChannels     func(wpc uintptr) int32
	getNumSamples      func(wpc uintptr) uint32
	getNumTagItems     func(wpc uintptr) int32
	getSampleIndex     func(wpc uintptr) uint32
	getSampleRate      func(wpc uintptr) uint32
	getTagItem         func(wpc uintptr, item string, value *byte, size int32) int32
	getTagItemIndexed  func(wpc uintptr, index int32, item *byte, size int32) int32
	getWrapperLocation func(firstBlock unsafe.Pointer, size *uint32) unsafe.Pointer
	seekSample         func(wpc uintptr, sample uint32) int32
	unpackSamples      func(wpc uintptr, buffer unsafe.Pointer, samples uint32) uint32
}

func (m *Module) symbols() []dl.Symbol {
	return []dl.Symbol{
		{Name: "WavpackGetLibraryVersionString", Fn: &m.versionString},
		{Name: "WavpackOpenFileInputEx", Fn: &m.openFileInputEx},
		{Name: "WavpackCloseFile", Fn: &m.closeFile},
		{Name: "WavpackGetBitsPerSample", Fn: &m.getBitsPerSample},
		{Name: "WavpackGetChannelMask", Fn: &m.getChannelMask},
		{Name: "WavpackGetMode", Fn: &m.getMode},
		{Name: "WavpackGetNumChannels", Fn: &m.getNumChannels},
		{Name: "WavpackGetNumSamples", Fn: &m.getNumSamples},
		{Name: "WavpackGetNumTagItems", Fn: &m.getNumTagItems},
		{Name: "WavpackGetSampleIndex", Fn: &m.getSampleIndex},
		{Name: "WavpackGetSampleRate", Fn: &m.getSampleRate},
		{Name: "WavpackGetTagItem", Fn: &m.getTagItem},
		{Name: "WavpackGetTagItemIndexed", Fn: &m.getTagItemIndexed},
		{Name: "WavpackGetWrapperLocation", Fn: &m.getWrapperLocation},
		{Name: "WavpackSeekSample", Fn: &m.seekSample},
		{Name: "WavpackUnpackSamples", Fn: &m.unpackSamples},
	}
}

// Load binds libwavpack from path. Check Loaded before opening sources.
func Load(path string) *Module {
	m := &Module{path: path}
	log := logrus.WithFields(logrus.Fields{"backend": "wavpack", "library": path})

	lib, err := dl.Bind(path, m.symbols())
	if err != nil {
		m.err = err
		log.WithError(err).Debug("library not loaded")
		return m
	}

	m.lib = lib
	m.reader = sharedStreamReader()
	m.loaded = true
	log.WithField("version", m.versionString()).Debug("library loaded")

	return m
}

func (m *Module) Loaded() bool { return m != nil && m.loaded }
func (m *Module) Err() error   { return m.err }
func (m *Module) Path() string { return m.path }

// Version returns the library version, or "" when not loaded.
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
