// SPDX-License-Identifier: EPL-2.0

//go:build darwin || linux

package dl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Library is a shared library loaded at runtime.
type Library struct {
	handle uintptr
	path   string
}

// Open loads the library at path with symbols resolved immediately.
func Open(path string) (*Library, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpen, path, err)
	}

	return &Library{handle: h, path: path}, nil
}

// Path returns the path the library was opened with.
func (l *Library) Path() string { return l.path }

// Lookup returns the address of name.
func (l *Library) Lookup(name string) (uintptr, error) {
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil || addr == 0 {
		return 0, fmt.Errorf("%w: %s in %s", ErrMissingSymbol, name, l.path)
	}

	return addr, nil
}

// Close unloads the library. Functions registered from it must not be
// called afterwards.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}

	err := purego.Dlclose(l.handle)
	l.handle = 0

	return err
}

// Bind opens path and registers every symbol into its function variable.
// Every address is resolved before anything is registered, so on error no
// variable in syms has been touched and the library is closed again.
func Bind(path string, syms []Symbol) (*Library, error) {
	lib, err := Open(path)
	if err != nil {
		return nil, err
	}

	addrs := make([]uintptr, len(syms))
	for i, s := range syms {
		addr, err := lib.Lookup(s.Name)
		if err != nil {
			_ = lib.Close()
			return nil, err
		}
		addrs[i] = addr
	}

	for i, s := range syms {
		purego.RegisterFunc(s.Fn, addrs[i])
	}

	return lib, nil
}
