// SPDX-License-Identifier: EPL-2.0

//go:build !(darwin || linux)

package dl

import "fmt"

type Library struct {
	path string
}

func Open(path string) (*Library, error) {
	return nil, fmt.Errorf("%w: %s: %w", ErrOpen, path, ErrUnsupportedPlatform)
}

func (l *Library) Path() string { return l.path }

func (l *Library) Lookup(name string) (uintptr, error) {
	return 0, fmt.Errorf("%w: %s", ErrMissingSymbol, name)
}

func (l *Library) Close() error { return nil }

func Bind(path string, _ []Symbol) (*Library, error) {
	return Open(path)
}
