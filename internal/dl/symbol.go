// SPDX-License-Identifier: EPL-2.0

// Package dl binds C entry points of runtime-loaded libraries to Go
// function variables, all at once or not at all.
package dl

// Symbol pairs an exported C name with a pointer to the Go function
// variable that should call it.
type Symbol struct {
	Name string
	Fn   any
}
