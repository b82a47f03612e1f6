// SPDX-License-Identifier: EPL-2.0

//go:build !(darwin || linux)

package wavpack

func sharedStreamReader() *streamReader { return nil }
