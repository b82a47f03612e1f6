// SPDX-License-Identifier: EPL-2.0

package tags

import "io"

// readChunk reads a chunk body of the declared size. The buffer grows with
// the data actually present, so a corrupt size cannot force a large
// allocation up front.
func readChunk(r io.Reader, size int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, size))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) < size {
		return nil, io.ErrUnexpectedEOF
	}

	return body, nil
}
