package jdwp

import "bytes"

// newByteBuffer returns a fresh in-memory buffer used to encode a command's
// body before it's framed with a length-prefixed header and written to the
// connection as one unit.
func newByteBuffer() *bytes.Buffer { return new(bytes.Buffer) }

// newByteReader wraps an already-read packet body for decoding.
func newByteReader(b []byte) *bytes.Reader { return bytes.NewReader(b) }
