package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

type stringValueRequest struct{ StringObject StringID }

func (r stringValueRequest) encode(w *wire.Writer) error { return r.StringObject.encode(w) }

// StringValue returns the characters contained in a mirrored java.lang.String.
func (s *Session) StringValue(stringObject StringID) (string, error) {
	return sendCommand(s, 10, 1, stringValueRequest{StringObject: stringObject}, (*wire.Reader).ReadString)
}
