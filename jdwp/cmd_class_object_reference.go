package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

type classObjectRequest struct{ ClassObject ClassObjectID }

func (r classObjectRequest) encode(w *wire.Writer) error { return ObjectID(r.ClassObject).encode(w) }

// ReflectedType returns the reference type reflected by a java.lang.Class
// instance.
func (s *Session) ReflectedType(classObject ClassObjectID) (TaggedReferenceTypeID, error) {
	return sendCommand(s, 17, 1, classObjectRequest{ClassObject: classObject}, readTaggedReferenceTypeID)
}
