package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

type classLoaderRequest struct{ ClassLoader ClassLoaderID }

func (r classLoaderRequest) encode(w *wire.Writer) error { return ObjectID(r.ClassLoader).encode(w) }

// VisibleClasses returns every reference type classLoader has been asked
// to load, including types it delegated to another loader. No ordering is
// guaranteed and each type name occurs at most once.
func (s *Session) VisibleClasses(classLoader ClassLoaderID) ([]TaggedReferenceTypeID, error) {
	return sendCommand(s, 14, 1, classLoaderRequest{ClassLoader: classLoader}, func(r *wire.Reader) ([]TaggedReferenceTypeID, error) {
		return wire.ReadSlice(r, readTaggedReferenceTypeID)
	})
}
