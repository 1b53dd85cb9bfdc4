package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

// FieldID, MethodID, ObjectID, ReferenceTypeID and FrameID are the five
// negotiated-width identifier kinds. Each travels over the wire as
// big-endian bytes whose width was fixed once per connection by the
// VirtualMachine IDSizes command. A zero value means "null" wherever the
// protocol allows an optional identifier.

type FieldID uint64

func (id FieldID) encode(w *wire.Writer) error { return w.WriteID(w.IDSizes.FieldIDSize, uint64(id)) }

func readFieldID(r *wire.Reader) (FieldID, error) {
	v, err := r.ReadID(r.IDSizes.FieldIDSize)
	return FieldID(v), err
}

type MethodID uint64

func (id MethodID) encode(w *wire.Writer) error { return w.WriteID(w.IDSizes.MethodIDSize, uint64(id)) }

func readMethodID(r *wire.Reader) (MethodID, error) {
	v, err := r.ReadID(r.IDSizes.MethodIDSize)
	return MethodID(v), err
}

type ObjectID uint64

func (id ObjectID) encode(w *wire.Writer) error { return w.WriteID(w.IDSizes.ObjectIDSize, uint64(id)) }

func readObjectID(r *wire.Reader) (ObjectID, error) {
	v, err := r.ReadID(r.IDSizes.ObjectIDSize)
	return ObjectID(v), err
}

type ReferenceTypeID uint64

func (id ReferenceTypeID) encode(w *wire.Writer) error {
	return w.WriteID(w.IDSizes.ReferenceTypeIDSize, uint64(id))
}

func readReferenceTypeID(r *wire.Reader) (ReferenceTypeID, error) {
	v, err := r.ReadID(r.IDSizes.ReferenceTypeIDSize)
	return ReferenceTypeID(v), err
}

type FrameID uint64

func (id FrameID) encode(w *wire.Writer) error { return w.WriteID(w.IDSizes.FrameIDSize, uint64(id)) }

func readFrameID(r *wire.Reader) (FrameID, error) {
	v, err := r.ReadID(r.IDSizes.FrameIDSize)
	return FrameID(v), err
}

// ThreadID, ThreadGroupID, StringID, ClassLoaderID, ClassObjectID and
// ArrayID share ObjectID's width and wire representation; they exist as
// distinct Go types purely so a field can't accept the wrong kind of
// object reference at compile time.
type (
	ThreadID      uint64
	ThreadGroupID uint64
	StringID      uint64
	ClassLoaderID uint64
	ClassObjectID uint64
	ArrayID       uint64
)

func (id ThreadID) encode(w *wire.Writer) error      { return ObjectID(id).encode(w) }
func (id ThreadGroupID) encode(w *wire.Writer) error { return ObjectID(id).encode(w) }
func (id StringID) encode(w *wire.Writer) error      { return ObjectID(id).encode(w) }
func (id ClassLoaderID) encode(w *wire.Writer) error { return ObjectID(id).encode(w) }
func (id ClassObjectID) encode(w *wire.Writer) error { return ObjectID(id).encode(w) }
func (id ArrayID) encode(w *wire.Writer) error       { return ObjectID(id).encode(w) }

func readThreadID(r *wire.Reader) (ThreadID, error) {
	v, err := readObjectID(r)
	return ThreadID(v), err
}

func readThreadGroupID(r *wire.Reader) (ThreadGroupID, error) {
	v, err := readObjectID(r)
	return ThreadGroupID(v), err
}

func readStringID(r *wire.Reader) (StringID, error) {
	v, err := readObjectID(r)
	return StringID(v), err
}

func readClassLoaderID(r *wire.Reader) (ClassLoaderID, error) {
	v, err := readObjectID(r)
	return ClassLoaderID(v), err
}

func readClassObjectID(r *wire.Reader) (ClassObjectID, error) {
	v, err := readObjectID(r)
	return ClassObjectID(v), err
}

func readArrayID(r *wire.Reader) (ArrayID, error) {
	v, err := readObjectID(r)
	return ArrayID(v), err
}

// ClassID, InterfaceID and ArrayTypeID share ReferenceTypeID's width and
// wire representation, distinguished only at the Go type level.
type (
	ClassID     uint64
	InterfaceID uint64
	ArrayTypeID uint64
)

func (id ClassID) encode(w *wire.Writer) error     { return ReferenceTypeID(id).encode(w) }
func (id InterfaceID) encode(w *wire.Writer) error { return ReferenceTypeID(id).encode(w) }
func (id ArrayTypeID) encode(w *wire.Writer) error  { return ReferenceTypeID(id).encode(w) }

func readClassID(r *wire.Reader) (ClassID, error) {
	v, err := readReferenceTypeID(r)
	return ClassID(v), err
}

func readInterfaceID(r *wire.Reader) (InterfaceID, error) {
	v, err := readReferenceTypeID(r)
	return InterfaceID(v), err
}

func readArrayTypeID(r *wire.Reader) (ArrayTypeID, error) {
	v, err := readReferenceTypeID(r)
	return ArrayTypeID(v), err
}

// RequestID identifies an event request created by EventRequest.Set, used
// to refer back to it in EventRequest.Clear and in Composite events.
type RequestID int32

func (id RequestID) encode(w *wire.Writer) error { return w.WriteI32(int32(id)) }

func readRequestID(r *wire.Reader) (RequestID, error) {
	v, err := r.ReadI32()
	return RequestID(v), err
}
