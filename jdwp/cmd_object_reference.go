package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

type objectRequest struct{ Object ObjectID }

func (r objectRequest) encode(w *wire.Writer) error { return r.Object.encode(w) }

// ObjectReferenceType returns the runtime type of object: a class or an
// array.
func (s *Session) ObjectReferenceType(object ObjectID) (TaggedReferenceTypeID, error) {
	return sendCommand(s, 9, 1, objectRequest{Object: object}, readTaggedReferenceTypeID)
}

type getInstanceValuesRequest struct {
	Object ObjectID
	Fields []FieldID
}

func (r getInstanceValuesRequest) encode(w *wire.Writer) error {
	if err := r.Object.encode(w); err != nil {
		return err
	}
	return wire.WriteSlice(w, r.Fields, func(w *wire.Writer, f FieldID) error { return f.encode(w) })
}

// ObjectGetValues returns the value of one or more instance fields of
// object, in request order. Access control is not enforced.
func (s *Session) ObjectGetValues(object ObjectID, fields []FieldID) ([]Value, error) {
	req := getInstanceValuesRequest{Object: object, Fields: fields}
	return sendCommand(s, 9, 2, req, func(r *wire.Reader) ([]Value, error) { return wire.ReadSlice(r, readValue) })
}

type setInstanceValuesRequest struct {
	Object ObjectID
	Fields []staticFieldValue
}

func (r setInstanceValuesRequest) encode(w *wire.Writer) error {
	if err := r.Object.encode(w); err != nil {
		return err
	}
	return wire.WriteSlice(w, r.Fields, func(w *wire.Writer, v staticFieldValue) error {
		if err := v.Field.encode(w); err != nil {
			return err
		}
		return v.Value.encode(w)
	})
}

// ObjectSetValues sets the value of one or more instance fields of object.
// Access control is not enforced and, for object values, the field's type
// must already be loaded.
func (s *Session) ObjectSetValues(object ObjectID, values map[FieldID]Untagged) (struct{}, error) {
	req := setInstanceValuesRequest{Object: object}
	for f, v := range values {
		req.Fields = append(req.Fields, staticFieldValue{Field: f, Value: v})
	}
	return sendCommand(s, 9, 3, req, decodeUnit)
}

// MonitorInfoReply describes an object's monitor state. Owner is zero if
// the monitor is not currently owned.
type MonitorInfoReply struct {
	Owner      ThreadID
	EntryCount int32
	Waiters    []ThreadID
}

func decodeMonitorInfoReply(r *wire.Reader) (MonitorInfoReply, error) {
	var rep MonitorInfoReply
	owner, err := readThreadID(r)
	if err != nil {
		return rep, err
	}
	rep.Owner = owner
	if rep.EntryCount, err = r.ReadI32(); err != nil {
		return rep, err
	}
	rep.Waiters, err = wire.ReadSlice(r, readThreadID)
	return rep, err
}

// MonitorInfo returns monitor information for object. All threads in the
// target VM must be suspended. Requires the CanGetMonitorInfo capability.
func (s *Session) MonitorInfo(object ObjectID) (MonitorInfoReply, error) {
	return sendCommand(s, 9, 5, objectRequest{Object: object}, decodeMonitorInfoReply)
}

// MethodRef pairs a declaring class with a method, as required by
// ObjectReference.InvokeMethod to disambiguate overridden methods.
type MethodRef struct {
	Class  ClassID
	Method MethodID
}

func (m MethodRef) encode(w *wire.Writer) error {
	if err := m.Class.encode(w); err != nil {
		return err
	}
	return m.Method.encode(w)
}

type invokeInstanceMethodRequest struct {
	Object    ObjectID
	Thread    ThreadID
	Method    MethodRef
	Arguments []Value
	Options   InvokeOptions
}

func (r invokeInstanceMethodRequest) encode(w *wire.Writer) error {
	if err := r.Object.encode(w); err != nil {
		return err
	}
	if err := r.Thread.encode(w); err != nil {
		return err
	}
	if err := r.Method.encode(w); err != nil {
		return err
	}
	if err := wire.WriteSlice(w, r.Arguments, func(w *wire.Writer, v Value) error { return v.encode(w) }); err != nil {
		return err
	}
	return w.WriteU32(uint32(r.Options))
}

// InvokeInstanceMethod invokes an instance method of object in thread,
// which must be suspended by an event. Access control is not enforced.
func (s *Session) InvokeInstanceMethod(object ObjectID, thread ThreadID, method MethodRef, args []Value, options InvokeOptions) (InvokeMethodReply, error) {
	req := invokeInstanceMethodRequest{Object: object, Thread: thread, Method: method, Arguments: args, Options: options}
	return sendCommand(s, 9, 6, req, decodeInvokeMethodReply)
}

// DisableCollection prevents garbage collection of object until
// EnableCollection is called.
func (s *Session) DisableCollection(object ObjectID) (struct{}, error) {
	return sendCommand(s, 9, 7, objectRequest{Object: object}, decodeUnit)
}

// EnableCollection permits garbage collection of object once again.
func (s *Session) EnableCollection(object ObjectID) (struct{}, error) {
	return sendCommand(s, 9, 8, objectRequest{Object: object}, decodeUnit)
}

// IsCollected reports whether object has been garbage collected.
func (s *Session) IsCollected(object ObjectID) (bool, error) {
	return sendCommand(s, 9, 9, objectRequest{Object: object}, (*wire.Reader).ReadBool)
}

type referringObjectsRequest struct {
	Object       ObjectID
	MaxReferrers uint32
}

func (r referringObjectsRequest) encode(w *wire.Writer) error {
	if err := r.Object.encode(w); err != nil {
		return err
	}
	return w.WriteU32(r.MaxReferrers)
}

// ReferringObjects returns objects that directly reference object, up to
// maxReferrers of them (0 means all). Only objects reachable for garbage
// collection purposes are reported. Since JDWP version 1.6, requires the
// CanGetInstanceInfo capability.
func (s *Session) ReferringObjects(object ObjectID, maxReferrers uint32) ([]TaggedObjectID, error) {
	req := referringObjectsRequest{Object: object, MaxReferrers: maxReferrers}
	return sendCommand(s, 9, 10, req, func(r *wire.Reader) ([]TaggedObjectID, error) {
		return wire.ReadSlice(r, readTaggedObjectID)
	})
}
