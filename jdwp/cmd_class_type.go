package jdwp

import (
	"fmt"

	"github.com/jdwpgo/jdwpgo/jdwp/wire"
)

type superclassRequest struct{ Class ClassID }

func (r superclassRequest) encode(w *wire.Writer) error { return r.Class.encode(w) }

// Superclass returns the immediate superclass of a class, or zero if the
// class is java.lang.Object.
func (s *Session) Superclass(class ClassID) (ClassID, error) {
	return sendCommand(s, 3, 1, superclassRequest{Class: class}, readClassID)
}

type staticFieldValue struct {
	Field FieldID
	Value Untagged
}

type setStaticValuesRequest struct {
	Class  ClassID
	Values []staticFieldValue
}

func (r setStaticValuesRequest) encode(w *wire.Writer) error {
	if err := r.Class.encode(w); err != nil {
		return err
	}
	return wire.WriteSlice(w, r.Values, func(w *wire.Writer, v staticFieldValue) error {
		if err := v.Field.encode(w); err != nil {
			return err
		}
		return v.Value.encode(w)
	})
}

// SetValues sets the value of one or more static fields of class. Access
// control is not enforced and final fields cannot be set.
func (s *Session) SetValues(class ClassID, values map[FieldID]Untagged) (struct{}, error) {
	req := setStaticValuesRequest{Class: class}
	for f, v := range values {
		req.Values = append(req.Values, staticFieldValue{Field: f, Value: v})
	}
	return sendCommand(s, 3, 2, req, decodeUnit)
}

type invokeStaticMethodRequest struct {
	Class     ClassID
	Thread    ThreadID
	Method    MethodID
	Arguments []Value
	Options   InvokeOptions
}

func (r invokeStaticMethodRequest) encode(w *wire.Writer) error {
	if err := r.Class.encode(w); err != nil {
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

// InvokeMethodReply is the outcome of a static, virtual, or interface
// method invocation: either the returned value, or the thrown exception.
type InvokeMethodReply struct {
	Value     *Value
	Exception *TaggedObjectID
}

func decodeInvokeMethodReply(r *wire.Reader) (InvokeMethodReply, error) {
	value, hasValue, err := readOptionalValue(r)
	if err != nil {
		return InvokeMethodReply{}, err
	}
	exception, hasException, err := readOptionalTaggedObjectID(r)
	if err != nil {
		return InvokeMethodReply{}, err
	}
	switch {
	case hasValue && !hasException:
		return InvokeMethodReply{Value: &value}, nil
	case !hasValue && hasException:
		return InvokeMethodReply{Exception: &exception}, nil
	default:
		return InvokeMethodReply{}, fmt.Errorf("jdwp: invoke method reply had both/neither of value and exception")
	}
}

// InvokeStaticMethod invokes a static method of class in thread, which must
// be suspended by an event. See InvokeOptions for controlling whether other
// threads are resumed during the call.
func (s *Session) InvokeStaticMethod(class ClassID, thread ThreadID, method MethodID, args []Value, options InvokeOptions) (InvokeMethodReply, error) {
	req := invokeStaticMethodRequest{Class: class, Thread: thread, Method: method, Arguments: args, Options: options}
	return sendCommand(s, 3, 3, req, decodeInvokeMethodReply)
}

type newInstanceRequest struct {
	Class     ClassID
	Thread    ThreadID
	Method    MethodID
	Arguments []Value
	Options   InvokeOptions
}

func (r newInstanceRequest) encode(w *wire.Writer) error {
	if err := r.Class.encode(w); err != nil {
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

// NewInstanceReply is the outcome of a constructor invocation: either the
// newly created object, or the thrown exception.
type NewInstanceReply struct {
	NewObject *TaggedObjectID
	Exception *TaggedObjectID
}

func decodeNewInstanceReply(r *wire.Reader) (NewInstanceReply, error) {
	newObject, hasNewObject, err := readOptionalTaggedObjectID(r)
	if err != nil {
		return NewInstanceReply{}, err
	}
	exception, hasException, err := readOptionalTaggedObjectID(r)
	if err != nil {
		return NewInstanceReply{}, err
	}
	switch {
	case hasNewObject && !hasException:
		return NewInstanceReply{NewObject: &newObject}, nil
	case !hasNewObject && hasException:
		return NewInstanceReply{Exception: &exception}, nil
	default:
		return NewInstanceReply{}, fmt.Errorf("jdwp: new instance reply had both/neither of new object and exception")
	}
}

// NewInstance invokes class's constructor method in thread, which must be
// suspended by an event, and returns the newly constructed object or the
// exception the constructor threw.
func (s *Session) NewInstance(class ClassID, thread ThreadID, method MethodID, args []Value, options InvokeOptions) (NewInstanceReply, error) {
	req := newInstanceRequest{Class: class, Thread: thread, Method: method, Arguments: args, Options: options}
	return sendCommand(s, 3, 4, req, decodeNewInstanceReply)
}
