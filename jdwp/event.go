package jdwp

import (
	"fmt"

	"github.com/jdwpgo/jdwpgo/jdwp/wire"
)

// WatchedField identifies the field a FieldAccess/FieldModification event
// fired on: its declaring type, the field itself, and the object instance
// it was accessed through (absent for a static field).
type WatchedField struct {
	DeclaringType TaggedReferenceTypeID
	Field         FieldID
	Object        TaggedObjectID
	HasObject     bool
}

func readWatchedField(r *wire.Reader) (WatchedField, error) {
	dt, err := readTaggedReferenceTypeID(r)
	if err != nil {
		return WatchedField{}, err
	}
	f, err := readFieldID(r)
	if err != nil {
		return WatchedField{}, err
	}
	obj, present, err := readOptionalTaggedObjectID(r)
	if err != nil {
		return WatchedField{}, err
	}
	return WatchedField{DeclaringType: dt, Field: f, Object: obj, HasObject: present}, nil
}

// Event is a single occurrence reported inside a Composite event. Exactly
// one Kind-specific set of fields is populated, mirroring the Kind tag
// that discriminates it on the wire.
type Event struct {
	Kind    EventKind
	Request RequestID
	// HasRequest is false for the automatically-generated VmStart/VmDeath
	// events, whose request_id field is Option<RequestID> and carries the
	// four-byte value 0.
	HasRequest bool

	Thread   ThreadID
	Location Location

	// Exception: the location at which the exception was caught, absent if
	// it propagated uncaught.
	CatchLocation    Location
	HasCatchLocation bool

	// MonitorContendedEnter/Entered/Wait/Waited.
	Monitor TaggedObjectID
	Timeout uint64
	TimedOut bool

	// Exception carries the thrown object.
	Exception TaggedObjectID

	// MethodExitWithReturnValue and FieldModification.
	Value Value

	// ClassPrepare/ClassUnload.
	Type      TaggedReferenceTypeID
	Signature string
	Status    ClassStatus

	// FieldAccess/FieldModification.
	Field WatchedField

	// VmStart's initial thread reuses Thread above.
}

func readEvent(r *wire.Reader) (Event, error) {
	kindByte, err := r.ReadU8()
	if err != nil {
		return Event{}, err
	}
	kind := EventKind(kindByte)
	e := Event{Kind: kind}

	readRequest := func() error {
		rid, err := readRequestID(r)
		if err != nil {
			return err
		}
		e.Request = rid
		e.HasRequest = true
		return nil
	}
	readOptionalRequest := func() error {
		rid, err := readRequestID(r)
		if err != nil {
			return err
		}
		if rid != 0 {
			e.Request = rid
			e.HasRequest = true
		}
		return nil
	}
	readThread := func() error {
		t, err := readThreadID(r)
		if err != nil {
			return err
		}
		e.Thread = t
		return nil
	}
	readLoc := func() error {
		loc, err := readLocation(r)
		if err != nil {
			return err
		}
		e.Location = loc
		return nil
	}

	switch kind {
	case EventSingleStep, EventBreakpoint, EventMethodEntry, EventMethodExit:
		if err := readRequest(); err != nil {
			return Event{}, err
		}
		if err := readThread(); err != nil {
			return Event{}, err
		}
		if err := readLoc(); err != nil {
			return Event{}, err
		}
	case EventMethodExitWithReturnValue:
		if err := readRequest(); err != nil {
			return Event{}, err
		}
		if err := readThread(); err != nil {
			return Event{}, err
		}
		if err := readLoc(); err != nil {
			return Event{}, err
		}
		v, err := readValue(r)
		if err != nil {
			return Event{}, err
		}
		e.Value = v
	case EventMonitorContendedEnter, EventMonitorContendedEntered:
		if err := readRequest(); err != nil {
			return Event{}, err
		}
		if err := readThread(); err != nil {
			return Event{}, err
		}
		mon, err := readTaggedObjectID(r)
		if err != nil {
			return Event{}, err
		}
		e.Monitor = mon
		if err := readLoc(); err != nil {
			return Event{}, err
		}
	case EventMonitorWait:
		if err := readRequest(); err != nil {
			return Event{}, err
		}
		if err := readThread(); err != nil {
			return Event{}, err
		}
		mon, err := readTaggedObjectID(r)
		if err != nil {
			return Event{}, err
		}
		e.Monitor = mon
		if err := readLoc(); err != nil {
			return Event{}, err
		}
		ms, err := r.ReadU64()
		if err != nil {
			return Event{}, err
		}
		e.Timeout = ms
	case EventMonitorWaited:
		if err := readRequest(); err != nil {
			return Event{}, err
		}
		if err := readThread(); err != nil {
			return Event{}, err
		}
		mon, err := readTaggedObjectID(r)
		if err != nil {
			return Event{}, err
		}
		e.Monitor = mon
		if err := readLoc(); err != nil {
			return Event{}, err
		}
		timedOut, err := r.ReadBool()
		if err != nil {
			return Event{}, err
		}
		e.TimedOut = timedOut
	case EventException:
		if err := readRequest(); err != nil {
			return Event{}, err
		}
		if err := readThread(); err != nil {
			return Event{}, err
		}
		if err := readLoc(); err != nil {
			return Event{}, err
		}
		exc, err := readTaggedObjectID(r)
		if err != nil {
			return Event{}, err
		}
		e.Exception = exc
		catch, present, err := readOptionalLocation(r)
		if err != nil {
			return Event{}, err
		}
		e.CatchLocation = catch
		e.HasCatchLocation = present
	case EventThreadStart, EventThreadDeath:
		if err := readRequest(); err != nil {
			return Event{}, err
		}
		if err := readThread(); err != nil {
			return Event{}, err
		}
	case EventClassPrepare:
		if err := readRequest(); err != nil {
			return Event{}, err
		}
		if err := readThread(); err != nil {
			return Event{}, err
		}
		typ, err := readTaggedReferenceTypeID(r)
		if err != nil {
			return Event{}, err
		}
		e.Type = typ
		sig, err := r.ReadString()
		if err != nil {
			return Event{}, err
		}
		e.Signature = sig
		status, err := r.ReadU32()
		if err != nil {
			return Event{}, err
		}
		e.Status = ClassStatus(status)
	case EventClassUnload:
		if err := readRequest(); err != nil {
			return Event{}, err
		}
		sig, err := r.ReadString()
		if err != nil {
			return Event{}, err
		}
		e.Signature = sig
	case EventFieldAccess:
		if err := readRequest(); err != nil {
			return Event{}, err
		}
		if err := readThread(); err != nil {
			return Event{}, err
		}
		if err := readLoc(); err != nil {
			return Event{}, err
		}
		f, err := readWatchedField(r)
		if err != nil {
			return Event{}, err
		}
		e.Field = f
	case EventFieldModification:
		if err := readRequest(); err != nil {
			return Event{}, err
		}
		if err := readThread(); err != nil {
			return Event{}, err
		}
		if err := readLoc(); err != nil {
			return Event{}, err
		}
		f, err := readWatchedField(r)
		if err != nil {
			return Event{}, err
		}
		e.Field = f
		v, err := readValue(r)
		if err != nil {
			return Event{}, err
		}
		e.Value = v
	case EventVMStart:
		if err := readOptionalRequest(); err != nil {
			return Event{}, err
		}
		if err := readThread(); err != nil {
			return Event{}, err
		}
	case EventVMDeath:
		if err := readOptionalRequest(); err != nil {
			return Event{}, err
		}
	default:
		return Event{}, fmt.Errorf("jdwp: unknown event kind %#x", kindByte)
	}
	return e, nil
}

// Composite is the single asynchronous packet kind the host sends: one or
// more Events sharing a suspend policy, delivered together.
type Composite struct {
	SuspendPolicy SuspendPolicy
	Events        []Event
}

func readComposite(r *wire.Reader) (Composite, error) {
	sp, err := r.ReadU8()
	if err != nil {
		return Composite{}, err
	}
	events, err := wire.ReadSlice(r, readEvent)
	if err != nil {
		return Composite{}, err
	}
	return Composite{SuspendPolicy: SuspendPolicy(sp), Events: events}, nil
}
