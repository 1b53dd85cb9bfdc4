package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

// Modifier narrows an event request down to the occurrences a front-end
// cares about. EventRequest.Set takes a list of these.
type Modifier struct {
	Kind ModifierKind

	// Count: suspend/report only on the nth occurrence.
	Count int32

	// Conditional: identifies an expression watchpoint (server-internal,
	// rarely used by clients).
	ExprID int32

	// ThreadOnly: restrict to a single thread.
	Thread ThreadID

	// ClassOnly: restrict to a type and its subtypes.
	Class ReferenceTypeID

	// ClassMatch / ClassExclude: restrict by a class pattern, optionally
	// negated via the Exclude field (the wire shape is identical; Exclude
	// only changes which ModifierKind is written).
	ClassPattern string

	// LocationOnly: restrict to a single executable location.
	Location Location

	// ExceptionOnly: restrict exception events by exception type and
	// caught/uncaught.
	ExceptionOrNull TaggedReferenceTypeID
	ExceptionHasType bool
	Caught           bool
	Uncaught         bool

	// FieldOnly: restrict field watchpoints to a single field.
	FieldDeclaringType ReferenceTypeID
	FieldID            FieldID

	// Step: restrict to step events matching depth/size within a thread.
	StepThread ThreadID
	StepSize   StepSize
	StepDepth  StepDepth

	// InstanceOnly: restrict to events occurring on a specific instance.
	Instance ObjectID

	// SourceNameMatch: restrict ClassPrepare events by source file pattern.
	SourceNamePattern string
}

func (m Modifier) encode(w *wire.Writer) error {
	if err := w.WriteU8(uint8(m.Kind)); err != nil {
		return err
	}
	switch m.Kind {
	case ModifierCount:
		return w.WriteI32(m.Count)
	case ModifierConditional:
		return w.WriteI32(m.ExprID)
	case ModifierThreadOnly:
		return m.Thread.encode(w)
	case ModifierClassOnly:
		return m.Class.encode(w)
	case ModifierClassMatch, ModifierClassExclude:
		return w.WriteString(m.ClassPattern)
	case ModifierLocationOnly:
		return m.Location.encode(w)
	case ModifierExceptionOnly:
		if m.ExceptionHasType {
			if err := m.ExceptionOrNull.encode(w); err != nil {
				return err
			}
		} else {
			if err := w.WriteU8(0); err != nil {
				return err
			}
		}
		if err := w.WriteBool(m.Caught); err != nil {
			return err
		}
		return w.WriteBool(m.Uncaught)
	case ModifierFieldOnly:
		if err := m.FieldDeclaringType.encode(w); err != nil {
			return err
		}
		return m.FieldID.encode(w)
	case ModifierStep:
		if err := m.StepThread.encode(w); err != nil {
			return err
		}
		if err := w.WriteU32(uint32(m.StepSize)); err != nil {
			return err
		}
		return w.WriteU32(uint32(m.StepDepth))
	case ModifierInstanceOnly:
		return m.Instance.encode(w)
	case ModifierSourceNameMatch:
		return w.WriteString(m.SourceNamePattern)
	}
	return nil
}

func readModifier(r *wire.Reader) (Modifier, error) {
	kindByte, err := r.ReadU8()
	if err != nil {
		return Modifier{}, err
	}
	m := Modifier{Kind: ModifierKind(kindByte)}
	switch m.Kind {
	case ModifierCount:
		m.Count, err = r.ReadI32()
	case ModifierConditional:
		m.ExprID, err = r.ReadI32()
	case ModifierThreadOnly:
		m.Thread, err = readThreadID(r)
	case ModifierClassOnly:
		m.Class, err = readReferenceTypeID(r)
	case ModifierClassMatch, ModifierClassExclude:
		m.ClassPattern, err = r.ReadString()
	case ModifierLocationOnly:
		m.Location, err = readLocation(r)
	case ModifierExceptionOnly:
		var present bool
		m.ExceptionOrNull, present, err = readOptionalTaggedReferenceTypeID(r)
		if err != nil {
			return Modifier{}, err
		}
		m.ExceptionHasType = present
		if m.Caught, err = r.ReadBool(); err != nil {
			return Modifier{}, err
		}
		m.Uncaught, err = r.ReadBool()
	case ModifierFieldOnly:
		if m.FieldDeclaringType, err = readReferenceTypeID(r); err != nil {
			return Modifier{}, err
		}
		m.FieldID, err = readFieldID(r)
	case ModifierStep:
		if m.StepThread, err = readThreadID(r); err != nil {
			return Modifier{}, err
		}
		var size, depth uint32
		if size, err = r.ReadU32(); err != nil {
			return Modifier{}, err
		}
		m.StepSize = StepSize(size)
		if depth, err = r.ReadU32(); err != nil {
			return Modifier{}, err
		}
		m.StepDepth = StepDepth(depth)
	case ModifierInstanceOnly:
		m.Instance, err = readObjectID(r)
	case ModifierSourceNameMatch:
		m.SourceNamePattern, err = r.ReadString()
	}
	return m, err
}
