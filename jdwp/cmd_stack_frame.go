package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

// SlotTag identifies a local variable slot and its value tag, as required
// by StackFrame.GetValues to know how many bytes each value occupies.
type SlotTag struct {
	Slot uint32
	Tag  Tag
}

type getFrameValuesRequest struct {
	Thread ThreadID
	Frame  FrameID
	Slots  []SlotTag
}

func (r getFrameValuesRequest) encode(w *wire.Writer) error {
	if err := r.Thread.encode(w); err != nil {
		return err
	}
	if err := r.Frame.encode(w); err != nil {
		return err
	}
	return wire.WriteSlice(w, r.Slots, func(w *wire.Writer, s SlotTag) error {
		if err := w.WriteU32(s.Slot); err != nil {
			return err
		}
		return w.WriteU8(uint8(s.Tag))
	})
}

// GetFrameValues returns the value of one or more local variables in
// frame. Each slot must be visible at the frame's current code index.
func (s *Session) GetFrameValues(thread ThreadID, frame FrameID, slots []SlotTag) ([]Value, error) {
	req := getFrameValuesRequest{Thread: thread, Frame: frame, Slots: slots}
	return sendCommand(s, 16, 1, req, func(r *wire.Reader) ([]Value, error) { return wire.ReadSlice(r, readValue) })
}

type slotValue struct {
	Slot  uint32
	Value Value
}

type setFrameValuesRequest struct {
	Thread ThreadID
	Frame  FrameID
	Slots  []slotValue
}

func (r setFrameValuesRequest) encode(w *wire.Writer) error {
	if err := r.Thread.encode(w); err != nil {
		return err
	}
	if err := r.Frame.encode(w); err != nil {
		return err
	}
	return wire.WriteSlice(w, r.Slots, func(w *wire.Writer, sv slotValue) error {
		if err := w.WriteU32(sv.Slot); err != nil {
			return err
		}
		return sv.Value.encode(w)
	})
}

// SetFrameValues sets the value of one or more local variables in frame,
// which must be visible at the frame's current code index.
func (s *Session) SetFrameValues(thread ThreadID, frame FrameID, values map[uint32]Value) (struct{}, error) {
	req := setFrameValuesRequest{Thread: thread, Frame: frame}
	for slot, v := range values {
		req.Slots = append(req.Slots, slotValue{Slot: slot, Value: v})
	}
	return sendCommand(s, 16, 2, req, decodeUnit)
}

type frameRequest struct {
	Thread ThreadID
	Frame  FrameID
}

func (r frameRequest) encode(w *wire.Writer) error {
	if err := r.Thread.encode(w); err != nil {
		return err
	}
	return r.Frame.encode(w)
}

// ThisObject returns the value of the 'this' reference for frame, or the
// null object reference if frame's method is static or native.
func (s *Session) ThisObject(thread ThreadID, frame FrameID) (TaggedObjectID, bool, error) {
	return sendCommand(s, 16, 3, frameRequest{Thread: thread, Frame: frame}, readOptionalTaggedObjectID)
}

// PopFrames pops thread's top-most stack frames up to and including
// frame, restoring the operand stack and program counter to just before
// the invoke that created frame. Thread must be suspended. Since JDWP
// version 1.4; requires the CanPopFrames capability.
func (s *Session) PopFrames(thread ThreadID, frame FrameID) (struct{}, error) {
	return sendCommand(s, 16, 4, frameRequest{Thread: thread, Frame: frame}, decodeUnit)
}
