package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

type arrayRequest struct{ Array ArrayID }

func (r arrayRequest) encode(w *wire.Writer) error { return ObjectID(r.Array).encode(w) }

// ArrayLength returns the number of components in array.
func (s *Session) ArrayLength(array ArrayID) (uint32, error) {
	return sendCommand(s, 13, 1, arrayRequest{Array: array}, (*wire.Reader).ReadU32)
}

type arrayGetValuesRequest struct {
	Array      ArrayID
	FirstIndex uint32
	Length     uint32
}

func (r arrayGetValuesRequest) encode(w *wire.Writer) error {
	if err := ObjectID(r.Array).encode(w); err != nil {
		return err
	}
	if err := w.WriteU32(r.FirstIndex); err != nil {
		return err
	}
	return w.WriteU32(r.Length)
}

// ArrayGetValues returns a range of array's components. The range must lie
// within the array's bounds.
func (s *Session) ArrayGetValues(array ArrayID, firstIndex, length uint32) (ArrayRegion, error) {
	req := arrayGetValuesRequest{Array: array, FirstIndex: firstIndex, Length: length}
	return sendCommand(s, 13, 2, req, readArrayRegion)
}

type arraySetValuesRequest struct {
	Array      ArrayID
	FirstIndex uint32
	Values     []Untagged
}

func (r arraySetValuesRequest) encode(w *wire.Writer) error {
	if err := ObjectID(r.Array).encode(w); err != nil {
		return err
	}
	if err := w.WriteU32(r.FirstIndex); err != nil {
		return err
	}
	return wire.WriteSlice(w, r.Values, func(w *wire.Writer, v Untagged) error { return v.encode(w) })
}

// ArraySetValues sets a range of array's components, starting at
// firstIndex. The range must lie within the array's bounds and every
// value's type must match the array's component type exactly (or widen
// to it, for object components whose type is already loaded).
func (s *Session) ArraySetValues(array ArrayID, firstIndex uint32, values []Untagged) (struct{}, error) {
	req := arraySetValuesRequest{Array: array, FirstIndex: firstIndex, Values: values}
	return sendCommand(s, 13, 3, req, decodeUnit)
}
