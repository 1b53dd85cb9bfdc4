package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

type arrayNewInstanceRequest struct {
	ArrayType ArrayTypeID
	Length    uint32
}

func (r arrayNewInstanceRequest) encode(w *wire.Writer) error {
	if err := r.ArrayType.encode(w); err != nil {
		return err
	}
	return w.WriteU32(r.Length)
}

func decodeArrayID(r *wire.Reader) (ArrayID, error) {
	if _, err := r.ReadU8(); err != nil { // tag, always Array
		return 0, err
	}
	return readArrayID(r)
}

// NewArrayInstance creates a new array object of arrayType with the given
// length.
func (s *Session) NewArrayInstance(arrayType ArrayTypeID, length uint32) (ArrayID, error) {
	req := arrayNewInstanceRequest{ArrayType: arrayType, Length: length}
	return sendCommand(s, 4, 1, req, decodeArrayID)
}
