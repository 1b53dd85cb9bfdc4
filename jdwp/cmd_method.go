package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

type methodRequest struct {
	RefType ReferenceTypeID
	Method  MethodID
}

func (r methodRequest) encode(w *wire.Writer) error {
	if err := r.RefType.encode(w); err != nil {
		return err
	}
	return r.Method.encode(w)
}

type Line struct {
	LineCodeIndex uint64
	LineNumber    uint32
}

func decodeLine(r *wire.Reader) (Line, error) {
	var l Line
	var err error
	if l.LineCodeIndex, err = r.ReadU64(); err != nil {
		return l, err
	}
	ln, err := r.ReadU32()
	l.LineNumber = ln
	return l, err
}

// LineTableReply maps source line numbers to method bytecode indices.
// Start/End are -1 if the method is native.
type LineTableReply struct {
	Start int64
	End   int64
	Lines []Line
}

func decodeLineTableReply(r *wire.Reader) (LineTableReply, error) {
	var rep LineTableReply
	var err error
	if rep.Start, err = r.ReadI64(); err != nil {
		return rep, err
	}
	if rep.End, err = r.ReadI64(); err != nil {
		return rep, err
	}
	rep.Lines, err = wire.ReadSlice(r, decodeLine)
	return rep, err
}

// LineTable returns line number information for method, if present.
func (s *Session) LineTable(refType ReferenceTypeID, method MethodID) (LineTableReply, error) {
	return sendCommand(s, 6, 1, methodRequest{RefType: refType, Method: method}, decodeLineTableReply)
}

type Variable struct {
	CodeIndex uint64
	Name      string
	Signature string
	Length    uint32
	Slot      uint32
}

func decodeVariable(r *wire.Reader) (Variable, error) {
	var v Variable
	var err error
	if v.CodeIndex, err = r.ReadU64(); err != nil {
		return v, err
	}
	if v.Name, err = r.ReadString(); err != nil {
		return v, err
	}
	if v.Signature, err = r.ReadString(); err != nil {
		return v, err
	}
	if v.Length, err = r.ReadU32(); err != nil {
		return v, err
	}
	v.Slot, err = r.ReadU32()
	return v, err
}

type VariableTableReply struct {
	ArgCount  uint32
	Variables []Variable
}

func decodeVariableTableReply(r *wire.Reader) (VariableTableReply, error) {
	var rep VariableTableReply
	var err error
	if rep.ArgCount, err = r.ReadU32(); err != nil {
		return rep, err
	}
	rep.Variables, err = wire.ReadSlice(r, decodeVariable)
	return rep, err
}

// VariableTable returns the arguments and locals declared in method,
// including the "this" reference for instance methods.
func (s *Session) VariableTable(refType ReferenceTypeID, method MethodID) (VariableTableReply, error) {
	return sendCommand(s, 6, 2, methodRequest{RefType: refType, Method: method}, decodeVariableTableReply)
}

// Bytecodes returns method's bytecodes. Requires the CanGetBytecodes
// capability.
func (s *Session) Bytecodes(refType ReferenceTypeID, method MethodID) ([]byte, error) {
	return sendCommand(s, 6, 3, methodRequest{RefType: refType, Method: method},
		func(r *wire.Reader) ([]byte, error) { return wire.ReadSlice(r, (*wire.Reader).ReadU8) })
}

// IsObsolete reports whether method has been replaced by a non-equivalent
// redefinition.
func (s *Session) IsObsolete(refType ReferenceTypeID, method MethodID) (bool, error) {
	return sendCommand(s, 6, 4, methodRequest{RefType: refType, Method: method}, (*wire.Reader).ReadBool)
}

type VariableWithGeneric struct {
	CodeIndex        uint64
	Name             string
	Signature        string
	GenericSignature string
	Length           uint32
	Slot             uint32
}

func decodeVariableWithGeneric(r *wire.Reader) (VariableWithGeneric, error) {
	var v VariableWithGeneric
	var err error
	if v.CodeIndex, err = r.ReadU64(); err != nil {
		return v, err
	}
	if v.Name, err = r.ReadString(); err != nil {
		return v, err
	}
	if v.Signature, err = r.ReadString(); err != nil {
		return v, err
	}
	if v.GenericSignature, err = r.ReadString(); err != nil {
		return v, err
	}
	if v.Length, err = r.ReadU32(); err != nil {
		return v, err
	}
	v.Slot, err = r.ReadU32()
	return v, err
}

type VariableTableWithGenericReply struct {
	ArgCount  uint32
	Variables []VariableWithGeneric
}

func decodeVariableTableWithGenericReply(r *wire.Reader) (VariableTableWithGenericReply, error) {
	var rep VariableTableWithGenericReply
	var err error
	if rep.ArgCount, err = r.ReadU32(); err != nil {
		return rep, err
	}
	rep.Variables, err = wire.ReadSlice(r, decodeVariableWithGeneric)
	return rep, err
}

// VariableTableWithGeneric is VariableTable enriched with each variable's
// generic signature. Since JDWP version 1.5.
func (s *Session) VariableTableWithGeneric(refType ReferenceTypeID, method MethodID) (VariableTableWithGenericReply, error) {
	return sendCommand(s, 6, 5, methodRequest{RefType: refType, Method: method}, decodeVariableTableWithGenericReply)
}
