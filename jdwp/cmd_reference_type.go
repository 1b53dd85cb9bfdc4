package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

type refTypeRequest struct{ RefType ReferenceTypeID }

func (r refTypeRequest) encode(w *wire.Writer) error { return r.RefType.encode(w) }

// Signature returns the JNI signature of a reference type.
func (s *Session) Signature(refType ReferenceTypeID) (string, error) {
	return sendCommand(s, 2, 1, refTypeRequest{RefType: refType}, (*wire.Reader).ReadString)
}

// ClassLoader returns the class loader that loaded refType, or zero if it
// was loaded by the system class loader.
func (s *Session) ClassLoader(refType ReferenceTypeID) (ClassLoaderID, error) {
	return sendCommand(s, 2, 2, refTypeRequest{RefType: refType}, readClassLoaderID)
}

// Modifiers returns the access-flag bitmask for a reference type.
func (s *Session) Modifiers(refType ReferenceTypeID) (TypeModifiers, error) {
	return sendCommand(s, 2, 3, refTypeRequest{RefType: refType}, func(r *wire.Reader) (TypeModifiers, error) {
		v, err := r.ReadU32()
		return TypeModifiers(v), err
	})
}

type FieldInfo struct {
	Field     FieldID
	Name      string
	Signature string
	ModBits   FieldModifiers
}

func decodeFieldInfo(r *wire.Reader) (FieldInfo, error) {
	var f FieldInfo
	var err error
	if f.Field, err = readFieldID(r); err != nil {
		return f, err
	}
	if f.Name, err = r.ReadString(); err != nil {
		return f, err
	}
	if f.Signature, err = r.ReadString(); err != nil {
		return f, err
	}
	mb, err := r.ReadU32()
	f.ModBits = FieldModifiers(mb)
	return f, err
}

// Fields returns every field declared directly on refType, in class-file
// order.
func (s *Session) Fields(refType ReferenceTypeID) ([]FieldInfo, error) {
	return sendCommand(s, 2, 4, refTypeRequest{RefType: refType}, func(r *wire.Reader) ([]FieldInfo, error) {
		return wire.ReadSlice(r, decodeFieldInfo)
	})
}

type MethodInfo struct {
	Method    MethodID
	Name      string
	Signature string
	ModBits   MethodModifiers
}

func decodeMethodInfo(r *wire.Reader) (MethodInfo, error) {
	var m MethodInfo
	var err error
	if m.Method, err = readMethodID(r); err != nil {
		return m, err
	}
	if m.Name, err = r.ReadString(); err != nil {
		return m, err
	}
	if m.Signature, err = r.ReadString(); err != nil {
		return m, err
	}
	mb, err := r.ReadU32()
	m.ModBits = MethodModifiers(mb)
	return m, err
}

// Methods returns every method declared directly on refType, in
// class-file order.
func (s *Session) Methods(refType ReferenceTypeID) ([]MethodInfo, error) {
	return sendCommand(s, 2, 5, refTypeRequest{RefType: refType}, func(r *wire.Reader) ([]MethodInfo, error) {
		return wire.ReadSlice(r, decodeMethodInfo)
	})
}

type getStaticValuesRequest struct {
	RefType ReferenceTypeID
	Fields  []FieldID
}

func (g getStaticValuesRequest) encode(w *wire.Writer) error {
	if err := g.RefType.encode(w); err != nil {
		return err
	}
	return wire.WriteSlice(w, g.Fields, func(w *wire.Writer, f FieldID) error { return f.encode(w) })
}

// GetValues returns the current value of one or more static fields of
// refType, in request order.
func (s *Session) GetValues(refType ReferenceTypeID, fields []FieldID) ([]Value, error) {
	return sendCommand(s, 2, 6, getStaticValuesRequest{RefType: refType, Fields: fields},
		func(r *wire.Reader) ([]Value, error) { return wire.ReadSlice(r, readValue) })
}

// SourceFile returns the name of the source file refType was declared in.
func (s *Session) SourceFile(refType ReferenceTypeID) (string, error) {
	return sendCommand(s, 2, 7, refTypeRequest{RefType: refType}, (*wire.Reader).ReadString)
}

// NestedTypes returns the types directly nested within refType.
func (s *Session) NestedTypes(refType ReferenceTypeID) ([]TaggedReferenceTypeID, error) {
	return sendCommand(s, 2, 8, refTypeRequest{RefType: refType}, func(r *wire.Reader) ([]TaggedReferenceTypeID, error) {
		return wire.ReadSlice(r, readTaggedReferenceTypeID)
	})
}

// Status returns refType's current preparation status.
func (s *Session) Status(refType ReferenceTypeID) (ClassStatus, error) {
	return sendCommand(s, 2, 9, refTypeRequest{RefType: refType}, func(r *wire.Reader) (ClassStatus, error) {
		v, err := r.ReadU32()
		return ClassStatus(v), err
	})
}

// Interfaces returns the interfaces refType directly declares as implemented.
func (s *Session) Interfaces(refType ReferenceTypeID) ([]InterfaceID, error) {
	return sendCommand(s, 2, 10, refTypeRequest{RefType: refType}, func(r *wire.Reader) ([]InterfaceID, error) {
		return wire.ReadSlice(r, readInterfaceID)
	})
}

// ClassObject returns the java.lang.Class instance mirroring refType.
func (s *Session) ClassObject(refType ReferenceTypeID) (ClassObjectID, error) {
	return sendCommand(s, 2, 11, refTypeRequest{RefType: refType}, readClassObjectID)
}

// SourceDebugExtension returns refType's SourceDebugExtension attribute.
// Requires the CanGetSourceDebugExtension capability.
func (s *Session) SourceDebugExtension(refType ReferenceTypeID) (string, error) {
	return sendCommand(s, 2, 12, refTypeRequest{RefType: refType}, (*wire.Reader).ReadString)
}

type SignatureWithGenericReply struct {
	Signature        string
	GenericSignature string
}

func decodeSignatureWithGenericReply(r *wire.Reader) (SignatureWithGenericReply, error) {
	var rep SignatureWithGenericReply
	var err error
	if rep.Signature, err = r.ReadString(); err != nil {
		return rep, err
	}
	rep.GenericSignature, err = r.ReadString()
	return rep, err
}

// SignatureWithGeneric returns refType's JNI signature along with its
// generic signature (empty if there is none).
func (s *Session) SignatureWithGeneric(refType ReferenceTypeID) (SignatureWithGenericReply, error) {
	return sendCommand(s, 2, 13, refTypeRequest{RefType: refType}, decodeSignatureWithGenericReply)
}

// FieldWithGeneric is FieldsWithGeneric's per-field reply entry.
//
// GenericSignature is nil when absent, per the same plain-string /
// empty-means-none convention used for AllClassesWithGeneric.
type FieldWithGeneric struct {
	Field            FieldID
	Name             string
	Signature        string
	GenericSignature *string
	ModBits          FieldModifiers
}

func decodeFieldWithGeneric(r *wire.Reader) (FieldWithGeneric, error) {
	var f FieldWithGeneric
	var err error
	if f.Field, err = readFieldID(r); err != nil {
		return f, err
	}
	if f.Name, err = r.ReadString(); err != nil {
		return f, err
	}
	if f.Signature, err = r.ReadString(); err != nil {
		return f, err
	}
	if f.GenericSignature, err = decodeOptionalGenericSignature(r); err != nil {
		return f, err
	}
	mb, err := r.ReadU32()
	f.ModBits = FieldModifiers(mb)
	return f, err
}

// FieldsWithGeneric returns every field declared directly on refType along
// with its generic signature, if any.
func (s *Session) FieldsWithGeneric(refType ReferenceTypeID) ([]FieldWithGeneric, error) {
	return sendCommand(s, 2, 14, refTypeRequest{RefType: refType}, func(r *wire.Reader) ([]FieldWithGeneric, error) {
		return wire.ReadSlice(r, decodeFieldWithGeneric)
	})
}

type MethodWithGeneric struct {
	Method           MethodID
	Name             string
	Signature        string
	GenericSignature string
	ModBits          MethodModifiers
}

func decodeMethodWithGeneric(r *wire.Reader) (MethodWithGeneric, error) {
	var m MethodWithGeneric
	var err error
	if m.Method, err = readMethodID(r); err != nil {
		return m, err
	}
	if m.Name, err = r.ReadString(); err != nil {
		return m, err
	}
	if m.Signature, err = r.ReadString(); err != nil {
		return m, err
	}
	if m.GenericSignature, err = r.ReadString(); err != nil {
		return m, err
	}
	mb, err := r.ReadU32()
	m.ModBits = MethodModifiers(mb)
	return m, err
}

// MethodsWithGeneric returns every method declared directly on refType
// along with its generic signature, if any.
func (s *Session) MethodsWithGeneric(refType ReferenceTypeID) ([]MethodWithGeneric, error) {
	return sendCommand(s, 2, 15, refTypeRequest{RefType: refType}, func(r *wire.Reader) ([]MethodWithGeneric, error) {
		return wire.ReadSlice(r, decodeMethodWithGeneric)
	})
}

// InstanceLimit bounds how many instances ReferenceType.Instances returns:
// All, or a positive Limit. The wire encoding is a single u32, 0 meaning
// "all".
type InstanceLimit struct {
	All   bool
	Limit uint32
}

func AllInstances() InstanceLimit { return InstanceLimit{All: true} }

func LimitInstances(n uint32) InstanceLimit {
	if n == 0 {
		panic("jdwp: instance limit must be non-zero")
	}
	return InstanceLimit{Limit: n}
}

func (l InstanceLimit) encode(w *wire.Writer) error {
	if l.All {
		return w.WriteU32(0)
	}
	return w.WriteU32(l.Limit)
}

type instancesRequest struct {
	RefType ReferenceTypeID
	Max     InstanceLimit
}

func (i instancesRequest) encode(w *wire.Writer) error {
	if err := i.RefType.encode(w); err != nil {
		return err
	}
	return i.Max.encode(w)
}

// Instances returns reachable instances of refType, up to max of them.
func (s *Session) Instances(refType ReferenceTypeID, max InstanceLimit) ([]TaggedObjectID, error) {
	return sendCommand(s, 2, 16, instancesRequest{RefType: refType, Max: max},
		func(r *wire.Reader) ([]TaggedObjectID, error) { return wire.ReadSlice(r, readTaggedObjectID) })
}

type ClassFileVersionReply struct {
	MajorVersion uint32
	MinorVersion uint32
}

func decodeClassFileVersionReply(r *wire.Reader) (ClassFileVersionReply, error) {
	var c ClassFileVersionReply
	var err error
	if c.MajorVersion, err = r.ReadU32(); err != nil {
		return c, err
	}
	c.MinorVersion, err = r.ReadU32()
	return c, err
}

// ClassFileVersion returns the major/minor version from refType's class file.
func (s *Session) ClassFileVersion(refType ReferenceTypeID) (ClassFileVersionReply, error) {
	return sendCommand(s, 2, 17, refTypeRequest{RefType: refType}, decodeClassFileVersionReply)
}

// ConstantPoolReply carries the raw constant_pool bytes from refType's
// class file. No further parsing is performed; interpreting the bytes as
// class-file constant pool entries is a concern for a higher-level
// consumer, not this wire client.
type ConstantPoolReply struct {
	Count uint32
	Bytes []byte
}

func decodeConstantPoolReply(r *wire.Reader) (ConstantPoolReply, error) {
	var c ConstantPoolReply
	var err error
	if c.Count, err = r.ReadU32(); err != nil {
		return c, err
	}
	c.Bytes, err = wire.ReadSlice(r, (*wire.Reader).ReadU8)
	return c, err
}

// ConstantPool returns the raw constant pool bytes for refType's class
// file. Requires the CanGetConstantPool capability.
func (s *Session) ConstantPool(refType ReferenceTypeID) (ConstantPoolReply, error) {
	return sendCommand(s, 2, 18, refTypeRequest{RefType: refType}, decodeConstantPoolReply)
}
