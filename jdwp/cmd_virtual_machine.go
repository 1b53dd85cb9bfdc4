package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

// Version returns the JDWP version string and VM identification reported
// by the target VM.
func (s *Session) Version() (VersionReply, error) {
	return sendCommand(s, 1, 1, nil, decodeVersionReply)
}

type VersionReply struct {
	Description  string
	VersionMajor uint32
	VersionMinor uint32
	VMVersion    string
	VMName       string
}

func decodeVersionReply(r *wire.Reader) (VersionReply, error) {
	var v VersionReply
	var err error
	if v.Description, err = r.ReadString(); err != nil {
		return v, err
	}
	if v.VersionMajor, err = r.ReadU32(); err != nil {
		return v, err
	}
	if v.VersionMinor, err = r.ReadU32(); err != nil {
		return v, err
	}
	if v.VMVersion, err = r.ReadString(); err != nil {
		return v, err
	}
	v.VMName, err = r.ReadString()
	return v, err
}

// ClassBySignature is the request struct for looking up reference types by
// JNI signature.
type ClassBySignature struct {
	Signature string
}

func (c ClassBySignature) encode(w *wire.Writer) error { return w.WriteString(c.Signature) }

type SignatureClass struct {
	Type   TaggedReferenceTypeID
	Status ClassStatus
}

func decodeSignatureClass(r *wire.Reader) (SignatureClass, error) {
	var c SignatureClass
	var err error
	if c.Type, err = readTaggedReferenceTypeID(r); err != nil {
		return c, err
	}
	status, err := r.ReadU32()
	c.Status = ClassStatus(status)
	return c, err
}

// ClassesBySignature returns every loaded reference type matching signature.
func (s *Session) ClassesBySignature(signature string) ([]SignatureClass, error) {
	return sendCommand(s, 1, 2, ClassBySignature{Signature: signature}, func(r *wire.Reader) ([]SignatureClass, error) {
		return wire.ReadSlice(r, decodeSignatureClass)
	})
}

type Class struct {
	Type      TaggedReferenceTypeID
	Signature string
	Status    ClassStatus
}

func decodeClass(r *wire.Reader) (Class, error) {
	var c Class
	var err error
	if c.Type, err = readTaggedReferenceTypeID(r); err != nil {
		return c, err
	}
	if c.Signature, err = r.ReadString(); err != nil {
		return c, err
	}
	status, err := r.ReadU32()
	c.Status = ClassStatus(status)
	return c, err
}

// AllClasses returns reference types for every class currently loaded by
// the target VM.
func (s *Session) AllClasses() ([]Class, error) {
	return sendCommand(s, 1, 3, nil, func(r *wire.Reader) ([]Class, error) {
		return wire.ReadSlice(r, decodeClass)
	})
}

// AllThreads returns every thread currently running in the target VM.
func (s *Session) AllThreads() ([]ThreadID, error) {
	return sendCommand(s, 1, 4, nil, func(r *wire.Reader) ([]ThreadID, error) {
		return wire.ReadSlice(r, readThreadID)
	})
}

// TopLevelThreadGroups returns every thread group with no parent.
func (s *Session) TopLevelThreadGroups() ([]ThreadGroupID, error) {
	return sendCommand(s, 1, 5, nil, func(r *wire.Reader) ([]ThreadGroupID, error) {
		return wire.ReadSlice(r, readThreadGroupID)
	})
}

// Suspend suspends every thread in the target VM.
func (s *Session) Suspend() error {
	_, err := sendCommand(s, 1, 8, nil, decodeUnit)
	return err
}

// Resume resumes every thread in the target VM.
func (s *Session) Resume() error {
	_, err := sendCommand(s, 1, 9, nil, decodeUnit)
	return err
}

type exitRequest struct{ ExitCode int32 }

func (e exitRequest) encode(w *wire.Writer) error { return w.WriteI32(e.ExitCode) }

// Exit terminates the target VM with the given exit code.
func (s *Session) Exit(exitCode int32) error {
	_, err := sendCommand(s, 1, 10, exitRequest{ExitCode: exitCode}, decodeUnit)
	return err
}

type createStringRequest struct{ Value string }

func (c createStringRequest) encode(w *wire.Writer) error { return w.WriteString(c.Value) }

// CreateString creates a new String object in the target VM and returns
// its id.
func (s *Session) CreateString(value string) (StringID, error) {
	return sendCommand(s, 1, 11, createStringRequest{Value: value}, readStringID)
}

// CapabilitiesReply is the set of capabilities reported by both
// Capabilities and the prefix of CapabilitiesNew.
type CapabilitiesReply struct {
	CanWatchFieldModification    bool
	CanWatchFieldAccess          bool
	CanGetBytecodes              bool
	CanGetSyntheticAttribute     bool
	CanGetOwnedMonitorInfo       bool
	CanGetCurrentContendedMonitor bool
	CanGetMonitorInfo            bool
}

func decodeCapabilitiesReply(r *wire.Reader) (CapabilitiesReply, error) {
	var c CapabilitiesReply
	fields := []*bool{
		&c.CanWatchFieldModification, &c.CanWatchFieldAccess, &c.CanGetBytecodes,
		&c.CanGetSyntheticAttribute, &c.CanGetOwnedMonitorInfo,
		&c.CanGetCurrentContendedMonitor, &c.CanGetMonitorInfo,
	}
	for _, f := range fields {
		v, err := r.ReadBool()
		if err != nil {
			return c, err
		}
		*f = v
	}
	return c, nil
}

// Capabilities retrieves the older, 7-flag capability set.
func (s *Session) Capabilities() (CapabilitiesReply, error) {
	return sendCommand(s, 1, 12, nil, decodeCapabilitiesReply)
}

type ClassPathsReply struct {
	BaseDir        string
	ClassPaths     []string
	BootClassPaths []string
}

func decodeClassPathsReply(r *wire.Reader) (ClassPathsReply, error) {
	var c ClassPathsReply
	var err error
	if c.BaseDir, err = r.ReadString(); err != nil {
		return c, err
	}
	if c.ClassPaths, err = wire.ReadSlice(r, (*wire.Reader).ReadString); err != nil {
		return c, err
	}
	c.BootClassPaths, err = wire.ReadSlice(r, (*wire.Reader).ReadString)
	return c, err
}

// ClassPaths retrieves the classpath and bootclasspath of the target VM.
func (s *Session) ClassPaths() (ClassPathsReply, error) {
	return sendCommand(s, 1, 13, nil, decodeClassPathsReply)
}

type disposeObjectsRequest struct {
	Requests []DisposeObjectRequest
}

type DisposeObjectRequest struct {
	Object   ObjectID
	RefCount uint32
}

func (d disposeObjectsRequest) encode(w *wire.Writer) error {
	return wire.WriteSlice(w, d.Requests, func(w *wire.Writer, r DisposeObjectRequest) error {
		if err := r.Object.encode(w); err != nil {
			return err
		}
		return w.WriteU32(r.RefCount)
	})
}

// DisposeObjects decrements the back-end reference count of each given
// object ID by the paired amount, freeing IDs that drop to zero or below.
func (s *Session) DisposeObjects(requests []DisposeObjectRequest) error {
	_, err := sendCommand(s, 1, 14, disposeObjectsRequest{Requests: requests}, decodeUnit)
	return err
}

// HoldEvents tells the target VM to stop sending events until ReleaseEvents.
func (s *Session) HoldEvents() error {
	_, err := sendCommand(s, 1, 15, nil, decodeUnit)
	return err
}

// ReleaseEvents resumes event delivery after HoldEvents.
func (s *Session) ReleaseEvents() error {
	_, err := sendCommand(s, 1, 16, nil, decodeUnit)
	return err
}

// CapabilitiesNewReply is the full, 32-boolean capability set: the 7
// flags shared with Capabilities, 14 additional named flags, and 11
// reserved flags for future capabilities (always false on a conforming
// VM today).
type CapabilitiesNewReply struct {
	CapabilitiesReply

	CanRedefineClasses                bool
	CanAddMethod                       bool
	CanUnrestrictedlyRedefineClasses   bool
	CanPopFrames                       bool
	CanUseInstanceFilters              bool
	CanGetSourceDebugExtension         bool
	CanRequestVMDeathEvent             bool
	CanSetDefaultStratum               bool
	CanGetInstanceInfo                 bool
	CanRequestMonitorEvents            bool
	CanGetMonitorFrameInfo             bool
	CanUseSourceNameFilters            bool
	CanGetConstantPool                 bool
	CanForceEarlyReturn                bool

	reserved [11]bool
}

func decodeCapabilitiesNewReply(r *wire.Reader) (CapabilitiesNewReply, error) {
	var c CapabilitiesNewReply
	base, err := decodeCapabilitiesReply(r)
	if err != nil {
		return c, err
	}
	c.CapabilitiesReply = base

	named := []*bool{
		&c.CanRedefineClasses, &c.CanAddMethod, &c.CanUnrestrictedlyRedefineClasses,
		&c.CanPopFrames, &c.CanUseInstanceFilters, &c.CanGetSourceDebugExtension,
		&c.CanRequestVMDeathEvent, &c.CanSetDefaultStratum, &c.CanGetInstanceInfo,
		&c.CanRequestMonitorEvents, &c.CanGetMonitorFrameInfo, &c.CanUseSourceNameFilters,
		&c.CanGetConstantPool, &c.CanForceEarlyReturn,
	}
	for _, f := range named {
		v, err := r.ReadBool()
		if err != nil {
			return c, err
		}
		*f = v
	}
	for i := range c.reserved {
		v, err := r.ReadBool()
		if err != nil {
			return c, err
		}
		c.reserved[i] = v
	}
	return c, nil
}

// CapabilitiesNew retrieves the full 32-flag capability set.
func (s *Session) CapabilitiesNew() (CapabilitiesNewReply, error) {
	return sendCommand(s, 1, 17, nil, decodeCapabilitiesNewReply)
}

// RedefineClassDef pairs a reference type with the new .class bytes to
// install for it.
type RedefineClassDef struct {
	Type       ReferenceTypeID
	ClassBytes []byte
}

type redefineClassesRequest struct{ Classes []RedefineClassDef }

func (r redefineClassesRequest) encode(w *wire.Writer) error {
	return wire.WriteSlice(w, r.Classes, func(w *wire.Writer, d RedefineClassDef) error {
		if err := d.Type.encode(w); err != nil {
			return err
		}
		return wire.WriteSlice(w, d.ClassBytes, (*wire.Writer).WriteU8)
	})
}

// RedefineClasses installs new class definitions for classes that have
// already been loaded. Requires the CanRedefineClasses capability.
func (s *Session) RedefineClasses(classes []RedefineClassDef) error {
	_, err := sendCommand(s, 1, 18, redefineClassesRequest{Classes: classes}, decodeUnit)
	return err
}

type setDefaultStratumRequest struct{ StratumID string }

func (r setDefaultStratumRequest) encode(w *wire.Writer) error { return w.WriteString(r.StratumID) }

// SetDefaultStratum sets the default stratum, or clears it with an empty
// string. Requires the CanSetDefaultStratum capability.
func (s *Session) SetDefaultStratum(stratumID string) error {
	_, err := sendCommand(s, 1, 19, setDefaultStratumRequest{StratumID: stratumID}, decodeUnit)
	return err
}

// GenericClass is AllClassesWithGeneric's per-class reply entry.
//
// GenericSignature is nil when the class has no generic signature; a
// trailing empty string on the wire is treated as "no generic signature"
// since JDWP encodes this field as a plain length-prefixed string, never
// a distinct optional wire shape.
type GenericClass struct {
	Type             TaggedReferenceTypeID
	Signature        string
	GenericSignature *string
	Status           ClassStatus
}

func decodeOptionalGenericSignature(r *wire.Reader) (*string, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

func decodeGenericClass(r *wire.Reader) (GenericClass, error) {
	var c GenericClass
	var err error
	if c.Type, err = readTaggedReferenceTypeID(r); err != nil {
		return c, err
	}
	if c.Signature, err = r.ReadString(); err != nil {
		return c, err
	}
	if c.GenericSignature, err = decodeOptionalGenericSignature(r); err != nil {
		return c, err
	}
	status, err := r.ReadU32()
	c.Status = ClassStatus(status)
	return c, err
}

// AllClassesWithGeneric returns every loaded reference type along with its
// JNI and (if any) generic signature.
func (s *Session) AllClassesWithGeneric() ([]GenericClass, error) {
	return sendCommand(s, 1, 20, nil, func(r *wire.Reader) ([]GenericClass, error) {
		return wire.ReadSlice(r, decodeGenericClass)
	})
}

type instanceCountsRequest struct{ Types []ReferenceTypeID }

func (i instanceCountsRequest) encode(w *wire.Writer) error {
	return wire.WriteSlice(w, i.Types, func(w *wire.Writer, t ReferenceTypeID) error { return t.encode(w) })
}

// InstanceCounts returns the number of reachable instances of each given
// reference type, in the same order. Requires the CanGetInstanceInfo
// capability.
func (s *Session) InstanceCounts(types []ReferenceTypeID) ([]uint64, error) {
	return sendCommand(s, 1, 21, instanceCountsRequest{Types: types}, func(r *wire.Reader) ([]uint64, error) {
		return wire.ReadSlice(r, (*wire.Reader).ReadU64)
	})
}

// IDSizes queries the negotiated identifier widths. Callers must pass the
// result to Session.SetIDSizes before issuing any command that carries an
// identifier with a non-default width.
func (s *Session) IDSizes() (wire.IDSizes, error) {
	return sendCommand(s, 1, 7, nil, decodeIDSizesReply)
}

func decodeIDSizesReply(r *wire.Reader) (wire.IDSizes, error) {
	var sizes wire.IDSizes
	var err error
	var v uint32
	if v, err = r.ReadU32(); err != nil {
		return sizes, err
	}
	sizes.FieldIDSize = int(v)
	if v, err = r.ReadU32(); err != nil {
		return sizes, err
	}
	sizes.MethodIDSize = int(v)
	if v, err = r.ReadU32(); err != nil {
		return sizes, err
	}
	sizes.ObjectIDSize = int(v)
	if v, err = r.ReadU32(); err != nil {
		return sizes, err
	}
	sizes.ReferenceTypeIDSize = int(v)
	if v, err = r.ReadU32(); err != nil {
		return sizes, err
	}
	sizes.FrameIDSize = int(v)
	return sizes, nil
}

// decodeUnit is used for replies with no fields at all (the Rust '()'
// reply type).
func decodeUnit(r *wire.Reader) (struct{}, error) { return struct{}{}, nil }
