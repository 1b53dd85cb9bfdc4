package jdwp

// ErrorCode is a JDWP reply error code. Zero means the command succeeded.
type ErrorCode uint16

const (
	ErrNone                           ErrorCode = 0
	ErrInvalidThread                  ErrorCode = 10
	ErrInvalidThreadGroup             ErrorCode = 11
	ErrInvalidPriority                ErrorCode = 12
	ErrThreadNotSuspended             ErrorCode = 13
	ErrThreadSuspended                ErrorCode = 14
	ErrThreadNotAlive                 ErrorCode = 15
	ErrInvalidObject                  ErrorCode = 20
	ErrInvalidClass                   ErrorCode = 21
	ErrClassNotPrepared                ErrorCode = 22
	ErrInvalidMethodID                ErrorCode = 23
	ErrInvalidLocation                ErrorCode = 24
	ErrInvalidFieldID                 ErrorCode = 25
	ErrInvalidFrameID                 ErrorCode = 30
	ErrNoMoreFrames                   ErrorCode = 31
	ErrOpaqueFrame                    ErrorCode = 32
	ErrNotCurrentFrame                ErrorCode = 33
	ErrTypeMismatch                   ErrorCode = 34
	ErrInvalidSlot                    ErrorCode = 35
	ErrDuplicate                      ErrorCode = 40
	ErrNotFound                       ErrorCode = 41
	ErrInvalidMonitor                 ErrorCode = 50
	ErrNotMonitorOwner                ErrorCode = 51
	ErrInterrupt                      ErrorCode = 52
	ErrInvalidClassFormat             ErrorCode = 60
	ErrCircularClassDefinition        ErrorCode = 61
	ErrFailsVerification              ErrorCode = 62
	ErrAddMethodNotImplemented        ErrorCode = 63
	ErrSchemaChangeNotImplemented     ErrorCode = 64
	ErrInvalidTypestate               ErrorCode = 65
	ErrHierarchyChangeNotImplemented  ErrorCode = 66
	ErrDeleteMethodNotImplemented     ErrorCode = 67
	ErrUnsupportedVersion             ErrorCode = 68
	ErrNamesDontMatch                 ErrorCode = 69
	ErrClassModifiersChangeNotImplemented   ErrorCode = 70
	ErrMethodModifiersChangeNotImplemented  ErrorCode = 71
	ErrClassAttributeChangeNotImplemented   ErrorCode = 72
	ErrNotImplemented                 ErrorCode = 99
	ErrNullPointer                    ErrorCode = 100
	ErrAbsentInformation              ErrorCode = 101
	ErrInvalidEventType                ErrorCode = 102
	ErrIllegalArgument                ErrorCode = 103
	ErrOutOfMemory                    ErrorCode = 110
	ErrAccessDenied                   ErrorCode = 111
	ErrVMDead                         ErrorCode = 112
	ErrInternal                       ErrorCode = 113
	ErrUnattachedThread               ErrorCode = 115
	ErrInvalidTag                     ErrorCode = 500
	ErrAlreadyInvoking                ErrorCode = 502
	ErrInvalidIndex                   ErrorCode = 503
	ErrInvalidLength                  ErrorCode = 504
	ErrInvalidString                  ErrorCode = 505
	ErrInvalidClassLoader             ErrorCode = 506
	ErrInvalidArray                   ErrorCode = 507
	ErrTransportLoad                  ErrorCode = 508
	ErrTransportInit                  ErrorCode = 509
	ErrNativeMethod                   ErrorCode = 511
	ErrInvalidCount                   ErrorCode = 512
)

// EventKind identifies the kind of a single event inside a Composite event.
type EventKind uint8

const (
	EventSingleStep          EventKind = 1
	EventBreakpoint           EventKind = 2
	EventFramePop             EventKind = 3
	EventException            EventKind = 4
	EventUserDefined          EventKind = 5
	EventThreadStart          EventKind = 6
	EventThreadDeath          EventKind = 7
	EventClassPrepare         EventKind = 8
	EventClassUnload          EventKind = 9
	EventClassLoad            EventKind = 10
	EventFieldAccess          EventKind = 20
	EventFieldModification    EventKind = 21
	EventExceptionCatch       EventKind = 30
	EventMethodEntry          EventKind = 40
	EventMethodExit           EventKind = 41
	EventMethodExitWithReturnValue EventKind = 42
	EventMonitorContendedEnter    EventKind = 43
	EventMonitorContendedEntered  EventKind = 44
	EventMonitorWait          EventKind = 45
	EventMonitorWaited        EventKind = 46
	EventVMStart              EventKind = 90
	EventVMDeath              EventKind = 99
	// EventVMDisconnected is never actually sent across the wire; the host
	// uses it internally to signal the client library that the connection
	// has gone away.
	EventVMDisconnected EventKind = 100
)

// ThreadStatus is the thread state returned by ThreadReference.Status.
type ThreadStatus uint32

const (
	ThreadZombie  ThreadStatus = 0
	ThreadRunning ThreadStatus = 1
	ThreadSleeping ThreadStatus = 2
	ThreadMonitor ThreadStatus = 3
	ThreadWait    ThreadStatus = 4
)

// SuspendStatus is the suspend bit returned alongside ThreadStatus.
type SuspendStatus uint32

const (
	NotSuspended SuspendStatus = 0
	Suspended    SuspendStatus = 1
)

// ClassStatus is a bitmask describing a reference type's preparation state.
type ClassStatus uint32

const (
	ClassVerified    ClassStatus = 1
	ClassPrepared    ClassStatus = 2
	ClassInitialized ClassStatus = 4
	ClassError       ClassStatus = 8
)

// TypeTag identifies the kind of reference type an ID refers to.
type TypeTag uint8

const (
	TypeTagClass     TypeTag = 1
	TypeTagInterface TypeTag = 2
	TypeTagArray     TypeTag = 3
)

// Tag identifies the kind of a Value or a TaggedObjectID.
type Tag uint8

const (
	TagArray       Tag = 91  // '['
	TagByte        Tag = 66  // 'B'
	TagChar        Tag = 67  // 'C'
	TagObject      Tag = 76  // 'L'
	TagFloat       Tag = 70  // 'F'
	TagDouble      Tag = 68  // 'D'
	TagInt         Tag = 73  // 'I'
	TagLong        Tag = 74  // 'J'
	TagShort       Tag = 83  // 'S'
	TagVoid        Tag = 86  // 'V'
	TagBoolean     Tag = 90  // 'Z'
	TagString      Tag = 115 // 's'
	TagThread      Tag = 116 // 't'
	TagThreadGroup Tag = 103 // 'g'
	TagClassLoader Tag = 108 // 'l'
	TagClassObject Tag = 99  // 'c'
)

// StepDepth controls how far a single-step event request steps.
type StepDepth uint32

const (
	StepInto StepDepth = 0
	StepOver StepDepth = 1
	StepOut  StepDepth = 2
)

// StepSize controls the granularity of a single-step event request.
type StepSize uint32

const (
	StepMin  StepSize = 0
	StepLine StepSize = 1
)

// SuspendPolicy controls which threads an event request suspends.
type SuspendPolicy uint8

const (
	SuspendNone        SuspendPolicy = 0
	SuspendEventThread SuspendPolicy = 1
	SuspendAll         SuspendPolicy = 2
)

// InvokeOptions is a bitmask passed to the *.InvokeMethod/NewInstance commands.
type InvokeOptions uint32

const (
	InvokeNone           InvokeOptions = 0x00
	InvokeSingleThreaded InvokeOptions = 0x01
	InvokeNonvirtual     InvokeOptions = 0x02
)

// ModifierKind identifies the wire shape of a single event request Modifier.
type ModifierKind uint8

const (
	ModifierCount            ModifierKind = 1
	ModifierConditional      ModifierKind = 2
	ModifierThreadOnly       ModifierKind = 3
	ModifierClassOnly        ModifierKind = 4
	ModifierClassMatch       ModifierKind = 5
	ModifierClassExclude     ModifierKind = 6
	ModifierLocationOnly     ModifierKind = 7
	ModifierExceptionOnly    ModifierKind = 8
	ModifierFieldOnly        ModifierKind = 9
	ModifierStep             ModifierKind = 10
	ModifierInstanceOnly     ModifierKind = 11
	ModifierSourceNameMatch  ModifierKind = 12
)

// TypeModifiers is the access_flags bitmask returned for a reference type.
type TypeModifiers uint32

const (
	TypePublic    TypeModifiers = 0x0001
	TypeFinal     TypeModifiers = 0x0010
	TypeSuper     TypeModifiers = 0x0020
	TypeInterface TypeModifiers = 0x0200
	TypeAbstract  TypeModifiers = 0x0400
	TypeSynthetic TypeModifiers = 0x1000
	TypeAnnotation TypeModifiers = 0x2000
	TypeEnum      TypeModifiers = 0x4000
)

// FieldModifiers is the access_flags bitmask returned for a field.
type FieldModifiers uint32

const (
	FieldPublic    FieldModifiers = 0x0001
	FieldPrivate   FieldModifiers = 0x0002
	FieldProtected FieldModifiers = 0x0004
	FieldStatic    FieldModifiers = 0x0008
	FieldFinal     FieldModifiers = 0x0010
	FieldVolatile  FieldModifiers = 0x0040
	FieldTransient FieldModifiers = 0x0080
	FieldSynthetic FieldModifiers = 0x1000
	FieldEnum      FieldModifiers = 0x4000
)

// MethodModifiers is the access_flags bitmask returned for a method.
type MethodModifiers uint32

const (
	MethodPublic       MethodModifiers = 0x0001
	MethodPrivate      MethodModifiers = 0x0002
	MethodProtected    MethodModifiers = 0x0004
	MethodStatic       MethodModifiers = 0x0008
	MethodFinal        MethodModifiers = 0x0010
	MethodSynchronized MethodModifiers = 0x0020
	MethodBridge       MethodModifiers = 0x0040
	MethodVarargs      MethodModifiers = 0x0080
	MethodNative       MethodModifiers = 0x0100
	MethodAbstract     MethodModifiers = 0x0400
	MethodStrict       MethodModifiers = 0x0800
	MethodSynthetic    MethodModifiers = 0x1000
)
