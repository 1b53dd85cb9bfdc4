package jdwp

import (
	"fmt"

	"github.com/jdwpgo/jdwpgo/jdwp/wire"
)

// Value is a tagged JDWP value: one byte identifying the kind, followed by
// the payload for that kind (object values carry an ObjectID; Void carries
// nothing).
type Value struct {
	Tag     Tag
	Byte    byte
	Boolean bool
	Char    uint16
	Short   int16
	Int     int32
	Long    int64
	Float   float32
	Double  float64
	Object  ObjectID
}

func VoidValue() Value                  { return Value{Tag: TagVoid} }
func ByteValue(v byte) Value            { return Value{Tag: TagByte, Byte: v} }
func BooleanValue(v bool) Value         { return Value{Tag: TagBoolean, Boolean: v} }
func CharValue(v uint16) Value          { return Value{Tag: TagChar, Char: v} }
func ShortValue(v int16) Value          { return Value{Tag: TagShort, Short: v} }
func IntValue(v int32) Value            { return Value{Tag: TagInt, Int: v} }
func LongValue(v int64) Value           { return Value{Tag: TagLong, Long: v} }
func FloatValue(v float32) Value        { return Value{Tag: TagFloat, Float: v} }
func DoubleValue(v float64) Value       { return Value{Tag: TagDouble, Double: v} }
func ObjectValue(v ObjectID) Value       { return Value{Tag: TagObject, Object: v} }

func (v Value) encode(w *wire.Writer) error {
	if err := w.WriteU8(uint8(v.Tag)); err != nil {
		return err
	}
	return writeUntagged(w, v)
}

// writeUntagged writes v's payload with no leading tag byte, used both by
// Value.encode and by Untagged for fields whose tag is implied elsewhere.
func writeUntagged(w *wire.Writer, v Value) error {
	switch v.Tag {
	case TagVoid:
		return nil
	case TagByte:
		return w.WriteU8(v.Byte)
	case TagBoolean:
		return w.WriteBool(v.Boolean)
	case TagChar:
		return w.WriteU16(v.Char)
	case TagShort:
		return w.WriteI16(v.Short)
	case TagInt:
		return w.WriteI32(v.Int)
	case TagLong:
		return w.WriteI64(v.Long)
	case TagFloat:
		return w.WriteF32(v.Float)
	case TagDouble:
		return w.WriteF64(v.Double)
	case TagObject, TagString, TagThread, TagThreadGroup, TagClassLoader, TagClassObject, TagArray:
		return v.Object.encode(w)
	default:
		return fmt.Errorf("jdwp: unknown value tag %#x", v.Tag)
	}
}

// Untagged wraps a Value so it encodes without its leading tag byte, for
// request fields whose value kind is implied by context (e.g. SetValue's
// target field type).
type Untagged Value

func (u Untagged) encode(w *wire.Writer) error { return writeUntagged(w, Value(u)) }

func readUntagged(r *wire.Reader, tag Tag) (Value, error) {
	v := Value{Tag: tag}
	var err error
	switch tag {
	case TagVoid:
	case TagByte:
		v.Byte, err = r.ReadU8()
	case TagBoolean:
		v.Boolean, err = r.ReadBool()
	case TagChar:
		v.Char, err = r.ReadU16()
	case TagShort:
		v.Short, err = r.ReadI16()
	case TagInt:
		v.Int, err = r.ReadI32()
	case TagLong:
		v.Long, err = r.ReadI64()
	case TagFloat:
		v.Float, err = r.ReadF32()
	case TagDouble:
		v.Double, err = r.ReadF64()
	case TagObject, TagString, TagThread, TagThreadGroup, TagClassLoader, TagClassObject, TagArray:
		v.Object, err = readObjectID(r)
	default:
		return Value{}, fmt.Errorf("jdwp: unknown value tag %#x", tag)
	}
	return v, err
}

func readValue(r *wire.Reader) (Value, error) {
	tagByte, err := r.ReadU8()
	if err != nil {
		return Value{}, err
	}
	return readUntagged(r, Tag(tagByte))
}

// readOptionalValue implements the peek-based decoding of an optional
// tagged value: a leading zero byte means absent, otherwise the byte is
// the tag and decoding proceeds normally.
func readOptionalValue(r *wire.Reader) (Value, bool, error) {
	b, err := r.PeekByte()
	if err != nil {
		return Value{}, false, err
	}
	if b == 0 {
		if _, err := r.ReadByte(); err != nil {
			return Value{}, false, err
		}
		return Value{}, false, nil
	}
	v, err := readValue(r)
	return v, true, err
}

// TaggedObjectID is an ObjectID together with the Tag describing which
// object subtype it refers to (Array, Object, String, Thread,
// ThreadGroup, ClassLoader or ClassObject).
type TaggedObjectID struct {
	Tag Tag
	ID  ObjectID
}

func (t TaggedObjectID) encode(w *wire.Writer) error {
	if err := w.WriteU8(uint8(t.Tag)); err != nil {
		return err
	}
	return t.ID.encode(w)
}

func readTaggedObjectID(r *wire.Reader) (TaggedObjectID, error) {
	tagByte, err := r.ReadU8()
	if err != nil {
		return TaggedObjectID{}, err
	}
	id, err := readObjectID(r)
	if err != nil {
		return TaggedObjectID{}, err
	}
	return TaggedObjectID{Tag: Tag(tagByte), ID: id}, nil
}

// readOptionalTaggedObjectID implements the peek-based Option<TaggedObjectID>
// decoding rule: a leading zero byte means absent.
func readOptionalTaggedObjectID(r *wire.Reader) (TaggedObjectID, bool, error) {
	b, err := r.PeekByte()
	if err != nil {
		return TaggedObjectID{}, false, err
	}
	if b == 0 {
		if _, err := r.ReadByte(); err != nil {
			return TaggedObjectID{}, false, err
		}
		return TaggedObjectID{}, false, nil
	}
	v, err := readTaggedObjectID(r)
	return v, true, err
}

// TaggedReferenceTypeID is a ReferenceTypeID together with the TypeTag
// describing whether it names a class, an interface or an array type.
type TaggedReferenceTypeID struct {
	TypeTag TypeTag
	ID      ReferenceTypeID
}

func (t TaggedReferenceTypeID) encode(w *wire.Writer) error {
	if err := w.WriteU8(uint8(t.TypeTag)); err != nil {
		return err
	}
	return t.ID.encode(w)
}

func readTaggedReferenceTypeID(r *wire.Reader) (TaggedReferenceTypeID, error) {
	tagByte, err := r.ReadU8()
	if err != nil {
		return TaggedReferenceTypeID{}, err
	}
	id, err := readReferenceTypeID(r)
	if err != nil {
		return TaggedReferenceTypeID{}, err
	}
	return TaggedReferenceTypeID{TypeTag: TypeTag(tagByte), ID: id}, nil
}

// readOptionalTaggedReferenceTypeID implements the same peek rule as
// Option<TaggedObjectID>, for a possibly-absent declaring type.
func readOptionalTaggedReferenceTypeID(r *wire.Reader) (TaggedReferenceTypeID, bool, error) {
	b, err := r.PeekByte()
	if err != nil {
		return TaggedReferenceTypeID{}, false, err
	}
	if b == 0 {
		if _, err := r.ReadByte(); err != nil {
			return TaggedReferenceTypeID{}, false, err
		}
		return TaggedReferenceTypeID{}, false, nil
	}
	v, err := readTaggedReferenceTypeID(r)
	return v, true, err
}

// Location identifies an executable position: the declaring type, the
// method, and a byte-code index within it.
type Location struct {
	DeclaringType TaggedReferenceTypeID
	Method        MethodID
	Index         uint64
}

func (l Location) encode(w *wire.Writer) error {
	if err := l.DeclaringType.encode(w); err != nil {
		return err
	}
	if err := l.Method.encode(w); err != nil {
		return err
	}
	return w.WriteU64(l.Index)
}

func readLocation(r *wire.Reader) (Location, error) {
	dt, err := readTaggedReferenceTypeID(r)
	if err != nil {
		return Location{}, err
	}
	m, err := readMethodID(r)
	if err != nil {
		return Location{}, err
	}
	idx, err := r.ReadU64()
	if err != nil {
		return Location{}, err
	}
	return Location{DeclaringType: dt, Method: m, Index: idx}, nil
}

// readOptionalLocation peeks the TypeTag of the embedded TaggedReferenceTypeID:
// a leading zero byte means the whole Location is absent.
func readOptionalLocation(r *wire.Reader) (Location, bool, error) {
	dt, present, err := readOptionalTaggedReferenceTypeID(r)
	if err != nil || !present {
		return Location{}, present, err
	}
	m, err := readMethodID(r)
	if err != nil {
		return Location{}, false, err
	}
	idx, err := r.ReadU64()
	if err != nil {
		return Location{}, false, err
	}
	return Location{DeclaringType: dt, Method: m, Index: idx}, true, nil
}

// ArrayRegion is a homogeneous, tagged slice of values returned from
// ArrayReference.GetValues. Primitive variants store unboxed Go slices;
// Object stores a slice of TaggedObjectID.
type ArrayRegion struct {
	Tag      Tag
	Bytes    []byte
	Booleans []bool
	Chars    []uint16
	Shorts   []int16
	Ints     []int32
	Longs    []int64
	Floats   []float32
	Doubles  []float64
	Objects  []TaggedObjectID
}

func (a ArrayRegion) Len() int {
	switch a.Tag {
	case TagByte:
		return len(a.Bytes)
	case TagBoolean:
		return len(a.Booleans)
	case TagChar:
		return len(a.Chars)
	case TagShort:
		return len(a.Shorts)
	case TagInt:
		return len(a.Ints)
	case TagLong:
		return len(a.Longs)
	case TagFloat:
		return len(a.Floats)
	case TagDouble:
		return len(a.Doubles)
	default:
		return len(a.Objects)
	}
}

func readArrayRegion(r *wire.Reader) (ArrayRegion, error) {
	tagByte, err := r.ReadU8()
	if err != nil {
		return ArrayRegion{}, err
	}
	tag := Tag(tagByte)
	n, err := r.ReadU32()
	if err != nil {
		return ArrayRegion{}, err
	}
	out := ArrayRegion{Tag: tag}
	for i := uint32(0); i < n; i++ {
		switch tag {
		case TagByte:
			v, err := r.ReadU8()
			if err != nil {
				return ArrayRegion{}, err
			}
			out.Bytes = append(out.Bytes, v)
		case TagBoolean:
			v, err := r.ReadBool()
			if err != nil {
				return ArrayRegion{}, err
			}
			out.Booleans = append(out.Booleans, v)
		case TagChar:
			v, err := r.ReadU16()
			if err != nil {
				return ArrayRegion{}, err
			}
			out.Chars = append(out.Chars, v)
		case TagShort:
			v, err := r.ReadI16()
			if err != nil {
				return ArrayRegion{}, err
			}
			out.Shorts = append(out.Shorts, v)
		case TagInt:
			v, err := r.ReadI32()
			if err != nil {
				return ArrayRegion{}, err
			}
			out.Ints = append(out.Ints, v)
		case TagLong:
			v, err := r.ReadI64()
			if err != nil {
				return ArrayRegion{}, err
			}
			out.Longs = append(out.Longs, v)
		case TagFloat:
			v, err := r.ReadF32()
			if err != nil {
				return ArrayRegion{}, err
			}
			out.Floats = append(out.Floats, v)
		case TagDouble:
			v, err := r.ReadF64()
			if err != nil {
				return ArrayRegion{}, err
			}
			out.Doubles = append(out.Doubles, v)
		default:
			v, err := readTaggedObjectID(r)
			if err != nil {
				return ArrayRegion{}, err
			}
			out.Objects = append(out.Objects, v)
		}
	}
	return out, nil
}
