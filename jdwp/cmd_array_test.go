package jdwp

import (
	"bytes"
	"testing"

	"github.com/jdwpgo/jdwpgo/jdwp/wire"
	"github.com/stretchr/testify/require"
)

func TestArrayGetValuesRequestEncodesFields(t *testing.T) {
	sizes := sizesForTest()
	req := arrayGetValuesRequest{Array: ArrayID(9), FirstIndex: 2, Length: 5}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, req.encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	array, err := readObjectID(r)
	require.NoError(t, err)
	require.Equal(t, ObjectID(9), array)

	first, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(2), first)

	length, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(5), length)
}

func TestArraySetValuesRequestEncodesValueSlice(t *testing.T) {
	sizes := sizesForTest()
	req := arraySetValuesRequest{
		Array:      ArrayID(1),
		FirstIndex: 0,
		Values:     []Untagged{{Tag: TagInt, Int: 42}, {Tag: TagInt, Int: 43}},
	}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, req.encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	_, err := readObjectID(r)
	require.NoError(t, err)
	_, err = r.ReadU32()
	require.NoError(t, err)

	values, err := wire.ReadSlice(r, func(r *wire.Reader) (int32, error) { return r.ReadI32() })
	require.NoError(t, err)
	require.Equal(t, []int32{42, 43}, values)
}

func TestArrayNewInstanceRequestEncodesArrayTypeAndLength(t *testing.T) {
	sizes := sizesForTest()
	req := arrayNewInstanceRequest{ArrayType: ArrayTypeID(5), Length: 10}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, req.encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	at, err := readArrayTypeID(r)
	require.NoError(t, err)
	require.Equal(t, ArrayTypeID(5), at)

	length, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(10), length)
}

func TestDecodeArrayIDSkipsTagByte(t *testing.T) {
	sizes := sizesForTest()
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, w.WriteU8(byte(TagArray)))
	require.NoError(t, ArrayID(7).encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	got, err := decodeArrayID(r)
	require.NoError(t, err)
	require.Equal(t, ArrayID(7), got)
}
