package jdwp

import (
	"bytes"
	"testing"

	"github.com/jdwpgo/jdwpgo/jdwp/wire"
	"github.com/stretchr/testify/require"
)

func TestDecodeInvokeMethodReplyWithValue(t *testing.T) {
	sizes := sizesForTest()
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, Value{Tag: TagInt, Int: 7}.encode(w))
	require.NoError(t, w.WriteU8(0)) // no exception

	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	got, err := decodeInvokeMethodReply(r)
	require.NoError(t, err)
	require.NotNil(t, got.Value)
	require.Equal(t, int32(7), got.Value.Int)
	require.Nil(t, got.Exception)
}

func TestDecodeInvokeMethodReplyWithException(t *testing.T) {
	sizes := sizesForTest()
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, w.WriteU8(0)) // no value
	require.NoError(t, w.WriteU8(byte(TagObject)))
	require.NoError(t, ObjectID(5).encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	got, err := decodeInvokeMethodReply(r)
	require.NoError(t, err)
	require.Nil(t, got.Value)
	require.NotNil(t, got.Exception)
	require.Equal(t, ObjectID(5), got.Exception.ID)
}

func TestDecodeNewInstanceReplyWithNewObject(t *testing.T) {
	sizes := sizesForTest()
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, w.WriteU8(byte(TagObject)))
	require.NoError(t, ObjectID(11).encode(w))
	require.NoError(t, w.WriteU8(0))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	got, err := decodeNewInstanceReply(r)
	require.NoError(t, err)
	require.NotNil(t, got.NewObject)
	require.Equal(t, ObjectID(11), got.NewObject.ID)
	require.Nil(t, got.Exception)
}

func TestSetStaticValuesRequestEncodesFieldValuePairs(t *testing.T) {
	sizes := sizesForTest()
	req := setStaticValuesRequest{
		Class:  ClassID(1),
		Values: []staticFieldValue{{Field: FieldID(2), Value: Untagged{Tag: TagInt, Int: 9}}},
	}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, req.encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	class, err := readClassID(r)
	require.NoError(t, err)
	require.Equal(t, ClassID(1), class)

	count, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(1), count)

	field, err := readFieldID(r)
	require.NoError(t, err)
	require.Equal(t, FieldID(2), field)

	value, err := r.ReadI32()
	require.NoError(t, err)
	require.Equal(t, int32(9), value)
}
