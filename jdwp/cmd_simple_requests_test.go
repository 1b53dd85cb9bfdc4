package jdwp

import (
	"bytes"
	"testing"

	"github.com/jdwpgo/jdwpgo/jdwp/wire"
	"github.com/stretchr/testify/require"
)

func TestClassLoaderRequestEncodesLoader(t *testing.T) {
	sizes := sizesForTest()
	req := classLoaderRequest{ClassLoader: ClassLoaderID(4)}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, req.encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	got, err := readObjectID(r)
	require.NoError(t, err)
	require.Equal(t, ObjectID(4), got)
}

func TestClassObjectRequestEncodesClassObject(t *testing.T) {
	sizes := sizesForTest()
	req := classObjectRequest{ClassObject: ClassObjectID(6)}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, req.encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	got, err := readObjectID(r)
	require.NoError(t, err)
	require.Equal(t, ObjectID(6), got)
}

func TestInvokeInterfaceMethodRequestEncodesArgumentsAndOptions(t *testing.T) {
	sizes := sizesForTest()
	req := invokeInterfaceMethodRequest{
		Interface: InterfaceID(1),
		Thread:    ThreadID(2),
		Method:    MethodID(3),
		Arguments: []Value{{Tag: TagInt, Int: 5}},
		Options:   InvokeOptions(1),
	}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, req.encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	iface, err := readInterfaceID(r)
	require.NoError(t, err)
	require.Equal(t, InterfaceID(1), iface)

	thread, err := readThreadID(r)
	require.NoError(t, err)
	require.Equal(t, ThreadID(2), thread)

	method, err := readMethodID(r)
	require.NoError(t, err)
	require.Equal(t, MethodID(3), method)

	args, err := wire.ReadSlice(r, readValue)
	require.NoError(t, err)
	require.Len(t, args, 1)
	require.Equal(t, int32(5), args[0].Int)

	opts, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(1), opts)
}

func TestStringValueRequestEncodesStringObject(t *testing.T) {
	sizes := sizesForTest()
	req := stringValueRequest{StringObject: StringID(8)}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, req.encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	got, err := readObjectID(r)
	require.NoError(t, err)
	require.Equal(t, ObjectID(8), got)
}
