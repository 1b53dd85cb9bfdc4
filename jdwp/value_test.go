package jdwp

import (
	"bytes"
	"testing"

	"github.com/jdwpgo/jdwpgo/jdwp/wire"
	"github.com/stretchr/testify/require"
)

func sizesForTest() wire.IDSizes {
	return wire.IDSizes{
		FieldIDSize:         8,
		MethodIDSize:        8,
		ObjectIDSize:        8,
		ReferenceTypeIDSize: 8,
		FrameIDSize:         8,
	}
}

func TestValueRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    Value
	}{
		{"void", VoidValue()},
		{"byte", ByteValue(0x7F)},
		{"boolean true", BooleanValue(true)},
		{"boolean false", BooleanValue(false)},
		{"char", CharValue('A')},
		{"short", ShortValue(-32000)},
		{"int", IntValue(-1)},
		{"long", LongValue(1 << 40)},
		{"float", FloatValue(1.5)},
		{"double", DoubleValue(-2.25)},
		{"object", ObjectValue(ObjectID(0xCAFEBABE))},
	}

	sizes := sizesForTest()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := wire.NewWriter(&buf, sizes)
			require.NoError(t, tt.v.encode(w))
			require.NoError(t, w.Flush())

			r := wire.NewReader(&buf, sizes)
			got, err := readValue(r)
			require.NoError(t, err)
			require.Equal(t, tt.v, got)
		})
	}
}

func TestUntaggedOmitsTagByte(t *testing.T) {
	sizes := sizesForTest()
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, Untagged(IntValue(42)).encode(w))
	require.NoError(t, w.Flush())
	require.Len(t, buf.Bytes(), 4)

	r := wire.NewReader(&buf, sizes)
	got, err := readUntagged(r, TagInt)
	require.NoError(t, err)
	require.Equal(t, IntValue(42), got)
}

func TestReadOptionalValueAbsent(t *testing.T) {
	r := wire.NewReader(bytes.NewReader([]byte{0x00}), sizesForTest())
	v, present, err := readOptionalValue(r)
	require.NoError(t, err)
	require.False(t, present)
	require.Equal(t, Value{}, v)
}

func TestReadOptionalValuePresent(t *testing.T) {
	sizes := sizesForTest()
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, IntValue(7).encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	v, present, err := readOptionalValue(r)
	require.NoError(t, err)
	require.True(t, present)
	require.Equal(t, IntValue(7), v)
}

func TestTaggedObjectIDRoundTrip(t *testing.T) {
	sizes := sizesForTest()
	want := TaggedObjectID{Tag: TagThread, ID: ObjectID(0x1234)}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, want.encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	got, err := readTaggedObjectID(r)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadOptionalTaggedObjectIDAbsent(t *testing.T) {
	r := wire.NewReader(bytes.NewReader([]byte{0x00}), sizesForTest())
	_, present, err := readOptionalTaggedObjectID(r)
	require.NoError(t, err)
	require.False(t, present)
}

func TestLocationRoundTrip(t *testing.T) {
	sizes := sizesForTest()
	want := Location{
		DeclaringType: TaggedReferenceTypeID{TypeTag: TypeTagClass, ID: ReferenceTypeID(99)},
		Method:        MethodID(12345),
		Index:         7,
	}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, want.encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	got, err := readLocation(r)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadOptionalLocationAbsent(t *testing.T) {
	r := wire.NewReader(bytes.NewReader([]byte{0x00}), sizesForTest())
	_, present, err := readOptionalLocation(r)
	require.NoError(t, err)
	require.False(t, present)
}

func TestArrayRegionRoundTripInts(t *testing.T) {
	sizes := sizesForTest()
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, w.WriteU8(uint8(TagInt)))
	require.NoError(t, w.WriteU32(3))
	for _, v := range []int32{1, -2, 3} {
		require.NoError(t, w.WriteI32(v))
	}
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	region, err := readArrayRegion(r)
	require.NoError(t, err)
	require.Equal(t, TagInt, region.Tag)
	require.Equal(t, []int32{1, -2, 3}, region.Ints)
	require.Equal(t, 3, region.Len())
}

func TestArrayRegionRoundTripObjects(t *testing.T) {
	sizes := sizesForTest()
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, w.WriteU8(uint8(TagObject)))
	require.NoError(t, w.WriteU32(2))
	for _, id := range []ObjectID{1, 2} {
		require.NoError(t, TaggedObjectID{Tag: TagObject, ID: id}.encode(w))
	}
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	region, err := readArrayRegion(r)
	require.NoError(t, err)
	require.Len(t, region.Objects, 2)
	require.Equal(t, 2, region.Len())
}
