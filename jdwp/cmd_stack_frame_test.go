package jdwp

import (
	"bytes"
	"testing"

	"github.com/jdwpgo/jdwpgo/jdwp/wire"
	"github.com/stretchr/testify/require"
)

func TestGetFrameValuesRequestEncodesSlotTags(t *testing.T) {
	sizes := sizesForTest()
	req := getFrameValuesRequest{
		Thread: ThreadID(1),
		Frame:  FrameID(2),
		Slots:  []SlotTag{{Slot: 0, Tag: TagInt}, {Slot: 1, Tag: TagObject}},
	}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, req.encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	thread, err := readThreadID(r)
	require.NoError(t, err)
	require.Equal(t, ThreadID(1), thread)

	frame, err := readFrameID(r)
	require.NoError(t, err)
	require.Equal(t, FrameID(2), frame)

	slots, err := wire.ReadSlice(r, func(r *wire.Reader) (SlotTag, error) {
		slot, err := r.ReadU32()
		if err != nil {
			return SlotTag{}, err
		}
		tag, err := r.ReadU8()
		return SlotTag{Slot: slot, Tag: Tag(tag)}, err
	})
	require.NoError(t, err)
	require.Equal(t, []SlotTag{{Slot: 0, Tag: TagInt}, {Slot: 1, Tag: TagObject}}, slots)
}

func TestSetFrameValuesRequestEncodesTaggedValues(t *testing.T) {
	sizes := sizesForTest()
	req := setFrameValuesRequest{
		Thread: ThreadID(3),
		Frame:  FrameID(4),
		Slots:  []slotValue{{Slot: 2, Value: Value{Tag: TagInt, Int: 99}}},
	}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, req.encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	_, err := readThreadID(r)
	require.NoError(t, err)
	_, err = readFrameID(r)
	require.NoError(t, err)

	count, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(1), count)

	slot, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(2), slot)

	value, err := readValue(r)
	require.NoError(t, err)
	require.Equal(t, int32(99), value.Int)
}
