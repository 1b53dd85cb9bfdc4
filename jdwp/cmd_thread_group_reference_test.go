package jdwp

import (
	"bytes"
	"testing"

	"github.com/jdwpgo/jdwpgo/jdwp/wire"
	"github.com/stretchr/testify/require"
)

func TestDecodeThreadGroupChildrenReplyRoundTrip(t *testing.T) {
	sizes := sizesForTest()
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, wire.WriteSlice(w, []ThreadID{1, 2}, func(w *wire.Writer, id ThreadID) error { return id.encode(w) }))
	require.NoError(t, wire.WriteSlice(w, []ThreadGroupID{9}, func(w *wire.Writer, id ThreadGroupID) error { return id.encode(w) }))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	got, err := decodeThreadGroupChildrenReply(r)
	require.NoError(t, err)
	require.Equal(t, []ThreadID{1, 2}, got.ChildThreads)
	require.Equal(t, []ThreadGroupID{9}, got.ChildGroups)
}

func TestThreadGroupRequestEncodesGroup(t *testing.T) {
	sizes := sizesForTest()
	req := threadGroupRequest{Group: ThreadGroupID(6)}

	var buf bytes.Buffer
	w := wire.NewWriter(&buf, sizes)
	require.NoError(t, req.encode(w))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, sizes)
	got, err := readThreadGroupID(r)
	require.NoError(t, err)
	require.Equal(t, ThreadGroupID(6), got)
}
