package jdwp

import (
	"bytes"
	"testing"

	"github.com/jdwpgo/jdwpgo/jdwp/wire"
	"github.com/stretchr/testify/require"
)

func TestAllRemainingFramesEncodesNegativeOne(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, wire.DefaultIDSizes)
	require.NoError(t, AllRemainingFrames().encode(w))
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, buf.Bytes())
}

func TestLimitFramesEncodesCount(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, wire.DefaultIDSizes)
	require.NoError(t, LimitFrames(3).encode(w))
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0, 0, 0, 3}, buf.Bytes())
}

func TestReadStackDepthUnknown(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, wire.DefaultIDSizes)
	require.NoError(t, w.WriteI32(-1))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, wire.DefaultIDSizes)
	depth, err := readStackDepth(r)
	require.NoError(t, err)
	require.True(t, depth.Unknown)
}

func TestReadStackDepthKnown(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, wire.DefaultIDSizes)
	require.NoError(t, w.WriteI32(4))
	require.NoError(t, w.Flush())

	r := wire.NewReader(&buf, wire.DefaultIDSizes)
	depth, err := readStackDepth(r)
	require.NoError(t, err)
	require.False(t, depth.Unknown)
	require.Equal(t, uint32(4), depth.Depth)
}
