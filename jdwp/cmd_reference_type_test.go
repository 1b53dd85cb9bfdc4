package jdwp

import (
	"bytes"
	"testing"

	"github.com/jdwpgo/jdwpgo/jdwp/wire"
	"github.com/stretchr/testify/require"
)

func TestAllInstancesEncodesZero(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, wire.DefaultIDSizes)
	require.NoError(t, AllInstances().encode(w))
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0, 0, 0, 0}, buf.Bytes())
}

func TestLimitInstancesEncodesCount(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, wire.DefaultIDSizes)
	require.NoError(t, LimitInstances(5).encode(w))
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0, 0, 0, 5}, buf.Bytes())
}

func TestLimitInstancesPanicsOnZero(t *testing.T) {
	require.Panics(t, func() { LimitInstances(0) })
}
