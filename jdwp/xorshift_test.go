package jdwp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXorshift32DefaultSeedYieldsDistinctNonZeroValues(t *testing.T) {
	x := newXorshift32(defaultRequestIDSeed)

	first := x.next()
	second := x.next()

	require.NotEqual(t, first, second)
	require.NotZero(t, first)
}

func TestXorshift32IsDeterministic(t *testing.T) {
	a := newXorshift32(12345)
	b := newXorshift32(12345)

	for i := 0; i < 10; i++ {
		require.Equal(t, a.next(), b.next())
	}
}

func TestXorshift32DifferentSeedsDiverge(t *testing.T) {
	a := newXorshift32(1)
	b := newXorshift32(2)

	require.NotEqual(t, a.next(), b.next())
}
