package watch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyMapShortHelpOrder(t *testing.T) {
	short := keys.ShortHelp()
	require.Len(t, short, 3)
	require.Equal(t, keys.Up, short[0])
	require.Equal(t, keys.Down, short[1])
	require.Equal(t, keys.Quit, short[2])
}

func TestKeyMapFullHelpGroups(t *testing.T) {
	full := keys.FullHelp()
	require.Len(t, full, 2)
	require.Len(t, full[0], 4)
	require.Len(t, full[1], 1)
}
