package watch

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jdwpgo/jdwpgo/jdwp"
	"github.com/stretchr/testify/require"
)

func TestUpdateWindowSizeMsgResizesSparkline(t *testing.T) {
	m := &Model{spark: newSparkline(10, 6)}
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Nil(t, cmd)

	mm := updated.(*Model)
	require.Equal(t, 100, mm.width)
	require.Equal(t, 40, mm.height)
	require.Equal(t, 96, mm.spark.width)
}

func TestUpdateQuitKeySetsQuitting(t *testing.T) {
	m := &Model{spark: newSparkline(10, 6)}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestUpdateScrollKeysAdjustScroll(t *testing.T) {
	m := &Model{spark: newSparkline(10, 6), events: []eventRow{{}, {}, {}}}

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.Equal(t, 1, m.scroll)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	require.Equal(t, 0, m.scroll)
}

func TestUpdateCompositeMsgAppendsEvents(t *testing.T) {
	m := &Model{session: nil, spark: newSparkline(10, 6)}
	composite := jdwp.Composite{
		SuspendPolicy: jdwp.SuspendNone,
		Events:        []jdwp.Event{{Kind: jdwp.EventThreadStart, Thread: jdwp.ThreadID(1)}},
	}

	updated, _ := m.Update(compositeMsg(composite))
	mm := updated.(*Model)

	require.Len(t, mm.events, 1)
	require.Equal(t, jdwp.EventThreadStart, mm.events[0].kind)
	require.Equal(t, 1, mm.bucket)
}

func TestUpdateEventsClosedMsgMarksDisconnected(t *testing.T) {
	m := &Model{connected: true, spark: newSparkline(10, 6)}
	updated, cmd := m.Update(eventsClosedMsg{})
	require.Nil(t, cmd)
	require.False(t, updated.(*Model).connected)
}
