package watch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyScrollingFitsWithoutClipping(t *testing.T) {
	m := &Model{}
	content := "a\nb\nc"
	require.Equal(t, content, m.applyScrolling(content, 5))
}

func TestApplyScrollingClipsToViewport(t *testing.T) {
	m := &Model{}
	content := strings.Join([]string{"1", "2", "3", "4", "5"}, "\n")
	out := m.applyScrolling(content, 2)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "1", lines[0])
}

func TestScrollUpClampsAtZero(t *testing.T) {
	m := &Model{scroll: 2}
	m.scrollUp(5)
	require.Equal(t, 0, m.scroll)
}

func TestScrollDownAccumulates(t *testing.T) {
	m := &Model{scroll: 1}
	m.scrollDown(3)
	require.Equal(t, 4, m.scroll)
}

func TestScrollToTop(t *testing.T) {
	m := &Model{scroll: 10}
	m.scrollToTop()
	require.Equal(t, 0, m.scroll)
}

func TestScrollToBottomTracksEventCount(t *testing.T) {
	m := &Model{events: []eventRow{{}, {}, {}}}
	m.scrollToBottom()
	require.Equal(t, 3, m.scroll)
}

func TestApplyScrollingClampsScrollPastEnd(t *testing.T) {
	m := &Model{scroll: 100}
	content := strings.Join([]string{"1", "2", "3"}, "\n")
	out := m.applyScrolling(content, 2)
	require.Equal(t, 2, strings.Count(out, "\n")+1)
}
