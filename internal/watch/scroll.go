package watch

import (
	"fmt"
	"strings"

	"github.com/jdwpgo/jdwpgo/internal/tui"
)

// applyScrolling extracts the visible window of content for the event
// list.
func (m *Model) applyScrolling(content string, viewportHeight int) string {
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	if totalLines <= viewportHeight {
		return content
	}

	maxScroll := totalLines - viewportHeight
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}

	endPos := m.scroll + viewportHeight
	visibleLines := lines[m.scroll:endPos]

	if m.scroll > 0 || endPos < totalLines {
		scrollInfo := fmt.Sprintf("%s (line %d-%d of %d) %s",
			tui.MutedStyle.Render("▲"), m.scroll+1, endPos, totalLines, tui.MutedStyle.Render("▼"))
		if len(visibleLines) > 0 {
			visibleLines[len(visibleLines)-1] = scrollInfo
		}
	}

	return strings.Join(visibleLines, "\n")
}

func (m *Model) scrollUp(lines int) {
	m.scroll = max(m.scroll-lines, 0)
}

func (m *Model) scrollDown(lines int) {
	m.scroll += lines
}

func (m *Model) scrollToTop() {
	m.scroll = 0
}

// scrollToBottom pins the viewport to the end; applyScrolling clamps it to
// the real maximum once the content height is known.
func (m *Model) scrollToBottom() {
	m.scroll = len(m.eventLines())
}
