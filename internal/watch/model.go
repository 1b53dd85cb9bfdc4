// Package watch implements jdwpctl's live composite-event viewer: a
// bubbletea program with a styled header, a scrolling event list, and an
// ntcharts sparkline, driven by a jdwp.Session.
package watch

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jdwpgo/jdwpgo/jdwp"
)

// eventRow is one flattened Event ready for display.
type eventRow struct {
	at      time.Time
	suspend jdwp.SuspendPolicy
	kind    jdwp.EventKind
	thread  jdwp.ThreadID
	detail  string
}

// Model is the bubbletea model for `jdwpctl watch`.
type Model struct {
	session *jdwp.Session
	addr    string

	started time.Time
	events  []eventRow
	spark   *sparkline
	bucket  int

	width, height int
	scroll        int

	connected bool
	quitting  bool

	help help.Model
}

type compositeMsg jdwp.Composite
type eventsClosedMsg struct{}
type tickMsg time.Time

// NewModel builds the initial watch Model for a session already attached
// to addr. The caller is responsible for issuing the event requests it
// wants streamed before starting the program.
func NewModel(session *jdwp.Session, addr string) *Model {
	return &Model{
		session:   session,
		addr:      addr,
		started:   time.Now(),
		spark:     newSparkline(40, 6),
		connected: true,
		help:      help.New(),
	}
}

// Run starts the bubbletea program in the alternate screen and blocks
// until the user quits or the connection drops.
func Run(session *jdwp.Session, addr string) error {
	model := NewModel(session, addr)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func waitForComposite(session *jdwp.Session) tea.Cmd {
	return func() tea.Msg {
		c, ok := <-session.Events()
		if !ok {
			return eventsClosedMsg{}
		}
		return compositeMsg(c)
	}
}

func tickEverySecond() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForComposite(m.session), tickEverySecond())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.spark.resize(max(m.width-4, 10), 6)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.scrollUp(1)
		case key.Matches(msg, keys.Down):
			m.scrollDown(1)
		case key.Matches(msg, keys.Top):
			m.scrollToTop()
		case key.Matches(msg, keys.Bottom):
			m.scrollToBottom()
		}
		return m, nil

	case compositeMsg:
		c := jdwp.Composite(msg)
		for _, e := range c.Events {
			m.events = append(m.events, eventRow{
				at:      time.Now(),
				suspend: c.SuspendPolicy,
				kind:    e.Kind,
				thread:  e.Thread,
				detail:  describeEvent(e),
			})
		}
		m.bucket += len(c.Events)
		m.scrollToBottom()
		return m, waitForComposite(m.session)

	case tickMsg:
		m.spark.push(time.Time(msg), float64(m.bucket))
		m.bucket = 0
		return m, tickEverySecond()

	case eventsClosedMsg:
		m.connected = false
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.quitting {
		return ""
	}

	header := m.renderHeader()
	spark := m.spark.view()
	helpView := m.help.View(keys)

	headerHeight := lipgloss.Height(header)
	sparkHeight := lipgloss.Height(spark)
	helpHeight := lipgloss.Height(helpView)

	listHeight := max(m.height-headerHeight-sparkHeight-helpHeight-1, 1)
	list := m.applyScrolling(m.renderEventList(), listHeight)

	return lipgloss.JoinVertical(lipgloss.Left, header, spark, list, helpView)
}
