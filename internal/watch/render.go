package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jdwpgo/jdwpgo/internal/tui"
	"github.com/jdwpgo/jdwpgo/jdwp"
	"github.com/jdwpgo/jdwpgo/utils"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(tui.InfoColor).
	Padding(0, 1)

func (m *Model) renderHeader() string {
	title := fmt.Sprintf("jdwpctl watch  %s", m.addr)

	var status string
	if m.connected {
		status = tui.GoodStyle.Render(fmt.Sprintf("connected  up %s  %d events", uptime(m.started), len(m.events)))
	} else {
		status = tui.CriticalStyle.Render("disconnected")
	}

	line := headerStyle.Width(m.width).Render(title + "  " + status)
	bar := tui.CreateHorizontalBar(
		tui.BarData{
			Label:      "event queue",
			Value:      float64(len(m.session.Events())),
			Percentage: queueFillPercent(m.session.Events()),
			Style:      tui.InfoStyle,
			Suffix:     "buffered",
		},
		tui.DefaultBarConfig(max(m.width-40, 10)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, line, bar)
}

func queueFillPercent(events <-chan jdwp.Composite) float64 {
	capacity := cap(events)
	if capacity == 0 {
		return 0
	}
	return 100 * float64(len(events)) / float64(capacity)
}

func uptime(since time.Time) string {
	return utils.FormatDuration(time.Since(since))
}

func (m *Model) eventLines() []string {
	lines := make([]string, 0, len(m.events))
	for _, row := range m.events {
		lines = append(lines, formatEventRow(row))
	}
	return lines
}

func (m *Model) renderEventList() string {
	lines := m.eventLines()
	if len(lines) == 0 {
		return tui.MutedStyle.Render("no events yet")
	}
	return strings.Join(lines, "\n")
}

func formatEventRow(row eventRow) string {
	return fmt.Sprintf("%s  %-26s  thread=%d  suspend=%s  %s",
		row.at.Format("15:04:05.000"),
		eventKindName(row.kind),
		row.thread,
		suspendPolicyName(row.suspend),
		row.detail)
}

func eventKindName(k jdwp.EventKind) string {
	switch k {
	case jdwp.EventSingleStep:
		return "SingleStep"
	case jdwp.EventBreakpoint:
		return "Breakpoint"
	case jdwp.EventFramePop:
		return "FramePop"
	case jdwp.EventException:
		return "Exception"
	case jdwp.EventUserDefined:
		return "UserDefined"
	case jdwp.EventThreadStart:
		return "ThreadStart"
	case jdwp.EventThreadDeath:
		return "ThreadDeath"
	case jdwp.EventClassPrepare:
		return "ClassPrepare"
	case jdwp.EventClassUnload:
		return "ClassUnload"
	case jdwp.EventClassLoad:
		return "ClassLoad"
	case jdwp.EventFieldAccess:
		return "FieldAccess"
	case jdwp.EventFieldModification:
		return "FieldModification"
	case jdwp.EventExceptionCatch:
		return "ExceptionCatch"
	case jdwp.EventMethodEntry:
		return "MethodEntry"
	case jdwp.EventMethodExit:
		return "MethodExit"
	case jdwp.EventMethodExitWithReturnValue:
		return "MethodExitWithReturnValue"
	case jdwp.EventMonitorContendedEnter:
		return "MonitorContendedEnter"
	case jdwp.EventMonitorContendedEntered:
		return "MonitorContendedEntered"
	case jdwp.EventMonitorWait:
		return "MonitorWait"
	case jdwp.EventMonitorWaited:
		return "MonitorWaited"
	case jdwp.EventVMStart:
		return "VMStart"
	case jdwp.EventVMDeath:
		return "VMDeath"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

func suspendPolicyName(p jdwp.SuspendPolicy) string {
	switch p {
	case jdwp.SuspendNone:
		return "none"
	case jdwp.SuspendEventThread:
		return "thread"
	case jdwp.SuspendAll:
		return "all"
	default:
		return fmt.Sprintf("%d", p)
	}
}

func describeEvent(e jdwp.Event) string {
	switch e.Kind {
	case jdwp.EventClassPrepare:
		return fmt.Sprintf("class=%s status=%d", e.Signature, e.Status)
	case jdwp.EventClassUnload:
		return fmt.Sprintf("class=%s", e.Signature)
	case jdwp.EventException:
		detail := fmt.Sprintf("exception=%d at=%d", e.Exception.ID, e.Location.Method)
		if e.HasCatchLocation {
			detail += fmt.Sprintf(" caught-at=%d", e.CatchLocation.Method)
		} else {
			detail += " uncaught"
		}
		return detail
	case jdwp.EventBreakpoint, jdwp.EventSingleStep, jdwp.EventMethodEntry, jdwp.EventMethodExit:
		return fmt.Sprintf("method=%d index=%d", e.Location.Method, e.Location.Index)
	default:
		return ""
	}
}
