package watch

import (
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/jdwpgo/jdwpgo/internal/tui"
)

// sparkline renders the last few minutes of event throughput as a small
// braille line chart.
type sparkline struct {
	width, height int
	points        []timeserieslinechart.TimePoint
	maxPoints     int
}

func newSparkline(width, height int) *sparkline {
	return &sparkline{width: width, height: height, maxPoints: 300}
}

// push records one bucket's event count at t.
func (s *sparkline) push(t time.Time, count float64) {
	s.points = append(s.points, timeserieslinechart.TimePoint{Time: t, Value: count})
	if len(s.points) > s.maxPoints {
		s.points = s.points[len(s.points)-s.maxPoints:]
	}
}

func (s *sparkline) resize(width, height int) {
	s.width, s.height = width, height
}

func (s *sparkline) view() string {
	if len(s.points) < 2 || s.width <= 0 || s.height <= 0 {
		return tui.MutedStyle.Render("waiting for events...")
	}

	chart := timeserieslinechart.New(s.width, s.height)
	chart.SetStyle(tui.InfoStyle)
	for _, p := range s.points {
		chart.Push(p)
	}
	chart.DrawBrailleAll()
	return chart.View()
}
