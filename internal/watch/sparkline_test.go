package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSparklineWaitingBeforeData(t *testing.T) {
	s := newSparkline(20, 4)
	require.Contains(t, s.view(), "waiting")
}

func TestSparklinePushCapsAtMaxPoints(t *testing.T) {
	s := newSparkline(20, 4)
	s.maxPoints = 3
	base := time.Unix(0, 0)
	for i := 0; i < 10; i++ {
		s.push(base.Add(time.Duration(i)*time.Second), float64(i))
	}
	require.Len(t, s.points, 3)
	require.Equal(t, float64(9), s.points[len(s.points)-1].Value)
}

func TestSparklineResize(t *testing.T) {
	s := newSparkline(20, 4)
	s.resize(40, 8)
	require.Equal(t, 40, s.width)
	require.Equal(t, 8, s.height)
}

func TestSparklineViewRendersAfterTwoPoints(t *testing.T) {
	s := newSparkline(20, 4)
	base := time.Unix(0, 0)
	s.push(base, 1)
	s.push(base.Add(time.Second), 2)
	out := s.view()
	require.NotContains(t, out, "waiting")
}
