package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateHorizontalBarContainsLabelAndValue(t *testing.T) {
	data := BarData{Label: "event queue", Value: 12, Percentage: 50, Style: InfoStyle, Suffix: "buffered"}
	out := CreateHorizontalBar(data, DefaultBarConfig(20))

	require.Contains(t, out, "event queue")
	require.Contains(t, out, "12.0")
	require.Contains(t, out, "50.0%")
	require.Contains(t, out, "buffered")
}

func TestCreateHorizontalBarAtZeroPercentStillShowsMinimumBar(t *testing.T) {
	data := BarData{Label: "idle", Value: 0, Percentage: 0, Style: InfoStyle}
	out := CreateHorizontalBar(data, DefaultBarConfig(10))

	require.Equal(t, 1, strings.Count(out, DefaultFilledChar))
}

func TestCreateHorizontalBarAtFullPercentFillsWidth(t *testing.T) {
	data := BarData{Label: "full", Value: 100, Percentage: 100, Style: InfoStyle}
	out := CreateHorizontalBar(data, DefaultBarConfig(10))

	require.Equal(t, 10, strings.Count(out, DefaultFilledChar))
	require.Equal(t, 0, strings.Count(out, DefaultEmptyChar))
}

func TestDefaultBarConfigShowsValueAndPercentByDefault(t *testing.T) {
	config := DefaultBarConfig(30)
	require.True(t, config.ShowValue)
	require.True(t, config.ShowPercent)
	require.Equal(t, 30, config.BarAreaWidth)
}
