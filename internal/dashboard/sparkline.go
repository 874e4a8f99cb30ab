package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

// sparklineBlockRunes provides indexed access to block characters.
var sparklineBlockRunes = []rune(sparklineBlocks)

// renderSparkline creates a sparkline from a slice of percentage values.
// The width parameter determines how many of the most recent data points to
// display. Values are mapped to 8 vertical levels over the fixed 0-100
// domain so the same utilization always draws the same height, and the line
// is colored by the last value's severity.
func renderSparkline(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	// Use only the most recent 'width' data points
	if len(data) > width {
		data = data[len(data)-width:]
	}

	var sb strings.Builder
	sb.Grow(len(data) * 4) // UTF-8 block chars are up to 3 bytes

	for _, v := range data {
		sb.WriteRune(sparklineBlockRunes[percentLevel(v)])
	}

	style := lipgloss.NewStyle().Foreground(sparklineColor(data[len(data)-1]))
	return style.Render(sb.String())
}

// percentLevel maps a 0-100 value to a block level index, clamping values
// outside the conceptual range.
func percentLevel(percent float64) int {
	numLevels := len(sparklineBlockRunes)
	level := int(percent / 100 * float64(numLevels-1))
	if level < 0 {
		level = 0
	} else if level >= numLevels {
		level = numLevels - 1
	}
	return level
}

// sparklineColor returns a color based on percentage thresholds.
func sparklineColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorCritical
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorGraph
	}
}
