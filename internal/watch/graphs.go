package watch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparklineBlocks are block characters for 8-level vertical resolution
// (lowest to highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline renders the market-cap trend as a single-row sparkline.
// Only the most recent width samples are shown; values are mapped onto 8
// vertical levels across the visible min/max range.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	var sb strings.Builder
	sb.Grow(len(data) * 4)

	numLevels := len(sparklineBlocks)
	valueRange := maxVal - minVal

	for _, v := range data {
		level := numLevels / 2
		if valueRange > 0 {
			normalized := (v - minVal) / valueRange
			level = int(normalized * float64(numLevels-1))
			if level < 0 {
				level = 0
			} else if level >= numLevels {
				level = numLevels - 1
			}
		}
		sb.WriteRune(sparklineBlocks[level])
	}

	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

// RenderGauge renders a horizontal progress bar with a centered label.
// percent is clamped to [0, 100]; width is the total bar width in cells.
func RenderGauge(percent float64, width int, label string) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}

	// Overlay the label on the bar, centered.
	runes := make([]rune, width)
	for i := range runes {
		runes[i] = ' '
	}
	labelRunes := []rune(label)
	if len(labelRunes) < width {
		start := (width - len(labelRunes)) / 2
		copy(runes[start:], labelRunes)
	}

	fillColor := gaugeColor(percent)
	fillStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(fillColor)
	emptyStyle := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Background(lipgloss.Color("#2A2A4A"))

	return fillStyle.Render(string(runes[:filled])) + emptyStyle.Render(string(runes[filled:]))
}
