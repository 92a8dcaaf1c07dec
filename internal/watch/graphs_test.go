package watch

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

// stripANSI removes escape sequences so tests can assert on the glyphs.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestRenderSparklineEmpty(t *testing.T) {
	assert.Empty(t, RenderSparkline(nil, 10, ColorUp))
	assert.Empty(t, RenderSparkline([]float64{1, 2}, 0, ColorUp))
}

func TestRenderSparklineLevels(t *testing.T) {
	out := stripANSI(RenderSparkline([]float64{0, 100}, 10, ColorUp))

	runes := []rune(out)
	assert.Len(t, runes, 2)
	assert.Equal(t, '▁', runes[0], "minimum maps to the lowest block")
	assert.Equal(t, '█', runes[1], "maximum maps to the highest block")
}

func TestRenderSparklineFlatSeriesUsesMiddleLevel(t *testing.T) {
	out := stripANSI(RenderSparkline([]float64{42, 42, 42}, 10, ColorUp))

	for _, r := range out {
		assert.Equal(t, sparklineBlocks[len(sparklineBlocks)/2], r)
	}
}

func TestRenderSparklineTruncatesToWidth(t *testing.T) {
	data := make([]float64, 100)
	for i := range data {
		data[i] = float64(i)
	}

	out := stripANSI(RenderSparkline(data, 20, ColorUp))
	assert.Len(t, []rune(out), 20, "only the most recent samples are shown")
}

func TestRenderGaugeLabelCentered(t *testing.T) {
	out := stripANSI(RenderGauge(50, 20, "half"))

	assert.Contains(t, out, "half")
	assert.Len(t, []rune(out), 20)
}

func TestRenderGaugeClamps(t *testing.T) {
	assert.NotEmpty(t, RenderGauge(150, 10, ""))
	assert.NotEmpty(t, RenderGauge(-10, 10, ""))
	assert.Empty(t, RenderGauge(50, 0, ""))
}

func TestRenderGaugeOversizedLabelDropped(t *testing.T) {
	out := stripANSI(RenderGauge(50, 4, "much too long"))
	assert.Len(t, []rune(out), 4)
}

func TestGaugeColorBands(t *testing.T) {
	tests := []struct {
		percent float64
		want    lipgloss.Color
	}{
		{100, ColorTarget},
		{80, ColorUp},
		{75, ColorUp},
		{60, ColorInfo},
		{50, ColorInfo},
		{25, lipgloss.Color("#4444FF")},
		{0, lipgloss.Color("#4444FF")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, gaugeColor(tt.percent), "gaugeColor(%v)", tt.percent)
	}
}
