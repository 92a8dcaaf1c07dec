package watch

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette.
const (
	ColorBorder      = lipgloss.Color("#2A2A4A") // Purple-tinted border
	ColorBorderFocus = lipgloss.Color("#00FFFF") // Neon cyan

	ColorUp   = lipgloss.Color("#39FF14") // Neon green
	ColorDown = lipgloss.Color("#FF0055") // Hot red-pink

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	ColorAccent = lipgloss.Color("#FF2E97") // Neon pink
	ColorTarget = lipgloss.Color("#FFAA00") // Electric amber
	ColorInfo   = lipgloss.Color("#00FFFF") // Neon cyan
)

// Gauge fill colors by progress band. The closer to target, the hotter.
var gaugeBandColors = []struct {
	threshold float64
	color     lipgloss.Color
}{
	{100, ColorTarget},
	{75, ColorUp},
	{50, ColorInfo},
	{0, lipgloss.Color("#4444FF")},
}

// Width breakpoint below which the stats panel drops beneath the chart.
const BreakpointNarrow = 80

// Base styles for the dashboard panels.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	ChainBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorAccent).
			Bold(true).
			Padding(0, 1)

	TargetHitStyle = lipgloss.NewStyle().
			Foreground(ColorTarget).
			Bold(true).
			Blink(true)

	ProgressTextStyle = lipgloss.NewStyle().
				Foreground(ColorInfo)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	ValueBoldStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	TargetValueStyle = lipgloss.NewStyle().
				Foreground(ColorTarget).
				Bold(true)

	UpStyle = lipgloss.NewStyle().
		Foreground(ColorUp)

	DownStyle = lipgloss.NewStyle().
			Foreground(ColorDown)

	VolumeStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	LogLineStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	LogHitStyle = lipgloss.NewStyle().
			Foreground(ColorTarget).
			Bold(true)

	LogErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDown)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorTarget).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FormTitleStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Bold(true)

	FormPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorInfo).
			Padding(1, 2)

	FormLabelActiveStyle = lipgloss.NewStyle().
				Foreground(ColorInfo).
				Bold(true)

	FormLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// FetchSpinnerFrames animate while a fetch is in flight.
var FetchSpinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// gaugeColor returns the fill color for a progress percentage.
func gaugeColor(percent float64) lipgloss.Color {
	for _, band := range gaugeBandColors {
		if percent >= band.threshold {
			return band.color
		}
	}
	return gaugeBandColors[len(gaugeBandColors)-1].color
}
