package watch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// defaultWidth is used before the first WindowSizeMsg arrives.
const defaultWidth = 100

// logPanelLines is how many recent log lines the log panel shows.
const logPanelLines = 6

// renderDashboard renders the complete monitoring view.
func (m Model) renderDashboard() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder

	b.WriteString(m.renderHeader(width))
	b.WriteString("\n")
	b.WriteString(m.renderBody(width))
	b.WriteString("\n")
	b.WriteString(m.renderLog(width))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title bar: token identity, chain badge, and
// progress (or the blinking target-hit banner).
func (m Model) renderHeader(width int) string {
	name, symbol := "…", "…"
	if snap := m.app.Snapshot; snap != nil {
		if snap.TokenName != "" {
			name = snap.TokenName
		}
		if snap.TokenSymbol != "" {
			symbol = snap.TokenSymbol
		}
	}

	title := TitleStyle.Render(fmt.Sprintf("🚀 MOONCAP — %s ($%s)", name, symbol))
	badge := ChainBadgeStyle.Render(strings.ToUpper(m.app.Config.Chain))

	var status string
	if m.app.TargetHit {
		status = TargetHitStyle.Render("🔥 TARGET HIT!")
	} else {
		status = ProgressTextStyle.Render(fmt.Sprintf("%.1f%% to target", m.app.ProgressPercent()))
	}

	line := title + "  " + badge + "  " + status
	if m.fetching {
		line += "  " + LabelStyle.Render(FetchSpinnerFrames[m.spinnerFrame])
	}

	return HeaderStyle.Width(width - 2).Render(line)
}

// renderBody renders the chart column and the stats column side by side,
// stacking them on narrow terminals.
func (m Model) renderBody(width int) string {
	if width < BreakpointNarrow {
		chart := m.renderChart(width)
		stats := m.renderStats(width)
		return lipgloss.JoinVertical(lipgloss.Left, chart, stats)
	}

	chartWidth := width * 55 / 100
	statsWidth := width - chartWidth

	chart := m.renderChart(chartWidth)
	stats := m.renderStats(statsWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, chart, stats)
}

// renderChart renders the market-cap sparkline and the target progress
// gauge.
func (m Model) renderChart(width int) string {
	innerWidth := width - 4
	if innerWidth < 10 {
		innerWidth = 10
	}

	trendColor := ColorUp
	if snap := m.app.Snapshot; snap != nil && snap.PriceChange1hPct < 0 {
		trendColor = ColorDown
	}

	spark := RenderSparkline(m.app.History.Floats(), innerWidth, trendColor)
	if spark == "" {
		spark = LabelStyle.Render("waiting for data…")
	}

	trend := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("📈 Market Cap History"),
		spark,
	)

	var mcap float64
	if m.app.Snapshot != nil {
		mcap = m.app.Snapshot.MarketCapUsd
	}
	gaugeLabel := fmt.Sprintf("$%.0f / $%.0f", mcap, m.app.Config.TargetMarketCap)
	gauge := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("🎯 Target Progress"),
		RenderGauge(m.app.ProgressPercent(), innerWidth, gaugeLabel),
	)

	return PanelStyle.Width(width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, trend, "", gauge),
	)
}

// statRow renders one label/value line for the stats panel.
func statRow(label string, value string) string {
	return LabelStyle.Render(fmt.Sprintf("%-12s", label)) + value
}

// renderStats renders the metrics panel.
func (m Model) renderStats(width int) string {
	snap := m.app.Snapshot
	if snap == nil {
		snap = &Snapshot{}
	}

	priceStyle := UpStyle
	if snap.PriceChange1hPct < 0 {
		priceStyle = DownStyle
	}
	change24Style := UpStyle
	if snap.PriceChange24hPct < 0 {
		change24Style = DownStyle
	}

	fetches := ValueStyle.Render(fmt.Sprintf("%d", m.app.FetchCount))
	if m.app.ErrorCount > 0 {
		fetches += DownStyle.Render(fmt.Sprintf("  (%d errors)", m.app.ErrorCount))
	}

	lastFetch := m.app.LastFetchAt
	if lastFetch == "" {
		lastFetch = "—"
	}

	rows := []string{
		statRow("Price", priceStyle.Bold(true).Render(FormatPrice(snap.PriceUsd))),
		"",
		statRow("Market Cap", ValueBoldStyle.Render(FormatDollar(snap.MarketCapUsd))),
		statRow("FDV", ValueStyle.Render(FormatDollar(snap.FdvUsd))),
		"",
		statRow("1h Change", priceStyle.Render(FormatChange(snap.PriceChange1hPct))),
		statRow("24h Change", change24Style.Render(FormatChange(snap.PriceChange24hPct))),
		"",
		statRow("Volume 24h", VolumeStyle.Render(FormatDollar(snap.Volume24hUsd))),
		statRow("Liquidity", VolumeStyle.Render(FormatDollar(snap.LiquidityUsd))),
		"",
		statRow("Buys 24h", UpStyle.Render(fmt.Sprintf("%d", snap.Buys24h))),
		statRow("Sells 24h", DownStyle.Render(fmt.Sprintf("%d", snap.Sells24h))),
		"",
		statRow("Target", TargetValueStyle.Render(FormatDollar(m.app.Config.TargetMarketCap))+" 🎯"),
		statRow("Fetches", fetches),
		statRow("Last Fetch", ValueStyle.Render(lastFetch)),
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("📊 Stats"),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)

	return PanelStyle.Width(width - 2).Render(body)
}

// renderLog renders the most recent log lines, newest first.
func (m Model) renderLog(width int) string {
	lines := m.app.Log.Last(logPanelLines)

	rendered := make([]string, 0, len(lines)+1)
	rendered = append(rendered, TitleStyle.Render("📋 Log"))

	if len(lines) == 0 {
		rendered = append(rendered, LogLineStyle.Render("…"))
	}
	for _, line := range lines {
		style := LogLineStyle
		switch {
		case strings.Contains(line, "🔥"):
			style = LogHitStyle
		case strings.Contains(line, "❌"):
			style = LogErrorStyle
		}
		rendered = append(rendered, style.Render(line))
	}

	return PanelStyle.Width(width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, rendered...),
	)
}

// renderFooter renders the keyboard help line.
func (m Model) renderFooter() string {
	hints := []struct{ key, desc string }{
		{"q", "quit"},
		{"r", "refresh"},
		{"c", "config"},
		{"s", "stop alarm"},
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, FooterKeyStyle.Render(h.key)+FooterStyle.Render(" "+h.desc))
	}

	return FooterStyle.Render(" ") + strings.Join(parts, FooterStyle.Render("  "))
}

// renderForm renders the configuration form.
func (m Model) renderForm() string {
	form := m.app.Form
	if form == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(FormTitleStyle.Render("⚙  Configure MoonCap"))
	b.WriteString("\n\n")

	for i := 0; i < FieldCount; i++ {
		labelStyle := FormLabelStyle
		indicator := "   "
		if i == form.Active() {
			labelStyle = FormLabelActiveStyle
			indicator = " ▶ "
		}

		b.WriteString(labelStyle.Render(indicator + FieldLabels[i]))
		b.WriteString("\n   ")
		b.WriteString(form.FieldView(i))
		b.WriteString("\n\n")
	}

	b.WriteString(FooterKeyStyle.Render("Enter"))
	b.WriteString(FooterStyle.Render(" confirm  "))
	b.WriteString(FooterKeyStyle.Render("Tab/↓"))
	b.WriteString(FooterStyle.Render(" next  "))
	b.WriteString(FooterKeyStyle.Render("Shift+Tab/↑"))
	b.WriteString(FooterStyle.Render(" prev  "))
	b.WriteString(FooterKeyStyle.Render("Esc"))
	if m.app.Configured {
		b.WriteString(FooterStyle.Render(" cancel"))
	} else {
		b.WriteString(FooterStyle.Render(" quit"))
	}

	panel := FormPanelStyle.Render(b.String())

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
	}
	return panel
}
