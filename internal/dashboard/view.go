package dashboard

import (
	"fmt"
	"strings"
)

// cardDescription is the static text shown under the readout.
const cardDescription = "Aggregate CPU utilization streamed from the system health service."

// sparklineWidth is how many recent readings the sparkline row shows.
const sparklineWidth = 60

// renderDashboard renders the complete view: header, metric card, footer.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderCard())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title bar with the stream endpoint.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("shd")
	detail := LabelStyle.Render(" | cpu | " + m.sub.Endpoint())
	return HeaderStyle.Render(title + detail)
}

// renderCard renders the single metric card: status line, readout,
// sparkline, optional per-core row, and the static description.
func (m Model) renderCard() string {
	var lines []string

	lines = append(lines, m.renderStatusLine())
	lines = append(lines, m.renderReadoutLine())

	if spark := renderSparkline(m.history.Last(sparklineWidth), sparklineWidth); spark != "" {
		lines = append(lines, spark)
	}
	if cores := m.renderPerCore(); cores != "" {
		lines = append(lines, cores)
	}

	lines = append(lines, DescriptionStyle.Render(cardDescription))

	return CardStyle.Render(strings.Join(lines, "\n"))
}

// renderStatusLine renders the connection glyph and status text.
func (m Model) renderStatusLine() string {
	if m.Live() {
		return StatusLiveStyle.Render(GlyphLive) + " " + ValueStyle.Render(m.StatusText())
	}
	return m.spin.View() + " " + StatusConnectingStyle.Render(m.StatusText())
}

// renderReadoutLine renders the CPU label and the formatted reading.
func (m Model) renderReadoutLine() string {
	label := LabelStyle.Render("CPU ")
	if m.latest == nil {
		return label + ValueStyle.Render(m.Readout())
	}
	return label + severityStyle(m.latest.Total).Render(m.Readout())
}

// renderPerCore renders one block character per logical core, scaled to its
// utilization. Empty when the stream carries no per-core data.
func (m Model) renderPerCore() string {
	if m.latest == nil || len(m.latest.PerCore) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, v := range m.latest.PerCore {
		sb.WriteRune(sparklineBlockRunes[percentLevel(v)])
	}

	label := LabelStyle.Render(fmt.Sprintf("%d cores ", len(m.latest.PerCore)))
	return label + ValueStyle.Render(sb.String())
}

// renderFooter renders the keyboard hint and stream diagnostics.
func (m Model) renderFooter() string {
	parts := []string{"q quit"}

	parts = append(parts, m.sub.State().String())
	if m.samples > 0 {
		parts = append(parts, fmt.Sprintf("%d samples", m.samples))
	}
	if m.closed {
		parts = append(parts, "stream closed")
	}

	return FooterStyle.Render(strings.Join(parts, " | "))
}
