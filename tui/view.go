package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sysmon/format"
)

// meterCardWidth is the inner width of one meter card.
const meterCardWidth = 30

// renderDashboard renders the header strip, the four meter cards and the
// key hint footer.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderMeters())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title and host identity strip.
func (m Model) renderHeader() string {
	title := m.theme.Title.Render(m.tr.T("System Monitor"))

	host := m.snapshot.Host
	var identity string
	if host.Available {
		identity = strings.Join([]string{
			m.tr.Tf("Hostname: %s", host.Hostname),
			m.tr.Tf("IP Address: %s", host.IPAddr),
			m.tr.Tf("Processes: %s", fmt.Sprintf("%d", host.Processes)),
			m.tr.Tf("Uptime: %s", format.Uptime(host.UptimeSec)),
		}, "  |  ")
	} else {
		identity = m.tr.T("unavailable")
	}

	return m.theme.Header.Render(title) + "\n" + m.theme.Label.Render(" "+identity)
}

// renderMeters renders the four meter cards, two per row on narrow
// terminals.
func (m Model) renderMeters() string {
	cards := []string{
		m.renderMeterCard(MeterCPU),
		m.renderMeterCard(MeterTemp),
		m.renderMeterCard(MeterRAM),
		m.renderMeterCard(MeterDisk),
	}

	perRow := len(cards)
	if m.width > 0 && m.width < (meterCardWidth+4)*len(cards) {
		perRow = 2
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderMeterCard renders one meter: title, value, usage bar and caption.
func (m Model) renderMeterCard(meter Meter) string {
	title, value, caption, percent, available := m.meterContent(meter)

	var lines []string
	lines = append(lines, m.theme.Label.Render(title))

	if available {
		lines = append(lines, m.theme.MetricStyle(percent).Bold(true).Render(value))
		lines = append(lines, m.theme.ProgressBar(meterCardWidth, percent))
	} else {
		lines = append(lines, m.theme.Muted.Render(m.tr.T("unavailable")))
		lines = append(lines, m.theme.Muted.Render(strings.Repeat("░", meterCardWidth)))
	}

	if caption != "" {
		lines = append(lines, m.theme.Muted.Render(format.Truncate(caption, meterCardWidth)))
	}

	content := lipgloss.NewStyle().Width(meterCardWidth).Render(strings.Join(lines, "\n"))
	if meter == m.selected {
		return m.theme.CardSel.Render(content)
	}
	return m.theme.Card.Render(content)
}

// meterContent extracts the display values for one meter from the current
// snapshot.
func (m Model) meterContent(meter Meter) (title, value, caption string, percent float64, available bool) {
	snap := m.snapshot

	switch meter {
	case MeterCPU:
		title = m.tr.T("CPU Usage")
		if snap.CPU.Available {
			return title, format.Percent(snap.CPU.Percent), snap.CPU.Model, snap.CPU.Percent, true
		}

	case MeterTemp:
		title = m.tr.T("Temperature")
		if primary, ok := snap.Temp.Primary(); ok {
			return title, format.Temperature(primary.Current), primary.Name, primary.Current, true
		}

	case MeterRAM:
		title = m.tr.T("RAM Usage")
		if snap.Memory.Available {
			vm := snap.Memory.Virtual
			return title, format.Percent(vm.Percent),
				format.UsedOfTotal(vm.Used, vm.Total, vm.Percent), vm.Percent, true
		}

	case MeterDisk:
		title = m.tr.T("Disk Usage")
		if busiest, ok := snap.Disk.Busiest(); ok {
			return title, format.Percent(busiest.Percent),
				busiest.Mountpoint + "  " + format.UsedOfTotal(busiest.Used, busiest.Total, busiest.Percent),
				busiest.Percent, true
		}
	}

	return title, "", "", 0, false
}

// renderFooter renders the keyboard hint line.
func (m Model) renderFooter() string {
	hints := []string{
		"q " + m.tr.T("quit"),
		"←/→ " + m.tr.T("select"),
		"enter " + m.tr.T("details"),
		"r " + m.tr.T("refresh"),
		"p " + m.tr.T("Preferences"),
		"? " + m.tr.T("Help"),
	}
	return m.theme.Footer.Render(strings.Join(hints, " | "))
}
