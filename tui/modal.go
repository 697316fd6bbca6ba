package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sysmon/format"
)

// appVersion is shown in the about modal, overridable at build time.
var appVersion = "dev"

// SetVersion records the version string for the about modal.
func SetVersion(v string) {
	if v != "" {
		appVersion = v
	}
}

// renderModal renders the active modal centered over a blank screen.
func (m Model) renderModal() string {
	var body string
	if m.modal == ModalPrefs {
		body = m.renderPrefsBody()
	} else {
		body = m.viewport.View()
	}

	title := m.theme.Title.Render(m.modalTitle())
	hint := m.theme.Muted.Render(m.tr.T("Close") + ": esc")
	box := m.theme.ModalBox.Render(title + "\n\n" + body + "\n\n" + hint)

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// modalTitle returns the heading for the active modal.
func (m Model) modalTitle() string {
	switch m.modal {
	case ModalCPU:
		return m.tr.T("CPU Usage")
	case ModalTemp:
		return m.tr.T("Temperature Sensors")
	case ModalMemory:
		return m.tr.T("Memory Statistics")
	case ModalDisk:
		return m.tr.T("Disk Usage")
	case ModalPrefs:
		return m.tr.T("Preferences")
	case ModalAbout:
		return m.tr.T("About")
	case ModalHelp:
		return m.tr.T("Help")
	default:
		return ""
	}
}

// modalBody builds the scrollable content for the active modal.
func (m Model) modalBody() string {
	switch m.modal {
	case ModalCPU:
		return m.cpuModalBody()
	case ModalTemp:
		return m.tempModalBody()
	case ModalMemory:
		return m.memoryModalBody()
	case ModalDisk:
		return m.diskModalBody()
	case ModalAbout:
		return m.aboutModalBody()
	case ModalHelp:
		return m.helpModalBody()
	default:
		return ""
	}
}

// cpuModalBody lists per-core usage and frequency.
func (m Model) cpuModalBody() string {
	cpu := m.snapshot.CPU
	if !cpu.Available {
		return m.theme.Muted.Render(m.tr.T("unavailable"))
	}

	var lines []string
	if cpu.Model != "" {
		lines = append(lines, m.theme.Value.Render(cpu.Model), "")
	}

	lines = append(lines, m.theme.Label.Render(m.tr.T("per-core CPU Usage")))
	for i, pct := range cpu.PerCore {
		label := format.PadRight(m.tr.Tf("CPU #%d", i), 10)
		bar := m.theme.ProgressBar(24, pct)
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			label, bar, m.theme.MetricStyle(pct).Render(format.Percent(pct))))
	}

	if len(cpu.FreqMHz) > 0 {
		lines = append(lines, "", m.theme.Label.Render(m.tr.T("per-core CPU Frequency (in MHz)")))
		for i, freq := range cpu.FreqMHz {
			label := format.PadRight(m.tr.Tf("CPU #%d", i), 10)
			lines = append(lines, fmt.Sprintf("  %s %s",
				label, m.theme.Value.Render(format.Frequency(freq))))
		}
	}

	return strings.Join(lines, "\n")
}

// tempModalBody lists every sensor with its thresholds.
func (m Model) tempModalBody() string {
	temp := m.snapshot.Temp
	if !temp.Available {
		return m.theme.Muted.Render(m.tr.T("unavailable"))
	}

	var lines []string
	for _, sensor := range temp.Sensors {
		name := m.theme.Label.Render(format.PadRight(format.Truncate(sensor.Name, 24), 24))
		detail := format.Sensor(sensor.Current, sensor.High, sensor.Critical)
		lines = append(lines, name+" "+m.theme.MetricStyle(sensor.Current).Render(detail))
	}
	return strings.Join(lines, "\n")
}

// memoryModalBody shows the virtual and swap memory counters.
func (m Model) memoryModalBody() string {
	mem := m.snapshot.Memory
	if !mem.Available {
		return m.theme.Muted.Render(m.tr.T("unavailable"))
	}

	var lines []string

	lines = append(lines, m.theme.Label.Render(m.tr.T("Virtual Memory")))
	lines = append(lines, m.memStatRows(mem.Virtual.Total, mem.Virtual.Used, mem.Virtual.Free, mem.Virtual.Percent)...)
	lines = append(lines, m.memStatRow(m.tr.T("Available"), format.Bytes(mem.Virtual.Available)))
	lines = append(lines, m.memStatRow(m.tr.T("Active"), format.Bytes(mem.Virtual.Active)))
	lines = append(lines, m.memStatRow(m.tr.T("Inactive"), format.Bytes(mem.Virtual.Inactive)))
	lines = append(lines, m.memStatRow(m.tr.T("Cached"), format.Bytes(mem.Virtual.Cached)))
	lines = append(lines, m.memStatRow(m.tr.T("Buffers"), format.Bytes(mem.Virtual.Buffers)))
	lines = append(lines, m.memStatRow(m.tr.T("Shared"), format.Bytes(mem.Virtual.Shared)))

	lines = append(lines, "", m.theme.Label.Render(m.tr.T("Swap Memory")))
	lines = append(lines, m.memStatRows(mem.Swap.Total, mem.Swap.Used, mem.Swap.Free, mem.Swap.Percent)...)

	return strings.Join(lines, "\n")
}

// memStatRows renders the total/used/free rows shared by both pools.
func (m Model) memStatRows(total, used, free uint64, percent float64) []string {
	return []string{
		m.memStatRow(m.tr.T("Total"), format.Bytes(total)),
		m.memStatRow(m.tr.T("Used"), m.theme.MetricStyle(percent).Render(
			format.Bytes(used)+" ("+format.PercentInt(percent)+")")),
		m.memStatRow(m.tr.T("Free"), format.Bytes(free)),
	}
}

func (m Model) memStatRow(label, value string) string {
	return "  " + m.theme.Label.Render(format.PadRight(label, 14)) + m.theme.Value.Render(value)
}

// diskModalBody lists every mount point with a usage bar.
func (m Model) diskModalBody() string {
	disk := m.snapshot.Disk
	if !disk.Available {
		return m.theme.Muted.Render(m.tr.T("unavailable"))
	}

	var lines []string
	for _, mount := range disk.Mounts {
		lines = append(lines, m.theme.Value.Render(mount.Mountpoint)+
			m.theme.Muted.Render("  "+mount.Fstype))
		lines = append(lines, "  "+m.theme.ProgressBar(40, mount.Percent)+"  "+
			m.theme.MetricStyle(mount.Percent).Render(
				format.UsedOfTotal(mount.Used, mount.Total, mount.Percent)))
	}
	return strings.Join(lines, "\n")
}

// aboutModalBody shows program identity and version.
func (m Model) aboutModalBody() string {
	lines := []string{
		m.theme.Value.Render("sysmon " + appVersion),
		m.theme.Label.Render(m.tr.T("System Monitor")),
		"",
		m.theme.Muted.Render("https://github.com/sysmon/sysmon"),
		m.theme.Muted.Render("MIT License"),
	}
	return strings.Join(lines, "\n")
}

// helpModalBody lists the keyboard shortcuts.
func (m Model) helpModalBody() string {
	bindings := []struct{ key, desc string }{
		{"q / Ctrl+C", m.tr.T("Quit")},
		{"← → / tab", m.tr.T("select")},
		{"enter", m.tr.T("details")},
		{"esc", m.tr.T("close")},
		{"r", m.tr.T("Restart")},
		{"p", m.tr.T("Preferences")},
		{"a", m.tr.T("About")},
		{"?", m.tr.T("Help")},
	}

	var lines []string
	for _, b := range bindings {
		lines = append(lines, m.theme.Value.Render(format.PadRight(b.key, 14))+
			m.theme.Label.Render(b.desc))
	}
	return strings.Join(lines, "\n")
}
