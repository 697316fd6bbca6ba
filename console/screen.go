package console

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"sysmon/format"
	"sysmon/i18n"
	"sysmon/models"
)

// Usage thresholds shared by all meters: above alert is red, above warn
// is yellow, otherwise green.
const (
	alertLevel = 80
	warnLevel  = 60
)

// barBlocks is the width of a disk usage bar in characters.
const barBlocks = 50

// Column where the right header/meter column starts.
const rightCol = 32

// usageColor picks the meter color for a usage percentage.
func usageColor(percent float64) termenv.ANSIColor {
	switch {
	case percent > alertLevel:
		return termenv.ANSIBrightRed
	case percent > warnLevel:
		return termenv.ANSIBrightYellow
	default:
		return termenv.ANSIBrightGreen
	}
}

// usageBar renders a percentage as filled and empty blocks.
func usageBar(percent float64) string {
	used := int(percent * barBlocks / 100)
	if used > barBlocks {
		used = barBlocks
	}
	if used < 0 {
		used = 0
	}
	return strings.Repeat("█", used) + strings.Repeat("━", barBlocks-used)
}

// moveTo returns the escape sequence placing the cursor at a 1-based
// row and column.
func moveTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

const (
	clearToEOL = "\x1b[K"
	clearBelow = "\x1b[J"
)

// renderScreen builds one full frame as a string of positioned writes.
func renderScreen(out *termenv.Output, tr *i18n.Translator, snap *models.Snapshot, details DetailMode, width, height int) string {
	var b strings.Builder

	b.WriteString(moveTo(1, 2))
	b.WriteString(out.String(strings.ToUpper(tr.T("System Monitor"))).Reverse().String())

	host := snap.Host
	hostname, ipAddr, uptime, procs := tr.T("unavailable"), tr.T("unavailable"), tr.T("unavailable"), tr.T("unavailable")
	if host.Available {
		hostname = host.Hostname
		ipAddr = host.IPAddr
		uptime = format.Uptime(host.UptimeSec)
		procs = fmt.Sprintf("%d", host.Processes)
	}
	b.WriteString(moveTo(2, 2) + tr.Tf("Hostname: %s", hostname) + clearToEOL)
	b.WriteString(moveTo(2, rightCol) + tr.Tf("IP Address: %s", ipAddr))
	b.WriteString(moveTo(3, 2) + tr.Tf("Processes: %s", procs) + clearToEOL)
	b.WriteString(moveTo(3, rightCol) + tr.Tf("Uptime: %s", uptime))

	b.WriteString(moveTo(5, 2) + meterLine(out, tr, tr.T("CPU Usage"), snap.CPU.Available,
		format.Percent(snap.CPU.Percent), snap.CPU.Percent))

	primary, hasTemp := snap.Temp.Primary()
	b.WriteString(moveTo(6, 2) + meterLine(out, tr, tr.T("Temperature"), hasTemp,
		format.Temperature(primary.Current), primary.Current))

	b.WriteString(moveTo(5, rightCol) + meterLine(out, tr, tr.T("RAM Usage"), snap.Memory.Available,
		format.UsedOfTotal(snap.Memory.Virtual.Used, snap.Memory.Virtual.Total, snap.Memory.Virtual.Percent),
		snap.Memory.Virtual.Percent))
	b.WriteString(moveTo(6, rightCol) + meterLine(out, tr, tr.T("Swap Memory"), snap.Memory.Available,
		format.UsedOfTotal(snap.Memory.Swap.Used, snap.Memory.Swap.Total, snap.Memory.Swap.Percent),
		snap.Memory.Swap.Percent))

	const detailRow = 8
	switch details {
	case DetailDisk:
		b.WriteString(renderDiskDetails(out, tr, snap.Disk, detailRow, height))
	case DetailTemp:
		b.WriteString(renderTempDetails(out, tr, snap.Temp, detailRow, 1, width, height))
	case DetailBoth:
		b.WriteString(renderDiskSummary(out, tr, snap.Disk, detailRow, width/2-1, height))
		b.WriteString(renderTempDetails(out, tr, snap.Temp, detailRow, width/2+1, width, height))
	case DetailNone:
		b.WriteString(moveTo(detailRow, 1) + clearBelow)
	}

	quitMsg := tr.T("<Ctrl-C> to quit")
	b.WriteString(moveTo(height, width-len([]rune(quitMsg))-1))
	b.WriteString(out.String(quitMsg).Foreground(termenv.ANSICyan).String())
	b.WriteString(moveTo(1, 1))

	return b.String()
}

// meterLine renders a "label: value" meter, coloring the value by the
// usage level, or an uncolored placeholder when the reading failed.
func meterLine(out *termenv.Output, tr *i18n.Translator, label string, available bool, value string, percent float64) string {
	if !available {
		return label + ": " + tr.T("unavailable") + clearToEOL
	}
	styled := out.String(value).Foreground(usageColor(percent)).String()
	return label + ": " + styled + clearToEOL
}

// panelTitle renders an inverted uppercase panel heading.
func panelTitle(out *termenv.Output, title string) string {
	return out.String(strings.ToUpper(title)).Reverse().String()
}

// renderDiskDetails renders the full-width disk panel: one bar and usage
// summary per mount point.
func renderDiskDetails(out *termenv.Output, tr *i18n.Translator, disk models.DiskReading, startRow, height int) string {
	var b strings.Builder
	b.WriteString(moveTo(startRow, 2) + panelTitle(out, tr.T("Disk Usage")))

	if !disk.Available {
		b.WriteString(moveTo(startRow+1, 2) + tr.T("unavailable") + clearToEOL)
		b.WriteString(moveTo(startRow+2, 1) + clearBelow)
		return b.String()
	}

	row := startRow + 1
	for _, mount := range disk.Mounts {
		if row+1 >= height {
			break
		}
		color := usageColor(mount.Percent)
		bar := out.String(usageBar(mount.Percent)).Foreground(color).String()
		usage := out.String(format.UsedOfTotal(mount.Used, mount.Total, mount.Percent)).
			Foreground(color).String()

		b.WriteString(moveTo(row, 2) + mount.Mountpoint + clearToEOL)
		b.WriteString(moveTo(row+1, 2) + bar + "   " + usage + clearToEOL)
		row += 2
	}
	b.WriteString(moveTo(row, 1) + clearBelow)
	return b.String()
}

// renderDiskSummary renders the half-width disk panel used in the
// side-by-side mode: mount point and right-justified usage, no bar.
func renderDiskSummary(out *termenv.Output, tr *i18n.Translator, disk models.DiskReading, startRow, panelWidth, height int) string {
	var b strings.Builder
	b.WriteString(moveTo(startRow, 2) + panelTitle(out, tr.T("Disk Usage")))

	if !disk.Available {
		b.WriteString(moveTo(startRow+1, 2) + tr.T("unavailable"))
		return b.String()
	}

	row := startRow + 1
	for _, mount := range disk.Mounts {
		if row+1 >= height {
			break
		}
		usage := format.UsedOfTotal(mount.Used, mount.Total, mount.Percent)
		padded := fmt.Sprintf("%*s", panelWidth-1, usage)
		styled := out.String(padded).Foreground(usageColor(mount.Percent)).String()

		b.WriteString(moveTo(row, 2) + format.PadRight(format.Truncate(mount.Mountpoint, panelWidth-1), panelWidth-1))
		b.WriteString(moveTo(row+1, 2) + styled)
		row += 2
	}
	return b.String()
}

// renderTempDetails renders the sensor panel starting at startCol, full
// threshold detail per sensor.
func renderTempDetails(out *termenv.Output, tr *i18n.Translator, temp models.TempReading, startRow, startCol, width, height int) string {
	var b strings.Builder
	b.WriteString(moveTo(startRow, startCol+1) + panelTitle(out, tr.T("Temperature Sensors")))

	if !temp.Available {
		b.WriteString(moveTo(startRow+1, startCol+1) + tr.T("unavailable") + clearToEOL)
		if startCol == 1 {
			b.WriteString(moveTo(startRow+2, 1) + clearBelow)
		}
		return b.String()
	}

	labelWidth := 20
	if avail := width - startCol - 40; avail > 0 && avail < labelWidth {
		labelWidth = avail
	}

	row := startRow + 1
	for _, sensor := range temp.Sensors {
		if row >= height {
			break
		}
		name := out.String(format.PadRight(format.Truncate(sensor.Name, labelWidth), labelWidth)).
			Foreground(termenv.ANSIMagenta).String()
		display := format.Sensor(sensor.Current, sensor.High, sensor.Critical)
		b.WriteString(moveTo(row, startCol+1) + name + " " + display + clearToEOL)
		row++
	}
	if startCol == 1 {
		b.WriteString(moveTo(row, 1) + clearBelow)
	}
	return b.String()
}
