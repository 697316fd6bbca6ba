package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"sysmon/i18n"
	"sysmon/models"
)

// asciiOutput strips all styling so assertions see plain text.
func asciiOutput() *termenv.Output {
	return termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
}

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Timestamp: time.Now(),
		CPU:       models.CPUReading{Available: true, Percent: 42.5},
		Temp: models.TempReading{Available: true, Sensors: []models.SensorReading{
			{Name: "coretemp_core_0", Current: 45, High: 70, Critical: 90},
		}},
		Memory: models.MemReading{
			Available: true,
			Virtual:   models.MemStats{Total: 16642998272, Used: 3328599654, Percent: 20},
			Swap:      models.MemStats{Total: 2147483648, Used: 1073741824, Percent: 50},
		},
		Disk: models.DiskReading{Available: true, Mounts: []models.MountUsage{
			{Mountpoint: "/", Fstype: "ext4", Total: 100e9, Used: 61e9, Percent: 61},
		}},
		Host: models.HostReading{
			Available: true, Hostname: "box1", IPAddr: "192.168.1.5",
			UptimeSec: 7547, Processes: 142,
		},
	}
}

func TestUsageColor(t *testing.T) {
	assert.Equal(t, termenv.ANSIBrightGreen, usageColor(0))
	assert.Equal(t, termenv.ANSIBrightGreen, usageColor(60))
	assert.Equal(t, termenv.ANSIBrightYellow, usageColor(60.1))
	assert.Equal(t, termenv.ANSIBrightYellow, usageColor(80))
	assert.Equal(t, termenv.ANSIBrightRed, usageColor(80.1))
	assert.Equal(t, termenv.ANSIBrightRed, usageColor(100))
}

func TestUsageBar(t *testing.T) {
	bar := usageBar(60)
	assert.Equal(t, strings.Repeat("█", 30)+strings.Repeat("━", 20), bar)

	assert.Equal(t, strings.Repeat("━", barBlocks), usageBar(0))
	assert.Equal(t, strings.Repeat("█", barBlocks), usageBar(100))
	assert.Equal(t, strings.Repeat("█", barBlocks), usageBar(250))
	assert.Equal(t, strings.Repeat("━", barBlocks), usageBar(-5))
}

func TestRenderScreen_Header(t *testing.T) {
	screen := renderScreen(asciiOutput(), i18n.New("en"), sampleSnapshot(), DetailDisk, 80, 24)

	assert.Contains(t, screen, "SYSTEM MONITOR")
	assert.Contains(t, screen, "Hostname: box1")
	assert.Contains(t, screen, "IP Address: 192.168.1.5")
	assert.Contains(t, screen, "Processes: 142")
	assert.Contains(t, screen, "Uptime: 2h 5m 47s")
	assert.Contains(t, screen, "CPU Usage: 42.5%")
	assert.Contains(t, screen, "Temperature: 45°C")
	assert.Contains(t, screen, "RAM Usage: 3.1 GB/15.5 GB 20%")
	assert.Contains(t, screen, "Swap Memory: 1.0 GB/2.0 GB 50%")
	assert.Contains(t, screen, "<Ctrl-C> to quit")
}

func TestRenderScreen_DiskDetails(t *testing.T) {
	screen := renderScreen(asciiOutput(), i18n.New("en"), sampleSnapshot(), DetailDisk, 80, 24)

	assert.Contains(t, screen, "DISK USAGE")
	assert.Contains(t, screen, "/")
	assert.Contains(t, screen, strings.Repeat("█", 30))
}

func TestRenderScreen_TempDetails(t *testing.T) {
	screen := renderScreen(asciiOutput(), i18n.New("en"), sampleSnapshot(), DetailTemp, 80, 24)

	assert.Contains(t, screen, "TEMPERATURE SENSORS")
	assert.Contains(t, screen, "coretemp_core_0")
	assert.Contains(t, screen, "45°C (high = 70°C, critical = 90°C)")
}

func TestRenderScreen_UnavailableReadings(t *testing.T) {
	snap := models.NewSnapshot()
	screen := renderScreen(asciiOutput(), i18n.New("en"), snap, DetailBoth, 80, 24)

	assert.Contains(t, screen, "Hostname: unavailable")
	assert.Contains(t, screen, "CPU Usage: unavailable")
	assert.Contains(t, screen, "Temperature: unavailable")
	assert.Contains(t, screen, "RAM Usage: unavailable")
	assert.NotContains(t, screen, "°C")
}

func TestRenderScreen_Localized(t *testing.T) {
	screen := renderScreen(asciiOutput(), i18n.New("es"), sampleSnapshot(), DetailNone, 80, 24)

	assert.Contains(t, screen, "MONITOR DEL SISTEMA")
	assert.Contains(t, screen, "Uso de RAM")
	assert.Contains(t, screen, "Uso de CPU")
	assert.NotContains(t, screen, "CPU Usage")
}
