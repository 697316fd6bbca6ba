package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysmon/collector"
	"sysmon/config"
	"sysmon/i18n"
	"sysmon/models"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := config.NewManager()
	require.NoError(t, cfg.Load(filepath.Join(t.TempDir(), "config.yaml")))
	return NewModel(collector.New(), cfg, i18n.New("en"), time.Second)
}

func testSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Timestamp: time.Now(),
		CPU: models.CPUReading{
			Available: true, Percent: 42.5,
			PerCore: []float64{40, 45}, FreqMHz: []float64{2400, 2600},
			Model: "Test CPU",
		},
		Temp: models.TempReading{Available: true, Sensors: []models.SensorReading{
			{Name: "coretemp_core_0", Current: 45, High: 70, Critical: 90},
		}},
		Memory: models.MemReading{
			Available: true,
			Virtual: models.MemStats{
				Total: 16642998272, Used: 3328599654, Percent: 20,
				Active: 4831838208, Inactive: 3221225472,
			},
			Swap: models.MemStats{Total: 2147483648, Used: 1073741824, Percent: 50},
		},
		Disk: models.DiskReading{Available: true, Mounts: []models.MountUsage{
			{Mountpoint: "/", Fstype: "ext4", Total: 100e9, Used: 61e9, Percent: 61},
			{Mountpoint: "/home", Fstype: "ext4", Total: 200e9, Used: 20e9, Percent: 10},
		}},
		Host: models.HostReading{
			Available: true, Hostname: "box1", IPAddr: "192.168.1.5",
			UptimeSec: 7547, Processes: 142,
		},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMeterSelection_WrapsAround(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, MeterCPU, m.selected)

	m.HandleKeyMsg(keyMsg("right"))
	assert.Equal(t, MeterTemp, m.selected)

	m.HandleKeyMsg(keyMsg("tab"))
	m.HandleKeyMsg(keyMsg("tab"))
	assert.Equal(t, MeterDisk, m.selected)

	m.HandleKeyMsg(keyMsg("right"))
	assert.Equal(t, MeterCPU, m.selected)

	m.HandleKeyMsg(keyMsg("left"))
	assert.Equal(t, MeterDisk, m.selected)
}

func TestEnterOpensDetailModal(t *testing.T) {
	m := testModel(t)
	m.snapshot = testSnapshot()
	m.width, m.height = 100, 30
	m.resizeViewport()

	m.HandleKeyMsg(keyMsg("enter"))
	assert.Equal(t, ModalCPU, m.modal)

	m.HandleKeyMsg(keyMsg("esc"))
	assert.Equal(t, ModalNone, m.modal)

	m.selected = MeterDisk
	m.HandleKeyMsg(keyMsg("enter"))
	assert.Equal(t, ModalDisk, m.modal)
}

func TestShortcutModals(t *testing.T) {
	m := testModel(t)
	m.width, m.height = 100, 30
	m.resizeViewport()

	m.HandleKeyMsg(keyMsg("p"))
	assert.Equal(t, ModalPrefs, m.modal)
	m.HandleKeyMsg(keyMsg("esc"))

	m.HandleKeyMsg(keyMsg("a"))
	assert.Equal(t, ModalAbout, m.modal)
	m.HandleKeyMsg(keyMsg("esc"))

	m.HandleKeyMsg(keyMsg("?"))
	assert.Equal(t, ModalHelp, m.modal)
	m.HandleKeyMsg(keyMsg("?"))
	assert.Equal(t, ModalNone, m.modal)
}

func TestQuitKey(t *testing.T) {
	m := testModel(t)
	handled, cmd := m.HandleKeyMsg(keyMsg("q"))
	assert.True(t, handled)
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestSnapshotMsgUpdatesModel(t *testing.T) {
	m := testModel(t)
	snap := testSnapshot()

	updated, _ := m.Update(snapshotMsg{snap: snap})
	m = updated.(Model)
	assert.Equal(t, snap, m.snapshot)
}

func TestTickSchedulesCollection(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd)
}

func TestDashboardView(t *testing.T) {
	m := testModel(t)
	m.snapshot = testSnapshot()
	m.width, m.height = 140, 40

	view := m.View()
	assert.Contains(t, view, "System Monitor")
	assert.Contains(t, view, "Hostname: box1")
	assert.Contains(t, view, "CPU Usage")
	assert.Contains(t, view, "42.5%")
	assert.Contains(t, view, "Temperature")
	assert.Contains(t, view, "45°C")
	assert.Contains(t, view, "Disk Usage")
	assert.Contains(t, view, "61.0%")
}

func TestDashboardView_UnavailableReadings(t *testing.T) {
	m := testModel(t)
	m.width, m.height = 140, 40

	view := m.View()
	assert.Contains(t, view, "unavailable")
	assert.NotContains(t, view, "°C")
}

func TestModalBodies(t *testing.T) {
	m := testModel(t)
	m.snapshot = testSnapshot()

	m.modal = ModalCPU
	body := m.modalBody()
	assert.Contains(t, body, "Test CPU")
	assert.Contains(t, body, "CPU #0")
	assert.Contains(t, body, "2.40 GHz")

	m.modal = ModalTemp
	body = m.modalBody()
	assert.Contains(t, body, "coretemp_core_0")
	assert.Contains(t, body, "45°C (high = 70°C, critical = 90°C)")

	m.modal = ModalMemory
	body = m.modalBody()
	assert.Contains(t, body, "Virtual Memory")
	assert.Contains(t, body, "Swap Memory")
	assert.Contains(t, body, "15.5 GB")
	assert.Contains(t, body, "Active")
	assert.Contains(t, body, "4.5 GB")
	assert.Contains(t, body, "Inactive")
	assert.Contains(t, body, "3.0 GB")

	m.modal = ModalDisk
	body = m.modalBody()
	assert.Contains(t, body, "/home")
	assert.Contains(t, body, "ext4")
}

func TestModalBodies_Unavailable(t *testing.T) {
	m := testModel(t)

	for _, modal := range []Modal{ModalCPU, ModalTemp, ModalMemory, ModalDisk} {
		m.modal = modal
		assert.Contains(t, m.modalBody(), "unavailable")
	}
}

func TestRestartKeyReloadsSettings(t *testing.T) {
	m := testModel(t)
	m.cfg.Update(func(c *config.Config) {
		c.General.Language = "de"
		c.General.Theme = "light"
	})
	require.NoError(t, m.cfg.Save())

	handled, cmd := m.HandleKeyMsg(keyMsg("r"))
	assert.True(t, handled)
	assert.NotNil(t, cmd)
	assert.Equal(t, "de", m.tr.Language())
	assert.Equal(t, "light", m.theme.Name)
}

func TestRestartKeepsLanguageOverride(t *testing.T) {
	m := testModel(t)
	m.SetLanguageOverride("es")
	m.cfg.Update(func(c *config.Config) { c.General.Language = "de" })
	require.NoError(t, m.cfg.Save())

	m.HandleKeyMsg(keyMsg("r"))
	assert.Equal(t, "es", m.tr.Language())
}

func TestLanguageSwitchChangesLabels(t *testing.T) {
	m := testModel(t)
	m.snapshot = testSnapshot()
	m.width, m.height = 140, 40

	m.tr = i18n.New("es")
	view := m.View()
	assert.Contains(t, view, "Monitor del sistema")
	assert.Contains(t, view, "Uso de CPU")
	assert.NotContains(t, view, "CPU Usage")
}
