// Package tui implements the windowed front-end: a Bubble Tea dashboard
// with one meter card per metric category and modal detail views.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"sysmon/collector"
	"sysmon/config"
	"sysmon/i18n"
	"sysmon/logger"
	"sysmon/models"
)

// Meter identifies one of the four dashboard meters.
type Meter int

const (
	MeterCPU Meter = iota
	MeterTemp
	MeterRAM
	MeterDisk

	meterCount
)

// Modal identifies the overlay currently shown, if any.
type Modal int

const (
	ModalNone Modal = iota
	ModalCPU
	ModalTemp
	ModalMemory
	ModalDisk
	ModalPrefs
	ModalAbout
	ModalHelp
)

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	collector *collector.Collector
	cfg       *config.Manager
	tr        *i18n.Translator
	theme     Theme

	snapshot *models.Snapshot
	interval time.Duration

	selected Meter
	modal    Modal
	prefs    prefsState

	// langOverride pins the display language from the command line so a
	// settings reload does not revert it.
	langOverride string

	width    int
	height   int
	quitting bool

	viewport      viewport.Model
	viewportReady bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// snapshotMsg carries a fresh telemetry snapshot.
type snapshotMsg struct {
	snap *models.Snapshot
}

// NewModel creates a dashboard model. The refresh interval and display
// language come from the caller so CLI flags can override the settings.
func NewModel(coll *collector.Collector, cfg *config.Manager, tr *i18n.Translator, interval time.Duration) Model {
	return Model{
		collector: coll,
		cfg:       cfg,
		tr:        tr,
		theme:     NewTheme(cfg.Get().General.Theme),
		snapshot:  models.NewSnapshot(),
		interval:  interval,
		selected:  MeterCPU,
	}
}

// Init starts the tick timer and triggers the first collection.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.collectCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		if m.modal != ModalNone {
			m.refreshModalContent()
		}

	case tickMsg:
		return m, tea.Batch(m.tickCmd(), m.collectCmd())

	case snapshotMsg:
		m.snapshot = msg.snap
		if m.modal != ModalNone && m.modal != ModalPrefs {
			m.refreshModalContent()
		}
	}

	return m, nil
}

// View renders the dashboard or the active modal.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.modal != ModalNone {
		return m.renderModal()
	}
	return m.renderDashboard()
}

// tickCmd schedules the next refresh tick.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd gathers one snapshot off the UI goroutine.
func (m Model) collectCmd() tea.Cmd {
	coll := m.collector
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return snapshotMsg{snap: coll.Snapshot(ctx)}
	}
}

// resizeViewport sizes the modal viewport to the terminal, leaving room
// for the modal frame and footer hint.
func (m *Model) resizeViewport() {
	vpWidth := m.width - 8
	vpHeight := m.height - 8
	if vpWidth < 20 {
		vpWidth = 20
	}
	if vpHeight < 4 {
		vpHeight = 4
	}

	if !m.viewportReady {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.viewportReady = true
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}
}

// refreshModalContent rebuilds the viewport content for the open modal so
// detail views keep updating while visible.
func (m *Model) refreshModalContent() {
	if !m.viewportReady {
		m.resizeViewport()
	}
	m.viewport.SetContent(m.modalBody())
}

// openModal switches to a modal and fills the viewport.
func (m *Model) openModal(modal Modal) {
	m.modal = modal
	if modal == ModalPrefs {
		m.prefs = newPrefsState(m.cfg.Get())
		return
	}
	m.refreshModalContent()
}

// closeModal returns to the dashboard.
func (m *Model) closeModal() {
	m.modal = ModalNone
}

// SetLanguageOverride pins the display language for the session.
func (m *Model) SetLanguageOverride(lang string) {
	m.langOverride = lang
}

// reloadSettings re-reads the settings file and re-applies language and
// theme, the in-place replacement for restarting the process.
func (m *Model) reloadSettings() {
	if err := m.cfg.Load(m.cfg.Path()); err != nil {
		logger.Get().Errorf("reload settings: %v", err)
		return
	}

	cfg := m.cfg.Get()
	lang := cfg.General.Language
	if m.langOverride != "" {
		lang = m.langOverride
	}
	m.tr = i18n.New(lang)
	m.theme = NewTheme(cfg.General.Theme)
	logger.Get().Info("settings reloaded")
}

// modalForMeter maps a selected meter to its detail modal.
func modalForMeter(meter Meter) Modal {
	switch meter {
	case MeterCPU:
		return ModalCPU
	case MeterTemp:
		return ModalTemp
	case MeterRAM:
		return ModalMemory
	case MeterDisk:
		return ModalDisk
	default:
		return ModalNone
	}
}
