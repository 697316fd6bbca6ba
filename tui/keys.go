package tui

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyRefresh    = "r"
	KeyPrev       = "left"
	KeyPrevH      = "h"
	KeyNext       = "right"
	KeyNextL      = "l"
	KeyNextTab    = "tab"
	KeyOpen       = "enter"
	KeyClose      = "esc"
	KeyPrefs      = "p"
	KeyAbout      = "a"
	KeyToggleHelp = "?"
)

// HandleKeyMsg processes keyboard input. Returns true when the key was
// handled, plus any follow-up command.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Quit works everywhere.
	if key == KeyQuit || key == KeyQuitAlt {
		m.quitting = true
		return true, tea.Quit
	}

	if m.modal == ModalPrefs {
		return m.handlePrefsKey(key)
	}

	if m.modal != ModalNone {
		return m.handleModalKey(msg)
	}

	switch key {
	case KeyRefresh:
		// Restart in place: reload the settings file and poll again.
		m.reloadSettings()
		return true, m.collectCmd()

	case KeyPrev, KeyPrevH:
		m.selected = (m.selected + meterCount - 1) % meterCount
		return true, nil

	case KeyNext, KeyNextL, KeyNextTab:
		m.selected = (m.selected + 1) % meterCount
		return true, nil

	case KeyOpen:
		m.openModal(modalForMeter(m.selected))
		return true, nil

	case KeyPrefs:
		m.openModal(ModalPrefs)
		return true, nil

	case KeyAbout:
		m.openModal(ModalAbout)
		return true, nil

	case KeyToggleHelp:
		m.openModal(ModalHelp)
		return true, nil
	}

	return false, nil
}

// handleModalKey processes input while a read-only modal is open. Arrow
// keys scroll the viewport, Esc and Enter close.
func (m *Model) handleModalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case KeyClose, KeyOpen:
		m.closeModal()
		return true, nil

	case KeyToggleHelp:
		if m.modal == ModalHelp {
			m.closeModal()
		} else {
			m.openModal(ModalHelp)
		}
		return true, nil

	case KeyRefresh:
		return true, m.collectCmd()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return true, cmd
}
