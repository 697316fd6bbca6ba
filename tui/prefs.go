package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"sysmon/config"
	"sysmon/i18n"
	"sysmon/logger"
)

// prefsField identifies one row of the preferences form.
type prefsField int

const (
	fieldLanguage prefsField = iota
	fieldTheme
	fieldAlwaysOnTop
	fieldRegularSize
	fieldMonoSize

	prefsFieldCount
)

const (
	fontSizeMin = 6
	fontSizeMax = 72
)

var themeChoices = []string{"dark", "light", "system"}

// prefsState is the in-progress edit of the settings. Nothing is applied
// or persisted until the user confirms.
type prefsState struct {
	field prefsField

	language    string
	theme       string
	alwaysOnTop bool
	regularSize int
	monoSize    int

	saveErr string
}

// newPrefsState seeds the form from the current settings.
func newPrefsState(cfg *config.Config) prefsState {
	return prefsState{
		language:    cfg.General.Language,
		theme:       cfg.General.Theme,
		alwaysOnTop: cfg.General.AlwaysOnTop,
		regularSize: cfg.Font.RegularSize,
		monoSize:    cfg.Font.MonoSize,
	}
}

// handlePrefsKey processes input while the preferences form is open.
func (m *Model) handlePrefsKey(key string) (bool, tea.Cmd) {
	switch key {
	case "up", "k":
		m.prefs.field = (m.prefs.field + prefsFieldCount - 1) % prefsFieldCount
		return true, nil

	case "down", "j", "tab":
		m.prefs.field = (m.prefs.field + 1) % prefsFieldCount
		return true, nil

	case "left", "h":
		m.prefs.adjust(-1)
		return true, nil

	case "right", "l", " ":
		m.prefs.adjust(1)
		return true, nil

	case "enter":
		m.savePrefs()
		return true, nil

	case "esc":
		m.closeModal()
		return true, nil
	}

	return true, nil
}

// adjust cycles or steps the active field's value.
func (p *prefsState) adjust(dir int) {
	switch p.field {
	case fieldLanguage:
		p.language = cycleChoice(i18n.Languages(), p.language, dir)
	case fieldTheme:
		p.theme = cycleChoice(themeChoices, p.theme, dir)
	case fieldAlwaysOnTop:
		p.alwaysOnTop = !p.alwaysOnTop
	case fieldRegularSize:
		p.regularSize = clampFontSize(p.regularSize + dir)
	case fieldMonoSize:
		p.monoSize = clampFontSize(p.monoSize + dir)
	}
}

// savePrefs persists the form, applies the new language and theme and
// closes the modal. The form stays open when the write fails.
func (m *Model) savePrefs() {
	p := m.prefs

	m.cfg.Update(func(c *config.Config) {
		c.General.Language = p.language
		c.General.Theme = p.theme
		c.General.AlwaysOnTop = p.alwaysOnTop
		c.Font.RegularSize = p.regularSize
		c.Font.MonoSize = p.monoSize
	})

	if err := m.cfg.Save(); err != nil {
		logger.Get().Errorf("save settings: %v", err)
		m.prefs.saveErr = err.Error()
		return
	}

	logger.Get().Infof("settings saved: language=%s theme=%s", p.language, p.theme)
	m.tr = i18n.New(p.language)
	m.theme = NewTheme(p.theme)
	m.closeModal()
}

// renderPrefsBody renders the form rows with the active one marked.
func (m Model) renderPrefsBody() string {
	p := m.prefs

	onOff := m.tr.T("Off")
	if p.alwaysOnTop {
		onOff = m.tr.T("On")
	}

	rows := []struct {
		field prefsField
		label string
		value string
	}{
		{fieldLanguage, m.tr.T("Language"), i18n.DisplayNames[p.language]},
		{fieldTheme, m.tr.T("Theme"), m.themeLabel(p.theme)},
		{fieldAlwaysOnTop, m.tr.T("Always on top"), onOff},
		{fieldRegularSize, m.tr.T("Regular font size"), strconv.Itoa(p.regularSize)},
		{fieldMonoSize, m.tr.T("Monospace font size"), strconv.Itoa(p.monoSize)},
	}

	var lines []string
	for _, row := range rows {
		marker := "  "
		label := m.theme.Label.Render(padLabel(row.label))
		value := m.theme.Value.Render(row.value)
		if row.field == p.field {
			marker = m.theme.Title.Render("> ")
			value = m.theme.Title.Render("◂ " + row.value + " ▸")
		}
		lines = append(lines, marker+label+value)
	}

	lines = append(lines, "")
	lines = append(lines, m.theme.Muted.Render(
		"enter "+m.tr.T("Save")+" | esc "+m.tr.T("Cancel")))

	if p.saveErr != "" {
		lines = append(lines, m.theme.MetricStyle(100).Render(p.saveErr))
	}

	return strings.Join(lines, "\n")
}

// themeLabel localizes a theme choice for display.
func (m Model) themeLabel(theme string) string {
	switch theme {
	case "light":
		return m.tr.T("Light")
	case "system":
		return m.tr.T("System")
	default:
		return m.tr.T("Dark")
	}
}

func padLabel(s string) string {
	const width = 22
	if len([]rune(s)) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len([]rune(s)))
}

// cycleChoice steps through choices, wrapping at both ends.
func cycleChoice(choices []string, current string, dir int) string {
	if len(choices) == 0 {
		return current
	}
	idx := 0
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(choices)) % len(choices)
	return choices[idx]
}

func clampFontSize(size int) int {
	if size < fontSizeMin {
		return fontSizeMin
	}
	if size > fontSizeMax {
		return fontSizeMax
	}
	return size
}
