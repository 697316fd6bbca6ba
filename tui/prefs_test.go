package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsNavigationAndAdjust(t *testing.T) {
	m := testModel(t)
	m.openModal(ModalPrefs)
	require.Equal(t, fieldLanguage, m.prefs.field)
	assert.Equal(t, "en", m.prefs.language)

	m.handlePrefsKey("right")
	assert.Equal(t, "es", m.prefs.language)
	m.handlePrefsKey("left")
	assert.Equal(t, "en", m.prefs.language)

	m.handlePrefsKey("down")
	assert.Equal(t, fieldTheme, m.prefs.field)
	m.handlePrefsKey("right")
	assert.Equal(t, "light", m.prefs.theme)

	m.handlePrefsKey("down")
	m.handlePrefsKey("right")
	assert.True(t, m.prefs.alwaysOnTop)

	m.handlePrefsKey("down")
	m.handlePrefsKey("right")
	assert.Equal(t, 13, m.prefs.regularSize)

	m.handlePrefsKey("up")
	assert.Equal(t, fieldAlwaysOnTop, m.prefs.field)
}

func TestPrefsSaveAppliesLanguageAndTheme(t *testing.T) {
	m := testModel(t)
	m.openModal(ModalPrefs)

	m.prefs.language = "es"
	m.prefs.theme = "light"
	m.handlePrefsKey("enter")

	assert.Equal(t, ModalNone, m.modal)
	assert.Equal(t, "es", m.tr.Language())
	assert.Equal(t, "light", m.theme.Name)

	cfg := m.cfg.Get()
	assert.Equal(t, "es", cfg.General.Language)
	assert.Equal(t, "light", cfg.General.Theme)
}

func TestPrefsCancelDiscardsEdits(t *testing.T) {
	m := testModel(t)
	m.openModal(ModalPrefs)

	m.prefs.language = "de"
	m.handlePrefsKey("esc")

	assert.Equal(t, ModalNone, m.modal)
	assert.Equal(t, "en", m.tr.Language())
	assert.Equal(t, "en", m.cfg.Get().General.Language)
}

func TestPrefsBodyShowsSelection(t *testing.T) {
	m := testModel(t)
	m.openModal(ModalPrefs)

	body := m.renderPrefsBody()
	assert.Contains(t, body, "Language")
	assert.Contains(t, body, "English")
	assert.Contains(t, body, "Theme")
	assert.Contains(t, body, "Always on top")
}
