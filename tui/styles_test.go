package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTheme(t *testing.T) {
	assert.Equal(t, "dark", NewTheme("dark").Name)
	assert.Equal(t, "light", NewTheme("light").Name)
	assert.Equal(t, "dark", NewTheme("system").Name)
	assert.Equal(t, "dark", NewTheme("bogus").Name)
}

func TestMetricColor(t *testing.T) {
	theme := darkTheme()
	assert.Equal(t, theme.Healthy, theme.MetricColor(0))
	assert.Equal(t, theme.Healthy, theme.MetricColor(60))
	assert.Equal(t, theme.Warning, theme.MetricColor(60.1))
	assert.Equal(t, theme.Warning, theme.MetricColor(80))
	assert.Equal(t, theme.Critical, theme.MetricColor(80.1))
	assert.Equal(t, theme.Critical, theme.MetricColor(100))
}

func TestProgressBar(t *testing.T) {
	theme := darkTheme()

	bar := theme.ProgressBar(10, 50)
	assert.Equal(t, 5, strings.Count(bar, "█"))
	assert.Equal(t, 5, strings.Count(bar, "░"))

	assert.Equal(t, 10, strings.Count(theme.ProgressBar(10, 150), "█"))
	assert.Equal(t, 10, strings.Count(theme.ProgressBar(10, -5), "░"))
	assert.Equal(t, 1, strings.Count(theme.ProgressBar(0, 100), "█"))
}

func TestCycleChoice(t *testing.T) {
	choices := []string{"a", "b", "c"}
	assert.Equal(t, "b", cycleChoice(choices, "a", 1))
	assert.Equal(t, "a", cycleChoice(choices, "c", 1))
	assert.Equal(t, "c", cycleChoice(choices, "a", -1))
	assert.Equal(t, "b", cycleChoice(choices, "missing", 1))
}

func TestClampFontSize(t *testing.T) {
	assert.Equal(t, fontSizeMin, clampFontSize(2))
	assert.Equal(t, fontSizeMax, clampFontSize(100))
	assert.Equal(t, 12, clampFontSize(12))
}
