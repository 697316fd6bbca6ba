// Package console implements the text front-end: a fixed-position screen
// redrawn in place on every refresh tick.
package console

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"sysmon/collector"
	"sysmon/i18n"
	"sysmon/logger"
)

// DetailMode selects which detail panel fills the lower screen.
type DetailMode string

const (
	DetailDisk DetailMode = "disk"
	DetailTemp DetailMode = "temp"
	DetailBoth DetailMode = "both"
	DetailNone DetailMode = "none"
)

// Monitor drives the console display loop.
type Monitor struct {
	out       *termenv.Output
	collector *collector.Collector
	tr        *i18n.Translator
	refresh   time.Duration
	details   DetailMode
	log       *logger.Logger

	// size reports the terminal dimensions, replaceable in tests.
	size func() (width, height int)
}

// New creates a console monitor writing to stdout.
func New(coll *collector.Collector, tr *i18n.Translator, refresh time.Duration, details DetailMode) *Monitor {
	return &Monitor{
		out:       termenv.NewOutput(os.Stdout),
		collector: coll,
		tr:        tr,
		refresh:   refresh,
		details:   details,
		log:       logger.Get(),
		size: func() (int, int) {
			w, h, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil || w <= 0 || h <= 0 {
				return 80, 24
			}
			return w, h
		},
	}
}

// Run draws the screen until the context is canceled. The terminal is
// switched to the alternate screen for the duration.
func (m *Monitor) Run(ctx context.Context) error {
	m.out.AltScreen()
	m.out.HideCursor()
	defer func() {
		m.out.ShowCursor()
		m.out.ExitAltScreen()
	}()

	m.log.Infof("console monitor started, refresh %v, details %s", m.refresh, m.details)

	m.draw(ctx)

	ticker := time.NewTicker(m.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info("console monitor stopped")
			return nil
		case <-ticker.C:
			m.draw(ctx)
		}
	}
}

// draw collects a snapshot and repaints the whole screen in place.
func (m *Monitor) draw(ctx context.Context) {
	snap := m.collector.Snapshot(ctx)
	width, height := m.size()

	screen := renderScreen(m.out, m.tr, snap, m.details, width, height)
	fmt.Fprint(m.out, screen)
}
