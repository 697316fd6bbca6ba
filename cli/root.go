// Package cli wires the command line interface: the root command starts
// the windowed dashboard, the console subcommand the text front-end.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sysmon/collector"
	"sysmon/config"
	"sysmon/i18n"
	"sysmon/logger"
	"sysmon/tui"
)

// Persistent flags shared by all commands.
var (
	configFlag   string
	debugFlag    bool
	refreshFlag  float64
	languageFlag string
)

// defaultRefresh is the poll interval when neither flag nor settings
// override it, in seconds.
const defaultRefresh = 1.0

var rootCmd = &cobra.Command{
	Use:   "sysmon",
	Short: "System monitor for CPU, temperature, memory and disk usage",
	Long: `Monitor the local system: CPU usage and temperature, memory usage,
disk usage, hostname, IP address, uptime and process count.

Run without a subcommand to open the dashboard. Use "sysmon console" for
a plain-text monitor that works over SSH and in minimal terminals.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

// Execute runs the root command. On error it prints the message and the
// failed command's usage, then exits non-zero.
func Execute() {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, cmd.UsageString())
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFlag, "config", "", "settings file (default: user config dir)")
	pf.BoolVar(&debugFlag, "debug", false, "enable debug logging")
	pf.Float64VarP(&refreshFlag, "refresh", "r", defaultRefresh,
		"time between refreshes (in seconds)")
	pf.StringVarP(&languageFlag, "language", "l", "",
		"display language ("+joinLanguages()+")")
}

// session holds everything a front-end needs to run.
type session struct {
	cfg       *config.Manager
	tr        *i18n.Translator
	collector *collector.Collector
	interval  time.Duration
}

// newSession loads settings, applies CLI overrides and initializes
// logging. Flag validation errors come back before anything starts.
func newSession(cmd *cobra.Command) (*session, error) {
	interval, err := resolveInterval(cmd)
	if err != nil {
		return nil, err
	}

	if languageFlag != "" && !i18n.IsSupported(languageFlag) {
		return nil, fmt.Errorf("unsupported language %q (supported: %s)",
			languageFlag, joinLanguages())
	}

	path := configFlag
	if path == "" {
		if path, err = config.DefaultPath(); err != nil {
			path = ""
		}
	}

	mgr := config.NewManager()
	if err := mgr.Load(path); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	cfg := mgr.Get()
	if debugFlag {
		cfg.Logging.Level = "debug"
	}
	if err := logger.Get().Init(&cfg.Logging, configDir(path)); err != nil {
		return nil, fmt.Errorf("initialize logging: %w", err)
	}

	// Settings problems are non-fatal: log and carry on with defaults
	// where a bad value would otherwise reach a ticker or renderer.
	for _, verr := range cfg.Validate() {
		logger.Get().Warnf("settings: %v", verr)
	}

	language := cfg.General.Language
	if languageFlag != "" {
		language = languageFlag
	}

	if interval == 0 {
		interval = settingsInterval(cfg)
	}

	return &session{
		cfg:       mgr,
		tr:        i18n.New(language),
		collector: collector.New(),
		interval:  interval,
	}, nil
}

// resolveInterval validates the refresh flag. Zero means "not set on the
// command line", letting the settings value apply.
func resolveInterval(cmd *cobra.Command) (time.Duration, error) {
	if refreshFlag <= 0 {
		return 0, fmt.Errorf("refresh interval must be positive, got %v", refreshFlag)
	}
	if !cmd.Flags().Changed("refresh") {
		return 0, nil
	}
	return time.Duration(refreshFlag * float64(time.Second)), nil
}

// settingsInterval returns the persisted refresh interval. A hand-edited
// settings file can hold a parsable but non-positive duration, which must
// never reach a ticker; substitute the default instead.
func settingsInterval(cfg *config.Config) time.Duration {
	if cfg.Monitor.RefreshInterval > 0 {
		return cfg.Monitor.RefreshInterval
	}
	logger.Get().Warnf("settings: refresh_interval %v is not positive, using %gs",
		cfg.Monitor.RefreshInterval, defaultRefresh)
	return time.Duration(defaultRefresh * float64(time.Second))
}

// configDir returns the directory holding the settings file, used to
// anchor relative log paths.
func configDir(path string) string {
	if path == "" {
		return "."
	}
	return filepath.Dir(path)
}

// runDashboard starts the Bubble Tea front-end.
func runDashboard(cmd *cobra.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer logger.Get().Close()

	logger.Get().Infof("dashboard started, refresh %v, language %s",
		s.interval, s.tr.Language())

	model := tui.NewModel(s.collector, s.cfg, s.tr, s.interval)
	if languageFlag != "" {
		model.SetLanguageOverride(languageFlag)
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

func joinLanguages() string {
	return strings.Join(i18n.Languages(), ", ")
}
