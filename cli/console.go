package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sysmon/console"
	"sysmon/logger"
)

// Detail panel flags, mutually exclusive.
var (
	consoleDiskFlag      bool
	consoleTempFlag      bool
	consoleBothFlag      bool
	consoleNoDetailsFlag bool
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the plain-text monitor in the terminal",
	Long: `Run the text front-end: a fixed-position display redrawn in place
on every refresh. Press Ctrl-C to quit.

By default the lower screen shows disk details. Use the flags below to
show temperature sensors instead, both side by side, or no details.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd)
	},
}

func init() {
	f := consoleCmd.Flags()
	f.BoolVarP(&consoleDiskFlag, "disk", "d", false, "show disk details (default)")
	f.BoolVarP(&consoleTempFlag, "temperature", "t", false, "show temperature details")
	f.BoolVarP(&consoleBothFlag, "both", "b", false, "show both disk and temperature details")
	f.BoolVarP(&consoleNoDetailsFlag, "no-details", "x", false, "show no details, only the header")
	consoleCmd.MarkFlagsMutuallyExclusive("disk", "temperature", "both", "no-details")

	rootCmd.AddCommand(consoleCmd)
}

// runConsole starts the text front-end and blocks until interrupted.
// An interrupt is a normal quit, not an error.
func runConsole(cmd *cobra.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer logger.Get().Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mon := console.New(s.collector, s.tr, s.interval, detailMode())
	return mon.Run(ctx)
}

// detailMode maps the detail flags to a mode, defaulting to disk.
func detailMode() console.DetailMode {
	switch {
	case consoleTempFlag:
		return console.DetailTemp
	case consoleBothFlag:
		return console.DetailBoth
	case consoleNoDetailsFlag:
		return console.DetailNone
	default:
		return console.DetailDisk
	}
}
