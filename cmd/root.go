package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjulian5/menubar/cmd/anniversary"
	"github.com/bjulian5/menubar/cmd/audio"
	"github.com/bjulian5/menubar/cmd/builds"
	"github.com/bjulian5/menubar/cmd/pomodoro"
	"github.com/bjulian5/menubar/cmd/reviews"
	"github.com/bjulian5/menubar/cmd/tickets"
	"github.com/bjulian5/menubar/internal/common"
	"github.com/bjulian5/menubar/internal/ui"
)

var opts = &common.Options{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "menubar",
	Short: "Status-bar plugins for BitBar, xbar and SwiftBar",
	Long: `Menubar bundles a set of menu-bar plugins into one binary.

The host runs a small wrapper script on a schedule, for example reviews.5m.sh:

  #!/bin/sh
  exec menubar reviews

Each subcommand prints one report in the host's "text | key=value" markup.
Credentials are read from .credentials.env in the config directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "Directory holding .credentials.env and reviews.yaml (default: $MENUBAR_CONFIG_DIR, then the executable's directory)")
	flags.BoolVar(&opts.Preview, "preview", false, "Render output for a terminal instead of the menu-bar host")
	flags.BoolVar(&opts.Debug, "debug", false, "Write debug logs to stderr")
	flags.DurationVar(&opts.Timeout, "timeout", common.DefaultTimeout, "Maximum time for one run")

	// Register all commands
	commands := []Command{
		&reviews.Command{Opts: opts},
		&tickets.Command{Opts: opts},
		&anniversary.Command{Opts: opts},
		&pomodoro.Command{Opts: opts},
		&audio.Command{Opts: opts},
		&builds.Command{Opts: opts},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
