package pomodoro

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/bjulian5/menubar/internal/common"
	"github.com/bjulian5/menubar/internal/pomodoro"
)

// Command shows the pomodoro clock
type Command struct {
	Opts *common.Options

	// Overridable in tests
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer

	env *common.Env
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Show the pomodoro clock",
		Long: `Show the current pomodoro mode and the minutes until it changes.

The day is divided into fifteen-minute slots cycling through
work, work, break, break, regroup, work, work, regroup.

Example:
  menubar pomodoro`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := common.Init(c.Opts, c.Stdout, c.Stderr)
			if err != nil {
				return err
			}
			c.env = env
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context())
		},
	}

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	c.env.Out.WriteAll(pomodoro.Lines(now()))
	return c.env.Out.Err()
}
