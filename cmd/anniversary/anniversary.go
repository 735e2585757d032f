package anniversary

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/bjulian5/menubar/internal/common"
	"github.com/bjulian5/menubar/internal/countdown"
)

// Command shows the days until (or since) an anniversary
type Command struct {
	Opts *common.Options

	// Flags
	Date string // anniversary in YYYY-MM-DD form

	// Overridable in tests
	Now    func() time.Time
	Picker countdown.Picker
	Stdout io.Writer
	Stderr io.Writer

	env         *common.Env
	anniversary time.Time
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "anniversary",
		Short: "Count the days to an anniversary",
		Long: `Count the calendar days until an anniversary, or since it once passed.

Milestone days (fewer than five away, or a multiple of five) get a random
celebratory glyph; past dates are shown as +N.

Example:
  menubar anniversary                    # Days to 2022-08-05
  menubar anniversary --date 2025-12-24`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := common.Init(c.Opts, c.Stdout, c.Stderr)
			if err != nil {
				return err
			}
			c.anniversary, err = countdown.ParseDate(c.Date, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
			c.env = env
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&c.Date, "date", countdown.DefaultDate, "Anniversary date (YYYY-MM-DD)")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	picker := countdown.DefaultPicker
	if c.Picker != nil {
		picker = c.Picker
	}

	delta := countdown.Days(c.anniversary, now())
	c.env.Log.Debug("anniversary countdown", "date", c.Date, "delta", delta)

	c.env.Out.Line(countdown.Format(delta, picker))
	return c.env.Out.Err()
}
