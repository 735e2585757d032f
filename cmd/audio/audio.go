package audio

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/bjulian5/menubar/internal/audio"
	"github.com/bjulian5/menubar/internal/common"
	"github.com/bjulian5/menubar/internal/runner"
)

// Command shows which audio output device is active
type Command struct {
	Opts *common.Options

	// Flags
	Switcher string // path to the SwitchAudioSource binary

	// Overridable in tests
	Runner runner.Runner
	Stdout io.Writer
	Stderr io.Writer

	env *common.Env
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "audio",
		Short: "Show the active audio output",
		Long: `Show an icon for the current audio output device: headphones, monitor
speakers or the built-in speakers. The device name is listed in the dropdown.

Requires SwitchAudioSource (brew install switchaudio-osx).

Example:
  menubar audio
  menubar audio --switcher /opt/homebrew/bin/SwitchAudioSource`,
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

	cmd.Flags().StringVar(&c.Switcher, "switcher", audio.DefaultSwitcher, "Path to SwitchAudioSource")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	ctx, cancel := c.env.Context(ctx)
	defer cancel()

	var r runner.Runner = runner.Exec{}
	if c.Runner != nil {
		r = c.Runner
	}

	device, err := audio.CurrentDevice(ctx, r, c.Switcher)
	if err != nil {
		return err
	}

	c.env.Out.WriteAll(audio.Lines(device))
	return c.env.Out.Err()
}
