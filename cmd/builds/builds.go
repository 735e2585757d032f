package builds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/bjulian5/menubar/internal/circleci"
	"github.com/bjulian5/menubar/internal/common"
)

// Command renders the user's recent CircleCI builds
type Command struct {
	Opts *common.Options

	// Overridable in tests
	BaseURL string
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer

	env *common.Env
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "builds",
		Short: "Show your recent CircleCI builds",
		Long: `Show the latest CircleCI build of every job, grouped by branch, for builds
triggered by CIRCLECI_USERNAME. The title is the number of running builds, with
🔺 when the latest run of any job failed.

Requires CIRCLECI_ACCESS_TOKEN and CIRCLECI_USERNAME.

Example:
  menubar builds`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := common.Init(c.Opts, c.Stdout, c.Stderr)
			if err != nil {
				return err
			}
			if err := env.Credentials.ValidateCircleCI(); err != nil {
				return fmt.Errorf("invalid CircleCI credentials: %w", err)
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
	env := c.env
	ctx, cancel := env.Context(ctx)
	defer cancel()

	creds := env.Credentials
	client := circleci.NewClient(c.BaseURL, creds.CircleToken, &http.Client{Timeout: env.Timeout}, env.Log)

	builds, err := client.RecentBuilds(ctx, creds.CircleUsername)
	if err != nil {
		return err
	}
	env.Log.Debug("fetched builds", "count", len(builds))

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	env.Out.WriteAll(circleci.Lines(builds, now()))
	return env.Out.Err()
}
