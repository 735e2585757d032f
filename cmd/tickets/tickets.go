package tickets

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/bjulian5/menubar/internal/common"
	"github.com/bjulian5/menubar/internal/jira"
)

// Command renders the Jira tickets assigned to the user
type Command struct {
	Opts *common.Options

	Stdout io.Writer
	Stderr io.Writer

	env *common.Env
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "Show Jira tickets assigned to you",
		Long: `Show the Jira tickets assigned to JIRA_USERNAME in JIRA_PROJECT, grouped by
status. The title is the ticket count.

Requires JIRA_AUTH (user:token), JIRA_USERNAME and JIRA_BASE_URL.

Example:
  menubar tickets`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := common.Init(c.Opts, c.Stdout, c.Stderr)
			if err != nil {
				return err
			}
			if err := env.Credentials.ValidateJira(); err != nil {
				return fmt.Errorf("invalid Jira credentials: %w", err)
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
	client, err := jira.NewClient(creds.JiraBaseURL, creds.JiraAuth, creds.JiraUsername, creds.JiraProject,
		&http.Client{Timeout: env.Timeout}, env.Log)
	if err != nil {
		return err
	}

	tickets, err := client.MyTickets(ctx)
	if err != nil {
		return err
	}

	env.Out.WriteAll(jira.Lines(tickets, env.Palette))
	return env.Out.Err()
}
