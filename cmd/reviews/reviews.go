package reviews

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/cobra"

	"github.com/bjulian5/menubar/internal/common"
	"github.com/bjulian5/menubar/internal/config"
	"github.com/bjulian5/menubar/internal/gh"
	"github.com/bjulian5/menubar/internal/review"
	"github.com/bjulian5/menubar/internal/runner"
	"github.com/bjulian5/menubar/internal/ui"
)

const (
	SourceGraphQL = "graphql"
	SourceGH      = "gh"
)

// Command renders the pull-request review queue
type Command struct {
	Opts *common.Options

	// Flags
	Source string // where pull requests come from: graphql or gh

	// Endpoints and I/O (can be replaced in tests)
	GraphQLEndpoint string
	RESTBaseURL     string
	Runner          runner.Runner
	Stdout          io.Writer
	Stderr          io.Writer

	env *common.Env
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Show pull requests waiting on you",
		Long: `Show the GitHub review queue: your own open pull requests, those where
your review is requested, and those you already reviewed.

Records are grouped into snoozed, active and outbox (approved pull requests you
reviewed that are waiting on their author). The title shows the active count,
🏓 when one of your pull requests is approved and ❄️ when a freeze-friction
repository has an open hotfix.

Settings are read from reviews.yaml in the config directory.

Example:
  menubar reviews               # Query the GraphQL search API
  menubar reviews --source gh   # List active_repos with the gh CLI
  menubar reviews --preview     # Render for the terminal`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.Validate(c.Source, validation.In(SourceGraphQL, SourceGH)); err != nil {
				return fmt.Errorf("invalid --source %q: %w", c.Source, err)
			}
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

	cmd.Flags().StringVar(&c.Source, "source", SourceGraphQL, "Pull request source: graphql or gh")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	env := c.env
	ctx, cancel := env.Context(ctx)
	defer cancel()

	creds := env.Credentials
	if err := creds.ValidateGitHub(); err != nil {
		env.Log.Warn("github credentials missing", "error", err)
		if c.Opts.Preview {
			ui.Warningf("Set GITHUB_AUTH_TOKEN and GITHUB_USERNAME in %s", filepath.Join(env.Dir, config.CredentialsFile))
		}
		env.Out.WriteAll(review.MissingCredentialsLines(env.Palette))
		return env.Out.Err()
	}

	cfg, err := config.LoadReviews(filepath.Join(env.Dir, config.ReviewsFile))
	if err != nil {
		return err
	}

	httpClient := gh.NewHTTPClient(creds.GitHubToken, env.Timeout)

	prs, err := c.fetch(ctx, httpClient, creds.GitHubLogin, cfg)
	if err != nil {
		return err
	}

	var freezes []gh.FreezeStatus
	if len(cfg.FreezeFriction) > 0 {
		rest := gh.NewRESTClient(httpClient)
		if c.RESTBaseURL != "" {
			base, err := url.Parse(c.RESTBaseURL)
			if err != nil {
				return fmt.Errorf("failed to parse REST base URL: %w", err)
			}
			rest.BaseURL = base
		}
		freezes, err = gh.NewFreezeProbe(rest, cfg.HotfixBase, env.Log).Check(ctx, cfg.FreezeFriction)
		if err != nil {
			return fmt.Errorf("failed to check hotfix freezes: %w", err)
		}
	}

	records := review.NewClassifier(creds.GitHubLogin, cfg, freezes).ClassifyAll(prs)
	env.Log.Debug("classified pull requests", "source", c.Source, "fetched", len(prs), "records", len(records))

	dashboard := review.Dashboard{
		Viewer:   creds.GitHubLogin,
		Records:  records,
		Freezes:  freezes,
		WIPLabel: cfg.WIPLabel,
		Palette:  env.Palette,
	}
	env.Out.WriteAll(dashboard.Lines())
	return env.Out.Err()
}

func (c *Command) fetch(ctx context.Context, httpClient *http.Client, login string, cfg *config.Reviews) ([]gh.PullRequest, error) {
	switch c.Source {
	case SourceGH:
		client := gh.NewClient(c.env.Log)
		if c.Runner != nil {
			client = gh.NewClientWithRunner(c.Runner, c.env.Log)
		}
		prs, err := client.ListOpenPRsForRepos(ctx, cfg.ActiveRepos)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests: %w", err)
		}
		return prs, nil
	default:
		queue, err := gh.NewGraphQLClient(c.GraphQLEndpoint, httpClient, c.env.Log).FetchReviewQueue(ctx, login, cfg.Filters)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch review queue: %w", err)
		}
		return queue.All(), nil
	}
}
