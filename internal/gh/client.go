package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bjulian5/menubar/internal/logging"
	"github.com/bjulian5/menubar/internal/runner"
)

// listFields are the `gh pr list --json` fields decoded into PullRequest
const listFields = "number,title,url,author,isDraft,labels,createdAt,headRefName,mergeStateStatus,reviews,commits,statusCheckRollup"

// listLimit raises gh's default page of 30 to match the GraphQL search size
const listLimit = "100"

// Client lists pull requests via the gh CLI
type Client struct {
	runner      runner.Runner
	log         *logging.Logger
	concurrency int
}

// NewClient creates a gh CLI client
func NewClient(log *logging.Logger) *Client {
	return NewClientWithRunner(runner.Exec{}, log)
}

// NewClientWithRunner creates a client that executes commands through runner
func NewClientWithRunner(r runner.Runner, log *logging.Logger) *Client {
	return &Client{runner: r, log: log.Component("gh"), concurrency: 4}
}

// ListOpenPRs returns the open pull requests of repo (owner/name) in the order gh reports them
func (c *Client) ListOpenPRs(ctx context.Context, repo string) ([]PullRequest, error) {
	output, err := c.execGH(ctx,
		"pr", "list",
		"--repo", repo,
		"--state", "open",
		"--limit", listLimit,
		"--json", listFields,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list PRs for %s: %w", repo, err)
	}

	prs, err := parsePRList(output, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PR list for %s: %w", repo, err)
	}
	c.log.Debug("listed PRs", "repo", repo, "count", len(prs))
	return prs, nil
}

// ListOpenPRsForRepos lists every repo and concatenates the results in the
// order repos were given. Any failure fails the whole listing.
func (c *Client) ListOpenPRsForRepos(ctx context.Context, repos []string) ([]PullRequest, error) {
	perRepo, err := fanOut(ctx, repos, c.concurrency, c.ListOpenPRs)
	if err != nil {
		return nil, err
	}
	var all []PullRequest
	for _, prs := range perRepo {
		all = append(all, prs...)
	}
	return all, nil
}

// execGH executes a gh CLI command and returns the output
func (c *Client) execGH(ctx context.Context, args ...string) ([]byte, error) {
	c.log.Debug("exec gh", "args", strings.Join(args, " "))
	return c.runner.Run(ctx, "gh", args...)
}

// prListJSON is one element of `gh pr list --json` output
type prListJSON struct {
	Number           int       `json:"number"`
	Title            string    `json:"title"`
	URL              string    `json:"url"`
	Author           actorJSON `json:"author"`
	IsDraft          bool      `json:"isDraft"`
	CreatedAt        time.Time `json:"createdAt"`
	HeadRefName      string    `json:"headRefName"`
	MergeStateStatus string    `json:"mergeStateStatus"`
	Labels           []struct {
		Name string `json:"name"`
	} `json:"labels"`
	Reviews []struct {
		Author actorJSON `json:"author"`
		State  string    `json:"state"`
		Commit struct {
			OID string `json:"oid"`
		} `json:"commit"`
	} `json:"reviews"`
	Commits []struct {
		OID string `json:"oid"`
	} `json:"commits"`
	StatusCheckRollup []checkJSON `json:"statusCheckRollup"`
}

type actorJSON struct {
	Login string `json:"login"`
}

// checkJSON covers both CheckRun and StatusContext rollup entries
type checkJSON struct {
	Status     string `json:"status"`
	Conclusion string `json:"conclusion"`
	State      string `json:"state"`
}

func (p *prListJSON) toPR(repo string) PullRequest {
	pr := PullRequest{
		Repository:   repo,
		Number:       p.Number,
		Title:        p.Title,
		URL:          p.URL,
		Author:       p.Author.Login,
		IsDraft:      p.IsDraft,
		CreatedAt:    p.CreatedAt,
		HeadRefName:  p.HeadRefName,
		MergeStatus:  p.MergeStateStatus,
		CommitStatus: rollupState(p.StatusCheckRollup),
	}
	for _, l := range p.Labels {
		pr.Labels = append(pr.Labels, l.Name)
	}
	for _, r := range p.Reviews {
		pr.Reviews = append(pr.Reviews, Review{Author: r.Author.Login, State: r.State, CommitOID: r.Commit.OID})
	}
	if n := len(p.Commits); n > 0 {
		pr.LatestCommitOID = p.Commits[n-1].OID
	}
	return pr
}

func parsePRList(data []byte, repo string) ([]PullRequest, error) {
	var raw []prListJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	prs := make([]PullRequest, 0, len(raw))
	for i := range raw {
		if raw[i].URL == "" {
			return nil, fmt.Errorf("entry %d has no url", i)
		}
		prs = append(prs, raw[i].toPR(repo))
	}
	return prs, nil
}

// rollupState collapses check runs and status contexts into one combined state
func rollupState(checks []checkJSON) string {
	if len(checks) == 0 {
		return ""
	}
	pending := false
	for _, c := range checks {
		switch {
		case c.Conclusion == "FAILURE" || c.Conclusion == "TIMED_OUT" || c.Conclusion == "CANCELLED" || c.Conclusion == "ACTION_REQUIRED":
			return "FAILURE"
		case c.State == "FAILURE" || c.State == "ERROR":
			return "FAILURE"
		case c.State == "PENDING" || c.State == "EXPECTED":
			pending = true
		case c.Status != "" && c.Status != "COMPLETED":
			pending = true
		}
	}
	if pending {
		return "PENDING"
	}
	return "SUCCESS"
}
