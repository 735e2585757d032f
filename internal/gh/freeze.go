package gh

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v48/github"

	"github.com/bjulian5/menubar/internal/logging"
)

// FreezeProbe checks repositories for open pull requests against a hotfix base
// branch. An open hotfix PR means merges to that repository need extra care.
type FreezeProbe struct {
	client      *github.Client
	base        string
	log         *logging.Logger
	concurrency int
}

// NewRESTClient returns a GitHub REST client using httpClient for transport
func NewRESTClient(httpClient *http.Client) *github.Client {
	return github.NewClient(httpClient)
}

// NewFreezeProbe creates a probe looking for open PRs targeting base
func NewFreezeProbe(client *github.Client, base string, log *logging.Logger) *FreezeProbe {
	return &FreezeProbe{client: client, base: base, log: log.Component("freeze"), concurrency: 4}
}

// Check probes each repo (owner/name), returning statuses in the given order
func (p *FreezeProbe) Check(ctx context.Context, repos []string) ([]FreezeStatus, error) {
	return fanOut(ctx, repos, p.concurrency, p.checkRepo)
}

func (p *FreezeProbe) checkRepo(ctx context.Context, repo string) (FreezeStatus, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return FreezeStatus{}, fmt.Errorf("invalid repository %q: expected owner/name", repo)
	}

	prs, _, err := p.client.PullRequests.List(ctx, owner, name, &github.PullRequestListOptions{
		State:       "open",
		Base:        p.base,
		ListOptions: github.ListOptions{PerPage: 1},
	})
	if err != nil {
		return FreezeStatus{}, fmt.Errorf("failed to check %s for %s PRs: %w", repo, p.base, err)
	}

	status := FreezeStatus{Repository: repo}
	if len(prs) > 0 {
		status.Frozen = true
		status.URL = prs[0].GetHTMLURL()
	}
	p.log.Debug("freeze check", "repo", repo, "base", p.base, "frozen", status.Frozen)
	return status, nil
}
