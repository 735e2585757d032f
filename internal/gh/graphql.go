package gh

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shurcooL/githubv4"

	"github.com/bjulian5/menubar/internal/logging"
)

// DefaultGraphQLEndpoint is GitHub's public GraphQL API
const DefaultGraphQLEndpoint = "https://api.github.com/graphql"

// mergeStateStatus is still behind a schema preview
const previewAccept = "application/vnd.github.merge-info-preview+json, application/vnd.github.shadow-cat-preview+json"

// reviewQueueQuery runs all three searches in one request; each alias maps to
// one variable holding a search-syntax string.
type reviewQueueQuery struct {
	Mine      searchConnection `graphql:"mine: search(query: $mine, type: ISSUE, first: 100)"`
	Requested searchConnection `graphql:"requested: search(query: $requested, type: ISSUE, first: 100)"`
	Reviewed  searchConnection `graphql:"reviewed: search(query: $reviewed, type: ISSUE, first: 100)"`
}

type searchConnection struct {
	IssueCount int
	Nodes      []struct {
		PullRequest prNode `graphql:"... on PullRequest"`
	}
}

type actor struct {
	Login string
}

type prNode struct {
	Repository struct {
		NameWithOwner string
	}
	Number           int
	URL              string
	Title            string
	IsDraft          bool
	CreatedAt        githubv4.DateTime
	HeadRefName      string
	MergeStateStatus string
	Author           actor
	Labels           struct {
		Nodes []struct {
			Name string
		}
	} `graphql:"labels(first: 100)"`
	Reviews struct {
		Nodes []struct {
			State  string
			Author actor
			Commit struct {
				OID string
			}
		}
	} `graphql:"reviews(last: 3)"`
	Commits struct {
		Nodes []struct {
			Commit struct {
				OID    string
				Status struct {
					State string
				}
			}
		}
	} `graphql:"commits(last: 1)"`
}

// ReviewQueue holds the three searches that make up the dashboard
type ReviewQueue struct {
	Mine      SearchResult
	Requested SearchResult
	Reviewed  SearchResult
}

// All returns every pull request in source order: mine, requested, reviewed
func (q *ReviewQueue) All() []PullRequest {
	all := make([]PullRequest, 0, len(q.Mine.PullRequests)+len(q.Requested.PullRequests)+len(q.Reviewed.PullRequests))
	all = append(all, q.Mine.PullRequests...)
	all = append(all, q.Requested.PullRequests...)
	all = append(all, q.Reviewed.PullRequests...)
	return all
}

// SearchQueries builds the search strings for login, appending filters (e.g. "org:acme")
func SearchQueries(login, filters string) map[string]string {
	build := func(qualifier string) string {
		return strings.TrimSpace(fmt.Sprintf("type:pr state:open %s:%s %s", qualifier, login, filters))
	}
	return map[string]string{
		"mine":      build("author"),
		"requested": build("review-requested"),
		"reviewed":  build("reviewed-by"),
	}
}

// headerTransport sets one request header on every request
type headerTransport struct {
	key, value string
	base       http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set(t.key, t.value)
	return t.base.RoundTrip(r)
}

// GraphQLClient talks to the GitHub GraphQL API
type GraphQLClient struct {
	client *githubv4.Client
	log    *logging.Logger
}

// NewGraphQLClient creates a client for endpoint using an authenticated HTTP client
func NewGraphQLClient(endpoint string, httpClient *http.Client, log *logging.Logger) *GraphQLClient {
	if endpoint == "" {
		endpoint = DefaultGraphQLEndpoint
	}

	hc := *httpClient
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc.Transport = &headerTransport{key: "Accept", value: previewAccept, base: base}

	return &GraphQLClient{
		client: githubv4.NewEnterpriseClient(endpoint, &hc),
		log:    log.Component("graphql"),
	}
}

// FetchReviewQueue runs the dashboard searches for login in a single request
func (c *GraphQLClient) FetchReviewQueue(ctx context.Context, login, filters string) (*ReviewQueue, error) {
	queries := SearchQueries(login, filters)
	variables := map[string]interface{}{
		"mine":      githubv4.String(queries["mine"]),
		"requested": githubv4.String(queries["requested"]),
		"reviewed":  githubv4.String(queries["reviewed"]),
	}

	start := time.Now()
	var q reviewQueueQuery
	if err := c.client.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to query GitHub GraphQL: %w", err)
	}
	c.log.Debug("graphql review queue", "elapsed", time.Since(start),
		"mine", q.Mine.IssueCount, "requested", q.Requested.IssueCount, "reviewed", q.Reviewed.IssueCount)

	return &ReviewQueue{
		Mine:      q.Mine.toResult(),
		Requested: q.Requested.toResult(),
		Reviewed:  q.Reviewed.toResult(),
	}, nil
}

// login returns the actor's login; deleted accounts come back as null
func (a actor) login() string {
	if a.Login == "" {
		return "ghost"
	}
	return a.Login
}

func (n *prNode) toPR() PullRequest {
	pr := PullRequest{
		Repository:  n.Repository.NameWithOwner,
		Number:      n.Number,
		Title:       n.Title,
		URL:         n.URL,
		Author:      n.Author.login(),
		IsDraft:     n.IsDraft,
		CreatedAt:   n.CreatedAt.Time,
		HeadRefName: n.HeadRefName,
		MergeStatus: n.MergeStateStatus,
	}
	for _, l := range n.Labels.Nodes {
		pr.Labels = append(pr.Labels, l.Name)
	}
	for _, r := range n.Reviews.Nodes {
		pr.Reviews = append(pr.Reviews, Review{Author: r.Author.login(), State: r.State, CommitOID: r.Commit.OID})
	}
	if len(n.Commits.Nodes) > 0 {
		latest := n.Commits.Nodes[len(n.Commits.Nodes)-1].Commit
		pr.LatestCommitOID = latest.OID
		pr.CommitStatus = latest.Status.State
	}
	return pr
}

func (s *searchConnection) toResult() SearchResult {
	res := SearchResult{IssueCount: s.IssueCount}
	for i := range s.Nodes {
		// non-PR hits decode as empty objects
		node := &s.Nodes[i].PullRequest
		if node.URL == "" {
			continue
		}
		res.PullRequests = append(res.PullRequests, node.toPR())
	}
	return res
}
