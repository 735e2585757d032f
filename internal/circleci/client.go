package circleci

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bjulian5/menubar/internal/logging"
)

// DefaultBaseURL is the CircleCI v1.1 API root
const DefaultBaseURL = "https://circleci.com/api/v1.1"

const recentBuildsLimit = "60"

// Client fetches recent builds from CircleCI
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *logging.Logger
}

// NewClient creates a CircleCI client. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL, token string, httpClient *http.Client, log *logging.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
		log:     log.Component("circleci"),
	}
}

type buildJSON struct {
	Status        string `json:"status"`
	Branch        string `json:"branch"`
	RepoName      string `json:"reponame"`
	BuildURL      string `json:"build_url"`
	Outcome       string `json:"outcome"`
	CommitterDate string `json:"committer_date"`
	User          *struct {
		Login string `json:"login"`
	} `json:"user"`
	Workflows *struct {
		JobName string `json:"job_name"`
	} `json:"workflows"`
}

// RecentBuilds returns the recent builds triggered by login
func (c *Client) RecentBuilds(ctx context.Context, login string) ([]Build, error) {
	params := url.Values{
		"circle-token": {c.token},
		"limit":        {recentBuildsLimit},
		"shallow":      {"true"},
	}
	endpoint := c.baseURL + "/recent-builds?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build CircleCI request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query CircleCI: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read CircleCI response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CircleCI recent-builds returned %s", resp.Status)
	}

	return parseBuilds(body, login)
}

func parseBuilds(body []byte, login string) ([]Build, error) {
	var raw []buildJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse CircleCI response: %w", err)
	}

	var builds []Build
	for i, b := range raw {
		if b.User == nil || b.User.Login != login {
			continue
		}
		if b.Workflows == nil {
			return nil, fmt.Errorf("CircleCI build %d has no workflow", i)
		}
		build := Build{
			Status:   b.Status,
			Branch:   b.Branch,
			RepoName: b.RepoName,
			JobName:  b.Workflows.JobName,
			URL:      b.BuildURL,
			Outcome:  b.Outcome,
		}
		if b.CommitterDate != "" {
			committed, err := parseCommitterDate(b.CommitterDate)
			if err != nil {
				return nil, fmt.Errorf("CircleCI build %d: %w", i, err)
			}
			build.CommittedAt = committed
		}
		builds = append(builds, build)
	}
	return builds, nil
}
