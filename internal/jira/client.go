package jira

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	gojira "github.com/andygrunwald/go-jira"

	"github.com/bjulian5/menubar/internal/logging"
)

// searchLimit caps one search page; the menu has no paging
const searchLimit = 100

// Client queries the Jira search API
type Client struct {
	api      *gojira.Client
	baseURL  string
	username string
	project  string
	log      *logging.Logger
}

// NewClient creates a Jira client rooted at baseURL. auth is "user:token" and
// is sent as HTTP basic auth; httpClient contributes its transport and timeout.
func NewClient(baseURL, auth, username, project string, httpClient *http.Client, log *logging.Logger) (*Client, error) {
	user, token, ok := strings.Cut(auth, ":")
	if !ok {
		return nil, fmt.Errorf("JIRA_AUTH must be user:token")
	}

	tp := gojira.BasicAuthTransport{Username: user, Password: token, Transport: httpClient.Transport}
	hc := tp.Client()
	hc.Timeout = httpClient.Timeout

	api, err := gojira.NewClient(hc, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create Jira client: %w", err)
	}

	return &Client{
		api:      api,
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		project:  project,
		log:      log.Component("jira"),
	}, nil
}

// JQL returns the query selecting the user's tickets in the project
func (c *Client) JQL() string {
	return fmt.Sprintf("project=%s AND assignee=%s", c.project, c.username)
}

// BrowseURL links to a ticket in the Jira web UI
func (c *Client) BrowseURL(key string) string {
	return c.baseURL + "/browse/" + key
}

// MyTickets returns the user's tickets in the order Jira reports them
func (c *Client) MyTickets(ctx context.Context) ([]Ticket, error) {
	issues, _, err := c.api.Issue.SearchWithContext(ctx, c.JQL(), &gojira.SearchOptions{
		Fields:     []string{"summary", "status"},
		MaxResults: searchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query Jira: %w", err)
	}

	tickets := make([]Ticket, 0, len(issues))
	for i, issue := range issues {
		if issue.Key == "" || issue.Fields == nil || issue.Fields.Status == nil {
			return nil, fmt.Errorf("Jira issue %d is missing key or status", i)
		}
		tickets = append(tickets, Ticket{
			Name:   fmt.Sprintf("%s: %s", issue.Key, issue.Fields.Summary),
			Status: issue.Fields.Status.Name,
			Href:   c.BrowseURL(issue.Key),
		})
	}
	c.log.Debug("fetched tickets", "count", len(tickets))
	return tickets, nil
}
