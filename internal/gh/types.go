package gh

import "time"

// Review is one review left on a pull request
type Review struct {
	Author    string // reviewer login
	State     string // APPROVED, CHANGES_REQUESTED, COMMENTED, DISMISSED, PENDING
	CommitOID string // commit the review was left on
}

// PullRequest is a pull request as returned by either the GraphQL search or
// `gh pr list`, normalized to one shape.
type PullRequest struct {
	Repository  string // owner/repo
	Number      int    // 0 when the source did not report it
	Title       string
	URL         string
	Author      string
	IsDraft     bool
	Labels      []string
	CreatedAt   time.Time
	HeadRefName string
	MergeStatus string // upstream mergeStateStatus, e.g. CLEAN, DIRTY, BLOCKED

	LatestCommitOID string // oid of the most recent commit, empty if unknown
	CommitStatus    string // combined status of the latest commit: SUCCESS, FAILURE, PENDING, ERROR
	Reviews         []Review
}

// SearchResult is the outcome of one aliased search
type SearchResult struct {
	IssueCount   int
	PullRequests []PullRequest
}

// FreezeStatus reports whether a repository has an open hotfix pull request
type FreezeStatus struct {
	Repository string
	Frozen     bool
	URL        string // first open hotfix PR, empty when not frozen
}
