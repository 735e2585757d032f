package review

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/menubar/internal/config"
	"github.com/bjulian5/menubar/internal/gh"
)

const viewer = "octocat"

func newPR(repo string, number int, author string, reviews ...gh.Review) gh.PullRequest {
	return gh.PullRequest{
		Repository:      repo,
		Number:          number,
		Title:           "Change " + repo,
		URL:             "https://github.com/" + repo + "/pull/" + strconv.Itoa(number),
		Author:          author,
		LatestCommitOID: "head",
		Reviews:         reviews,
	}
}

func TestIsApproved(t *testing.T) {
	tests := []struct {
		name     string
		pr       gh.PullRequest
		expected bool
	}{
		{
			name:     "no reviews",
			pr:       newPR("o/r", 1, "alice"),
			expected: false,
		},
		{
			name:     "approval on latest commit",
			pr:       newPR("o/r", 1, "alice", gh.Review{Author: "bob", State: "APPROVED", CommitOID: "head"}),
			expected: true,
		},
		{
			name:     "changes requested on latest commit counts",
			pr:       newPR("o/r", 1, "alice", gh.Review{Author: "bob", State: "CHANGES_REQUESTED", CommitOID: "head"}),
			expected: true,
		},
		{
			name:     "comment only on latest commit",
			pr:       newPR("o/r", 1, "alice", gh.Review{Author: "bob", State: "COMMENTED", CommitOID: "head"}),
			expected: false,
		},
		{
			name:     "approval on an older commit",
			pr:       newPR("o/r", 1, "alice", gh.Review{Author: "bob", State: "APPROVED", CommitOID: "old"}),
			expected: false,
		},
		{
			name: "old approval plus comment on latest",
			pr: newPR("o/r", 1, "alice",
				gh.Review{Author: "bob", State: "APPROVED", CommitOID: "old"},
				gh.Review{Author: "bob", State: "COMMENTED", CommitOID: "head"},
			),
			expected: false,
		},
		{
			name: "unknown latest commit",
			pr: gh.PullRequest{
				Reviews: []gh.Review{{Author: "bob", State: "APPROVED", CommitOID: ""}},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsApproved(tt.pr))
		})
	}
}

func TestIsInOutbox(t *testing.T) {
	approvedByViewer := gh.Review{Author: viewer, State: "APPROVED", CommitOID: "head"}

	tests := []struct {
		name     string
		pr       gh.PullRequest
		expected bool
	}{
		{
			name:     "viewer approved someone else's PR",
			pr:       newPR("o/r", 1, "alice", approvedByViewer),
			expected: true,
		},
		{
			name:     "viewer is the author",
			pr:       newPR("o/r", 1, viewer, approvedByViewer),
			expected: false,
		},
		{
			name: "approved by someone else, viewer only commented earlier",
			pr: newPR("o/r", 1, "alice",
				gh.Review{Author: viewer, State: "COMMENTED", CommitOID: "old"},
				gh.Review{Author: "bob", State: "APPROVED", CommitOID: "head"},
			),
			expected: true,
		},
		{
			name:     "approved without any viewer review",
			pr:       newPR("o/r", 1, "alice", gh.Review{Author: "bob", State: "APPROVED", CommitOID: "head"}),
			expected: false,
		},
		{
			name:     "viewer reviewed but not approved",
			pr:       newPR("o/r", 1, "alice", gh.Review{Author: viewer, State: "COMMENTED", CommitOID: "head"}),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsInOutbox(tt.pr, viewer))
		})
	}
}

func TestIsExcluded(t *testing.T) {
	assert.True(t, IsExcluded("dependabot"))
	assert.True(t, IsExcluded("dependabot-preview"))
	assert.True(t, IsExcluded("app/dependabot"))
	assert.True(t, IsExcluded("dependabot[bot]"))
	assert.False(t, IsExcluded("renovate"))
	assert.False(t, IsExcluded("alice"))
}

func TestHasActivity(t *testing.T) {
	assert.False(t, HasActivity(newPR("o/r", 1, "alice"), viewer))
	assert.False(t, HasActivity(newPR("o/r", 1, "alice", gh.Review{Author: viewer}), viewer))
	assert.True(t, HasActivity(newPR("o/r", 1, "alice", gh.Review{Author: "bob"}), viewer))
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://github.com/owner/repo/pull/123", "owner/repo#123"},
		{"https://github.com/owner/repo/pull/123/", "owner/repo#123"},
		{"https://github.com/owner/repo/issues/7", "https://github.com/owner/repo/issues/7"},
		{"https://github.com/owner/repo/pull/abc", "https://github.com/owner/repo/pull/abc"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseKey(tt.url))
		})
	}
}

func TestClassifier_Classify(t *testing.T) {
	cfg := config.DefaultReviews()
	cfg.SnoozePRs = config.NewSet("owner/repo#12")
	cfg.InformativeRepos = config.NewSet("owner/docs")
	freezes := []gh.FreezeStatus{
		{Repository: "owner/repo", Frozen: true, URL: "https://github.com/owner/repo/pull/99"},
		{Repository: "owner/docs", Frozen: false},
	}
	c := NewClassifier(viewer, cfg, freezes)

	pr := newPR("owner/repo", 12, "alice", gh.Review{Author: viewer, State: "APPROVED", CommitOID: "head"})
	pr.CreatedAt = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	pr.Labels = []string{"wip", "backend"}
	pr.CommitStatus = "FAILURE"
	pr.IsDraft = true

	r := c.Classify(pr)

	assert.Equal(t, "owner/repo#12", r.Key())
	assert.Equal(t, "March 05, 2024", r.CreatedAt)
	assert.True(t, r.Approved)
	assert.True(t, r.InOutbox)
	assert.True(t, r.Snoozed)
	assert.True(t, r.Frozen)
	assert.True(t, r.Failing)
	assert.False(t, r.Pending)
	assert.False(t, r.Excluded)
	assert.False(t, r.Informative)
	assert.True(t, r.IsDraft)
	assert.True(t, r.Labels.Has("wip"))
	assert.Equal(t, "🏓 ❄️", r.Badges())

	docs := c.Classify(newPR("owner/docs", 3, "dependabot"))
	assert.True(t, docs.Informative)
	assert.True(t, docs.Excluded)
	assert.False(t, docs.Frozen)
	assert.False(t, docs.Snoozed)
}

func TestClassifier_SnoozeIgnoresOtherFlags(t *testing.T) {
	cfg := config.DefaultReviews()
	cfg.SnoozePRs = config.NewSet("o/r#1", "o/r#2")
	c := NewClassifier(viewer, cfg, nil)

	plain := c.Classify(newPR("o/r", 1, "alice"))
	outbox := c.Classify(newPR("o/r", 2, "alice", gh.Review{Author: viewer, State: "APPROVED", CommitOID: "head"}))
	other := c.Classify(newPR("o/r", 3, "alice"))

	assert.True(t, plain.Snoozed)
	assert.True(t, outbox.Snoozed)
	assert.True(t, outbox.InOutbox)
	assert.False(t, other.Snoozed)
}

func TestClassifier_ClassifyAllDedupesByKey(t *testing.T) {
	c := NewClassifier(viewer, config.DefaultReviews(), nil)

	first := newPR("o/r", 1, "alice")
	dup := newPR("o/r", 1, "alice")
	dup.Title = "duplicate from another search"
	second := newPR("o/r", 2, "bob")

	records := c.ClassifyAll([]gh.PullRequest{first, dup, second})

	require.Len(t, records, 2)
	assert.Equal(t, first.Title, records[0].Title)
	assert.Equal(t, "o/r#2", records[1].Key())
}
