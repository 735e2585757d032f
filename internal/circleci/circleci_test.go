package circleci

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/menubar/internal/logging"
)

const recentBuildsFixture = `[
  {"status": "running", "branch": "feature", "reponame": "api", "build_url": "https://circle/1", "outcome": null,
   "committer_date": "2024-03-01T11:00:00Z", "user": {"login": "me"}, "workflows": {"job_name": "test"}},
  {"status": "failed", "branch": "feature", "reponame": "api", "build_url": "https://circle/0", "outcome": "failed",
   "committer_date": "2024-03-01T10:00:00Z", "user": {"login": "me"}, "workflows": {"job_name": "test"}},
  {"status": "success", "branch": "feature", "reponame": "api", "build_url": "https://circle/2", "outcome": "success",
   "committer_date": "2024-03-01T10:00:00Z", "user": {"login": "me"}, "workflows": {"job_name": "lint"}},
  {"status": "failed", "branch": "main", "reponame": "api", "build_url": "https://circle/3", "outcome": "failed",
   "committer_date": "2024-02-29T12:00:00Z", "user": {"login": "someone"}, "workflows": {"job_name": "test"}}
]`

func TestClient_RecentBuilds(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recent-builds", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(recentBuildsFixture))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", srv.Client(), logging.Discard())

	builds, err := client.RecentBuilds(context.Background(), "me")
	require.NoError(t, err)

	assert.Equal(t, []string{"secret"}, gotQuery["circle-token"])
	assert.Equal(t, []string{"60"}, gotQuery["limit"])
	assert.Equal(t, []string{"true"}, gotQuery["shallow"])

	require.Len(t, builds, 3, "builds from other users are dropped")
	assert.Equal(t, "test", builds[0].JobName)
	assert.Equal(t, "", builds[0].Outcome)
	assert.Equal(t, time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC), builds[0].CommittedAt)
}

func TestClient_RecentBuilds_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `[]`},
		{name: "not a list", status: http.StatusOK, body: `{"message": "nope"}`},
		{name: "missing workflow", status: http.StatusOK, body: `[{"status": "running", "user": {"login": "me"}}]`},
		{name: "bad date", status: http.StatusOK, body: `[{"committer_date": "yesterday", "user": {"login": "me"}, "workflows": {"job_name": "x"}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "t", srv.Client(), logging.Discard()).RecentBuilds(context.Background(), "me")
			assert.Error(t, err)
		})
	}
}

func TestGroupLatest(t *testing.T) {
	early := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)
	builds := []Build{
		{Branch: "zeta", RepoName: "api", JobName: "test", Status: "success", CommittedAt: early},
		{Branch: "alpha", RepoName: "web", JobName: "test", Status: "failed", CommittedAt: early},
		{Branch: "alpha", RepoName: "web", JobName: "test", Status: "running", CommittedAt: late},
		{Branch: "alpha", RepoName: "web", JobName: "build", Status: "success", CommittedAt: early},
	}

	branches := GroupLatest(builds)

	require.Len(t, branches, 2)
	assert.Equal(t, "alpha", branches[0].Name)
	assert.Equal(t, "web", branches[0].RepoName)
	require.Len(t, branches[0].Latest, 2)
	assert.Equal(t, "build", branches[0].Latest[0].JobName)
	assert.Equal(t, "test", branches[0].Latest[1].JobName)
	assert.Equal(t, "running", branches[0].Latest[1].Status, "latest run per job wins")
	assert.Equal(t, "zeta", branches[1].Name)
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name   string
		builds []Build
		want   string
	}{
		{name: "empty", want: "🚧 0"},
		{
			name:   "running only",
			builds: []Build{{Branch: "b", JobName: "j", Status: "running"}},
			want:   "🚧 1",
		},
		{
			name: "latest failed",
			builds: []Build{
				{Branch: "b", JobName: "j", Status: "failed"},
				{Branch: "b", JobName: "k", Status: "running"},
			},
			want: "🚧 1 🔺",
		},
		{
			name: "older failure superseded",
			builds: []Build{
				{Branch: "b", JobName: "j", Status: "failed", CommittedAt: time.Unix(100, 0)},
				{Branch: "b", JobName: "j", Status: "success", CommittedAt: time.Unix(200, 0)},
			},
			want: "🚧 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(tt.builds, GroupLatest(tt.builds)))
		})
	}
}

func TestLines(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	builds := []Build{
		{Branch: "feature", RepoName: "api", JobName: "lint", Status: "success", Outcome: "success",
			URL: "https://circle/2", CommittedAt: now.Add(-90 * time.Second)},
		{Branch: "feature", RepoName: "api", JobName: "test", Status: "failed", Outcome: "failed",
			URL: "https://circle/1", CommittedAt: now.Add(-26 * time.Hour)},
	}

	var got []string
	for _, l := range Lines(builds, now) {
		got = append(got, l.String())
	}

	assert.Equal(t, []string{
		"🚧 0 🔺",
		"---",
		"API | size=10",
		"feature",
		"  lint: success ✅ a minute ago | trim=False href=https://circle/2",
		"  test: failed ❌ yesterday | trim=False href=https://circle/1",
		"---",
	}, got)
}

func TestOutcomeGlyph(t *testing.T) {
	assert.Equal(t, "✅", OutcomeGlyph("success"))
	assert.Equal(t, "❌", OutcomeGlyph("failed"))
	assert.Equal(t, "canceled", OutcomeGlyph("canceled"))
	assert.Equal(t, "", OutcomeGlyph(""))
}

func TestAgo(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		diff time.Duration
		want string
	}{
		{name: "just now", diff: 5 * time.Second, want: "just now"},
		{name: "seconds", diff: 42 * time.Second, want: "42 seconds ago"},
		{name: "a minute", diff: 61 * time.Second, want: "a minute ago"},
		{name: "minutes truncate", diff: 5*time.Minute + 50*time.Second, want: "5 minutes ago"},
		{name: "an hour", diff: 90 * time.Minute, want: "an hour ago"},
		{name: "hours round", diff: 2*time.Hour + 40*time.Minute, want: "3 hours ago"},
		{name: "hours half even", diff: 2*time.Hour + 30*time.Minute, want: "2 hours ago"},
		{name: "yesterday", diff: 30 * time.Hour, want: "yesterday"},
		{name: "days", diff: 3 * 24 * time.Hour, want: "3 days ago"},
		{name: "weeks", diff: 20 * 24 * time.Hour, want: "2 weeks ago"},
		{name: "months", diff: 95 * 24 * time.Hour, want: "3 months ago"},
		{name: "years", diff: 800 * 24 * time.Hour, want: "2 years ago"},
		{name: "future", diff: -time.Minute, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ago(now.Add(-tt.diff), now))
		})
	}

	assert.Equal(t, "", Ago(time.Time{}, now))
}
