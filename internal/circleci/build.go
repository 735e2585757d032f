package circleci

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Build is one CircleCI job run
type Build struct {
	Status      string
	Branch      string
	RepoName    string
	JobName     string
	URL         string
	Outcome     string
	CommittedAt time.Time // zero when CircleCI did not report a committer date
}

// IsRunning reports whether the build is in progress
func (b Build) IsRunning() bool { return b.Status == "running" }

// IsFailed reports whether the build failed
func (b Build) IsFailed() bool { return b.Status == "failed" }

func parseCommitterDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse committer date %q: %w", s, err)
	}
	return t, nil
}

// Branch groups the latest build of every job on one branch
type Branch struct {
	Name     string
	RepoName string
	Latest   []Build // one per job, sorted by job name
}

// GroupLatest groups builds by branch and keeps the most recent build per job.
// Branches and jobs are sorted by name.
func GroupLatest(builds []Build) []Branch {
	byBranch := make(map[string][]Build)
	for _, b := range builds {
		byBranch[b.Branch] = append(byBranch[b.Branch], b)
	}

	names := make([]string, 0, len(byBranch))
	for name := range byBranch {
		names = append(names, name)
	}
	slices.Sort(names)

	branches := make([]Branch, 0, len(names))
	for _, name := range names {
		group := byBranch[name]
		latest := make(map[string]Build)
		for _, b := range group {
			cur, ok := latest[b.JobName]
			if !ok || b.CommittedAt.After(cur.CommittedAt) {
				latest[b.JobName] = b
			}
		}
		jobs := make([]Build, 0, len(latest))
		for _, b := range latest {
			jobs = append(jobs, b)
		}
		slices.SortFunc(jobs, func(a, b Build) int { return strings.Compare(a.JobName, b.JobName) })

		branches = append(branches, Branch{Name: name, RepoName: group[0].RepoName, Latest: jobs})
	}
	return branches
}

// OutcomeGlyph maps a build outcome to its display glyph
func OutcomeGlyph(outcome string) string {
	switch outcome {
	case "success":
		return "✅"
	case "failed":
		return "❌"
	default:
		return outcome
	}
}
