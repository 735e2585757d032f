package review

import (
	"strings"

	"github.com/bjulian5/menubar/internal/config"
	"github.com/bjulian5/menubar/internal/gh"
)

const reviewStateCommented = "COMMENTED"

// Status glyphs
const (
	GlyphApproved = "🏓"
	GlyphActivity = "🔸"
	GlyphFailing  = "🔺"
	GlyphPending  = "▫️"
	GlyphFrozen   = "❄️"
	GlyphSnoozed  = "💤"
)

// botAuthors never show up in the dashboard
var botAuthors = config.NewSet("dependabot", "dependabot-preview")

// Classifier derives per-record flags from static configuration.
// Every predicate reads only the pull request and the classifier's fields.
type Classifier struct {
	Viewer      string
	Snoozed     config.Set
	Informative config.Set
	Frozen      config.Set
}

// NewClassifier builds a classifier for viewer from the dashboard config and
// the freeze probe results
func NewClassifier(viewer string, cfg *config.Reviews, freezes []gh.FreezeStatus) *Classifier {
	frozen := config.NewSet()
	for _, f := range freezes {
		if f.Frozen {
			frozen[f.Repository] = struct{}{}
		}
	}
	return &Classifier{
		Viewer:      viewer,
		Snoozed:     cfg.SnoozePRs,
		Informative: cfg.InformativeRepos,
		Frozen:      frozen,
	}
}

// Classify maps one pull request to a record
func (c *Classifier) Classify(pr gh.PullRequest) Record {
	approved := IsApproved(pr)
	r := Record{
		Repository:  pr.Repository,
		Title:       pr.Title,
		Number:      pr.Number,
		URL:         pr.URL,
		Author:      pr.Author,
		IsDraft:     pr.IsDraft,
		Labels:      config.NewSet(pr.Labels...),
		HeadRefName: pr.HeadRefName,
		MergeStatus: pr.MergeStatus,

		Approved:    approved,
		InOutbox:    IsInOutbox(pr, c.Viewer),
		HasActivity: HasActivity(pr, c.Viewer),
		Failing:     pr.CommitStatus == "FAILURE" || pr.CommitStatus == "ERROR",
		Pending:     pr.CommitStatus == "PENDING",

		Excluded:    IsExcluded(pr.Author),
		Informative: c.Informative.Has(pr.Repository),
		Frozen:      c.Frozen.Has(pr.Repository),
	}
	if !pr.CreatedAt.IsZero() {
		r.CreatedAt = pr.CreatedAt.Format(DateLayout)
	}
	r.Snoozed = c.Snoozed.Has(r.Key())
	return r
}

// ClassifyAll classifies prs in order, dropping repeated keys after the first
func (c *Classifier) ClassifyAll(prs []gh.PullRequest) []Record {
	seen := config.NewSet()
	records := make([]Record, 0, len(prs))
	for _, pr := range prs {
		r := c.Classify(pr)
		key := r.Key()
		if seen.Has(key) {
			continue
		}
		seen[key] = struct{}{}
		records = append(records, r)
	}
	return records
}

// IsApproved reports whether a review other than a plain comment was left on
// the latest commit
func IsApproved(pr gh.PullRequest) bool {
	if pr.LatestCommitOID == "" {
		return false
	}
	for _, rv := range pr.Reviews {
		if rv.CommitOID == pr.LatestCommitOID && rv.State != reviewStateCommented {
			return true
		}
	}
	return false
}

// IsInOutbox reports whether viewer has reviewed an approved PR someone else owns
func IsInOutbox(pr gh.PullRequest, viewer string) bool {
	if viewer == "" || pr.Author == viewer || !IsApproved(pr) {
		return false
	}
	for _, rv := range pr.Reviews {
		if rv.Author == viewer {
			return true
		}
	}
	return false
}

// HasActivity reports whether anyone other than viewer has reviewed the PR
func HasActivity(pr gh.PullRequest, viewer string) bool {
	for _, rv := range pr.Reviews {
		if rv.Author != viewer {
			return true
		}
	}
	return false
}

// IsExcluded reports whether author is a bot account the dashboard hides.
// `gh` reports apps as "app/<name>" and REST as "<name>[bot]"; both are normalized.
func IsExcluded(author string) bool {
	login := strings.TrimPrefix(author, "app/")
	login = strings.TrimSuffix(login, "[bot]")
	return botAuthors.Has(login)
}
