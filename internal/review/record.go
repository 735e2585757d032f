package review

import (
	"net/url"
	"strings"

	"github.com/bjulian5/menubar/internal/config"
)

// DateLayout is how creation dates are shown in the dashboard
const DateLayout = "January 02, 2006"

// Record is a classified pull request ready for grouping and rendering
type Record struct {
	Repository  string
	Title       string
	Number      int // 0 when absent
	URL         string
	Author      string
	IsDraft     bool
	Labels      config.Set
	CreatedAt   string
	HeadRefName string
	MergeStatus string

	Approved    bool
	InOutbox    bool
	HasActivity bool
	Failing     bool
	Pending     bool

	Snoozed     bool
	Excluded    bool
	Informative bool
	Frozen      bool
}

// Key identifies the record within one run
func (r Record) Key() string {
	return ParseKey(r.URL)
}

// Badges returns the status glyphs appended to the title
func (r Record) Badges() string {
	var glyphs []string
	if r.Approved {
		glyphs = append(glyphs, GlyphApproved)
	}
	if r.HasActivity {
		glyphs = append(glyphs, GlyphActivity)
	}
	if r.Failing {
		glyphs = append(glyphs, GlyphFailing)
	}
	if r.Pending {
		glyphs = append(glyphs, GlyphPending)
	}
	if r.Frozen {
		glyphs = append(glyphs, GlyphFrozen)
	}
	return strings.Join(glyphs, " ")
}

// ParseKey derives `owner/repo#number` from a pull request URL such as
// https://github.com/owner/repo/pull/123. URLs of any other shape are returned
// unchanged so they still serve as a unique key.
func ParseKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 4 || parts[2] != "pull" || parts[3] == "" {
		return raw
	}
	for _, c := range parts[3] {
		if c < '0' || c > '9' {
			return raw
		}
	}
	return parts[0] + "/" + parts[1] + "#" + parts[3]
}
