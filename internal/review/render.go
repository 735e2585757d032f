package review

import (
	"fmt"
	"strings"

	"github.com/bjulian5/menubar/internal/bitbar"
	"github.com/bjulian5/menubar/internal/gh"
)

const (
	titleSize    = 16
	subtitleSize = 12
	outboxIndent = "  "
)

// Dashboard is everything needed to draw one refresh of the review queue
type Dashboard struct {
	Viewer   string
	Records  []Record
	Freezes  []gh.FreezeStatus
	WIPLabel string
	Palette  bitbar.Palette
}

// MineApproved reports whether any of the viewer's own PRs is approved
func (d Dashboard) MineApproved() bool {
	for _, r := range d.Records {
		if !r.Excluded && r.Author == d.Viewer && r.Approved {
			return true
		}
	}
	return false
}

// Lines renders the dashboard: header, freeze notices, snoozed records, active
// records, then the outbox. The header number counts the active group only;
// snoozed, outbox and bot records are left out of it.
func (d Dashboard) Lines() []bitbar.Line {
	groups := Group(d.Records)

	var frozen []gh.FreezeStatus
	for _, f := range d.Freezes {
		if f.Frozen {
			frozen = append(frozen, f)
		}
	}

	header := fmt.Sprintf("#%d", len(groups.Active))
	if d.MineApproved() {
		header += " " + GlyphApproved
	}
	if len(frozen) > 0 {
		header += " " + GlyphFrozen
	}

	lines := []bitbar.Line{{Text: header}, separator()}

	if len(frozen) > 0 {
		for _, f := range frozen {
			attrs := bitbar.Attrs{bitbar.Color(d.Palette.Subtitle)}
			if f.URL != "" {
				attrs = append(attrs, bitbar.Href(f.URL))
			}
			lines = append(lines, bitbar.Line{Text: GlyphFrozen + " " + f.Repository + " frozen", Attrs: attrs})
		}
		lines = append(lines, separator())
	}

	for _, r := range groups.Snoozed {
		lines = append(lines, d.recordLines(r)...)
	}
	for _, r := range groups.Active {
		lines = append(lines, d.recordLines(r)...)
	}

	lines = append(lines, bitbar.Line{Text: fmt.Sprintf("Outbox (%d)", len(groups.Outbox))})
	for _, r := range groups.Outbox {
		lines = append(lines, bitbar.Line{
			Text:  outboxIndent + titleText(r),
			Attrs: bitbar.Attrs{bitbar.Href(r.URL), bitbar.Trim(false)},
		})
	}

	return lines
}

func (d Dashboard) recordLines(r Record) []bitbar.Line {
	titleColor, subtitleColor := d.Palette.Title, d.Palette.Subtitle
	if d.inactive(r) {
		titleColor, subtitleColor = d.Palette.Inactive, d.Palette.Inactive
	}

	title := titleText(r)
	if r.Snoozed {
		title = GlyphSnoozed + " " + title
	}

	return []bitbar.Line{
		{
			Text:  title,
			Attrs: bitbar.Attrs{bitbar.Size(titleSize), bitbar.Color(titleColor), bitbar.Href(r.URL)},
		},
		{
			Text:  subtitleText(r),
			Attrs: bitbar.Attrs{bitbar.Size(subtitleSize), bitbar.Color(subtitleColor)},
		},
		separator(),
	}
}

func (d Dashboard) inactive(r Record) bool {
	if r.IsDraft || r.Informative || r.Snoozed {
		return true
	}
	return d.WIPLabel != "" && r.Labels.Has(d.WIPLabel)
}

func titleText(r Record) string {
	text := r.Repository + " - " + r.Title
	if badges := r.Badges(); badges != "" {
		text += " " + badges
	}
	return text
}

func subtitleText(r Record) string {
	var b strings.Builder
	if r.Number > 0 {
		fmt.Fprintf(&b, "#%d ", r.Number)
	}
	b.WriteString("opened")
	if r.CreatedAt != "" {
		b.WriteString(" on " + r.CreatedAt)
	}
	if r.Author != "" {
		b.WriteString(" by @" + r.Author)
	}
	if r.HeadRefName != "" {
		b.WriteString(" · " + r.HeadRefName)
	}
	if status := mergeNote(r.MergeStatus); status != "" {
		b.WriteString(" · " + status)
	}
	return b.String()
}

// mergeNote returns a short note for merge states worth surfacing
func mergeNote(status string) string {
	switch strings.ToUpper(status) {
	case "", "CLEAN", "UNKNOWN", "HAS_HOOKS", "UNSTABLE":
		return ""
	default:
		return strings.ToLower(status)
	}
}

func separator() bitbar.Line {
	return bitbar.Line{Text: bitbar.Separator}
}

// MissingCredentialsLines is shown instead of the dashboard when the GitHub
// token or login is not configured
func MissingCredentialsLines(p bitbar.Palette) []bitbar.Line {
	return []bitbar.Line{
		{Text: "⚠ Github review requests", Attrs: bitbar.Attrs{bitbar.Color(p.Warning)}},
		separator(),
		{Text: "ACCESS_TOKEN and GITHUB_LOGIN cannot be empty"},
	}
}
