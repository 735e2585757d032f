package circleci

import (
	"fmt"
	"strings"
	"time"

	"github.com/bjulian5/menubar/internal/bitbar"
)

// Summary is the menu-bar title: running builds, plus 🔺 when the latest run
// of any job failed.
func Summary(builds []Build, branches []Branch) string {
	running := 0
	for _, b := range builds {
		if b.IsRunning() {
			running++
		}
	}

	title := fmt.Sprintf("🚧 %d", running)
	for _, br := range branches {
		for _, b := range br.Latest {
			if b.IsFailed() {
				return title + " 🔺"
			}
		}
	}
	return title
}

// Lines renders the build report
func Lines(builds []Build, now time.Time) []bitbar.Line {
	branches := GroupLatest(builds)

	lines := []bitbar.Line{
		{Text: Summary(builds, branches)},
		{Text: bitbar.Separator},
	}
	for _, br := range branches {
		lines = append(lines,
			bitbar.Line{Text: strings.ToUpper(br.RepoName), Attrs: bitbar.Attrs{bitbar.Size(10)}},
			bitbar.Line{Text: br.Name},
		)
		for _, b := range br.Latest {
			text := fmt.Sprintf("  %s: %s %s %s", b.JobName, b.Status, OutcomeGlyph(b.Outcome), Ago(b.CommittedAt, now))
			lines = append(lines, bitbar.Line{
				Text:  text,
				Attrs: bitbar.Attrs{bitbar.Trim(false), bitbar.Href(b.URL)},
			})
		}
		lines = append(lines, bitbar.Line{Text: bitbar.Separator})
	}
	return lines
}
