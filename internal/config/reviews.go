package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"gopkg.in/yaml.v3"
)

// DefaultHotfixBase is the base branch whose open PRs freeze a repository
const DefaultHotfixBase = "hotfix"

var (
	repoPattern = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)
	prPattern   = regexp.MustCompile(`^[\w.-]+/[\w.-]+#\d+$`)
)

// Reviews is the review dashboard configuration.
// Repository lists that drive acquisition keep their file order; lists used only
// for membership are sets.
type Reviews struct {
	SnoozePRs        Set
	InformativeRepos Set
	ActiveRepos      []string
	FreezeFriction   []string

	Filters    string
	WIPLabel   string
	HotfixBase string
}

type reviewsFile struct {
	SnoozePRs        []string `yaml:"snooze_prs"`
	InformativeRepos []string `yaml:"informative_repos"`
	ActiveRepos      []string `yaml:"active_repos"`
	FreezeFriction   []string `yaml:"freeze_friction"`
	Filters          string   `yaml:"filters"`
	WIPLabel         string   `yaml:"wip_label"`
	HotfixBase       string   `yaml:"hotfix_base"`
}

// DefaultReviews returns the configuration used when no file exists
func DefaultReviews() *Reviews {
	return &Reviews{
		SnoozePRs:        NewSet(),
		InformativeRepos: NewSet(),
		HotfixBase:       DefaultHotfixBase,
	}
}

// ParseReviewsYAML decodes and validates a dashboard configuration payload.
// An empty payload yields the defaults.
func ParseReviewsYAML(data []byte) (*Reviews, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultReviews(), nil
	}

	var raw reviewsFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}

	snooze := clean(raw.SnoozePRs)
	informative := clean(raw.InformativeRepos)
	active := clean(raw.ActiveRepos)
	freeze := clean(raw.FreezeFriction)

	if err := validateAll("snooze_prs", snooze, prPattern); err != nil {
		return nil, err
	}
	for key, list := range map[string][]string{
		"informative_repos": informative,
		"active_repos":      active,
		"freeze_friction":   freeze,
	} {
		if err := validateAll(key, list, repoPattern); err != nil {
			return nil, err
		}
	}

	cfg := &Reviews{
		SnoozePRs:        NewSet(snooze...),
		InformativeRepos: NewSet(informative...),
		ActiveRepos:      dedupe(active),
		FreezeFriction:   dedupe(freeze),
		Filters:          strings.TrimSpace(raw.Filters),
		WIPLabel:         strings.TrimSpace(raw.WIPLabel),
		HotfixBase:       strings.TrimSpace(raw.HotfixBase),
	}
	if cfg.HotfixBase == "" {
		cfg.HotfixBase = DefaultHotfixBase
	}
	return cfg, nil
}

// LoadReviews reads the dashboard configuration from path.
// A missing file is treated as "use defaults".
func LoadReviews(path string) (*Reviews, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultReviews(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseReviewsYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

func validateAll(key string, items []string, pattern *regexp.Regexp) error {
	for _, item := range items {
		if err := validation.Validate(item, validation.Match(pattern)); err != nil {
			return fmt.Errorf("invalid %s entry %q: %w", key, item, err)
		}
	}
	return nil
}

func clean(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func dedupe(items []string) []string {
	seen := make(Set, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen.Has(item) {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
