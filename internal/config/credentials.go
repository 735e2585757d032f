package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Credentials holds the secrets and host settings shared by all plugins.
// Each plugin validates only the fields it needs.
type Credentials struct {
	// github
	GitHubToken string `env:"GITHUB_AUTH_TOKEN"`
	GitHubLogin string `env:"GITHUB_USERNAME"`

	// jira
	JiraAuth     string `env:"JIRA_AUTH"`
	JiraUsername string `env:"JIRA_USERNAME"`
	JiraBaseURL  string `env:"JIRA_BASE_URL"`
	JiraProject  string `env:"JIRA_PROJECT" env-default:"DIR"`

	// circleci
	CircleToken    string `env:"CIRCLECI_ACCESS_TOKEN"`
	CircleUsername string `env:"CIRCLECI_USERNAME"`

	// host and logging
	DarkModeFlag string `env:"BitBarDarkMode"`
	LogLevel     string `env:"MENUBAR_LOG_LEVEL" env-default:"warn"`
	LogFormat    string `env:"MENUBAR_LOG_FORMAT" env-default:"text"`
}

// LoadCredentials reads dir/.credentials.env when present, then the process
// environment. Values from the file are exported into the environment first, so
// the file wins over variables inherited from the host.
func LoadCredentials(dir string) (*Credentials, error) {
	var creds Credentials

	path := filepath.Join(dir, CredentialsFile)
	if err := cleanenv.ReadConfig(path, &creds); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	if err := cleanenv.ReadEnv(&creds); err != nil {
		return nil, fmt.Errorf("failed to read environment variables: %w", err)
	}

	return &creds, nil
}

// DarkMode reports whether the host is rendering in dark mode
func (c *Credentials) DarkMode() bool {
	return c.DarkModeFlag != ""
}

// ValidateGitHub checks the fields the review dashboard needs
func (c *Credentials) ValidateGitHub() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.GitHubToken, validation.Required),
		validation.Field(&c.GitHubLogin, validation.Required),
	)
}

// ValidateJira checks the fields the ticket queue needs
func (c *Credentials) ValidateJira() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.JiraAuth, validation.Required),
		validation.Field(&c.JiraUsername, validation.Required),
		validation.Field(&c.JiraBaseURL, validation.Required, is.URL),
		validation.Field(&c.JiraProject, validation.Required),
	)
}

// ValidateCircleCI checks the fields the build summary needs
func (c *Credentials) ValidateCircleCI() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.CircleToken, validation.Required),
		validation.Field(&c.CircleUsername, validation.Required),
	)
}
