package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// CredentialsFile holds dotenv-style secrets next to the plugin
	CredentialsFile = ".credentials.env"
	// ReviewsFile holds the review dashboard settings
	ReviewsFile = "reviews.yaml"

	configDirEnv = "MENUBAR_CONFIG_DIR"
)

// ResolveDir returns the directory holding the credentials and YAML files.
// Precedence: explicit flag value, $MENUBAR_CONFIG_DIR, then the directory of
// the running executable (the host keeps plugins and their files together).
func ResolveDir(flagValue string) (string, error) {
	if flagValue != "" {
		return filepath.Clean(flagValue), nil
	}
	if env := os.Getenv(configDirEnv); env != "" {
		return filepath.Clean(env), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
