// Package audio reports the current macOS audio output device.
package audio

import (
	"context"
	"fmt"
	"strings"

	"github.com/bjulian5/menubar/internal/bitbar"
	"github.com/bjulian5/menubar/internal/runner"
)

// DefaultSwitcher is the SwitchAudioSource binary installed by Homebrew
const DefaultSwitcher = "/usr/local/bin/SwitchAudioSource"

// SpeakerGlyph is shown for any device without a specific glyph
const SpeakerGlyph = "🔈"

var devicePrefixes = []struct {
	prefix string
	glyph  string
}{
	{"MDR", "🎧"},
	{"BenQ", "🖥"},
}

// CurrentDevice asks the switcher for the active output device
func CurrentDevice(ctx context.Context, r runner.Runner, switcher string) (string, error) {
	out, err := r.Run(ctx, switcher, "-c")
	if err != nil {
		return "", fmt.Errorf("failed to read audio device: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Glyph maps a device name to its symbol by prefix
func Glyph(device string) string {
	for _, p := range devicePrefixes {
		if strings.HasPrefix(device, p.prefix) {
			return p.glyph
		}
	}
	return SpeakerGlyph
}

// Lines renders the indicator
func Lines(device string) []bitbar.Line {
	return []bitbar.Line{
		{Text: Glyph(device)},
		{Text: bitbar.Separator},
		{Text: device},
	}
}
