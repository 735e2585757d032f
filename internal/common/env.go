package common

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bjulian5/menubar/internal/bitbar"
	"github.com/bjulian5/menubar/internal/config"
	"github.com/bjulian5/menubar/internal/logging"
	"github.com/bjulian5/menubar/internal/ui"
)

// DefaultTimeout bounds a whole plugin run
const DefaultTimeout = 30 * time.Second

// Options holds the persistent flags shared by every plugin
type Options struct {
	ConfigDir string
	Preview   bool
	Debug     bool
	Timeout   time.Duration
}

// Env is everything a plugin needs for one run
type Env struct {
	Dir         string
	Credentials *config.Credentials
	Log         *logging.Logger
	Out         *bitbar.Printer
	Palette     bitbar.Palette
	Timeout     time.Duration
}

// Init resolves the config directory, loads credentials and builds the logger
// and printer. Nil writers default to os.Stdout and os.Stderr.
// Returns an error that is suitable for use in PreRunE hooks.
func Init(opts *Options, stdout, stderr io.Writer) (*Env, error) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	dir, err := config.ResolveDir(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	creds, err := config.LoadCredentials(dir)
	if err != nil {
		return nil, err
	}

	logCfg := &logging.Config{Level: creds.LogLevel, Format: creds.LogFormat}
	if opts.Debug {
		logCfg.Level = "debug"
		logCfg.AddSource = true
	}
	log, err := logging.New(logCfg, stderr)
	if err != nil {
		return nil, fmt.Errorf("logger initialization failed (check MENUBAR_LOG_LEVEL and MENUBAR_LOG_FORMAT): %w", err)
	}
	log.Debug("loaded configuration", "dir", dir)

	out := bitbar.NewPrinter(stdout)
	if opts.Preview {
		width := 80
		if f, ok := stdout.(*os.File); ok {
			width = ui.GetTerminalWidth(f)
		}
		out = out.WithRenderer(ui.NewPreview(lipgloss.NewRenderer(stdout), width).Render)
	}

	return &Env{
		Dir:         dir,
		Credentials: creds,
		Log:         log,
		Out:         out,
		Palette:     bitbar.NewPalette(creds.DarkMode()),
		Timeout:     opts.Timeout,
	}, nil
}

// Context bounds ctx by the run timeout. A zero timeout leaves ctx unbounded.
func (e *Env) Context(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.Timeout)
}
