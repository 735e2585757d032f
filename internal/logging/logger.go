package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

// Logger wraps slog with the attributes every plugin run carries.
// Output must never go to stdout: that stream belongs to the host renderer.
type Logger struct {
	*slog.Logger
}

// New creates a logger writing to w, tagged with a fresh run id
func New(cfg *Config, w io.Writer) (*Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid log config: %w", err)
	}

	logger := slog.New(createHandler(cfg, w)).With("run", NewRunID())
	return &Logger{logger}, nil
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return &Logger{slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func createHandler(cfg *Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     cfg.SlogLevel(),
		AddSource: cfg.AddSource,
	}

	switch cfg.Format {
	case "text":
		return tint.NewHandler(w, &tint.Options{
			Level:      opts.Level,
			AddSource:  opts.AddSource,
			TimeFormat: "15:04:05",
		})
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

// Component returns a child logger labelled with a component name
func (l *Logger) Component(name string) *Logger {
	return &Logger{l.Logger.With("component", name)}
}

// NewRunID returns a short id correlating all log lines of one invocation
func NewRunID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
