package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "text warn", cfg: Config{Level: "warn", Format: "text"}},
		{name: "json debug", cfg: Config{Level: "debug", Format: "json"}},
		{name: "unknown level", cfg: Config{Level: "verbose", Format: "text"}, wantErr: true},
		{name: "unknown format", cfg: Config{Level: "info", Format: "xml"}, wantErr: true},
		{name: "empty", cfg: Config{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&Config{Level: "debug"}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{Level: "info"}).SlogLevel())
	assert.Equal(t, slog.LevelWarn, (&Config{Level: "warn"}).SlogLevel())
	assert.Equal(t, slog.LevelError, (&Config{Level: "error"}).SlogLevel())
}

func TestNew_JSONCarriesRunAndComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&Config{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Component("reviews").Info("fetched", "count", 3)
	logger.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fetched", entry["msg"])
	assert.Equal(t, "reviews", entry["component"])
	assert.Equal(t, float64(3), entry["count"])
	assert.Len(t, entry["run"], 12)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(&Config{Level: "loud", Format: "text"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}
