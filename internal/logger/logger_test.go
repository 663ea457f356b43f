package logger_test

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logpkg "github.com/maxviazov/courtside-stats/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "production json",
			config: &logpkg.LoggerConfig{
				ServiceName: "test-service",
				Env:         "prod",
				Level:       "info",
				TimeField:   "timestamp",
				Fields:      map[string]interface{}{"key": "value"},
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "staging warn to stderr",
			config:    &logpkg.LoggerConfig{Env: "staging", Level: "warn", OutputTarget: "stderr", TimeFormat: "unix"},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name:      "test env console",
			config:    &logpkg.LoggerConfig{Env: "test", Level: "error", Format: "console"},
			wantLevel: zerolog.ErrorLevel,
		},
		{
			name:        "wrong env",
			config:      &logpkg.LoggerConfig{Env: "wrong-env", Level: "debug"},
			expectError: true,
		},
		{
			name:        "wrong level",
			config:      &logpkg.LoggerConfig{Env: "prod", Level: "loud"},
			expectError: true,
		},
		{
			name:        "wrong time format",
			config:      &logpkg.LoggerConfig{Env: "prod", TimeFormat: "iso"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := logpkg.New(tt.config)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	cfg := &logpkg.LoggerConfig{}
	_, err := logpkg.New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "courtside-stats", cfg.ServiceName)
	assert.True(t, cfg.Stacktrace)
}

func TestNew_DevDebugWritesFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = logpkg.New(&logpkg.LoggerConfig{Env: "dev", Level: "debug"})
	require.NoError(t, err)

	_, statErr := os.Stat("logs/debug.log")
	assert.NoError(t, statErr)
}
