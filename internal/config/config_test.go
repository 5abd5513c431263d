package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/switchback/internal/config"
	"github.com/aretw0/switchback/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
debug: true
color: never
frames: true
order: [right, down, left, up]
max_states: "5000"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Debug)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.True(t, cfg.Frames)
	assert.False(t, cfg.Markdown)
	assert.Equal(t, 5000, cfg.MaxStates, "weakly typed input accepts quoted numbers")

	order, err := cfg.MoveOrder()
	require.NoError(t, err)
	assert.Equal(t, []domain.Move{domain.Right, domain.Down, domain.Left, domain.Up}, order)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "Malformed YAML", content: "order: [up"},
		{name: "Unknown key", content: "board: portal"},
		{name: "Bad color", content: "color: purple"},
		{name: "Bad order", content: "order: [up, up]"},
		{name: "Negative cap", content: "max_states: -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDefault_MoveOrder(t *testing.T) {
	order, err := config.Default().MoveOrder()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOrder, order)
}
