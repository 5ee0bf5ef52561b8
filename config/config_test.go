package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/lanesim/engine"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lanesim.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, found, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
[grid]
height = 30

[agents]
layout = "spread"
initial = 5
fast = 1
fault_rate = 0.25

[run]
seed = 7
steps = 50
interval = "50ms"

[feed]
addr = "127.0.0.1:9000"
`)

	cfg, found, err := Load(path)
	require.NoError(t, err)
	assert.True(t, found)

	assert.Equal(t, 8, cfg.Grid.Width, "unset keys keep defaults")
	assert.Equal(t, 30, cfg.Grid.Height)
	assert.True(t, cfg.Grid.WrapY)
	assert.Equal(t, uint64(7), cfg.Run.Seed)
	assert.Equal(t, 50*time.Millisecond, cfg.Run.Interval.Duration)
	assert.Equal(t, "127.0.0.1:9000", cfg.Feed.Addr)

	ec, err := cfg.Engine()
	require.NoError(t, err)
	assert.Equal(t, engine.LayoutSpread, ec.Layout)
	assert.Equal(t, 5, ec.InitialAgents)
	assert.Equal(t, 1, ec.FastAgents)
	assert.Equal(t, 0.25, ec.FaultRate)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, `
[grid]
depth = 3
`)
	_, _, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid.depth")
}

func TestLoad_RejectsInvalidEngineConfig(t *testing.T) {
	path := writeFile(t, `
[agents]
fault_rate = 2.0
`)
	_, _, err := Load(path)
	assert.ErrorIs(t, err, engine.ErrInvalidFaultRate)
}

func TestLoad_RejectsBadLayout(t *testing.T) {
	path := writeFile(t, `
[agents]
layout = "diagonal"
`)
	_, _, err := Load(path)
	assert.ErrorIs(t, err, engine.ErrUnknownLayout)
}

func TestLoad_SyntaxError(t *testing.T) {
	path := writeFile(t, "[grid\nwidth = 8")
	_, found, err := Load(path)
	assert.Error(t, err)
	assert.True(t, found)
}

func TestWriteDefault_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lanesim.toml")
	require.NoError(t, WriteDefault(path))

	cfg, found, err := Load(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, Default(), cfg)

	// Existing files are left alone
	require.NoError(t, os.WriteFile(path, []byte("[run]\nsteps = 3\n"), 0o644))
	require.NoError(t, WriteDefault(path))
	cfg, _, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Run.Steps)
}
