package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/search"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mazewalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.5, cfg.Delay)
	assert.True(t, cfg.ShowStats)

	g, err := cfg.BuildGrid()
	require.NoError(t, err)
	assert.Equal(t, grid.Canonical().Strings(), g.Strings())

	s, err := cfg.BuildSettings()
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.Seconds())

	alg, err := cfg.DefaultAlgorithm()
	require.NoError(t, err)
	assert.Equal(t, search.BFS, alg)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
delay: 1.25
show_stats: false
algorithm: dfs
log_level: debug
grid:
  - "S #"
  - "  E"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.25, cfg.Delay)
	assert.False(t, cfg.ShowStats)
	assert.Equal(t, slog.LevelDebug, cfg.Level())

	g, err := cfg.BuildGrid()
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, grid.Cell{Row: 1, Col: 2}, g.Target())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "delay: 1.0\nshow_stats: true\n")
	t.Setenv(EnvDelay, "0.2")
	t.Setenv(EnvShowStats, "false")
	t.Setenv(EnvLogLevel, "WARN")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.Delay)
	assert.False(t, cfg.ShowStats)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]struct {
		file string
		env  map[string]string
	}{
		"delay too small": {file: "delay: 0.05\n"},
		"delay too large": {file: "delay: 3\n"},
		"bad algorithm":   {file: "algorithm: astar\n"},
		"bad log level":   {file: "log_level: loud\n"},
		"broken grid":     {file: "grid:\n  - \"S  \"\n  - \"  \"\n"},
		"no target":       {file: "grid:\n  - \"S #\"\n"},
		"env delay":       {env: map[string]string{EnvDelay: "fast"}},
		"env stats":       {env: map[string]string{EnvShowStats: "maybe"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			path := ""
			if tc.file != "" {
				path = writeFile(t, tc.file)
			}
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeFile(t, "delay: [1,\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestApplyEnv_Unset(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.applyEnv(func(string) (string, bool) { return "", false }))
	assert.Equal(t, Default(), cfg)
}
