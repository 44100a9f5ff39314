package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosearch/search"
)

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Empty(t, cfg.MazePath)
	assert.Zero(t, cfg.Strategy)
	assert.True(t, cfg.AskStep)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParse_Flags(t *testing.T) {
	cfg, _, err := Parse([]string{"-strategy", "a*", "-step", "-no-image", "-log-level", "DEBUG", "maze1.txt"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "maze1.txt", cfg.MazePath)
	assert.Equal(t, search.AStar, cfg.Strategy)
	assert.True(t, cfg.Step)
	assert.True(t, cfg.NoImage)
	assert.False(t, cfg.AskStep)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "gosearch [options] [MAZE_PATH]")
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string][]string{
		"unknown flag": {"-colour"},
		"strategy":     {"-strategy", "7"},
		"log format":   {"-log-format", "xml"},
		"log level":    {"-log-level", "loud"},
		"two paths":    {"a.txt", "b.txt"},
		"missing conf": {"-config", filepath.Join(os.TempDir(), "gosearch-missing.hcl")},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := Parse(args, &bytes.Buffer{})
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "got %v", err)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

// TestParse_ProfileOverride loads a profile and lets explicit flags win.
func TestParse_ProfileOverride(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "run.hcl")
	src := "maze = \"m.txt\"\nstrategy = \"greedy\"\nlog_format = \"json\"\nlisten = \":8080\"\n"
	require.NoError(t, os.WriteFile(profile, []byte(src), 0o600))

	cfg, _, err := Parse([]string{"-config", profile, "-listen", ""}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "m.txt"), cfg.MazePath)
	assert.Equal(t, search.Greedy, cfg.Strategy)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Listen)
	assert.False(t, cfg.AskStep)
}
