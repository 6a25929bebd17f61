package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/itemtree/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("positional paths and defaults", func(t *testing.T) {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse([]string{"items", "more/tree.yaml"}, &out)
		require.NoError(t, err)
		require.False(t, shouldExit)

		assert.Equal(t, []string{"items", "more/tree.yaml"}, cfg.Paths)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, app.OutputText, cfg.Output)
		assert.Zero(t, cfg.Workers)
		assert.False(t, cfg.StrictPaths)
		assert.Empty(t, out.String())
	})

	t.Run("all flags", func(t *testing.T) {
		args := []string{
			"--log-format", "JSON",
			"--log-level", "Debug",
			"-o", "json",
			"--item", "living.light",
			"--workers", "3",
			"--strict-paths",
			"items",
		}
		cfg, shouldExit, err := Parse(args, &bytes.Buffer{})
		require.NoError(t, err)
		require.False(t, shouldExit)

		assert.Equal(t, &app.Config{
			Paths:       []string{"items"},
			LogFormat:   "json",
			LogLevel:    "debug",
			Output:      app.OutputJSON,
			Item:        "living.light",
			Workers:     3,
			StrictPaths: true,
		}, cfg)
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse([]string{"--help"}, &out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "itemtree [flags] PATH...")
		assert.Contains(t, out.String(), "--strict-paths")
	})

	t.Run("missing path prints usage", func(t *testing.T) {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse(nil, &out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	errCases := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"unknown flag", []string{"--this-is-not-a-valid-flag", "items"}, "unknown flag"},
		{"bad log format", []string{"--log-format", "xml", "items"}, "invalid log-format"},
		{"bad log level", []string{"--log-level", "loud", "items"}, "invalid log-level"},
		{"bad output", []string{"--output", "xml", "items"}, "invalid output format"},
		{"negative workers", []string{"--workers", "-2", "items"}, "workers must not be negative"},
		{"non-numeric workers", []string{"--workers", "many", "items"}, "invalid argument"},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			_, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.False(t, shouldExit)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.errMsg)
		})
	}
}
