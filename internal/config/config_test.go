package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "data_dir: puzzles\nparallelism: 2\nlog:\n  level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "puzzles", cfg.DataDir)
	assert.Equal(t, 2, cfg.Parallelism)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "aoc.db", cfg.DBPath)
	assert.True(t, cfg.Cache)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "parallelism: [1, 2\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env beats file", func(t *testing.T) {
		path := writeFile(t, "db_path: file.db\n")
		t.Setenv("AOC_DB", "env.db")
		t.Setenv("AOC_PARALLELISM", "8")
		t.Setenv("AOC_CACHE", "0")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "env.db", cfg.DBPath)
		assert.Equal(t, 8, cfg.Parallelism)
		assert.False(t, cfg.Cache)
	})

	t.Run("unparseable parallelism is an error", func(t *testing.T) {
		t.Setenv("AOC_PARALLELISM", "abc")
		cfg := Default()
		assert.Error(t, cfg.applyEnvOverrides())

		_, err := Load(writeFile(t, "db_path: file.db\n"))
		assert.ErrorContains(t, err, "AOC_PARALLELISM")
	})

	t.Run("unparseable cache flag is an error", func(t *testing.T) {
		t.Setenv("AOC_CACHE", "yes")
		_, err := Load(writeFile(t, "db_path: file.db\n"))
		assert.ErrorContains(t, err, "AOC_CACHE")
	})

	t.Run("cache flag accepts boolean spellings", func(t *testing.T) {
		t.Setenv("AOC_CACHE", "FALSE")
		cfg := Default()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.False(t, cfg.Cache)
	})

	t.Run("log and rpc settings", func(t *testing.T) {
		t.Setenv("AOC_LOG_LEVEL", "warn")
		t.Setenv("AOC_LOG_FORMAT", "json")
		t.Setenv("AOC_RPC_ADDR", "0.0.0.0:9000")
		cfg := Default()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "0.0.0.0:9000", cfg.RPC.Addr)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero parallelism", func(c *Config) { c.Parallelism = 0 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"empty db", func(c *Config) { c.DBPath = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Parallelism = 7
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
