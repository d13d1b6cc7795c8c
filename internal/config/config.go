package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. A missing file there
// is not an error.
const DefaultPath = "aoc.yaml"

// #region types
// Config holds every tunable of the CLI, harness and RPC server.
type Config struct {
	DataDir     string    `yaml:"data_dir"`
	DBPath      string    `yaml:"db_path"`
	Log         LogConfig `yaml:"log"`
	RPC         RPCConfig `yaml:"rpc"`
	Parallelism int       `yaml:"parallelism"`
	Cache       bool      `yaml:"cache"`
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // json | console
}

// RPCConfig configures the gRPC solver service.
type RPCConfig struct {
	Addr string `yaml:"addr"`
}

// #endregion types

// #region defaults
// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir: "data",
		DBPath:  "aoc.db",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		RPC:         RPCConfig{Addr: "localhost:50051"},
		Parallelism: 4,
		Cache:       true,
	}
}

// #endregion defaults

// #region load
// Load returns defaults overlaid with the YAML file at path and then with
// AOC_* environment variables. A missing file is only an error when path is
// not DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes c as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("AOC_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("AOC_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("AOC_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("AOC_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("AOC_RPC_ADDR"); v != "" {
		c.RPC.Addr = v
	}
	if v := os.Getenv("AOC_PARALLELISM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AOC_PARALLELISM: %q is not an integer", v)
		}
		c.Parallelism = n
	}
	if v := os.Getenv("AOC_CACHE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AOC_CACHE: %q is not a boolean", v)
		}
		c.Cache = b
	}
	return nil
}

// #endregion load

// #region validate
// Validate rejects settings the harness cannot run with.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("config: data_dir is empty")
	}
	if c.DBPath == "" {
		return errors.New("config: db_path is empty")
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("config: parallelism must be >= 1, got %d", c.Parallelism)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

// #endregion validate
