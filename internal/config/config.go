// Package config loads the inflight configuration.
//
// Settings come from ~/.config/inflight/config.toml with defaults for
// anything missing, then from the environment (a local .env file is
// honored), which wins over the file. A missing config file is normal;
// an unparseable one is an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds everything the app needs at startup.
type Config struct {
	Provider       string `toml:"provider"`
	PollSeconds    int    `toml:"poll_seconds"`
	TimeoutSeconds int    `toml:"request_timeout_seconds"`
	DemoMode       bool   `toml:"demo_mode"`
	CachePath      string `toml:"cache_path"`
}

const (
	defaultConfigPath  = "~/.config/inflight/config.toml"
	defaultProvider    = "spirit"
	defaultPollSeconds = 30
	defaultTimeoutSecs = 8
)

// Load locates and parses the config, falling back to defaults when the
// file is missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Provider:       defaultProvider,
		PollSeconds:    defaultPollSeconds,
		TimeoutSeconds: defaultTimeoutSecs,
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		if err := toml.Unmarshal(bytes, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

// applyEnv lets the environment override file values. A .env in the
// working directory is loaded first when present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv("INFLIGHT_PROVIDER")); v != "" {
		c.Provider = v
	}
	if v := strings.TrimSpace(os.Getenv("INFLIGHT_POLL_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PollSeconds = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("INFLIGHT_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TimeoutSeconds = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("INFLIGHT_DEMO")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.DemoMode = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("INFLIGHT_CACHE_PATH")); v != "" {
		c.CachePath = v
	}
}

func (c *Config) normalize() {
	c.Provider = strings.TrimSpace(c.Provider)
	if c.Provider == "" {
		c.Provider = defaultProvider
	}
	if c.PollSeconds <= 0 {
		c.PollSeconds = defaultPollSeconds
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSecs
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
