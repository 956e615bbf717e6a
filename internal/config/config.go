// Package config resolves the Semantic Scholar credential and server
// settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// APIKeyEnv is the environment variable holding the API key. It takes
	// precedence over the config file.
	APIKeyEnv = "SEMANTIC_SCHOLAR_API_KEY"

	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "scholargraph"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// Config is the on-disk configuration.
type Config struct {
	SemanticScholar SemanticScholar `yaml:"semantic_scholar,omitempty"`
}

// SemanticScholar holds the upstream API settings.
type SemanticScholar struct {
	APIKey string `yaml:"api_key,omitempty"`
}

// cache holds the loaded config for the life of the process.
var cache *Config

// Path returns the config file location. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/scholargraph/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the configuration file. A missing file yields an empty
// config, not an error.
func Load() (*Config, error) {
	if cache != nil {
		return cache, nil
	}

	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cache = &cfg
	return &cfg, nil
}

// Reset clears the cached config. Useful for testing.
func Reset() {
	cache = nil
}

// APIKey returns the Semantic Scholar API key, preferring the environment
// variable over the config file. Empty means unauthenticated access.
func APIKey() string {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		return key
	}
	cfg, err := Load()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cfg.SemanticScholar.APIKey)
}
