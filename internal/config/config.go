// Package config handles Session Architect configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSearchPaths returns the config file search order.
// An explicit path (from -config flag) is checked first.
// Then: ./config.yaml, ~/.config/sessionarchitect/config.yaml,
// /etc/sessionarchitect/config.yaml.
func DefaultSearchPaths() []string {
	paths := []string{"config.yaml"}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "sessionarchitect", "config.yaml"))
	}

	paths = append(paths, "/etc/sessionarchitect/config.yaml")
	return paths
}

// FindConfig locates a config file. If explicit is non-empty, it must exist.
// Otherwise, searches DefaultSearchPaths and returns the first that exists.
// Returns the path found, or an error if nothing was found.
func FindConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	for _, p := range DefaultSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("no config file found (searched: %v)", DefaultSearchPaths())
}

// Config holds all Session Architect configuration.
type Config struct {
	Listen   ListenConfig   `yaml:"listen"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
	Sessions SessionsConfig `yaml:"sessions"`
	DataDir  string         `yaml:"data_dir"`
	LogLevel string         `yaml:"log_level"`
}

// ListenConfig defines the web server settings.
type ListenConfig struct {
	Address string `yaml:"address"` // Bind address (default: "" = all interfaces)
	Port    int    `yaml:"port"`
}

// OpenAIConfig defines the generation service settings.
type OpenAIConfig struct {
	// APIKey authenticates requests to the generation API.
	// Supports ${OPENAI_API_KEY} expansion from the environment.
	APIKey string `yaml:"api_key"`
	// BaseURL overrides the API endpoint (primarily for tests and proxies).
	BaseURL string `yaml:"base_url"`
	// Model is the generation model name.
	Model string `yaml:"model"`
	// PlanMaxTokens caps session plan output length.
	PlanMaxTokens int `yaml:"plan_max_tokens"`
	// NoteMaxTokens caps progress note output length.
	NoteMaxTokens int `yaml:"note_max_tokens"`
	// PlanTemperature is the sampling temperature for plan generation.
	PlanTemperature float64 `yaml:"plan_temperature"`
	// NoteTemperature is the sampling temperature for note generation.
	NoteTemperature float64 `yaml:"note_temperature"`
}

// SessionsConfig defines browser session settings.
type SessionsConfig struct {
	// TTLHours is how long a login session stays valid (default 24).
	TTLHours int `yaml:"ttl_hours"`
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns a default configuration.
func Default() *Config {
	return &Config{
		Listen:  ListenConfig{Port: 8080},
		DataDir: "data",
		OpenAI: OpenAIConfig{
			Model:           "gpt-4o",
			PlanMaxTokens:   3000,
			NoteMaxTokens:   1500,
			PlanTemperature: 0.7,
			NoteTemperature: 0.6,
		},
		Sessions: SessionsConfig{TTLHours: 24},
	}
}
