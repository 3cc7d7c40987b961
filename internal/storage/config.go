package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// EndpointEnv overrides the configured GraphQL endpoint when set.
const EndpointEnv = "STORIES_ENDPOINT"

// Config holds application configuration.
type Config struct {
	Endpoint       string `json:"endpoint"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
	LogLevel       string `json:"logLevel"`  // debug, info, warn, error
	LogFile        string `json:"logFile"`   // empty = ~/.config/stories/stories.log
	CachePath      string `json:"cachePath"` // empty = ~/.config/stories/cache.db
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Endpoint:       "http://localhost:4000/graphql",
		TimeoutSeconds: 10,
		LogLevel:       "info",
	}
}

// Timeout returns the HTTP timeout for API calls.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			config.applyEnv()
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.Endpoint == "" {
		config.Endpoint = defaults.Endpoint
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	config.applyEnv()
	return &config, nil
}

// applyEnv lets the environment override file settings.
func (c *Config) applyEnv() {
	if endpoint := os.Getenv(EndpointEnv); endpoint != "" {
		c.Endpoint = endpoint
	}
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/stories/config.json
func DefaultConfigFilePath() (string, error) {
	return inConfigDir("config.json")
}
