package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	HomeAirport        string `json:"home_airport,omitempty"`
	DefaultDestination string `json:"default_destination,omitempty"`
	Timezone           string `json:"timezone,omitempty"`
	AccentColor        string `json:"accent_color,omitempty"`
	ResultLimit        int    `json:"result_limit,omitempty"`

	// Strict aborts a search on the first unreadable results row instead of
	// skipping it.
	Strict          bool `json:"strict,omitempty"`
	NextDayArrivals bool `json:"next_day_arrivals,omitempty"`
}

// Defaults are applied to every field left empty in the config file.
func Defaults() AppConfig {
	return AppConfig{
		Timezone:    "Asia/Karachi",
		AccentColor: "33",
		ResultLimit: 10,
	}
}

// getConfigPath returns the absolute path to ~/.airbluectl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".airbluectl.json"), nil
}

// Load reads the application configuration from disk and fills in defaults.
// Returns the defaults if the file does not exist. The file may contain
// comments and trailing commas.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > 0 {
		if err := json5.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	if err := mergo.Merge(&cfg, Defaults()); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
