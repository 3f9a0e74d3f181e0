// Package settings provides TUI user preferences persistence.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devknife/devknife/internal/config"
)

const settingsFilename = "settings.json"

// Theme constants.
const (
	ThemeDefault = "default"
	ThemeDark    = "dark"
	ThemeLight   = "light"
)

// Sort constants for the command list.
const (
	SortByName     = "name"
	SortByCategory = "category"
)

// View mode constants.
const (
	ViewModeCompact  = "compact"
	ViewModeDetailed = "detailed"
)

// Settings holds TUI user preferences persisted to disk.
//
// JSON Schema:
//
//	{
//	  "theme": "default",
//	  "sortBy": "category",
//	  "viewMode": "compact",
//	  "showExamples": true,
//	  "lastCommand": ""
//	}
//
// Settings are stored at ~/.config/devknife/settings.json
type Settings struct {
	// Theme selects the TUI color theme: "default", "dark" or "light".
	Theme string `json:"theme"`

	// SortBy orders the command list: "name" or "category".
	SortBy string `json:"sortBy"`

	// ViewMode specifies the display layout: "compact" or "detailed".
	ViewMode string `json:"viewMode"`

	// ShowExamples toggles the usage-examples pane in command detail view.
	ShowExamples bool `json:"showExamples"`

	// LastCommand remembers the command selected in the previous session.
	LastCommand string `json:"lastCommand"`
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() *Settings {
	return &Settings{
		Theme:        ThemeDefault,
		SortBy:       SortByCategory,
		ViewMode:     ViewModeCompact,
		ShowExamples: true,
		LastCommand:  "",
	}
}

// Load reads settings from the config directory.
// If the settings file does not exist, returns default settings.
func Load() (*Settings, error) {
	config.Load()
	settingsPath := getSettingsPath()

	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if err := validate(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

// Save writes settings to the config directory.
// Creates the config directory if it doesn't exist.
func Save(settings *Settings) error {
	config.Load()

	if err := validate(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	configDir := config.Get("config_dir", "")
	if configDir == "" {
		return fmt.Errorf("config_dir not configured")
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(getSettingsPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// getSettingsPath returns the filesystem path for the settings file.
func getSettingsPath() string {
	configDir := config.Get("config_dir", "")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			xdgConfigHome = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfigHome, "devknife")
	}
	return filepath.Join(configDir, settingsFilename)
}

func validate(settings *Settings) error {
	validThemes := map[string]bool{
		"": true, ThemeDefault: true, ThemeDark: true, ThemeLight: true,
	}
	if !validThemes[settings.Theme] {
		return fmt.Errorf("invalid theme value: %s", settings.Theme)
	}

	if settings.SortBy != "" && settings.SortBy != SortByName && settings.SortBy != SortByCategory {
		return fmt.Errorf("invalid sortBy value: %s", settings.SortBy)
	}

	if settings.ViewMode != "" && settings.ViewMode != ViewModeCompact && settings.ViewMode != ViewModeDetailed {
		return fmt.Errorf("invalid viewMode value: %s", settings.ViewMode)
	}

	return nil
}
