// Package config provides configuration loading: defaults, a TOML file in
// the XDG config directory, and DEVKNIFE_* environment overrides, validated
// by a table of registered validators.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/devknife/devknife/internal/colors"
	"github.com/devknife/devknife/internal/core"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x).
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--).
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML configuration files.
	FileExtTOML = ".toml"
)

var (
	config   map[string]string
	defaults map[string]string
	mu       sync.RWMutex
)

func init() {
	initValidators()
}

// Load initializes configuration. Later sources win: defaults, then the
// config file, then environment variables.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	defaults = make(map[string]string)

	setDefaults()
	loadFromFile()
	loadFromEnv()
	validate()
	createSampleConfig()
}

// setDefaults populates config with default values.
func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	setDefault("config_dir", filepath.Join(xdgConfigHome, "devknife"))
	setDefault("state_dir", filepath.Join(xdgStateHome, "devknife"))
	setDefault("default_encoding", "utf-8")
	setDefault("max_file_size", strconv.Itoa(100*1024*1024))
	setDefault("streaming_threshold", strconv.Itoa(10*1024*1024))
	setDefault("output_format", "auto")
	setDefault("tui_theme", "default")
	setDefault("default_interface", "tui")
	setDefault("log_enabled", "false")
	setDefault("log_level", "info")
	setDefault("log_max_files", "10")
	setDefault("debug", "false")
}

func setDefault(key, value string) {
	config[key] = value
	defaults[key] = value
}

// loadFromFile reads configuration from a TOML file.
func loadFromFile() {
	configPath := os.Getenv("DEVKNIFE_CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join(config["config_dir"], "config"+FileExtTOML)
		if _, err := os.Stat(configPath); err != nil {
			return
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", configPath, err))
		return
	}

	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", configPath, err))
		return
	}

	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceConfigValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
	}
}

// coerceConfigValue converts a configuration value to its string form.
// Supported types are string, int, int64, float64, and bool.
func coerceConfigValue(value interface{}) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

// loadFromEnv applies DEVKNIFE_* environment variable overrides.
func loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "DEVKNIFE_") {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], "DEVKNIFE_"))
		if key == "config_path" || key == "debug_colors" {
			continue
		}
		config[key] = parts[1]
	}
}

// validate checks and normalizes configuration values using registered
// validators. Invalid values fall back to defaults with a warning, so a
// broken config file never prevents startup.
func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		defaultValue := defaults[key]
		normalized, err := validator(key, value, defaultValue)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", key, err, defaultValue))
			config[key] = defaultValue
		} else {
			config[key] = normalized
		}
	}
}

// createSampleConfig writes a sample configuration file if none exists.
func createSampleConfig() {
	configDir := config["config_dir"]
	if configDir == "" {
		return
	}
	samplePath := filepath.Join(configDir, "config"+FileExtTOML)
	if _, err := os.Stat(samplePath); err == nil {
		return
	}
	if err := os.MkdirAll(configDir, FileModeDir); err != nil {
		return
	}

	typed := make(map[string]interface{})
	for k, v := range defaults {
		typed[k] = valueToInterface(v)
	}
	data, err := toml.Marshal(typed)
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to marshal sample config: %v", err))
		return
	}
	header := "# devknife configuration\n# This file is in TOML format.\n# Edit values as needed; environment variables (DEVKNIFE_*) take precedence.\n\n"
	if err := os.WriteFile(samplePath, append([]byte(header), data...), FileModeFile); err != nil {
		colors.Warning(fmt.Sprintf("unable to write sample config to %s: %v", samplePath, err))
	}
}

// valueToInterface converts a configuration value to a typed value for TOML.
func valueToInterface(val string) interface{} {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}

// Get returns a configuration value or the given default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as an integer, or the given default.
func GetInt(key string, defaultValue int) int {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as a boolean, or the given default.
func GetBool(key string, defaultValue bool) bool {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// ToCore builds the validated core.Config from the loaded configuration.
func ToCore() (core.Config, error) {
	return core.NewConfig(
		Get("default_encoding", "utf-8"),
		int64(GetInt("max_file_size", 100*1024*1024)),
		Get("output_format", "auto"),
		Get("tui_theme", "default"),
		int64(GetInt("streaming_threshold", 10*1024*1024)),
	)
}
