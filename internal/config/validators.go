package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/devknife/devknife/internal/colors"
)

// Validator validates and normalizes a configuration value.
// Returns the normalized value and an error if validation fails.
type Validator func(key, value, defaultValue string) (normalized string, err error)

// validatorRegistry manages the set of registered validators.
type validatorRegistry struct {
	mu         sync.RWMutex
	validators map[string]Validator
}

var registry = &validatorRegistry{
	validators: make(map[string]Validator),
}

// RegisterValidator registers a validator for a configuration key.
// Panics if a validator is already registered for the key.
func RegisterValidator(key string, validator Validator) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, exists := registry.validators[key]; exists {
		panic(fmt.Sprintf("validator already registered for key: %s", key))
	}
	registry.validators[key] = validator
}

func getValidator(key string) Validator {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.validators[key]
}

// PositiveIntValidator returns a validator that ensures a value is a
// positive integer.
func PositiveIntValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be a positive integer, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return value, nil
	}
}

// EnumValidator returns a validator that ensures a value is one of the
// allowed enum values.
func EnumValidator(allowed map[string]bool) Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		valueLower := strings.ToLower(value)
		if !allowed[valueLower] {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be one of: %s; using default: %s", key, value, allowedValues(allowed), defaultValue))
			return defaultValue, nil
		}
		return valueLower, nil
	}
}

// BoolValidator returns a validator that normalizes boolean values.
func BoolValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		normalized := normalizeBool(value)
		if normalized != "true" && normalized != "false" {
			colors.Warning(fmt.Sprintf("invalid boolean value for %s: '%s', must be one of: 1, true, yes, on, 0, false, no, off; using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return normalized, nil
	}
}

// NonEmptyValidator returns a validator that rejects empty values.
func NonEmptyValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if strings.TrimSpace(value) == "" {
			colors.Warning(fmt.Sprintf("invalid %s value: cannot be empty, using default: %s", key, defaultValue))
			return defaultValue, nil
		}
		return value, nil
	}
}

// normalizeBool converts the accepted boolean spellings to "true"/"false".
func normalizeBool(val string) string {
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		return val
	}
}

// initValidators registers all configuration validators.
func initValidators() {
	positiveInt := PositiveIntValidator()
	RegisterValidator("max_file_size", positiveInt)
	RegisterValidator("streaming_threshold", positiveInt)
	RegisterValidator("log_max_files", positiveInt)

	RegisterValidator("output_format", EnumValidator(map[string]bool{"plain": true, "json": true, "table": true, "auto": true}))
	RegisterValidator("tui_theme", EnumValidator(map[string]bool{"default": true, "dark": true, "light": true}))
	RegisterValidator("default_interface", EnumValidator(map[string]bool{"cli": true, "tui": true}))
	RegisterValidator("log_level", EnumValidator(map[string]bool{"debug": true, "info": true, "warn": true, "error": true}))

	boolValidator := BoolValidator()
	RegisterValidator("log_enabled", boolValidator)
	RegisterValidator("debug", boolValidator)

	RegisterValidator("default_encoding", NonEmptyValidator())
}

// allowedValues returns a comma-separated string of allowed values.
func allowedValues(allowed map[string]bool) string {
	values := make([]string, 0, len(allowed))
	for k := range allowed {
		values = append(values, k)
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}
