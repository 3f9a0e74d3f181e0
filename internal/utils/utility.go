// Package utils contains the built-in utility modules and their
// registration entry point.
package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/devknife/devknife/internal/core"
)

// blankInput reports whether the input is empty or whitespace-only.
func blankInput(input core.InputData) bool {
	return strings.TrimSpace(input.String()) == ""
}

// boolOption reads a boolean option, tolerating string and numeric
// spellings coming from the CLI layer.
func boolOption(options map[string]any, key string, def bool) bool {
	raw, ok := options[key]
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	case int:
		return v != 0
	case float64:
		return v != 0
	}
	return def
}

// intOption reads an integer option, tolerating string and float
// spellings coming from the CLI layer.
func intOption(options map[string]any, key string, def int) int {
	raw, ok := options[key]
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// stringOption reads a string option.
func stringOption(options map[string]any, key, def string) string {
	raw, ok := options[key]
	if !ok {
		return def
	}
	if s, ok := raw.(string); ok && s != "" {
		return s
	}
	if raw != nil {
		return fmt.Sprint(raw)
	}
	return def
}
