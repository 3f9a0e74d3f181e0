package format

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/devknife/devknife/internal/core"
)

// Format selects how command output is rendered.
type Format string

const (
	Plain Format = "plain"
	JSON  Format = "json"
	Table Format = "table"
	Auto  Format = "auto"
)

// ParseFormat maps a user-supplied format name to a Format.
// Unknown names fall back to Auto.
func ParseFormat(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain":
		return Plain
	case "json":
		return JSON
	case "table":
		return Table
	default:
		return Auto
	}
}

// Formatter renders command output values according to a Format.
type Formatter struct {
	cfg core.Config
}

func NewFormatter(cfg core.Config) *Formatter {
	return &Formatter{cfg: cfg}
}

// FormatOutput renders value in the requested format. Auto picks JSON
// for structured values and plain text for everything else.
func (f *Formatter) FormatOutput(value any, format Format) (string, error) {
	switch format {
	case JSON:
		return f.formatJSON(value)
	case Table:
		return f.formatTable(value)
	case Auto:
		if isStructured(value) {
			return f.formatJSON(value)
		}
		return f.formatPlain(value), nil
	default:
		return f.formatPlain(value), nil
	}
}

func (f *Formatter) formatPlain(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func (f *Formatter) formatJSON(value any) (string, error) {
	// A string that already holds JSON gets re-indented rather than
	// double-encoded.
	if s, ok := value.(string); ok {
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			value = parsed
		}
	}
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode output as JSON: %w", err)
	}
	return string(out), nil
}

func (f *Formatter) formatTable(value any) (string, error) {
	switch v := value.(type) {
	case []map[string]any:
		return renderRows(v), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		rows := make([]map[string]any, 0, len(v))
		for _, key := range keys {
			rows = append(rows, map[string]any{"Key": key, "Value": v[key]})
		}
		return renderRows(rows), nil
	case []any:
		maps := make([]map[string]any, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return f.formatPlain(value), nil
			}
			maps = append(maps, m)
		}
		return renderRows(maps), nil
	default:
		return f.formatPlain(value), nil
	}
}

func isStructured(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		_, isStr := value.(string)
		return !isStr
	default:
		return false
	}
}
