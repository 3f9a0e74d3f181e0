package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devknife/devknife/internal/core"
)

func newFormatter(t *testing.T) *Formatter {
	t.Helper()
	return NewFormatter(core.DefaultConfig())
}

func TestFormatPlainString(t *testing.T) {
	out, err := newFormatter(t).FormatOutput("hello world", Plain)
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestFormatPlainNil(t *testing.T) {
	out, err := newFormatter(t).FormatOutput(nil, Plain)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestFormatPlainNonString(t *testing.T) {
	out, err := newFormatter(t).FormatOutput(42, Plain)
	require.NoError(t, err)
	assert.Equal(t, "42", out)
}

func TestFormatJSONMap(t *testing.T) {
	data := map[string]any{"key": "value", "number": 42}
	out, err := newFormatter(t).FormatOutput(data, JSON)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "value", parsed["key"])
	assert.Equal(t, float64(42), parsed["number"])
}

func TestFormatJSONStringReindented(t *testing.T) {
	out, err := newFormatter(t).FormatOutput(`{"key": "value"}`, JSON)
	require.NoError(t, err)
	assert.Contains(t, out, "{\n")
	assert.Contains(t, out, `"key": "value"`)
}

func TestFormatJSONPlainString(t *testing.T) {
	out, err := newFormatter(t).FormatOutput("not json", JSON)
	require.NoError(t, err)
	assert.Equal(t, `"not json"`, out)
}

func TestFormatAutoDetection(t *testing.T) {
	f := newFormatter(t)

	out, err := f.FormatOutput(map[string]any{"key": "value"}, Auto)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "value", parsed["key"])

	out, err = f.FormatOutput("hello world", Auto)
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestFormatTableRowList(t *testing.T) {
	data := []map[string]any{
		{"name": "Alice", "age": 30},
		{"name": "Bob", "age": 25},
	}
	out, err := newFormatter(t).FormatOutput(data, Table)
	require.NoError(t, err)

	assert.Contains(t, out, "name")
	assert.Contains(t, out, "age")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "|")

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[1], "-")
}

func TestFormatTableSingleMap(t *testing.T) {
	data := map[string]any{"key1": "value1", "key2": "value2"}
	out, err := newFormatter(t).FormatOutput(data, Table)
	require.NoError(t, err)

	assert.Contains(t, out, "Key")
	assert.Contains(t, out, "Value")
	assert.Contains(t, out, "key1")
	assert.Contains(t, out, "value1")
	assert.Contains(t, out, "|")

	// key1 sorts before key2.
	assert.Less(t, strings.Index(out, "key1"), strings.Index(out, "key2"))
}

func TestFormatTableFallsBackToPlain(t *testing.T) {
	out, err := newFormatter(t).FormatOutput("just text", Table)
	require.NoError(t, err)
	assert.Equal(t, "just text", out)
}

func TestFormatTableEmptyRows(t *testing.T) {
	out, err := newFormatter(t).FormatOutput([]map[string]any{}, Table)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"plain":   Plain,
		"JSON":    JSON,
		" table ": Table,
		"auto":    Auto,
		"bogus":   Auto,
		"":        Auto,
	}
	for input, want := range tests {
		assert.Equal(t, want, ParseFormat(input), "input %q", input)
	}
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc  ", truncateString("abc", 5))
	assert.Equal(t, "ab...", truncateString("abcdefgh", 5))
	assert.Equal(t, "ab", truncateString("abcdefgh", 2))
}

func TestFormatStringAlignment(t *testing.T) {
	assert.Equal(t, "ab   ", formatString("ab", 5, "left"))
	assert.Equal(t, "   ab", formatString("ab", 5, "right"))
	assert.Equal(t, " ab  ", formatString("ab", 5, "center"))
	assert.Equal(t, "abcde", formatString("abcdefg", 5, "left"))
}
