package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devknife/devknife/internal/core"
)

func argsInput(content string) core.InputData {
	return core.NewInputData(content, core.SourceArgs)
}

func TestBase64Encoding(t *testing.T) {
	u := NewBase64Utility()
	result := u.Process(argsInput("Hello World"), nil)

	require.True(t, result.Success)
	assert.Equal(t, "SGVsbG8gV29ybGQ=", result.Output)
	assert.Equal(t, "encode", result.Metadata["operation"])
}

func TestBase64Decoding(t *testing.T) {
	u := NewBase64Utility()
	result := u.Process(argsInput("SGVsbG8gV29ybGQ="), map[string]any{"decode": true})

	require.True(t, result.Success)
	assert.Equal(t, "Hello World", result.Output)
	assert.Equal(t, "decode", result.Metadata["operation"])
}

func TestBase64RoundTrip(t *testing.T) {
	u := NewBase64Utility()
	original := "Hello World! This is a test."

	encoded := u.Process(argsInput(original), nil)
	require.True(t, encoded.Success)

	decoded := u.Process(argsInput(encoded.Output.(string)), map[string]any{"decode": true})
	require.True(t, decoded.Success)
	assert.Equal(t, original, decoded.Output)
}

func TestBase64InvalidDecoding(t *testing.T) {
	u := NewBase64Utility()
	result := u.Process(argsInput("This is not base64!"), map[string]any{"decode": true})

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "Invalid Base64 format")
}

func TestBase64InputValidation(t *testing.T) {
	u := NewBase64Utility()

	assert.False(t, u.ValidateInput(argsInput("")))
	assert.False(t, u.ValidateInput(argsInput("   ")))
	assert.True(t, u.ValidateInput(argsInput("Hello World")))
}

func TestBase64CommandInfo(t *testing.T) {
	info := NewBase64Utility().CommandInfo()
	assert.Equal(t, "base64", info.Name)
	assert.Equal(t, "encoding", info.Category)
	assert.True(t, info.CLIEnabled)
	assert.True(t, info.TUIEnabled)
}

func TestURLEncoding(t *testing.T) {
	u := NewURLUtility()
	result := u.Process(argsInput("Hello World!"), nil)

	require.True(t, result.Success)
	assert.Equal(t, "Hello%20World%21", result.Output)
	assert.Equal(t, "encode", result.Metadata["operation"])
}

func TestURLDecoding(t *testing.T) {
	u := NewURLUtility()
	result := u.Process(argsInput("Hello%20World%21"), map[string]any{"decode": true})

	require.True(t, result.Success)
	assert.Equal(t, "Hello World!", result.Output)
	assert.Equal(t, "decode", result.Metadata["operation"])
}

func TestURLRoundTrip(t *testing.T) {
	u := NewURLUtility()
	original := "Hello World! This is a test with special chars: @#$%^&*()"

	encoded := u.Process(argsInput(original), nil)
	require.True(t, encoded.Success)

	decoded := u.Process(argsInput(encoded.Output.(string)), map[string]any{"decode": true})
	require.True(t, decoded.Success)
	assert.Equal(t, original, decoded.Output)
}

func TestURLSafeCharacters(t *testing.T) {
	u := NewURLUtility()
	result := u.Process(argsInput("Hello World! @#$%"), nil)

	require.True(t, result.Success)
	safe := regexp.MustCompile(`^[A-Za-z0-9\-_.~%]*$`)
	assert.Regexp(t, safe, result.Output)
}

func TestURLCommandInfo(t *testing.T) {
	info := NewURLUtility().CommandInfo()
	assert.Equal(t, "url", info.Name)
	assert.Equal(t, "encoding", info.Category)
}
