package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseDecimalToAllBases(t *testing.T) {
	u := NewBaseUtility()
	result := u.Process(argsInput("255"), nil)

	require.True(t, result.Success)
	out := result.Output.(string)
	assert.Contains(t, out, "Decimal: 255")
	assert.Contains(t, out, "Binary: 11111111")
	assert.Contains(t, out, "Octal: 377")
	assert.Contains(t, out, "Hexadecimal: FF")
	assert.Equal(t, int64(255), result.Metadata["decimal_value"])
}

func TestBaseBinaryToDecimal(t *testing.T) {
	u := NewBaseUtility()
	result := u.Process(argsInput("1010"), map[string]any{"to_base": "decimal"})

	require.True(t, result.Success)
	assert.Equal(t, "10", result.Output)
	assert.Equal(t, int64(10), result.Metadata["decimal_value"])
	assert.Equal(t, "binary", result.Metadata["input_base"])
}

func TestBaseHexPrefixToBinary(t *testing.T) {
	u := NewBaseUtility()
	result := u.Process(argsInput("0xFF"), map[string]any{"to_base": "binary"})

	require.True(t, result.Success)
	assert.Equal(t, "11111111", result.Output)
	assert.Equal(t, int64(255), result.Metadata["decimal_value"])
	assert.Equal(t, "hexadecimal", result.Metadata["input_base"])
}

func TestBaseOctalToHex(t *testing.T) {
	u := NewBaseUtility()
	result := u.Process(argsInput("0o777"), map[string]any{"to_base": "hex"})

	require.True(t, result.Success)
	assert.Equal(t, "1FF", result.Output)
	assert.Equal(t, int64(511), result.Metadata["decimal_value"])
	assert.Equal(t, "octal", result.Metadata["input_base"])
}

func TestBaseAutoDetection(t *testing.T) {
	u := NewBaseUtility()

	result := u.Process(argsInput("101010"), map[string]any{"to_base": "decimal"})
	require.True(t, result.Success)
	assert.Equal(t, "42", result.Output)
	assert.Equal(t, "binary", result.Metadata["input_base"])

	result = u.Process(argsInput("DEADBEEF"), map[string]any{"to_base": "decimal"})
	require.True(t, result.Success)
	assert.Equal(t, "3735928559", result.Output)
	assert.Equal(t, "hexadecimal", result.Metadata["input_base"])
}

func TestBaseInvalidNumber(t *testing.T) {
	u := NewBaseUtility()
	result := u.Process(argsInput("invalid"), nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "Invalid number format")
}

func TestBaseEmptyInput(t *testing.T) {
	u := NewBaseUtility()
	result := u.Process(argsInput(""), nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "Empty input provided")
}

func TestBaseInvalidTargetBase(t *testing.T) {
	u := NewBaseUtility()
	result := u.Process(argsInput("255"), map[string]any{"to_base": "invalid"})

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "Invalid target base")
}

func TestBaseInputValidation(t *testing.T) {
	u := NewBaseUtility()
	assert.True(t, u.ValidateInput(argsInput("123")))
	assert.False(t, u.ValidateInput(argsInput("not_a_number")))
}

func TestHashAllAlgorithms(t *testing.T) {
	u := NewHashUtility()
	result := u.Process(argsInput("Hello, World!"), nil)

	require.True(t, result.Success)
	out := result.Output.(string)
	assert.Contains(t, out, "MD5:")
	assert.Contains(t, out, "SHA1:")
	assert.Contains(t, out, "SHA256:")

	hashes := result.Metadata["hashes"].(map[string]string)
	assert.Equal(t, "65a8e27d8879283831b664bd8b7f0ad4", hashes["md5"])
	assert.Equal(t, "0a0a9f2a6772942557ab5355d76af442f8f65e01", hashes["sha1"])
	assert.Equal(t, "dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f", hashes["sha256"])
}

func TestHashSingleAlgorithms(t *testing.T) {
	u := NewHashUtility()
	tests := []struct {
		algorithm string
		want      string
	}{
		{"md5", "098f6bcd4621d373cade4e832627b4f6"},
		{"sha1", "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3"},
		{"sha256", "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"},
	}
	for _, tt := range tests {
		result := u.Process(argsInput("test"), map[string]any{"algorithm": tt.algorithm})
		require.True(t, result.Success, tt.algorithm)
		assert.Equal(t, tt.want, result.Output)
		assert.Equal(t, tt.algorithm, result.Metadata["algorithm"])
	}
}

func TestHashInvalidAlgorithm(t *testing.T) {
	u := NewHashUtility()
	result := u.Process(argsInput("test"), map[string]any{"algorithm": "invalid"})

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "Invalid hash algorithm")
}

func TestHashEmptyString(t *testing.T) {
	u := NewHashUtility()
	result := u.Process(argsInput(""), map[string]any{"algorithm": "md5"})

	require.True(t, result.Success)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", result.Output)
}

func TestHashUnicode(t *testing.T) {
	u := NewHashUtility()
	result := u.Process(argsInput("Hello, 世界!"), map[string]any{"algorithm": "sha256"})

	require.True(t, result.Success)
	assert.Len(t, result.Output.(string), 64)
}

func TestHashInputValidation(t *testing.T) {
	u := NewHashUtility()
	assert.True(t, u.ValidateInput(argsInput("any string")))
	assert.True(t, u.ValidateInput(argsInput("")))
}

func TestTimestampToDate(t *testing.T) {
	u := NewTimestampUtility()
	result := u.Process(argsInput("1640995200"), map[string]any{"utc": true})

	require.True(t, result.Success)
	out := result.Output.(string)
	assert.Contains(t, out, "Unix Timestamp: 1640995200")
	assert.Contains(t, out, "2022-01-01")
	assert.Contains(t, out, "Timezone: UTC")
	assert.Equal(t, int64(1640995200), result.Metadata["input_timestamp"])
}

func TestTimestampFloatToDate(t *testing.T) {
	u := NewTimestampUtility()
	result := u.Process(argsInput("1640995200.5"), map[string]any{"utc": true})

	require.True(t, result.Success)
	out := result.Output.(string)
	assert.Contains(t, out, "Unix Timestamp: 1640995200.5")
	assert.Contains(t, out, "2022-01-01")
}

func TestTimestampMillisecondsToDate(t *testing.T) {
	u := NewTimestampUtility()
	result := u.Process(argsInput("1640995200000"), map[string]any{"utc": true})

	require.True(t, result.Success)
	assert.Contains(t, result.Output.(string), "2022-01-01")
}

func TestDateToTimestamp(t *testing.T) {
	u := NewTimestampUtility()

	result := u.Process(argsInput("2022-01-01 00:00:00"), map[string]any{"reverse": true})
	require.True(t, result.Success)
	out := result.Output.(string)
	assert.Contains(t, out, "Unix Timestamp:")
	assert.Contains(t, out, "2022-01-01")
	assert.Equal(t, "date_to_timestamp", result.Metadata["operation"])
	assert.Equal(t, int64(1640995200), result.Metadata["timestamp"])

	result = u.Process(argsInput("2022-01-01"), map[string]any{"reverse": true})
	require.True(t, result.Success)
	assert.Contains(t, result.Output.(string), "Unix Timestamp:")
}

func TestTimestampInvalid(t *testing.T) {
	u := NewTimestampUtility()

	result := u.Process(argsInput("invalid_timestamp"), nil)
	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "Invalid timestamp format")

	result = u.Process(argsInput("invalid date"), map[string]any{"reverse": true})
	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "Could not parse date format")

	result = u.Process(argsInput(""), nil)
	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "Empty input provided")
}

func TestTimestampInputValidation(t *testing.T) {
	u := NewTimestampUtility()
	assert.True(t, u.ValidateInput(argsInput("1640995200")))
	assert.True(t, u.ValidateInput(argsInput("2022-01-01")))
	assert.False(t, u.ValidateInput(argsInput("not_a_date_or_timestamp")))
}
