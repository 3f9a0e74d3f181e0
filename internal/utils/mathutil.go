package utils

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/devknife/devknife/internal/core"
)

// BaseUtility converts numbers between binary, octal, decimal and
// hexadecimal, auto-detecting the input base from prefixes or digits.
type BaseUtility struct{}

func NewBaseUtility() core.UtilityModule { return &BaseUtility{} }

func (u *BaseUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	raw := strings.TrimSpace(input.String())
	if raw == "" {
		return core.NewErrorResult("Empty input provided")
	}

	value, inputBase, err := parseNumber(raw)
	if err != nil {
		return core.NewErrorResult("Invalid number format: %s", raw)
	}

	target := stringOption(options, "to_base", "")
	if target == "" {
		report := fmt.Sprintf("Decimal: %d\nBinary: %s\nOctal: %s\nHexadecimal: %s",
			value,
			strconv.FormatInt(value, 2),
			strconv.FormatInt(value, 8),
			strings.ToUpper(strconv.FormatInt(value, 16)))
		result := core.NewSuccessResult(report).
			WithMetadata("decimal_value", value).
			WithMetadata("input_base", inputBase)
		return result
	}

	out, err := formatInBase(value, target)
	if err != nil {
		return core.NewErrorResult("Invalid target base: %s", target)
	}
	result := core.NewSuccessResult(out).
		WithMetadata("decimal_value", value).
		WithMetadata("input_base", inputBase).
		WithMetadata("target_base", target)
	return result
}

// parseNumber detects the base of raw and returns its decimal value.
// Detection order: explicit prefix, binary digits only, decimal digits
// only, then hexadecimal digits.
func parseNumber(raw string) (int64, string, error) {
	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "0x"):
		v, err := strconv.ParseInt(lower[2:], 16, 64)
		return v, "hexadecimal", err
	case strings.HasPrefix(lower, "0b"):
		v, err := strconv.ParseInt(lower[2:], 2, 64)
		return v, "binary", err
	case strings.HasPrefix(lower, "0o"):
		v, err := strconv.ParseInt(lower[2:], 8, 64)
		return v, "octal", err
	}
	if onlyDigits(raw, "01") {
		v, err := strconv.ParseInt(raw, 2, 64)
		return v, "binary", err
	}
	if onlyDigits(raw, "0123456789") {
		v, err := strconv.ParseInt(raw, 10, 64)
		return v, "decimal", err
	}
	if onlyDigits(lower, "0123456789abcdef") {
		v, err := strconv.ParseInt(lower, 16, 64)
		return v, "hexadecimal", err
	}
	return 0, "", fmt.Errorf("unrecognized number: %s", raw)
}

func onlyDigits(s, allowed string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
	}
	return true
}

func formatInBase(value int64, target string) (string, error) {
	switch strings.ToLower(target) {
	case "decimal", "dec", "10":
		return strconv.FormatInt(value, 10), nil
	case "binary", "bin", "2":
		return strconv.FormatInt(value, 2), nil
	case "octal", "oct", "8":
		return strconv.FormatInt(value, 8), nil
	case "hexadecimal", "hex", "16":
		return strings.ToUpper(strconv.FormatInt(value, 16)), nil
	default:
		return "", fmt.Errorf("unknown base %s", target)
	}
}

func (u *BaseUtility) Help() string {
	return "Converts numbers between binary, octal, decimal and hexadecimal.\n\nUsage: devknife base <number>\n\nOptions:\n  to_base  target base (binary, octal, decimal, hex); default reports all"
}

func (u *BaseUtility) ValidateInput(input core.InputData) bool {
	raw := strings.TrimSpace(input.String())
	if raw == "" {
		return false
	}
	_, _, err := parseNumber(raw)
	return err == nil
}

func (u *BaseUtility) CommandInfo() core.Command {
	return core.NewCommand("base", "Convert numbers between bases", "math", "utils.mathutil")
}

func (u *BaseUtility) SupportedOptions() []string {
	return []string{"to_base"}
}

func (u *BaseUtility) Examples() []string {
	return []string{
		"devknife base 255",
		"devknife base 0xFF --to-base binary",
	}
}

// HashUtility digests input with MD5, SHA-1 and SHA-256.
type HashUtility struct{}

func NewHashUtility() core.UtilityModule { return &HashUtility{} }

func (u *HashUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	content := input.Bytes()
	digests := map[string]string{
		"md5":    fmt.Sprintf("%x", md5.Sum(content)),
		"sha1":   fmt.Sprintf("%x", sha1.Sum(content)),
		"sha256": fmt.Sprintf("%x", sha256.Sum256(content)),
	}

	algorithm := strings.ToLower(stringOption(options, "algorithm", ""))
	if algorithm != "" {
		digest, ok := digests[algorithm]
		if !ok {
			return core.NewErrorResult("Invalid hash algorithm: %s (supported: md5, sha1, sha256)", algorithm)
		}
		result := core.NewSuccessResult(digest).
			WithMetadata("algorithm", algorithm)
		return result
	}

	report := fmt.Sprintf("MD5: %s\nSHA1: %s\nSHA256: %s",
		digests["md5"], digests["sha1"], digests["sha256"])
	result := core.NewSuccessResult(report).
		WithMetadata("hashes", digests)
	return result
}

func (u *HashUtility) Help() string {
	return "Computes MD5, SHA-1 and SHA-256 digests.\n\nUsage: devknife hash <text>\n\nOptions:\n  algorithm  md5, sha1 or sha256; default reports all three"
}

// ValidateInput always succeeds: the empty string has a digest too.
func (u *HashUtility) ValidateInput(input core.InputData) bool {
	return true
}

func (u *HashUtility) CommandInfo() core.Command {
	return core.NewCommand("hash", "Compute cryptographic digests", "math", "utils.mathutil")
}

func (u *HashUtility) SupportedOptions() []string {
	return []string{"algorithm"}
}

func (u *HashUtility) Examples() []string {
	return []string{
		"devknife hash 'Hello, World!'",
		"devknife hash --algorithm sha256 secret",
	}
}

// timestampDateLayouts are the accepted date spellings for the reverse
// conversion, tried in order.
var timestampDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
}

// TimestampUtility converts between Unix timestamps and dates.
// Millisecond timestamps are detected by magnitude.
type TimestampUtility struct{}

func NewTimestampUtility() core.UtilityModule { return &TimestampUtility{} }

func (u *TimestampUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	raw := strings.TrimSpace(input.String())
	if raw == "" {
		return core.NewErrorResult("Empty input provided")
	}

	if boolOption(options, "reverse", false) {
		return dateToTimestamp(raw)
	}
	return timestampToDate(raw)
}

func timestampToDate(raw string) core.ProcessingResult {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return core.NewErrorResult("Invalid timestamp format: %s", raw)
	}

	seconds := value
	if seconds >= 1e12 {
		// Magnitude says milliseconds.
		seconds /= 1000
	}

	sec := int64(seconds)
	nsec := int64((seconds - float64(sec)) * 1e9)
	stamp := time.Unix(sec, nsec).UTC()

	report := fmt.Sprintf("Unix Timestamp: %s\nDate: %s\nTimezone: UTC",
		raw, stamp.Format("2006-01-02 15:04:05"))
	result := core.NewSuccessResult(report).
		WithMetadata("operation", "timestamp_to_date").
		WithMetadata("input_timestamp", sec)
	return result
}

func dateToTimestamp(raw string) core.ProcessingResult {
	for _, layout := range timestampDateLayouts {
		stamp, err := time.ParseInLocation(layout, raw, time.UTC)
		if err != nil {
			continue
		}
		report := fmt.Sprintf("Date: %s\nUnix Timestamp: %d\nTimezone: UTC",
			stamp.Format("2006-01-02 15:04:05"), stamp.Unix())
		result := core.NewSuccessResult(report).
			WithMetadata("operation", "date_to_timestamp").
			WithMetadata("timestamp", stamp.Unix())
		return result
	}
	return core.NewErrorResult("Could not parse date format: %s", raw)
}

func (u *TimestampUtility) Help() string {
	return "Converts Unix timestamps to dates and back.\n\nUsage: devknife timestamp <value>\n\nOptions:\n  reverse  parse a date string and emit a Unix timestamp\n  format   output style (readable)\n  utc      report in UTC (always on)"
}

func (u *TimestampUtility) ValidateInput(input core.InputData) bool {
	raw := strings.TrimSpace(input.String())
	if raw == "" {
		return false
	}
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		return true
	}
	for _, layout := range timestampDateLayouts {
		if _, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return true
		}
	}
	return false
}

func (u *TimestampUtility) CommandInfo() core.Command {
	return core.NewCommand("timestamp", "Convert Unix timestamps and dates", "math", "utils.mathutil")
}

func (u *TimestampUtility) SupportedOptions() []string {
	return []string{"reverse", "format", "utc"}
}

func (u *TimestampUtility) Examples() []string {
	return []string{
		"devknife timestamp 1640995200",
		"devknife timestamp --reverse '2022-01-01 00:00:00'",
	}
}
