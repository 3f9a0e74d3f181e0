package utils

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devknife/devknife/internal/core"
)

// UUIDGenUtility generates UUIDs. Input content is ignored.
type UUIDGenUtility struct{}

func NewUUIDGenUtility() core.UtilityModule { return &UUIDGenUtility{} }

func (u *UUIDGenUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	version := intOption(options, "version", 4)
	count := intOption(options, "count", 1)
	if count < 1 {
		count = 1
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		switch version {
		case 1:
			id, err := uuid.NewUUID()
			if err != nil {
				return core.NewErrorResult("Failed to generate UUID: %v", err)
			}
			ids = append(ids, id.String())
		case 4:
			ids = append(ids, uuid.New().String())
		default:
			return core.NewErrorResult("Unsupported UUID version: %d (supported: 1, 4)", version)
		}
	}

	result := core.NewSuccessResult(strings.Join(ids, "\n")).
		WithMetadata("operation", "generate").
		WithMetadata("version", version).
		WithMetadata("count", count)
	return result
}

func (u *UUIDGenUtility) Help() string {
	return "Generates UUIDs.\n\nUsage: devknife uuid-gen\n\nOptions:\n  version  UUID version, 1 or 4 (default 4)\n  count    number of UUIDs to generate (default 1)"
}

// ValidateInput always succeeds: generation does not consume input.
func (u *UUIDGenUtility) ValidateInput(input core.InputData) bool {
	return true
}

func (u *UUIDGenUtility) CommandInfo() core.Command {
	return core.NewCommand("uuid-gen", "Generate UUIDs", "developer", "utils.developer")
}

func (u *UUIDGenUtility) SupportedOptions() []string {
	return []string{"version", "count"}
}

func (u *UUIDGenUtility) Examples() []string {
	return []string{
		"devknife uuid-gen",
		"devknife uuid-gen --version 1 --count 5",
	}
}

// UUIDDecodeUtility breaks a UUID into version, variant and, for
// time-based UUIDs, the embedded timestamp.
type UUIDDecodeUtility struct{}

func NewUUIDDecodeUtility() core.UtilityModule { return &UUIDDecodeUtility{} }

func (u *UUIDDecodeUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	raw := strings.TrimSpace(input.String())
	id, err := uuid.Parse(raw)
	if err != nil {
		return core.NewErrorResult("Invalid UUID format: %v", err)
	}

	version := int(id.Version())
	var b strings.Builder
	fmt.Fprintf(&b, "UUID: %s\n", id.String())
	fmt.Fprintf(&b, "Version: %d\n", version)
	fmt.Fprintf(&b, "Variant: %s", id.Variant())

	if version == 1 {
		sec, nsec := id.Time().UnixTime()
		stamp := time.Unix(sec, nsec).UTC()
		fmt.Fprintf(&b, "\nTimestamp: %s", stamp.Format("2006-01-02 15:04:05 MST"))
	}

	result := core.NewSuccessResult(b.String()).
		WithMetadata("operation", "decode").
		WithMetadata("uuid_version", version)
	return result
}

func (u *UUIDDecodeUtility) Help() string {
	return "Decodes a UUID into its version, variant and timestamp.\n\nUsage: devknife uuid-decode <uuid>"
}

func (u *UUIDDecodeUtility) ValidateInput(input core.InputData) bool {
	_, err := uuid.Parse(strings.TrimSpace(input.String()))
	return err == nil
}

func (u *UUIDDecodeUtility) CommandInfo() core.Command {
	return core.NewCommand("uuid-decode", "Decode a UUID", "developer", "utils.developer")
}

func (u *UUIDDecodeUtility) SupportedOptions() []string {
	return nil
}

func (u *UUIDDecodeUtility) Examples() []string {
	return []string{"devknife uuid-decode 550e8400-e29b-41d4-a716-446655440000"}
}

// ibanLengths maps country codes to the official IBAN length.
var ibanLengths = map[string]int{
	"AD": 24, "AE": 23, "AL": 28, "AT": 20, "AZ": 28, "BA": 20, "BE": 16,
	"BG": 22, "BH": 22, "BR": 29, "CH": 21, "CR": 22, "CY": 28, "CZ": 24,
	"DE": 22, "DK": 18, "DO": 28, "EE": 20, "ES": 24, "FI": 18, "FO": 18,
	"FR": 27, "GB": 22, "GE": 22, "GI": 23, "GL": 18, "GR": 27, "GT": 28,
	"HR": 21, "HU": 28, "IE": 22, "IL": 23, "IS": 26, "IT": 27, "JO": 30,
	"KW": 30, "KZ": 20, "LB": 28, "LI": 21, "LT": 20, "LU": 20, "LV": 21,
	"MC": 27, "MD": 24, "ME": 22, "MK": 19, "MR": 27, "MT": 31, "MU": 30,
	"NL": 18, "NO": 15, "PK": 24, "PL": 28, "PS": 29, "PT": 25, "QA": 29,
	"RO": 24, "RS": 22, "SA": 24, "SE": 24, "SI": 19, "SK": 24, "SM": 27,
	"TN": 24, "TR": 26, "VG": 24,
}

var ibanRe = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{1,30}$`)

// IBANUtility validates IBAN account numbers. Verdicts about the IBAN
// itself are successful results; only structural failures are errors.
type IBANUtility struct{}

func NewIBANUtility() core.UtilityModule { return &IBANUtility{} }

func (u *IBANUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	iban := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(input.String()), " ", ""))

	verdict := func(message string, valid bool, country string) core.ProcessingResult {
		result := core.NewSuccessResult(message).
			WithMetadata("operation", "validate").
			WithMetadata("valid", valid)
		if country != "" {
			result = result.WithMetadata("country_code", country)
		}
		return result
	}

	if !ibanRe.MatchString(iban) {
		return verdict(fmt.Sprintf("Invalid IBAN format: %s", iban), false, "")
	}

	country := iban[:2]
	if expected, ok := ibanLengths[country]; ok && len(iban) != expected {
		return verdict(fmt.Sprintf("Invalid IBAN length for %s: got %d, expected %d", country, len(iban), expected), false, country)
	}

	if ibanMod97(iban) != 1 {
		return verdict(fmt.Sprintf("Invalid IBAN checksum: %s", iban), false, country)
	}

	return verdict(fmt.Sprintf("Valid IBAN: %s (country: %s)", iban, country), true, country)
}

// ibanMod97 computes the ISO 7064 mod 97-10 remainder after rotating
// the first four characters to the end and expanding letters to digits.
func ibanMod97(iban string) int {
	rotated := iban[4:] + iban[:4]
	remainder := 0
	for _, r := range rotated {
		if r >= '0' && r <= '9' {
			remainder = (remainder*10 + int(r-'0')) % 97
		} else {
			value := int(r-'A') + 10
			remainder = (remainder*100 + value) % 97
		}
	}
	return remainder
}

func (u *IBANUtility) Help() string {
	return "Validates an IBAN: checksum and per-country length.\n\nUsage: devknife iban <iban>"
}

func (u *IBANUtility) ValidateInput(input core.InputData) bool {
	iban := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(input.String()), " ", ""))
	return ibanRe.MatchString(iban)
}

func (u *IBANUtility) CommandInfo() core.Command {
	return core.NewCommand("iban", "Validate an IBAN", "developer", "utils.developer")
}

func (u *IBANUtility) SupportedOptions() []string {
	return nil
}

func (u *IBANUtility) Examples() []string {
	return []string{"devknife iban GB82WEST12345698765432"}
}

// Password character sets.
const (
	passwordLower   = "abcdefghijklmnopqrstuvwxyz"
	passwordUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	passwordDigits  = "0123456789"
	passwordSymbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	passwordAmbiguous = "0O1lI|"

	passwordMinLength = 4
	passwordMaxLength = 256
)

// PasswordUtility generates random passwords with crypto/rand. Input
// content is ignored.
type PasswordUtility struct{}

func NewPasswordUtility() core.UtilityModule { return &PasswordUtility{} }

func (u *PasswordUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	length := intOption(options, "length", 16)
	if length < passwordMinLength {
		return core.NewErrorResult("Password length must be at least %d", passwordMinLength)
	}
	if length > passwordMaxLength {
		return core.NewErrorResult("Password length cannot exceed %d", passwordMaxLength)
	}

	noAmbiguous := boolOption(options, "no_ambiguous", false)
	var sets []string
	if boolOption(options, "lowercase", true) {
		sets = append(sets, passwordLower)
	}
	if boolOption(options, "uppercase", true) {
		sets = append(sets, passwordUpper)
	}
	if boolOption(options, "digits", true) {
		sets = append(sets, passwordDigits)
	}
	if boolOption(options, "symbols", true) {
		sets = append(sets, passwordSymbols)
	}
	if noAmbiguous {
		for i, set := range sets {
			sets[i] = stripChars(set, passwordAmbiguous)
		}
	}
	if len(sets) == 0 {
		return core.NewErrorResult("No character types selected")
	}

	pool := strings.Join(sets, "")
	password, err := buildPassword(length, sets, pool)
	if err != nil {
		return core.NewErrorResult("Failed to generate password: %v", err)
	}

	score, level := passwordStrength(length, len(pool))
	result := core.NewSuccessResult(password).
		WithMetadata("operation", "generate").
		WithMetadata("length", length).
		WithMetadata("strength_score", score).
		WithMetadata("strength_level", level)
	return result
}

// buildPassword guarantees at least one character from every selected
// set when the length allows it, then shuffles.
func buildPassword(length int, sets []string, pool string) (string, error) {
	chars := make([]byte, 0, length)
	if length >= len(sets) {
		for _, set := range sets {
			c, err := randomChar(set)
			if err != nil {
				return "", err
			}
			chars = append(chars, c)
		}
	}
	for len(chars) < length {
		c, err := randomChar(pool)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for i := len(chars) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}
	return string(chars), nil
}

func randomChar(set string) (byte, error) {
	i, err := randomInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

func stripChars(s, remove string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(remove, r) {
			return -1
		}
		return r
	}, s)
}

// passwordStrength estimates entropy in bits, capped to a 0..100 score.
func passwordStrength(length, poolSize int) (int, string) {
	bits := float64(length) * math.Log2(float64(poolSize))
	score := int(math.Min(100, bits))
	switch {
	case score < 40:
		return score, "weak"
	case score < 60:
		return score, "fair"
	case score < 80:
		return score, "good"
	default:
		return score, "strong"
	}
}

func (u *PasswordUtility) Help() string {
	return "Generates a random password.\n\nUsage: devknife password\n\nOptions:\n  length        password length, 4..256 (default 16)\n  lowercase     include lowercase letters (default true)\n  uppercase     include uppercase letters (default true)\n  digits        include digits (default true)\n  symbols       include symbols (default true)\n  no_ambiguous  exclude easily confused characters (0O1lI|)"
}

// ValidateInput always succeeds: generation does not consume input.
func (u *PasswordUtility) ValidateInput(input core.InputData) bool {
	return true
}

func (u *PasswordUtility) CommandInfo() core.Command {
	return core.NewCommand("password", "Generate a random password", "developer", "utils.developer")
}

func (u *PasswordUtility) SupportedOptions() []string {
	return []string{"length", "lowercase", "uppercase", "digits", "symbols", "no_ambiguous"}
}

func (u *PasswordUtility) Examples() []string {
	return []string{
		"devknife password",
		"devknife password --length 32 --no-ambiguous",
	}
}
