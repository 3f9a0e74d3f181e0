package utils

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/devknife/devknife/internal/core"
)

// Base64Utility encodes and decodes standard Base64.
type Base64Utility struct{}

func NewBase64Utility() core.UtilityModule { return &Base64Utility{} }

func (u *Base64Utility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	content := input.String()
	if boolOption(options, "decode", false) {
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(content))
		if err != nil {
			return core.NewErrorResult("Invalid Base64 format: %v", err)
		}
		result := core.NewSuccessResult(string(decoded))
		return result.WithMetadata("operation", "decode")
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	result := core.NewSuccessResult(encoded)
	return result.WithMetadata("operation", "encode")
}

func (u *Base64Utility) Help() string {
	return "Encodes text to Base64, or decodes Base64 back to text.\n\nUsage: devknife base64 <text>\n\nOptions:\n  decode  decode instead of encode"
}

func (u *Base64Utility) ValidateInput(input core.InputData) bool {
	return !blankInput(input)
}

func (u *Base64Utility) CommandInfo() core.Command {
	return core.NewCommand("base64", "Base64 encode/decode", "encoding", "utils.encoding")
}

func (u *Base64Utility) SupportedOptions() []string {
	return []string{"decode"}
}

func (u *Base64Utility) Examples() []string {
	return []string{
		"devknife base64 'Hello World'",
		"devknife base64 --decode SGVsbG8gV29ybGQ=",
	}
}

// URLUtility percent-encodes and decodes text. Only RFC 3986 unreserved
// characters pass through unescaped, so a space becomes %20 and "!"
// becomes %21.
type URLUtility struct{}

func NewURLUtility() core.UtilityModule { return &URLUtility{} }

func (u *URLUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	content := input.String()
	if boolOption(options, "decode", false) {
		decoded, err := url.PathUnescape(content)
		if err != nil {
			return core.NewErrorResult("Invalid URL encoding: %v", err)
		}
		result := core.NewSuccessResult(decoded)
		return result.WithMetadata("operation", "decode")
	}
	result := core.NewSuccessResult(percentEncode(content))
	return result.WithMetadata("operation", "encode")
}

func percentEncode(s string) string {
	var b strings.Builder
	for _, c := range []byte(s) {
		if isUnreserved(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}
	return false
}

func (u *URLUtility) Help() string {
	return "Percent-encodes text for URLs, or decodes percent-encoded text.\n\nUsage: devknife url <text>\n\nOptions:\n  decode  decode instead of encode"
}

func (u *URLUtility) ValidateInput(input core.InputData) bool {
	return !blankInput(input)
}

func (u *URLUtility) CommandInfo() core.Command {
	return core.NewCommand("url", "URL encode/decode", "encoding", "utils.encoding")
}

func (u *URLUtility) SupportedOptions() []string {
	return []string{"decode"}
}

func (u *URLUtility) Examples() []string {
	return []string{
		"devknife url 'Hello World!'",
		"devknife url --decode Hello%20World%21",
	}
}
