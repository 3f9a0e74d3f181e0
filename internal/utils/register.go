package utils

import (
	"github.com/devknife/devknife/internal/core"
)

// builtins lists every shipped utility factory in registration order,
// which fixes the ordering of help output and the TUI command list.
var builtins = []core.Factory{
	NewEchoUtility,
	NewBase64Utility,
	NewURLUtility,
	NewJSONUtility,
	NewJSONToYAMLUtility,
	NewXMLUtility,
	NewJSONToStructUtility,
	NewCSVToMarkdownUtility,
	NewTSVToMarkdownUtility,
	NewCSVToJSONUtility,
	NewUUIDGenUtility,
	NewUUIDDecodeUtility,
	NewIBANUtility,
	NewPasswordUtility,
	NewBaseUtility,
	NewHashUtility,
	NewTimestampUtility,
	NewGraphQLUtility,
	NewCSSUtility,
	NewCSSMinUtility,
	NewURLExtractUtility,
}

// RegisterAll registers every built-in utility with the registry.
func RegisterAll(registry *core.CommandRegistry) error {
	for _, factory := range builtins {
		if err := registry.Register(factory); err != nil {
			return err
		}
	}
	return nil
}
