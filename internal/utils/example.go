package utils

import (
	"strings"

	"github.com/devknife/devknife/internal/core"
)

// EchoUtility repeats its input back. It exists mainly as the smallest
// possible reference utility.
type EchoUtility struct{}

func NewEchoUtility() core.UtilityModule { return &EchoUtility{} }

func (u *EchoUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	repeat := intOption(options, "repeat", 1)
	if repeat < 1 {
		return core.NewErrorResult("Repeat count must be at least 1")
	}
	lines := make([]string, repeat)
	for i := range lines {
		lines[i] = input.String()
	}
	result := core.NewSuccessResult(strings.Join(lines, "\n"))
	return result.WithMetadata("repeat", repeat)
}

func (u *EchoUtility) Help() string {
	return "Echoes input back, optionally repeated.\n\nUsage: devknife echo <text>\n\nOptions:\n  repeat  number of times to repeat the input (default 1)"
}

func (u *EchoUtility) ValidateInput(input core.InputData) bool {
	return !blankInput(input)
}

func (u *EchoUtility) CommandInfo() core.Command {
	return core.NewCommand("echo", "Echo input back", "example", "utils.example")
}

func (u *EchoUtility) SupportedOptions() []string {
	return []string{"repeat"}
}

func (u *EchoUtility) Examples() []string {
	return []string{
		"devknife echo hello",
		"echo hello | devknife echo",
	}
}
