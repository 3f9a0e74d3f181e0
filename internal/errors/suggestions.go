package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/devknife/devknife/internal/core"
)

// Translate converts a caught fault into a failed ProcessingResult that
// carries the error message plus an actionable suggestion list under
// metadata["suggestions"]. The context string names what was being
// attempted, e.g. a file path or a command name.
func Translate(err error, context string) core.ProcessingResult {
	if err == nil {
		return core.NewErrorResult("unknown error")
	}

	msg := err.Error()
	suggestions := suggestionsFor(err, context)

	result := core.NewErrorResult("%s", msg)
	return result.WithMetadata("suggestions", suggestions)
}

func suggestionsFor(err error, context string) []string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return []string{
			fmt.Sprintf("파일 경로를 확인하세요: %s", context),
			"상대 경로 대신 절대 경로를 사용해 보세요",
		}
	case errors.Is(err, fs.ErrPermission):
		return []string{
			fmt.Sprintf("파일 접근 권한을 확인하세요: %s", context),
			"필요하다면 파일 소유자 또는 권한을 변경하세요",
		}
	case isParseError(err):
		return []string{
			"입력 데이터의 형식이 올바른지 확인하세요",
			"오류 메시지에 표시된 위치 근처를 살펴보세요",
		}
	case isEmptyInputError(err):
		return []string{
			"명령에 전달할 입력을 제공하세요",
			"파이프 입력 또는 --file 옵션을 사용해 보세요",
		}
	default:
		return []string{
			"입력과 옵션을 확인한 뒤 다시 시도하세요",
			"'devknife list-commands'로 사용 가능한 명령을 확인하세요",
		}
	}
}

// HandleFileError translates a filesystem failure for the named path.
func HandleFileError(err error, path string) core.ProcessingResult {
	result := core.NewErrorResult("%v: %s", err, path)
	return result.WithMetadata("suggestions", suggestionsFor(err, path))
}

// HandleParsingError translates a parse failure in the named format.
// Position is the byte offset reported by the parser, or -1 when unknown.
func HandleParsingError(err error, formatName string, position int) core.ProcessingResult {
	var result core.ProcessingResult
	if position >= 0 {
		result = core.NewErrorResult("Failed to parse %s at position %d: %v", formatName, position, err)
	} else {
		result = core.NewErrorResult("Failed to parse %s: %v", formatName, err)
	}
	suggestions := []string{
		fmt.Sprintf("%s 구문이 올바른지 확인하세요", formatName),
		"오류 메시지에 표시된 위치 근처를 살펴보세요",
	}
	return result.WithMetadata("suggestions", suggestions)
}

// HandleInputError translates an input-acquisition failure for the named source.
func HandleInputError(err error, source string) core.ProcessingResult {
	result := core.NewErrorResult("No input data provided from %s: %v", source, err)
	suggestions := []string{
		"명령에 전달할 입력을 제공하세요",
		"파이프 입력 또는 --file 옵션을 사용해 보세요",
	}
	return result.WithMetadata("suggestions", suggestions)
}

// HandleGenericError translates any other failure, naming the operation
// that was underway.
func HandleGenericError(err error, operation string) core.ProcessingResult {
	result := core.NewErrorResult("Error during %s: %v", operation, err)
	return result.WithMetadata("suggestions", suggestionsFor(err, operation))
}

// isParseError reports whether the error looks like a syntax or decode
// failure. Parsers in the standard library do not share a common type,
// so this is a message-level heuristic.
func isParseError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"invalid character", "unexpected end", "syntax", "cannot unmarshal", "parse", "malformed"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func isEmptyInputError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "empty") || strings.Contains(msg, "no arguments") || strings.Contains(msg, "no data")
}

// ResultSuggestions extracts the suggestion list from a ProcessingResult,
// if one was attached by Translate.
func ResultSuggestions(result core.ProcessingResult) []string {
	raw, ok := result.Metadata["suggestions"]
	if !ok {
		return nil
	}
	suggestions, ok := raw.([]string)
	if !ok {
		return nil
	}
	return suggestions
}

// FormatCLI renders a failed ProcessingResult for terminal output:
// an 오류 line followed by a 제안사항 block when suggestions exist.
func FormatCLI(result core.ProcessingResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "오류: %s", result.ErrorMessage)
	if suggestions := ResultSuggestions(result); len(suggestions) > 0 {
		b.WriteString("\n제안사항:")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "\n  - %s", s)
		}
	}
	return b.String()
}

// TUIError is the display form of a failure inside the TUI.
type TUIError struct {
	Title       string
	Message     string
	Suggestions []string
	Severity    MessageType
}

// FormatTUI converts a failed ProcessingResult into its TUI display form.
func FormatTUI(result core.ProcessingResult) TUIError {
	return TUIError{
		Title:       ErrorTitle,
		Message:     result.ErrorMessage,
		Suggestions: ResultSuggestions(result),
		Severity:    MessageTypeError,
	}
}

// PrintCLIError writes a formatted failure to standard error.
func PrintCLIError(result core.ProcessingResult) {
	fmt.Fprintln(os.Stderr, FormatCLI(result))
}
