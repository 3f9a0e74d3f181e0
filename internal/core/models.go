// Package core contains the data model, the utility contract, and the
// registry/router pair that both front-ends dispatch through.
package core

import (
	"fmt"
	"unicode/utf8"
)

// InputSource identifies where an input payload came from.
type InputSource string

const (
	// SourceArgs means the payload was assembled from command-line arguments.
	SourceArgs InputSource = "args"
	// SourceStdin means the payload was read from standard input.
	SourceStdin InputSource = "stdin"
	// SourceFile means the payload was read from a file on disk.
	SourceFile InputSource = "file"
)

// DefaultEncoding is the encoding label assumed when none is given.
const DefaultEncoding = "utf-8"

// ErrNilContent is returned when InputData is constructed without content.
var ErrNilContent = fmt.Errorf("input content cannot be nil")

// InputData is the normalized payload handed to a utility, together with its
// provenance. It is created once per invocation and not mutated afterwards.
type InputData struct {
	content  []byte
	Source   InputSource
	Encoding string
	Metadata map[string]any
}

// NewInputData creates an InputData from already-decoded text.
func NewInputData(content string, source InputSource) InputData {
	return InputData{
		content:  []byte(content),
		Source:   source,
		Encoding: DefaultEncoding,
		Metadata: make(map[string]any),
	}
}

// NewInputDataBytes creates an InputData from raw bytes. A nil slice is a
// contract violation: every front-end must provide a payload, even an empty
// one, explicitly.
func NewInputDataBytes(content []byte, source InputSource) (InputData, error) {
	if content == nil {
		return InputData{}, ErrNilContent
	}
	return InputData{
		content:  content,
		Source:   source,
		Encoding: DefaultEncoding,
		Metadata: make(map[string]any),
	}, nil
}

// String returns the decoded text view of the content.
func (d InputData) String() string {
	return string(d.content)
}

// Bytes returns the raw byte view of the content.
func (d InputData) Bytes() []byte {
	return d.content
}

// IsText reports whether the content is valid text under the stated encoding.
func (d InputData) IsText() bool {
	return utf8.Valid(d.content)
}

// Command is the static registration metadata for a utility.
type Command struct {
	// Name is the unique command name, e.g. "base64".
	Name string
	// Description is a one-line summary shown in help listings.
	Description string
	// Category groups related commands, e.g. "encoding".
	Category string
	// Module identifies the declaring package, for diagnostics.
	Module string
	// CLIEnabled exposes the command to the CLI front-end.
	CLIEnabled bool
	// TUIEnabled exposes the command to the TUI front-end.
	TUIEnabled bool
}

// NewCommand creates a Command exposed to both front-ends.
func NewCommand(name, description, category, module string) Command {
	return Command{
		Name:        name,
		Description: description,
		Category:    category,
		Module:      module,
		CLIEnabled:  true,
		TUIEnabled:  true,
	}
}

// Validate checks the Command construction invariants.
func (c Command) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if c.Description == "" {
		return fmt.Errorf("command description cannot be empty")
	}
	return nil
}

// ProcessingResult is the uniform envelope returned by every utility
// invocation: either a success carrying an output value, or a failure
// carrying an error message.
type ProcessingResult struct {
	Success      bool
	Output       any
	ErrorMessage string
	Metadata     map[string]any
	Warnings     []string
}

// NewSuccessResult creates a successful result with the given output.
func NewSuccessResult(output any) ProcessingResult {
	return ProcessingResult{
		Success:  true,
		Output:   output,
		Metadata: make(map[string]any),
	}
}

// NewErrorResult creates a failed result. The message is mandatory; a blank
// one is replaced so the failure invariant always holds.
func NewErrorResult(format string, args ...any) ProcessingResult {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		msg = "unknown error"
	}
	return ProcessingResult{
		Success:      false,
		ErrorMessage: msg,
		Metadata:     make(map[string]any),
	}
}

// WithMetadata sets a metadata entry and returns the result for chaining.
func (r ProcessingResult) WithMetadata(key string, value any) ProcessingResult {
	if r.Metadata == nil {
		r.Metadata = make(map[string]any)
	}
	r.Metadata[key] = value
	return r
}

// AddWarning appends a warning unless an identical one is already present.
// Order of first occurrence is preserved.
func (r *ProcessingResult) AddWarning(warning string) {
	for _, w := range r.Warnings {
		if w == warning {
			return
		}
	}
	r.Warnings = append(r.Warnings, warning)
}

// Config holds the runtime limits and preferences the core consults.
type Config struct {
	// DefaultEncoding is applied to inputs without an explicit encoding.
	DefaultEncoding string
	// MaxFileSize is the largest file, in bytes, accepted as input.
	MaxFileSize int64
	// OutputFormat is the preferred output format ("plain", "json", "table", "auto").
	OutputFormat string
	// TUITheme selects the TUI color theme.
	TUITheme string
	// StreamThreshold is the file size, in bytes, beyond which input
	// acquisition switches to chunked reads.
	StreamThreshold int64
}

// DefaultConfig returns a Config with the stock defaults.
func DefaultConfig() Config {
	return Config{
		DefaultEncoding: DefaultEncoding,
		MaxFileSize:     100 * 1024 * 1024,
		OutputFormat:    "auto",
		TUITheme:        "default",
		StreamThreshold: 10 * 1024 * 1024,
	}
}

// NewConfig creates a validated Config.
func NewConfig(defaultEncoding string, maxFileSize int64, outputFormat, tuiTheme string, streamThreshold int64) (Config, error) {
	cfg := Config{
		DefaultEncoding: defaultEncoding,
		MaxFileSize:     maxFileSize,
		OutputFormat:    outputFormat,
		TUITheme:        tuiTheme,
		StreamThreshold: streamThreshold,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the Config construction invariants.
func (c Config) Validate() error {
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive")
	}
	if c.DefaultEncoding == "" {
		return fmt.Errorf("default encoding cannot be empty")
	}
	return nil
}

// ValidateFileSize reports whether size fits within the configured limit.
// Negative sizes are always rejected; the upper bound is inclusive.
func (c Config) ValidateFileSize(size int64) bool {
	return size >= 0 && size <= c.MaxFileSize
}
