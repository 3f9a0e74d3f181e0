package errors

import (
	"github.com/devknife/devknife/internal/colors"
)

// Handler is the interface for reporting user-facing messages.
// Different implementations report differently depending on the
// front end driving the toolkit.
type Handler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput abstracts the colors package so handlers can be tested
// without writing to real streams.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler reports messages by printing to stdout/stderr through the
// colors package.
type CLIHandler struct {
	colors ColorOutput
}

func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

func (h *CLIHandler) Error(msg string) {
	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	h.colors.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	h.colors.Success(msg)
}

// ColorsOutput adapts the colors package to implement ColorOutput.
type ColorsOutput struct{}

var _ ColorOutput = (*ColorsOutput)(nil)

func (o *ColorsOutput) Error(msgs ...string) {
	colors.Error(msgs...)
}

func (o *ColorsOutput) Warning(msgs ...string) {
	colors.Warning(msgs...)
}

func (o *ColorsOutput) Info(msgs ...string) {
	colors.Info(msgs...)
}

func (o *ColorsOutput) Success(msgs ...string) {
	colors.Success(msgs...)
}

// NewDefaultCLIHandler creates a CLI handler using ColorsOutput.
func NewDefaultCLIHandler() *CLIHandler {
	return NewCLIHandler(&ColorsOutput{})
}
