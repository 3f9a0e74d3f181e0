package core

// UtilityModule is the contract every utility implements. Utilities are
// stateless: Process must be a pure function of its arguments, and expected
// failures (malformed payloads, unsupported option values) are reported as a
// failed ProcessingResult, never as a panic.
type UtilityModule interface {
	// Process runs the utility against the input and options.
	Process(input InputData, options map[string]any) ProcessingResult

	// Help returns non-empty human-readable help text.
	Help() string

	// ValidateInput is a cheap, side-effect-free predicate. It returns false
	// for any input Process would reject as structurally invalid.
	ValidateInput(input InputData) bool

	// CommandInfo returns the static registration metadata. The same name is
	// returned on every call.
	CommandInfo() Command

	// SupportedOptions returns the option keys this utility recognizes. The
	// router rejects any option key outside this set.
	SupportedOptions() []string

	// Examples returns illustrative invocation strings for help text.
	Examples() []string
}

// Factory constructs a utility instance. The registry stores factories rather
// than instances so that instantiation stays deferred until a command is
// first routed.
type Factory func() UtilityModule
