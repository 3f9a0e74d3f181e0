package core

import (
	"fmt"
	"sort"
	"strings"
)

// helpTitle is the product banner used by GeneralHelp.
const helpTitle = "DevKnife - Developer Utility Toolkit"

// CommandRouter resolves command names against a registry, applies the
// uniform validation pipeline, and shields callers from utility faults.
// Utility instances are created lazily and cached for the router's lifetime.
//
// Like the registry, the router assumes a single logical thread of control;
// the cache check-then-insert is not atomic.
type CommandRouter struct {
	registry  *CommandRegistry
	instances map[string]UtilityModule
}

// NewCommandRouter creates a router over the given registry. The router
// holds a reference to the registry but does not own it.
func NewCommandRouter(registry *CommandRegistry) *CommandRouter {
	return &CommandRouter{
		registry:  registry,
		instances: make(map[string]UtilityModule),
	}
}

// RouteCommand validates and executes a named command against the input and
// options. Every failure mode terminates here as a failed ProcessingResult;
// nothing escapes as a panic or error.
func (r *CommandRouter) RouteCommand(name string, input InputData, options map[string]any) ProcessingResult {
	utility, ok := r.instance(name)
	if !ok {
		return NewErrorResult("Unknown command: %s", name)
	}

	if !r.safeValidateInput(utility, input) {
		return NewErrorResult("Invalid input for command %q", name)
	}

	if result := r.ValidateCommandOptions(name, options); !result.Success {
		return result
	}

	return r.safeProcess(utility, input, options)
}

// ValidateCommandOptions succeeds when the command exists and every option
// key is one the utility declares. Option values are deliberately unchecked:
// utilities interpret them heterogeneously.
func (r *CommandRouter) ValidateCommandOptions(name string, options map[string]any) ProcessingResult {
	utility, ok := r.instance(name)
	if !ok {
		return NewErrorResult("Unknown command: %s", name)
	}

	supported := make(map[string]bool)
	for _, key := range utility.SupportedOptions() {
		supported[key] = true
	}

	var invalid []string
	for key := range options {
		if !supported[key] {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return NewErrorResult("Unsupported options for %s: %s", name, strings.Join(invalid, ", "))
	}
	return NewSuccessResult(nil)
}

// IsValidCommand reports whether the registry knows the command.
func (r *CommandRouter) IsValidCommand(name string) bool {
	return r.registry.UtilityFactory(name) != nil
}

// CommandHelp returns the utility's help text, or false for unknown names.
func (r *CommandRouter) CommandHelp(name string) (string, bool) {
	utility, ok := r.instance(name)
	if !ok {
		return "", false
	}
	return utility.Help(), true
}

// CommandExamples returns the utility's example invocations. Unknown names
// yield an empty slice.
func (r *CommandRouter) CommandExamples(name string) []string {
	utility, ok := r.instance(name)
	if !ok {
		return nil
	}
	return utility.Examples()
}

// GeneralHelp builds an index of every registered command grouped by
// category. Categories are sorted; commands keep registration order.
func (r *CommandRouter) GeneralHelp() string {
	var sb strings.Builder
	sb.WriteString(helpTitle)
	sb.WriteString("\n")

	categories := r.registry.ListCategories()
	sort.Strings(categories)
	for _, category := range categories {
		sb.WriteString("\n")
		sb.WriteString(strings.ToUpper(category))
		sb.WriteString(":\n")
		for _, name := range r.registry.CommandsByCategory(category) {
			info, _ := r.registry.CommandInfo(name)
			sb.WriteString(fmt.Sprintf("  %-14s %s\n", name, info.Description))
		}
	}

	sb.WriteString("\nUse 'devknife <command> --help' for details on a command.\n")
	return sb.String()
}

// ClearCache evicts every cached utility instance. Subsequent calls
// reinstantiate from the registry's factories.
func (r *CommandRouter) ClearCache() {
	r.instances = make(map[string]UtilityModule)
}

// Cached reports whether an instance exists for name. It exists so tests and
// front-ends can observe cache state without routing a command.
func (r *CommandRouter) Cached(name string) bool {
	_, ok := r.instances[name]
	return ok
}

// instance returns the cached utility for name, instantiating on first use.
// The registry is consulted before the cache so that an unregistered command
// disappears even when an instance is still cached.
func (r *CommandRouter) instance(name string) (UtilityModule, bool) {
	factory := r.registry.UtilityFactory(name)
	if factory == nil {
		return nil, false
	}
	if utility, ok := r.instances[name]; ok {
		return utility, true
	}
	utility := factory()
	r.instances[name] = utility
	return utility, true
}

// safeValidateInput runs ValidateInput, treating a panic as a rejection.
func (r *CommandRouter) safeValidateInput(utility UtilityModule, input InputData) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return utility.ValidateInput(input)
}

// safeProcess runs Process, converting a panic into a failed result.
// Utility failures are data, not faults of the router.
func (r *CommandRouter) safeProcess(utility UtilityModule, input InputData, options map[string]any) (result ProcessingResult) {
	defer func() {
		if rec := recover(); rec != nil {
			result = NewErrorResult("Command failed unexpectedly: %v", rec)
		}
	}()
	return utility.Process(input, options)
}
