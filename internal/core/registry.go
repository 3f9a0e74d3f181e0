package core

import "fmt"

// CommandRegistry is the single source of truth for which commands exist.
// It indexes utility factories by command name and groups names by category.
//
// The registry is populated once at startup and read afterwards; it carries
// no locking. Concurrent front-ends must impose their own synchronization
// around mutation.
type CommandRegistry struct {
	factories  map[string]Factory
	commands   map[string]Command
	categories map[string][]string
	order      []string
}

// NewCommandRegistry creates an empty registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		factories:  make(map[string]Factory),
		commands:   make(map[string]Command),
		categories: make(map[string][]string),
	}
}

// Register adds a utility factory to the registry. A transient instance is
// constructed to read its command metadata; the instance is discarded and
// real instantiation stays deferred to the router.
//
// Registration failures are startup-time programming errors and are returned
// as hard errors rather than ProcessingResults.
func (r *CommandRegistry) Register(factory Factory) error {
	if factory == nil {
		return fmt.Errorf("utility factory must implement UtilityModule: got nil factory")
	}
	utility := factory()
	if utility == nil {
		return fmt.Errorf("utility factory must implement UtilityModule: factory returned nil")
	}

	info := utility.CommandInfo()
	if err := info.Validate(); err != nil {
		return fmt.Errorf("invalid command metadata: %w", err)
	}
	if _, exists := r.factories[info.Name]; exists {
		return fmt.Errorf("command %q is already registered", info.Name)
	}

	r.factories[info.Name] = factory
	r.commands[info.Name] = info
	r.categories[info.Category] = append(r.categories[info.Category], info.Name)
	r.order = append(r.order, info.Name)
	return nil
}

// Unregister removes a command from all three indexes. Unknown names are a
// no-op.
func (r *CommandRegistry) Unregister(name string) {
	info, ok := r.commands[name]
	if !ok {
		return
	}
	delete(r.factories, name)
	delete(r.commands, name)

	names := r.categories[info.Category]
	for i, n := range names {
		if n == name {
			r.categories[info.Category] = append(names[:i], names[i+1:]...)
			break
		}
	}
	if len(r.categories[info.Category]) == 0 {
		delete(r.categories, info.Category)
	}
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// UtilityFactory returns the factory registered under name, or nil.
func (r *CommandRegistry) UtilityFactory(name string) Factory {
	return r.factories[name]
}

// CommandInfo returns the metadata registered under name.
func (r *CommandRegistry) CommandInfo(name string) (Command, bool) {
	info, ok := r.commands[name]
	return info, ok
}

// ListCommands returns all registered command names in registration order.
// With a non-empty category, only names in that category are returned.
func (r *CommandRegistry) ListCommands(category string) []string {
	if category != "" {
		return r.CommandsByCategory(category)
	}
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// ListCategories returns the set of known categories.
func (r *CommandRegistry) ListCategories() []string {
	categories := make([]string, 0, len(r.categories))
	for category := range r.categories {
		categories = append(categories, category)
	}
	return categories
}

// CommandsByCategory returns the command names in a category, in registration
// order. Unknown categories yield an empty slice, not an error.
func (r *CommandRegistry) CommandsByCategory(category string) []string {
	names := make([]string, len(r.categories[category]))
	copy(names, r.categories[category])
	return names
}
