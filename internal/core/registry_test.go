package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUtility is a minimal UtilityModule used across the core tests.
type mockUtility struct {
	name     string
	category string
	options  []string
}

func newMockUtility() UtilityModule {
	return &mockUtility{name: "mock", category: "test", options: []string{"option1", "option2"}}
}

func (m *mockUtility) Process(input InputData, options map[string]any) ProcessingResult {
	result := NewSuccessResult(fmt.Sprintf("Processed: %s", input.String()))
	return result.WithMetadata("test", true)
}

func (m *mockUtility) Help() string { return "Mock utility help text" }

func (m *mockUtility) ValidateInput(input InputData) bool {
	return len(strings.TrimSpace(input.String())) > 0
}

func (m *mockUtility) CommandInfo() Command {
	return NewCommand(m.name, "Mock utility for testing", m.category, "core/test")
}

func (m *mockUtility) SupportedOptions() []string { return m.options }

func (m *mockUtility) Examples() []string { return []string{"mock example1", "mock example2"} }

// echoUtility is a second registrable utility for listing tests.
type echoUtility struct{}

func newEchoUtility() UtilityModule { return &echoUtility{} }

func (e *echoUtility) Process(input InputData, options map[string]any) ProcessingResult {
	return NewSuccessResult(input.String())
}

func (e *echoUtility) Help() string { return "Echoes its input" }

func (e *echoUtility) ValidateInput(input InputData) bool { return input.String() != "" }

func (e *echoUtility) CommandInfo() Command {
	return NewCommand("echo", "Echo the input back", "example", "core/test")
}

func (e *echoUtility) SupportedOptions() []string { return nil }

func (e *echoUtility) Examples() []string { return nil }

func TestRegisterUtility(t *testing.T) {
	registry := NewCommandRegistry()
	require.NoError(t, registry.Register(newMockUtility))

	assert.NotNil(t, registry.UtilityFactory("mock"))
	info, ok := registry.CommandInfo("mock")
	require.True(t, ok)
	assert.Equal(t, "mock", info.Name)
	assert.Equal(t, "Mock utility for testing", info.Description)
	assert.Contains(t, registry.CommandsByCategory("test"), "mock")
}

func TestRegisterDuplicate(t *testing.T) {
	registry := NewCommandRegistry()
	require.NoError(t, registry.Register(newMockUtility))

	err := registry.Register(newMockUtility)
	assert.ErrorContains(t, err, "already registered")
}

func TestRegisterInvalidFactory(t *testing.T) {
	registry := NewCommandRegistry()

	err := registry.Register(nil)
	assert.ErrorContains(t, err, "must implement UtilityModule")

	err = registry.Register(func() UtilityModule { return nil })
	assert.ErrorContains(t, err, "must implement UtilityModule")
}

func TestRegisterInvalidMetadata(t *testing.T) {
	registry := NewCommandRegistry()
	err := registry.Register(func() UtilityModule {
		return &mockUtility{name: "", category: "test"}
	})
	assert.ErrorContains(t, err, "command name cannot be empty")
}

func TestUnregisterUtility(t *testing.T) {
	registry := NewCommandRegistry()
	require.NoError(t, registry.Register(newMockUtility))

	registry.Unregister("mock")
	assert.Nil(t, registry.UtilityFactory("mock"))
	_, ok := registry.CommandInfo("mock")
	assert.False(t, ok)
	assert.Empty(t, registry.CommandsByCategory("test"))

	// Unknown names are a no-op.
	registry.Unregister("nonexistent")
}

func TestUtilityFactoryLookup(t *testing.T) {
	registry := NewCommandRegistry()
	require.NoError(t, registry.Register(newMockUtility))

	assert.NotNil(t, registry.UtilityFactory("mock"))
	assert.Nil(t, registry.UtilityFactory("nonexistent"))
}

func TestListCommands(t *testing.T) {
	registry := NewCommandRegistry()
	require.NoError(t, registry.Register(newMockUtility))
	require.NoError(t, registry.Register(newEchoUtility))

	all := registry.ListCommands("")
	assert.Equal(t, []string{"mock", "echo"}, all)

	assert.Equal(t, []string{"mock"}, registry.ListCommands("test"))
	assert.Equal(t, []string{"echo"}, registry.ListCommands("example"))
}

func TestListCategories(t *testing.T) {
	registry := NewCommandRegistry()
	require.NoError(t, registry.Register(newMockUtility))
	require.NoError(t, registry.Register(newEchoUtility))

	categories := registry.ListCategories()
	assert.ElementsMatch(t, []string{"test", "example"}, categories)
}

func TestCommandsByCategory(t *testing.T) {
	registry := NewCommandRegistry()
	require.NoError(t, registry.Register(newMockUtility))

	assert.Equal(t, []string{"mock"}, registry.CommandsByCategory("test"))
	assert.Empty(t, registry.CommandsByCategory("nonexistent"))
}
