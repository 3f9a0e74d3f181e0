package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devknife/devknife/internal/core"
)

func TestRegisterAll(t *testing.T) {
	registry := core.NewCommandRegistry()
	require.NoError(t, RegisterAll(registry))

	commands := registry.ListCommands("")
	assert.Len(t, commands, len(builtins))
	for _, name := range []string{
		"echo", "base64", "url",
		"json", "json2yaml", "xml", "json2struct",
		"csv2md", "tsv2md", "csv2json",
		"uuid-gen", "uuid-decode", "iban", "password",
		"base", "hash", "timestamp",
		"graphql", "css", "css-min", "url-extract",
	} {
		assert.Contains(t, commands, name)
	}
}

func TestRegisterAllCategories(t *testing.T) {
	registry := core.NewCommandRegistry()
	require.NoError(t, RegisterAll(registry))

	categories := registry.ListCategories()
	for _, category := range []string{"example", "encoding", "data_format", "developer", "math", "web"} {
		assert.Contains(t, categories, category)
	}
	assert.Equal(t, []string{"graphql", "css", "css-min", "url-extract"}, registry.CommandsByCategory("web"))
}

func TestRegisterAllTwiceFails(t *testing.T) {
	registry := core.NewCommandRegistry()
	require.NoError(t, RegisterAll(registry))

	err := RegisterAll(registry)
	assert.Error(t, err)
}

func TestRegisteredModulesExposeMetadata(t *testing.T) {
	registry := core.NewCommandRegistry()
	require.NoError(t, RegisterAll(registry))

	for _, name := range registry.ListCommands("") {
		factory := registry.UtilityFactory(name)
		require.NotNil(t, factory, name)
		module := factory()
		info := module.CommandInfo()
		assert.Equal(t, name, info.Name, name)
		assert.NotEmpty(t, info.Description, name)
		assert.NotEmpty(t, info.Category, name)
		assert.NotEmpty(t, module.Help(), name)
	}
}
