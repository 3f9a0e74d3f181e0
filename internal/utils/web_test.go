package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphQLFormatting(t *testing.T) {
	u := NewGraphQLUtility()
	result := u.Process(argsInput("query { user { name email } }"), nil)

	require.True(t, result.Success)
	out := result.Output.(string)
	assert.Contains(t, out, "query {")
	assert.Contains(t, out, "  user {")
	assert.Contains(t, out, "    name email")
	assert.Contains(t, out, "  }")
	assert.Contains(t, out, "}")
}

func TestGraphQLFormattingCustomIndent(t *testing.T) {
	u := NewGraphQLUtility()
	result := u.Process(argsInput("query { user { name } }"), map[string]any{"indent": 4})

	require.True(t, result.Success)
	assert.Contains(t, result.Output.(string), "    user {")
	assert.Equal(t, 4, result.Metadata["indent"])
}

func TestGraphQLMutationFormatting(t *testing.T) {
	u := NewGraphQLUtility()
	result := u.Process(argsInput(`mutation { createUser(input: { name: "John" }) { id } }`), nil)

	require.True(t, result.Success)
	out := result.Output.(string)
	assert.Contains(t, out, "mutation {")
	assert.Contains(t, out, "createUser")
}

func TestGraphQLEmptyInput(t *testing.T) {
	u := NewGraphQLUtility()
	result := u.Process(argsInput(""), nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "Empty GraphQL query provided")
}

func TestGraphQLInputValidation(t *testing.T) {
	u := NewGraphQLUtility()
	assert.True(t, u.ValidateInput(argsInput("query { user }")))
	assert.False(t, u.ValidateInput(argsInput("not a graphql query")))
}

func TestCSSFormatting(t *testing.T) {
	u := NewCSSUtility()
	result := u.Process(argsInput("body{margin:0;padding:0}h1{color:red}"), nil)

	require.True(t, result.Success)
	out := result.Output.(string)
	assert.Contains(t, out, "body {")
	assert.Contains(t, out, "margin:0;")
	assert.Contains(t, out, "padding:0")
	assert.Contains(t, out, "h1 {")
	assert.Contains(t, out, "color:red")
}

func TestCSSFormattingCustomIndent(t *testing.T) {
	u := NewCSSUtility()
	result := u.Process(argsInput("body{margin:0}"), map[string]any{"indent": 4})

	require.True(t, result.Success)
	assert.Contains(t, result.Output.(string), "    margin:0")
	assert.Equal(t, 4, result.Metadata["indent"])
}

func TestCSSMultipleSelectors(t *testing.T) {
	u := NewCSSUtility()
	result := u.Process(argsInput(".container,.wrapper{width:100%}"), nil)

	require.True(t, result.Success)
	out := result.Output.(string)
	assert.Contains(t, out, ".container,")
	assert.Contains(t, out, ".wrapper {")
}

func TestCSSEmptyInput(t *testing.T) {
	u := NewCSSUtility()
	result := u.Process(argsInput(""), nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "Empty CSS content provided")
}

func TestCSSInputValidation(t *testing.T) {
	u := NewCSSUtility()
	assert.True(t, u.ValidateInput(argsInput("body { margin: 0; }")))
	assert.False(t, u.ValidateInput(argsInput("not css content")))
}

func TestCSSMinification(t *testing.T) {
	u := NewCSSMinUtility()
	result := u.Process(argsInput("body { margin: 0; padding: 0; }"), nil)

	require.True(t, result.Success)
	assert.Equal(t, "body{margin:0;padding:0}", result.Output)
	assert.Contains(t, result.Metadata, "compression_ratio")
}

func TestCSSMinificationComments(t *testing.T) {
	u := NewCSSMinUtility()

	result := u.Process(argsInput("body { margin: 0; /* comment */ padding: 0; }"), nil)
	require.True(t, result.Success)
	assert.Equal(t, "body{margin:0;padding:0}", result.Output)

	multiline := "body {\n    margin: 0;\n    /* This is a\n       multiline comment */\n    padding: 0;\n}"
	result = u.Process(argsInput(multiline), nil)
	require.True(t, result.Success)
	assert.Equal(t, "body{margin:0;padding:0}", result.Output)
}

func TestCSSMinificationTrailingSemicolon(t *testing.T) {
	u := NewCSSMinUtility()
	result := u.Process(argsInput("body { margin: 0; }"), nil)

	require.True(t, result.Success)
	assert.Equal(t, "body{margin:0}", result.Output)
}

func TestCSSMinEmptyInput(t *testing.T) {
	u := NewCSSMinUtility()
	result := u.Process(argsInput(""), nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "Empty CSS content provided")
}

func TestURLExtractionAttributes(t *testing.T) {
	u := NewURLExtractUtility()

	result := u.Process(argsInput(`<a href="https://example.com">Link</a>`), nil)
	require.True(t, result.Success)
	assert.Contains(t, result.Output.(string), "https://example.com")
	assert.Equal(t, 1, result.Metadata["urls_found"])

	result = u.Process(argsInput(`<img src="https://example.com/image.jpg">`), nil)
	require.True(t, result.Success)
	assert.Contains(t, result.Output.(string), "https://example.com/image.jpg")
}

func TestURLExtractionMultipleSources(t *testing.T) {
	u := NewURLExtractUtility()
	html := `
	<a href="https://example.com">Link</a>
	<img src="https://example.com/image.jpg">
	<form action="https://example.com/submit">
	`
	result := u.Process(argsInput(html), nil)

	require.True(t, result.Success)
	out := result.Output.(string)
	assert.Contains(t, out, "https://example.com")
	assert.Contains(t, out, "https://example.com/image.jpg")
	assert.Contains(t, out, "https://example.com/submit")
	assert.Equal(t, 3, result.Metadata["urls_found"])
}

func TestURLExtractionBaseURL(t *testing.T) {
	u := NewURLExtractUtility()
	result := u.Process(argsInput(`<a href="/page">Link</a><img src="/image.jpg">`), map[string]any{"base_url": "https://example.com"})

	require.True(t, result.Success)
	out := result.Output.(string)
	assert.Contains(t, out, "https://example.com/page")
	assert.Contains(t, out, "https://example.com/image.jpg")
}

func TestURLExtractionCSSURLs(t *testing.T) {
	u := NewURLExtractUtility()
	result := u.Process(argsInput(`<style>body { background: url("https://example.com/bg.jpg"); }</style>`), nil)

	require.True(t, result.Success)
	assert.Contains(t, result.Output.(string), "https://example.com/bg.jpg")
}

func TestURLExtractionPlainText(t *testing.T) {
	u := NewURLExtractUtility()
	result := u.Process(argsInput("Visit https://example.com for more info"), nil)

	require.True(t, result.Success)
	assert.Contains(t, result.Output.(string), "https://example.com")
}

func TestURLExtractionSkipsNonNavigable(t *testing.T) {
	u := NewURLExtractUtility()
	for _, html := range []string{
		`<a href="#section">Section</a>`,
		`<a href="javascript:void(0)">Click</a>`,
		`<a href="mailto:test@example.com">Email</a>`,
	} {
		result := u.Process(argsInput(html), nil)
		require.True(t, result.Success, html)
		assert.Contains(t, result.Output.(string), "No URLs found", html)
	}
}

func TestURLExtractionDuplicates(t *testing.T) {
	u := NewURLExtractUtility()
	html := `
	<a href="https://example.com">Link1</a>
	<a href="https://example.com">Link2</a>
	`

	result := u.Process(argsInput(html), map[string]any{"unique": true})
	require.True(t, result.Success)
	assert.Equal(t, 1, result.Metadata["urls_found"])

	result = u.Process(argsInput(html), map[string]any{"unique": false})
	require.True(t, result.Success)
	assert.Equal(t, 2, result.Metadata["urls_found"])
}

func TestURLExtractionNoURLs(t *testing.T) {
	u := NewURLExtractUtility()
	result := u.Process(argsInput("<p>Just some text</p>"), nil)

	require.True(t, result.Success)
	assert.Contains(t, result.Output.(string), "No URLs found")
	assert.Equal(t, 0, result.Metadata["urls_found"])
}

func TestURLExtractionEmptyInput(t *testing.T) {
	u := NewURLExtractUtility()
	result := u.Process(argsInput(""), nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "Empty HTML content provided")
}
