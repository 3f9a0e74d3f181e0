package utils

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/devknife/devknife/internal/core"
)

// GraphQLUtility re-indents GraphQL documents by brace depth.
type GraphQLUtility struct{}

func NewGraphQLUtility() core.UtilityModule { return &GraphQLUtility{} }

func (u *GraphQLUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	query := strings.TrimSpace(input.String())
	if query == "" {
		return core.NewErrorResult("Empty GraphQL query provided")
	}
	indent := intOption(options, "indent", 2)

	result := core.NewSuccessResult(indentByBraces(query, strings.Repeat(" ", indent))).
		WithMetadata("operation", "format").
		WithMetadata("indent", indent)
	return result
}

// indentByBraces reflows a braced document: each opening brace ends a
// line, each closing brace gets its own line, and interior runs of
// whitespace collapse to single spaces.
func indentByBraces(s, indent string) string {
	var b strings.Builder
	var buf strings.Builder
	depth := 0

	flush := func() {
		text := strings.Join(strings.Fields(buf.String()), " ")
		buf.Reset()
		if text != "" {
			b.WriteString(strings.Repeat(indent, depth) + text + "\n")
		}
	}

	for _, r := range s {
		switch r {
		case '{':
			text := strings.Join(strings.Fields(buf.String()), " ")
			buf.Reset()
			prefix := strings.Repeat(indent, depth)
			if text != "" {
				b.WriteString(prefix + text + " {\n")
			} else {
				b.WriteString(prefix + "{\n")
			}
			depth++
		case '}':
			flush()
			if depth > 0 {
				depth--
			}
			b.WriteString(strings.Repeat(indent, depth) + "}\n")
		default:
			buf.WriteRune(r)
		}
	}
	flush()
	return strings.TrimRight(b.String(), "\n")
}

func (u *GraphQLUtility) Help() string {
	return "Formats a GraphQL query by brace depth.\n\nUsage: devknife graphql '<query>'\n\nOptions:\n  indent  spaces per level (default 2)"
}

func (u *GraphQLUtility) ValidateInput(input core.InputData) bool {
	content := input.String()
	return !blankInput(input) && strings.Contains(content, "{") && strings.Contains(content, "}")
}

func (u *GraphQLUtility) CommandInfo() core.Command {
	return core.NewCommand("graphql", "Format a GraphQL query", "web", "utils.web")
}

func (u *GraphQLUtility) SupportedOptions() []string {
	return []string{"indent"}
}

func (u *GraphQLUtility) Examples() []string {
	return []string{"devknife graphql 'query { user { name email } }'"}
}

// CSSUtility expands minified CSS into one declaration per line.
type CSSUtility struct{}

func NewCSSUtility() core.UtilityModule { return &CSSUtility{} }

func (u *CSSUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	content := strings.TrimSpace(input.String())
	if content == "" {
		return core.NewErrorResult("Empty CSS content provided")
	}
	indent := intOption(options, "indent", 2)

	result := core.NewSuccessResult(expandCSS(content, strings.Repeat(" ", indent))).
		WithMetadata("operation", "format").
		WithMetadata("indent", indent)
	return result
}

func expandCSS(content, indent string) string {
	var b strings.Builder
	rest := content
	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			break
		}
		selector := strings.TrimSpace(rest[:open])
		parts := strings.Split(selector, ",")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}
		b.WriteString(strings.Join(parts, ",\n") + " {\n")

		rest = rest[open+1:]
		closeIdx := strings.Index(rest, "}")
		body := rest
		if closeIdx >= 0 {
			body = rest[:closeIdx]
			rest = rest[closeIdx+1:]
		} else {
			rest = ""
		}

		var decls []string
		for _, decl := range strings.Split(body, ";") {
			if d := strings.TrimSpace(decl); d != "" {
				decls = append(decls, d)
			}
		}
		for i, decl := range decls {
			if i < len(decls)-1 {
				b.WriteString(indent + decl + ";\n")
			} else {
				b.WriteString(indent + decl + "\n")
			}
		}
		b.WriteString("}\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (u *CSSUtility) Help() string {
	return "Expands CSS into one declaration per line.\n\nUsage: devknife css '<css>'\n\nOptions:\n  indent  spaces per declaration (default 2)"
}

func (u *CSSUtility) ValidateInput(input core.InputData) bool {
	content := input.String()
	return !blankInput(input) && strings.Contains(content, "{") && strings.Contains(content, "}")
}

func (u *CSSUtility) CommandInfo() core.Command {
	return core.NewCommand("css", "Format CSS", "web", "utils.web")
}

func (u *CSSUtility) SupportedOptions() []string {
	return []string{"indent"}
}

func (u *CSSUtility) Examples() []string {
	return []string{"devknife css 'body{margin:0;padding:0}'"}
}

var cssCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

// CSSMinUtility strips comments and needless whitespace from CSS.
type CSSMinUtility struct{}

func NewCSSMinUtility() core.UtilityModule { return &CSSMinUtility{} }

func (u *CSSMinUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	content := strings.TrimSpace(input.String())
	if content == "" {
		return core.NewErrorResult("Empty CSS content provided")
	}

	minified := minifyCSS(content)
	ratio := 0.0
	if len(content) > 0 {
		ratio = float64(len(minified)) / float64(len(content))
	}
	result := core.NewSuccessResult(minified).
		WithMetadata("operation", "minify").
		WithMetadata("compression_ratio", ratio)
	return result
}

func minifyCSS(content string) string {
	out := cssCommentRe.ReplaceAllString(content, "")
	out = strings.Join(strings.Fields(out), " ")
	for _, c := range []string{"{", "}", ":", ";", ","} {
		out = strings.ReplaceAll(out, " "+c, c)
		out = strings.ReplaceAll(out, c+" ", c)
	}
	out = strings.ReplaceAll(out, ";}", "}")
	return strings.TrimSpace(out)
}

func (u *CSSMinUtility) Help() string {
	return "Minifies CSS by stripping comments and whitespace.\n\nUsage: devknife css-min '<css>'"
}

func (u *CSSMinUtility) ValidateInput(input core.InputData) bool {
	content := input.String()
	return !blankInput(input) && strings.Contains(content, "{") && strings.Contains(content, "}")
}

func (u *CSSMinUtility) CommandInfo() core.Command {
	return core.NewCommand("css-min", "Minify CSS", "web", "utils.web")
}

func (u *CSSMinUtility) SupportedOptions() []string {
	return nil
}

func (u *CSSMinUtility) Examples() []string {
	return []string{"devknife css-min 'body { margin: 0; }'"}
}

var (
	htmlAttrURLRe = regexp.MustCompile(`(?i)(?:href|src|action)\s*=\s*["']([^"']+)["']`)
	cssURLRe      = regexp.MustCompile(`url\(\s*["']?([^"')]+)["']?\s*\)`)
	plainURLRe    = regexp.MustCompile(`https?://[^\s<>"']+`)
)

// URLExtractUtility pulls URLs out of HTML: link/image/form attributes,
// CSS url() references and bare URLs in text.
type URLExtractUtility struct{}

func NewURLExtractUtility() core.UtilityModule { return &URLExtractUtility{} }

func (u *URLExtractUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	content := input.String()
	if strings.TrimSpace(content) == "" {
		return core.NewErrorResult("Empty HTML content provided")
	}
	unique := boolOption(options, "unique", true)
	baseURL := stringOption(options, "base_url", "")

	var urls []string
	var spans [][2]int

	collect := func(re *regexp.Regexp, group int) {
		for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
			spans = append(spans, [2]int{m[0], m[1]})
			urls = append(urls, content[m[2*group]:m[2*group+1]])
		}
	}
	collect(htmlAttrURLRe, 1)
	collect(cssURLRe, 1)

	// Bare URLs in text, skipping regions already captured above.
	for _, m := range plainURLRe.FindAllStringIndex(content, -1) {
		overlaps := false
		for _, span := range spans {
			if m[0] < span[1] && m[1] > span[0] {
				overlaps = true
				break
			}
		}
		if !overlaps {
			urls = append(urls, content[m[0]:m[1]])
		}
	}

	resolved := make([]string, 0, len(urls))
	seen := make(map[string]bool)
	for _, raw := range urls {
		cleaned := resolveURL(raw, baseURL)
		if cleaned == "" {
			continue
		}
		if unique && seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		resolved = append(resolved, cleaned)
	}

	output := "No URLs found"
	if len(resolved) > 0 {
		output = strings.Join(resolved, "\n")
	}
	result := core.NewSuccessResult(output).
		WithMetadata("operation", "extract").
		WithMetadata("urls_found", len(resolved))
	return result
}

// resolveURL filters out non-navigable references and resolves
// relative paths against base when given.
func resolveURL(raw, base string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "", strings.HasPrefix(raw, "#"):
		return ""
	case strings.HasPrefix(strings.ToLower(raw), "javascript:"),
		strings.HasPrefix(strings.ToLower(raw), "mailto:"),
		strings.HasPrefix(strings.ToLower(raw), "data:"):
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if base == "" {
		return ""
	}
	baseParsed, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return baseParsed.ResolveReference(ref).String()
}

func (u *URLExtractUtility) Help() string {
	return "Extracts URLs from HTML content.\n\nUsage: devknife url-extract --file page.html\n\nOptions:\n  base_url  resolve relative URLs against this base\n  unique    drop duplicate URLs (default true)"
}

func (u *URLExtractUtility) ValidateInput(input core.InputData) bool {
	return !blankInput(input)
}

func (u *URLExtractUtility) CommandInfo() core.Command {
	return core.NewCommand("url-extract", "Extract URLs from HTML", "web", "utils.web")
}

func (u *URLExtractUtility) SupportedOptions() []string {
	return []string{"base_url", "unique"}
}

func (u *URLExtractUtility) Examples() []string {
	return []string{"devknife url-extract --file page.html"}
}
