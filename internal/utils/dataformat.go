package utils

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/devknife/devknife/internal/core"
)

// JSONUtility pretty-prints JSON, with an optional recovery mode that
// repairs common authoring mistakes before parsing.
type JSONUtility struct{}

func NewJSONUtility() core.UtilityModule { return &JSONUtility{} }

var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

func (u *JSONUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	indent := intOption(options, "indent", 2)
	content := input.String()

	var parsed any
	var warnings []string

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		if !boolOption(options, "recover", false) {
			return core.NewErrorResult("Invalid JSON format: %v. Use --recover to attempt automatic fixes", err)
		}
		recovered, recoveryNotes := repairJSON(content)
		if err := json.Unmarshal([]byte(recovered), &parsed); err != nil {
			return core.NewErrorResult("Could not recover JSON: %v", err)
		}
		warnings = recoveryNotes
	}

	out, err := json.MarshalIndent(parsed, "", strings.Repeat(" ", indent))
	if err != nil {
		return core.NewErrorResult("Failed to format JSON: %v", err)
	}

	result := core.NewSuccessResult(string(out)).
		WithMetadata("operation", "format").
		WithMetadata("indent", indent)
	for _, w := range warnings {
		result.AddWarning(w)
	}
	return result
}

// repairJSON applies best-effort fixes for trailing commas and
// single-quoted strings, reporting what it changed.
func repairJSON(content string) (string, []string) {
	var notes []string
	repaired := content
	if trailingCommaRe.MatchString(repaired) {
		repaired = trailingCommaRe.ReplaceAllString(repaired, "$1")
		notes = append(notes, "removed trailing commas")
	}
	if strings.Contains(repaired, "'") {
		repaired = strings.ReplaceAll(repaired, "'", `"`)
		notes = append(notes, "replaced single quotes with double quotes")
	}
	return repaired, notes
}

func (u *JSONUtility) Help() string {
	return "Pretty-prints JSON.\n\nUsage: devknife json '<json>'\n\nOptions:\n  indent   spaces per level (default 2)\n  recover  attempt to repair trailing commas and single quotes"
}

func (u *JSONUtility) ValidateInput(input core.InputData) bool {
	return !blankInput(input)
}

func (u *JSONUtility) CommandInfo() core.Command {
	return core.NewCommand("json", "Format and validate JSON", "data_format", "utils.dataformat")
}

func (u *JSONUtility) SupportedOptions() []string {
	return []string{"indent", "recover"}
}

func (u *JSONUtility) Examples() []string {
	return []string{
		`devknife json '{"name":"John","age":30}'`,
		`devknife json --recover '{"name":"John",}'`,
	}
}

// JSONToYAMLUtility converts JSON documents to YAML.
type JSONToYAMLUtility struct{}

func NewJSONToYAMLUtility() core.UtilityModule { return &JSONToYAMLUtility{} }

func (u *JSONToYAMLUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	var parsed any
	if err := json.Unmarshal(input.Bytes(), &parsed); err != nil {
		return core.NewErrorResult("Invalid JSON input: %v", err)
	}
	out, err := yaml.Marshal(parsed)
	if err != nil {
		return core.NewErrorResult("Failed to convert to YAML: %v", err)
	}
	result := core.NewSuccessResult(strings.TrimRight(string(out), "\n"))
	return result.WithMetadata("operation", "json_to_yaml")
}

func (u *JSONToYAMLUtility) Help() string {
	return "Converts a JSON document to YAML.\n\nUsage: devknife json2yaml '<json>'"
}

func (u *JSONToYAMLUtility) ValidateInput(input core.InputData) bool {
	return json.Valid(input.Bytes()) && !blankInput(input)
}

func (u *JSONToYAMLUtility) CommandInfo() core.Command {
	return core.NewCommand("json2yaml", "Convert JSON to YAML", "data_format", "utils.dataformat")
}

func (u *JSONToYAMLUtility) SupportedOptions() []string {
	return nil
}

func (u *JSONToYAMLUtility) Examples() []string {
	return []string{`devknife json2yaml '{"name":"John"}'`}
}

// xmlNode is the parse tree used by XMLUtility for re-indentation.
type xmlNode struct {
	name     xml.Name
	attrs    []xml.Attr
	children []*xmlNode
	text     string
}

// XMLUtility re-indents XML documents.
type XMLUtility struct{}

func NewXMLUtility() core.UtilityModule { return &XMLUtility{} }

func (u *XMLUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	indent := intOption(options, "indent", 2)
	root, err := parseXML(input.String())
	if err != nil {
		return core.NewErrorResult("Invalid XML format: %v", err)
	}

	var b strings.Builder
	renderXML(&b, root, 0, strings.Repeat(" ", indent))
	result := core.NewSuccessResult(strings.TrimRight(b.String(), "\n")).
		WithMetadata("operation", "format").
		WithMetadata("indent", indent)
	return result
}

func parseXML(content string) (*xmlNode, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))
	var root *xmlNode
	var stack []*xmlNode

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			node := &xmlNode{name: t.Name, attrs: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected closing element %s", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += strings.TrimSpace(string(t))
			}
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("unclosed element %s", stack[len(stack)-1].name.Local)
	}
	if root == nil {
		return nil, fmt.Errorf("no root element")
	}
	return root, nil
}

func renderXML(b *strings.Builder, node *xmlNode, depth int, indent string) {
	prefix := strings.Repeat(indent, depth)
	open := node.name.Local
	for _, attr := range node.attrs {
		open += fmt.Sprintf(" %s=%q", attr.Name.Local, attr.Value)
	}

	if len(node.children) == 0 {
		if node.text == "" {
			fmt.Fprintf(b, "%s<%s/>\n", prefix, open)
			return
		}
		fmt.Fprintf(b, "%s<%s>%s</%s>\n", prefix, open, node.text, node.name.Local)
		return
	}

	fmt.Fprintf(b, "%s<%s>\n", prefix, open)
	for _, child := range node.children {
		renderXML(b, child, depth+1, indent)
	}
	fmt.Fprintf(b, "%s</%s>\n", prefix, node.name.Local)
}

func (u *XMLUtility) Help() string {
	return "Re-indents an XML document.\n\nUsage: devknife xml '<xml>'\n\nOptions:\n  indent  spaces per level (default 2)"
}

func (u *XMLUtility) ValidateInput(input core.InputData) bool {
	if blankInput(input) {
		return false
	}
	_, err := parseXML(input.String())
	return err == nil
}

func (u *XMLUtility) CommandInfo() core.Command {
	return core.NewCommand("xml", "Format XML", "data_format", "utils.dataformat")
}

func (u *XMLUtility) SupportedOptions() []string {
	return []string{"indent"}
}

func (u *XMLUtility) Examples() []string {
	return []string{"devknife xml '<root><item>value</item></root>'"}
}

// JSONToStructUtility generates a Go struct declaration from a JSON
// object.
type JSONToStructUtility struct{}

func NewJSONToStructUtility() core.UtilityModule { return &JSONToStructUtility{} }

func (u *JSONToStructUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	var parsed map[string]any
	if err := json.Unmarshal(input.Bytes(), &parsed); err != nil {
		return core.NewErrorResult("Invalid JSON input: %v", err)
	}

	structName := stringOption(options, "name", "Generated")
	out := generateStruct(structName, parsed)
	result := core.NewSuccessResult(out).
		WithMetadata("operation", "json_to_struct").
		WithMetadata("struct_name", structName)
	return result
}

func generateStruct(name string, obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "type %s struct {\n", exportedIdentifier(name))
	for _, key := range keys {
		fmt.Fprintf(&b, "\t%s %s `json:%q`\n", exportedIdentifier(key), goType(obj[key]), key)
	}
	b.WriteString("}")
	return b.String()
}

func goType(value any) string {
	switch v := value.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case float64:
		if v == float64(int64(v)) {
			return "int"
		}
		return "float64"
	case []any:
		if len(v) > 0 {
			elem := goType(v[0])
			uniform := true
			for _, item := range v[1:] {
				if goType(item) != elem {
					uniform = false
					break
				}
			}
			if uniform {
				return "[]" + elem
			}
		}
		return "[]any"
	case map[string]any:
		return "map[string]any"
	default:
		return "any"
	}
}

// exportedIdentifier converts an arbitrary JSON key into a valid
// exported Go identifier.
func exportedIdentifier(key string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range key {
		switch {
		case unicode.IsLetter(r):
			if upperNext {
				b.WriteRune(unicode.ToUpper(r))
				upperNext = false
			} else {
				b.WriteRune(r)
			}
		case unicode.IsDigit(r):
			if b.Len() == 0 {
				b.WriteString("Field")
			}
			b.WriteRune(r)
			upperNext = true
		default:
			upperNext = true
		}
	}
	if b.Len() == 0 {
		return "Field"
	}
	return b.String()
}

func (u *JSONToStructUtility) Help() string {
	return "Generates a Go struct declaration from a JSON object.\n\nUsage: devknife json2struct '<json>'\n\nOptions:\n  name  struct type name (default Generated)"
}

func (u *JSONToStructUtility) ValidateInput(input core.InputData) bool {
	return json.Valid(input.Bytes()) && !blankInput(input)
}

func (u *JSONToStructUtility) CommandInfo() core.Command {
	return core.NewCommand("json2struct", "Generate a Go struct from JSON", "data_format", "utils.dataformat")
}

func (u *JSONToStructUtility) SupportedOptions() []string {
	return []string{"name"}
}

func (u *JSONToStructUtility) Examples() []string {
	return []string{`devknife json2struct --name Person '{"name":"John","age":30}'`}
}

// CSVToMarkdownUtility renders CSV data as a Markdown table.
type CSVToMarkdownUtility struct{}

func NewCSVToMarkdownUtility() core.UtilityModule { return &CSVToMarkdownUtility{} }

func (u *CSVToMarkdownUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	return delimitedToMarkdown(input, options, ',', "CSV", "csv_to_markdown")
}

func (u *CSVToMarkdownUtility) Help() string {
	return "Converts CSV data to a Markdown table.\n\nUsage: devknife csv2md < data.csv\n\nOptions:\n  has_header  treat the first row as a header (default true)"
}

func (u *CSVToMarkdownUtility) ValidateInput(input core.InputData) bool {
	return !blankInput(input)
}

func (u *CSVToMarkdownUtility) CommandInfo() core.Command {
	return core.NewCommand("csv2md", "Convert CSV to a Markdown table", "data_format", "utils.dataformat")
}

func (u *CSVToMarkdownUtility) SupportedOptions() []string {
	return []string{"has_header"}
}

func (u *CSVToMarkdownUtility) Examples() []string {
	return []string{"devknife csv2md --file data.csv"}
}

// TSVToMarkdownUtility renders tab-separated data as a Markdown table.
type TSVToMarkdownUtility struct{}

func NewTSVToMarkdownUtility() core.UtilityModule { return &TSVToMarkdownUtility{} }

func (u *TSVToMarkdownUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	return delimitedToMarkdown(input, options, '\t', "TSV", "tsv_to_markdown")
}

func (u *TSVToMarkdownUtility) Help() string {
	return "Converts TSV data to a Markdown table.\n\nUsage: devknife tsv2md < data.tsv\n\nOptions:\n  has_header  treat the first row as a header (default true)"
}

func (u *TSVToMarkdownUtility) ValidateInput(input core.InputData) bool {
	return !blankInput(input)
}

func (u *TSVToMarkdownUtility) CommandInfo() core.Command {
	return core.NewCommand("tsv2md", "Convert TSV to a Markdown table", "data_format", "utils.dataformat")
}

func (u *TSVToMarkdownUtility) SupportedOptions() []string {
	return []string{"has_header"}
}

func (u *TSVToMarkdownUtility) Examples() []string {
	return []string{"devknife tsv2md --file data.tsv"}
}

func delimitedToMarkdown(input core.InputData, options map[string]any, comma rune, label, operation string) core.ProcessingResult {
	if blankInput(input) {
		return core.NewErrorResult("Empty %s input provided", label)
	}
	hasHeader := boolOption(options, "has_header", true)

	rows, err := parseDelimited(input.String(), comma)
	if err != nil {
		return core.NewErrorResult("Invalid %s input: %v", label, err)
	}
	if len(rows) == 0 {
		return core.NewErrorResult("Empty %s input provided", label)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	var b strings.Builder
	for i, row := range rows {
		cells := make([]string, width)
		for c := 0; c < width; c++ {
			if c < len(row) {
				cells[c] = strings.ReplaceAll(row[c], "|", `\|`)
			}
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		if i == 0 && hasHeader {
			separators := make([]string, width)
			for c := range separators {
				separators[c] = "---"
			}
			b.WriteString("| " + strings.Join(separators, " | ") + " |\n")
		}
	}

	result := core.NewSuccessResult(strings.TrimRight(b.String(), "\n")).
		WithMetadata("operation", operation).
		WithMetadata("rows_processed", len(rows)).
		WithMetadata("has_header", hasHeader)
	return result
}

func parseDelimited(content string, comma rune) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}

// CSVToJSONUtility converts CSV data to a JSON array. With a header row
// each record becomes an object; numeric and boolean cell values are
// coerced to their native types.
type CSVToJSONUtility struct{}

func NewCSVToJSONUtility() core.UtilityModule { return &CSVToJSONUtility{} }

func (u *CSVToJSONUtility) Process(input core.InputData, options map[string]any) core.ProcessingResult {
	if blankInput(input) {
		return core.NewErrorResult("Empty CSV input provided")
	}
	hasHeader := boolOption(options, "has_header", true)
	indent := intOption(options, "indent", 2)

	rows, err := parseDelimited(input.String(), ',')
	if err != nil {
		return core.NewErrorResult("Invalid CSV input: %v", err)
	}
	if len(rows) == 0 {
		return core.NewErrorResult("Empty CSV input provided")
	}

	var payload any
	if hasHeader {
		header := rows[0]
		records := make([]map[string]any, 0, len(rows)-1)
		for _, row := range rows[1:] {
			record := make(map[string]any, len(header))
			for c, key := range header {
				if c < len(row) {
					record[key] = coerceCell(row[c])
				} else {
					record[key] = ""
				}
			}
			records = append(records, record)
		}
		payload = records
	} else {
		payload = rows
	}

	out, err := json.MarshalIndent(payload, "", strings.Repeat(" ", indent))
	if err != nil {
		return core.NewErrorResult("Failed to encode JSON: %v", err)
	}

	result := core.NewSuccessResult(string(out)).
		WithMetadata("operation", "csv_to_json").
		WithMetadata("rows_processed", len(rows)).
		WithMetadata("has_header", hasHeader).
		WithMetadata("indent", indent)
	return result
}

// coerceCell converts a CSV cell to int, float or bool when it
// parses cleanly, and leaves it a string otherwise.
func coerceCell(cell string) any {
	if n, err := strconv.Atoi(cell); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	switch cell {
	case "true":
		return true
	case "false":
		return false
	}
	return cell
}

func (u *CSVToJSONUtility) Help() string {
	return "Converts CSV data to JSON.\n\nUsage: devknife csv2json < data.csv\n\nOptions:\n  has_header  treat the first row as a header (default true)\n  indent      spaces per level (default 2)"
}

func (u *CSVToJSONUtility) ValidateInput(input core.InputData) bool {
	return !blankInput(input)
}

func (u *CSVToJSONUtility) CommandInfo() core.Command {
	return core.NewCommand("csv2json", "Convert CSV to JSON", "data_format", "utils.dataformat")
}

func (u *CSVToJSONUtility) SupportedOptions() []string {
	return []string{"has_header", "indent"}
}

func (u *CSVToJSONUtility) Examples() []string {
	return []string{"devknife csv2json --file data.csv"}
}
