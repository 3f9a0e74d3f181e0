package format

import (
	"fmt"
	"sort"
	"strings"
)

// maxCellWidth caps how wide a single table cell may grow before
// truncation kicks in.
const maxCellWidth = 48

// renderRows renders a list of uniform maps as a pipe-delimited table.
// Columns come from the union of keys, sorted, except the Key/Value
// pair which keeps its natural order.
func renderRows(rows []map[string]any) string {
	if len(rows) == 0 {
		return ""
	}

	columns := columnOrder(rows)
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(columns))
		for c, col := range columns {
			text := cellText(row[col])
			if len(text) > maxCellWidth {
				text = truncateString(text, maxCellWidth)
			}
			cells[r][c] = text
			if len(text) > widths[c] {
				widths[c] = len(text)
			}
		}
	}

	var b strings.Builder
	writeRow(&b, columns, widths)
	writeSeparator(&b, widths)
	for _, row := range cells {
		writeRow(&b, row, widths)
	}
	return strings.TrimRight(b.String(), "\n")
}

func columnOrder(rows []map[string]any) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, row := range rows {
		for key := range row {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	if len(columns) == 2 && seen["Key"] && seen["Value"] {
		return []string{"Key", "Value"}
	}
	sort.Strings(columns)
	return columns
}

func writeRow(b *strings.Builder, values []string, widths []int) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatString(v, widths[i], "left")
	}
	b.WriteString(strings.Join(parts, " | "))
	b.WriteString("\n")
}

func writeSeparator(b *strings.Builder, widths []int) {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = makeSeparator(w)
	}
	b.WriteString(strings.Join(parts, "-+-"))
	b.WriteString("\n")
}

func cellText(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

// formatString pads or clips a string to the given width.
func formatString(s string, width int, alignment string) string {
	if len(s) >= width {
		return s[:width]
	}

	switch alignment {
	case "right":
		return strings.Repeat(" ", width-len(s)) + s
	case "center":
		left := (width - len(s)) / 2
		right := width - len(s) - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default: // left
		return s + strings.Repeat(" ", width-len(s))
	}
}

// truncateString truncates a string to the specified width, adding "..." if truncated.
func truncateString(s string, width int) string {
	if len(s) <= width {
		return s + strings.Repeat(" ", width-len(s))
	}
	if width < 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

func makeSeparator(width int) string {
	return strings.Repeat("-", width)
}
