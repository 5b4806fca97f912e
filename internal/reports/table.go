// Package reports builds the named report tables over a snapshot and renders
// them as aligned text, CSV or XLSX files.
package reports

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/okian/warboard/internal/domain/model"
)

const places = 2

// Column describes one table column. Width 0 disables padding.
type Column struct {
	Header string
	Width  int
	Right  bool
	// Text overrides the text rendering of a cell. CSV and XLSX ignore it.
	Text func(v any) string
}

// Table is a rendered report: a name, a base filename and typed rows.
type Table struct {
	Name     string
	Filename string
	Columns  []Column
	Rows     [][]any
}

var unsafeFilename = regexp.MustCompile(`[^a-z0-9_.-]+`)

// title builds the display name and base filename of a report from its key
// and arguments: ("top_careers", 50) is "Top careers 50" in
// "top_careers_50".
func title(key string, args ...any) (name, filename string) {
	words := strings.ReplaceAll(key, "_", " ")
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	name = strings.ToUpper(words[:1]) + words[1:]
	filename = key
	if len(parts) > 0 {
		name += " " + strings.Join(parts, " ")
		filename += "_" + strings.ToLower(strings.Join(parts, "_"))
	}
	return strings.TrimSpace(name), unsafeFilename.ReplaceAllString(filename, "-")
}

// cellText renders a cell value for text and CSV output.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return model.FormatFixed(x, places)
	case []string:
		return strings.Join(x, ",")
	default:
		return fmt.Sprint(x)
	}
}

// cellValue is the raw value stored in a spreadsheet cell.
func cellValue(v any) any {
	switch x := v.(type) {
	case float64:
		return model.Round(x, places)
	case []string:
		return strings.Join(x, ",")
	default:
		return v
	}
}

func rankText(v any) string { return "#" + cellText(v) + ":" }

func rangeText(v any) string { return "(" + cellText(v) + ")" }
