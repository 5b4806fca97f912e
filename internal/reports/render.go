package reports

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format is a report output format. Its value is the file extension.
type Format string

// Supported formats.
const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const sheetName = "report"

// ParseFormat parses a format name. "text" is accepted for txt.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "txt", "text":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ParseFormats parses a comma separated format list, dropping duplicates.
func ParseFormats(list string) ([]Format, error) {
	var out []Format
	seen := make(map[Format]bool)
	for _, s := range strings.Split(list, ",") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		f, err := ParseFormat(s)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoFormats
	}
	return out, nil
}

// Render writes t to w in format f.
func Render(w io.Writer, t Table, f Format) error {
	switch f {
	case FormatText:
		return renderText(w, t)
	case FormatCSV:
		return renderCSV(w, t)
	case FormatXLSX:
		return renderXLSX(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// renderText writes the name, the row count, a blank line, the header and
// one line per row, each cell padded to its column width.
func renderText(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)
	lines := []string{t.Name, strconv.Itoa(len(t.Rows)) + " rows", ""}

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = pad(c.Header, c)
	}
	lines = append(lines, joinLine(header))

	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			var v any
			if i < len(row) {
				v = row[i]
			}
			text := cellText(v)
			if c.Text != nil {
				text = c.Text(v)
			}
			cells[i] = pad(text, c)
		}
		lines = append(lines, joinLine(cells))
	}

	for _, l := range lines {
		if _, err := bw.WriteString(l + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func joinLine(cells []string) string {
	return strings.TrimRight(strings.Join(cells, " "), " ")
}

func pad(s string, c Column) string {
	if c.Width <= len(s) {
		return s
	}
	fill := strings.Repeat(" ", c.Width-len(s))
	if c.Right {
		return fill + s
	}
	return s + fill
}

func renderCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Header
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = cellText(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// renderXLSX writes one sheet with the header on the first row.
func renderXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	for i, c := range t.Columns {
		if err := setCell(f, i+1, 1, c.Header); err != nil {
			return err
		}
	}
	for r, row := range t.Rows {
		for i, v := range row {
			if err := setCell(f, i+1, r+2, cellValue(v)); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheetName, cell, v)
}
