// package formatter exports confirmed selections to various formats (CSV, JSON, Markdown, plain text) and reads
// CSV seed files
package formatter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/dlx/internal/models"
	"github.com/desertthunder/dlx/internal/shared"
)

// Selection is what a confirmed picker produced: the destination items and the chosen context.
type Selection struct {
	Context string        `json:"context"`
	Items   []models.Item `json:"items"`
}

// Format names an export encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatJSON, FormatCSV, FormatText, FormatMarkdown}

// ParseFormat maps a flag value to a [Format]. "md" and "txt" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, s)
	}
}

// ExportToCSV converts a Selection to CSV with columns: ID, Caption, Context
func ExportToCSV(sel *Selection) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Caption", "Context"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, item := range sel.Items {
		if err := writer.Write([]string{item.ID, item.Caption, sel.Context}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a Selection to indented JSON. An empty selection encodes its items as [].
func ExportToJSON(sel *Selection) ([]byte, error) {
	out := *sel
	if out.Items == nil {
		out.Items = []models.Item{}
	}
	return shared.MarshalJSON(out, true)
}

// ExportToMarkdown converts a Selection to Markdown
func ExportToMarkdown(sel *Selection) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Selection\n\n")
	if sel.Context != "" {
		buf.WriteString(fmt.Sprintf("**Context**: %s\n", sel.Context))
	}
	buf.WriteString(fmt.Sprintf("**Items**: %d\n\n", len(sel.Items)))

	buf.WriteString("## Items\n\n")
	for i, item := range sel.Items {
		buf.WriteString(fmt.Sprintf("%d. %s (`%s`)\n", i+1, item.Caption, item.ID))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a Selection to plain text format
func ExportToText(sel *Selection) ([]byte, error) {
	var buf bytes.Buffer

	if sel.Context != "" {
		buf.WriteString(fmt.Sprintf("Context: %s\n", sel.Context))
	}
	buf.WriteString(fmt.Sprintf("Items: %d\n\n", len(sel.Items)))

	for i, item := range sel.Items {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, item.Caption))
	}

	return buf.Bytes(), nil
}

// Export encodes sel in the given format.
func Export(sel *Selection, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return ExportToJSON(sel)
	case FormatCSV:
		return ExportToCSV(sel)
	case FormatText:
		return ExportToText(sel)
	case FormatMarkdown:
		return ExportToMarkdown(sel)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
}

// WriteExport encodes sel and writes it to path, creating parent directories.
//
// An empty path writes to w instead.
func WriteExport(sel *Selection, format Format, path string, w io.Writer) error {
	data, err := Export(sel, format)
	if err != nil {
		return err
	}

	if path == "" {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// ParseCSV reads items from CSV.
//
// A first row naming "id" and "caption" columns (any case, any order) is treated as a header. Without one,
// two-column rows are read as id,caption and one-column rows as a caption with a blank ID. Blank rows are skipped.
func ParseCSV(r io.Reader) ([]models.Item, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	idCol, captionCol := 0, 1
	var items []models.Item
	first := true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
		}

		if first {
			first = false
			if id, caption, ok := headerColumns(record); ok {
				idCol, captionCol = id, caption
				continue
			}
		}

		item, ok := recordItem(record, idCol, captionCol)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

// ReadCSVFile opens path and parses it with [ParseCSV].
func ReadCSVFile(path string) ([]models.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ParseCSV(f)
}

func headerColumns(record []string) (id, caption int, ok bool) {
	id, caption = -1, -1
	for i, col := range record {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "id":
			id = i
		case "caption":
			caption = i
		}
	}
	return id, caption, id >= 0 && caption >= 0
}

func recordItem(record []string, idCol, captionCol int) (models.Item, bool) {
	field := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	if len(record) == 1 {
		caption := field(0)
		return models.NewItem("", caption), caption != ""
	}

	id, caption := field(idCol), field(captionCol)
	if id == "" && caption == "" {
		return models.Item{}, false
	}
	return models.NewItem(id, caption), true
}
