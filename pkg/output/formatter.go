// Package output provides formatting and export of permission analysis results.
//
// It renders the persisted report in multiple formats (text, JSON, CSV) and
// produces the tabular console view of the same result set.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"github.com/otuschhoff/permaudit/pkg/analyze"
)

const timeLayout = "2006-01-02 15:04:05"

// Formatter handles formatting and exporting analysis results.
//
// Supported report formats: "text" (one block per file), "json", "csv".
type Formatter struct {
	format   string // "text", "json", "csv"
	noHeader bool   // Omit header row in console table output
}

// NewFormatter creates a new Formatter with the specified report format.
func NewFormatter(format string, noHeader bool) *Formatter {
	return &Formatter{
		format:   format,
		noHeader: noHeader,
	}
}

// ValidFormat reports whether format names a supported report format.
func ValidFormat(format string) bool {
	switch format {
	case "text", "json", "csv":
		return true
	}
	return false
}

// Format renders the persisted report body in the configured format.
func (f *Formatter) Format(results []analyze.Result) (string, error) {
	switch f.format {
	case "json":
		return f.toJSON(results)
	case "csv":
		return f.toCSV(results)
	default:
		return f.toText(results), nil
	}
}

// WriteToFile persists a rendered report.
func (f *Formatter) WriteToFile(content string, filename string) error {
	return os.WriteFile(filename, []byte(content), 0644)
}

// toText renders the report as a header followed by one block per file.
func (f *Formatter) toText(results []analyze.Result) string {
	var sb strings.Builder

	sb.WriteString("Permission Analysis Report\n")
	sb.WriteString(strings.Repeat("-", 27) + "\n")

	for _, r := range results {
		sb.WriteString(fmt.Sprintf("File: %s\n", r.Path))
		sb.WriteString(fmt.Sprintf("  Permissions: %s\n", r.Permissions))
		sb.WriteString(fmt.Sprintf("  Last Access Time: %s\n", r.AccessTime.Format(timeLayout)))
		sb.WriteString(fmt.Sprintf("  Last Modified Time: %s\n", r.ModTime.Format(timeLayout)))
		sb.WriteString(fmt.Sprintf("  Is Dormant: %t\n", r.Dormant))
		sb.WriteString("\n")
	}

	return sb.String()
}

// jsonResult is the JSON wire shape of a single result. Timestamps are
// rendered as fractional seconds since the epoch.
type jsonResult struct {
	Path         string  `json:"path"`
	Permissions  string  `json:"permissions"`
	LastAccess   float64 `json:"lastAccessTime"`
	LastModified float64 `json:"lastModifiedTime"`
	Dormant      bool    `json:"isDormant"`
}

func (f *Formatter) toJSON(results []analyze.Result) (string, error) {
	rows := make([]jsonResult, 0, len(results))
	for _, r := range results {
		rows = append(rows, jsonResult{
			Path:         r.Path,
			Permissions:  r.Permissions,
			LastAccess:   float64(r.AccessTime.UnixNano()) / 1e9,
			LastModified: float64(r.ModTime.UnixNano()) / 1e9,
			Dormant:      r.Dormant,
		})
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func (f *Formatter) toCSV(results []analyze.Result) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"path", "permissions", "last_access", "last_modified", "dormant"}); err != nil {
		return "", err
	}
	for _, r := range results {
		record := []string{
			r.Path,
			r.Permissions,
			r.AccessTime.Format(timeLayout),
			r.ModTime.Format(timeLayout),
			strconv.FormatBool(r.Dormant),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Table renders the console view of the results. The colored style is only
// applied when stdout is a terminal.
func (f *Formatter) Table(results []analyze.Result) string {
	t := table.NewWriter()

	if !f.noHeader {
		t.AppendHeader(table.Row{
			"File Path",
			"Permissions",
			"Last Access",
			"Last Modified",
			"Dormant",
		})
	}

	for _, r := range results {
		t.AppendRow(table.Row{
			r.Path,
			r.Permissions,
			fmt.Sprintf("%s (%s)", r.AccessTime.Format(timeLayout), humanize.Time(r.AccessTime)),
			fmt.Sprintf("%s (%s)", r.ModTime.Format(timeLayout), humanize.Time(r.ModTime)),
			strconv.FormatBool(r.Dormant),
		})
	}

	if isatty.IsTerminal(os.Stdout.Fd()) {
		t.SetStyle(table.StyleColoredDark)
	} else {
		t.SetStyle(table.StyleDefault)
	}
	return fmt.Sprintf("%s\n", t.Render())
}
