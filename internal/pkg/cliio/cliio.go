// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package cliio provides output formats and writers for CLI commands.
package cliio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
)

// Format represents the output format for CLI commands.
type Format string

const (
	// FormatText is styled terminal text.
	FormatText Format = "text"
	// FormatTable is an aligned plain-text table.
	FormatTable Format = "table"
	// FormatCSV is the CSV output format.
	FormatCSV Format = "csv"
	// FormatJSON is the JSON output format.
	FormatJSON Format = "json"
	// FormatHTML is an HTML fragment.
	FormatHTML Format = "html"
)

// allFormats is every Format in the order they are listed in help text.
var allFormats = []Format{
	FormatText,
	FormatTable,
	FormatCSV,
	FormatJSON,
	FormatHTML,
}

// FormatsString returns the valid formats as a comma-separated list.
func FormatsString() string {
	formatStrings := make([]string, len(allFormats))
	for i, format := range allFormats {
		formatStrings[i] = string(format)
	}
	return strings.Join(formatStrings, ", ")
}

// ParseFormat parses a string into a Format, returning an error for unknown formats.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	if !slices.Contains(allFormats, format) {
		return "", fmt.Errorf("unknown format %q, must be one of: %s", s, FormatsString())
	}
	return format, nil
}

// WriteTable writes tabular data to the writer using tabwriter for aligned columns.
func WriteTable(writer io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range append([][]string{headers}, rows...) {
		// AlignRight requires a trailing tab to align the last column.
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")+"\t"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteCSVRecords writes CSV records to the writer.
func WriteCSVRecords(writer io.Writer, records [][]string) error {
	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.WriteAll(records); err != nil {
		return err
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteJSON writes objects as JSON with newlines between each object.
func WriteJSON[O any](writer io.Writer, objects ...O) error {
	encoder := json.NewEncoder(writer)
	for _, object := range objects {
		if err := encoder.Encode(object); err != nil {
			return err
		}
	}
	return nil
}
