// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datepickerrender writes a rendered datepicker View in the CLI output formats.
package datepickerrender

import (
	"fmt"
	"io"

	"github.com/bufdev/datepicker/internal/datepicker/datepickerconfig"
	"github.com/bufdev/datepicker/internal/datepicker/datepickerview"
	"github.com/bufdev/datepicker/internal/pkg/cliio"
	"github.com/bufdev/datepicker/internal/standard/xtime"
)

// Write writes the view to the writer in the given format.
func Write(writer io.Writer, format cliio.Format, view *datepickerview.View, theme datepickerconfig.Theme) error {
	switch format {
	case cliio.FormatText:
		return WriteText(writer, view, theme)
	case cliio.FormatTable:
		return cliio.WriteTable(writer, view.Weekdays.Labels[:], TableRows(view))
	case cliio.FormatCSV:
		records := append([][]string{view.Weekdays.Labels[:]}, TableRows(view)...)
		return cliio.WriteCSVRecords(writer, records)
	case cliio.FormatJSON:
		return cliio.WriteJSON(writer, NewDocument(view))
	case cliio.FormatHTML:
		return WriteHTML(writer, view, theme)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// TableRows returns one row of cell labels per week.
//
// Outside-month days are wrapped in parentheses and the selected day in brackets.
func TableRows(view *datepickerview.View) [][]string {
	rows := make([][]string, 0, len(view.Weeks))
	for _, week := range view.Weeks {
		row := make([]string, 0, len(week.Cells))
		for _, cell := range week.Cells {
			row = append(row, markedLabel(cell))
		}
		rows = append(rows, row)
	}
	return rows
}

// Document is the JSON form of a View.
type Document struct {
	Month     xtime.Date     `json:"month"`
	Label     string         `json:"label"`
	Selection *xtime.Date    `json:"selection,omitempty"`
	Weekdays  []string       `json:"weekdays"`
	Weeks     []WeekDocument `json:"weeks"`
}

// WeekDocument is the JSON form of a WeekRow.
type WeekDocument struct {
	Start xtime.Date    `json:"start"`
	Days  []DayDocument `json:"days"`
}

// DayDocument is the JSON form of a DayCell.
type DayDocument struct {
	Date     xtime.Date           `json:"date"`
	Day      int                  `json:"day"`
	Outside  bool                 `json:"outside,omitempty"`
	Selected bool                 `json:"selected,omitempty"`
	Hovered  bool                 `json:"hovered,omitempty"`
	Style    datepickerview.Style `json:"style"`
}

// NewDocument returns the Document for the view.
func NewDocument(view *datepickerview.View) *Document {
	document := &Document{
		Month:    view.Month,
		Label:    view.MonthLabel,
		Weekdays: view.Weekdays.Labels[:],
		Weeks:    make([]WeekDocument, 0, len(view.Weeks)),
	}
	if !view.Selection.IsZero() {
		selection := view.Selection
		document.Selection = &selection
	}
	for _, week := range view.Weeks {
		weekDocument := WeekDocument{
			Start: week.Start,
			Days:  make([]DayDocument, 0, len(week.Cells)),
		}
		for _, cell := range week.Cells {
			weekDocument.Days = append(weekDocument.Days, DayDocument{
				Date:     cell.Date,
				Day:      cell.Date.Day,
				Outside:  cell.Outside,
				Selected: cell.Selected,
				Hovered:  cell.Hovered,
				Style:    cell.Style(),
			})
		}
		document.Weeks = append(document.Weeks, weekDocument)
	}
	return document
}

// *** PRIVATE ***

func markedLabel(cell datepickerview.DayCell) string {
	switch {
	case cell.Outside:
		return "(" + cell.Label + ")"
	case cell.Selected:
		return "[" + cell.Label + "]"
	default:
		return cell.Label
	}
}
