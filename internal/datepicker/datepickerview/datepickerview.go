// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datepickerview implements the datepicker component tree.
//
// A Datepicker renders into a View: navigation controls, a month label, a
// weekday header, and one WeekRow of seven DayCells per week that intersects
// the visible month. Every component that reads or changes the selection is
// constructed with the Datepicker's Controller.
package datepickerview

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bufdev/datepicker/internal/datepicker/datepickerstate"
	"github.com/bufdev/datepicker/internal/pkg/calendarmath"
	"github.com/bufdev/datepicker/internal/standard/xtime"
)

const (
	// DefaultPreviousLabel is the default label of the previous-month control.
	DefaultPreviousLabel = "Prev"
	// DefaultNextLabel is the default label of the next-month control.
	DefaultNextLabel = "Next"
)

// Option is a functional option for configuring a Datepicker.
type Option func(*options)

// WithSelection sets the binding of the selected date.
//
// The default is an owned binding with no selection.
func WithSelection(binding datepickerstate.Binding[xtime.Date]) Option {
	return func(o *options) {
		o.selection = &binding
	}
}

// WithMonth sets the binding of the visible month.
//
// The default is an owned binding starting at the clock's current date.
func WithMonth(binding datepickerstate.Binding[xtime.Date]) Option {
	return func(o *options) {
		o.month = &binding
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithNavLabels sets the labels of the previous and next month controls.
func WithNavLabels(previous string, next string) Option {
	return func(o *options) {
		o.previousLabel = previous
		o.nextLabel = next
	}
}

// Datepicker is the root component.
//
// A Datepicker is not safe for concurrent use.
type Datepicker struct {
	logger        *slog.Logger
	controller    *datepickerstate.Controller
	weekdays      WeekdayHeader
	previousLabel string
	nextLabel     string
	hovered       xtime.Date

	// weekStarts is memoized per visible month.
	weekStartsMonth xtime.Date
	weekStarts      []xtime.Date
}

// New returns a new Datepicker.
func New(opts ...Option) (*Datepicker, error) {
	options := newOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	if options.now == nil {
		options.now = time.Now
	}
	today := xtime.TimeToDate(options.now())
	selection := datepickerstate.Owned(xtime.Date{})
	if options.selection != nil {
		selection = *options.selection
	}
	month := datepickerstate.Owned(today)
	if options.month != nil {
		month = *options.month
	}
	controller, err := datepickerstate.NewController(
		selection,
		month,
		datepickerstate.ControllerWithLogger(options.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("constructing datepicker: %w", err)
	}
	return &Datepicker{
		logger:        options.logger,
		controller:    controller,
		weekdays:      NewWeekdayHeader(today),
		previousLabel: options.previousLabel,
		nextLabel:     options.nextLabel,
	}, nil
}

// Controller returns the Controller shared with the Datepicker's components.
func (d *Datepicker) Controller() *datepickerstate.Controller {
	return d.controller
}

// Previous requests the previous calendar month.
func (d *Datepicker) Previous() {
	d.controller.RequestMonthShift(-1)
}

// Next requests the next calendar month.
func (d *Datepicker) Next() {
	d.controller.RequestMonthShift(1)
}

// Hover marks date as the cell under the pointer. The zero date clears it.
//
// Hover state only affects styling.
func (d *Datepicker) Hover(date xtime.Date) {
	d.hovered = date
}

// Click clicks the cell for date in the current render, returning false if the
// visible grid has no such cell.
func (d *Datepicker) Click(date xtime.Date) bool {
	cell, ok := d.Render().Cell(date)
	if !ok {
		return false
	}
	cell.Click()
	return true
}

// WeekStarts returns the week starts of the visible month.
//
// The slice is shared between calls for the same month and must not be modified.
func (d *Datepicker) WeekStarts() []xtime.Date {
	month := d.controller.CurrentMonth()
	if d.weekStarts != nil && calendarmath.IsSameMonth(d.weekStartsMonth, month) {
		return d.weekStarts
	}
	firstOfMonth, lastOfMonth := calendarmath.MonthBounds(month)
	d.weekStartsMonth = firstOfMonth
	d.weekStarts = calendarmath.WeekStarts(firstOfMonth, lastOfMonth)
	d.logger.Debug("computed week starts", "month", firstOfMonth.String(), "weeks", len(d.weekStarts))
	return d.weekStarts
}

// Render renders the Datepicker with its current state.
func (d *Datepicker) Render() *View {
	month := d.controller.CurrentMonth()
	weekStarts := d.WeekStarts()
	weeks := make([]WeekRow, 0, len(weekStarts))
	for _, weekStart := range weekStarts {
		weeks = append(weeks, NewWeekRow(d.controller, weekStart, month, d.hovered))
	}
	selection, _ := d.controller.CurrentSelection()
	return &View{
		Month:      month.FirstOfMonth(),
		MonthLabel: MonthLabel(month),
		Selection:  selection,
		Previous:   NewNavControl(d.controller, d.previousLabel, -1),
		Next:       NewNavControl(d.controller, d.nextLabel, 1),
		Weekdays:   d.weekdays,
		Weeks:      weeks,
	}
}

// View is a rendered Datepicker.
type View struct {
	// Month is the first day of the visible month.
	Month xtime.Date
	// MonthLabel is the month and year, e.g. "June 2024".
	MonthLabel string
	// Selection is the selected date, or the zero date if nothing is selected.
	// It may fall outside the visible month.
	Selection xtime.Date
	// Previous is the previous-month control.
	Previous NavControl
	// Next is the next-month control.
	Next NavControl
	// Weekdays is the weekday header.
	Weekdays WeekdayHeader
	// Weeks are the week rows in ascending order.
	Weeks []WeekRow
}

// Cells returns all cells of the grid in ascending date order.
func (v *View) Cells() []DayCell {
	cells := make([]DayCell, 0, len(v.Weeks)*calendarmath.DaysPerWeek)
	for _, week := range v.Weeks {
		cells = append(cells, week.Cells[:]...)
	}
	return cells
}

// Cell returns the cell for date.
func (v *View) Cell(date xtime.Date) (DayCell, bool) {
	for _, week := range v.Weeks {
		for _, cell := range week.Cells {
			if calendarmath.IsSameDay(cell.Date, date) {
				return cell, true
			}
		}
	}
	return DayCell{}, false
}

// MonthLabel returns the label for the month containing month, e.g. "June 2024".
func MonthLabel(month xtime.Date) string {
	return fmt.Sprintf("%s %d", month.Month, month.Year)
}

// *** PRIVATE ***

type options struct {
	selection     *datepickerstate.Binding[xtime.Date]
	month         *datepickerstate.Binding[xtime.Date]
	logger        *slog.Logger
	now           func() time.Time
	previousLabel string
	nextLabel     string
}

func newOptions() *options {
	return &options{
		previousLabel: DefaultPreviousLabel,
		nextLabel:     DefaultNextLabel,
	}
}
