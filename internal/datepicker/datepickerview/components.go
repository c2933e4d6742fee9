// Copyright 2026 Peter Edge
//
// All rights reserved.

package datepickerview

import (
	"strconv"

	"github.com/bufdev/datepicker/internal/datepicker/datepickerstate"
	"github.com/bufdev/datepicker/internal/pkg/calendarmath"
	"github.com/bufdev/datepicker/internal/standard/xtime"
)

// Style is the presentation state of a DayCell.
type Style string

const (
	// StyleOutside is a non-interactive day of an adjacent month.
	StyleOutside Style = "outside"
	// StyleDefault is an interactive day that is neither selected nor hovered.
	StyleDefault Style = "default"
	// StyleHovered is a hovered day that is not selected.
	StyleHovered Style = "hovered"
	// StyleSelected is the selected day.
	StyleSelected Style = "selected"
	// StyleSelectedHovered is the selected day while hovered.
	StyleSelectedHovered Style = "selected-hovered"
)

// NavControl is a previous or next month button.
type NavControl struct {
	// Label is the button text.
	Label string
	// Delta is the number of months the control moves.
	Delta int

	controller *datepickerstate.Controller
}

// NewNavControl returns a NavControl that moves the visible month by delta.
//
// Panics if controller is nil.
func NewNavControl(controller *datepickerstate.Controller, label string, delta int) NavControl {
	mustController(controller, "NavControl")
	return NavControl{
		Label:      label,
		Delta:      delta,
		controller: controller,
	}
}

// Click requests the visible month be shifted by Delta.
func (n NavControl) Click() {
	n.controller.RequestMonthShift(n.Delta)
}

// WeekdayHeader is the row of weekday labels, Monday first.
type WeekdayHeader struct {
	Labels [calendarmath.DaysPerWeek]string
}

// NewWeekdayHeader returns the WeekdayHeader for the week containing reference.
func NewWeekdayHeader(reference xtime.Date) WeekdayHeader {
	return WeekdayHeader{
		Labels: calendarmath.WeekdayLabels(reference),
	}
}

// WeekRow is one week of the grid.
type WeekRow struct {
	// Start is the Monday that starts the week.
	Start xtime.Date
	// Cells are the days Monday to Sunday.
	Cells [calendarmath.DaysPerWeek]DayCell
}

// NewWeekRow returns the WeekRow starting at weekStart for the visible month.
//
// hovered is the day under the pointer, or the zero date.
// Panics if controller is nil.
func NewWeekRow(
	controller *datepickerstate.Controller,
	weekStart xtime.Date,
	month xtime.Date,
	hovered xtime.Date,
) WeekRow {
	mustController(controller, "WeekRow")
	weekRow := WeekRow{
		Start: weekStart,
	}
	for i, day := range calendarmath.DaysOfWeek(weekStart) {
		weekRow.Cells[i] = NewDayCell(controller, day, month, calendarmath.IsSameDay(day, hovered))
	}
	return weekRow
}

// DayCell is one day of the grid.
type DayCell struct {
	// Date is the day.
	Date xtime.Date
	// Label is the day of the month.
	Label string
	// Outside is true if Date is not in the visible month.
	Outside bool
	// Selected is true if Date is the current selection.
	Selected bool
	// Hovered is true if the pointer is over an interactive cell.
	Hovered bool

	controller *datepickerstate.Controller
}

// NewDayCell returns the DayCell for date within the visible month.
//
// Panics if controller is nil.
func NewDayCell(
	controller *datepickerstate.Controller,
	date xtime.Date,
	month xtime.Date,
	hovered bool,
) DayCell {
	mustController(controller, "DayCell")
	outside := !calendarmath.IsSameMonth(date, month)
	return DayCell{
		Date:       date,
		Label:      strconv.Itoa(date.Day),
		Outside:    outside,
		Selected:   !outside && controller.IsSelected(date),
		Hovered:    !outside && hovered,
		controller: controller,
	}
}

// Interactive reports whether clicking the cell has an effect.
func (c DayCell) Interactive() bool {
	return !c.Outside
}

// Style returns the presentation state of the cell.
func (c DayCell) Style() Style {
	switch {
	case c.Outside:
		return StyleOutside
	case c.Selected && c.Hovered:
		return StyleSelectedHovered
	case c.Selected:
		return StyleSelected
	case c.Hovered:
		return StyleHovered
	default:
		return StyleDefault
	}
}

// Click toggles the cell's date as the selection.
//
// Clicking the cell of the current selection requests the selection be
// cleared. Clicking any other interactive cell requests its date. Clicking an
// outside cell does nothing. The selection is read at click time, so a cell
// held across clicks toggles.
func (c DayCell) Click() {
	if c.Outside {
		return
	}
	if c.controller.IsSelected(c.Date) {
		c.controller.RequestClear()
		return
	}
	c.controller.RequestSelect(c.Date)
}

func mustController(controller *datepickerstate.Controller, component string) {
	if controller == nil {
		panic("datepickerview: " + component + " constructed without a Controller")
	}
}
