// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package calendarmath computes month grids: month bounds, the Monday-anchored
// week starts that cover a month, and the days of a week.
//
// All functions are pure. Weeks always start on Monday.
package calendarmath

import (
	"time"

	"github.com/bufdev/datepicker/internal/standard/xtime"
)

// DaysPerWeek is the number of days in a week row.
const DaysPerWeek = 7

// MonthBounds returns the first and last day of the month containing month.
func MonthBounds(month xtime.Date) (xtime.Date, xtime.Date) {
	return month.FirstOfMonth(), month.LastOfMonth()
}

// StartOfWeek returns the Monday on or before date.
func StartOfWeek(date xtime.Date) xtime.Date {
	// time.Weekday counts from Sunday = 0, shift so Monday = 0.
	offset := (int(date.Weekday()) + 6) % DaysPerWeek
	return date.AddDays(-offset)
}

// EndOfWeek returns the Sunday on or after date.
func EndOfWeek(date xtime.Date) xtime.Date {
	return StartOfWeek(date).AddDays(DaysPerWeek - 1)
}

// WeekStarts returns the Monday of every week that overlaps [firstOfMonth, lastOfMonth],
// in ascending order.
//
// Returns nil if firstOfMonth is after lastOfMonth.
func WeekStarts(firstOfMonth xtime.Date, lastOfMonth xtime.Date) []xtime.Date {
	if firstOfMonth.After(lastOfMonth) {
		return nil
	}
	var weekStarts []xtime.Date
	for weekStart := StartOfWeek(firstOfMonth); weekStart.EqualOrBefore(lastOfMonth); weekStart = weekStart.AddDays(DaysPerWeek) {
		weekStarts = append(weekStarts, weekStart)
	}
	return weekStarts
}

// DaysOfWeek returns the 7 consecutive dates starting at weekStart.
func DaysOfWeek(weekStart xtime.Date) [DaysPerWeek]xtime.Date {
	var days [DaysPerWeek]xtime.Date
	for i := range days {
		days[i] = weekStart.AddDays(i)
	}
	return days
}

// IsSameMonth reports whether a and b fall in the same month of the same year.
func IsSameMonth(a xtime.Date, b xtime.Date) bool {
	return a.SameMonth(b)
}

// IsSameDay reports whether a and b are the same calendar day.
func IsSameDay(a xtime.Date, b xtime.Date) bool {
	return a == b
}

// ShiftMonth returns month moved by n calendar months.
//
// The day of the month is clamped to the last day of the target month.
func ShiftMonth(month xtime.Date, n int) xtime.Date {
	return month.AddMonths(n)
}

// WeekdayLabels returns the abbreviated weekday names, Monday first, for the
// week containing reference.
func WeekdayLabels(reference xtime.Date) [DaysPerWeek]string {
	var labels [DaysPerWeek]string
	for i, day := range DaysOfWeek(StartOfWeek(reference)) {
		labels[i] = weekdayAbbreviation(day.Weekday())
	}
	return labels
}

func weekdayAbbreviation(weekday time.Weekday) string {
	return weekday.String()[:3]
}
