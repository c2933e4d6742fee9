// Copyright 2026 Peter Edge
//
// All rights reserved.

package calendarmath

import (
	"testing"
	"time"

	"github.com/bufdev/datepicker/internal/standard/xtime"
	"github.com/stretchr/testify/require"
)

func TestWeekStartsJune2024(t *testing.T) {
	t.Parallel()
	first, last := MonthBounds(xtime.Date{Year: 2024, Month: time.June, Day: 17})
	require.Equal(t, xtime.Date{Year: 2024, Month: time.June, Day: 1}, first)
	require.Equal(t, xtime.Date{Year: 2024, Month: time.June, Day: 30}, last)
	require.Equal(
		t,
		[]xtime.Date{
			{Year: 2024, Month: time.May, Day: 27},
			{Year: 2024, Month: time.June, Day: 3},
			{Year: 2024, Month: time.June, Day: 10},
			{Year: 2024, Month: time.June, Day: 17},
			{Year: 2024, Month: time.June, Day: 24},
		},
		WeekStarts(first, last),
	)
}

func TestWeekStartsAllMonths(t *testing.T) {
	t.Parallel()
	for year := 1995; year <= 2035; year++ {
		for month := time.January; month <= time.December; month++ {
			first, last := MonthBounds(xtime.Date{Year: year, Month: month, Day: 1})
			weekStarts := WeekStarts(first, last)
			require.NotEmpty(t, weekStarts)
			// A month spans four to six week rows.
			require.GreaterOrEqual(t, len(weekStarts), 4)
			require.LessOrEqual(t, len(weekStarts), 6)
			for i, weekStart := range weekStarts {
				require.Equal(t, time.Monday, weekStart.Weekday())
				if i > 0 {
					require.Equal(t, DaysPerWeek, weekStart.DaysSince(weekStarts[i-1]))
				}
			}
			// The first week contains the 1st, the last week contains the last day.
			require.True(t, weekStarts[0].EqualOrBefore(first))
			require.True(t, weekStarts[0].AddDays(DaysPerWeek-1).EqualOrAfter(first))
			lastWeekStart := weekStarts[len(weekStarts)-1]
			require.True(t, lastWeekStart.EqualOrBefore(last))
			require.True(t, lastWeekStart.AddDays(DaysPerWeek-1).EqualOrAfter(last))
		}
	}
}

func TestWeekStartsEmptyInterval(t *testing.T) {
	t.Parallel()
	require.Nil(
		t,
		WeekStarts(
			xtime.Date{Year: 2024, Month: time.June, Day: 30},
			xtime.Date{Year: 2024, Month: time.June, Day: 1},
		),
	)
}

func TestWeekStartsMonthStartingMonday(t *testing.T) {
	t.Parallel()
	// April 2024 starts on a Monday and ends on a Tuesday.
	first, last := MonthBounds(xtime.Date{Year: 2024, Month: time.April, Day: 1})
	weekStarts := WeekStarts(first, last)
	require.Len(t, weekStarts, 5)
	require.Equal(t, first, weekStarts[0])
	// February 2021 starts on a Monday and has exactly 4 weeks.
	first, last = MonthBounds(xtime.Date{Year: 2021, Month: time.February, Day: 1})
	require.Len(t, WeekStarts(first, last), 4)
}

func TestDaysOfWeek(t *testing.T) {
	t.Parallel()
	weekStart := xtime.Date{Year: 2024, Month: time.June, Day: 24}
	days := DaysOfWeek(weekStart)
	require.Equal(t, weekStart, days[0])
	require.Equal(t, xtime.Date{Year: 2024, Month: time.June, Day: 30}, days[6])
	for i, day := range days {
		require.Equal(t, i, day.DaysSince(weekStart))
	}
	// Weeks cross month and year boundaries.
	days = DaysOfWeek(xtime.Date{Year: 2024, Month: time.December, Day: 30})
	require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 5}, days[6])
}

func TestStartAndEndOfWeek(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		date      xtime.Date
		wantStart xtime.Date
		wantEnd   xtime.Date
	}{
		{
			date:      xtime.Date{Year: 2024, Month: time.June, Day: 1},
			wantStart: xtime.Date{Year: 2024, Month: time.May, Day: 27},
			wantEnd:   xtime.Date{Year: 2024, Month: time.June, Day: 2},
		},
		{
			date:      xtime.Date{Year: 2024, Month: time.June, Day: 3},
			wantStart: xtime.Date{Year: 2024, Month: time.June, Day: 3},
			wantEnd:   xtime.Date{Year: 2024, Month: time.June, Day: 9},
		},
		{
			date:      xtime.Date{Year: 2024, Month: time.June, Day: 30},
			wantStart: xtime.Date{Year: 2024, Month: time.June, Day: 24},
			wantEnd:   xtime.Date{Year: 2024, Month: time.June, Day: 30},
		},
	} {
		require.Equal(t, test.wantStart, StartOfWeek(test.date), test.date.String())
		require.Equal(t, test.wantEnd, EndOfWeek(test.date), test.date.String())
	}
}

func TestSameMonthAndDay(t *testing.T) {
	t.Parallel()
	june5 := xtime.Date{Year: 2024, Month: time.June, Day: 5}
	require.True(t, IsSameMonth(june5, xtime.Date{Year: 2024, Month: time.June, Day: 30}))
	require.False(t, IsSameMonth(june5, xtime.Date{Year: 2023, Month: time.June, Day: 5}))
	require.False(t, IsSameMonth(june5, xtime.Date{Year: 2024, Month: time.July, Day: 5}))
	require.True(t, IsSameDay(june5, xtime.TimeToDate(time.Date(2024, time.June, 5, 18, 30, 0, 0, time.UTC))))
	require.False(t, IsSameDay(june5, june5.AddDays(1)))
}

func TestShiftMonth(t *testing.T) {
	t.Parallel()
	march31 := xtime.Date{Year: 2024, Month: time.March, Day: 31}
	require.Equal(t, xtime.Date{Year: 2024, Month: time.February, Day: 29}, ShiftMonth(march31, -1))
	require.Equal(t, xtime.Date{Year: 2024, Month: time.April, Day: 30}, ShiftMonth(march31, 1))
}

func TestWeekdayLabels(t *testing.T) {
	t.Parallel()
	want := [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	require.Equal(t, want, WeekdayLabels(xtime.Date{Year: 2024, Month: time.June, Day: 1}))
	require.Equal(t, want, WeekdayLabels(xtime.Date{Year: 2026, Month: time.October, Day: 18}))
}
