// Copyright 2026 Peter Edge
//
// All rights reserved.

package render

import (
	"testing"
	"time"

	"github.com/bufdev/datepicker/cmd/datepicker/internal/datepickercmd"
	"github.com/bufdev/datepicker/internal/standard/xtime"
	"github.com/stretchr/testify/require"
)

func TestNewParams(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, time.January, 20, 23, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		flags   flags
		want    datepickercmd.Params
		wantErr bool
	}{
		{
			name:  "defaults",
			flags: flags{},
			want: datepickercmd.Params{
				Today: xtime.Date{Year: 2025, Month: time.January, Day: 20},
			},
		},
		{
			name: "all",
			flags: flags{
				Month:      "feb",
				Value:      "2024-02-29",
				Today:      "2024-06-12",
				Controlled: true,
			},
			want: datepickercmd.Params{
				Today:      xtime.Date{Year: 2024, Month: time.June, Day: 12},
				Month:      xtime.Date{Year: 2024, Month: time.February, Day: 1},
				Value:      xtime.Date{Year: 2024, Month: time.February, Day: 29},
				Controlled: true,
			},
		},
		{
			name:  "month_year",
			flags: flags{Month: "2023-11"},
			want: datepickercmd.Params{
				Today: xtime.Date{Year: 2025, Month: time.January, Day: 20},
				Month: xtime.Date{Year: 2023, Month: time.November, Day: 1},
			},
		},
		{name: "bad_today", flags: flags{Today: "06/12/2024"}, wantErr: true},
		{name: "bad_month", flags: flags{Month: "2024-00"}, wantErr: true},
		{name: "bad_value", flags: flags{Value: "2023-02-29"}, wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := newParams(&test.flags, now)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}
