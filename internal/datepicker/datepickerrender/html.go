// Copyright 2026 Peter Edge
//
// All rights reserved.

package datepickerrender

import (
	"html/template"
	"io"
	"strconv"

	"github.com/bufdev/datepicker/internal/datepicker/datepickerconfig"
	"github.com/bufdev/datepicker/internal/datepicker/datepickerview"
	"github.com/muesli/termenv"
)

var htmlTemplate = template.Must(template.New("datepicker").Parse(`<style>
.datepicker { max-width: 500px; display: flex; flex-direction: column; row-gap: 12px; }
.datepicker-nav { display: flex; column-gap: 12px; margin: 0 auto; }
.datepicker-month { text-align: center; }
.datepicker-week { display: flex; column-gap: 12px; }
.datepicker-weekday { flex: 1; text-align: center; font-weight: 600; }
.datepicker-day { aspect-ratio: 1; flex: 1; }
.datepicker-day > div, .datepicker-day > button { display: flex; align-items: center; justify-content: center; width: 100%; height: 100%; }
.datepicker-day-outside { color: {{.Theme.Outside}}; }
.datepicker-day > button:hover { background: {{.Theme.Hover}}; }
.datepicker-day-hovered { background: {{.Theme.Hover}}; }
.datepicker-day-selected { background: {{.Theme.Selected}}; }
.datepicker-day-selected:hover, .datepicker-day-selected-hovered { background: {{.Theme.SelectedHover}}; }
</style>
<div class="datepicker" data-month="{{.View.Month}}">
  <div class="datepicker-nav">
    <button type="button" data-action="prev">{{.View.Previous.Label}}</button>
    <button type="button" data-action="next">{{.View.Next.Label}}</button>
  </div>
  <div class="datepicker-month">{{.View.MonthLabel}}</div>
  <div class="datepicker-week">
{{- range .View.Weekdays.Labels}}
    <div class="datepicker-weekday">{{.}}</div>
{{- end}}
  </div>
{{- range .View.Weeks}}
  <div class="datepicker-week" data-week-start="{{.Start}}">
{{- range .Cells}}
{{- if .Outside}}
    <div class="datepicker-day datepicker-day-outside"><div>{{.Label}}</div></div>
{{- else}}
    <div class="datepicker-day"><button type="button" class="datepicker-day-{{.Style}}" data-date="{{.Date}}"{{if .Selected}} aria-pressed="true"{{end}}>{{.Label}}</button></div>
{{- end}}
{{- end}}
  </div>
{{- end}}
</div>
`))

// WriteHTML writes the view as an HTML fragment with an embedded stylesheet.
//
// Interactive days are buttons carrying a data-date attribute; outside-month days are plain labels.
func WriteHTML(writer io.Writer, view *datepickerview.View, theme datepickerconfig.Theme) error {
	return htmlTemplate.Execute(
		writer,
		struct {
			View  *datepickerview.View
			Theme datepickerconfig.Theme
		}{
			View:  view,
			Theme: cssTheme(theme),
		},
	)
}

// *** PRIVATE ***

// cssTheme converts ANSI color numbers in the theme to CSS hex colors.
func cssTheme(theme datepickerconfig.Theme) datepickerconfig.Theme {
	return datepickerconfig.Theme{
		Selected:      cssColor(theme.Selected),
		SelectedHover: cssColor(theme.SelectedHover),
		Hover:         cssColor(theme.Hover),
		Outside:       cssColor(theme.Outside),
	}
}

func cssColor(color string) string {
	n, err := strconv.Atoi(color)
	if err != nil {
		return color
	}
	return termenv.ConvertToRGB(termenv.ANSI256Color(n)).Hex()
}
