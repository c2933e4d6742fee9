// Copyright 2026 Peter Edge
//
// All rights reserved.

package datepickerrender

import (
	"fmt"
	"io"

	"github.com/bufdev/datepicker/internal/datepicker/datepickerconfig"
	"github.com/bufdev/datepicker/internal/datepicker/datepickerview"
	"github.com/bufdev/datepicker/internal/pkg/calendarmath"
	"github.com/charmbracelet/lipgloss"
)

const (
	// cellWidth is the width of one day column.
	cellWidth = 5
	// gridWidth is the width of a week row.
	gridWidth = cellWidth * calendarmath.DaysPerWeek
	// navWidth is the width reserved for each navigation label.
	navWidth = 8
)

// WriteText writes the view as styled terminal text.
//
// Colors are only emitted when the writer is a terminal that supports them.
// The selected day is also bracketed so it stays visible without color.
func WriteText(writer io.Writer, view *datepickerview.View, theme datepickerconfig.Theme) error {
	styles := newTextStyles(lipgloss.NewRenderer(writer), theme)
	lines := make([]string, 0, len(view.Weeks)+2)
	lines = append(
		lines,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			styles.nav.Width(navWidth).Align(lipgloss.Left).Render(view.Previous.Label),
			styles.month.Width(gridWidth-2*navWidth).Align(lipgloss.Center).Render(view.MonthLabel),
			styles.nav.Width(navWidth).Align(lipgloss.Right).Render(view.Next.Label),
		),
	)
	weekdays := make([]string, 0, len(view.Weekdays.Labels))
	for _, label := range view.Weekdays.Labels {
		weekdays = append(weekdays, styles.weekday.Render(label))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, weekdays...))
	for _, week := range view.Weeks {
		cells := make([]string, 0, len(week.Cells))
		for _, cell := range week.Cells {
			label := cell.Label
			if cell.Selected {
				label = "[" + label + "]"
			}
			cells = append(cells, styles.cell(cell.Style()).Render(label))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	_, err := fmt.Fprintln(writer, lipgloss.JoinVertical(lipgloss.Left, lines...))
	return err
}

// *** PRIVATE ***

type textStyles struct {
	nav     lipgloss.Style
	month   lipgloss.Style
	weekday lipgloss.Style
	cells   map[datepickerview.Style]lipgloss.Style
}

func newTextStyles(renderer *lipgloss.Renderer, theme datepickerconfig.Theme) *textStyles {
	cell := renderer.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	selectedForeground := lipgloss.Color("0")
	return &textStyles{
		nav:     renderer.NewStyle().Bold(true),
		month:   renderer.NewStyle().Bold(true),
		weekday: cell.Bold(true),
		cells: map[datepickerview.Style]lipgloss.Style{
			datepickerview.StyleOutside: cell.Foreground(lipgloss.Color(theme.Outside)).Faint(true),
			datepickerview.StyleDefault: cell,
			datepickerview.StyleHovered: cell.Background(lipgloss.Color(theme.Hover)),
			datepickerview.StyleSelected: cell.
				Background(lipgloss.Color(theme.Selected)).
				Foreground(selectedForeground).
				Bold(true),
			datepickerview.StyleSelectedHovered: cell.
				Background(lipgloss.Color(theme.SelectedHover)).
				Foreground(selectedForeground).
				Bold(true),
		},
	}
}

func (s *textStyles) cell(style datepickerview.Style) lipgloss.Style {
	return s.cells[style]
}
