// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datepickercmd provides shared wiring for datepicker commands: flag
// parsing for months and actions, and construction of a Datepicker from the
// configuration file and command flags.
package datepickercmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"github.com/bufdev/datepicker/internal/datepicker/datepickerconfig"
	"github.com/bufdev/datepicker/internal/datepicker/datepickerstate"
	"github.com/bufdev/datepicker/internal/datepicker/datepickerview"
	"github.com/bufdev/datepicker/internal/standard/xtime"
)

// DirFlagName is the flag name for the directory containing datepicker.yaml.
const DirFlagName = "dir"

// ActionType is the type of a scripted interaction.
type ActionType string

const (
	// ActionPrevious navigates to the previous month.
	ActionPrevious ActionType = "prev"
	// ActionNext navigates to the next month.
	ActionNext ActionType = "next"
	// ActionClick clicks the cell for a date.
	ActionClick ActionType = "click"
	// ActionHover moves the pointer over the cell for a date.
	ActionHover ActionType = "hover"
	// ActionClear clears the selection.
	ActionClear ActionType = "clear"
)

// Action is a single scripted interaction replayed against a Datepicker.
type Action struct {
	Type ActionType
	// Date is set for click and hover.
	Date xtime.Date
}

// String implements fmt.Stringer.
func (a Action) String() string {
	if a.Date.IsZero() {
		return string(a.Type)
	}
	return string(a.Type) + "=" + a.Date.String()
}

// ParseAction parses an action of the form prev, next, clear, click=YYYY-MM-DD, or hover=YYYY-MM-DD.
func ParseAction(s string) (Action, error) {
	name, value, hasValue := strings.Cut(strings.TrimSpace(s), "=")
	actionType := ActionType(strings.ToLower(name))
	switch actionType {
	case ActionPrevious, ActionNext, ActionClear:
		if hasValue {
			return Action{}, fmt.Errorf("action %q does not take a date", name)
		}
		return Action{Type: actionType}, nil
	case ActionClick, ActionHover:
		if !hasValue {
			return Action{}, fmt.Errorf("action %q requires a date, for example %s=2024-06-15", name, name)
		}
		date, err := xtime.ParseDate(value)
		if err != nil {
			return Action{}, fmt.Errorf("action %q: %w", name, err)
		}
		return Action{Type: actionType, Date: date}, nil
	default:
		return Action{}, fmt.Errorf("unknown action %q, must be one of prev, next, clear, click=DATE, hover=DATE", name)
	}
}

// ParseActions parses each action in order.
func ParseActions(values []string) ([]Action, error) {
	actions := make([]Action, 0, len(values))
	for _, value := range values {
		action, err := ParseAction(value)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// ParseMonth parses a month flag value.
//
// Accepted forms are YYYY-MM, YYYY-MM-DD, and a month number or name such as 6,
// jun, or June. Month numbers and names resolve to the year of today.
// The returned Date is the first of the month.
func ParseMonth(s string, today xtime.Date) (xtime.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return xtime.Date{}, errors.New("empty month")
	}
	if date, err := xtime.ParseDate(s); err == nil {
		return date.FirstOfMonth(), nil
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return xtime.TimeToDate(t), nil
	}
	var month datetime.Month
	if err := month.Parse(s); err != nil {
		return xtime.Date{}, fmt.Errorf("invalid month %q, must be YYYY-MM, YYYY-MM-DD, or a month name", s)
	}
	return xtime.Date{Year: today.Year, Month: time.Month(month), Day: 1}, nil
}

// Params are the values a Datepicker is constructed from.
type Params struct {
	// Today is the current date.
	Today xtime.Date
	// Month is the initial visible month. Zero means the month of Today.
	Month xtime.Date
	// Value is the initial selection. Zero means no selection.
	Value xtime.Date
	// Controlled runs the Datepicker with external bindings backed by a State.
	Controlled bool
}

// State holds the selection and visible month when the Datepicker runs controlled.
//
// Every change the Datepicker requests is logged and then applied, as an
// embedding application would do in its change callbacks.
type State struct {
	logger    *slog.Logger
	selection xtime.Date
	month     xtime.Date
	// Changes counts applied change callbacks.
	Changes int
}

// Selection returns the current selection, zero if absent.
func (s *State) Selection() xtime.Date {
	return s.selection
}

// Month returns the current visible month.
func (s *State) Month() xtime.Date {
	return s.month
}

// NewDatepicker constructs a Datepicker from the config and params.
//
// The returned State is nil unless params.Controlled is set.
func NewDatepicker(
	logger *slog.Logger,
	config *datepickerconfig.Config,
	params Params,
) (*datepickerview.Datepicker, *State, error) {
	month := params.Month
	if month.IsZero() {
		month = params.Today
	}
	opts := []datepickerview.Option{
		datepickerview.WithLogger(logger),
		datepickerview.WithClock(func() time.Time { return params.Today.In(time.Local) }),
		datepickerview.WithNavLabels(config.PreviousLabel, config.NextLabel),
	}
	var state *State
	if params.Controlled {
		state = &State{
			logger:    logger,
			selection: params.Value,
			month:     month,
		}
		opts = append(
			opts,
			datepickerview.WithSelection(datepickerstate.External(state.Selection, state.setSelection)),
			datepickerview.WithMonth(datepickerstate.External(state.Month, state.setMonth)),
		)
	} else {
		opts = append(
			opts,
			datepickerview.WithSelection(datepickerstate.Owned(params.Value)),
			datepickerview.WithMonth(datepickerstate.Owned(month)),
		)
	}
	datepicker, err := datepickerview.New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return datepicker, state, nil
}

// Apply replays the actions against the Datepicker in order.
//
// Clicks on dates outside the visible grid are logged and ignored.
func Apply(logger *slog.Logger, datepicker *datepickerview.Datepicker, actions []Action) {
	for _, action := range actions {
		switch action.Type {
		case ActionPrevious:
			datepicker.Previous()
		case ActionNext:
			datepicker.Next()
		case ActionClear:
			datepicker.Controller().RequestClear()
		case ActionHover:
			datepicker.Hover(action.Date)
		case ActionClick:
			if !datepicker.Click(action.Date) {
				logger.Warn(
					"ignoring click on date outside visible grid",
					slog.String("action", action.String()),
					slog.String("month", datepickerview.MonthLabel(datepicker.Controller().CurrentMonth())),
				)
			}
		}
	}
}

// *** PRIVATE ***

func (s *State) setSelection(selection xtime.Date) {
	s.logger.Info("selection changed", slog.String("from", dateString(s.selection)), slog.String("to", dateString(selection)))
	s.selection = selection
	s.Changes++
}

func (s *State) setMonth(month xtime.Date) {
	s.logger.Info("month changed", slog.String("from", datepickerview.MonthLabel(s.month)), slog.String("to", datepickerview.MonthLabel(month)))
	s.month = month
	s.Changes++
}

func dateString(date xtime.Date) string {
	if date.IsZero() {
		return "none"
	}
	return date.String()
}
