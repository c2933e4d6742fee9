// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datepickerstate holds the selection and visible-month state of a datepicker.
//
// Each value is bound at construction to exactly one owner. An Owned binding
// keeps the value inside the Controller. An External binding reads the value
// from the embedding application on every access and forwards change requests
// to its callback, so the Controller never keeps a shadow copy.
package datepickerstate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bufdev/datepicker/internal/pkg/calendarmath"
	"github.com/bufdev/datepicker/internal/standard/xtime"
)

// Binding declares who owns a value. Construct with Owned or External.
type Binding[T any] struct {
	external bool
	initial  T
	current  func() T
	onChange func(T)
}

// Owned returns a Binding where the Controller owns the value, starting at initial.
func Owned[T any](initial T) Binding[T] {
	return Binding[T]{
		initial: initial,
	}
}

// External returns a Binding where the caller owns the value.
//
// current is called whenever the value is read. onChange receives every
// change request and may be nil, in which case requests are dropped.
func External[T any](current func() T, onChange func(T)) Binding[T] {
	return Binding[T]{
		external: true,
		current:  current,
		onChange: onChange,
	}
}

// IsExternal reports whether the caller owns the value.
func (b Binding[T]) IsExternal() bool {
	return b.external
}

// Controller is the handle passed down a datepicker's component tree.
//
// Controllers are not safe for concurrent use.
type Controller struct {
	logger    *slog.Logger
	selection slot[xtime.Date]
	month     slot[xtime.Date]
}

// ControllerOption is a functional option for configuring the Controller.
type ControllerOption func(*Controller)

// ControllerWithLogger sets the logger for the Controller.
func ControllerWithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController resolves the selection and month bindings into a Controller.
//
// The zero xtime.Date means no selection. The month must be a valid date: an
// owned month is checked once, an external month on every read.
func NewController(
	selection Binding[xtime.Date],
	month Binding[xtime.Date],
	options ...ControllerOption,
) (*Controller, error) {
	selectionSlot, err := newSlot(selection)
	if err != nil {
		return nil, fmt.Errorf("selection: %w", err)
	}
	if !selection.external && !selection.initial.IsZero() && !selection.initial.IsValid() {
		return nil, fmt.Errorf("selection: invalid initial date %v", selection.initial)
	}
	monthSlot, err := newSlot(month)
	if err != nil {
		return nil, fmt.Errorf("month: %w", err)
	}
	if initialMonth := monthSlot.get(); !initialMonth.IsValid() {
		return nil, fmt.Errorf("month: invalid initial date %v", initialMonth)
	}
	controller := &Controller{
		logger:    slog.Default(),
		selection: selectionSlot,
		month:     monthSlot,
	}
	for _, option := range options {
		option(controller)
	}
	return controller, nil
}

// CurrentSelection returns the selected date, or false if nothing is selected.
func (c *Controller) CurrentSelection() (xtime.Date, bool) {
	selected := c.selection.get()
	if selected.IsZero() {
		return xtime.Date{}, false
	}
	return selected, true
}

// CurrentMonth returns the visible month. Only its year and month are significant.
//
// Panics if an external month binding reports an invalid date.
func (c *Controller) CurrentMonth() xtime.Date {
	month := c.month.get()
	if !month.IsValid() {
		panic(fmt.Sprintf("datepickerstate: external month binding returned invalid date %v", month))
	}
	return month
}

// IsSelected reports whether date is the current selection.
func (c *Controller) IsSelected(date xtime.Date) bool {
	selected, ok := c.CurrentSelection()
	return ok && calendarmath.IsSameDay(selected, date)
}

// RequestSelect requests that date become the selection.
//
// The zero date requests that the selection be cleared.
func (c *Controller) RequestSelect(date xtime.Date) {
	c.logger.Debug("selection requested", "date", dateAttr(date), "external", c.selection.isExternal())
	c.selection.set(date)
}

// RequestClear requests that the selection be cleared.
func (c *Controller) RequestClear() {
	c.RequestSelect(xtime.Date{})
}

// RequestMonth requests that month become the visible month.
func (c *Controller) RequestMonth(month xtime.Date) {
	c.logger.Debug("month requested", "month", dateAttr(month), "external", c.month.isExternal())
	c.month.set(month)
}

// RequestMonthShift requests that the visible month move by n calendar months.
func (c *Controller) RequestMonthShift(n int) {
	c.RequestMonth(calendarmath.ShiftMonth(c.CurrentMonth(), n))
}

// *** PRIVATE ***

// slot is a Binding resolved once at construction.
type slot[T any] interface {
	get() T
	set(T)
	isExternal() bool
}

func newSlot[T any](binding Binding[T]) (slot[T], error) {
	if !binding.external {
		return &ownedSlot[T]{value: binding.initial}, nil
	}
	if binding.current == nil {
		return nil, errors.New("external binding requires a current value function")
	}
	return &externalSlot[T]{current: binding.current, onChange: binding.onChange}, nil
}

type ownedSlot[T any] struct {
	value T
}

func (s *ownedSlot[T]) get() T {
	return s.value
}

func (s *ownedSlot[T]) set(value T) {
	s.value = value
}

func (*ownedSlot[T]) isExternal() bool {
	return false
}

type externalSlot[T any] struct {
	current  func() T
	onChange func(T)
}

func (s *externalSlot[T]) get() T {
	return s.current()
}

func (s *externalSlot[T]) set(value T) {
	if s.onChange != nil {
		s.onChange(value)
	}
}

func (*externalSlot[T]) isExternal() bool {
	return true
}

func dateAttr(date xtime.Date) string {
	if date.IsZero() {
		return "none"
	}
	return date.String()
}
