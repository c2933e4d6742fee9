// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package render implements the "render" command.
package render

import (
	"context"
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datepicker/cmd/datepicker/internal/datepickercmd"
	"github.com/bufdev/datepicker/internal/datepicker/datepickerconfig"
	"github.com/bufdev/datepicker/internal/datepicker/datepickerrender"
	"github.com/bufdev/datepicker/internal/pkg/cliio"
	"github.com/bufdev/datepicker/internal/standard/xos"
	"github.com/bufdev/datepicker/internal/standard/xtime"
	"github.com/spf13/pflag"
)

const (
	// monthFlagName is the flag name for the initial visible month.
	monthFlagName = "month"
	// valueFlagName is the flag name for the initial selection.
	valueFlagName = "value"
	// todayFlagName is the flag name for overriding the current date.
	todayFlagName = "today"
	// actionFlagName is the flag name for scripted interactions.
	actionFlagName = "action"
	// controlledFlagName is the flag name for running with external state.
	controlledFlagName = "controlled"
	// formatFlagName is the flag name for the output format.
	formatFlagName = "format"
)

// NewCommand returns a new render command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Render a month grid after replaying interactions",
		Long: `Render a month grid after replaying interactions.

The picker starts on --month (default: the month of --today) with --value selected.
Each --action is applied in order:

  prev              show the previous month
  next              show the next month
  click=YYYY-MM-DD  click the day, toggling it as the selection
  hover=YYYY-MM-DD  move the pointer over the day
  clear             clear the selection

With --controlled, the selection and month are held by the command and every
change requested by the picker is logged before it is applied.`,
		Args: appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Dir is the directory containing datepicker.yaml.
	Dir string
	// Month is the initial visible month.
	Month string
	// Value is the initial selection.
	Value string
	// Today overrides the current date.
	Today string
	// Actions are the interactions to replay.
	Actions []string
	// Controlled runs the picker with external state.
	Controlled bool
	// Format is the output format.
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, datepickercmd.DirFlagName, ".", "The directory containing datepicker.yaml")
	flagSet.StringVar(&f.Month, monthFlagName, "", "The initial month (YYYY-MM, YYYY-MM-DD, or a month name)")
	flagSet.StringVar(&f.Value, valueFlagName, "", "The initially selected date (YYYY-MM-DD)")
	flagSet.StringVar(&f.Today, todayFlagName, "", "The current date (YYYY-MM-DD), defaults to the local date")
	flagSet.StringArrayVar(&f.Actions, actionFlagName, nil, "An interaction to replay, may be repeated")
	flagSet.BoolVar(&f.Controlled, controlledFlagName, false, "Hold the selection and month outside the picker")
	flagSet.StringVar(&f.Format, formatFlagName, string(cliio.FormatText), "Output format ("+cliio.FormatsString()+")")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	params, err := newParams(flags, time.Now())
	if err != nil {
		return err
	}
	format, err := cliio.ParseFormat(flags.Format)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	actions, err := datepickercmd.ParseActions(flags.Actions)
	if err != nil {
		return appcmd.NewInvalidArgumentErrorf("--%s: %v", actionFlagName, err)
	}
	dir, err := xos.ExpandHome(flags.Dir)
	if err != nil {
		return appcmd.NewInvalidArgumentErrorf("--%s: %v", datepickercmd.DirFlagName, err)
	}
	config, err := datepickerconfig.ReadConfig(dir)
	if err != nil {
		return err
	}
	logger := container.Logger()
	datepicker, _, err := datepickercmd.NewDatepicker(logger, config, params)
	if err != nil {
		return err
	}
	datepickercmd.Apply(logger, datepicker, actions)
	return datepickerrender.Write(container.Stdout(), format, datepicker.Render(), config.Theme)
}

// newParams validates the date flags, resolving them against now.
func newParams(flags *flags, now time.Time) (datepickercmd.Params, error) {
	params := datepickercmd.Params{
		Today:      xtime.TimeToDate(now),
		Controlled: flags.Controlled,
	}
	if flags.Today != "" {
		today, err := xtime.ParseDate(flags.Today)
		if err != nil {
			return datepickercmd.Params{}, appcmd.NewInvalidArgumentErrorf("--%s: %v", todayFlagName, err)
		}
		params.Today = today
	}
	if flags.Month != "" {
		month, err := datepickercmd.ParseMonth(flags.Month, params.Today)
		if err != nil {
			return datepickercmd.Params{}, appcmd.NewInvalidArgumentErrorf("--%s: %v", monthFlagName, err)
		}
		params.Month = month
	}
	if flags.Value != "" {
		value, err := xtime.ParseDate(flags.Value)
		if err != nil {
			return datepickercmd.Params{}, appcmd.NewInvalidArgumentErrorf("--%s: %v", valueFlagName, err)
		}
		params.Value = value
	}
	return params, nil
}
