// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configinit implements the "config init" command.
package configinit

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datepicker/cmd/datepicker/internal/datepickercmd"
	"github.com/bufdev/datepicker/internal/datepicker/datepickerconfig"
	"github.com/bufdev/datepicker/internal/standard/xos"
	"github.com/spf13/pflag"
)

// NewCommand returns a new config init command that creates a default configuration file.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Create a new configuration file",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Dir is the directory to create datepicker.yaml in.
	Dir string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, datepickercmd.DirFlagName, ".", "The directory to create datepicker.yaml in")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	dir, err := xos.ExpandHome(flags.Dir)
	if err != nil {
		return appcmd.NewInvalidArgumentErrorf("--%s: %v", datepickercmd.DirFlagName, err)
	}
	configFilePath, err := datepickerconfig.InitConfig(dir)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(container.Stdout(), "%s\n", configFilePath)
	return err
}
