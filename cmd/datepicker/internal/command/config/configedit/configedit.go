// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configedit implements the "config edit" command.
package configedit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datepicker/cmd/datepicker/internal/datepickercmd"
	"github.com/bufdev/datepicker/internal/datepicker/datepickerconfig"
	"github.com/bufdev/datepicker/internal/standard/xos"
	"github.com/spf13/pflag"
)

// NewCommand returns a new config edit command that opens the configuration file in an editor.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Edit the configuration file in $EDITOR",
		Long:  "Edit the configuration file in $EDITOR, creating it from the default template if it does not exist. The file is validated after the editor exits.",
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
	// Dir is the directory containing datepicker.yaml.
	Dir string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Dir, datepickercmd.DirFlagName, ".", "The directory containing datepicker.yaml")
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	dir, err := xos.ExpandHome(flags.Dir)
	if err != nil {
		return appcmd.NewInvalidArgumentErrorf("--%s: %v", datepickercmd.DirFlagName, err)
	}
	configFilePath := datepickerconfig.ConfigFilePath(dir)
	if _, err := os.Stat(configFilePath); errors.Is(err, fs.ErrNotExist) {
		if _, err := datepickerconfig.InitConfig(dir); err != nil {
			return err
		}
	}
	editor := container.Env("EDITOR")
	if editor == "" {
		return errors.New("EDITOR environment variable is not set")
	}
	cmd := exec.CommandContext(ctx, editor, configFilePath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	if err := datepickerconfig.ValidateConfigFile(configFilePath); err != nil {
		return err
	}
	_, err = fmt.Fprintf(container.Stdout(), "%s\n", configFilePath)
	return err
}
