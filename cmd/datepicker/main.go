// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/datepicker/cmd/datepicker/internal/command/config"
	"github.com/bufdev/datepicker/cmd/datepicker/internal/command/render"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("datepicker"))
}

// newRootCommand creates the root datepicker command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Render and script a Monday-first month date picker",
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			config.NewCommand("config", builder),
			render.NewCommand("render", builder),
		},
	}
}
