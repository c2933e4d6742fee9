// Copyright 2026 Peter Edge
//
// All rights reserved.

package xos

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "relative", path: ".", want: "."},
		{name: "absolute", path: "/etc/datepicker", want: "/etc/datepicker"},
		{name: "home", path: "~", want: homeDir},
		{name: "under_home", path: "~/.config/datepicker", want: filepath.Join(homeDir, ".config", "datepicker")},
		{name: "other_user", path: "~alice/datepicker", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ExpandHome(test.path)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}
