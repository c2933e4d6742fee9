// Copyright 2026 Peter Edge
//
// All rights reserved.

package datepickerconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bufdev/datepicker/internal/datepicker/datepickerview"
	"github.com/stretchr/testify/require"
)

func TestDefaultLabelsMatchDatepicker(t *testing.T) {
	t.Parallel()
	config := DefaultConfig()
	require.Equal(t, datepickerview.DefaultPreviousLabel, config.PreviousLabel)
	require.Equal(t, datepickerview.DefaultNextLabel, config.NextLabel)
}

func TestInitThenRead(t *testing.T) {
	t.Parallel()
	dirPath := filepath.Join(t.TempDir(), "nested")
	filePath, err := InitConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, ConfigFilePath(dirPath), filePath)
	// The template matches the defaults.
	config, err := ReadConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
	require.NoError(t, ValidateConfigFile(filePath))
	// A second init refuses to overwrite.
	_, err = InitConfig(dirPath)
	require.ErrorContains(t, err, "already exists")
}

func TestReadConfigMissingFile(t *testing.T) {
	t.Parallel()
	config, err := ReadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
	// Validation of an explicit path requires the file.
	require.Error(t, ValidateConfigFile(filepath.Join(t.TempDir(), ConfigFileName)))
}

func TestReadConfigOverrides(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	writeConfig(t, dirPath, `version: v1
labels:
  previous: "<"
theme:
  selected: "208"
`)
	config, err := ReadConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, "<", config.PreviousLabel)
	require.Equal(t, "Next", config.NextLabel)
	require.Equal(t, "208", config.Theme.Selected)
	require.Equal(t, DefaultTheme().Hover, config.Theme.Hover)
}

func TestReadConfigErrors(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing version",
			content: "labels:\n  next: Next\n",
			wantErr: "unsupported config version",
		},
		{
			name:    "unknown field",
			content: "version: v1\nweek_start: sunday\n",
			wantErr: "could not unmarshal as YAML",
		},
		{
			name:    "bad hex color",
			content: "version: v1\ntheme:\n  hover: \"#CBD5E\"\n",
			wantErr: "theme.hover",
		},
		{
			name:    "ansi color out of range",
			content: "version: v1\ntheme:\n  outside: \"256\"\n",
			wantErr: "theme.outside",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			dirPath := t.TempDir()
			writeConfig(t, dirPath, test.content)
			_, err := ReadConfig(dirPath)
			require.ErrorContains(t, err, test.wantErr)
		})
	}
}

func writeConfig(t *testing.T, dirPath string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(ConfigFilePath(dirPath), []byte(content), 0o644))
}
