// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datepickerconfig provides configuration parsing and validation for datepicker.
//
// Configuration is stored at datepicker.yaml within the directory given by --dir.
// The file is optional: a missing file yields the default configuration.
package datepickerconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the configuration file within the config directory.
const ConfigFileName = "datepicker.yaml"

const (
	// DefaultPreviousLabel is the label of the previous-month control when unset.
	DefaultPreviousLabel = "Prev"
	// DefaultNextLabel is the label of the next-month control when unset.
	DefaultNextLabel = "Next"
)

// configTemplate is the default configuration file template with comments.
// yaml.v3 does not preserve comments, so we hardcode the template string.
const configTemplate = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# Navigation control labels.
#
# Optional. Defaults to Prev and Next.
labels:
  previous: Prev
  next: Next
# Cell colors.
#
# Optional. Each color is a #RRGGBB hex value or an ANSI color number (0-255).
# Unset colors use the defaults shown here.
theme:
  # Background of the selected day.
  selected: "#F6AD55"
  # Background of the selected day under the pointer.
  selected_hover: "#ED8936"
  # Background of any other day under the pointer.
  hover: "#CBD5E0"
  # Foreground of days outside the visible month.
  outside: "#A0AEC0"
`

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	// Version is the configuration file version (must be "v1").
	Version string `yaml:"version"`
	// Labels holds the navigation control labels.
	Labels ExternalLabelsConfig `yaml:"labels"`
	// Theme holds the cell colors.
	Theme ExternalThemeConfig `yaml:"theme"`
}

// ExternalLabelsConfig holds navigation control labels.
type ExternalLabelsConfig struct {
	// Previous is the label of the previous-month control.
	Previous string `yaml:"previous"`
	// Next is the label of the next-month control.
	Next string `yaml:"next"`
}

// ExternalThemeConfig holds cell colors.
type ExternalThemeConfig struct {
	Selected      string `yaml:"selected"`
	SelectedHover string `yaml:"selected_hover"`
	Hover         string `yaml:"hover"`
	Outside       string `yaml:"outside"`
}

// Config is the validated runtime configuration derived from the config file.
type Config struct {
	// PreviousLabel is the label of the previous-month control.
	PreviousLabel string
	// NextLabel is the label of the next-month control.
	NextLabel string
	// Theme holds the cell colors.
	Theme Theme
}

// Theme holds validated cell colors.
type Theme struct {
	// Selected is the background of the selected day.
	Selected string
	// SelectedHover is the background of the selected day under the pointer.
	SelectedHover string
	// Hover is the background of an unselected day under the pointer.
	Hover string
	// Outside is the foreground of days outside the visible month.
	Outside string
}

// DefaultTheme returns the default Theme.
func DefaultTheme() Theme {
	return Theme{
		Selected:      "#F6AD55",
		SelectedHover: "#ED8936",
		Hover:         "#CBD5E0",
		Outside:       "#A0AEC0",
	}
}

// DefaultConfig returns the configuration used when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		PreviousLabel: DefaultPreviousLabel,
		NextLabel:     DefaultNextLabel,
		Theme:         DefaultTheme(),
	}
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
func NewConfig(externalConfig ExternalConfig) (*Config, error) {
	if externalConfig.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", externalConfig.Version)
	}
	config := DefaultConfig()
	if externalConfig.Labels.Previous != "" {
		config.PreviousLabel = externalConfig.Labels.Previous
	}
	if externalConfig.Labels.Next != "" {
		config.NextLabel = externalConfig.Labels.Next
	}
	for _, color := range []struct {
		name  string
		value string
		dest  *string
	}{
		{"theme.selected", externalConfig.Theme.Selected, &config.Theme.Selected},
		{"theme.selected_hover", externalConfig.Theme.SelectedHover, &config.Theme.SelectedHover},
		{"theme.hover", externalConfig.Theme.Hover, &config.Theme.Hover},
		{"theme.outside", externalConfig.Theme.Outside, &config.Theme.Outside},
	} {
		if color.value == "" {
			continue
		}
		if err := validateColor(color.value); err != nil {
			return nil, fmt.Errorf("%s: %w", color.name, err)
		}
		*color.dest = color.value
	}
	return config, nil
}

// ConfigFilePath returns the path to the configuration file within the given config directory.
func ConfigFilePath(configDirPath string) string {
	return filepath.Join(configDirPath, ConfigFileName)
}

// ReadConfig reads and validates the configuration file from the given config directory.
//
// Returns DefaultConfig if the file does not exist.
func ReadConfig(configDirPath string) (*Config, error) {
	filePath := ConfigFilePath(configDirPath)
	config, err := ReadConfigFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return config, nil
}

// ReadConfigFile reads and validates the configuration file at filePath.
func ReadConfigFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var externalConfig ExternalConfig
	if err := unmarshalYAMLStrict(data, &externalConfig); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	config, err := NewConfig(externalConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}
	return config, nil
}

// InitConfig creates a new configuration file with a documented template.
// Creates the config directory if it does not exist.
// Returns the path to the created file, or an error if the file already exists.
func InitConfig(configDirPath string) (string, error) {
	filePath := ConfigFilePath(configDirPath)
	if _, err := os.Stat(filePath); err == nil {
		return "", fmt.Errorf("configuration file already exists: %s", filePath)
	}
	// Create the config directory if it does not exist.
	if err := os.MkdirAll(configDirPath, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(configTemplate), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

// ValidateConfigFile reads and validates the configuration file at filePath.
func ValidateConfigFile(filePath string) error {
	_, err := ReadConfigFile(filePath)
	return err
}

// *** PRIVATE ***

var hexColorRegexp = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// validateColor accepts #RRGGBB hex colors and ANSI 256-color numbers.
func validateColor(color string) error {
	if hexColorRegexp.MatchString(color) {
		return nil
	}
	if n, err := strconv.Atoi(color); err == nil && n >= 0 && n <= 255 {
		return nil
	}
	return fmt.Errorf("invalid color %q, must be #RRGGBB or an ANSI color number 0-255", color)
}

// unmarshalYAMLStrict unmarshals the data as YAML with strict field checking.
// If the data length is 0, this is a no-op.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}
