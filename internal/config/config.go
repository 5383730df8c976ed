// Package config provides configuration types and defaults for taginput.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/taginput/internal/log"
	"github.com/zjrosen/taginput/internal/taginput"
	"github.com/zjrosen/taginput/internal/ui/styles"
)

// Config holds all configuration options for taginput.
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Theme  ThemeConfig  `mapstructure:"theme"`
	Output OutputConfig `mapstructure:"output"`
	Debug  bool         `mapstructure:"debug"`
}

// InputConfig holds the tag input control options.
type InputConfig struct {
	ConfirmTagDelete bool `mapstructure:"confirm_tag_delete" yaml:"confirm_tag_delete"`
	// BackspaceBehavior is "delete" (default), "delete-modify" or "delete-confirm".
	BackspaceBehavior string `mapstructure:"tag_backspace_delete_behavior" yaml:"tag_backspace_delete_behavior"`
	ShowRemoveButton  bool   `mapstructure:"show_remove_button" yaml:"show_remove_button"`
	BlurOnSubmit      bool   `mapstructure:"blur_on_submit" yaml:"blur_on_submit"`
	Placeholder       string `mapstructure:"placeholder" yaml:"placeholder,omitempty"`
	Width             int    `mapstructure:"width" yaml:"width,omitempty"`
	MaxTagWidth       int    `mapstructure:"max_tag_width" yaml:"max_tag_width,omitempty"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     tag:
	//       bg: "#3C3C3C"
	// Or quoted dot notation:
	//   colors:
	//     "tag.bg": "#3C3C3C"
	Colors map[string]any `mapstructure:"colors"`
}

// OutputConfig controls how committed tags are printed on exit.
type OutputConfig struct {
	Separator string `mapstructure:"separator"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// Styles converts the theme section into the form styles.ApplyTheme takes.
func (t ThemeConfig) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{Preset: t.Preset, Colors: t.FlattenedColors()}
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// ValidateInput checks the input section for values the control cannot use.
func ValidateInput(in InputConfig) error {
	if _, err := taginput.ParseDeletionMode(in.BackspaceBehavior); err != nil {
		return fmt.Errorf("input.tag_backspace_delete_behavior: %w", err)
	}
	if in.Width < 0 {
		return fmt.Errorf("input.width must not be negative, got %d", in.Width)
	}
	if in.MaxTagWidth < 0 {
		return fmt.Errorf("input.max_tag_width must not be negative, got %d", in.MaxTagWidth)
	}
	return nil
}

// Validate checks every section.
func (c Config) Validate() error {
	return ValidateInput(c.Input)
}

// Options converts the input section into control options. Call Validate first;
// an invalid backspace behavior falls back to delete.
func (c Config) Options() taginput.Options {
	mode, _ := taginput.ParseDeletionMode(c.Input.BackspaceBehavior)
	return taginput.Options{
		ConfirmTagDelete:  c.Input.ConfirmTagDelete,
		BackspaceBehavior: mode,
		ShowRemoveButton:  c.Input.ShowRemoveButton,
		BlurOnSubmit:      c.Input.BlurOnSubmit,
		Placeholder:       c.Input.Placeholder,
		Width:             c.Input.Width,
		MaxTagWidth:       c.Input.MaxTagWidth,
	}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Input: InputConfig{
			ConfirmTagDelete:  false,
			BackspaceBehavior: taginput.ModeDelete.String(),
			ShowRemoveButton:  true,
			BlurOnSubmit:      false,
			Placeholder:       "Add a tag…",
			Width:             60,
		},
		Output: OutputConfig{
			Separator: "\n",
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# taginput configuration

# Tag input behavior
input:
  # Ask before a tag's remove button (×) drops it
  confirm_tag_delete: false

  # What backspace does when the text field is empty:
  #   delete          - drop the last tag (default)
  #   delete-modify   - drop the last tag and load it into the field for editing
  #   delete-confirm  - ask before dropping the last tag
  tag_backspace_delete_behavior: delete

  # Draw a remove button on every tag
  show_remove_button: true

  # Leave the field after every submit, not only after submitting an empty field
  blur_on_submit: false

  placeholder: "Add a tag…"
  width: 60            # Box width including the border
  # max_tag_width: 20  # Truncate long tags (0 = no limit)

# Theme configuration
theme:
  # Available presets:
  #   default        - Default theme
  #   high-contrast  - High contrast for accessibility
  # preset: high-contrast
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   tag.bg: "#3C3C3C"
  #   tag.remove: "#FF8787"
  #   border.focus: "#54A0FF"

# Output printed when taginput exits
output:
  separator: "\n"

# Write a debug log (TAGINPUT_DEBUG_LOG, default debug.log); same as --debug
# debug: true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
