// Package config provides configuration types and defaults for folio.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FoldConfig holds code folding options.
type FoldConfig struct {
	Enabled      bool `mapstructure:"enabled" yaml:"enabled"`
	Comments     bool `mapstructure:"comments" yaml:"comments"`         // fold block comments
	Preprocessor bool `mapstructure:"preprocessor" yaml:"preprocessor"` // fold #region-style blocks
}

// UIConfig holds viewer options.
type UIConfig struct {
	ShowLineNumbers bool `mapstructure:"show_line_numbers" yaml:"show_line_numbers"`
	ShowFoldGutter  bool `mapstructure:"show_fold_gutter" yaml:"show_fold_gutter"`
	TabWidth        int  `mapstructure:"tab_width" yaml:"tab_width"`
}

// ThemeConfig holds color overrides keyed by style name ("keyword",
// "comment", ...) with hex color values.
type ThemeConfig struct {
	Colors map[string]string `mapstructure:"colors" yaml:"colors"`
}

// Config holds all configuration options for folio.
type Config struct {
	Language         string      `mapstructure:"language" yaml:"language"`   // force a language, empty = detect by extension
	LanguageDir      string      `mapstructure:"language_dir" yaml:"language_dir"` // extra YAML language definitions
	AutoReload       bool        `mapstructure:"auto_reload" yaml:"auto_reload"`
	ReloadDebounceMS int         `mapstructure:"reload_debounce_ms" yaml:"reload_debounce_ms"`
	Fold             FoldConfig  `mapstructure:"fold" yaml:"fold"`
	UI               UIConfig    `mapstructure:"ui" yaml:"ui"`
	Theme            ThemeConfig `mapstructure:"theme" yaml:"theme"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoReload:       true,
		ReloadDebounceMS: 250,
		Fold: FoldConfig{
			Enabled:      true,
			Comments:     true,
			Preprocessor: true,
		},
		UI: UIConfig{
			ShowLineNumbers: true,
			ShowFoldGutter:  true,
			TabWidth:        4,
		},
	}
}

// WriteDefaultConfig writes the default configuration as YAML to path,
// creating parent directories as needed.
func WriteDefaultConfig(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
