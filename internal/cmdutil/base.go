// Package cmdutil holds shared command plumbing: output directory setup and
// struct-to-row conversion for the Datasette mirror.
package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// BaseCommandConfig holds common configuration for the export command
type BaseCommandConfig struct {
	OutputDir     string
	OutputDirFlag string
	ConfigKey     string
	JSONOutput    string
	WriteJSON     bool
	Overwrite     bool
}

// SetupOutputDir resolves the markdown and JSON output paths for a command,
// creating the directories as needed. Flag values win over config values;
// the config key doubles as the default subdirectory name.
func SetupOutputDir(cfg *BaseCommandConfig) error {
	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = viper.GetString(cfg.ConfigKey + ".output")
	}
	if outputDir == "" && cfg.ConfigKey != "" {
		outputDir = cfg.ConfigKey
	}

	baseDir := viper.GetString("markdownoutputdir")
	if baseDir == "" {
		baseDir = "markdown"
	}
	cfg.OutputDir = filepath.Clean(filepath.Join(baseDir, outputDir))

	if cfg.WriteJSON && cfg.JSONOutput == "" {
		jsonBaseDir := viper.GetString("jsonoutputdir")
		if jsonBaseDir == "" {
			jsonBaseDir = "json"
		}
		jsonFile := cfg.ConfigKey + ".json"
		cfg.JSONOutput = filepath.Clean(filepath.Join(jsonBaseDir, jsonFile))
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if cfg.WriteJSON {
		jsonDir := filepath.Dir(cfg.JSONOutput)
		if err := os.MkdirAll(jsonDir, 0755); err != nil {
			return fmt.Errorf("failed to create JSON output directory: %w", err)
		}
	}

	return nil
}
