package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// DataDir is the directory holding the catalog snapshot and cover images
	DataDir string
	// OverwriteFiles controls whether existing markdown/JSON files should be overwritten
	OverwriteFiles bool
	// UpdateCovers forces re-downloading cover images that already exist
	UpdateCovers bool
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("DataDir", ".")
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)
	viper.SetDefault("UpdateCovers", false)

	// Get values from viper
	DataDir = viper.GetString("DataDir")
	OverwriteFiles = viper.GetBool("OverwriteFiles")
	UpdateCovers = viper.GetBool("UpdateCovers")
}

// SetDataDir sets the snapshot data directory
func SetDataDir(dir string) {
	DataDir = dir
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}

// SetUpdateCovers sets the UpdateCovers flag
func SetUpdateCovers(update bool) {
	UpdateCovers = update
}
