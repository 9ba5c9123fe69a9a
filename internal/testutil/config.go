package testutil

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/lepinkainen/ytshelf/internal/config"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	DataDir        string
	OverwriteFiles bool
	UpdateCovers   bool
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		DataDir:        config.DataDir,
		OverwriteFiles: config.OverwriteFiles,
		UpdateCovers:   config.UpdateCovers,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.DataDir = state.DataDir
	config.OverwriteFiles = state.OverwriteFiles
	config.UpdateCovers = state.UpdateCovers
}

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetTestConfig sets up a sandboxed test configuration: the data directory
// points into the test environment and overwrites are enabled.
func SetTestConfig(t *testing.T, env *TestEnv) {
	t.Helper()

	ResetConfig(t)

	config.DataDir = env.RootDir()
	config.OverwriteFiles = true
	config.UpdateCovers = false

	viper.Set("DataDir", env.RootDir())
	viper.Set("markdownoutputdir", env.Path("markdown"))
	viper.Set("jsonoutputdir", env.Path("json"))
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
	})
}

// SetupDatasetteDB configures a local Datasette mirror database inside the
// test environment and returns its path.
func SetupDatasetteDB(t *testing.T, env *TestEnv) string {
	t.Helper()

	dbPath := env.Path("test.db")

	SetViperValue(t, "datasette.enabled", true)
	SetViperValue(t, "datasette.mode", "local")
	SetViperValue(t, "datasette.dbfile", dbPath)

	return dbPath
}
