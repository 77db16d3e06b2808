package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lintup-dev/lintup/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys. Each can be set in config.yaml or through the
// environment as LINTUP_<KEY>.
const (
	KeySourceDir    = "source_dir"
	KeyOutDir       = "out_dir"
	KeyTypesInclude = "types_include"
	KeyTypesDir     = "types_dir"
	KeyInstaller    = "installer"
	KeySkipInstall  = "skip_install"
	KeyLogLevel     = "log_level"
)

// Keys lists every recognised configuration key.
var Keys = []string{
	KeySourceDir,
	KeyOutDir,
	KeyTypesInclude,
	KeyTypesDir,
	KeyInstaller,
	KeySkipInstall,
	KeyLogLevel,
}

// Dir returns the path to the lintup config directory (~/.lintup/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.lintup/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeySourceDir, "src")
	viper.SetDefault(KeyOutDir, "lib")
	viper.SetDefault(KeyTypesInclude, "")
	viper.SetDefault(KeyTypesDir, "./types")
	viper.SetDefault(KeyInstaller, "")
	viper.SetDefault(KeySkipInstall, false)
	viper.SetDefault(KeyLogLevel, "info")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnown reports whether key is a recognised configuration key.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
