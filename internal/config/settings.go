package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lintup-dev/lintup/internal/resolve"
	"github.com/spf13/viper"
)

// Settings is an immutable snapshot of everything a run needs from the
// process environment. It is captured once when a command starts and passed
// down explicitly; nothing below the command layer reads the working
// directory or environment variables.
type Settings struct {
	WorkDir      string `json:"work_dir" yaml:"work_dir"`
	SourceDir    string `json:"source_dir" yaml:"source_dir"`
	OutDir       string `json:"out_dir" yaml:"out_dir"`
	TypesInclude string `json:"types_include" yaml:"types_include"`
	TypesDir     string `json:"types_dir" yaml:"types_dir"`
	Installer    string `json:"installer" yaml:"installer"`
	SkipInstall  bool   `json:"skip_install" yaml:"skip_install"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
}

// Capture resolves workDir (the current directory when empty) to an
// absolute path and snapshots the loaded configuration. An unset
// types_include follows source_dir.
func Capture(workDir string) (Settings, error) {
	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Settings{}, fmt.Errorf("getting current directory: %w", err)
		}
		workDir = cwd
	}

	abs, err := filepath.Abs(workDir)
	if err != nil {
		return Settings{}, fmt.Errorf("resolving %s: %w", workDir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return Settings{}, fmt.Errorf("project directory: %w", err)
	}
	if !info.IsDir() {
		return Settings{}, fmt.Errorf("project directory %s is not a directory", abs)
	}

	s := Settings{
		WorkDir:      abs,
		SourceDir:    viper.GetString(KeySourceDir),
		OutDir:       viper.GetString(KeyOutDir),
		TypesInclude: viper.GetString(KeyTypesInclude),
		TypesDir:     viper.GetString(KeyTypesDir),
		Installer:    viper.GetString(KeyInstaller),
		SkipInstall:  viper.GetBool(KeySkipInstall),
		LogLevel:     viper.GetString(KeyLogLevel),
	}
	if s.TypesInclude == "" {
		s.TypesInclude = resolve.IncludeFor(s.SourceDir)
	}
	return s, nil
}
