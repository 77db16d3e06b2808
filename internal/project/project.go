package project

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lintup-dev/lintup/internal/installer"
	"github.com/lintup-dev/lintup/internal/manifest"
	"github.com/lintup-dev/lintup/internal/resolve"
)

// Files whose presence hints at an existing setup.
var (
	tsConfigFiles = []string{resolve.TSConfigFile}
	babelFiles    = []string{resolve.BabelFile, ".babelrc", ".babelrc.js", ".babelrc.json"}
)

// Info describes what is already in a project directory.
type Info struct {
	Dir         string `json:"dir" yaml:"dir"`
	Name        string `json:"name" yaml:"name"`
	HasManifest bool   `json:"has_manifest" yaml:"has_manifest"`
	LockFile    string `json:"lock_file,omitempty" yaml:"lock_file,omitempty"`
	HasTSConfig bool   `json:"has_tsconfig" yaml:"has_tsconfig"`
	// TypeScriptSources counts .ts/.tsx files under the source directory.
	TypeScriptSources int  `json:"typescript_sources" yaml:"typescript_sources"`
	UsesReact         bool `json:"uses_react" yaml:"uses_react"`
	HasBabelConfig    bool `json:"has_babel_config" yaml:"has_babel_config"`
	// Existing lists generated file names that are already present and
	// would be overwritten.
	Existing []string `json:"existing,omitempty" yaml:"existing,omitempty"`
}

// Inspect examines dir. sourceDir is relative to dir and scopes the
// TypeScript source search.
func Inspect(dir, sourceDir string) (*Info, error) {
	info := &Info{
		Dir:      dir,
		Name:     filepath.Base(dir),
		LockFile: installer.LockFile(dir),
	}

	exists, err := manifest.Exists(dir)
	if err != nil {
		return nil, fmt.Errorf("inspecting project: %w", err)
	}
	if exists {
		m, err := manifest.Load(dir)
		if err != nil {
			return nil, fmt.Errorf("inspecting project: %w", err)
		}
		info.HasManifest = true
		info.Name = m.NameOr(dir)
		info.UsesReact = m.HasDependency("react")
	}

	info.HasTSConfig = anyExists(dir, tsConfigFiles)
	info.HasBabelConfig = anyExists(dir, babelFiles)

	n, err := countTypeScript(dir, sourceDir)
	if err != nil {
		return nil, fmt.Errorf("inspecting project: %w", err)
	}
	info.TypeScriptSources = n

	for _, name := range []string{resolve.ESLintFile, resolve.TSConfigFile, resolve.BabelFile} {
		if fileExists(filepath.Join(dir, name)) {
			info.Existing = append(info.Existing, name)
		}
	}

	return info, nil
}

// UsesTypeScript reports whether the project already has TypeScript.
func (i *Info) UsesTypeScript() bool {
	return i.HasTSConfig || i.TypeScriptSources > 0
}

// Defaults returns the suggested answers for the setup questions. An
// existing Babel config does not change the Babel default; it is only
// reported by HasBabelConfig.
func (i *Info) Defaults() resolve.FeatureFlags {
	ts := i.UsesTypeScript()
	return resolve.FeatureFlags{
		TypeScript: ts,
		React:      i.UsesReact,
		Babel:      resolve.DefaultBabel(ts, i.UsesReact),
	}
}

// countTypeScript counts TypeScript sources below sourceDir, ignoring
// declaration files.
func countTypeScript(dir, sourceDir string) (int, error) {
	if sourceDir == "" {
		sourceDir = "."
	}
	pattern := path.Join(filepath.ToSlash(sourceDir), "**", "*.{ts,tsx}")

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return 0, fmt.Errorf("searching %s: %w", pattern, err)
	}

	n := 0
	for _, m := range matches {
		if ok, _ := doublestar.Match("**/*.d.ts", m); ok {
			continue
		}
		if ok, _ := doublestar.Match("**/node_modules/**", m); ok {
			continue
		}
		n++
	}
	return n, nil
}

func anyExists(dir string, names []string) bool {
	for _, name := range names {
		if fileExists(filepath.Join(dir, name)) {
			return true
		}
	}
	return false
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}
