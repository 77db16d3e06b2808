package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/lintup-dev/lintup/internal/config"
	"github.com/lintup-dev/lintup/internal/installer"
	"github.com/lintup-dev/lintup/internal/log"
	"github.com/lintup-dev/lintup/internal/manifest"
	"github.com/lintup-dev/lintup/internal/resolve"
)

// Request describes one scaffold run.
type Request struct {
	Settings  config.Settings
	Flags     resolve.FeatureFlags
	Installer installer.Installer
	// DryRun stops after resolution; nothing is written or installed.
	DryRun bool
	// Out receives progress messages. Nil discards them.
	Out io.Writer
}

// Result holds the outcome of a scaffold run.
type Result struct {
	Dir         string
	Plan        *resolve.Plan
	Files       []string
	Overwritten []string
	Initialized bool
	Installed   []string
	Installer   string
	PackageName string
	Patch       manifest.Patch
	Warnings    []string
}

// Options builds the derivation options from captured settings and the
// chosen installer's script runner.
func Options(s config.Settings, runner string) resolve.Options {
	return resolve.Options{
		SourceDir:    s.SourceDir,
		OutDir:       s.OutDir,
		TypesInclude: s.TypesInclude,
		TypesDir:     s.TypesDir,
		ScriptRunner: runner,
	}
}

// Run resolves the setup for req.Flags and applies it to req.Settings.WorkDir.
// Steps run in order and the first failure stops the run; files already
// written are left in place.
func Run(ctx context.Context, req Request) (*Result, error) {
	dir := req.Settings.WorkDir
	out := req.Out
	if out == nil {
		out = io.Discard
	}
	logger := log.WithComponent("scaffold")

	opts := Options(req.Settings, req.Installer.ScriptRunner())
	plan, err := resolve.Resolve(req.Flags, opts)
	if err != nil {
		return nil, fmt.Errorf("resolving setup: %w", err)
	}

	result := &Result{
		Dir:       dir,
		Plan:      plan,
		Installer: req.Installer.Name(),
	}
	logger.Debug().
		Str("flags", plan.Flags.String()).
		Str("template", plan.Template.String()).
		Int("dependencies", len(plan.Dependencies)).
		Msg("resolved setup")

	if req.DryRun {
		return result, nil
	}

	for _, f := range plan.Files {
		overwritten, err := writeFile(dir, f)
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, f.Path)
		if overwritten {
			result.Overwritten = append(result.Overwritten, f.Path)
		}
		fmt.Fprintf(out, "  wrote %s\n", f.Path)
	}

	exists, err := manifest.Exists(dir)
	if err != nil {
		return result, err
	}
	if !exists {
		fmt.Fprintf(out, "Creating %s with %s...\n", manifest.FileName, req.Installer.Name())
		if err := req.Installer.Init(ctx, dir); err != nil {
			return result, fmt.Errorf("initializing %s: %w", manifest.FileName, err)
		}
		result.Initialized = true
	}

	if req.Settings.SkipInstall {
		logger.Info().Msg("skipping dependency install")
	} else {
		pkgs := plan.PackageArgs()
		fmt.Fprintf(out, "Installing %d dev dependencies with %s...\n", len(pkgs), req.Installer.Name())
		if err := req.Installer.AddDev(ctx, dir, pkgs); err != nil {
			return result, fmt.Errorf("installing dev dependencies: %w", err)
		}
		result.Installed = pkgs
	}

	m, err := manifest.Load(dir)
	if err != nil {
		return result, err
	}
	result.PackageName = m.NameOr(dir)

	opts.PackageName = result.PackageName
	result.Patch = resolve.ManifestPatch(plan.Flags, opts)
	m.Apply(result.Patch)

	vr, err := m.Validate()
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not validate %s: %v", manifest.FileName, err))
	} else if !vr.Valid {
		for _, issue := range vr.Issues {
			result.Warnings = append(result.Warnings, issue.String())
		}
	}

	if err := m.Save(dir); err != nil {
		return result, err
	}
	fmt.Fprintf(out, "  updated %s\n", manifest.FileName)

	return result, nil
}

// writeFile atomically writes f below dir and reports whether it replaced
// an existing file.
func writeFile(dir string, f resolve.GeneratedFile) (bool, error) {
	path := filepath.Join(dir, filepath.FromSlash(f.Path))

	_, statErr := os.Stat(path)
	overwritten := statErr == nil

	if err := renameio.WriteFile(path, []byte(f.Contents), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return overwritten, nil
}
