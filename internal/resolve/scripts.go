package resolve

import (
	"path"

	"github.com/kballard/go-shellquote"
	"github.com/lintup-dev/lintup/internal/document"
	"github.com/lintup-dev/lintup/internal/manifest"
)

// Script names written into package.json.
const (
	ScriptLint       = "lint"
	ScriptLintFix    = "lint:fix"
	ScriptBuild      = "build"
	ScriptBuildClean = "build:clean"
	ScriptBuildBabel = "build:babel"
	ScriptBuildTS    = "build:ts"
	ScriptBuildTypes = "build:types"
)

// Extensions returns the source file extensions linted for flags.
func Extensions(flags FeatureFlags) []string {
	if flags.TypeScript {
		return []string{"ts", "tsx"}
	}
	return []string{"js", "jsx"}
}

// StagedPattern returns the lint-staged glob for the active extensions,
// e.g. "src/**/*.{ts,tsx}".
func StagedPattern(flags FeatureFlags, sourceDir string) string {
	exts := Extensions(flags)
	glob := "*.{" + exts[0] + "," + exts[1] + "}"
	return path.Join(sourceDir, "**", glob)
}

// ManifestPatch derives the scripts and sections merged into package.json.
// The Babel and TypeScript build families are mutually exclusive.
func ManifestPatch(flags FeatureFlags, opts Options) manifest.Patch {
	flags = flags.Normalize()
	opts = opts.withDefaults()

	exts := Extensions(flags)
	extArg := "." + exts[0] + ",." + exts[1]
	lint := shellquote.Join("eslint", "--ext", extArg, opts.SourceDir)

	p := manifest.Patch{
		Scripts: []manifest.Script{
			{Name: ScriptLint, Command: lint},
			{Name: ScriptLintFix, Command: lint + " --fix"},
		},
	}

	switch {
	case flags.TypeScript:
		p.Scripts = append(p.Scripts,
			manifest.Script{Name: ScriptBuild, Command: chain(opts.ScriptRunner, ScriptBuildTS, ScriptBuildTypes)},
			manifest.Script{Name: ScriptBuildTS, Command: "tsc --noEmit false"},
			manifest.Script{Name: ScriptBuildTypes, Command: shellquote.Join(
				"dts-bundle",
				"--name", opts.PackageName,
				"--main", path.Join(opts.TypesDir, "index.d.ts"),
				"--out", "../index.d.ts",
			)},
		)
	case flags.BabelBuild():
		p.Scripts = append(p.Scripts,
			manifest.Script{Name: ScriptBuild, Command: chain(opts.ScriptRunner, ScriptBuildClean, ScriptBuildBabel)},
			manifest.Script{Name: ScriptBuildClean, Command: shellquote.Join("rimraf", opts.OutDir)},
			manifest.Script{Name: ScriptBuildBabel, Command: shellquote.Join("babel", opts.SourceDir, "--out-dir", opts.OutDir, "--copy-files")},
		)
	}

	p.Sections = append(p.Sections,
		manifest.Section{
			Key: manifest.KeyHusky,
			Value: document.NewObject().
				Set("hooks", document.NewObject().Set("pre-commit", "lint-staged")),
		},
		manifest.Section{
			Key: manifest.KeyLintStaged,
			Value: document.NewObject().
				Set(StagedPattern(flags, opts.SourceDir), []string{"eslint --fix", "prettier --write", "git add"}),
		},
	)

	if flags.React {
		p.Sections = append(p.Sections, manifest.Section{
			Key: manifest.KeyBrowserslist,
			Value: document.NewObject().
				Set("production", []string{">0.2%", "not dead", "not op_mini all"}).
				Set("development", []string{"last 1 chrome version", "last 1 firefox version", "last 1 safari version"}),
		})
	}

	return p
}

// chain joins package scripts so they run in sequence, stopping at the
// first failure.
func chain(runner string, scripts ...string) string {
	out := ""
	for i, s := range scripts {
		if i > 0 {
			out += " && "
		}
		out += runner + " " + s
	}
	return out
}
