package resolve

import "strings"

// FeatureFlags are the user's answers that drive every derivation.
type FeatureFlags struct {
	TypeScript bool `json:"typescript" yaml:"typescript"`
	React      bool `json:"react" yaml:"react"`
	Babel      bool `json:"babel" yaml:"babel"`
}

// DefaultBabel returns the default answer for the Babel question:
// TypeScript builds with tsc, React builds with Babel, plain projects don't
// transpile unless asked to.
func DefaultBabel(typeScript, react bool) bool {
	if typeScript {
		return false
	}
	return react
}

// AsksBabel reports whether the Babel question is shown. When TypeScript or
// React is enabled the answer is implied and taken from DefaultBabel.
func AsksBabel(typeScript, react bool) bool {
	return !typeScript && !react
}

// Normalize returns f with Babel forced to its implied value whenever the
// question would have been skipped.
func (f FeatureFlags) Normalize() FeatureFlags {
	if !AsksBabel(f.TypeScript, f.React) {
		f.Babel = DefaultBabel(f.TypeScript, f.React)
	}
	return f
}

// BabelBuild reports whether the project builds through Babel.
func (f FeatureFlags) BabelBuild() bool {
	return !f.TypeScript && (f.React || f.Babel)
}

// String renders the flags as "typescript=… react=… babel=…".
func (f FeatureFlags) String() string {
	var b strings.Builder
	b.WriteString("typescript=")
	b.WriteString(boolWord(f.TypeScript))
	b.WriteString(" react=")
	b.WriteString(boolWord(f.React))
	b.WriteString(" babel=")
	b.WriteString(boolWord(f.Babel))
	return b.String()
}

func boolWord(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// GeneratedFile is a file written relative to the project directory.
// A later run overwrites a file at the same path.
type GeneratedFile struct {
	Path     string `json:"path" yaml:"path"`
	Contents string `json:"contents" yaml:"contents"`
}

// DependencySpec is a development package to install.
type DependencySpec struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"` // pinned semver or "latest"
}

// LatestVersion installs whatever the registry tags as latest.
const LatestVersion = "latest"

// String renders the spec the way package managers accept it: name@version.
func (d DependencySpec) String() string {
	return d.Name + "@" + d.Version
}

// BuildTemplate identifies which build-tool configuration is generated.
type BuildTemplate int

const (
	// TemplateNone generates no build-tool configuration.
	TemplateNone BuildTemplate = iota
	// TemplateReactBabel is babel-preset-react-app with an environment override.
	TemplateReactBabel
	// TemplateTypeScript builds with tsc alone; no Babel file is written.
	TemplateTypeScript
	// TemplateGenericBabel is a preset-env pipeline with class properties,
	// object spread, runtime transform and dynamic import.
	TemplateGenericBabel
)

// String returns a short identifier for the template.
func (t BuildTemplate) String() string {
	switch t {
	case TemplateReactBabel:
		return "react-babel"
	case TemplateTypeScript:
		return "typescript"
	case TemplateGenericBabel:
		return "generic-babel"
	default:
		return "none"
	}
}

// MarshalText lets the template appear by name in JSON and YAML plans.
func (t BuildTemplate) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Options carries the project-specific values the derivations need. All of
// them come from configuration captured once at startup.
type Options struct {
	SourceDir    string // directory linted and compiled, e.g. "src"
	OutDir       string // build output directory, e.g. "lib"
	TypesInclude string // tsconfig include root; empty derives it from SourceDir
	TypesDir     string // declaration output directory, e.g. "./types"
	PackageName  string // consuming package name, used by build:types
	ScriptRunner string // prefix that runs a package script, e.g. "npm run"
}

// DefaultOptions returns the values used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		SourceDir:    "src",
		OutDir:       "lib",
		TypesInclude: "./src/**/*",
		TypesDir:     "./types",
		ScriptRunner: "npm run",
	}
}

// withDefaults fills empty fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SourceDir == "" {
		o.SourceDir = d.SourceDir
	}
	if o.OutDir == "" {
		o.OutDir = d.OutDir
	}
	if o.TypesInclude == "" {
		o.TypesInclude = IncludeFor(o.SourceDir)
	}
	if o.TypesDir == "" {
		o.TypesDir = d.TypesDir
	}
	if o.ScriptRunner == "" {
		o.ScriptRunner = d.ScriptRunner
	}
	return o
}

// Plan is the complete output of one resolution.
type Plan struct {
	Flags        FeatureFlags     `json:"flags" yaml:"flags"`
	Template     BuildTemplate    `json:"template" yaml:"template"`
	LintSteps    []string         `json:"lint_steps" yaml:"lint_steps"`
	Files        []GeneratedFile  `json:"files" yaml:"files"`
	Dependencies []DependencySpec `json:"dependencies" yaml:"dependencies"`
}

// File returns the generated file at path.
func (p *Plan) File(path string) (GeneratedFile, bool) {
	for _, f := range p.Files {
		if f.Path == path {
			return f, true
		}
	}
	return GeneratedFile{}, false
}

// PackageArgs returns the dependency list as name@version arguments.
func (p *Plan) PackageArgs() []string {
	args := make([]string, len(p.Dependencies))
	for i, d := range p.Dependencies {
		args[i] = d.String()
	}
	return args
}
