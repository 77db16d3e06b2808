// Package branding holds the product identity baked into the binary from
// branding.yaml. Renaming the CLI means editing that file only.
package branding

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// Identity names the product everywhere it surfaces: the root command,
// the ~/.<home_dir> config directory and the <ENV_PREFIX>_* variables.
type Identity struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GitHubRepo  string `yaml:"github_repo"`
}

var fallback = Identity{
	CLIName:     "lintup",
	DisplayName: "lintup",
	Description: "Scaffold ESLint, TypeScript and Babel tooling for JavaScript projects",
	HomeDir:     ".lintup",
	EnvPrefix:   "LINTUP",
	GitHubRepo:  "lintup-dev/lintup",
}

var current = sync.OnceValue(func() Identity {
	id, err := Parse(rawBranding)
	if err != nil {
		return fallback
	}
	return id
})

// Parse decodes a branding document. Unknown keys are rejected and any key
// left blank keeps the built-in value.
func Parse(data []byte) (Identity, error) {
	var id Identity
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&id); err != nil && !errors.Is(err, io.EOF) {
		return Identity{}, fmt.Errorf("parsing branding: %w", err)
	}

	fill(&id.CLIName, fallback.CLIName)
	fill(&id.DisplayName, id.CLIName)
	fill(&id.Description, fallback.Description)
	fill(&id.HomeDir, "."+id.CLIName)
	fill(&id.EnvPrefix, strings.ToUpper(id.CLIName))
	fill(&id.GitHubRepo, fallback.GitHubRepo)
	if strings.ContainsAny(id.EnvPrefix, " -.") {
		return Identity{}, fmt.Errorf("env_prefix %q is not a valid variable prefix", id.EnvPrefix)
	}
	return id, nil
}

func fill(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

// Current returns the embedded identity.
func Current() Identity { return current() }

// RepoURL is the project home page shown by the version command.
func (id Identity) RepoURL() string { return "https://github.com/" + id.GitHubRepo }

// EnvVar returns the prefixed variable name, e.g. EnvVar("log_level") is
// LINTUP_LOG_LEVEL.
func (id Identity) EnvVar(suffix string) string {
	return id.EnvPrefix + "_" + strings.ToUpper(suffix)
}

func CLIName() string     { return current().CLIName }
func DisplayName() string { return current().DisplayName }
func Description() string { return current().Description }
func HomeDir() string     { return current().HomeDir }
func EnvPrefix() string   { return current().EnvPrefix }
func GitHubRepo() string  { return current().GitHubRepo }

// EnvVar is Current().EnvVar.
func EnvVar(suffix string) string { return current().EnvVar(suffix) }
