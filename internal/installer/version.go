package installer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Requirement is a minimum tool version the generated project needs.
type Requirement struct {
	Tool       string
	Constraint string
	// Optional tools only produce a warning when missing.
	Optional bool
}

// Requirements lists the tools checked by doctor. The toolchain pinned in
// the dependency table (eslint 6, husky 3, lint-staged 9) needs Node 8.10+.
var Requirements = []Requirement{
	{Tool: "node", Constraint: ">= 8.10.0"},
	{Tool: NameNpm, Constraint: ">= 5.0.0"},
	{Tool: NameYarn, Constraint: ">= 1.0.0", Optional: true},
}

// ToolStatus is the outcome of probing one tool.
type ToolStatus struct {
	Tool       string `json:"tool"`
	Path       string `json:"path,omitempty"`
	Version    string `json:"version,omitempty"`
	Constraint string `json:"constraint"`
	Satisfied  bool   `json:"satisfied"`
	Optional   bool   `json:"optional,omitempty"`
	Err        string `json:"error,omitempty"`
}

// ToolVersion runs `<tool> --version` and returns the trimmed output.
func ToolVersion(ctx context.Context, tool string) (string, string, error) {
	bin, err := exec.LookPath(tool)
	if err != nil {
		return "", "", fmt.Errorf("%s not found on PATH: %w", tool, err)
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return bin, "", fmt.Errorf("running %s --version: %w", tool, err)
	}

	line, _, _ := strings.Cut(strings.TrimSpace(out.String()), "\n")
	return bin, strings.TrimSpace(line), nil
}

// CheckVersion reports whether version satisfies constraint. A leading "v"
// is tolerated, as printed by `node --version`.
func CheckVersion(version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return c.Check(v), nil
}

// Probe checks one requirement against the installed tool.
func Probe(ctx context.Context, req Requirement) ToolStatus {
	st := ToolStatus{Tool: req.Tool, Constraint: req.Constraint, Optional: req.Optional}

	bin, version, err := ToolVersion(ctx, req.Tool)
	st.Path = bin
	if err != nil {
		st.Err = err.Error()
		return st
	}
	st.Version = version

	ok, err := CheckVersion(version, req.Constraint)
	if err != nil {
		st.Err = err.Error()
		return st
	}
	st.Satisfied = ok
	return st
}
