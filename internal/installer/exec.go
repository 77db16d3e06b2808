package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/lintup-dev/lintup/internal/log"
)

// Npm installs through the npm CLI.
type Npm struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (n *Npm) Name() string { return NameNpm }

// Init runs `npm init -y`.
func (n *Npm) Init(ctx context.Context, dir string) error {
	return run(ctx, NameNpm, dir, n.Stdout, n.Stderr, "init", "-y")
}

// AddDev runs `npm install --save-dev <pkgs...>`.
func (n *Npm) AddDev(ctx context.Context, dir string, pkgs []string) error {
	args := append([]string{"install", "--save-dev"}, pkgs...)
	return run(ctx, NameNpm, dir, n.Stdout, n.Stderr, args...)
}

func (n *Npm) ScriptRunner() string { return "npm run" }

// Yarn installs through the yarn (classic) CLI.
type Yarn struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (y *Yarn) Name() string { return NameYarn }

// Init runs `yarn init -y`.
func (y *Yarn) Init(ctx context.Context, dir string) error {
	return run(ctx, NameYarn, dir, y.Stdout, y.Stderr, "init", "-y")
}

// AddDev runs `yarn add --dev <pkgs...>`.
func (y *Yarn) AddDev(ctx context.Context, dir string, pkgs []string) error {
	args := append([]string{"add", "--dev"}, pkgs...)
	return run(ctx, NameYarn, dir, y.Stdout, y.Stderr, args...)
}

func (y *Yarn) ScriptRunner() string { return "yarn" }

// ExitError reports a package manager that ran but exited non-zero.
type ExitError struct {
	Tool     string
	Args     []string
	ExitCode int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s %s exited with status %d", e.Tool, strings.Join(e.Args, " "), e.ExitCode)
}

// run executes tool with args in dir and blocks until it exits. Output is
// streamed to the given writers.
func run(ctx context.Context, tool, dir string, stdout, stderr io.Writer, args ...string) error {
	bin, err := exec.LookPath(tool)
	if err != nil {
		return fmt.Errorf("%s is required: %w", tool, err)
	}

	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	logger := log.WithComponent("installer")
	logger.Debug().Str("tool", tool).Strs("args", args).Str("dir", dir).Msg("running package manager")

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Tool: tool, Args: args, ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("executing %s: %w", tool, err)
	}
	return nil
}
