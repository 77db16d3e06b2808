package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Installer wraps one package manager CLI.
type Installer interface {
	// Name returns the backend identifier ("npm" or "yarn").
	Name() string
	// Init creates a default package.json in dir.
	Init(ctx context.Context, dir string) error
	// AddDev installs pkgs as development dependencies of the project in dir
	// with a single subprocess call.
	AddDev(ctx context.Context, dir string, pkgs []string) error
	// ScriptRunner returns the prefix used to run a package.json script,
	// e.g. "npm run".
	ScriptRunner() string
}

// Supported installer identifiers.
const (
	NameNpm  = "npm"
	NameYarn = "yarn"
)

// Lock files that identify the installer a project already uses.
const (
	YarnLock = "yarn.lock"
	NpmLock  = "package-lock.json"
)

// DefaultName is used when neither configuration nor a lock file decides.
const DefaultName = NameYarn

// Dispatch returns the Installer for name, streaming subprocess output to
// the process's stdout and stderr. Unknown names produce an installer whose
// operations fail.
func Dispatch(name string) Installer {
	return New(name, nil, nil)
}

// New is like Dispatch but streams subprocess output to the given writers.
func New(name string, stdout, stderr io.Writer) Installer {
	switch name {
	case NameNpm:
		return &Npm{Stdout: stdout, Stderr: stderr}
	case NameYarn:
		return &Yarn{Stdout: stdout, Stderr: stderr}
	default:
		return &unknownInstaller{name: name}
	}
}

// Detect picks the backend name for the project in dir. A non-empty
// configured value wins; otherwise yarn.lock selects yarn, package-lock.json
// selects npm, and DefaultName is used when neither exists.
func Detect(dir, configured string) string {
	if configured != "" {
		return configured
	}
	switch LockFile(dir) {
	case YarnLock:
		return NameYarn
	case NpmLock:
		return NameNpm
	default:
		return DefaultName
	}
}

// LockFile returns the name of the lock file found in dir, or "" when there
// is none. yarn.lock takes precedence.
func LockFile(dir string) string {
	for _, name := range []string{YarnLock, NpmLock} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return name
		}
	}
	return ""
}

// Valid reports whether name is a supported backend.
func Valid(name string) bool {
	return name == NameNpm || name == NameYarn
}

type unknownInstaller struct {
	name string
}

func (u *unknownInstaller) Name() string { return u.name }

func (u *unknownInstaller) Init(context.Context, string) error { return u.err() }

func (u *unknownInstaller) AddDev(context.Context, string, []string) error { return u.err() }

func (u *unknownInstaller) ScriptRunner() string { return "" }

func (u *unknownInstaller) err() error {
	return fmt.Errorf("unknown installer %q: supported installers are %q and %q", u.name, NameNpm, NameYarn)
}
