// Package scaffold applies a resolved setup to a project directory. It powers
// the "lintup init" command: writing the generated config files, creating a
// package.json when missing, installing the dev dependencies and patching
// the manifest with scripts, hooks and browser targets.
package scaffold
