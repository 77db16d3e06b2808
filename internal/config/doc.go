// Package config manages user-level settings stored at ~/.lintup/config.yaml
// and LINTUP_* environment overrides: source and output directories, the
// tsconfig include root, the preferred package installer and the log level.
// Capture turns the loaded values into a Settings snapshot for one run.
package config
