// Package installer runs the project's package manager: npm or yarn,
// chosen from the lock file in the project directory unless configured.
package installer
