// Package log configures the process-wide zerolog logger. Diagnostics go to
// stderr in console format so they never mix with command output on stdout.
package log
