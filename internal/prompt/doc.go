// Package prompt asks the setup questions on a terminal and turns the
// answers into feature flags.
package prompt
