// Package project inspects an existing JavaScript project directory to
// derive default answers for the setup questions.
package project
