// Package resolve derives everything lintup generates from three feature
// flags: the ESLint config, the optional tsconfig.json, the optional Babel
// config, the ordered list of development packages to install and the
// package.json scripts and hook sections. Every function here is pure; the
// same flags and options always yield the same plan.
package resolve
