// Package manifest reads, patches and writes a project's package.json. It
// keeps the file's existing key order, merges generated scripts and hook
// sections into it, validates the result against an embedded JSON schema and
// replaces the file atomically.
package manifest
