// Package document builds configuration documents as typed values and
// serializes them to the formats the JavaScript toolchain consumes: pretty
// printed JSON (tsconfig.json, package.json) and CommonJS modules that
// export a JSON literal (.eslintrc.js). Object keeps insertion order so
// generated files are stable and existing manifests round-trip without
// their keys being reshuffled.
package document
