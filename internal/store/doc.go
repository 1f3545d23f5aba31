// Package store provides session-scoped string key/value stores used to
// persist the translation cache between runs: SQLite, a JSON file, or
// process memory.
package store
