// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// The main entry point is [GetStructuredConfig], which builds the merged
// [StructuredConfig], fills defaults, and validates the result. Merge
// priority is env > flags > JSON: a value set by an earlier source is not
// overwritten by a later one.
package config
