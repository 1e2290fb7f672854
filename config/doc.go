// Package config loads, normalizes, and validates firecatalog settings.
//
// Settings come from built-in defaults, an optional TOML or YAML file, and
// FIRECATALOG_* environment variables, in increasing priority. Command line
// flags are applied on top by the CLI. The keyword price table and formula
// constants live here so that price changes never require a rebuild.
package config
