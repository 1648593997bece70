// Package config loads jsonstore configuration.
//
// Configuration is layered with koanf: embedded defaults, then an optional
// TOML or YAML file, then JSONSTORE_ environment variables. Command-line
// flags are applied on top by the caller.
package config
