package config

import _ "embed"

// DefaultConfigYAML is the built-in configuration, compiled into the binary.
// External config files and BUDGET_* environment variables override it.
//
//go:embed default.yaml
var DefaultConfigYAML []byte
