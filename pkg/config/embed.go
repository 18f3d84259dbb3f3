package config

import _ "embed"

// defaultConfig holds the built-in scaffolding defaults. Every name the
// orchestration uses comes from here so tests can substitute paths.
//
//go:embed scriptinit.toml
var defaultConfig []byte
