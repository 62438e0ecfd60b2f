// Package config handles configuration management for npmstage.
//
// Two layers live here. The builder in pkg/npm only needs Defaults, which
// are resolved from an injected Environment so that tests never have to
// mutate the real process environment. The CLI additionally loads Settings
// with koanf from built-in defaults, an optional TOML or YAML settings file
// and NPMSTAGE_* variables, in that order of precedence.
package config
