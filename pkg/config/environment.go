package config

import "os"

// Variables read from the environment.
const (
	EnvProjectDir = "NPMSTAGE_PROJECT_DIR"
	EnvTargetDir  = "NPMSTAGE_TARGET_DIR"
	EnvProfile    = "NPMSTAGE_PROFILE"
	EnvTool       = "NPMSTAGE_TOOL"
	EnvCopyAll    = "NPMSTAGE_COPY_ALL"
	EnvCopyItems  = "NPMSTAGE_COPY_ITEMS"
	EnvScripts    = "NPMSTAGE_SCRIPTS"

	// EnvNodeEnv is both the mode override read at construction and the
	// variable injected into every package manager invocation.
	EnvNodeEnv = "NODE_ENV"
)

// Environment provides environment variables.
type Environment interface {
	LookupEnv(key string) (string, bool)
}

type osEnvironment struct{}

func (osEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// OSEnvironment returns the process environment
func OSEnvironment() Environment {
	return osEnvironment{}
}

// MapEnvironment is an Environment backed by a map
type MapEnvironment map[string]string

// LookupEnv implements Environment
func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Getenv returns the value of key, or "" when unset
func Getenv(env Environment, key string) string {
	if env == nil {
		return ""
	}
	v, _ := env.LookupEnv(key)
	return v
}
