package config

import (
	"github.com/arthur-debert/npmstage/pkg/logging"
)

// DefaultTool is the package manager executable looked up on PATH
const DefaultTool = "npm"

// Defaults are the values a new builder starts from.
type Defaults struct {
	ProjectDir string
	TargetDir  string
	Profile    Profile
	// NodeEnv is the raw NODE_ENV override. It only applies when
	// NodeEnvSet is true; an empty value that is set is kept as is.
	NodeEnv    string
	NodeEnvSet bool
	Tool       string
}

// ResolveDefaults reads the directory hints, the profile and the NODE_ENV
// override from env.
//
// The project directory falls back to the current directory and the target
// directory falls back to the project directory, so a builder that is never
// configured works in place. An unparseable profile is logged and treated as
// debug.
func ResolveDefaults(env Environment) Defaults {
	d := Defaults{
		ProjectDir: Getenv(env, EnvProjectDir),
		TargetDir:  Getenv(env, EnvTargetDir),
		Tool:       Getenv(env, EnvTool),
	}
	if env != nil {
		d.NodeEnv, d.NodeEnvSet = env.LookupEnv(EnvNodeEnv)
	}
	if d.ProjectDir == "" {
		d.ProjectDir = "."
	}
	if d.TargetDir == "" {
		d.TargetDir = d.ProjectDir
	}
	if d.Tool == "" {
		d.Tool = DefaultTool
	}

	profile, err := ParseProfile(Getenv(env, EnvProfile))
	if err != nil {
		logger := logging.GetLogger("config")
		logger.Warn().Err(err).Msg("Ignoring invalid profile, using debug")
	}
	d.Profile = profile

	return d
}
