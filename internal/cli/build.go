package cli

import (
	"github.com/arthur-debert/npmstage/pkg/config"
	"github.com/arthur-debert/npmstage/pkg/errors"
	"github.com/arthur-debert/npmstage/pkg/npm"
	"github.com/spf13/cobra"
)

// buildFlags are the flags shared by run, install and stage
type buildFlags struct {
	projectDir string
	targetDir  string
	copyAll    bool
	copyItems  []string
	nodeEnv    string
	release    bool
	tool       string
}

func (f *buildFlags) register(cmd *cobra.Command, withTool bool) {
	flags := cmd.Flags()
	flags.StringVar(&f.projectDir, "project-dir", "", "Directory holding package.json (default: current directory)")
	flags.StringVar(&f.targetDir, "target-dir", "", "Directory the project is staged into (default: the project directory)")
	flags.BoolVar(&f.copyAll, "copy-all", false, "Stage every top-level entry except node_modules")
	flags.StringSliceVar(&f.copyItems, "copy", nil, "Stage this project-relative path (repeatable)")
	if withTool {
		flags.StringVar(&f.nodeEnv, "node-env", "", "NODE_ENV for npm (default: production with --release, else development)")
		flags.BoolVar(&f.release, "release", false, "Use the release profile (npm ci, production)")
		flags.StringVar(&f.tool, "tool", "", "Package manager executable (default: npm)")
	}
	cmd.MarkFlagsMutuallyExclusive("copy-all", "copy")
}

// apply overrides s with the flags that were set on cmd
func (f *buildFlags) apply(cmd *cobra.Command, s *config.Settings) error {
	changed := cmd.Flags().Changed

	if changed("project-dir") {
		s.ProjectDir = f.projectDir
	}
	if changed("target-dir") {
		s.TargetDir = f.targetDir
	}
	if changed("copy-all") {
		s.Copy.All = f.copyAll
		if f.copyAll {
			s.Copy.Items = nil
		}
	}
	if changed("copy") {
		s.Copy.Items = f.copyItems
		s.Copy.All = false
	}
	if changed("node-env") {
		nodeEnv := f.nodeEnv
		s.NodeEnv = &nodeEnv
	}
	if changed("release") {
		if f.release {
			s.Profile = string(config.ProfileRelease)
		} else {
			s.Profile = string(config.ProfileDebug)
		}
	}
	if changed("tool") {
		s.Tool = f.tool
	}
	return s.Validate()
}

// settingsFor loads the settings and applies the command's flags
func settingsFor(cmd *cobra.Command, opts *globalOptions, flags *buildFlags) (*config.Settings, error) {
	s, err := config.LoadSettings(opts.env, config.LoadOptions{Path: opts.configFile})
	if err != nil {
		return nil, err
	}
	if flags != nil {
		if err := flags.apply(cmd, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// newBuild creates the builder for s. Package manager output goes to the
// command's stderr so stdout only carries the report.
func newBuild(cmd *cobra.Command, s *config.Settings) *npm.Build {
	b := npm.New(npm.Options{
		Env:    settingsEnvironment(s),
		Stdout: cmd.ErrOrStderr(),
		Stderr: cmd.ErrOrStderr(),
	})
	switch {
	case s.Copy.All:
		b.CopyAll()
	case len(s.Copy.Items) > 0:
		b.CopyItems(s.Copy.Items...)
	}
	return b
}

// settingsEnvironment exposes resolved settings as the builder's defaults
func settingsEnvironment(s *config.Settings) config.Environment {
	env := config.MapEnvironment{}
	set := func(key, value string) {
		if value != "" {
			env[key] = value
		}
	}
	set(config.EnvProjectDir, s.ProjectDir)
	set(config.EnvTargetDir, s.TargetDir)
	if s.NodeEnv != nil {
		env[config.EnvNodeEnv] = *s.NodeEnv
	}
	set(config.EnvProfile, s.Profile)
	set(config.EnvTool, s.Tool)
	return env
}

func noScriptsError() error {
	return errors.New(errors.ErrInvalidInput, MsgNoScripts)
}
