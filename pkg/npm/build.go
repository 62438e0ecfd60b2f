package npm

import (
	"io"

	"github.com/arthur-debert/npmstage/pkg/config"
	"github.com/arthur-debert/npmstage/pkg/executor"
	"github.com/arthur-debert/npmstage/pkg/filesystem"
	"github.com/arthur-debert/npmstage/pkg/logging"
	"github.com/arthur-debert/npmstage/pkg/types"
	"github.com/rs/zerolog"
)

// State is the install state of a Build
type State int

const (
	// NotInstalled means the target has not been staged and installed since
	// the directories were last set
	NotInstalled State = iota
	// Installed means staging and install both succeeded for the current
	// directories
	Installed
)

func (s State) String() string {
	switch s {
	case NotInstalled:
		return "not-installed"
	case Installed:
		return "installed"
	default:
		return "unknown"
	}
}

// Options contains the collaborators of a Build. Every field is optional.
type Options struct {
	// Env supplies the defaults; the process environment when nil
	Env config.Environment
	// FS is used for staging; the OS filesystem when nil
	FS types.FS
	// Runner starts the package manager; an executor.Runner when nil
	Runner types.Runner
	// LookPath resolves Tool; exec.LookPath when nil
	LookPath types.LookPathFunc
	// Tool overrides the package manager executable name
	Tool string

	Stdout io.Writer
	Stderr io.Writer
	// Logger defaults to the "npm" component logger
	Logger *zerolog.Logger
}

// Build is a builder for an npm runner configuration
type Build struct {
	projectDir string
	targetDir  string
	copy       CopyPolicy
	nodeEnv    NodeEnv
	profile    config.Profile
	state      State

	tool     string
	fs       types.FS
	runner   types.Runner
	lookPath types.LookPathFunc
	stdout   io.Writer
	stderr   io.Writer
	logger   zerolog.Logger
}

// New creates a Build with defaults taken from opts.Env. The project
// directory comes from NPMSTAGE_PROJECT_DIR or the current directory, the
// target directory from NPMSTAGE_TARGET_DIR or the project directory, and
// NODE_ENV from the NODE_ENV override or the build profile.
func New(opts Options) *Build {
	env := opts.Env
	if env == nil {
		env = config.OSEnvironment()
	}
	defaults := config.ResolveDefaults(env)

	logger := logging.GetLogger("npm")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	b := &Build{
		projectDir: defaults.ProjectDir,
		targetDir:  defaults.TargetDir,
		copy:       NoCopy(),
		nodeEnv:    defaultNodeEnv(defaults.NodeEnv, defaults.NodeEnvSet, defaults.Profile),
		profile:    defaults.Profile,
		state:      NotInstalled,
		tool:       defaults.Tool,
		fs:         opts.FS,
		runner:     opts.Runner,
		lookPath:   opts.LookPath,
		stdout:     opts.Stdout,
		stderr:     opts.Stderr,
		logger:     logger,
	}
	if opts.Tool != "" {
		b.tool = opts.Tool
	}
	if b.fs == nil {
		b.fs = filesystem.NewOS()
	}
	if b.runner == nil {
		b.runner = executor.New(executor.Options{Logger: &logger})
	}
	if b.lookPath == nil {
		b.lookPath = executor.LookPath
	}
	return b
}

// ProjectDirectory sets where the npm project is read from. Any earlier
// install is invalidated.
func (b *Build) ProjectDirectory(dir string) *Build {
	b.projectDir = dir
	b.invalidate()
	return b
}

// TargetDirectory sets where the project is staged and where npm runs. Any
// earlier install is invalidated.
//
// When it differs from the project directory, CopyAll or CopyItems must be
// called before running scripts.
func (b *Build) TargetDirectory(dir string) *Build {
	b.targetDir = dir
	b.invalidate()
	return b
}

// CopyAll stages every top-level entry of the project directory except
// node_modules. Has no effect when both directories are the same.
func (b *Build) CopyAll() *Build {
	b.copy = CopyAllEntries()
	return b
}

// CopyItems stages exactly the given paths, which must be relative to the
// project directory. Has no effect when both directories are the same.
func (b *Build) CopyItems(items ...string) *Build {
	b.copy = CopyExplicit(items...)
	return b
}

// NodeEnv sets the NODE_ENV value. "production" and "development" are the
// well-known modes; anything else is passed through as is.
func (b *Build) NodeEnv(value string) *Build {
	b.nodeEnv = NodeEnv(value)
	return b
}

// Profile sets the build profile, which selects `npm ci` over `npm install`.
// It does not change a NODE_ENV value that was already resolved.
func (b *Build) Profile(p config.Profile) *Build {
	b.profile = p
	return b
}

// ProjectDir returns the project directory
func (b *Build) ProjectDir() string { return b.projectDir }

// TargetDir returns the target directory
func (b *Build) TargetDir() string { return b.targetDir }

// Policy returns the copy policy
func (b *Build) Policy() CopyPolicy { return b.copy }

// Mode returns the NODE_ENV value used for invocations
func (b *Build) Mode() NodeEnv { return b.nodeEnv }

// BuildProfile returns the build profile
func (b *Build) BuildProfile() config.Profile { return b.profile }

// State returns the install state
func (b *Build) State() State { return b.state }

// Installed reports whether the target is staged and installed
func (b *Build) Installed() bool { return b.state == Installed }

func (b *Build) invalidate() {
	if b.state != NotInstalled {
		b.logger.Debug().
			Str("project", b.projectDir).
			Str("target", b.targetDir).
			Msg("Directory changed, install invalidated")
	}
	b.state = NotInstalled
}
