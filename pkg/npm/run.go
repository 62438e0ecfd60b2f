package npm

import (
	"github.com/arthur-debert/npmstage/pkg/config"
	"github.com/arthur-debert/npmstage/pkg/errors"
	"github.com/arthur-debert/npmstage/pkg/executor"
	"github.com/arthur-debert/npmstage/pkg/logging"
	"github.com/arthur-debert/npmstage/pkg/types"
)

const (
	// SubcommandInstall resolves and may update the lockfile
	SubcommandInstall = "install"
	// SubcommandCI installs exactly what the lockfile says
	SubcommandCI = "ci"
	// SubcommandRun runs a package.json script
	SubcommandRun = "run"
)

// InstallSubcommand returns the install subcommand for a profile
func InstallSubcommand(p config.Profile) string {
	if p.IsRelease() {
		return SubcommandCI
	}
	return SubcommandInstall
}

// Install stages the project and installs its dependencies unless that
// already happened for the current directories.
func (b *Build) Install() error {
	if b.state == Installed {
		return nil
	}
	tool, err := b.resolveTool()
	if err != nil {
		return err
	}
	return b.ensureInstalled(tool)
}

// RunScript runs `npm run <name>` in the target directory, staging and
// installing first when needed.
func (b *Build) RunScript(name string) error {
	tool, err := b.resolveTool()
	if err != nil {
		return err
	}
	if err := b.ensureInstalled(tool); err != nil {
		return err
	}

	b.logger.Info().Str("script", name).Str("dir", b.targetDir).Msg("Running npm script")
	return b.execute(tool, SubcommandRun, name)
}

// RunScripts runs the scripts in order and stops at the first failure
func (b *Build) RunScripts(names ...string) error {
	for _, name := range names {
		if err := b.RunScript(name); err != nil {
			return err
		}
	}
	return nil
}

// MustRunScript is RunScript for build programs: any failure is logged at
// fatal level and the process exits.
func (b *Build) MustRunScript(name string) *Build {
	logging.Must(b.RunScript(name), "npm script failed")
	return b
}

func (b *Build) resolveTool() (string, error) {
	path, err := b.lookPath(b.tool)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrToolNotFound, "could not find %s installation", b.tool).
			WithDetail("tool", b.tool)
	}
	return path, nil
}

func (b *Build) ensureInstalled(tool string) error {
	if b.state == Installed {
		b.logger.Debug().Str("dir", b.targetDir).Msg("Already installed, skipping")
		return nil
	}

	if err := b.fs.MkdirAll(b.targetDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "could not create target directory %s", b.targetDir).
			WithDetail("dir", b.targetDir)
	}

	if !sameDir(b.projectDir, b.targetDir) {
		if err := stage(b.fs, b.logger, b.projectDir, b.targetDir, b.copy); err != nil {
			return err
		}
	}

	sub := InstallSubcommand(b.profile)
	b.logger.Info().
		Str("subcommand", sub).
		Str("dir", b.targetDir).
		Str("node_env", b.nodeEnv.String()).
		Msg("Installing dependencies")
	if err := b.execute(tool, sub); err != nil {
		return err
	}

	b.state = Installed
	return nil
}

// execute runs the tool in the target directory with NODE_ENV set
func (b *Build) execute(tool string, args ...string) error {
	err := b.runner.Run(types.Execution{
		Path:   tool,
		Args:   args,
		Dir:    b.targetDir,
		Env:    []string{config.EnvNodeEnv + "=" + b.nodeEnv.String()},
		Stdout: b.stdout,
		Stderr: b.stderr,
	})
	if err == nil {
		return nil
	}

	if code, ok := executor.ExitCode(err); ok {
		return errors.Wrapf(err, errors.ErrProcessExit, "%s %v finished with exit code %d", b.tool, args, code).
			WithDetail("args", args).
			WithDetail("exitCode", code)
	}
	return errors.Wrapf(err, errors.ErrProcessStart, "could not start %s %v", b.tool, args).
		WithDetail("args", args)
}
