package cli

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/npmstage/internal/version"
	"github.com/arthur-debert/npmstage/pkg/filesystem"
	"github.com/arthur-debert/npmstage/pkg/npm"
	"github.com/arthur-debert/npmstage/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	flags := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "run [script...]",
		Short: MsgRunShort,
		Long: `Run stages the project into the target directory, installs its dependencies
there (npm install, or npm ci with --release) and runs each script in order
with npm run. Without arguments the scripts from the settings are run.`,
		Example: `  npmstage run build
  npmstage run --project-dir web --target-dir build/web --copy-all lint build
  //go:generate go run github.com/arthur-debert/npmstage/cmd/npmstage run --copy-all build`,
		RunE: runWithRenderer(opts, func(cmd *cobra.Command, args []string, r ui.Renderer) error {
			s, err := settingsFor(cmd, opts, flags)
			if err != nil {
				return err
			}
			scripts := args
			if len(scripts) == 0 {
				scripts = s.Scripts
			}
			if len(scripts) == 0 {
				return noScriptsError()
			}

			b := newBuild(cmd, s)
			if err := b.RunScripts(scripts...); err != nil {
				return err
			}

			steps := []string{npm.InstallSubcommand(b.BuildProfile())}
			for _, script := range scripts {
				steps = append(steps, npm.SubcommandRun+" "+script)
			}
			return r.RenderReport(report("run", b, steps))
		}),
	}
	flags.register(cmd, true)
	return cmd
}

func newInstallCmd(opts *globalOptions) *cobra.Command {
	flags := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: MsgInstallShort,
		Args:  cobra.NoArgs,
		RunE: runWithRenderer(opts, func(cmd *cobra.Command, args []string, r ui.Renderer) error {
			s, err := settingsFor(cmd, opts, flags)
			if err != nil {
				return err
			}
			b := newBuild(cmd, s)
			if err := b.Install(); err != nil {
				return err
			}
			return r.RenderReport(report("install", b, []string{npm.InstallSubcommand(b.BuildProfile())}))
		}),
	}
	flags.register(cmd, true)
	return cmd
}

func newStageCmd(opts *globalOptions) *cobra.Command {
	flags := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "stage",
		Short: MsgStageShort,
		Long: `Stage copies the selected project entries into the target directory without
running the package manager. Each staged entry replaces the target's copy.`,
		Args: cobra.NoArgs,
		RunE: runWithRenderer(opts, func(cmd *cobra.Command, args []string, r ui.Renderer) error {
			s, err := settingsFor(cmd, opts, flags)
			if err != nil {
				return err
			}
			b := newBuild(cmd, s)
			if err := npm.Stage(filesystem.NewOS(), b.ProjectDir(), b.TargetDir(), b.Policy()); err != nil {
				return err
			}
			if filepath.Clean(b.ProjectDir()) == filepath.Clean(b.TargetDir()) {
				return r.RenderMessage(MsgSameDirectory)
			}

			rep := report("stage", b, nil)
			rep.NodeEnv = ""
			rep.Steps = b.Policy().Paths()
			if len(rep.Steps) == 0 {
				rep.Message = "copied all entries except " + npm.DependencyDir
			}
			return r.RenderReport(rep)
		}),
	}
	flags.register(cmd, false)
	return cmd
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long: `Config prints the settings after merging the settings file, the environment
and the built-in defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settingsFor(cmd, opts, nil)
			if err != nil {
				return err
			}
			data, err := s.Encode(format)
			if err != nil {
				return err
			}
			if s.Source != "" {
				log.Info().Str("path", s.Source).Msg("Loaded settings file")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml or yaml")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(npmstage completion bash)

Zsh:
  $ npmstage completion zsh > "${fpath[1]}/_npmstage"

Fish:
  $ npmstage completion fish | source

PowerShell:
  PS> npmstage completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func report(command string, b *npm.Build, steps []string) *ui.Report {
	return &ui.Report{
		Command: command,
		Project: b.ProjectDir(),
		Target:  b.TargetDir(),
		NodeEnv: b.Mode().String(),
		Steps:   steps,
	}
}
