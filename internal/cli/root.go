package cli

import (
	"embed"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/npmstage/internal/version"
	"github.com/arthur-debert/npmstage/pkg/cobrax/topics"
	"github.com/arthur-debert/npmstage/pkg/config"
	"github.com/arthur-debert/npmstage/pkg/logging"
	"github.com/arthur-debert/npmstage/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help/*.md
var helpFiles embed.FS

// globalOptions are the persistent flags shared by all commands
type globalOptions struct {
	verbosity  int
	configFile string
	output     string

	env config.Environment
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(config.OSEnvironment())
}

func newRootCmd(env config.Environment) *cobra.Command {
	opts := &globalOptions{env: env}

	rootCmd := &cobra.Command{
		Use:     "npmstage",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Settings file (default: npmstage.toml or npmstage.yaml in the current directory)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "auto", "Output format: auto, term, text or json")

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newInstallCmd(opts))
	rootCmd.AddCommand(newStageCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	initTopics(rootCmd, env)

	return rootCmd
}

// initTopics adds the embedded help topics. Markdown is rendered with
// glamour when stdout is a terminal.
func initTopics(rootCmd *cobra.Command, env config.Environment) {
	source, err := fs.Sub(helpFiles, "help")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if ui.DetectFormat(env, os.Stdout) == ui.FormatTerminal {
		renderer = topics.NewGlamourRenderer()
	}
	if err := topics.InitializeWithOptions(rootCmd, source, topics.Options{Renderer: renderer}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}

// Execute runs the command line and returns the process exit status.
// Errors the commands already rendered are not printed again.
func Execute(rootCmd *cobra.Command, args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var rendered *renderedError
	if !stderrors.As(err, &rendered) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

// renderedError marks an error that was already shown to the user
type renderedError struct {
	err error
}

func (e *renderedError) Error() string { return e.err.Error() }
func (e *renderedError) Unwrap() error { return e.err }

// runWithRenderer creates the renderer selected by --output. The error
// returned by fn is rendered on stderr before it is handed back to cobra.
func runWithRenderer(opts *globalOptions, fn func(cmd *cobra.Command, args []string, r ui.Renderer) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		format, err := ui.ParseFormat(opts.output)
		if err != nil {
			return err
		}
		renderer, err := ui.NewRenderer(format, cmd.OutOrStdout(), opts.env)
		if err != nil {
			return err
		}
		errRenderer, err := ui.NewRenderer(format, cmd.ErrOrStderr(), opts.env)
		if err != nil {
			return err
		}

		if err := fn(cmd, args, renderer); err != nil {
			if rerr := errRenderer.RenderError(err); rerr != nil {
				log.Error().Err(rerr).Msg("Failed to render error")
				return err
			}
			return &renderedError{err: err}
		}
		return nil
	}
}
