package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/morsetree/internal/morse/service"
	"github.com/msto63/morsetree/pkg/core/config"
	coreerr "github.com/msto63/morsetree/pkg/core/errors"
	"github.com/msto63/morsetree/pkg/core/logging"
)

const (
	usageLine       = "USAGE: morse [-e or -d] [tree-file]"
	invalidTreeLine = "ERROR: Invalid tree file."
)

// app carries the state shared by all commands of one invocation
type app struct {
	cfgFile string
	verbose bool
	encode  bool
	decode  bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg    *config.Config
	logger *logging.Logger
}

// Execute runs the morse command line with the process arguments and streams
func Execute(ctx context.Context) error {
	return ExecuteArgs(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// ExecuteArgs runs the command line with explicit arguments and streams.
// Usage and tree errors are reported on stdout with their fixed messages.
func ExecuteArgs(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logging.Discard(),
	}

	// cobra falls back to os.Args for a nil slice
	if args == nil {
		args = []string{}
	}

	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.report(err)
	}
	return err
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "morse (-e|-d) [tree-file]",
		Short: "Translate text to and from Morse code",
		Long: `morse reads standard input line by line and writes one encoded (-e)
or decoded (-d) line per input line.

The code alphabet is a binary tree written as a one-line s-expression,
e.g. "((I E A) * (N T M))": dots go left, dashes go right and the root
is labeled "*". Without a tree file the international tree for A-Z
and 0-9 is used.

A tree file named like a subcommand (table, play, version) has to be
given with a path, e.g. "morse -e ./table".`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return coreerr.Newf(coreerr.CodeUsage, "unexpected arguments %q", args[1:])
			}
			return nil
		},
		RunE: a.runTranslate,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return coreerr.Wrap(err, "invalid flag").WithCode(coreerr.CodeUsage)
	})

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $MORSE_CONFIG or ./morse.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging on stderr")
	rootCmd.Flags().BoolVarP(&a.encode, "encode", "e", false, "encode plain text to code")
	rootCmd.Flags().BoolVarP(&a.decode, "decode", "d", false, "decode code to plain text")

	rootCmd.AddCommand(
		a.newTableCmd(),
		a.newPlayCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads the configuration and builds the logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
		if err == nil {
			a.cfg.ApplyEnv()
		}
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return coreerr.Wrap(err, "failed to load configuration").WithCode(coreerr.CodeConfigError)
	}

	level := a.cfg.General.LogLevel
	if a.verbose {
		level = "debug"
	}

	a.logger = logging.NewLogger(logging.Config{
		Name:   "morse",
		Level:  level,
		Format: a.cfg.General.LogFormat,
		Output: a.stderr,
	}).WithFields(logging.Fields{
		"run_id":  uuid.NewString(),
		"command": cmd.Name(),
	})

	a.logger.Debug("Configuration loaded", "tree_file", a.cfg.Tree.File)
	return nil
}

// treePath prefers the command line argument over the configured file
func (a *app) treePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.Tree.File
}

func (a *app) runTranslate(cmd *cobra.Command, args []string) error {
	if a.encode == a.decode {
		return coreerr.New(coreerr.CodeUsage, "exactly one of -e or -d is required")
	}

	mode := service.ModeEncode
	if a.decode {
		mode = service.ModeDecode
	}

	root, err := service.LoadTree(a.treePath(args), a.logger)
	if err != nil {
		return err
	}

	translator, err := service.NewTranslator(service.Config{
		Mode:   mode,
		Tree:   root,
		Logger: a.logger,
	})
	if err != nil {
		return err
	}

	stats, err := translator.Run(cmd.Context(), a.stdin, a.stdout)
	a.logger.Debug("Translation finished", "mode", translator.Mode().String(), "lines", stats.Lines)
	return err
}

// report prints the user-visible line for err
func (a *app) report(err error) {
	switch {
	case errors.Is(err, context.Canceled):
		return
	case coreerr.HasCode(err, coreerr.CodeInvalidTree):
		fmt.Fprintln(a.stdout, invalidTreeLine)
	case coreerr.HasCode(err, coreerr.CodeUsage), coreerr.HasCode(err, coreerr.CodeConfigError):
		fmt.Fprintln(a.stdout, usageLine)
	default:
		fmt.Fprintf(a.stderr, "ERROR: %v\n", err)
	}
	a.logger.Debug("Command failed", "code", coreerr.GetCode(err).String(), "error", err)
}
