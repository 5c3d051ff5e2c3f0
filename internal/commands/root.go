package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/simonhull/firebird-suite/nprompt"
	"github.com/simonhull/firebird-suite/nprompt/config"
	"github.com/simonhull/firebird-suite/nprompt/input"
	"github.com/simonhull/firebird-suite/nprompt/logger"
	"github.com/simonhull/firebird-suite/nprompt/terminal"
	"github.com/spf13/cobra"
)

// TerminalFactory opens the terminal prompts are drawn on.
type TerminalFactory func() terminal.Terminal

// app holds what every subcommand shares once the root flags are parsed.
type app struct {
	newTerminal TerminalFactory

	configPath string
	verbose    bool
	queue      []string

	cfg     *config.Config
	session *input.Session
}

// RootCmd creates and returns the root command for the nprompt CLI. Prompts
// are drawn on stderr so stdout carries only the answer.
func RootCmd() *cobra.Command {
	return newRootCmd(consoleOn(os.Stdin, os.Stderr))
}

// consoleOn opens a Console reading in and drawing on out.
func consoleOn(in io.Reader, out io.Writer) TerminalFactory {
	return func() terminal.Terminal { return terminal.NewConsoleOn(in, out) }
}

func newRootCmd(newTerminal TerminalFactory) *cobra.Command {
	a := &app{newTerminal: newTerminal}

	cmd := &cobra.Command{
		Use:   "nprompt",
		Short: "Interactive prompts for shell scripts",
		Long: `nprompt asks typed, validated questions on the terminal and prints the
answer on stdout, so shell scripts can use the same prompts as Go programs.
Prompts and diagnostics go to stderr, so ans=$(nprompt yesno) captures only
the answer.

Answers can be scripted with --queue; each prompt takes the next queued
answer before reading the terminal:

  nprompt --queue yes yesno "Deploy now?"
  nprompt int "Replicas" --min 1 --max 9 --default 3
  nprompt menu --file deploy.yaml`,
		Version:           nprompt.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log prompt events to stderr")
	cmd.PersistentFlags().StringArrayVarP(&a.queue, "queue", "q", nil, "Answer to use before reading the terminal (repeatable)")

	cmd.AddCommand(
		a.yesNoCmd(),
		a.intCmd(),
		a.floatCmd(),
		a.stringCmd(),
		a.passCmd(),
		a.captureCmd(),
		a.menuCmd(),
		a.sayCmd(),
		a.ruleCmd(),
		a.pauseCmd(),
		a.configCmd(),
		versionCmd(),
	)

	return cmd
}

// setup loads configuration and opens the prompt session.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	level := logger.LevelError
	if a.verbose {
		level = logger.LevelDebug
	}
	log := logger.NewLogger(level, cmd.ErrOrStderr())
	logger.SetDefault(log)

	a.cfg = cfg
	a.session = input.NewSession(a.newTerminal(), input.WithConfig(cfg), input.WithLogger(log))
	a.session.QueueArguments(a.queue...)

	log.Debug("session ready",
		logger.F("command", cmd.Name()),
		logger.F("config", a.configPath),
		logger.F("queued", len(a.queue)))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nprompt v%s\n", nprompt.Version)
		},
	}
}

// message returns the prompt text given as the first argument, if any.
func message(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
