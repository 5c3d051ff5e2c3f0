package commands

import (
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func (a *app) sayCmd() *cobra.Command {
	var (
		style string
		wrap  bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "say <message>...",
		Short: "Print a styled message",
		Long: `Prints a message in one of the prompt styles: plain, alert, info, warn
or error. With --wrap the message is wrapped at --width columns between two
horizontal rules.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := strings.Join(args, " ")
			p := a.session.Printer()

			if wrap {
				p.Wrap(msg, width, true)
				return nil
			}

			switch style {
			case "plain", "":
				p.Echo(msg, "\n")
			case "alert":
				p.Alert(msg)
			case "info":
				p.Info(msg)
			case "warn", "warning":
				p.Warn(msg)
			case "error":
				p.Error(msg)
			default:
				return errors.Newf("unknown style %q", style)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", "plain", "Message style: plain, alert, info, warn or error")
	cmd.Flags().BoolVarP(&wrap, "wrap", "w", false, "Wrap the message between horizontal rules")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap width (default from config)")
	return cmd
}

func (a *app) ruleCmd() *cobra.Command {
	var (
		width int
		char  string
	)

	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Draw a horizontal rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r rune
			if char != "" {
				if utf8.RuneCountInString(char) != 1 {
					return errors.Newf("--char must be a single character, got %q", char)
				}
				r, _ = utf8.DecodeRuneInString(char)
			}
			a.session.Printer().HorizontalRule(width, r)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Rule width (default from config)")
	cmd.Flags().StringVar(&char, "char", "", "Rule character (default from config)")
	return cmd
}

func (a *app) pauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Wait for a key press",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.Printer().Pause()
		},
	}
}
