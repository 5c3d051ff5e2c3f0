package commands

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/nprompt/input"
	"github.com/spf13/cobra"
)

func (a *app) yesNoCmd() *cobra.Command {
	var def string

	cmd := &cobra.Command{
		Use:   "yesno [message]",
		Short: "Ask a yes/no question and print true or false",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []input.Option
			if def != "" {
				v, ok := input.YesNoTable().Lookup(strings.ToLower(def), false)
				if !ok {
					return errors.Newf("--default must be yes or no, got %q", def)
				}
				opts = append(opts, input.WithDefault(v))
			}

			ok, err := a.session.AskYesNo(message(args), opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}

	cmd.Flags().StringVarP(&def, "default", "d", "", "Answer used on a blank line (yes or no)")
	return cmd
}

// numberFlags are the flags shared by int and float.
type numberFlags struct {
	def      string
	min, max float64
}

func (n *numberFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&n.def, "default", "d", "", "Answer used on a blank line")
	cmd.Flags().Float64Var(&n.min, "min", 0, "Smallest accepted value")
	cmd.Flags().Float64Var(&n.max, "max", 0, "Largest accepted value")
}

// options only applies bounds that were given on the command line.
func (n *numberFlags) options(cmd *cobra.Command) []input.Option {
	var opts []input.Option
	if n.def != "" {
		opts = append(opts, input.WithDefault(n.def))
	}
	if cmd.Flags().Changed("min") {
		opts = append(opts, input.WithMin(n.min))
	}
	if cmd.Flags().Changed("max") {
		opts = append(opts, input.WithMax(n.max))
	}
	return opts
}

func (n *numberFlags) validate(cmd *cobra.Command, parse func(string) error) error {
	if n.def != "" {
		if err := parse(n.def); err != nil {
			return errors.Wrapf(err, "--default %q", n.def)
		}
	}
	if cmd.Flags().Changed("min") && cmd.Flags().Changed("max") && n.min > n.max {
		return errors.Newf("--min %v is greater than --max %v", n.min, n.max)
	}
	return nil
}

func (a *app) intCmd() *cobra.Command {
	var flags numberFlags

	cmd := &cobra.Command{
		Use:   "int [message]",
		Short: "Ask for an integer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := flags.validate(cmd, func(v string) error {
				_, err := input.ParseInt(v)
				return err
			})
			if err != nil {
				return err
			}
			n, err := a.session.AskInt(message(args), flags.options(cmd)...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func (a *app) floatCmd() *cobra.Command {
	var flags numberFlags

	cmd := &cobra.Command{
		Use:   "float [message]",
		Short: "Ask for a floating point number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := flags.validate(cmd, func(v string) error {
				_, err := input.ParseFloat(v)
				return err
			})
			if err != nil {
				return err
			}
			n, err := a.session.AskFloat(message(args), flags.options(cmd)...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func (a *app) stringCmd() *cobra.Command {
	var def string

	cmd := &cobra.Command{
		Use:   "string [message]",
		Short: "Ask for free text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []input.Option
			if def != "" {
				opts = append(opts, input.WithDefault(def))
			}
			s, err := a.session.AskString(message(args), opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&def, "default", "d", "", "Answer used on a blank line")
	return cmd
}

func (a *app) passCmd() *cobra.Command {
	var (
		mask   string
		hidden bool
	)

	cmd := &cobra.Command{
		Use:   "pass [message]",
		Short: "Read a password with masked echo",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []input.Option
			switch {
			case hidden:
				opts = append(opts, input.WithHiddenInput())
			case mask != "":
				if utf8.RuneCountInString(mask) != 1 {
					return errors.Newf("--mask must be a single character, got %q", mask)
				}
				r, _ := utf8.DecodeRuneInString(mask)
				opts = append(opts, input.WithMask(r))
			}

			pass, err := a.session.AskPass(message(args), opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pass)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mask, "mask", "m", "", "Character echoed per typed character (default from config)")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Echo nothing while typing")
	return cmd
}

func (a *app) captureCmd() *cobra.Command {
	var (
		length  int
		complex bool
	)

	cmd := &cobra.Command{
		Use:   "capture [message]",
		Short: "Ask the user to retype a random challenge",
		Long: `Shows a random challenge and asks for it to be typed back exactly.
Prints true on a match and false otherwise. Queued answers are never used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []input.Option
			if length > 0 {
				opts = append(opts, input.WithLength(length))
			}
			if complex {
				opts = append(opts, input.WithComplexChallenge())
			}

			ok, err := a.session.AskCapture(message(args), opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 0, "Challenge length (default from config)")
	cmd.Flags().BoolVar(&complex, "complex", false, "Use all printable ASCII characters")
	return cmd
}
