package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/nprompt/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) configCmd() *cobra.Command {
	var write string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration after the config file and NPROMPT_* environment
variables have been applied. With --write it is saved to a file instead,
which is a convenient way to start a config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write != "" {
				if err := config.Save(write, a.cfg); err != nil {
					return err
				}
				cmd.Printf("Configuration written to %s\n", write)
				return nil
			}

			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return errors.Wrap(err, "marshaling config")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&write, "write", "w", "", "Save the effective configuration to this path")
	return cmd
}
