package commands

import (
	"fmt"

	"github.com/simonhull/firebird-suite/nprompt/logger"
	"github.com/simonhull/firebird-suite/nprompt/menu"
	"github.com/spf13/cobra"
)

func (a *app) menuCmd() *cobra.Command {
	var (
		file    string
		noClear bool
	)

	cmd := &cobra.Command{
		Use:   "menu [message]",
		Short: "Show a menu from a YAML file and print the selected key",
		Long: `Shows the menu described in a YAML file and prints the selected key.

Example menu file:

  header: Deploy
  options:
    - key: s
      label: Staging
      message: Deploying to staging
    - key: p
      label: Production
    - key: quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := menu.Load(file)
			if err != nil {
				return err
			}

			m := f.Menu(a.session.Printer())
			if noClear {
				m.SetClearOnShow(false)
			}
			a.session.Logger().Debug("menu loaded", logger.F("file", file), logger.F("options", m.Len()))

			choice, err := m.Show(a.session, message(args))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), choice)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the menu definition")
	cmd.Flags().BoolVar(&noClear, "no-clear", false, "Do not clear the screen before showing the menu")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
