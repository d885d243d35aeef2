package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	settingsPath string
	configPath   string
	backupPath   string
	themesDir    string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "alacritty-theme-switch",
		Short:         "Switch the active Alacritty color theme",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no subcommand on a terminal, open the interactive picker.
			if term.IsTerminal(int(os.Stdout.Fd())) {
				return runPicker(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.settingsPath, "settings", "", "Path to a settings file (YAML)")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the Alacritty configuration file")
	cmd.PersistentFlags().StringVarP(&flags.backupPath, "backup", "b", "", "Path for the pre-apply configuration backup")
	cmd.PersistentFlags().StringVarP(&flags.themesDir, "themes", "t", "", "Directory holding theme files")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newDownloadCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
