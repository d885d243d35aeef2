package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tichopad/alacritty-theme-switch-sub000/internal/themes"
	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/result"
)

func newApplyCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <theme-file>",
		Short: "Apply a theme by its file name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applied := result.FlatMap(newAppContext(rootFlags), func(app *appContext) result.Result[themes.Theme] {
				return app.manager.ApplyThemeByFilename(args[0])
			})
			return run(applied, func(theme themes.Theme) error {
				fmt.Fprintf(cmd.OutOrStdout(), "Applied theme %s\n", theme.Label)
				return nil
			})
		},
	}
}
