package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tichopad/alacritty-theme-switch-sub000/internal/themes"
	"github.com/tichopad/alacritty-theme-switch-sub000/internal/tui"
)

func runPicker(cmd *cobra.Command, flags *rootFlags) error {
	return run(newAppContext(flags), func(app *appContext) error {
		model := tui.NewModel(app.manager.ListThemes())
		program := tea.NewProgram(model, tea.WithAltScreen())

		final, err := program.Run()
		if err != nil {
			return err
		}

		selected := final.(tui.Model).Selected()
		if selected == nil {
			return nil
		}

		return run(app.manager.ApplyTheme(*selected), func(applied themes.Theme) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Applied theme %s\n", applied.Label)
			return nil
		})
	})
}
