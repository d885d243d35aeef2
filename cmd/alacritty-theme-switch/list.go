package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tichopad/alacritty-theme-switch-sub000/internal/themes"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available themes and which one is active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(newAppContext(rootFlags), func(app *appContext) error {
				listed := app.manager.ListThemes()
				if opts.jsonOutput {
					return renderListJSON(cmd, listed)
				}
				return renderListTable(cmd, listed)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderListTable(cmd *cobra.Command, listed []themes.Theme) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "THEME\tACTIVE\tPATH")
	for _, theme := range listed {
		marker := ""
		if theme.Active != nil && *theme.Active {
			marker = "*"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", theme.Label, marker, theme.Path)
	}
	return writer.Flush()
}

type themeJSON struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

func renderListJSON(cmd *cobra.Command, listed []themes.Theme) error {
	out := make([]themeJSON, len(listed))
	for i, theme := range listed {
		out[i] = themeJSON{
			Label:  theme.Label,
			Path:   theme.Path,
			Active: theme.Active != nil && *theme.Active,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
