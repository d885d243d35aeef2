package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tichopad/alacritty-theme-switch-sub000/internal/remote"
	"github.com/tichopad/alacritty-theme-switch-sub000/internal/settings"
	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/result"
)

type downloadOptions struct {
	url   string
	ref   string
	clear bool
}

func newDownloadCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &downloadOptions{}

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download themes from the remote repository into the themes directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			downloaded := result.FlatMap(loadSettings(rootFlags), func(resolved settings.Settings) result.Result[[]string] {
				return runDownload(cmd, resolved, opts)
			})
			return run(downloaded, func(paths []string) error {
				fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %d themes\n", len(paths))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "Theme repository URL (overrides settings)")
	cmd.Flags().StringVar(&opts.ref, "ref", "", "Branch to download from (overrides settings)")
	cmd.Flags().BoolVar(&opts.clear, "clear", false, "Delete existing theme files first")

	return cmd
}

func runDownload(cmd *cobra.Command, resolved settings.Settings, opts *downloadOptions) result.Result[[]string] {
	repo := resolved.Remote
	if opts.url != "" {
		repo.URL = opts.url
	}
	if opts.ref != "" {
		repo.Ref = opts.ref
	}

	// The themes directory is created here at the boundary; the core treats
	// a missing directory as an error.
	if err := os.MkdirAll(resolved.ThemesDir, 0o755); err != nil {
		return result.Err[[]string](err)
	}

	if opts.clear {
		cleared := remote.ClearDirectory(resolved.ThemesDir)
		if cleared.IsErr() {
			return cleared
		}
	}

	src := &remote.GitSource{URL: repo.URL, Ref: repo.Ref, Subdir: repo.Subdir}
	if strings.HasPrefix(repo.URL, "http://") || strings.HasPrefix(repo.URL, "https://") {
		// Shallow clone over the wire; local mirrors are cloned in full.
		src.Depth = 1
	}
	defer src.Close()

	return remote.DownloadAll(cmd.Context(), src, resolved.ThemesDir)
}
