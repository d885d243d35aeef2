package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func newLocalThemeRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	themesDir := filepath.Join(dir, "themes")
	require.NoError(t, os.Mkdir(themesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(themesDir, "nord.toml"), []byte("bg = \"#2e3440\"\n"), 0o644))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add(".")
	require.NoError(t, err)
	_, err = worktree.Commit("add themes", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

func TestDownloadCommandFetchesThemes(t *testing.T) {
	t.Parallel()

	repoDir := newLocalThemeRepo(t)
	destDir := filepath.Join(t.TempDir(), "themes")

	settingsPath := filepath.Join(t.TempDir(), "settings.yaml")
	contents := "themes: " + destDir + "\nremote:\n  url: " + repoDir + "\n  subdir: themes\n"
	require.NoError(t, os.WriteFile(settingsPath, []byte(contents), 0o644))

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"download", "--settings", settingsPath})
	require.NoError(t, cmd.Execute())

	require.Contains(t, out.String(), "Downloaded 1 themes")
	require.FileExists(t, filepath.Join(destDir, "nord.toml"))
}

func TestDownloadCommandClearRemovesStaleThemes(t *testing.T) {
	t.Parallel()

	repoDir := newLocalThemeRepo(t)
	destDir := filepath.Join(t.TempDir(), "themes")
	require.NoError(t, os.Mkdir(destDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(destDir, "stale.toml"), []byte(""), 0o644))

	settingsPath := filepath.Join(t.TempDir(), "settings.yaml")
	contents := "themes: " + destDir + "\nremote:\n  url: " + repoDir + "\n  subdir: themes\n"
	require.NoError(t, os.WriteFile(settingsPath, []byte(contents), 0o644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"download", "--settings", settingsPath, "--clear"})
	require.NoError(t, cmd.Execute())

	require.NoFileExists(t, filepath.Join(destDir, "stale.toml"))
	require.FileExists(t, filepath.Join(destDir, "nord.toml"))
}
