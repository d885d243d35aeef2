package configfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tichopad/alacritty-theme-switch-sub000/internal/themes"
	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/errors"
)

const sampleConfig = `
[general]
import = ["themes/monokai_pro.toml"]
live_reload = true

[font]
size = 14.0

[colors.primary]
background = "#1e1e2e"
`

func writeConfig(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "alacritty.toml", sampleConfig)

	doc := ParseConfig(path).MustGet()
	require.Equal(t, []string{"themes/monokai_pro.toml"}, doc.Imports())
	require.Equal(t, 14.0, doc["font"].(map[string]any)["size"])
	require.Equal(t, "#1e1e2e", doc["colors"].(map[string]any)["primary"].(map[string]any)["background"])
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	res := ParseConfig(filepath.Join(t.TempDir(), "alacritty.toml"))
	require.True(t, res.IsErr())

	var notFound *errors.FileNotFoundError
	require.ErrorAs(t, res.UnwrapErr(), &notFound)
}

func TestParseConfigPathIsDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "alacritty.toml")
	require.NoError(t, os.Mkdir(dir, 0o755))

	res := ParseConfig(dir)
	require.True(t, res.IsErr())

	var isDir *errors.FileIsDirectoryError
	require.ErrorAs(t, res.UnwrapErr(), &isDir)
}

func TestParseConfigWrongExtension(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "alacritty.yml", "font:\n  size: 14\n")

	res := ParseConfig(path)
	require.True(t, res.IsErr())

	var notTOML *errors.FileNotTOMLError
	require.ErrorAs(t, res.UnwrapErr(), &notTOML)
}

func TestParseConfigMalformedTOML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "alacritty.toml", "[general\nimport = [")

	res := ParseConfig(path)
	require.True(t, res.IsErr())

	var notReadable *errors.FileNotReadableError
	require.ErrorAs(t, res.UnwrapErr(), &notReadable)
}

func TestCreateBackupCopiesBytes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := writeConfig(t, dir, "alacritty.toml", sampleConfig)
	backupPath := filepath.Join(dir, "alacritty.toml.backup")

	require.True(t, CreateBackup(configPath, backupPath).IsOk())

	original, err := os.ReadFile(configPath)
	require.NoError(t, err)
	backup, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	require.Equal(t, original, backup)
}

func TestCreateBackupOverwritesPreviousBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := writeConfig(t, dir, "alacritty.toml", "fresh = true\n")
	backupPath := writeConfig(t, dir, "alacritty.toml.backup", "stale = true\n")

	require.True(t, CreateBackup(configPath, backupPath).IsOk())

	backup, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	require.Equal(t, "fresh = true\n", string(backup))
}

func TestCreateBackupMissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	res := CreateBackup(filepath.Join(dir, "missing.toml"), filepath.Join(dir, "backup.toml"))
	require.True(t, res.IsErr())

	var backupErr *errors.BackupError
	require.ErrorAs(t, res.UnwrapErr(), &backupErr)
}

func TestWriteConfigMissingParentDirectory(t *testing.T) {
	t.Parallel()

	doc := Document{"general": map[string]any{}}
	res := WriteConfig(filepath.Join(t.TempDir(), "nope", "alacritty.toml"), doc)
	require.True(t, res.IsErr())

	var writeErr *errors.WriteError
	require.ErrorAs(t, res.UnwrapErr(), &writeErr)
}

func TestWriteThenParseRoundTrips(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := ParseConfig(writeConfig(t, dir, "original.toml", sampleConfig)).MustGet()

	rewritten := filepath.Join(dir, "rewritten.toml")
	require.True(t, WriteConfig(rewritten, original).IsOk())

	reparsed := ParseConfig(rewritten).MustGet()
	require.Equal(t, original, reparsed)
}

func TestCheckThemeExists(t *testing.T) {
	t.Parallel()

	known := []themes.Theme{
		{Path: "/themes/monokai_pro.toml", Label: "Monokai Pro"},
		{Path: "/themes/gruvbox_dark.toml", Label: "Gruvbox Dark"},
	}

	matched := CheckThemeExists("gruvbox_dark.toml", known).MustGet()
	require.Equal(t, "/themes/gruvbox_dark.toml", matched.Path)

	res := CheckThemeExists("dracula.toml", known)
	require.True(t, res.IsErr())
	var notFound *errors.ThemeNotFoundError
	require.ErrorAs(t, res.UnwrapErr(), &notFound)
	require.Equal(t, "dracula.toml", notFound.Name)
}

func TestCheckThemeExistsMatchIsCaseSensitive(t *testing.T) {
	t.Parallel()

	known := []themes.Theme{{Path: "/themes/monokai_pro.toml"}}

	res := CheckThemeExists("Monokai_Pro.toml", known)
	require.True(t, res.IsErr())
}

func TestCheckThemeExistsRejectsNonTOMLMatch(t *testing.T) {
	t.Parallel()

	known := []themes.Theme{{Path: "/themes/legacy.yml"}}

	res := CheckThemeExists("legacy.yml", known)
	require.True(t, res.IsErr())
	var notTOML *errors.ThemeNotTOMLError
	require.ErrorAs(t, res.UnwrapErr(), &notTOML)
}
