// Package themes discovers Alacritty theme files on disk and derives their
// display labels.
package themes

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/errors"
	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/result"
)

// Extension is the recognized theme file extension.
const Extension = ".toml"

// Theme is a color-scheme file plus its derived display label. Identity is
// Path. Active stays nil until the theme has been evaluated against a
// configuration's import list; it is never persisted.
type Theme struct {
	Path   string
	Label  string
	Active *bool
}

// LoadThemes recursively scans dir for theme files and returns them ordered
// by path. A missing or unreadable directory fails rather than being
// created; see DESIGN.md for the policy decision.
func LoadThemes(dir string) result.Result[[]Theme] {
	info, err := os.Stat(dir)
	if err != nil {
		return result.Err[[]Theme](errors.NewDirectoryNotAccessibleError(dir, err))
	}
	if !info.IsDir() {
		return result.Err[[]Theme](errors.NewDirectoryIsFileError(dir))
	}

	var found []Theme
	walkErr := filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != Extension {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		found = append(found, Theme{
			Path:  abs,
			Label: Unslugify(filepath.Base(path)),
		})
		return nil
	})
	if walkErr != nil {
		return result.Err[[]Theme](errors.NewDirectoryNotAccessibleError(dir, walkErr))
	}

	if len(found) == 0 {
		return result.Err[[]Theme](errors.NewNoThemesFoundError(dir))
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })
	return result.Ok(found)
}
