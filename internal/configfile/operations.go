package configfile

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tichopad/alacritty-theme-switch-sub000/internal/themes"
	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/errors"
	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/result"
)

// ParseConfig reads and decodes the configuration at path. A missing file
// fails rather than being created; see DESIGN.md for the policy decision.
func ParseConfig(path string) result.Result[Document] {
	info, err := os.Stat(path)
	if err != nil {
		return result.Err[Document](errors.NewFileNotFoundError(path, err))
	}
	if info.IsDir() {
		return result.Err[Document](errors.NewFileIsDirectoryError(path))
	}
	if filepath.Ext(path) != themes.Extension {
		return result.Err[Document](errors.NewFileNotTOMLError(path))
	}

	var doc Document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return result.Err[Document](errors.NewFileNotReadableError(path, err))
	}
	if doc == nil {
		doc = make(Document)
	}
	return result.Ok(doc)
}

// CreateBackup copies configPath to backupPath, overwriting any previous
// backup. The copy is synced to disk before returning so the backup is
// durable before the live configuration is touched.
func CreateBackup(configPath, backupPath string) result.Result[struct{}] {
	if err := copyFileSync(configPath, backupPath); err != nil {
		return result.Err[struct{}](errors.NewBackupError(backupPath, err))
	}
	return result.Ok(struct{}{})
}

// WriteConfig serializes doc as TOML and writes it to path. No partial-write
// recovery is attempted; the pre-apply backup is the safety net.
func WriteConfig(path string, doc Document) result.Result[struct{}] {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]any(doc)); err != nil {
		return result.Err[struct{}](errors.NewWriteError(path, err))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return result.Err[struct{}](errors.NewWriteError(path, err))
	}
	return result.Ok(struct{}{})
}

// CheckThemeExists resolves filename against the known themes by
// case-sensitive path suffix match and returns the matched theme.
func CheckThemeExists(filename string, known []themes.Theme) result.Result[themes.Theme] {
	for _, theme := range known {
		if strings.HasSuffix(theme.Path, filename) {
			if filepath.Ext(theme.Path) != themes.Extension {
				return result.Err[themes.Theme](errors.NewThemeNotTOMLError(theme.Path))
			}
			return result.Ok(theme)
		}
	}
	return result.Err[themes.Theme](errors.NewThemeNotFoundError(filename))
}

func copyFileSync(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}
	if err := dstFile.Sync(); err != nil {
		dstFile.Close()
		return err
	}
	return dstFile.Close()
}
