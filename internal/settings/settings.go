// Package settings loads the switcher's own configuration: where the master
// Alacritty config, the backup and the themes directory live, and which
// remote repository themes are downloaded from.
package settings

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/errors"
	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/result"
)

// Remote names the repository themes are downloaded from.
type Remote struct {
	URL    string `yaml:"url" validate:"omitempty,repo_url"`
	Ref    string `yaml:"ref"`
	Subdir string `yaml:"subdir"`
}

// Settings holds every path and remote the CLI operates on. Values from the
// settings file override the defaults; command-line flags override both.
type Settings struct {
	ConfigPath string `yaml:"config" validate:"required"`
	BackupPath string `yaml:"backup" validate:"required"`
	ThemesDir  string `yaml:"themes" validate:"required"`
	Remote     Remote `yaml:"remote"`
}

// Default returns the conventional Alacritty locations under the user's home
// directory and the upstream theme repository.
func Default() (Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Settings{}, err
	}

	alacrittyDir := filepath.Join(home, ".config", "alacritty")
	return Settings{
		ConfigPath: filepath.Join(alacrittyDir, "alacritty.toml"),
		BackupPath: filepath.Join(alacrittyDir, "alacritty.toml.backup"),
		ThemesDir:  filepath.Join(alacrittyDir, "themes"),
		Remote: Remote{
			URL:    "https://github.com/alacritty/alacritty-theme",
			Subdir: "themes",
		},
	}, nil
}

// Load produces validated settings. With an empty path only the defaults are
// used; otherwise the YAML file at path is layered over them and must exist.
func Load(path string) result.Result[Settings] {
	loaded, err := Default()
	if err != nil {
		return result.Err[Settings](errors.NewSettingsError(path, err))
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return result.Err[Settings](errors.NewSettingsError(path, err))
		}
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return result.Err[Settings](errors.NewSettingsError(path, err))
		}
	}

	if err := validatorInstance().Struct(loaded); err != nil {
		return result.Err[Settings](errors.NewSettingsError(path, err))
	}
	return result.Ok(loaded)
}
