package main

import (
	"github.com/tichopad/alacritty-theme-switch-sub000/internal/logger"
	"github.com/tichopad/alacritty-theme-switch-sub000/internal/manager"
	"github.com/tichopad/alacritty-theme-switch-sub000/internal/settings"
	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/result"
)

// appContext bundles everything a command needs: resolved settings, a logger
// and a ready theme manager.
type appContext struct {
	settings settings.Settings
	log      *logger.Logger
	manager  *manager.Manager
}

// loadSettings resolves the effective settings: defaults, then the settings
// file, then command-line flags.
func loadSettings(flags *rootFlags) result.Result[settings.Settings] {
	return result.Map(settings.Load(flags.settingsPath), func(resolved settings.Settings) settings.Settings {
		if flags.configPath != "" {
			resolved.ConfigPath = flags.configPath
		}
		if flags.backupPath != "" {
			resolved.BackupPath = flags.backupPath
		}
		if flags.themesDir != "" {
			resolved.ThemesDir = flags.themesDir
		}
		return resolved
	})
}

// newAppContext builds the application context for commands that operate on
// the theme manager. The manager factory performs discovery and parsing;
// either failure aborts before any command logic runs.
func newAppContext(flags *rootFlags) result.Result[*appContext] {
	return result.FlatMap(loadSettings(flags), func(resolved settings.Settings) result.Result[*appContext] {
		log, err := logger.New(logger.Options{Level: logLevel(flags), HumanReadable: true})
		if err != nil {
			return result.Err[*appContext](err)
		}

		return result.Map(manager.New(manager.Options{
			ConfigPath: resolved.ConfigPath,
			BackupPath: resolved.BackupPath,
			ThemesDir:  resolved.ThemesDir,
			Logger:     log,
		}), func(mgr *manager.Manager) *appContext {
			return &appContext{settings: resolved, log: log, manager: mgr}
		})
	})
}

func logLevel(flags *rootFlags) string {
	if flags.verbose {
		return "debug"
	}
	return "warn"
}

// run eliminates a command's final Result into cobra's error contract. This
// is the outermost boundary; nothing beneath it unwraps without matching.
func run[T any](res result.Result[T], onOk func(T) error) error {
	return result.Match(res, onOk, func(err error) error { return err })
}
