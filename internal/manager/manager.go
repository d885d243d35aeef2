// Package manager owns the in-memory configuration and the discovered theme
// set, and exposes the single mutation entry point that switches themes.
package manager

import (
	"github.com/tichopad/alacritty-theme-switch-sub000/internal/configfile"
	"github.com/tichopad/alacritty-theme-switch-sub000/internal/logger"
	"github.com/tichopad/alacritty-theme-switch-sub000/internal/themes"
	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/result"
)

// Manager holds one parsed configuration document and one immutable set of
// discovered themes. Both are fixed at construction; files appearing on disk
// afterwards do not affect a live instance.
type Manager struct {
	configPath string
	backupPath string
	config     configfile.Document
	themes     []themes.Theme
	known      map[string]struct{}
	log        *logger.Logger
}

// Options carries the file locations a Manager operates on.
type Options struct {
	ConfigPath string
	BackupPath string
	ThemesDir  string
	Logger     *logger.Logger
}

// New discovers themes and parses the configuration, producing a ready
// Manager. Either failure aborts construction; no partially-initialized
// manager is ever observable.
func New(opts Options) result.Result[*Manager] {
	return result.FlatMap(themes.LoadThemes(opts.ThemesDir), func(discovered []themes.Theme) result.Result[*Manager] {
		return result.Map(configfile.ParseConfig(opts.ConfigPath), func(doc configfile.Document) *Manager {
			known := make(map[string]struct{}, len(discovered))
			for _, theme := range discovered {
				known[theme.Path] = struct{}{}
			}
			return &Manager{
				configPath: opts.ConfigPath,
				backupPath: opts.BackupPath,
				config:     doc,
				themes:     discovered,
				known:      known,
				log:        opts.Logger,
			}
		})
	})
}

// Config returns the in-memory configuration document. It reflects the last
// durable write; a failed apply never changes it.
func (m *Manager) Config() configfile.Document {
	return m.config
}

// ListThemes returns every discovered theme annotated with whether it is
// currently active. Membership is recomputed from the import list on every
// call, never cached.
func (m *Manager) ListThemes() []themes.Theme {
	active := make(map[string]struct{})
	for _, entry := range m.config.Imports() {
		if _, known := m.known[entry]; known {
			active[entry] = struct{}{}
		}
	}

	listed := make([]themes.Theme, len(m.themes))
	for i, theme := range m.themes {
		_, isActive := active[theme.Path]
		theme.Active = &isActive
		listed[i] = theme
	}
	return listed
}

// ApplyTheme switches the active theme: backup, merge the import list on a
// deep copy, write, then swap the in-memory document. The backup must be
// durable before the live file is touched; a failed write leaves the
// in-memory state consistent with the last durable write.
func (m *Manager) ApplyTheme(theme themes.Theme) result.Result[themes.Theme] {
	return result.FlatMap(configfile.CreateBackup(m.configPath, m.backupPath), func(struct{}) result.Result[themes.Theme] {
		next := m.config.WithImports(mergeImports(m.config.Imports(), m.known, theme.Path))

		return result.Map(configfile.WriteConfig(m.configPath, next), func(struct{}) themes.Theme {
			m.config = next
			m.log.WithTheme(theme.Label, theme.Path).Info("theme applied")
			return theme
		})
	})
}

// ApplyThemeByFilename resolves name against the discovered themes by path
// suffix and applies the match.
func (m *Manager) ApplyThemeByFilename(name string) result.Result[themes.Theme] {
	return result.FlatMap(configfile.CheckThemeExists(name, m.themes), m.ApplyTheme)
}

// mergeImports drops every known theme path from the import list, keeping
// non-theme entries in their original relative order, and appends the
// selected theme's path at the end. Applying the same theme twice therefore
// yields the same list.
func mergeImports(imports []string, known map[string]struct{}, themePath string) []string {
	merged := make([]string, 0, len(imports)+1)
	for _, entry := range imports {
		if _, isTheme := known[entry]; isTheme {
			continue
		}
		merged = append(merged, entry)
	}
	return append(merged, themePath)
}
