// Package tui renders the interactive theme picker. It is a thin adapter:
// the model only collects a selection, the CLI layer performs the apply.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tichopad/alacritty-theme-switch-sub000/internal/themes"
)

type item struct {
	theme themes.Theme
}

func (i item) Title() string {
	if i.theme.Active != nil && *i.theme.Active {
		return fmt.Sprintf("%s %s", i.theme.Label, activeMarkerStyle.Render("(active)"))
	}
	return i.theme.Label
}

func (i item) Description() string { return i.theme.Path }
func (i item) FilterValue() string { return i.theme.Label }

// Model contains the Bubbletea state for the theme picker.
type Model struct {
	list     list.Model
	selected *themes.Theme
}

// NewModel constructs a picker over the given themes, in the order provided.
func NewModel(available []themes.Theme) Model {
	items := make([]list.Item, len(available))
	for i, theme := range available {
		items[i] = item{theme: theme}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select a theme"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)

	return Model{list: l}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key and resize events. Enter records the selection and
// quits; esc and ctrl+c quit without one.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if picked, ok := m.list.SelectedItem().(item); ok {
				theme := picked.theme
				m.selected = &theme
			}
			return m, tea.Quit
		case "esc", "ctrl+c", "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m Model) View() string {
	return appStyle.Render(m.list.View())
}

// Selected returns the chosen theme, or nil when the picker was dismissed.
func (m Model) Selected() *themes.Theme {
	return m.selected
}
