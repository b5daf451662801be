package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/theme"
)

// MenuItem is one selectable row. Action runs when the row is chosen;
// disabled rows are skipped during navigation.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions driven by up/down/enter.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd { return nil }

// Update moves the selection or fires the selected action.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.Selected = m.seek(-1)
	case "down", "j":
		m.Selected = m.seek(1)
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			return m, nil
		}
		item := m.Items[m.Selected]
		if item.Disabled || item.Action == nil {
			return m, nil
		}
		return m, item.Action()
	}
	return m, nil
}

// seek finds the nearest enabled item in the given direction, staying
// put when there is none.
func (m Menu) seek(dir int) int {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Selected
}

func (m Menu) View() string {
	rows := make([]string, len(m.Items))
	for i, item := range m.Items {
		switch {
		case i == m.Selected:
			rows[i] = theme.Selected.Render("  ▸ " + item.Label)
		case item.Disabled:
			rows[i] = theme.Hint.Render("    " + item.Label)
		default:
			rows[i] = theme.Unselected.Render("    " + item.Label)
		}
	}
	return strings.Join(rows, "\n") + "\n"
}
