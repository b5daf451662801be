package components

import (
	"charm.land/lipgloss/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for screen content.
// All cards render at this width so sections visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// CenterFrame centers content within the given dimensions. Used for
// focused single-card screens such as the welcome prompt.
func CenterFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
