package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/sectionbar/internal/tui/styles"
)

// StatusBar renders a bottom line with a status message on the left and
// contextual items on the right.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width. The status is the
// outcome of the last operation; items are joined with " • " and pushed to
// the right edge when there is room.
func (s StatusBar) Render(width int, status string, items []string) string {
	if status != "" {
		status = styles.SuccessStyle.Render(status)
	}
	right := strings.Join(items, " • ")
	if right != "" {
		right = styles.SubtleStyle.Render(right)
	}

	gap := width - lipgloss.Width(status) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	content := status
	if right != "" {
		content += strings.Repeat(" ", gap) + right
	}

	return styles.StatusBarStyle.Width(width).Render(content)
}
