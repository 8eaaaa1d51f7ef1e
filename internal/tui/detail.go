package tui

import (
	"strings"

	"projectboard/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// renderProjectDetail renders the side pane for the selected project: title,
// status, team size, and the full description as markdown.
func renderProjectDetail(p model.Project, width, height int) string {
	if width < 10 {
		width = 10
	}

	title := lipgloss.NewStyle().Bold(true).Render(truncateToWidth(p.Title, width))
	meta := styleMuted().Render(p.Status.Label() + " · " + peopleLabel(p.People))

	parts := []string{title, meta}
	if desc := strings.TrimSpace(p.Description); desc != "" {
		parts = append(parts, "", renderMarkdown(desc, width))
	}

	return normalizePane(strings.Join(parts, "\n"), width, height)
}
