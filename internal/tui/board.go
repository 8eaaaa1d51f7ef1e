package tui

import (
	"fmt"
	"strings"

	"projectboard/internal/model"
	"projectboard/internal/store"

	"github.com/charmbracelet/lipgloss"
)

// column is one status partition of the board. It subscribes to the Board on
// construction; every notification re-filters the delivered snapshot down to
// this column's partition and rebuilds the rendered list from scratch (no
// incremental diffing). The filter runs inside the notification, before any
// render can observe the column, so a render never sees a stale partition.
type column struct {
	status   model.Status
	projects []model.Project

	unsubscribe func()
}

func newColumn(b *store.Board, status model.Status) *column {
	c := &column{status: status}
	c.unsubscribe = b.Subscribe(func(snapshot []model.Project) {
		c.refresh(snapshot)
	})
	return c
}

func (c *column) refresh(snapshot []model.Project) {
	items := make([]model.Project, 0, len(snapshot))
	for _, p := range snapshot {
		if p.Status == c.status {
			items = append(items, p)
		}
	}
	c.projects = items
}

func (c *column) close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// boardSelection tracks the focused card. ProjectID is the stable handle
// (preferred over the indexes for tracking focus across re-renders and
// status changes).
type boardSelection struct {
	Col  int
	Item int
	// ProjectID is the stable selected project id.
	ProjectID string
}

func indexOfProjectID(cols []*column, id string) (int, int, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, 0, false
	}
	for ci := range cols {
		for ii := range cols[ci].projects {
			if cols[ci].projects[ii].ID == id {
				return ci, ii, true
			}
		}
	}
	return 0, 0, false
}

func clampSelection(cols []*column, sel boardSelection) boardSelection {
	if len(cols) == 0 {
		return boardSelection{Col: 0, Item: -1}
	}

	// Prefer stable selection by ID when present.
	if ci, ii, ok := indexOfProjectID(cols, sel.ProjectID); ok {
		sel.Col = ci
		sel.Item = ii
	} else {
		sel.ProjectID = ""
	}

	if sel.Col < 0 {
		sel.Col = 0
	}
	if sel.Col >= len(cols) {
		sel.Col = len(cols) - 1
	}

	nItems := len(cols[sel.Col].projects)
	if nItems == 0 {
		sel.Item = -1
		return sel
	}
	if sel.Item < 0 {
		sel.Item = 0
	}
	if sel.Item >= nItems {
		sel.Item = nItems - 1
	}
	sel.ProjectID = cols[sel.Col].projects[sel.Item].ID
	return sel
}

func selectedProject(cols []*column, sel boardSelection) (model.Project, bool) {
	sel = clampSelection(cols, sel)
	if sel.Col < 0 || sel.Col >= len(cols) {
		return model.Project{}, false
	}
	if sel.Item < 0 || sel.Item >= len(cols[sel.Col].projects) {
		return model.Project{}, false
	}
	return cols[sel.Col].projects[sel.Item], true
}

// peopleLabel renders the team-size phrase: exactly 1 is singular, every
// other non-negative count (including 0) is plural.
func peopleLabel(n int) string {
	if n == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d persons", n)
}

// renderBoard renders the status columns side by side. dropCol marks the
// column currently showing the droppable affordance (-1 for none); it is set
// only while a card is being carried.
func renderBoard(cols []*column, sel boardSelection, dropCol int, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	n := len(cols)
	if n == 0 {
		return normalizePane("", width, height)
	}
	sel = clampSelection(cols, sel)

	gap := 2
	avail := width - gap*(n-1)
	if avail < n {
		avail = n
	}
	colW := avail / n
	if colW < 10 {
		colW = 10
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Background(colorControlBg)
	headerSelectedStyle := lipgloss.NewStyle().Bold(true).Foreground(colorSelectedFg).Background(colorSelectedBg)
	headerDropStyle := lipgloss.NewStyle().Bold(true).Foreground(colorAccentFg).Background(colorAccent)
	muted := styleMuted()

	// Whitespace defines the "card", not borders: stacked bordered cards read
	// like a continuous list.
	itemStyle := lipgloss.NewStyle().Width(colW).Padding(0, 1)
	itemSelectedStyle := itemStyle.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	itemCarriedStyle := itemStyle.Foreground(colorAccentFg).Background(colorAccent).Bold(true)
	itemInnerW := colW - 2 // left+right padding
	if itemInnerW < 0 {
		itemInnerW = 0
	}

	renderCard := func(p model.Project, selected, carried bool) string {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			title = "(untitled)"
		}
		titleLines := wrapPlainText(title, itemInnerW)

		titleStyle := lipgloss.NewStyle().Bold(true)
		if selected {
			titleStyle = titleStyle.Foreground(colorSelectedFg).Background(colorSelectedBg)
		} else if p.Status == model.StatusFinished {
			titleStyle = faintIfDark(lipgloss.NewStyle()).Foreground(colorMuted)
		}

		metaStyle := lipgloss.NewStyle().Foreground(colorCardMetaFg)
		if selected {
			metaStyle = metaStyle.Background(colorSelectedBg)
		}

		content := make([]string, 0, len(titleLines)+3)
		for _, ln := range titleLines {
			content = append(content, titleStyle.Render(ln))
		}
		content = append(content, metaStyle.Render(peopleLabel(p.People)))
		if desc := strings.TrimSpace(p.Description); desc != "" {
			// A short excerpt only; the detail pane shows the full text.
			excerpt := wrapPlainText(desc, itemInnerW)
			if len(excerpt) > 2 {
				excerpt = excerpt[:2]
				excerpt[1] = truncateToWidth(excerpt[1]+"…", itemInnerW)
			}
			for _, ln := range excerpt {
				content = append(content, muted.Render(ln))
			}
		}

		inner := normalizePane(strings.Join(content, "\n"), itemInnerW, 0)
		switch {
		case carried:
			return itemCarriedStyle.Render(inner)
		case selected:
			return itemSelectedStyle.Render(inner)
		default:
			return itemStyle.Render(inner)
		}
	}

	renderCol := func(colIdx int, c *column) string {
		head := fmt.Sprintf("%s (%d)", c.status.Label(), len(c.projects))
		if colIdx == dropCol {
			head = "▼ " + head
		}
		head = truncateToWidth(head, colW)

		hs := headerStyle
		switch {
		case colIdx == dropCol:
			hs = headerDropStyle
		case colIdx == sel.Col:
			hs = headerSelectedStyle
		}

		lines := make([]string, 0, 8)
		lines = append(lines, hs.Width(colW).Render(head))

		if len(c.projects) == 0 {
			lines = append(lines, muted.Render("(empty)"))
			return normalizePane(strings.Join(lines, "\n"), colW, height)
		}

		// Padding above the first card.
		lines = append(lines, "")

		for i, p := range c.projects {
			selected := colIdx == sel.Col && i == sel.Item
			carried := dropCol >= 0 && selected
			card := renderCard(p, selected, carried)
			lines = append(lines, strings.Split(card, "\n")...)

			if i < len(c.projects)-1 {
				sepW := colW - 2 // align with card padding
				if sepW < 0 {
					sepW = 0
				}
				sep := " " + strings.Repeat("─", sepW) + " "
				lines = append(lines, muted.Render(sep))
			}
		}
		return normalizePane(strings.Join(lines, "\n"), colW, height)
	}

	rendered := make([]string, 0, n)
	for i, c := range cols {
		rendered = append(rendered, renderCol(i, c))
	}

	out := rendered[0]
	sep := strings.Repeat(" ", gap)
	for i := 1; i < len(rendered); i++ {
		out = lipgloss.JoinHorizontal(lipgloss.Top, out, sep, rendered[i])
	}
	return normalizePane(out, width, height)
}
