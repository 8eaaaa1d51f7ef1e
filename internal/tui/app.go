package tui

import (
	"os"
	"strings"

	"projectboard/internal/form"
	"projectboard/internal/model"
	"projectboard/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minSplitDetailW = 100
	splitGapW       = 2
)

// carry is the in-flight move gesture: a card has been picked up and is being
// carried toward a drop target. projectID is the payload recovered on drop;
// dropCol is the column currently showing the droppable affordance.
type carry struct {
	projectID string
	dropCol   int
}

type appModel struct {
	board *store.Board

	width          int
	height         int
	seenWindowSize bool

	// columns are the status-partition views, display order. They are
	// pointers: their subscriptions mutate them in place when the store
	// notifies, and the model value is copied around by bubbletea.
	columns []*column
	sel     boardSelection

	carrying *carry

	form     formModel
	showForm bool

	// alertText is the user-visible validation alert (the minibuffer line).
	// Cleared on the next successful submission or esc.
	alertText string

	debugLogPath string
}

func newAppModel(b *store.Board) appModel {
	m := appModel{board: b}
	m.debugLogPath = strings.TrimSpace(os.Getenv("PROJECTBOARD_DEBUG_LOG"))

	for _, st := range model.Statuses() {
		m.columns = append(m.columns, newColumn(b, st))
	}
	// Columns subscribe without an immediate call; bring them up to date with
	// whatever the board already holds (e.g. demo seeding).
	snapshot := b.Projects()
	for _, c := range m.columns {
		c.refresh(snapshot)
	}

	m.form = newFormModel()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.seenWindowSize {
			m.debugLogf("resize %dx%d", msg.Width, msg.Height)
		}
		m.seenWindowSize = true
		return m, nil

	case tea.KeyMsg:
		if m.showForm {
			return m.updateForm(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m appModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.closeColumns()
		return m, tea.Quit

	case "a", "n":
		m.showForm = true
		return m, nil

	case "esc":
		if m.carrying != nil {
			// Cancel the gesture: no mutation, affordance removed.
			m.carrying = nil
			return m, nil
		}
		m.alertText = ""
		return m, nil

	case "up", "k":
		if m.carrying == nil {
			m.sel = m.moveSelection(0, -1)
		}
		return m, nil

	case "down", "j":
		if m.carrying == nil {
			m.sel = m.moveSelection(0, 1)
		}
		return m, nil

	case "left", "h":
		if m.carrying != nil {
			m.carrying.dropCol = clampCol(m.carrying.dropCol-1, len(m.columns))
			return m, nil
		}
		m.sel = m.moveSelection(-1, 0)
		return m, nil

	case "right", "l":
		if m.carrying != nil {
			m.carrying.dropCol = clampCol(m.carrying.dropCol+1, len(m.columns))
			return m, nil
		}
		m.sel = m.moveSelection(1, 0)
		return m, nil

	case "enter", " ":
		if m.carrying == nil {
			// Pick up the selected card. The project id is the payload; the
			// gesture only ever moves, never copies.
			m.sel = clampSelection(m.columns, m.sel)
			p, ok := selectedProject(m.columns, m.sel)
			if !ok {
				return m, nil
			}
			m.carrying = &carry{projectID: p.ID, dropCol: m.sel.Col}
			return m, nil
		}
		return m.drop()
	}
	return m, nil
}

// drop completes the carry gesture: the target status is implied by the
// focused column's partition. The affordance is removed explicitly here, not
// left to the re-render. A drop onto the card's current column is the
// redundant-transition no-op; a stale payload is the lookup-miss no-op. Both
// are silent.
func (m appModel) drop() (tea.Model, tea.Cmd) {
	c := m.carrying
	m.carrying = nil
	if c == nil || c.dropCol < 0 || c.dropCol >= len(m.columns) {
		return m, nil
	}

	target := m.columns[c.dropCol].status
	if m.board.MoveProject(c.projectID, target) {
		m.debugLogf("move project=%s to=%s", c.projectID, target)
		// Keep focus on the moved card in its new column.
		m.sel.ProjectID = c.projectID
		m.sel = clampSelection(m.columns, m.sel)
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.closeColumns()
		return m, tea.Quit

	case "esc":
		// Close without clearing; only a successful submission resets fields.
		m.showForm = false
		return m, nil

	case "tab", "down":
		m.form.cycleFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.form.cycleFocus(-1)
		return m, nil

	case "enter":
		return m.submitForm()
	}

	cmd := m.form.update(msg)
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	in, err := form.Parse(
		m.form.title.Value(),
		m.form.description.Value(),
		m.form.people.Value(),
	)
	if err != nil {
		// Surface the failure and keep every field as typed.
		m.alertText = err.Error() + ", please try again"
		return m, nil
	}

	p := m.board.AddProject(in.Title, in.Description, in.People)
	m.debugLogf("add project=%s title=%q people=%d", p.ID, p.Title, p.People)

	m.alertText = ""
	m.form.clear()
	m.showForm = false
	m.sel.ProjectID = p.ID
	m.sel = clampSelection(m.columns, m.sel)
	return m, nil
}

func (m appModel) View() string {
	width := m.width
	if width < 40 {
		width = 40
	}
	height := m.height
	if height < 12 {
		height = 12
	}

	header := lipgloss.NewStyle().Bold(true).Render("Project Board")
	bodyH := height - 4

	var body string
	switch {
	case m.showForm:
		body = lipgloss.Place(width, bodyH, lipgloss.Center, lipgloss.Center, m.form.view(52))
	default:
		body = m.viewBoard(width, bodyH)
	}

	var footer string
	if m.alertText != "" {
		footer = lipgloss.NewStyle().Foreground(colorAlertFg).Background(colorAlertBg).Render(" " + m.alertText + " ")
	} else if m.carrying != nil {
		footer = styleMuted().Render("←/→: choose list  enter: drop  esc: cancel")
	} else {
		footer = styleMuted().Render("a: new project  enter/space: pick up  ←/→/↑/↓: navigate  q: quit")
	}

	return strings.Join([]string{header, body, footer}, "\n\n")
}

func (m appModel) viewBoard(width, height int) string {
	dropCol := -1
	if m.carrying != nil {
		dropCol = m.carrying.dropCol
	}

	p, ok := selectedProject(m.columns, m.sel)
	if !ok || width < minSplitDetailW {
		return renderBoard(m.columns, m.sel, dropCol, width, height)
	}

	detailW := width / 3
	boardW := width - detailW - splitGapW
	left := renderBoard(m.columns, m.sel, dropCol, boardW, height)
	right := renderProjectDetail(p, detailW, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", splitGapW), right)
}

func (m appModel) moveSelection(dCol, dItem int) boardSelection {
	sel := clampSelection(m.columns, m.sel)
	if dCol != 0 {
		// Keep the row index so switching columns lands on the nearest card.
		sel.Col = clampCol(sel.Col+dCol, len(m.columns))
		sel.ProjectID = ""
	}
	if dItem != 0 {
		sel.Item += dItem
		sel.ProjectID = ""
	}
	return clampSelection(m.columns, sel)
}

func (m *appModel) closeColumns() {
	for _, c := range m.columns {
		c.close()
	}
}

func clampCol(col, n int) int {
	if col < 0 {
		return 0
	}
	if col >= n {
		return n - 1
	}
	return col
}
