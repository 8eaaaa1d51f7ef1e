package tui

import (
	"strings"
	"testing"

	"projectboard/internal/model"
	"projectboard/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestFormSubmit_AddsProjectAndClears(t *testing.T) {
	b := store.NewBoard()
	m := newAppModel(b)

	mAny, _ := m.Update(keyRune('a'))
	m2 := mAny.(appModel)
	if !m2.showForm {
		t.Fatalf("expected form to open on 'a'")
	}

	m2.form.title.SetValue("Build shed")
	m2.form.description.SetValue("Weekend project")
	m2.form.people.SetValue("3")

	mAny, _ = m2.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m3 := mAny.(appModel)

	if m3.showForm {
		t.Fatalf("expected form to close after successful submission")
	}
	got := b.Projects()
	if len(got) != 1 || got[0].Title != "Build shed" || got[0].People != 3 {
		t.Fatalf("expected project added; got %+v", got)
	}
	if got[0].Status != model.StatusActive {
		t.Fatalf("expected new project active; got %q", got[0].Status)
	}
	// Only a successful submission clears the fields.
	if m3.form.title.Value() != "" || m3.form.description.Value() != "" || m3.form.people.Value() != "" {
		t.Fatalf("expected fields cleared after success")
	}
	// The new card is focused.
	if m3.sel.ProjectID != got[0].ID {
		t.Fatalf("expected selection on new project; got %q", m3.sel.ProjectID)
	}
}

func TestFormSubmit_InvalidDescriptionRejected(t *testing.T) {
	b := store.NewBoard()
	m := newAppModel(b)
	m.showForm = true

	m.form.title.SetValue("Fix fence")
	m.form.description.SetValue("abcd") // below min length 5
	m.form.people.SetValue("2")

	mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := mAny.(appModel)

	if len(b.Projects()) != 0 {
		t.Fatalf("expected no project created on invalid input")
	}
	if m2.alertText == "" || !strings.Contains(m2.alertText, "description") {
		t.Fatalf("expected alert naming the description field; got %q", m2.alertText)
	}
	if !m2.showForm {
		t.Fatalf("expected form to stay open after rejection")
	}
	// Rejected submissions keep the fields as typed.
	if m2.form.title.Value() != "Fix fence" || m2.form.description.Value() != "abcd" || m2.form.people.Value() != "2" {
		t.Fatalf("expected fields preserved after rejection")
	}
}

func TestCarryDrop_MovesProjectToFinished(t *testing.T) {
	b := store.NewBoard()
	m := newAppModel(b)
	p := b.AddProject("Build shed", "Weekend project", 3)

	// Pick up, aim at the finished column, drop.
	mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := mAny.(appModel)
	if m2.carrying == nil || m2.carrying.projectID != p.ID {
		t.Fatalf("expected carry to hold project id %q", p.ID)
	}

	mAny, _ = m2.Update(tea.KeyMsg{Type: tea.KeyRight})
	m3 := mAny.(appModel)
	if m3.carrying.dropCol != 1 {
		t.Fatalf("expected drop focus on finished column; got %d", m3.carrying.dropCol)
	}

	mAny, _ = m3.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m4 := mAny.(appModel)
	if m4.carrying != nil {
		t.Fatalf("expected carry cleared after drop")
	}

	got := b.Projects()
	if len(got) != 1 || got[0].Status != model.StatusFinished {
		t.Fatalf("expected project moved to finished; got %+v", got)
	}
	if len(m4.columns[0].projects) != 0 || len(m4.columns[1].projects) != 1 {
		t.Fatalf("expected partitions to swap; active=%d finished=%d",
			len(m4.columns[0].projects), len(m4.columns[1].projects))
	}
	// Selection follows the moved card.
	if m4.sel.ProjectID != p.ID {
		t.Fatalf("expected selection to follow moved project; got %q", m4.sel.ProjectID)
	}
}

func TestCarryDrop_SameColumnIsSilentNoOp(t *testing.T) {
	b := store.NewBoard()
	m := newAppModel(b)
	b.AddProject("Build shed", "Weekend project", 3)

	notifies := 0
	b.Subscribe(func([]model.Project) { notifies++ })

	mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // pick up
	m2 := mAny.(appModel)
	mAny, _ = m2.Update(tea.KeyMsg{Type: tea.KeyEnter}) // drop in place
	m3 := mAny.(appModel)

	if m3.carrying != nil {
		t.Fatalf("expected carry cleared after same-column drop")
	}
	if notifies != 0 {
		t.Fatalf("expected no notification for a same-status drop; got %d", notifies)
	}
}

func TestCarryEsc_CancelsWithoutMutation(t *testing.T) {
	b := store.NewBoard()
	m := newAppModel(b)
	b.AddProject("Build shed", "Weekend project", 3)

	mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // pick up
	m2 := mAny.(appModel)
	mAny, _ = m2.Update(tea.KeyMsg{Type: tea.KeyRight})
	m3 := mAny.(appModel)
	mAny, _ = m3.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m4 := mAny.(appModel)

	if m4.carrying != nil {
		t.Fatalf("expected carry canceled on esc")
	}
	if got := b.Projects()[0].Status; got != model.StatusActive {
		t.Fatalf("expected no mutation on canceled carry; got %q", got)
	}
}

func TestView_ShowsCarryHelpWhileCarrying(t *testing.T) {
	b := store.NewBoard()
	m := newAppModel(b)
	m.width = 90
	m.height = 24
	b.AddProject("Build shed", "Weekend project", 3)

	mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := mAny.(appModel)

	out := m2.View()
	if !strings.Contains(out, "drop") {
		t.Fatalf("expected carry footer help, got=%q", out)
	}
}
