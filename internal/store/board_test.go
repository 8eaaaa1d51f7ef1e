package store

import (
	"strings"
	"testing"

	"projectboard/internal/model"
)

func TestAddProject_AppendsWithActiveStatus(t *testing.T) {
	b := NewBoard()

	p1 := b.AddProject("Build shed", "Weekend project", 3)
	p2 := b.AddProject("Fix fence", "Replace two posts", 2)

	if p1.Status != model.StatusActive {
		t.Fatalf("expected new project status active; got %q", p1.Status)
	}
	if strings.TrimSpace(p1.ID) == "" || p1.ID == p2.ID {
		t.Fatalf("expected distinct non-empty ids; got %q and %q", p1.ID, p2.ID)
	}

	got := b.Projects()
	if len(got) != 2 {
		t.Fatalf("expected 2 projects; got %d", len(got))
	}
	// Insertion order preserved; Add only ever appends.
	if got[0].ID != p1.ID || got[1].ID != p2.ID {
		t.Fatalf("expected insertion order [%s %s]; got [%s %s]", p1.ID, p2.ID, got[0].ID, got[1].ID)
	}
}

func TestSubscribe_NoImmediateCall(t *testing.T) {
	b := NewBoard()
	b.AddProject("Before", "Added before subscribing", 1)

	calls := 0
	b.Subscribe(func([]model.Project) { calls++ })
	if calls != 0 {
		t.Fatalf("expected no notification at subscribe time; got %d", calls)
	}

	b.AddProject("After", "First mutation after subscribing", 1)
	if calls != 1 {
		t.Fatalf("expected 1 notification after mutation; got %d", calls)
	}
}

func TestMoveProject_Idempotent(t *testing.T) {
	b := NewBoard()
	p := b.AddProject("Build shed", "Weekend project", 3)

	notifies := 0
	b.Subscribe(func([]model.Project) { notifies++ })

	if changed := b.MoveProject(p.ID, model.StatusFinished); !changed {
		t.Fatalf("expected first move to report changed")
	}
	if notifies != 1 {
		t.Fatalf("expected 1 notification after first move; got %d", notifies)
	}

	// Same arguments again: silent no-op, no notification.
	if changed := b.MoveProject(p.ID, model.StatusFinished); changed {
		t.Fatalf("expected redundant move to report unchanged")
	}
	if notifies != 1 {
		t.Fatalf("expected no notification for redundant move; got %d", notifies)
	}

	got := b.Projects()
	if len(got) != 1 || got[0].Status != model.StatusFinished {
		t.Fatalf("expected one finished project; got %+v", got)
	}
}

func TestMoveProject_UnknownID(t *testing.T) {
	b := NewBoard()
	b.AddProject("Build shed", "Weekend project", 3)

	notifies := 0
	b.Subscribe(func([]model.Project) { notifies++ })

	if changed := b.MoveProject("proj-nope", model.StatusFinished); changed {
		t.Fatalf("expected unknown id to report unchanged")
	}
	if notifies != 0 {
		t.Fatalf("expected no notification for unknown id; got %d", notifies)
	}
	got := b.Projects()
	if len(got) != 1 || got[0].Status != model.StatusActive {
		t.Fatalf("expected collection unchanged; got %+v", got)
	}
}

func TestNotify_SnapshotsAreIndependent(t *testing.T) {
	b := NewBoard()

	var first []model.Project
	b.Subscribe(func(ps []model.Project) {
		if first == nil {
			first = ps
		}
	})
	var second []model.Project
	b.Subscribe(func(ps []model.Project) { second = ps })

	p := b.AddProject("Build shed", "Weekend project", 3)

	// A subscriber scribbling over its snapshot must not reach the store or
	// another subscriber's copy.
	first[0].Title = "clobbered"
	first[0].Status = model.StatusFinished

	if got := b.Projects()[0].Title; got != "Build shed" {
		t.Fatalf("store leaked subscriber mutation; title=%q", got)
	}
	if second[0].Title != "Build shed" || second[0].Status != model.StatusActive {
		t.Fatalf("sibling snapshot leaked subscriber mutation; got %+v", second[0])
	}

	// Later mutations must not rewrite previously delivered snapshots.
	b.MoveProject(p.ID, model.StatusFinished)
	if first[0].Title != "clobbered" {
		t.Fatalf("expected prior snapshot to be detached from the store")
	}
}

func TestSubscribe_OrderAndUnsubscribe(t *testing.T) {
	b := NewBoard()

	var order []string
	b.Subscribe(func([]model.Project) { order = append(order, "a") })
	unsubB := b.Subscribe(func([]model.Project) { order = append(order, "b") })
	b.Subscribe(func([]model.Project) { order = append(order, "c") })

	b.AddProject("One", "First project", 1)
	if got := strings.Join(order, ""); got != "abc" {
		t.Fatalf("expected registration-order delivery abc; got %q", got)
	}

	order = nil
	unsubB()
	unsubB() // double-unsubscribe is a no-op
	b.AddProject("Two", "Second project", 2)
	if got := strings.Join(order, ""); got != "ac" {
		t.Fatalf("expected remaining subscribers in order ac; got %q", got)
	}
}
