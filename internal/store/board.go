package store

import (
	"fmt"
	"time"

	"projectboard/internal/model"
)

// Board owns the authoritative ordered collection of projects and notifies
// subscribers after every mutation. It is built explicitly by the caller and
// handed to each view; there is no package-level instance.
//
// Board is not safe for concurrent use. The TUI drives it from the bubbletea
// update loop and the CLI from a single goroutine, so all mutation and
// notification happens on one goroutine and subscribers observe the
// collection already updated.
type Board struct {
	projects []model.Project
	subs     []subscriber
	nextSub  int
	idSeq    int
}

type subscriber struct {
	id int
	fn func([]model.Project)
}

func NewBoard() *Board {
	return &Board{}
}

// Subscribe registers fn to be called after every mutation with a fresh copy
// of the full ordered collection. Subscribers run synchronously in
// registration order and are responsible for their own filtering. There is no
// call at subscribe time; the first delivery happens on the next mutation.
//
// The returned func removes the subscription. It keeps the relative order of
// the remaining subscribers and is safe to call more than once.
func (b *Board) Subscribe(fn func([]model.Project)) (unsubscribe func()) {
	id := b.nextSub
	b.nextSub++
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	return func() {
		for i := range b.subs {
			if b.subs[i].id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// AddProject appends a new project with status Active and notifies
// subscribers. Content is taken as-is; validating user input is the caller's
// job (see internal/form). The returned record is a copy.
func (b *Board) AddProject(title, description string, people int) model.Project {
	p := model.Project{
		ID:          b.newProjectID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      model.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	b.projects = append(b.projects, p)
	b.notify()
	return p
}

// MoveProject sets the status of the project with the given id and notifies
// subscribers. An unknown id or a move to the current status is a silent
// no-op with no notification: a stale gesture referencing a gone project must
// not crash the view layer, and a same-status move must not trigger a
// redundant re-render. Reports whether anything changed.
func (b *Board) MoveProject(id string, status model.Status) bool {
	for i := range b.projects {
		if b.projects[i].ID != id {
			continue
		}
		if b.projects[i].Status == status {
			return false
		}
		b.projects[i].Status = status
		b.notify()
		return true
	}
	return false
}

// Projects returns a copy of the full collection in insertion order.
func (b *Board) Projects() []model.Project {
	return b.snapshot()
}

func (b *Board) notify() {
	// Iterate over a copy of the subscriber list so a subscriber that
	// unsubscribes (itself or another) mid-notification doesn't skip entries.
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	for _, s := range subs {
		// Each subscriber gets its own copy; mutating a delivered snapshot
		// must not leak into the store or into other subscribers.
		s.fn(b.snapshot())
	}
}

func (b *Board) snapshot() []model.Project {
	out := make([]model.Project, len(b.projects))
	copy(out, b.projects)
	return out
}

func (b *Board) newProjectID() string {
	for i := 0; i < 5; i++ {
		id, err := newRandomID("proj")
		if err != nil {
			continue
		}
		if !b.idExists(id) {
			return id
		}
	}
	// crypto/rand failing repeatedly means something is deeply wrong with the
	// platform; fall back to a counter so Add can still make progress.
	b.idSeq++
	return fmt.Sprintf("proj-seq%d", b.idSeq)
}

func (b *Board) idExists(id string) bool {
	for _, p := range b.projects {
		if p.ID == id {
			return true
		}
	}
	return false
}
