// Package store holds one user's authoritative todo collection and keeps it
// in step with the storage backend.
package store

import (
	"context"
	"strings"
	"sync"
	"time"

	dom "taskcal/internal/domain"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Backend is the request/response storage contract the Store drives.
type Backend interface {
	List(ctx context.Context, userID int64) ([]dom.Todo, error)
	Create(ctx context.Context, userID int64, t dom.Todo) (dom.Todo, error)
	Update(ctx context.Context, userID int64, id string, patch dom.TodoPatch) error
	Delete(ctx context.Context, userID int64, id string) error
}

// State is a read-only snapshot handed to subscribers.
type State struct {
	Todos   []dom.Todo
	Loading bool
	Loaded  bool
	Err     string
}

type Option func(*Store)

func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock replaces time.Now for UpdatedAt bumps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store is safe for concurrent use. The todo slice is never modified in
// place; every change installs a new slice.
type Store struct {
	backend Backend
	userID  int64
	log     *log.Logger
	now     func() time.Time

	mu      sync.RWMutex
	todos   []dom.Todo
	loading bool
	loaded  bool
	err     string

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(State)
}

func New(backend Backend, userID int64, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		userID:  userID,
		log:     log.Default(),
		now:     time.Now,
		todos:   []dom.Todo{},
		subs:    make(map[int]func(State)),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) UserID() int64 { return s.userID }

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	todos := make([]dom.Todo, len(s.todos))
	for i, t := range s.todos {
		todos[i] = t.Clone()
	}
	return State{Todos: todos, Loading: s.loading, Loaded: s.loaded, Err: s.err}
}

// Todos returns a copy of the collection.
func (s *Store) Todos() []dom.Todo {
	return s.Snapshot().Todos
}

// Todo looks up a todo in the local collection.
func (s *Store) Todo(id string) (dom.Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.todos {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return dom.Todo{}, false
}

// Subscribe registers fn for every state change and returns its cancel func.
func (s *Store) Subscribe(fn func(State)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	st := s.Snapshot()
	s.subMu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(st)
	}
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
	s.notify()
}

// fail records err verbatim and leaves the collection untouched.
func (s *Store) fail(op string, err error) error {
	s.log.Error("todo store", "op", op, "user", s.userID, "err", err)
	s.mu.Lock()
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()
	s.notify()
	return err
}

// commit installs next as the collection.
func (s *Store) commit(next func(cur []dom.Todo) []dom.Todo) {
	s.mu.Lock()
	s.todos = next(s.todos)
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

// Fetch replaces the collection with the backend's, newest first.
func (s *Store) Fetch(ctx context.Context) error {
	s.begin()
	list, err := s.backend.List(ctx, s.userID)
	if err != nil {
		return s.fail("fetch", err)
	}
	s.commit(func([]dom.Todo) []dom.Todo {
		s.loaded = true
		if list == nil {
			return []dom.Todo{}
		}
		return list
	})
	return nil
}

// Add creates a todo and prepends the stored row. A blank title is rejected
// before the backend is called and does not touch the state.
func (s *Store) Add(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	if strings.TrimSpace(t.Title) == "" {
		return dom.Todo{}, dom.ErrEmptyTitle
	}
	s.begin()
	created, err := s.backend.Create(ctx, s.userID, t)
	if err != nil {
		return dom.Todo{}, s.fail("add", err)
	}
	s.commit(func(cur []dom.Todo) []dom.Todo {
		next := make([]dom.Todo, 0, len(cur)+1)
		next = append(next, created)
		return append(next, cur...)
	})
	return created.Clone(), nil
}

// Update persists patch and merges it into the local copy. New subtasks get
// their IDs here so the backend and the local copy agree.
func (s *Store) Update(ctx context.Context, id string, patch dom.TodoPatch) error {
	patch = patch.WithSubtaskIDs(uuid.NewString)
	s.begin()
	if err := s.backend.Update(ctx, s.userID, id, patch); err != nil {
		return s.fail("update", err)
	}
	now := s.now()
	s.commit(func(cur []dom.Todo) []dom.Todo {
		next := make([]dom.Todo, len(cur))
		for i, t := range cur {
			if t.ID == id {
				t = patch.Apply(t)
				t.UpdatedAt = now
			}
			next[i] = t
		}
		return next
	})
	return nil
}

// Delete removes the todo remotely, then locally.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.begin()
	if err := s.backend.Delete(ctx, s.userID, id); err != nil {
		return s.fail("delete", err)
	}
	s.commit(func(cur []dom.Todo) []dom.Todo {
		next := make([]dom.Todo, 0, len(cur))
		for _, t := range cur {
			if t.ID != id {
				next = append(next, t)
			}
		}
		return next
	})
	return nil
}

// Toggle flips Completed. Unknown ids are ignored.
func (s *Store) Toggle(ctx context.Context, id string) error {
	t, ok := s.Todo(id)
	if !ok {
		return nil
	}
	done := !t.Completed
	return s.Update(ctx, id, dom.TodoPatch{Completed: &done})
}
