package store

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	dom "taskcal/internal/domain"

	"github.com/charmbracelet/log"
)

type fakeBackend struct {
	list      []dom.Todo
	err       error
	creates   int
	updates   int
	deletes   int
	lastPatch dom.TodoPatch
}

func (f *fakeBackend) List(context.Context, int64) ([]dom.Todo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeBackend) Create(_ context.Context, userID int64, t dom.Todo) (dom.Todo, error) {
	f.creates++
	if f.err != nil {
		return dom.Todo{}, f.err
	}
	t.ID = "new"
	t.UserID = userID
	return t, nil
}

func (f *fakeBackend) Update(_ context.Context, _ int64, _ string, p dom.TodoPatch) error {
	f.updates++
	f.lastPatch = p
	return f.err
}

func (f *fakeBackend) Delete(context.Context, int64, string) error {
	f.deletes++
	return f.err
}

var fixedNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func seeded(t *testing.T) (*Store, *fakeBackend) {
	t.Helper()
	created := fixedNow.Add(-time.Hour)
	b := &fakeBackend{list: []dom.Todo{
		{ID: "b", Title: "second", CreatedAt: created, UpdatedAt: created},
		{ID: "a", Title: "first", CreatedAt: created, UpdatedAt: created},
	}}
	s := New(b, 7, WithLogger(log.New(io.Discard)), WithClock(func() time.Time { return fixedNow }))
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}
	return s, b
}

func TestFetchReplacesCollection(t *testing.T) {
	s, _ := seeded(t)
	st := s.Snapshot()
	if !st.Loaded || st.Loading || st.Err != "" {
		t.Errorf("state = %+v", st)
	}
	if len(st.Todos) != 2 || st.Todos[0].ID != "b" {
		t.Errorf("todos = %+v", st.Todos)
	}
}

func TestAddPrepends(t *testing.T) {
	s, _ := seeded(t)
	created, err := s.Add(context.Background(), dom.Todo{Title: "third"})
	if err != nil {
		t.Fatal(err)
	}
	if created.UserID != 7 {
		t.Errorf("UserID = %d", created.UserID)
	}
	todos := s.Todos()
	if len(todos) != 3 || todos[0].ID != "new" {
		t.Errorf("todos = %+v", todos)
	}
}

func TestAddBlankTitleSkipsBackend(t *testing.T) {
	s, b := seeded(t)
	if _, err := s.Add(context.Background(), dom.Todo{Title: "  "}); !errors.Is(err, dom.ErrEmptyTitle) {
		t.Errorf("err = %v", err)
	}
	if b.creates != 0 {
		t.Error("backend Create was called")
	}
	if st := s.Snapshot(); len(st.Todos) != 2 || st.Err != "" {
		t.Errorf("state changed: %+v", st)
	}
}

func TestUpdateMergesAndBumpsUpdatedAt(t *testing.T) {
	s, _ := seeded(t)
	title := "renamed"
	if err := s.Update(context.Background(), "a", dom.TodoPatch{Title: &title}); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Todo("a")
	if got.Title != "renamed" || !got.UpdatedAt.Equal(fixedNow) {
		t.Errorf("todo = %+v", got)
	}
	other, _ := s.Todo("b")
	if other.Title != "second" {
		t.Error("unrelated todo changed")
	}
}

func TestUpdateSharesSubtaskIDsWithBackend(t *testing.T) {
	s, b := seeded(t)
	subs := []dom.SubTask{{ID: "kept", Title: "soil"}, {Title: "water"}}
	if err := s.Update(context.Background(), "a", dom.TodoPatch{Subtasks: &subs}); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Todo("a")
	sent := *b.lastPatch.Subtasks
	if len(got.Subtasks) != 2 || got.Subtasks[0].ID != "kept" || got.Subtasks[1].ID == "" {
		t.Fatalf("local subtasks = %+v", got.Subtasks)
	}
	if sent[1].ID != got.Subtasks[1].ID {
		t.Errorf("backend got %q, local has %q", sent[1].ID, got.Subtasks[1].ID)
	}
	if subs[1].ID != "" {
		t.Error("caller's slice was modified")
	}
}

func TestFailureKeepsCollection(t *testing.T) {
	s, b := seeded(t)
	before := s.Todos()
	b.err = errors.New("connection refused")

	ops := map[string]func() error{
		"fetch":  func() error { return s.Fetch(context.Background()) },
		"update": func() error { return s.Update(context.Background(), "a", dom.TodoPatch{}) },
		"delete": func() error { return s.Delete(context.Background(), "a") },
		"add": func() error {
			_, err := s.Add(context.Background(), dom.Todo{Title: "x"})
			return err
		},
	}
	for name, op := range ops {
		if err := op(); err == nil {
			t.Errorf("%s: expected error", name)
		}
		st := s.Snapshot()
		if st.Err != "connection refused" || st.Loading {
			t.Errorf("%s: state = %+v", name, st)
		}
		if len(st.Todos) != len(before) || st.Todos[0].Title != before[0].Title {
			t.Errorf("%s: collection changed", name)
		}
	}
}

func TestDeleteRemoves(t *testing.T) {
	s, _ := seeded(t)
	if err := s.Delete(context.Background(), "b"); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Todo("b"); ok {
		t.Error("todo still present")
	}
}

func TestToggle(t *testing.T) {
	s, b := seeded(t)
	if err := s.Toggle(context.Background(), "a"); err != nil {
		t.Fatal(err)
	}
	if b.lastPatch.Completed == nil || !*b.lastPatch.Completed {
		t.Errorf("patch = %+v", b.lastPatch)
	}
	got, _ := s.Todo("a")
	if !got.Completed {
		t.Error("todo not completed")
	}

	if err := s.Toggle(context.Background(), "missing"); err != nil {
		t.Errorf("toggle unknown: %v", err)
	}
	if b.updates != 1 {
		t.Errorf("updates = %d, want 1", b.updates)
	}
}

func TestSubscribe(t *testing.T) {
	s, _ := seeded(t)
	var states []State
	cancel := s.Subscribe(func(st State) { states = append(states, st) })

	_ = s.Toggle(context.Background(), "a")
	if len(states) != 2 || !states[0].Loading || states[1].Loading {
		t.Errorf("states = %+v", states)
	}

	cancel()
	_ = s.Toggle(context.Background(), "a")
	if len(states) != 2 {
		t.Error("notified after unsubscribe")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s, _ := seeded(t)
	snap := s.Todos()
	snap[0].Title = "hacked"
	if got, _ := s.Todo(snap[0].ID); got.Title == "hacked" {
		t.Error("snapshot shares memory with the store")
	}
}
