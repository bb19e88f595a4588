package repo

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	dom "taskcal/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "todo.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteTodoRepoCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteTodoRepo(openTestDB(t))
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	in := sampleTodo()
	in.ID = ""
	in.Subtasks = []dom.SubTask{{Title: "fill can"}, {Title: "pour", Completed: true}}
	first, err := r.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == "" || first.Subtasks[0].ID == "" {
		t.Errorf("ids not assigned: %+v", first)
	}
	if !first.CreatedAt.Equal(clock) {
		t.Errorf("CreatedAt = %v", first.CreatedAt)
	}

	clock = clock.Add(time.Minute)
	second, err := r.Create(ctx, dom.Todo{UserID: in.UserID, Title: "later", Priority: dom.PriorityHigh,
		Category: dom.CategoryWork, DueDate: clock})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Create(ctx, dom.Todo{UserID: 99, Title: "someone else", Priority: dom.PriorityLow,
		Category: dom.CategoryWork, DueDate: clock}); err != nil {
		t.Fatal(err)
	}

	list, err := r.List(ctx, in.UserID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("List order = %+v", list)
	}
	if len(list[1].Subtasks) != 2 || list[1].Subtasks[1].Title != "pour" || !list[1].Subtasks[1].Completed {
		t.Errorf("subtasks = %+v", list[1].Subtasks)
	}
	if list[1].Recurring == nil || list[1].Recurring.Frequency != dom.FrequencyWeekly {
		t.Errorf("recurring = %+v", list[1].Recurring)
	}

	clock = clock.Add(time.Hour)
	newDue := time.Date(2024, 3, 22, 8, 45, 0, 0, time.UTC)
	title := "Water all plants"
	subs := []dom.SubTask{{Title: "only one"}}
	if err := r.Update(ctx, in.UserID, first.ID, dom.TodoPatch{Title: &title, DueDate: &newDue, Subtasks: &subs}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	list, _ = r.List(ctx, in.UserID)
	got := list[1]
	if got.Title != title || !got.DueDate.Equal(newDue) || !got.UpdatedAt.Equal(clock) || len(got.Subtasks) != 1 {
		t.Errorf("updated = %+v", got)
	}
	if got.Description != "balcony" {
		t.Error("unpatched field changed")
	}

	if err := r.Update(ctx, 99, first.ID, dom.TodoPatch{Title: &title}); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("cross-user update err = %v", err)
	}
	if err := r.Delete(ctx, in.UserID, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := r.Delete(ctx, in.UserID, first.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("second delete err = %v", err)
	}
	list, _ = r.List(ctx, in.UserID)
	if len(list) != 1 {
		t.Errorf("after delete = %d todos", len(list))
	}
}

func TestSQLiteUserRepo(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteUserRepo(openTestDB(t))

	u, err := r.Create(ctx, "ana@example.com", "hash")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := r.GetByEmail(ctx, "ana@example.com")
	if err != nil || got.ID != u.ID {
		t.Errorf("GetByEmail = %+v, %v", got, err)
	}
	if _, err := r.GetByID(ctx, u.ID+1); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("missing user err = %v", err)
	}
	if _, err := r.Create(ctx, "ana@example.com", "hash"); err == nil {
		t.Error("duplicate email accepted")
	}
}
