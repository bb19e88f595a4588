package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	dom "taskcal/internal/domain"
	"taskcal/internal/repo"

	"golang.org/x/crypto/bcrypt"
)

func newTestServices(t *testing.T) (*TodoService, *UserService) {
	t.Helper()
	db, err := repo.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "svc.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	todos := NewTodoService(repo.NewSQLiteTodoRepo(db), nil)
	todos.now = func() time.Time { return time.Date(2024, 3, 20, 14, 30, 0, 0, time.UTC) }
	users := NewUserService(repo.NewSQLiteUserRepo(db))
	users.cost = bcrypt.MinCost
	return todos, users
}

func TestTodoServiceDefaultsAndScope(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	created, err := svc.Create(ctx, 1, dom.Todo{Title: "  Buy milk  ", UserID: 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Title != "Buy milk" || created.Priority != dom.PriorityMedium ||
		created.Category != dom.CategoryPersonal || created.UserID != 1 {
		t.Errorf("created = %+v", created)
	}
	if !created.DueDate.Equal(svc.now()) {
		t.Errorf("due = %v, want now", created.DueDate)
	}

	if list, _ := svc.List(ctx, 2); len(list) != 0 {
		t.Errorf("user 2 sees %d todos", len(list))
	}
	if err := svc.Delete(ctx, 2, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user delete err = %v", err)
	}
}

func TestTodoServiceValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	if _, err := svc.Create(ctx, 1, dom.Todo{Title: "x", Priority: "urgent"}); !errors.Is(err, dom.ErrInvalidPriority) {
		t.Errorf("create err = %v", err)
	}
	created, _ := svc.Create(ctx, 1, dom.Todo{Title: "x"})
	blank := "   "
	if err := svc.Update(ctx, 1, created.ID, dom.TodoPatch{Title: &blank}); !errors.Is(err, dom.ErrEmptyTitle) {
		t.Errorf("update err = %v", err)
	}
	title := "  renamed "
	if err := svc.Update(ctx, 1, created.ID, dom.TodoPatch{Title: &title}); err != nil {
		t.Fatal(err)
	}
	list, _ := svc.List(ctx, 1)
	if list[0].Title != "renamed" {
		t.Errorf("title = %q", list[0].Title)
	}
	if err := svc.Update(ctx, 1, "missing", dom.TodoPatch{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing update err = %v", err)
	}
}

type recordingRepo struct {
	repo.TodoRepo
	patch dom.TodoPatch
}

func (r *recordingRepo) Update(ctx context.Context, userID int64, id string, p dom.TodoPatch) error {
	r.patch = p
	return r.TodoRepo.Update(ctx, userID, id, p)
}

func TestTodoServiceUpdateAssignsSubtaskIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	rec := &recordingRepo{TodoRepo: svc.repo}
	svc.repo = rec

	created, err := svc.Create(ctx, 1, dom.Todo{Title: "plants"})
	if err != nil {
		t.Fatal(err)
	}
	subs := []dom.SubTask{{Title: "water"}}
	if err := svc.Update(ctx, 1, created.ID, dom.TodoPatch{Subtasks: &subs}); err != nil {
		t.Fatal(err)
	}
	sent := *rec.patch.Subtasks
	if sent[0].ID == "" {
		t.Fatal("repo received a subtask without an ID")
	}
	list, _ := svc.List(ctx, 1)
	if len(list[0].Subtasks) != 1 || list[0].Subtasks[0].ID != sent[0].ID {
		t.Errorf("stored subtasks = %+v, sent %q", list[0].Subtasks, sent[0].ID)
	}

	if err := svc.Update(ctx, 1, created.ID, dom.TodoPatch{}); !errors.Is(err, dom.ErrEmptyPatch) {
		t.Errorf("empty patch err = %v", err)
	}
}

func TestUserServiceRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	_, users := newTestServices(t)

	u, err := users.Register(ctx, " Ana@Example.com ", "s3cret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Email != "ana@example.com" {
		t.Errorf("email = %q", u.Email)
	}
	if _, err := users.Register(ctx, "ana@example.com", "other"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate err = %v", err)
	}
	if _, err := users.Register(ctx, "not-an-email", "x"); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("bad email err = %v", err)
	}

	if got, err := users.ValidateCredentials(ctx, "ANA@example.com", "s3cret"); err != nil || got.ID != u.ID {
		t.Errorf("login = %+v, %v", got, err)
	}
	if _, err := users.ValidateCredentials(ctx, "ana@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v", err)
	}
	if _, err := users.ValidateCredentials(ctx, "bob@example.com", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v", err)
	}
	if _, err := users.Get(ctx, u.ID+100); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing err = %v", err)
	}
}
