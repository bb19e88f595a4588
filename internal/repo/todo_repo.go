package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	dom "taskcal/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepo is the storage backend contract, scoped by user.
// Update and Delete return pgx.ErrNoRows or sql.ErrNoRows when no row matches.
type TodoRepo interface {
	List(ctx context.Context, userID int64) ([]dom.Todo, error)
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	Update(ctx context.Context, userID int64, id string, patch dom.TodoPatch) error
	Delete(ctx context.Context, userID int64, id string) error
}

const todoColumns = `id, user_id, title, description, priority, category, due_date, completed,
	recurring_frequency, recurring_end_date, notes, created_at, updated_at`

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func scanPGTodo(row pgx.Row) (dom.Todo, error) {
	var (
		t       dom.Todo
		pri     string
		cat     string
		freq    *string
		freqEnd *time.Time
	)
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &pri, &cat, &t.DueDate, &t.Completed,
		&freq, &freqEnd, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return dom.Todo{}, err
	}
	t.Priority = dom.Priority(pri)
	t.Category = dom.Category(cat)
	if freq != nil {
		t.Recurring = &dom.Recurring{Frequency: dom.Frequency(*freq), EndDate: freqEnd}
	}
	t.Subtasks = []dom.SubTask{}
	return t, nil
}

func (r *PGTodoRepo) List(ctx context.Context, userID int64) ([]dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []dom.Todo{}
	index := map[string]int{}
	for rows.Next() {
		t, err := scanPGTodo(rows)
		if err != nil {
			return nil, err
		}
		index[t.ID] = len(list)
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]string, 0, len(list))
	for _, t := range list {
		ids = append(ids, t.ID)
	}
	subRows, err := r.db.Query(ctx,
		`SELECT id, todo_id, title, completed FROM subtasks WHERE todo_id = ANY($1) ORDER BY todo_id, position`, ids)
	if err != nil {
		return nil, err
	}
	defer subRows.Close()
	for subRows.Next() {
		var s dom.SubTask
		var todoID string
		if err := subRows.Scan(&s.ID, &todoID, &s.Title, &s.Completed); err != nil {
			return nil, err
		}
		if i, ok := index[todoID]; ok {
			list[i].Subtasks = append(list[i].Subtasks, s)
		}
	}
	return list, subRows.Err()
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.Todo{}, err
	}
	defer tx.Rollback(ctx)

	var freq *string
	var freqEnd *time.Time
	if t.Recurring != nil {
		f := string(t.Recurring.Frequency)
		freq = &f
		freqEnd = t.Recurring.EndDate
	}
	query := `
		INSERT INTO todos (id, user_id, title, description, priority, category, due_date, completed,
			recurring_frequency, recurring_end_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + todoColumns
	out, err := scanPGTodo(tx.QueryRow(ctx, query, t.ID, t.UserID, t.Title, t.Description,
		string(t.Priority), string(t.Category), t.DueDate, t.Completed, freq, freqEnd, t.Notes))
	if err != nil {
		return dom.Todo{}, err
	}
	subs, err := insertPGSubtasks(ctx, tx, out.ID, t.Subtasks)
	if err != nil {
		return dom.Todo{}, err
	}
	out.Subtasks = subs
	if err := tx.Commit(ctx); err != nil {
		return dom.Todo{}, err
	}
	return out, nil
}

func insertPGSubtasks(ctx context.Context, tx pgx.Tx, todoID string, subs []dom.SubTask) ([]dom.SubTask, error) {
	out := make([]dom.SubTask, 0, len(subs))
	for i, s := range subs {
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO subtasks (id, todo_id, title, completed, position) VALUES ($1, $2, $3, $4, $5)`,
			s.ID, todoID, s.Title, s.Completed, i)
		if err != nil {
			return nil, fmt.Errorf("insert subtask: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *PGTodoRepo) Update(ctx context.Context, userID int64, id string, patch dom.TodoPatch) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query, args := pgUpdateQuery(id, userID, patchColumns(patch))
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	if patch.Subtasks != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM subtasks WHERE todo_id = $1`, id); err != nil {
			return err
		}
		if _, err := insertPGSubtasks(ctx, tx, id, *patch.Subtasks); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// pgUpdateQuery builds the UPDATE for a patch. updated_at comes from the
// database clock, like created_at's default.
func pgUpdateQuery(id string, userID int64, cols []column) (string, []any) {
	sets := make([]string, 0, len(cols)+1)
	args := []any{id, userID}
	for _, c := range cols {
		args = append(args, c.value)
		sets = append(sets, fmt.Sprintf("%s = $%d", c.name, len(args)))
	}
	sets = append(sets, "updated_at = NOW()")
	return `UPDATE todos SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 AND user_id = $2`, args
}

func (r *PGTodoRepo) Delete(ctx context.Context, userID int64, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
