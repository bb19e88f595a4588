package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	dom "taskcal/internal/domain"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// OpenSQLite opens (creating if needed) the database file and migrates it.
func OpenSQLite(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, errors.New("sqlite path is empty")
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", SQLiteDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}
	if err := MigrateSQLite(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// SQLiteDSN turns a file path into a modernc.org/sqlite DSN.
func SQLiteDSN(path string) string {
	if strings.HasPrefix(path, "file:") || path == ":memory:" {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "foreign_keys(1)")
	u.RawQuery = q.Encode()
	return u.String()
}

// SQLiteTodoRepo stores todos in a local SQLite file through TodoRow.
type SQLiteTodoRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteTodoRepo(db *sql.DB) *SQLiteTodoRepo {
	return &SQLiteTodoRepo{db: db, now: time.Now}
}

func (r *SQLiteTodoRepo) List(ctx context.Context, userID int64) ([]dom.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []TodoRow
	index := map[string]int{}
	for rows.Next() {
		row, err := scanSQLiteRow(rows)
		if err != nil {
			return nil, err
		}
		index[row.ID] = len(list)
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	subRows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.todo_id, s.title, s.completed
		FROM subtasks s JOIN todos t ON t.id = s.todo_id
		WHERE t.user_id = ? ORDER BY s.todo_id, s.position`, userID)
	if err != nil {
		return nil, err
	}
	defer subRows.Close()
	for subRows.Next() {
		var s SubtaskRow
		var done int
		if err := subRows.Scan(&s.ID, &s.TodoID, &s.Title, &done); err != nil {
			return nil, err
		}
		s.Completed = done == 1
		if i, ok := index[s.TodoID]; ok {
			list[i].Subtasks = append(list[i].Subtasks, s)
		}
	}
	if err := subRows.Err(); err != nil {
		return nil, err
	}
	return RowsToTodos(list)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteRow(s rowScanner) (TodoRow, error) {
	var row TodoRow
	var done int
	var freq, freqEnd sql.NullString
	err := s.Scan(&row.ID, &row.UserID, &row.Title, &row.Description, &row.Priority, &row.Category,
		&row.DueDate, &done, &freq, &freqEnd, &row.Notes, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return TodoRow{}, err
	}
	row.Completed = done == 1
	if freq.Valid {
		row.RecurringFrequency = &freq.String
	}
	if freqEnd.Valid {
		row.RecurringEndDate = &freqEnd.String
	}
	return row, nil
}

func (r *SQLiteTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := r.now().UTC()
	t.CreatedAt, t.UpdatedAt = now, now
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == "" {
			t.Subtasks[i].ID = uuid.NewString()
		}
	}
	row := ToRow(t)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return dom.Todo{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO todos (`+todoColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.UserID, row.Title, row.Description, row.Priority, row.Category, row.DueDate,
		boolInt(row.Completed), row.RecurringFrequency, row.RecurringEndDate, row.Notes, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		return dom.Todo{}, err
	}
	if err := insertSQLiteSubtasks(ctx, tx, row.ID, row.Subtasks, row.CreatedAt); err != nil {
		return dom.Todo{}, err
	}
	if err := tx.Commit(); err != nil {
		return dom.Todo{}, err
	}
	return FromRow(row)
}

func insertSQLiteSubtasks(ctx context.Context, tx *sql.Tx, todoID string, subs []SubtaskRow, stamp string) error {
	for i, s := range subs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO subtasks (id, todo_id, title, completed, position, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.ID, todoID, s.Title, boolInt(s.Completed), i, stamp, stamp)
		if err != nil {
			return fmt.Errorf("insert subtask: %w", err)
		}
	}
	return nil
}

func (r *SQLiteTodoRepo) Update(ctx context.Context, userID int64, id string, patch dom.TodoPatch) error {
	now := r.now()
	cols := append(patchColumns(patch), column{"updated_at", now.UTC()})
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+2)
	for i, c := range cols {
		sets[i] = c.name + " = ?"
		args = append(args, sqliteValue(c.value))
	}
	args = append(args, id, userID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE todos SET `+strings.Join(sets, ", ")+` WHERE id = ? AND user_id = ?`, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return sql.ErrNoRows
	}
	if patch.Subtasks != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM subtasks WHERE todo_id = ?`, id); err != nil {
			return err
		}
		subs := make([]SubtaskRow, len(*patch.Subtasks))
		for i, s := range *patch.Subtasks {
			if s.ID == "" {
				s.ID = uuid.NewString()
			}
			subs[i] = SubtaskRow{ID: s.ID, TodoID: id, Title: s.Title, Completed: s.Completed}
		}
		if err := insertSQLiteSubtasks(ctx, tx, id, subs, formatTime(now)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteTodoRepo) Delete(ctx context.Context, userID int64, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM todos WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return sql.ErrNoRows
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM subtasks WHERE todo_id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func sqliteValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return formatTime(x)
	case *time.Time:
		if x == nil {
			return nil
		}
		return formatTime(*x)
	case bool:
		return boolInt(x)
	}
	return v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
