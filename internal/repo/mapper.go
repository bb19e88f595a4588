package repo

import (
	"fmt"
	"time"

	dom "taskcal/internal/domain"
)

// TodoRow is the storage shape of a todo: snake_case columns and ISO-8601
// timestamps. A null recurring_frequency means the todo does not repeat.
type TodoRow struct {
	ID                 string       `json:"id"`
	UserID             int64        `json:"user_id"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Priority           string       `json:"priority"`
	Category           string       `json:"category"`
	DueDate            string       `json:"due_date"`
	Completed          bool         `json:"completed"`
	RecurringFrequency *string      `json:"recurring_frequency"`
	RecurringEndDate   *string      `json:"recurring_end_date"`
	Notes              string       `json:"notes"`
	CreatedAt          string       `json:"created_at"`
	UpdatedAt          string       `json:"updated_at"`
	Subtasks           []SubtaskRow `json:"subtasks"`
}

type SubtaskRow struct {
	ID        string `json:"id"`
	TodoID    string `json:"todo_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Fixed-width so that stored strings sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t, nil
}

// ToRow maps a todo to its storage row.
func ToRow(t dom.Todo) TodoRow {
	r := TodoRow{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Category:    string(t.Category),
		DueDate:     formatTime(t.DueDate),
		Completed:   t.Completed,
		Notes:       t.Notes,
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
		Subtasks:    make([]SubtaskRow, len(t.Subtasks)),
	}
	if t.Recurring != nil {
		freq := string(t.Recurring.Frequency)
		r.RecurringFrequency = &freq
		if t.Recurring.EndDate != nil {
			end := formatTime(*t.Recurring.EndDate)
			r.RecurringEndDate = &end
		}
	}
	for i, s := range t.Subtasks {
		r.Subtasks[i] = SubtaskRow{ID: s.ID, TodoID: t.ID, Title: s.Title, Completed: s.Completed}
	}
	return r
}

// FromRow maps a storage row back to a todo.
func FromRow(r TodoRow) (dom.Todo, error) {
	due, err := parseTime("due_date", r.DueDate)
	if err != nil {
		return dom.Todo{}, err
	}
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return dom.Todo{}, err
	}
	updated, err := parseTime("updated_at", r.UpdatedAt)
	if err != nil {
		return dom.Todo{}, err
	}
	t := dom.Todo{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    dom.Priority(r.Priority),
		Category:    dom.Category(r.Category),
		DueDate:     due,
		Completed:   r.Completed,
		Notes:       r.Notes,
		CreatedAt:   created,
		UpdatedAt:   updated,
		Subtasks:    make([]dom.SubTask, len(r.Subtasks)),
	}
	if r.RecurringFrequency != nil {
		t.Recurring = &dom.Recurring{Frequency: dom.Frequency(*r.RecurringFrequency)}
		if r.RecurringEndDate != nil {
			end, err := parseTime("recurring_end_date", *r.RecurringEndDate)
			if err != nil {
				return dom.Todo{}, err
			}
			t.Recurring.EndDate = &end
		}
	}
	for i, s := range r.Subtasks {
		t.Subtasks[i] = dom.SubTask{ID: s.ID, Title: s.Title, Completed: s.Completed}
	}
	return t, nil
}

// RowsToTodos maps a list of rows, failing on the first bad one.
func RowsToTodos(rows []TodoRow) ([]dom.Todo, error) {
	out := make([]dom.Todo, len(rows))
	for i, r := range rows {
		t, err := FromRow(r)
		if err != nil {
			return nil, fmt.Errorf("todo %s: %w", r.ID, err)
		}
		out[i] = t
	}
	return out, nil
}

func TodosToRows(todos []dom.Todo) []TodoRow {
	out := make([]TodoRow, len(todos))
	for i, t := range todos {
		out[i] = ToRow(t)
	}
	return out
}

type column struct {
	name  string
	value any
}

// patchColumns lists the columns a patch writes, in a fixed order. Times
// stay time.Time; each driver encodes them. Callers add updated_at from the
// same clock that stamped created_at.
func patchColumns(p dom.TodoPatch) []column {
	var cols []column
	if p.Title != nil {
		cols = append(cols, column{"title", *p.Title})
	}
	if p.Description != nil {
		cols = append(cols, column{"description", *p.Description})
	}
	if p.Priority != nil {
		cols = append(cols, column{"priority", string(*p.Priority)})
	}
	if p.Category != nil {
		cols = append(cols, column{"category", string(*p.Category)})
	}
	if p.DueDate != nil {
		cols = append(cols, column{"due_date", p.DueDate.UTC()})
	}
	if p.Completed != nil {
		cols = append(cols, column{"completed", *p.Completed})
	}
	if p.Recurring != nil {
		cols = append(cols, column{"recurring_frequency", string(p.Recurring.Frequency)})
		var end *time.Time
		if p.Recurring.EndDate != nil {
			e := p.Recurring.EndDate.UTC()
			end = &e
		}
		cols = append(cols, column{"recurring_end_date", end})
	}
	if p.Notes != nil {
		cols = append(cols, column{"notes", *p.Notes})
	}
	return cols
}
