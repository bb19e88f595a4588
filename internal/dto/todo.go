package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DueDate parses a due date from JSON as either date-only ("2006-01-02") or RFC3339.
// Date-only values resolve to the start of that day in the caller's zone.
type DueDate struct {
	t        *time.Time
	dateOnly bool
}

func (d *DueDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02",     // date only
		time.RFC3339,     // 2006-01-02T15:04:05Z07:00
		time.RFC3339Nano, // with nanoseconds
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			d.t = &parsed
			d.dateOnly = layout == "2006-01-02"
			return nil
		}
	}
	return fmt.Errorf("due_date: use date (YYYY-MM-DD) or RFC3339 datetime")
}

func (d DueDate) IsSet() bool { return d.t != nil }

// In returns the due instant, placing date-only values at midnight in loc.
func (d DueDate) In(loc *time.Location) *time.Time {
	if d.t == nil {
		return nil
	}
	if d.dateOnly {
		t := time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, 0, 0, loc)
		return &t
	}
	t := *d.t
	return &t
}

type RecurringRequest struct {
	Frequency string   `json:"frequency" binding:"required"`
	EndDate   *DueDate `json:"end_date"`
}

type SubtaskRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title" binding:"required,max=200"`
	Completed bool   `json:"completed"`
}

type CreateTodoRequest struct {
	Title       string            `json:"title" binding:"max=200"`
	Description string            `json:"description" binding:"max=2000"`
	Priority    string            `json:"priority"`
	Category    string            `json:"category"`
	DueDate     DueDate           `json:"due_date"` // optional: "2026-02-19" or RFC3339
	Completed   bool              `json:"completed"`
	Recurring   *RecurringRequest `json:"recurring"`
	Subtasks    []SubtaskRequest  `json:"subtasks" binding:"dive"`
	Notes       string            `json:"notes" binding:"max=4000"`
}

// UpdateTodoRequest is a partial update; absent fields are left unchanged.
type UpdateTodoRequest struct {
	Title       *string           `json:"title" binding:"omitempty,max=200"`
	Description *string           `json:"description" binding:"omitempty,max=2000"`
	Priority    *string           `json:"priority"`
	Category    *string           `json:"category"`
	DueDate     *DueDate          `json:"due_date"`
	Completed   *bool             `json:"completed"`
	Recurring   *RecurringRequest `json:"recurring"`
	Subtasks    *[]SubtaskRequest `json:"subtasks"`
	Notes       *string           `json:"notes" binding:"omitempty,max=4000"`
}

type SubtaskResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type RecurringResponse struct {
	Frequency string     `json:"frequency"`
	EndDate   *time.Time `json:"end_date"`
}

type TodoResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Priority    string             `json:"priority"`
	Category    string             `json:"category"`
	DueDate     time.Time          `json:"due_date"`
	Completed   bool               `json:"completed"`
	Recurring   *RecurringResponse `json:"recurring"`
	Subtasks    []SubtaskResponse  `json:"subtasks"`
	Notes       string             `json:"notes"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type ListTodosResponse struct {
	Items []TodoResponse `json:"items"`
	// Loading and Error mirror the per-user store state.
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}
