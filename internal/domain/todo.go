package domain

import (
	"errors"
	"strings"
	"time"
)

// Domain entity: the business object.
// Does not depend on Gin, Postgres, SQLite or Redis.

var (
	ErrEmptyTitle       = errors.New("title is required")
	ErrInvalidPriority  = errors.New("priority must be high, medium or low")
	ErrInvalidCategory  = errors.New("category must be work, personal, health, shopping or other")
	ErrInvalidFrequency = errors.New("recurring frequency must be daily, weekly or monthly")
	ErrInvalidTimeline  = errors.New("updated_at is before created_at")
	ErrEmptyPatch       = errors.New("no fields to update")
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryShopping Category = "shopping"
	CategoryOther    Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryHealth, CategoryShopping, CategoryOther}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Recurring is stored metadata only; instances are never expanded.
type Recurring struct {
	Frequency Frequency
	EndDate   *time.Time
}

type SubTask struct {
	ID        string
	Title     string
	Completed bool
}

type Todo struct {
	ID          string
	UserID      int64
	Title       string
	Description string
	Priority    Priority
	Category    Category
	DueDate     time.Time
	Completed   bool
	Recurring   *Recurring
	Subtasks    []SubTask
	Notes       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the invariants every stored todo must hold.
func (t Todo) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}
	if !t.Category.Valid() {
		return ErrInvalidCategory
	}
	if t.Recurring != nil && !t.Recurring.Frequency.Valid() {
		return ErrInvalidFrequency
	}
	if !t.CreatedAt.IsZero() && t.UpdatedAt.Before(t.CreatedAt) {
		return ErrInvalidTimeline
	}
	return nil
}

// WithDefaults fills the fields a new todo may leave blank.
func (t Todo) WithDefaults(now time.Time) Todo {
	t.Title = strings.TrimSpace(t.Title)
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Category == "" {
		t.Category = CategoryPersonal
	}
	if t.DueDate.IsZero() {
		t.DueDate = now
	}
	if t.Subtasks == nil {
		t.Subtasks = []SubTask{}
	}
	return t
}

// Clone returns a copy that shares no slices or pointers with t.
func (t Todo) Clone() Todo {
	if t.Recurring != nil {
		r := *t.Recurring
		if r.EndDate != nil {
			end := *r.EndDate
			r.EndDate = &end
		}
		t.Recurring = &r
	}
	if t.Subtasks != nil {
		subs := make([]SubTask, len(t.Subtasks))
		copy(subs, t.Subtasks)
		t.Subtasks = subs
	}
	return t
}

// TodoPatch is a partial update; nil fields are left unchanged.
type TodoPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	Category    *Category
	DueDate     *time.Time
	Completed   *bool
	Recurring   *Recurring
	Notes       *string
	Subtasks    *[]SubTask
}

// IsEmpty reports whether the patch would change nothing.
func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.Category == nil && p.DueDate == nil && p.Completed == nil &&
		p.Recurring == nil && p.Notes == nil && p.Subtasks == nil
}

// WithSubtaskIDs returns the patch with its subtasks copied and every
// missing ID drawn from newID.
func (p TodoPatch) WithSubtaskIDs(newID func() string) TodoPatch {
	if p.Subtasks == nil {
		return p
	}
	subs := make([]SubTask, len(*p.Subtasks))
	copy(subs, *p.Subtasks)
	for i := range subs {
		if subs[i].ID == "" {
			subs[i].ID = newID()
		}
	}
	p.Subtasks = &subs
	return p
}

// Validate checks only the fields present in the patch.
func (p TodoPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrEmptyTitle
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return ErrInvalidPriority
	}
	if p.Category != nil && !p.Category.Valid() {
		return ErrInvalidCategory
	}
	if p.Recurring != nil && !p.Recurring.Frequency.Valid() {
		return ErrInvalidFrequency
	}
	return nil
}

// Apply merges the patch into a copy of t.
func (p TodoPatch) Apply(t Todo) Todo {
	t = t.Clone()
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Recurring != nil {
		r := *p.Recurring
		t.Recurring = &r
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Subtasks != nil {
		subs := make([]SubTask, len(*p.Subtasks))
		copy(subs, *p.Subtasks)
		t.Subtasks = subs
	}
	return t
}
