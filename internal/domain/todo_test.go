package domain

import (
	"errors"
	"testing"
	"time"
)

func validTodo() Todo {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return Todo{
		ID:        "t1",
		Title:     "Write report",
		Priority:  PriorityHigh,
		Category:  CategoryWork,
		DueDate:   created.Add(48 * time.Hour),
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestTodoValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Todo)
		want   error
	}{
		{"valid", func(*Todo) {}, nil},
		{"blank title", func(t *Todo) { t.Title = "   " }, ErrEmptyTitle},
		{"bad priority", func(t *Todo) { t.Priority = "urgent" }, ErrInvalidPriority},
		{"bad category", func(t *Todo) { t.Category = "errands" }, ErrInvalidCategory},
		{"bad frequency", func(t *Todo) { t.Recurring = &Recurring{Frequency: "yearly"} }, ErrInvalidFrequency},
		{"updated before created", func(t *Todo) { t.UpdatedAt = t.CreatedAt.Add(-time.Second) }, ErrInvalidTimeline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := validTodo()
			tt.mutate(&todo)
			if err := todo.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWithDefaults(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	got := Todo{Title: "  buy milk "}.WithDefaults(now)

	if got.Title != "buy milk" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Priority != PriorityMedium || got.Category != CategoryPersonal {
		t.Errorf("defaults = %q/%q, want medium/personal", got.Priority, got.Category)
	}
	if !got.DueDate.Equal(now) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, now)
	}
	if got.Subtasks == nil {
		t.Error("Subtasks should be an empty slice")
	}
}

func TestPatchApplyDoesNotMutateSource(t *testing.T) {
	src := validTodo()
	src.Subtasks = []SubTask{{ID: "s1", Title: "outline"}}

	title := "Final report"
	done := true
	subs := []SubTask{{ID: "s2", Title: "review"}}
	got := TodoPatch{Title: &title, Completed: &done, Subtasks: &subs}.Apply(src)

	if got.Title != "Final report" || !got.Completed {
		t.Errorf("patched = %+v", got)
	}
	if src.Title != "Write report" || src.Completed {
		t.Error("source todo was mutated")
	}
	subs[0].Title = "changed"
	if got.Subtasks[0].Title != "review" {
		t.Error("patched subtasks share backing array with the patch")
	}
}

func TestWithSubtaskIDs(t *testing.T) {
	subs := []SubTask{{ID: "s1", Title: "outline"}, {Title: "review"}}
	n := 0
	got := TodoPatch{Subtasks: &subs}.WithSubtaskIDs(func() string {
		n++
		return "gen"
	})
	if n != 1 || (*got.Subtasks)[0].ID != "s1" || (*got.Subtasks)[1].ID != "gen" {
		t.Errorf("subtasks = %+v", *got.Subtasks)
	}
	if subs[1].ID != "" {
		t.Error("source subtasks were mutated")
	}
	if p := (TodoPatch{}).WithSubtaskIDs(func() string { return "x" }); p.Subtasks != nil {
		t.Error("absent subtasks became present")
	}
}

func TestPatchValidate(t *testing.T) {
	blank := ""
	if err := (TodoPatch{Title: &blank}).Validate(); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("blank title: %v", err)
	}
	cat := Category("errands")
	if err := (TodoPatch{Category: &cat}).Validate(); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("bad category: %v", err)
	}
	if !(TodoPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
}

func TestEmail(t *testing.T) {
	if got := NormalizeEmail("  Ana@Example.COM "); got != "ana@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
	for in, want := range map[string]bool{
		"ana@example.com":       true,
		"not-an-email":          false,
		"Ana <ana@example.com>": false,
		"":                      false,
	} {
		if got := ValidEmail(in); got != want {
			t.Errorf("ValidEmail(%q) = %v", in, got)
		}
	}
}
