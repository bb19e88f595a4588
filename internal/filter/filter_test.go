package filter

import (
	"testing"
	"time"

	dom "taskcal/internal/domain"
)

var now = time.Date(2024, 3, 20, 14, 30, 0, 0, time.UTC)

func todo(id string, cat dom.Category, done bool, due time.Time) dom.Todo {
	return dom.Todo{ID: id, Title: id, Category: cat, Completed: done, DueDate: due, Priority: dom.PriorityMedium}
}

func ids(todos []dom.Todo) []string {
	out := make([]string, len(todos))
	for i, t := range todos {
		out[i] = t.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func catPtr(c dom.Category) *dom.Category { return &c }

func TestApplyScenario(t *testing.T) {
	todos := []dom.Todo{todo("a", dom.CategoryWork, false, now)}

	got := Apply(todos, Selection{Category: catPtr(dom.CategoryWork), Status: StatusActive, TimeFrame: TimeFrameToday}, now)
	if !equalIDs(ids(got), []string{"a"}) {
		t.Errorf("work/active/today = %v, want [a]", ids(got))
	}

	got = Apply(todos, Selection{Category: catPtr(dom.CategoryPersonal), Status: StatusActive, TimeFrame: TimeFrameToday}, now)
	if len(got) != 0 {
		t.Errorf("personal = %v, want empty", ids(got))
	}
	if got == nil {
		t.Error("no match should return an empty, non-nil slice")
	}
}

func TestApplyPredicates(t *testing.T) {
	startOfToday := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	todos := []dom.Todo{
		todo("yesterday", dom.CategoryWork, false, startOfToday.Add(-time.Second)),
		todo("midnight", dom.CategoryWork, false, startOfToday),
		todo("tonight", dom.CategoryHealth, true, time.Date(2024, 3, 20, 23, 59, 59, 0, time.UTC)),
		todo("tomorrow", dom.CategoryPersonal, false, startOfToday.AddDate(0, 0, 1)),
		todo("day7", dom.CategoryWork, true, time.Date(2024, 3, 27, 23, 59, 59, 0, time.UTC)),
		todo("day8", dom.CategoryWork, false, time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC)),
		todo("month-end", dom.CategoryShopping, false, time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)),
		todo("next-month", dom.CategoryOther, false, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{"empty selection keeps all", Selection{}, ids(todos)},
		{"category", Selection{Category: catPtr(dom.CategoryWork)}, []string{"yesterday", "midnight", "day7", "day8"}},
		{"completed", Selection{Status: StatusCompleted}, []string{"tonight", "day7"}},
		{"active", Selection{Status: StatusActive}, []string{"yesterday", "midnight", "tomorrow", "day8", "month-end", "next-month"}},
		{"today", Selection{TimeFrame: TimeFrameToday}, []string{"midnight", "tonight"}},
		{"week", Selection{TimeFrame: TimeFrameWeek}, []string{"midnight", "tonight", "tomorrow", "day7"}},
		{"month is calendar month", Selection{TimeFrame: TimeFrameMonth}, []string{"midnight", "tonight", "tomorrow", "day7", "day8", "month-end"}},
		{"all three", Selection{Category: catPtr(dom.CategoryWork), TimeFrame: TimeFrameWeek, Status: StatusActive}, []string{"midnight"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(todos, tt.sel, now))
			if !equalIDs(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyExcludesOnlyOnContradiction(t *testing.T) {
	base := todo("x", dom.CategoryHealth, true, now)
	sels := []Selection{
		{Category: catPtr(dom.CategoryHealth)},
		{Status: StatusCompleted},
		{TimeFrame: TimeFrameToday},
		{Category: catPtr(dom.CategoryHealth), Status: StatusCompleted, TimeFrame: TimeFrameMonth},
	}
	for _, sel := range sels {
		if !newMatcher(sel, now).match(base) {
			t.Errorf("match(%+v) = false, want true", sel)
		}
	}
	contradicting := []Selection{
		{Category: catPtr(dom.CategoryWork)},
		{Status: StatusActive},
		{TimeFrame: TimeFrameToday, Category: catPtr(dom.CategoryShopping)},
	}
	for _, sel := range contradicting {
		if newMatcher(sel, now).match(base) {
			t.Errorf("match(%+v) = true, want false", sel)
		}
	}
}

func TestApplyUsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	localNow := time.Date(2024, 3, 21, 8, 0, 0, 0, loc)
	// 2024-03-20 23:00 UTC is 2024-03-21 09:00 in UTC+10.
	due := time.Date(2024, 3, 20, 23, 0, 0, 0, time.UTC)

	got := Apply([]dom.Todo{todo("a", dom.CategoryWork, false, due)}, Selection{TimeFrame: TimeFrameToday}, localNow)
	if len(got) != 1 {
		t.Errorf("expected todo to be due today in %s", loc)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	todos := []dom.Todo{todo("a", dom.CategoryWork, false, now), todo("b", dom.CategoryHealth, false, now)}
	_ = Apply(todos, Selection{Category: catPtr(dom.CategoryHealth)}, now)
	if todos[0].ID != "a" || todos[1].ID != "b" {
		t.Error("input slice was reordered")
	}
}

func TestSearchOverdueUpcoming(t *testing.T) {
	todos := []dom.Todo{
		{ID: "late2", Title: "Pay rent", DueDate: now.Add(-time.Hour)},
		{ID: "late1", Title: "Dentist", Description: "call to RESCHEDULE", DueDate: now.Add(-48 * time.Hour)},
		{ID: "done", Title: "Old", Completed: true, DueDate: now.Add(-72 * time.Hour)},
		{ID: "soon", Title: "Gym", DueDate: now.Add(time.Hour)},
		{ID: "far", Title: "Trip", DueDate: now.Add(8 * 24 * time.Hour)},
	}

	if got := ids(Search(todos, "reschedule")); !equalIDs(got, []string{"late1"}) {
		t.Errorf("Search = %v", got)
	}
	if got := ids(Search(todos, "  ")); len(got) != len(todos) {
		t.Errorf("blank search = %v, want all", got)
	}
	if got := ids(Overdue(todos, now)); !equalIDs(got, []string{"late1", "late2"}) {
		t.Errorf("Overdue = %v", got)
	}
	if got := ids(Upcoming(todos, now)); !equalIDs(got, []string{"soon"}) {
		t.Errorf("Upcoming = %v", got)
	}
}
