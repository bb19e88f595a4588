package calendar

import (
	"testing"
	"time"

	dom "taskcal/internal/domain"
)

func nonEmpty(g Grid) int {
	n := 0
	for _, c := range g.Cells {
		if !c.Empty() {
			n++
		}
	}
	return n
}

func firstFilled(g Grid) int {
	for _, c := range g.Cells {
		if !c.Empty() {
			return c.Index
		}
	}
	return -1
}

func TestBuildGridShape(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	for year := 2023; year <= 2025; year++ {
		for m := time.January; m <= time.December; m++ {
			g := BuildGrid(year, m, now)
			if len(g.Cells) != CellCount {
				t.Fatalf("%d-%02d: %d cells", year, m, len(g.Cells))
			}
			wd := int(time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).Weekday())
			if got := firstFilled(g); got != wd {
				t.Errorf("%d-%02d: first day at %d, want %d", year, m, got, wd)
			}
			if got := nonEmpty(g); got != DaysInMonth(year, m) {
				t.Errorf("%d-%02d: %d days, want %d", year, m, got, DaysInMonth(year, m))
			}
		}
	}
}

func TestBuildGridFebruary(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := nonEmpty(BuildGrid(2024, time.February, now)); got != 29 {
		t.Errorf("Feb 2024 = %d days, want 29", got)
	}
	if got := nonEmpty(BuildGrid(2023, time.February, now)); got != 28 {
		t.Errorf("Feb 2023 = %d days, want 28", got)
	}
}

func TestBuildGridToday(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	g := BuildGrid(2024, time.March, now)
	var today []int
	for _, c := range g.Cells {
		if c.IsToday {
			today = append(today, c.Day)
		}
	}
	if len(today) != 1 || today[0] != 15 {
		t.Errorf("today cells = %v, want [15]", today)
	}

	for _, v := range []View{{2024, time.April}, {2023, time.March}} {
		for _, c := range BuildGrid(v.Year, v.Month, now).Cells {
			if c.IsToday {
				t.Errorf("%v: unexpected today on day %d", v, c.Day)
			}
		}
	}
}

func TestWeeksAndCellOf(t *testing.T) {
	g := BuildGrid(2024, time.September, time.Now())
	weeks := g.Weeks()
	if len(weeks) != Rows || len(weeks[0]) != Columns {
		t.Fatalf("weeks = %dx%d", len(weeks), len(weeks[0]))
	}
	// September 2024 starts on a Sunday.
	if idx := g.CellOf(1); idx != 0 {
		t.Errorf("CellOf(1) = %d, want 0", idx)
	}
	if idx := g.CellOf(31); idx != -1 {
		t.Errorf("CellOf(31) = %d, want -1", idx)
	}
}

func TestViewNavigation(t *testing.T) {
	v := View{Year: 2024, Month: time.December}
	if got := v.Next(); got != (View{2025, time.January}) {
		t.Errorf("Next = %v", got)
	}
	if got := (View{2024, time.January}).Prev(); got != (View{2023, time.December}) {
		t.Errorf("Prev = %v", got)
	}
}

func TestTodosForDayAndBucket(t *testing.T) {
	todos := []dom.Todo{
		{ID: "a", DueDate: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)},
		{ID: "b", DueDate: time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC)},
		{ID: "c", DueDate: time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC)},
		{ID: "d", DueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	if got := TodosForDay(todos, 15, time.March, 2024, time.UTC); len(got) != 2 {
		t.Errorf("TodosForDay(15) = %d, want 2", len(got))
	}

	// In UTC+2, "b" moves to the 16th.
	plus2 := time.FixedZone("UTC+2", 2*60*60)
	if got := TodosForDay(todos, 16, time.March, 2024, plus2); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("TodosForDay(16, UTC+2) = %v", got)
	}

	g := BuildGrid(2024, time.March, time.Now())
	buckets := Bucket(g, todos, time.UTC)
	if len(buckets) != CellCount {
		t.Fatalf("buckets = %d", len(buckets))
	}
	if got := len(buckets[g.CellOf(15)]); got != 2 {
		t.Errorf("bucket 15 = %d, want 2", got)
	}
	if got := len(buckets[g.CellOf(1)]); got != 1 {
		t.Errorf("bucket 1 = %d, want 1", got)
	}
	if buckets[0] == nil {
		t.Error("padding cell bucket should be empty, not nil")
	}
}
