// Package filter derives the visible subset of todos from the active selection.
package filter

import (
	"sort"
	"strings"
	"time"

	dom "taskcal/internal/domain"
)

type TimeFrame string

const (
	TimeFrameNone  TimeFrame = ""
	TimeFrameToday TimeFrame = "today"
	TimeFrameWeek  TimeFrame = "week"
	TimeFrameMonth TimeFrame = "month"
)

func (t TimeFrame) Valid() bool {
	switch t {
	case TimeFrameNone, TimeFrameToday, TimeFrameWeek, TimeFrameMonth:
		return true
	}
	return false
}

type Status string

const (
	StatusNone      Status = ""
	StatusCompleted Status = "completed"
	StatusActive    Status = "active"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNone, StatusCompleted, StatusActive:
		return true
	}
	return false
}

// Selection holds three independent constraints; the zero value matches everything.
type Selection struct {
	Category  *dom.Category
	TimeFrame TimeFrame
	Status    Status
}

func (s Selection) IsZero() bool {
	return s.Category == nil && s.TimeFrame == TimeFrameNone && s.Status == StatusNone
}

// Apply returns the todos matching sel, in input order. Boundaries are
// computed in now's location.
func Apply(todos []dom.Todo, sel Selection, now time.Time) []dom.Todo {
	m := newMatcher(sel, now)
	out := make([]dom.Todo, 0, len(todos))
	for _, t := range todos {
		if m.match(t) {
			out = append(out, t)
		}
	}
	return out
}

// matcher holds a selection with its time window resolved once.
type matcher struct {
	sel        Selection
	start, end time.Time
	loc        *time.Location
}

func newMatcher(sel Selection, now time.Time) matcher {
	start, end := window(sel.TimeFrame, now)
	return matcher{sel: sel, start: start, end: end, loc: now.Location()}
}

func (m matcher) match(t dom.Todo) bool {
	if m.sel.Category != nil && t.Category != *m.sel.Category {
		return false
	}
	if !matchStatus(m.sel.Status, t.Completed) {
		return false
	}
	if m.sel.TimeFrame != TimeFrameNone {
		due := t.DueDate.In(m.loc)
		if due.Before(m.start) || due.After(m.end) {
			return false
		}
	}
	return true
}

func matchStatus(s Status, completed bool) bool {
	switch s {
	case StatusCompleted:
		return completed
	case StatusActive:
		return !completed
	}
	return true
}

// window returns the inclusive [start, end] range of a time frame.
// The month frame ends with the current calendar month, not 30 days out.
func window(tf TimeFrame, now time.Time) (time.Time, time.Time) {
	start := StartOfDay(now)
	switch tf {
	case TimeFrameToday:
		return start, EndOfDay(start)
	case TimeFrameWeek:
		return start, EndOfDay(start.AddDate(0, 0, 7))
	case TimeFrameMonth:
		last := time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, start.Location())
		return start, EndOfDay(last)
	}
	return time.Time{}, time.Time{}
}

// StartOfDay returns 00:00:00 of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Search matches q case-insensitively against title and description.
func Search(todos []dom.Todo, q string) []dom.Todo {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]dom.Todo, 0, len(todos))
	for _, t := range todos {
		if q == "" ||
			strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}

// Overdue returns incomplete todos due before now, earliest first.
func Overdue(todos []dom.Todo, now time.Time) []dom.Todo {
	out := make([]dom.Todo, 0)
	for _, t := range todos {
		if !t.Completed && t.DueDate.Before(now) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out
}

// Upcoming returns todos due between one and seven days ahead, rounding
// partial days up.
func Upcoming(todos []dom.Todo, now time.Time) []dom.Todo {
	out := make([]dom.Todo, 0)
	for _, t := range todos {
		diff := t.DueDate.Sub(now)
		days := int64(diff / (24 * time.Hour))
		if diff%(24*time.Hour) > 0 {
			days++
		}
		if days > 0 && days <= 7 {
			out = append(out, t)
		}
	}
	return out
}
