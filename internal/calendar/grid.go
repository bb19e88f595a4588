// Package calendar builds the fixed month grid and assigns todos to its days.
package calendar

import (
	"time"

	dom "taskcal/internal/domain"
)

const (
	Columns   = 7
	Rows      = 6
	CellCount = Columns * Rows
)

// Cell is one grid slot. Day is 0 for padding cells.
type Cell struct {
	Index   int
	Day     int
	IsToday bool
}

func (c Cell) Empty() bool { return c.Day == 0 }

type Grid struct {
	Year  int
	Month time.Month
	Cells []Cell
}

// View is the displayed month.
type View struct {
	Year  int
	Month time.Month
}

func ViewOf(t time.Time) View {
	return View{Year: t.Year(), Month: t.Month()}
}

func (v View) Next() View { return v.shift(1) }
func (v View) Prev() View { return v.shift(-1) }

func (v View) shift(n int) View {
	t := time.Date(v.Year, v.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return View{Year: t.Year(), Month: t.Month()}
}

func (v View) Valid() bool {
	return v.Month >= time.January && v.Month <= time.December
}

// DaysInMonth returns day 0 of the following month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildGrid lays out the month in 42 cells starting on Sunday.
// IsToday is set only when now falls in the displayed month.
func BuildGrid(year int, month time.Month, now time.Time) Grid {
	first := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
	days := DaysInMonth(year, month)
	ny, nm, nd := now.Date()
	showsToday := ny == year && nm == month

	cells := make([]Cell, CellCount)
	for i := range cells {
		cells[i].Index = i
		day := i - first + 1
		if day < 1 || day > days {
			continue
		}
		cells[i].Day = day
		cells[i].IsToday = showsToday && day == nd
	}
	return Grid{Year: year, Month: month, Cells: cells}
}

// Weeks splits the grid into rows of seven.
func (g Grid) Weeks() [][]Cell {
	out := make([][]Cell, 0, Rows)
	for i := 0; i < len(g.Cells); i += Columns {
		out = append(out, g.Cells[i:i+Columns])
	}
	return out
}

// CellOf returns the index of the cell holding day, or -1.
func (g Grid) CellOf(day int) int {
	for _, c := range g.Cells {
		if c.Day == day {
			return c.Index
		}
	}
	return -1
}

// TodosForDay returns the todos whose due date falls on the given day in loc.
func TodosForDay(todos []dom.Todo, day int, month time.Month, year int, loc *time.Location) []dom.Todo {
	out := make([]dom.Todo, 0)
	for _, t := range todos {
		y, m, d := t.DueDate.In(loc).Date()
		if y == year && m == month && d == day {
			out = append(out, t)
		}
	}
	return out
}

// Bucket assigns todos to the grid cells; padding cells get empty slices.
func Bucket(g Grid, todos []dom.Todo, loc *time.Location) [][]dom.Todo {
	out := make([][]dom.Todo, len(g.Cells))
	for i, c := range g.Cells {
		if c.Empty() {
			out[i] = []dom.Todo{}
			continue
		}
		out[i] = TodosForDay(todos, c.Day, g.Month, g.Year, loc)
	}
	return out
}
