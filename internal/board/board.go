// Package board scopes one user's store, filter selection, calendar view and
// drag gesture together and hands them to the transports.
package board

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"taskcal/internal/calendar"
	dom "taskcal/internal/domain"
	"taskcal/internal/drag"
	"taskcal/internal/filter"
	"taskcal/internal/store"
)

var ErrBadDirection = errors.New("direction must be prev, next or today")

// Settings configures every board a registry creates.
type Settings struct {
	Location      *time.Location
	DragThreshold float64
	KeepTimeOfDay bool
	Now           func() time.Time
}

func (s Settings) now() time.Time {
	if s.Now != nil {
		return s.Now().In(s.loc())
	}
	return time.Now().In(s.loc())
}

func (s Settings) loc() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

// Board is safe for concurrent use.
type Board struct {
	settings Settings
	store    *store.Store
	drag     *drag.Controller

	mu   sync.Mutex
	sel  filter.Selection
	view calendar.View
}

func New(st *store.Store, settings Settings) *Board {
	b := &Board{settings: settings, store: st}
	b.drag = drag.NewController(st,
		drag.WithThreshold(settings.DragThreshold),
		drag.WithKeepTimeOfDay(settings.KeepTimeOfDay),
		drag.WithLocation(settings.loc()),
	)
	b.view = calendar.ViewOf(settings.now())
	return b
}

func (b *Board) Store() *store.Store { return b.store }

func (b *Board) Now() time.Time { return b.settings.now() }

func (b *Board) Location() *time.Location { return b.settings.loc() }

// EnsureLoaded fetches the collection the first time it is needed.
func (b *Board) EnsureLoaded(ctx context.Context) error {
	if b.store.Snapshot().Loaded {
		return nil
	}
	return b.store.Fetch(ctx)
}

func (b *Board) Selection() filter.Selection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sel
}

// Dispatch applies a filter action and returns the new selection.
func (b *Board) Dispatch(a filter.Action) filter.Selection {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel = filter.Reduce(b.sel, a)
	return b.sel
}

// Visible returns the todos that pass the board's selection.
func (b *Board) Visible() []dom.Todo {
	return b.VisibleWith(b.Selection())
}

// VisibleWith filters with an explicit selection, leaving the board's own untouched.
func (b *Board) VisibleWith(sel filter.Selection) []dom.Todo {
	return filter.Apply(b.store.Todos(), sel, b.Now())
}

func (b *Board) View() calendar.View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.view
}

func (b *Board) SetView(v calendar.View) error {
	if !v.Valid() {
		return fmt.Errorf("month %d out of range", v.Month)
	}
	b.mu.Lock()
	b.view = v
	b.mu.Unlock()
	return nil
}

// Navigate moves the displayed month.
func (b *Board) Navigate(direction string) (calendar.View, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch direction {
	case "prev":
		b.view = b.view.Prev()
	case "next":
		b.view = b.view.Next()
	case "today":
		b.view = calendar.ViewOf(b.settings.now())
	default:
		return b.view, ErrBadDirection
	}
	return b.view, nil
}

// Day is a grid cell with the visible todos due on it.
type Day struct {
	calendar.Cell
	Todos []dom.Todo
}

type Page struct {
	View  calendar.View
	Title string
	Grid  calendar.Grid
	Days  []Day
}

// Calendar renders the given month with the board's filtered todos.
func (b *Board) Calendar(v calendar.View) Page {
	now := b.Now()
	grid := calendar.BuildGrid(v.Year, v.Month, now)
	buckets := calendar.Bucket(grid, b.Visible(), b.Location())
	days := make([]Day, len(grid.Cells))
	for i, c := range grid.Cells {
		days[i] = Day{Cell: c, Todos: buckets[i]}
	}
	return Page{View: v, Title: fmt.Sprintf("%s %d", v.Month, v.Year), Grid: grid, Days: days}
}

func (b *Board) Drag() *drag.Controller { return b.drag }

// Drop finishes the gesture over target on the displayed month.
func (b *Board) Drop(ctx context.Context, target string) (drag.Outcome, error) {
	return b.drag.Drop(ctx, b.View(), target)
}
