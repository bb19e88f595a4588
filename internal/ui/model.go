// Package ui is the terminal calendar. Keys move a focused day; grabbing a
// todo and walking the focus to another day drives the same drag gesture the
// HTTP API exposes.
package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskcal/internal/board"
	"taskcal/internal/calendar"
	"taskcal/internal/config"
	dom "taskcal/internal/domain"
	"taskcal/internal/drag"
	"taskcal/internal/filter"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeConfirmDelete
)

// cellWidth is both the rendered width of a day and the pointer travel of
// one step, so a single move clears the default drag threshold.
const cellWidth = 10

type loadedMsg struct{ err error }

type Model struct {
	ctx   context.Context
	board *board.Board
	keys  config.Keymap

	mode   mode
	focus  int
	item   int
	input  textinput.Model
	status string
}

func New(ctx context.Context, b *board.Board, keys config.Keymap) Model {
	ti := textinput.New()
	ti.Placeholder = "Buy milk"
	ti.CharLimit = 200
	ti.Width = 40

	m := Model{ctx: ctx, board: b, keys: keys, input: ti, focus: 1}
	if now := b.Now(); calendar.ViewOf(now) == b.View() {
		m.focus = now.Day()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.load
}

func (m Model) load() tea.Msg {
	return loadedMsg{err: m.board.EnsureLoaded(m.ctx)}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("load failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Loaded %d todos", len(m.board.Store().Todos()))
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.mode {
	case modeAdd:
		return m.updateAddMode(key, msg)
	case modeConfirmDelete:
		return m.updateDeleteConfirm(key)
	}
	return m.updateBrowseMode(key)
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case config.Matches(m.keys.Cancel, key):
		m.mode = modeBrowse
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case key == "enter":
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.status = "Title cannot be empty"
			return m, nil
		}
		due := drag.Reschedule(m.board.Now(), m.board.View(), m.focus, true)
		created, err := m.board.Store().Add(m.ctx, dom.Todo{Title: title, DueDate: due})
		if err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		m.status = fmt.Sprintf("Added %q", created.Title)
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeBrowse
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.mode = modeBrowse
		t, ok := m.selected()
		if !ok {
			m.status = "Nothing to delete"
			return m, nil
		}
		if err := m.board.Store().Delete(m.ctx, t.ID); err != nil {
			m.status = fmt.Sprintf("delete failed: %v", err)
			return m, nil
		}
		m.item = 0
		m.status = "Deleted todo"
	case "n", "N", "esc":
		m.mode = modeBrowse
		m.status = "Delete cancelled"
	}
	return m, nil
}

func (m Model) updateBrowseMode(key string) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case config.Matches(k.Quit, key):
		return m, tea.Quit
	case config.Matches(k.Left, key):
		m.moveFocus(-1)
	case config.Matches(k.Right, key):
		m.moveFocus(1)
	case config.Matches(k.Up, key):
		m.moveFocus(-calendar.Columns)
	case config.Matches(k.Down, key):
		m.moveFocus(calendar.Columns)
	case config.Matches(k.NextItem, key):
		if n := len(m.dayTodos()); n > 0 {
			m.item = (m.item + 1) % n
		}
	case config.Matches(k.NextMonth, key):
		m.navigate("next")
	case config.Matches(k.PrevMonth, key):
		m.navigate("prev")
	case config.Matches(k.Today, key):
		m.navigate("today")
	case config.Matches(k.Grab, key):
		m.grab()
	case config.Matches(k.Drop, key):
		m.drop()
	case config.Matches(k.Cancel, key):
		if _, ok := m.board.Drag().Active(); ok {
			m.board.Drag().Cancel()
			m.status = "Drag cancelled"
		}
	case config.Matches(k.Add, key):
		m.mode = modeAdd
		m.input.Focus()
		m.status = "Add mode: type a title and press Enter"
	case config.Matches(k.Toggle, key):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.board.Store().Toggle(m.ctx, t.ID); err != nil {
			m.status = fmt.Sprintf("toggle failed: %v", err)
			return m, nil
		}
		m.status = "Toggled todo"
	case config.Matches(k.Delete, key):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.status = fmt.Sprintf("Delete %q? y/n", t.Title)
	case config.Matches(k.CycleCategory, key):
		sel := m.board.Dispatch(filter.SetCategory(nextCategory(m.board.Selection().Category)))
		m.item = 0
		m.status = "Category: " + categoryLabel(sel.Category)
	case config.Matches(k.CycleTimeFrame, key):
		sel := m.board.Dispatch(filter.SetTimeFrame(nextTimeFrame(m.board.Selection().TimeFrame)))
		m.item = 0
		m.status = "Time frame: " + orAll(string(sel.TimeFrame))
	case config.Matches(k.CycleStatus, key):
		sel := m.board.Dispatch(filter.SetStatus(nextStatus(m.board.Selection().Status)))
		m.item = 0
		m.status = "Status: " + orAll(string(sel.Status))
	}
	return m, nil
}

// moveFocus walks the focused day, switching months at the edges, and feeds
// the new position to an armed gesture.
func (m *Model) moveFocus(delta int) {
	v := m.board.View()
	d := time.Date(v.Year, v.Month, m.focus+delta, 0, 0, 0, 0, time.UTC)
	if next := calendar.ViewOf(d); next != v {
		_ = m.board.SetView(next)
	}
	m.focus = d.Day()
	m.item = 0
	m.board.Drag().PointerMove(pointAt(m.board.View(), m.focus))
}

func (m *Model) navigate(direction string) {
	v, err := m.board.Navigate(direction)
	if err != nil {
		m.status = err.Error()
		return
	}
	if direction == "today" {
		m.focus = m.board.Now().Day()
	} else if days := calendar.DaysInMonth(v.Year, v.Month); m.focus > days {
		m.focus = days
	}
	m.item = 0
	m.board.Drag().PointerMove(pointAt(v, m.focus))
}

func (m *Model) grab() {
	t, ok := m.selected()
	if !ok {
		m.status = "Nothing to grab on this day"
		return
	}
	if !m.board.Drag().PointerDown(t.ID, pointAt(m.board.View(), m.focus)) {
		m.status = "Already dragging"
		return
	}
	m.status = fmt.Sprintf("Grabbed %q: move to a day and press %s", t.Title, firstKey(m.keys.Drop))
}

func (m *Model) drop() {
	g, ok := m.board.Drag().Active()
	if !ok {
		return
	}
	outcome, err := m.board.Drop(m.ctx, strconv.Itoa(m.focus))
	switch {
	case err != nil:
		m.status = fmt.Sprintf("reschedule failed: %v", err)
	case outcome == drag.Rescheduled:
		t, _ := m.board.Store().Todo(g.TodoID)
		m.status = fmt.Sprintf("Moved %q to %s", t.Title, t.DueDate.In(m.board.Location()).Format("Mon Jan 2"))
	case outcome == drag.NotDragging:
		m.status = "Released without moving"
	default:
		m.status = "Nothing changed: " + outcome.String()
	}
}

// dayTodos returns the visible todos due on the focused day.
func (m Model) dayTodos() []dom.Todo {
	v := m.board.View()
	return calendar.TodosForDay(m.board.Visible(), m.focus, v.Month, v.Year, m.board.Location())
}

func (m Model) selected() (dom.Todo, bool) {
	list := m.dayTodos()
	if len(list) == 0 {
		return dom.Todo{}, false
	}
	if m.item >= len(list) {
		return list[0], true
	}
	return list[m.item], true
}

// pointAt places a day on an unbounded week grid so that pointer distance
// stays meaningful when the focus crosses into another month.
func pointAt(v calendar.View, day int) drag.Point {
	d := time.Date(v.Year, v.Month, day, 0, 0, 0, 0, time.UTC)
	// 1970-01-01 was a Thursday.
	n := int(d.Unix()/86400) + 4
	return drag.Point{
		X: float64((n % calendar.Columns) * cellWidth),
		Y: float64((n / calendar.Columns) * cellWidth),
	}
}

func nextCategory(cur *dom.Category) dom.Category {
	if cur == nil {
		return dom.Categories[0]
	}
	for i, c := range dom.Categories {
		if c == *cur && i+1 < len(dom.Categories) {
			return dom.Categories[i+1]
		}
	}
	return ""
}

var timeFrames = []filter.TimeFrame{filter.TimeFrameNone, filter.TimeFrameToday, filter.TimeFrameWeek, filter.TimeFrameMonth}

func nextTimeFrame(cur filter.TimeFrame) filter.TimeFrame {
	for i, tf := range timeFrames {
		if tf == cur {
			return timeFrames[(i+1)%len(timeFrames)]
		}
	}
	return filter.TimeFrameNone
}

var statuses = []filter.Status{filter.StatusNone, filter.StatusActive, filter.StatusCompleted}

func nextStatus(cur filter.Status) filter.Status {
	for i, s := range statuses {
		if s == cur {
			return statuses[(i+1)%len(statuses)]
		}
	}
	return filter.StatusNone
}

func categoryLabel(c *dom.Category) string {
	if c == nil {
		return "all"
	}
	return string(*c)
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}

func firstKey(binding string) string {
	k, _, _ := strings.Cut(binding, ",")
	return k
}
