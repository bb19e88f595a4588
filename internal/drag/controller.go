// Package drag turns a drag gesture that ends over a calendar day into a
// due date change.
package drag

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"taskcal/internal/calendar"
	dom "taskcal/internal/domain"
)

// DefaultThreshold is the pointer travel, in pixels, that activates a drag.
const DefaultThreshold = 8.0

type State int

const (
	Idle State = iota
	Pending
	Dragging
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Dragging:
		return "dragging"
	}
	return "idle"
}

type Point struct {
	X, Y float64
}

func (p Point) dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Source is the todo collection a drop reads from and writes through.
type Source interface {
	Todo(id string) (dom.Todo, bool)
	Update(ctx context.Context, id string, patch dom.TodoPatch) error
}

// Gesture is the in-flight drag.
type Gesture struct {
	State  State
	TodoID string
	Origin Point
	At     Point
}

type Outcome int

const (
	NoTarget Outcome = iota
	NotDragging
	NotFound
	Rescheduled
	Failed
)

func (o Outcome) String() string {
	switch o {
	case NotDragging:
		return "not_dragging"
	case NotFound:
		return "not_found"
	case Rescheduled:
		return "rescheduled"
	case Failed:
		return "failed"
	}
	return "no_target"
}

type Option func(*Controller)

// WithLocation sets the zone the calendar is displayed in. Due dates are
// converted to it before the day is replaced.
func WithLocation(loc *time.Location) Option {
	return func(c *Controller) { c.loc = loc }
}

// WithThreshold sets the activation distance.
func WithThreshold(px float64) Option {
	return func(c *Controller) {
		if px > 0 {
			c.threshold = px
		}
	}
}

// WithKeepTimeOfDay controls whether a drop keeps the original clock time.
// When false the new due date is midnight of the target day.
func WithKeepTimeOfDay(keep bool) Option {
	return func(c *Controller) { c.keepTime = keep }
}

// Controller tracks a single pointer gesture.
type Controller struct {
	src       Source
	threshold float64
	keepTime  bool
	loc       *time.Location

	mu sync.Mutex
	g  Gesture
}

func NewController(src Source, opts ...Option) *Controller {
	c := &Controller{src: src, threshold: DefaultThreshold, keepTime: true}
	for _, o := range opts {
		o(c)
	}
	return c
}

// PointerDown arms a gesture on a task. Ignored unless idle.
func (c *Controller) PointerDown(todoID string, at Point) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.g.State != Idle || todoID == "" {
		return false
	}
	c.g = Gesture{State: Pending, TodoID: todoID, Origin: at, At: at}
	return true
}

// PointerMove updates the pointer and reports whether a drag is active.
func (c *Controller) PointerMove(at Point) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.g.State {
	case Idle:
		return false
	case Pending:
		c.g.At = at
		if at.dist(c.g.Origin) >= c.threshold {
			c.g.State = Dragging
		}
	case Dragging:
		c.g.At = at
	}
	return c.g.State == Dragging
}

// Cancel drops the gesture without any mutation.
func (c *Controller) Cancel() {
	c.mu.Lock()
	c.g = Gesture{}
	c.mu.Unlock()
}

// Active returns the current gesture, if any.
func (c *Controller) Active() (Gesture, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.g, c.g.State != Idle
}

// Drop releases the pointer over target, the id of a day cell ("15") or ""
// when nothing is under the pointer. The controller is idle afterwards.
func (c *Controller) Drop(ctx context.Context, view calendar.View, target string) (Outcome, error) {
	c.mu.Lock()
	g := c.g
	c.g = Gesture{}
	c.mu.Unlock()

	if g.State != Dragging {
		return NotDragging, nil
	}
	day, ok := parseDay(view, target)
	if !ok {
		return NoTarget, nil
	}
	todo, ok := c.src.Todo(g.TodoID)
	if !ok {
		return NotFound, nil
	}
	due := todo.DueDate
	if c.loc != nil {
		due = due.In(c.loc)
	}
	due = Reschedule(due, view, day, c.keepTime)
	if err := c.src.Update(ctx, g.TodoID, dom.TodoPatch{DueDate: &due}); err != nil {
		return Failed, err
	}
	return Rescheduled, nil
}

// Reschedule moves due to the given day of view in due's location.
func Reschedule(due time.Time, view calendar.View, day int, keepTime bool) time.Time {
	loc := due.Location()
	if !keepTime {
		return time.Date(view.Year, view.Month, day, 0, 0, 0, 0, loc)
	}
	h, m, s := due.Clock()
	return time.Date(view.Year, view.Month, day, h, m, s, due.Nanosecond(), loc)
}

func parseDay(view calendar.View, target string) (int, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return 0, false
	}
	day, err := strconv.Atoi(target)
	if err != nil || day < 1 || day > calendar.DaysInMonth(view.Year, view.Month) {
		return 0, false
	}
	return day, true
}
