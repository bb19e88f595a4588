package drag

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskcal/internal/calendar"
	dom "taskcal/internal/domain"
)

type updateCall struct {
	id    string
	patch dom.TodoPatch
}

type fakeSource struct {
	todos map[string]dom.Todo
	calls []updateCall
	err   error
}

func (f *fakeSource) Todo(id string) (dom.Todo, bool) {
	t, ok := f.todos[id]
	return t, ok
}

func (f *fakeSource) Update(_ context.Context, id string, patch dom.TodoPatch) error {
	f.calls = append(f.calls, updateCall{id: id, patch: patch})
	return f.err
}

var march2024 = calendar.View{Year: 2024, Month: time.March}

func newSource() *fakeSource {
	return &fakeSource{todos: map[string]dom.Todo{
		"t1": {ID: "t1", Title: "standup", DueDate: time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)},
	}}
}

func startDrag(t *testing.T, c *Controller, id string) {
	t.Helper()
	if !c.PointerDown(id, Point{X: 100, Y: 100}) {
		t.Fatal("PointerDown rejected")
	}
	if !c.PointerMove(Point{X: 110, Y: 100}) {
		t.Fatal("drag did not activate")
	}
}

func TestDropOverDayReschedules(t *testing.T) {
	src := newSource()
	c := NewController(src, WithKeepTimeOfDay(false))
	startDrag(t, c, "t1")

	out, err := c.Drop(context.Background(), march2024, "15")
	if err != nil || out != Rescheduled {
		t.Fatalf("Drop = %v, %v", out, err)
	}
	if len(src.calls) != 1 {
		t.Fatalf("update calls = %d, want 1", len(src.calls))
	}
	call := src.calls[0]
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if call.id != "t1" || call.patch.DueDate == nil || !call.patch.DueDate.Equal(want) {
		t.Errorf("update(%s, %v), want update(t1, %v)", call.id, call.patch.DueDate, want)
	}
	if _, active := c.Active(); active {
		t.Error("controller should be idle after drop")
	}
}

func TestDropKeepsTimeOfDay(t *testing.T) {
	src := newSource()
	c := NewController(src)
	startDrag(t, c, "t1")

	if _, err := c.Drop(context.Background(), march2024, "15"); err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	if got := *src.calls[0].patch.DueDate; !got.Equal(want) {
		t.Errorf("due = %v, want %v", got, want)
	}
}

func TestDropWithoutTargetIsNoop(t *testing.T) {
	for _, target := range []string{"", "empty", "0", "32", "abc"} {
		src := newSource()
		c := NewController(src)
		startDrag(t, c, "t1")

		out, err := c.Drop(context.Background(), march2024, target)
		if err != nil || out != NoTarget {
			t.Errorf("target %q: Drop = %v, %v", target, out, err)
		}
		if len(src.calls) != 0 {
			t.Errorf("target %q: update was called", target)
		}
		if _, active := c.Active(); active {
			t.Errorf("target %q: controller not idle", target)
		}
	}
}

func TestDropUnknownTodoIsSilent(t *testing.T) {
	src := newSource()
	c := NewController(src)
	startDrag(t, c, "gone")

	out, err := c.Drop(context.Background(), march2024, "10")
	if err != nil || out != NotFound {
		t.Errorf("Drop = %v, %v", out, err)
	}
	if len(src.calls) != 0 {
		t.Error("update was called for a missing todo")
	}
}

func TestBelowThresholdNeverActivates(t *testing.T) {
	src := newSource()
	c := NewController(src)
	c.PointerDown("t1", Point{X: 0, Y: 0})
	if c.PointerMove(Point{X: 5, Y: 5}) {
		t.Fatal("7px move activated the drag")
	}
	g, _ := c.Active()
	if g.State != Pending {
		t.Errorf("state = %v, want pending", g.State)
	}

	out, _ := c.Drop(context.Background(), march2024, "15")
	if out != NotDragging || len(src.calls) != 0 {
		t.Errorf("click drop = %v with %d calls", out, len(src.calls))
	}
}

func TestCustomThreshold(t *testing.T) {
	c := NewController(newSource(), WithThreshold(20))
	c.PointerDown("t1", Point{})
	if c.PointerMove(Point{X: 12}) {
		t.Error("activated below custom threshold")
	}
	if !c.PointerMove(Point{X: 12, Y: 16}) {
		t.Error("did not activate at 20px")
	}
}

func TestSingleGesture(t *testing.T) {
	c := NewController(newSource())
	c.PointerDown("t1", Point{})
	if c.PointerDown("t2", Point{}) {
		t.Error("second PointerDown accepted while a gesture is active")
	}
	g, _ := c.Active()
	if g.TodoID != "t1" {
		t.Errorf("TodoID = %q", g.TodoID)
	}
}

func TestCancelDiscardsGesture(t *testing.T) {
	src := newSource()
	c := NewController(src)
	startDrag(t, c, "t1")
	c.Cancel()

	if _, active := c.Active(); active {
		t.Error("gesture survived Cancel")
	}
	if out, _ := c.Drop(context.Background(), march2024, "15"); out != NotDragging {
		t.Errorf("Drop after cancel = %v", out)
	}
	if len(src.calls) != 0 {
		t.Error("update called after cancel")
	}
}

func TestDropSurfacesUpdateError(t *testing.T) {
	src := newSource()
	src.err = errors.New("network down")
	c := NewController(src)
	startDrag(t, c, "t1")

	out, err := c.Drop(context.Background(), march2024, "2")
	if out != Failed || err == nil {
		t.Errorf("Drop = %v, %v", out, err)
	}
	if _, active := c.Active(); active {
		t.Error("controller should be idle after a failed drop")
	}
}
