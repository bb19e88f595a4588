package filter

import (
	"errors"
	"testing"

	dom "taskcal/internal/domain"
)

func TestToggleTwiceClears(t *testing.T) {
	actions := []Action{
		ToggleCategory(dom.CategoryWork),
		ToggleTimeFrame(TimeFrameWeek),
		ToggleStatus(StatusActive),
	}
	for _, a := range actions {
		s := Reduce(Selection{}, a)
		if s.IsZero() {
			t.Fatalf("%s: first toggle should set a value", a.Kind)
		}
		s = Reduce(s, a)
		if !s.IsZero() {
			t.Errorf("%s: second toggle = %+v, want zero selection", a.Kind, s)
		}
	}
}

func TestToggleSwitchesValue(t *testing.T) {
	s := Reduce(Selection{}, ToggleCategory(dom.CategoryWork))
	s = Reduce(s, ToggleCategory(dom.CategoryHealth))
	if s.Category == nil || *s.Category != dom.CategoryHealth {
		t.Errorf("Category = %v, want health", s.Category)
	}
}

func TestSetIsIdempotentAndIndependent(t *testing.T) {
	s := Reduce(Selection{}, SetStatus(StatusCompleted))
	s = Reduce(s, SetStatus(StatusCompleted))
	if s.Status != StatusCompleted {
		t.Errorf("Status = %q", s.Status)
	}
	s = Reduce(s, SetTimeFrame(TimeFrameMonth))
	s = Reduce(s, SetCategory(dom.CategoryShopping))
	if s.Status != StatusCompleted || s.TimeFrame != TimeFrameMonth || *s.Category != dom.CategoryShopping {
		t.Errorf("selection = %+v", s)
	}
	if got := Reduce(s, Clear()); !got.IsZero() {
		t.Errorf("Clear = %+v", got)
	}
}

func TestParseAction(t *testing.T) {
	if _, err := ParseAction("toggle_category", "work"); err != nil {
		t.Errorf("valid action: %v", err)
	}
	if _, err := ParseAction("toggle_category", "errands"); !errors.Is(err, dom.ErrInvalidCategory) {
		t.Errorf("bad category: %v", err)
	}
	if _, err := ParseAction("set_time_frame", "year"); err == nil {
		t.Error("bad time frame accepted")
	}
	if _, err := ParseAction("explode", ""); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("unknown kind: %v", err)
	}
}
