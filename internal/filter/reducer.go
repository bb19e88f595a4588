package filter

import (
	"errors"
	"fmt"

	dom "taskcal/internal/domain"
)

var ErrUnknownAction = errors.New("unknown filter action")

type ActionKind string

const (
	ActSetCategory     ActionKind = "set_category"
	ActToggleCategory  ActionKind = "toggle_category"
	ActSetTimeFrame    ActionKind = "set_time_frame"
	ActToggleTimeFrame ActionKind = "toggle_time_frame"
	ActSetStatus       ActionKind = "set_status"
	ActToggleStatus    ActionKind = "toggle_status"
	ActClear           ActionKind = "clear"
)

// Action is one selection change. An empty Value on a Set action clears
// that constraint.
type Action struct {
	Kind  ActionKind
	Value string
}

func SetCategory(c dom.Category) Action    { return Action{Kind: ActSetCategory, Value: string(c)} }
func ToggleCategory(c dom.Category) Action { return Action{Kind: ActToggleCategory, Value: string(c)} }
func SetTimeFrame(t TimeFrame) Action      { return Action{Kind: ActSetTimeFrame, Value: string(t)} }
func ToggleTimeFrame(t TimeFrame) Action   { return Action{Kind: ActToggleTimeFrame, Value: string(t)} }
func SetStatus(s Status) Action            { return Action{Kind: ActSetStatus, Value: string(s)} }
func ToggleStatus(s Status) Action         { return Action{Kind: ActToggleStatus, Value: string(s)} }
func Clear() Action                        { return Action{Kind: ActClear} }

// ParseAction validates a transport-level action.
func ParseAction(kind, value string) (Action, error) {
	a := Action{Kind: ActionKind(kind), Value: value}
	switch a.Kind {
	case ActSetCategory, ActToggleCategory:
		if value != "" && !dom.Category(value).Valid() {
			return Action{}, dom.ErrInvalidCategory
		}
	case ActSetTimeFrame, ActToggleTimeFrame:
		if !TimeFrame(value).Valid() {
			return Action{}, fmt.Errorf("time frame %q: must be today, week or month", value)
		}
	case ActSetStatus, ActToggleStatus:
		if !Status(value).Valid() {
			return Action{}, fmt.Errorf("status %q: must be completed or active", value)
		}
	case ActClear:
	default:
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, kind)
	}
	return a, nil
}

// Reduce returns the selection after a. Toggling the active value clears it.
func Reduce(s Selection, a Action) Selection {
	switch a.Kind {
	case ActSetCategory:
		s.Category = categoryPtr(a.Value)
	case ActToggleCategory:
		if s.Category != nil && string(*s.Category) == a.Value {
			s.Category = nil
		} else {
			s.Category = categoryPtr(a.Value)
		}
	case ActSetTimeFrame:
		s.TimeFrame = TimeFrame(a.Value)
	case ActToggleTimeFrame:
		if s.TimeFrame == TimeFrame(a.Value) {
			s.TimeFrame = TimeFrameNone
		} else {
			s.TimeFrame = TimeFrame(a.Value)
		}
	case ActSetStatus:
		s.Status = Status(a.Value)
	case ActToggleStatus:
		if s.Status == Status(a.Value) {
			s.Status = StatusNone
		} else {
			s.Status = Status(a.Value)
		}
	case ActClear:
		return Selection{}
	}
	return s
}

func categoryPtr(v string) *dom.Category {
	if v == "" {
		return nil
	}
	c := dom.Category(v)
	return &c
}
