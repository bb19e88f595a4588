package dto

// FilterRequest is one reducer action, e.g. {"action": "toggle_category", "value": "work"}.
type FilterRequest struct {
	Action string `json:"action" binding:"required"`
	Value  string `json:"value"`
}

type FilterResponse struct {
	Category  *string `json:"category"`
	TimeFrame string  `json:"time_frame"`
	Status    string  `json:"status"`
}

type DayResponse struct {
	Index   int            `json:"index"`
	Day     int            `json:"day"` // 0 for padding cells
	IsToday bool           `json:"is_today"`
	Todos   []TodoResponse `json:"todos"`
}

type CalendarResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"` // 1..12
	Title string        `json:"title"`
	Days  []DayResponse `json:"days"`
}

type NavigateRequest struct {
	Direction string `json:"direction" binding:"required,oneof=prev next today"`
}

type PointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type DragStartRequest struct {
	TodoID string  `json:"todo_id" binding:"required"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// DragEndRequest names the drop target; over is a day number of the
// displayed month, or empty when released outside the grid.
type DragEndRequest struct {
	Over string `json:"over"`
}

type DragStateResponse struct {
	State  string        `json:"state"`
	TodoID string        `json:"todo_id,omitempty"`
	Origin *PointRequest `json:"origin,omitempty"`
	At     *PointRequest `json:"at,omitempty"`
	Todo   *TodoResponse `json:"todo,omitempty"`
}

type DropResponse struct {
	Outcome string        `json:"outcome"`
	Todo    *TodoResponse `json:"todo,omitempty"`
}
