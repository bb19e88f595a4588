package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"taskcal/internal/board"
	"taskcal/internal/calendar"
	"taskcal/internal/drag"
	"taskcal/internal/dto"
	"taskcal/internal/filter"

	"github.com/gin-gonic/gin"
)

// BoardHandler serves the per-user filter selection, calendar view and drag gesture.
type BoardHandler struct {
	boards *board.Registry
}

func NewBoardHandler(boards *board.Registry) *BoardHandler {
	return &BoardHandler{boards: boards}
}

func selectionResponse(sel filter.Selection) dto.FilterResponse {
	r := dto.FilterResponse{TimeFrame: string(sel.TimeFrame), Status: string(sel.Status)}
	if sel.Category != nil {
		cat := string(*sel.Category)
		r.Category = &cat
	}
	return r
}

// Filters godoc
// @Summary      Current filter selection
// @Tags         filters
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.FilterResponse
// @Router       /filters [get]
func (h *BoardHandler) Filters(c *gin.Context) {
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, selectionResponse(b.Selection()))
}

// Dispatch godoc
// @Summary      Apply a filter action
// @Description  Actions: set_category, toggle_category, set_time_frame, toggle_time_frame, set_status, toggle_status, clear. Toggling the active value clears it.
// @Tags         filters
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.FilterRequest  true  "Action"
// @Success      200   {object}  dto.FilterResponse
// @Failure      400   {object}  map[string]string
// @Router       /filters [post]
func (h *BoardHandler) Dispatch(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	action, err := filter.ParseAction(req.Action, req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, selectionResponse(b.Dispatch(action)))
}

func pageResponse(p board.Page) dto.CalendarResponse {
	days := make([]dto.DayResponse, len(p.Days))
	for i, d := range p.Days {
		days[i] = dto.DayResponse{Index: d.Index, Day: d.Day, IsToday: d.IsToday, Todos: todosToResponses(d.Todos)}
	}
	return dto.CalendarResponse{Year: p.View.Year, Month: int(p.View.Month), Title: p.Title, Days: days}
}

// Calendar godoc
// @Summary      Month grid with the visible todos
// @Description  42 cells, Sunday first. Without year and month the board's current month is shown; with them that month becomes the displayed month for later drops.
// @Tags         calendar
// @Produce      json
// @Security     CookieAuth
// @Param        year   query     int  false  "Year"
// @Param        month  query     int  false  "Month 1..12"
// @Success      200  {object}  dto.CalendarResponse
// @Failure      400  {object}  map[string]string
// @Router       /calendar [get]
func (h *BoardHandler) Calendar(c *gin.Context) {
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	view := b.View()
	if y, m := c.Query("year"), c.Query("month"); y != "" || m != "" {
		year, yerr := strconv.Atoi(y)
		month, merr := strconv.Atoi(m)
		view = calendar.View{Year: year, Month: time.Month(month)}
		if yerr != nil || merr != nil || !view.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year and month (1..12) must be given together"})
			return
		}
		// Drops land on the month the client last displayed.
		if err := b.SetView(view); err != nil {
			writeError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, pageResponse(b.Calendar(view)))
}

// Navigate godoc
// @Summary      Move the displayed month
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.NavigateRequest  true  "prev, next or today"
// @Success      200   {object}  dto.CalendarResponse
// @Failure      400   {object}  map[string]string
// @Router       /calendar/navigate [post]
func (h *BoardHandler) Navigate(c *gin.Context) {
	var req dto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	view, err := b.Navigate(req.Direction)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse(b.Calendar(view)))
}

func dragState(b *board.Board) dto.DragStateResponse {
	g, active := b.Drag().Active()
	if !active {
		return dto.DragStateResponse{State: drag.Idle.String()}
	}
	r := dto.DragStateResponse{
		State:  g.State.String(),
		TodoID: g.TodoID,
		Origin: &dto.PointRequest{X: g.Origin.X, Y: g.Origin.Y},
		At:     &dto.PointRequest{X: g.At.X, Y: g.At.Y},
	}
	if t, ok := b.Store().Todo(g.TodoID); ok {
		resp := todoToResponse(t)
		r.Todo = &resp
	}
	return r
}

// DragState godoc
// @Summary      Current drag gesture
// @Tags         calendar
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.DragStateResponse
// @Router       /calendar/drag [get]
func (h *BoardHandler) DragState(c *gin.Context) {
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dragState(b))
}

// DragStart godoc
// @Summary      Pointer down on a task
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.DragStartRequest  true  "Task and pointer position"
// @Success      200   {object}  dto.DragStateResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /calendar/drag/start [post]
func (h *BoardHandler) DragStart(c *gin.Context) {
	var req dto.DragStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	if !b.Drag().PointerDown(req.TodoID, drag.Point{X: req.X, Y: req.Y}) {
		c.JSON(http.StatusConflict, gin.H{"error": "a drag is already in progress"})
		return
	}
	c.JSON(http.StatusOK, dragState(b))
}

// DragMove godoc
// @Summary      Pointer moved
// @Description  The gesture activates once the pointer has travelled the threshold distance.
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.PointRequest  true  "Pointer position"
// @Success      200   {object}  dto.DragStateResponse
// @Failure      400   {object}  map[string]string
// @Router       /calendar/drag/move [post]
func (h *BoardHandler) DragMove(c *gin.Context) {
	var req dto.PointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	b.Drag().PointerMove(drag.Point{X: req.X, Y: req.Y})
	c.JSON(http.StatusOK, dragState(b))
}

// DragEnd godoc
// @Summary      Drop over a day
// @Description  Reschedules the dragged task to the day of the displayed month. Drops outside the grid, before activation or on a missing task change nothing.
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.DragEndRequest  true  "Drop target"
// @Success      200   {object}  dto.DropResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /calendar/drag/end [post]
func (h *BoardHandler) DragEnd(c *gin.Context) {
	var req dto.DragEndRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	g, _ := b.Drag().Active()
	outcome, err := b.Drop(c.Request.Context(), req.Over)
	if err != nil {
		writeError(c, err)
		return
	}
	resp := dto.DropResponse{Outcome: outcome.String()}
	if outcome == drag.Rescheduled {
		if t, ok := b.Store().Todo(g.TodoID); ok {
			tr := todoToResponse(t)
			resp.Todo = &tr
		}
	}
	c.JSON(http.StatusOK, resp)
}

// DragCancel godoc
// @Summary      Abandon the drag
// @Tags         calendar
// @Security     CookieAuth
// @Success      204
// @Router       /calendar/drag/cancel [post]
func (h *BoardHandler) DragCancel(c *gin.Context) {
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	b.Drag().Cancel()
	c.Status(http.StatusNoContent)
}
