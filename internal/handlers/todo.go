package handlers

import (
	"fmt"
	"net/http"
	"time"

	"taskcal/internal/board"
	dom "taskcal/internal/domain"
	"taskcal/internal/dto"
	"taskcal/internal/filter"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	boards *board.Registry
}

func NewTodoHandler(boards *board.Registry) *TodoHandler {
	return &TodoHandler{boards: boards}
}

// Create godoc
// @Summary      Create a todo
// @Description  Missing priority, category and due date default to medium, personal and now.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	t := todoFromCreate(req, b.Location())
	if err := t.WithDefaults(b.Now()).Validate(); err != nil {
		writeError(c, err)
		return
	}
	created, err := b.Store().Add(c.Request.Context(), t)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todoToResponse(created))
}

// List godoc
// @Summary      List visible todos
// @Description  Applies the board's filter selection. Query parameters override one axis for this request only; an empty value or "all" clears it.
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        category    query     string  false  "work|personal|health|shopping|other"
// @Param        time_frame  query     string  false  "today|week|month"
// @Param        status      query     string  false  "completed|active"
// @Success      200  {object}  dto.ListTodosResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	sel, err := selectionFromQuery(c, b.Selection())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap := b.Store().Snapshot()
	c.JSON(http.StatusOK, dto.ListTodosResponse{
		Items:   todosToResponses(b.VisibleWith(sel)),
		Loading: snap.Loading,
		Error:   snap.Err,
	})
}

func selectionFromQuery(c *gin.Context, sel filter.Selection) (filter.Selection, error) {
	if v, ok := c.GetQuery("category"); ok {
		if v == "" || v == "all" {
			sel.Category = nil
		} else {
			cat := dom.Category(v)
			if !cat.Valid() {
				return sel, dom.ErrInvalidCategory
			}
			sel.Category = &cat
		}
	}
	if v, ok := c.GetQuery("time_frame"); ok {
		if v == "all" {
			v = ""
		}
		if !filter.TimeFrame(v).Valid() {
			return sel, fmt.Errorf("time_frame %q: must be today, week or month", v)
		}
		sel.TimeFrame = filter.TimeFrame(v)
	}
	if v, ok := c.GetQuery("status"); ok {
		if v == "all" {
			v = ""
		}
		if !filter.Status(v).Valid() {
			return sel, fmt.Errorf("status %q: must be completed or active", v)
		}
		sel.Status = filter.Status(v)
	}
	return sel, nil
}

// Refresh godoc
// @Summary      Reload todos from storage
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListTodosResponse
// @Failure      500  {object}  map[string]string
// @Router       /todos/refresh [post]
func (h *TodoHandler) Refresh(c *gin.Context) {
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	if err := b.Store().Fetch(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTodosResponse{Items: todosToResponses(b.Visible())})
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.TodoResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	t, ok := b.Store().Todo(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Update godoc
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string  true  "Todo ID"
// @Param        body  body      dto.UpdateTodoRequest  true  "Partial update"
// @Success      200   {object}  dto.TodoResponse
// @Failure      400   {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todos/{id} [patch]
func (h *TodoHandler) Update(c *gin.Context) {
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	id := c.Param("id")
	if _, ok := b.Store().Todo(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	patch := patchFromUpdate(req, b.Location())
	if patch.IsEmpty() {
		writeError(c, dom.ErrEmptyPatch)
		return
	}
	if err := patch.Validate(); err != nil {
		writeError(c, err)
		return
	}
	if err := b.Store().Update(c.Request.Context(), id, patch); err != nil {
		writeError(c, err)
		return
	}
	t, _ := b.Store().Todo(id)
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Security     CookieAuth
// @Param        id   path  string  true  "Todo ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	id := c.Param("id")
	if _, ok := b.Store().Todo(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if err := b.Store().Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Toggle godoc
// @Summary      Flip a todo's completed flag
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.TodoResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todos/{id}/toggle [post]
func (h *TodoHandler) Toggle(c *gin.Context) {
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	id := c.Param("id")
	if _, ok := b.Store().Todo(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if err := b.Store().Toggle(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	t, _ := b.Store().Todo(id)
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Search godoc
// @Summary      Search todos by query
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        q    query     string  true  "Search query (title/description)"
// @Success      200  {object}  dto.ListTodosResponse
// @Failure      500  {object}  map[string]string
// @Router       /todos/search [get]
func (h *TodoHandler) Search(c *gin.Context) {
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	list := filter.Search(b.Store().Todos(), c.Query("q"))
	c.JSON(http.StatusOK, dto.ListTodosResponse{Items: todosToResponses(list)})
}

// Overdue godoc
// @Summary      List overdue todos
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListTodosResponse
// @Failure      500  {object}  map[string]string
// @Router       /todos/overdue [get]
func (h *TodoHandler) Overdue(c *gin.Context) {
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	list := filter.Overdue(b.Store().Todos(), b.Now())
	c.JSON(http.StatusOK, dto.ListTodosResponse{Items: todosToResponses(list)})
}

// Upcoming godoc
// @Summary      List todos due in the next seven days
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListTodosResponse
// @Failure      500  {object}  map[string]string
// @Router       /todos/upcoming [get]
func (h *TodoHandler) Upcoming(c *gin.Context) {
	b, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	list := filter.Upcoming(b.Store().Todos(), b.Now())
	c.JSON(http.StatusOK, dto.ListTodosResponse{Items: todosToResponses(list)})
}

func recurringFrom(r *dto.RecurringRequest, loc *time.Location) *dom.Recurring {
	if r == nil {
		return nil
	}
	out := &dom.Recurring{Frequency: dom.Frequency(r.Frequency)}
	if r.EndDate != nil {
		out.EndDate = r.EndDate.In(loc)
	}
	return out
}

func subtasksFrom(in []dto.SubtaskRequest) []dom.SubTask {
	out := make([]dom.SubTask, len(in))
	for i, s := range in {
		out[i] = dom.SubTask{ID: s.ID, Title: s.Title, Completed: s.Completed}
	}
	return out
}

func todoFromCreate(req dto.CreateTodoRequest, loc *time.Location) dom.Todo {
	t := dom.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    dom.Priority(req.Priority),
		Category:    dom.Category(req.Category),
		Completed:   req.Completed,
		Recurring:   recurringFrom(req.Recurring, loc),
		Subtasks:    subtasksFrom(req.Subtasks),
		Notes:       req.Notes,
	}
	if due := req.DueDate.In(loc); due != nil {
		t.DueDate = *due
	}
	return t
}

func patchFromUpdate(req dto.UpdateTodoRequest, loc *time.Location) dom.TodoPatch {
	p := dom.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Recurring:   recurringFrom(req.Recurring, loc),
		Notes:       req.Notes,
	}
	if req.Priority != nil {
		pr := dom.Priority(*req.Priority)
		p.Priority = &pr
	}
	if req.Category != nil {
		cat := dom.Category(*req.Category)
		p.Category = &cat
	}
	if req.DueDate != nil {
		p.DueDate = req.DueDate.In(loc)
	}
	if req.Subtasks != nil {
		subs := subtasksFrom(*req.Subtasks)
		p.Subtasks = &subs
	}
	return p
}
