package handlers

import (
	"errors"
	"net/http"

	"taskcal/internal/auth"
	"taskcal/internal/board"
	dom "taskcal/internal/domain"
	"taskcal/internal/dto"
	"taskcal/internal/filter"
	"taskcal/internal/service"

	"github.com/gin-gonic/gin"
)

func isValidation(err error) bool {
	return errors.Is(err, dom.ErrEmptyTitle) ||
		errors.Is(err, dom.ErrInvalidPriority) ||
		errors.Is(err, dom.ErrInvalidCategory) ||
		errors.Is(err, dom.ErrInvalidFrequency) ||
		errors.Is(err, dom.ErrInvalidTimeline) ||
		errors.Is(err, dom.ErrEmptyPatch) ||
		errors.Is(err, filter.ErrUnknownAction) ||
		errors.Is(err, board.ErrBadDirection)
}

// writeError maps known errors to a status; anything else is a 500 with the
// message passed through unchanged.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case isValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// loadBoard returns the caller's board with its collection fetched.
func loadBoard(c *gin.Context, boards *board.Registry) (*board.Board, bool) {
	userID := auth.UserIDFromContext(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return nil, false
	}
	b := boards.For(userID)
	if err := b.EnsureLoaded(c.Request.Context()); err != nil {
		writeError(c, err)
		return nil, false
	}
	return b, true
}

func todoToResponse(t dom.Todo) dto.TodoResponse {
	r := dto.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Category:    string(t.Category),
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		Subtasks:    make([]dto.SubtaskResponse, len(t.Subtasks)),
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Recurring != nil {
		r.Recurring = &dto.RecurringResponse{Frequency: string(t.Recurring.Frequency), EndDate: t.Recurring.EndDate}
	}
	for i, s := range t.Subtasks {
		r.Subtasks[i] = dto.SubtaskResponse{ID: s.ID, Title: s.Title, Completed: s.Completed}
	}
	return r
}

func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}
