package handlers

import (
	"errors"
	"net/http"

	"taskcal/internal/auth"
	"taskcal/internal/board"
	dom "taskcal/internal/domain"
	"taskcal/internal/dto"
	"taskcal/internal/service"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, register, logout and the current identity.
type AuthHandler struct {
	sessions *auth.Store
	events   *auth.Events
	userSvc  *service.UserService
	boards   *board.Registry
	log      *log.Logger
}

// NewAuthHandler returns a new AuthHandler. events may be nil.
func NewAuthHandler(sessions *auth.Store, events *auth.Events, userSvc *service.UserService, boards *board.Registry, logger *log.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, events: events, userSvc: userSvc, boards: boards, log: logger}
}

func userResponse(u dom.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func (h *AuthHandler) startSession(c *gin.Context, u dom.User) bool {
	sessionID, err := h.sessions.Create(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return false
	}
	c.SetCookie(auth.SessionCookie, sessionID, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	h.publish(c, auth.Event{Kind: auth.SignedIn, UserID: u.ID})
	return true
}

func (h *AuthHandler) publish(c *gin.Context, ev auth.Event) {
	if h.events == nil {
		return
	}
	if err := h.events.Publish(c.Request.Context(), ev); err != nil {
		h.log.Warn("publish auth event", "kind", ev.Kind, "user", ev.UserID, "err", err)
	}
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !h.startSession(c, user) {
		return
	}
	c.JSON(http.StatusOK, userResponse(user))
}

// Register godoc
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Credentials"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	if !h.startSession(c, user) {
		return
	}
	c.JSON(http.StatusCreated, userResponse(user))
}

// Logout godoc
// @Summary      Logout
// @Description  Ends the session and discards the user's in-memory board.
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(auth.SessionCookie)
	if err == nil && sessionID != "" {
		userID, err := h.sessions.Delete(c.Request.Context(), sessionID)
		if err != nil {
			h.log.Warn("delete session", "err", err)
		}
		if userID != 0 {
			h.boards.Drop(userID)
			h.publish(c, auth.Event{Kind: auth.SignedOut, UserID: userID})
		}
	}
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.userSvc.Get(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, userResponse(user))
}
