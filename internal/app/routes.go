package app

import (
	"taskcal/internal/auth"
	"taskcal/internal/board"
	"taskcal/internal/config"
	"taskcal/internal/handlers"
	"taskcal/internal/service"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

type routeDeps struct {
	cfg      config.Config
	log      *log.Logger
	sessions *auth.Store
	events   *auth.Events
	userSvc  *service.UserService
	boards   *board.Registry
}

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, d routeDeps) {
	r.GET("/", rootHandler(d.cfg))
	r.GET("/health", healthHandler(d.cfg, d.boards))
	r.GET("/version", versionHandler(d.cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(d.sessions, d.events, d.userSvc, d.boards, d.log)
	registerAuthRoutes(api, authHandler)

	protected := api.Group("", auth.RequireSession(d.sessions))
	protected.GET("/auth/me", authHandler.Me)
	registerTodoRoutes(protected, handlers.NewTodoHandler(d.boards))
	registerBoardRoutes(protected, handlers.NewBoardHandler(d.boards))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "taskcal API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config, boards *board.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env, "boards": boards.Len()})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler) {
	api.POST("/todos", h.Create)
	api.GET("/todos", h.List)
	api.POST("/todos/refresh", h.Refresh)
	api.GET("/todos/search", h.Search)
	api.GET("/todos/overdue", h.Overdue)
	api.GET("/todos/upcoming", h.Upcoming)
	api.GET("/todos/:id", h.GetByID)
	api.PATCH("/todos/:id", h.Update)
	api.DELETE("/todos/:id", h.Delete)
	api.POST("/todos/:id/toggle", h.Toggle)
}

func registerBoardRoutes(api *gin.RouterGroup, h *handlers.BoardHandler) {
	api.GET("/filters", h.Filters)
	api.POST("/filters", h.Dispatch)
	api.GET("/calendar", h.Calendar)
	api.POST("/calendar/navigate", h.Navigate)
	api.GET("/calendar/drag", h.DragState)
	api.POST("/calendar/drag/start", h.DragStart)
	api.POST("/calendar/drag/move", h.DragMove)
	api.POST("/calendar/drag/end", h.DragEnd)
	api.POST("/calendar/drag/cancel", h.DragCancel)
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
}
