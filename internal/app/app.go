package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"taskcal/internal/auth"
	"taskcal/internal/board"
	"taskcal/internal/cache"
	"taskcal/internal/config"
	"taskcal/internal/repo"
	"taskcal/internal/service"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type App struct {
	cfg    config.Config
	log    *log.Logger
	pg     *pgxpool.Pool
	sqlite *sql.DB
	redis  *redis.Client
	router *gin.Engine

	boards *board.Registry
	events *auth.Events
	cancel context.CancelFunc
	done   chan struct{}
}

// deps are the storage-specific pieces the routes are built from.
type deps struct {
	todos repo.TodoRepo
	users repo.UserRepo
}

func New(cfg config.Config, logger *log.Logger) (*App, error) {
	a := &App{cfg: cfg, log: logger}

	d, err := a.openStorage()
	if err != nil {
		return nil, err
	}

	rdb, err := newRedis(cfg.Redis)
	if err != nil {
		a.closeStorage()
		return nil, err
	}
	a.redis = rdb

	loc, err := cfg.Location()
	if err != nil {
		a.Close(context.Background())
		return nil, err
	}

	todoCache := cache.NewTodoCache(rdb, cfg.Redis.DefaultTTL.Duration())
	todoSvc := service.NewTodoService(d.todos, todoCache)
	a.boards = board.NewRegistry(todoSvc, board.Settings{
		Location:      loc,
		DragThreshold: cfg.Drag.ThresholdPx,
		KeepTimeOfDay: cfg.Drag.KeepTimeOfDay,
	}, logger)
	a.events = auth.NewEvents(rdb, logger)
	a.listen()

	a.router = newRouter(cfg)
	Setup(a.router, routeDeps{
		cfg:      cfg,
		log:      logger,
		sessions: auth.NewStore(rdb, cfg.Redis.SessionTTL.Duration()),
		events:   a.events,
		userSvc:  service.NewUserService(d.users),
		boards:   a.boards,
	})
	return a, nil
}

func (a *App) openStorage() (deps, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch a.cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := repo.OpenSQLite(ctx, a.cfg.Storage.SQLitePath)
		if err != nil {
			return deps{}, err
		}
		a.sqlite = db
		a.log.Info("storage ready", "driver", "sqlite", "path", a.cfg.Storage.SQLitePath)
		return deps{todos: repo.NewSQLiteTodoRepo(db), users: repo.NewSQLiteUserRepo(db)}, nil
	default:
		pool, err := newPostgres(a.cfg.Storage.PGDSN)
		if err != nil {
			return deps{}, err
		}
		if err := repo.MigratePostgres(ctx, a.cfg.Storage.PGDSN); err != nil {
			pool.Close()
			return deps{}, err
		}
		a.pg = pool
		a.log.Info("storage ready", "driver", "postgres")
		return deps{todos: repo.NewPGTodoRepo(pool), users: repo.NewPGUserRepo(pool)}, nil
	}
}

// listen drops a user's board whenever any instance reports a sign-out.
func (a *App) listen() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.done = make(chan struct{})
	go func() {
		defer close(a.done)
		err := a.events.Listen(ctx, func(ev auth.Event) {
			if ev.Kind == auth.SignedOut {
				a.boards.Drop(ev.UserID)
				a.log.Debug("board dropped", "user", ev.UserID, "boards", a.boards.Len())
			}
		})
		if err != nil {
			a.log.Error("auth events listener stopped", "err", err)
		}
	}()
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	if a.cancel != nil {
		a.cancel()
		select {
		case <-a.done:
		case <-ctx.Done():
		}
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	a.closeStorage()
	return nil
}

func (a *App) closeStorage() {
	if a.pg != nil {
		a.pg.Close()
	}
	if a.sqlite != nil {
		_ = a.sqlite.Close()
	}
}

func newPostgres(dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}

	return pool, nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func newRouter(cfg config.Config) *gin.Engine {
	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Cookie"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: !containsWildcard(cfg.HTTP.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))
	return r
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
