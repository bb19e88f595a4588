package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"taskcal/internal/cache"
	dom "taskcal/internal/domain"
	"taskcal/internal/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var ErrNotFound = errors.New("not found")

// TodoService is the backend every Store talks to. It validates input,
// scopes every call to the owning user and keeps the list cache coherent.
type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
	now   func() time.Time
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c, now: time.Now}
}

func (s *TodoService) Create(ctx context.Context, userID int64, t dom.Todo) (dom.Todo, error) {
	t = t.WithDefaults(s.now())
	t.UserID = userID
	if err := t.Validate(); err != nil {
		return dom.Todo{}, err
	}
	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, userID)
	return created, nil
}

func (s *TodoService) List(ctx context.Context, userID int64) ([]dom.Todo, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return cloneAll(v.([]dom.Todo)), nil
	}
	return s.repo.List(ctx, userID)
}

func (s *TodoService) Update(ctx context.Context, userID int64, id string, patch dom.TodoPatch) error {
	if patch.IsEmpty() {
		return dom.ErrEmptyPatch
	}
	if err := patch.Validate(); err != nil {
		return err
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	patch = patch.WithSubtaskIDs(uuid.NewString)
	if err := s.repo.Update(ctx, userID, id, patch); err != nil {
		return notFound(err)
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *TodoService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return notFound(err)
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// singleflight hands the same slice to every waiter.
func cloneAll(list []dom.Todo) []dom.Todo {
	out := make([]dom.Todo, len(list))
	for i := range list {
		out[i] = list[i].Clone()
	}
	return out
}

func (s *TodoService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx, userID)
	}
}
