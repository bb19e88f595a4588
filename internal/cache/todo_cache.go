package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	dom "taskcal/internal/domain"
	"taskcal/internal/repo"

	"github.com/redis/go-redis/v9"
)

const keyList = "todo:list:"

// TodoCache caches each user's todo list in Redis. Payloads are stored as
// repo.TodoRow so the cached JSON matches the storage shape.
type TodoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTodoCache returns a new TodoCache.
func NewTodoCache(rdb *redis.Client, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

func listKey(userID int64) string {
	return keyList + strconv.FormatInt(userID, 10)
}

// GetList returns the cached list, or nil on a miss.
func (c *TodoCache) GetList(ctx context.Context, userID int64) ([]dom.Todo, error) {
	b, err := c.rdb.Get(ctx, listKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rows []repo.TodoRow
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, err
	}
	return repo.RowsToTodos(rows)
}

// SetList stores the list in cache.
func (c *TodoCache) SetList(ctx context.Context, userID int64, list []dom.Todo) error {
	b, err := json.Marshal(repo.TodosToRows(list))
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(userID), b, c.ttl).Err()
}

// InvalidateAll drops the user's cached list (cache invalidation on write).
func (c *TodoCache) InvalidateAll(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, listKey(userID)).Err()
}
