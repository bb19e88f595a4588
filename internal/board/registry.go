package board

import (
	"sync"

	"taskcal/internal/store"

	"github.com/charmbracelet/log"
)

// Registry owns one Board per signed-in user.
type Registry struct {
	backend  store.Backend
	settings Settings
	log      *log.Logger

	mu     sync.Mutex
	boards map[int64]*Board
}

func NewRegistry(backend store.Backend, settings Settings, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		backend:  backend,
		settings: settings,
		log:      logger,
		boards:   make(map[int64]*Board),
	}
}

// For returns the user's board, creating it on first use.
func (r *Registry) For(userID int64) *Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.boards[userID]; ok {
		return b
	}
	st := store.New(r.backend, userID, store.WithLogger(r.log))
	b := New(st, r.settings)
	r.boards[userID] = b
	return b
}

// Drop forgets the user's board, e.g. after sign-out.
func (r *Registry) Drop(userID int64) {
	r.mu.Lock()
	delete(r.boards, userID)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boards)
}
