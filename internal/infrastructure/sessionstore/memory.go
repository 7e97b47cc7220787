package sessionstore

import (
	"context"
	"sync"

	"github.com/sokoyetu/storefront/internal/core/domain"
)

// MemoryRepository is an in-memory SessionRepository for tests and local
// development. Sessions are stored by value, so callers cannot mutate the
// stored copy through the returned struct.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]domain.Session)}
}

func (r *MemoryRepository) Find(_ context.Context, sessionID string) (domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[sessionID]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (r *MemoryRepository) Save(_ context.Context, sessionID string, sess domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = sess
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}
