package ports

import (
	"context"

	"github.com/sokoyetu/storefront/internal/core/domain"
)

// SessionRepository is the single persistence boundary for session state.
// Find returns domain.ErrSessionNotFound for both missing and undecodable
// entries, so corrupt storage rehydrates as an anonymous session.
type SessionRepository interface {
	Find(ctx context.Context, sessionID string) (domain.Session, error)
	Save(ctx context.Context, sessionID string, sess domain.Session) error
	Delete(ctx context.Context, sessionID string) error
}
