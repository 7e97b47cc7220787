package ports

import (
	"context"

	"github.com/sokoyetu/storefront/internal/core/domain"
)

// SessionService drives the per-client session state machine. Every method
// that mutates the session persists it in a single write before returning,
// so callers observe transitions atomically.
type SessionService interface {
	// Current rehydrates the session for first render. Missing or corrupt
	// storage yields a fresh anonymous session, never an error.
	Current(ctx context.Context, sessionID string) (domain.Session, error)
	Login(ctx context.Context, sessionID, email, password string) (domain.Session, error)
	Signup(ctx context.Context, sessionID string, input SignupInput) (domain.Session, error)
	Logout(ctx context.Context, sessionID string) (domain.Session, error)
	TogglePanel(ctx context.Context, sessionID string, panel domain.Panel) (domain.Session, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}
