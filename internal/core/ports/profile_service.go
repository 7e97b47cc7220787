package ports

import (
	"context"

	"github.com/sokoyetu/storefront/internal/core/domain"
)

// ProfileState is the per-client profile store snapshot. Err holds the last
// failure message; it is cleared by the next successful operation.
type ProfileState struct {
	User *domain.UserProfile
	Err  string
}

// ProfileService owns fetched profiles, decoupled from the session except for
// the shared token dependency. A missing token fails the precondition locally:
// the error is recorded into state and no network call is made.
type ProfileService interface {
	FetchUser(ctx context.Context, sessionID, token string) (*domain.UserProfile, error)
	UpdateUser(ctx context.Context, sessionID, token string, patch ProfilePatch) (*domain.UserProfile, error)
	ClearUser(sessionID string)
	State(sessionID string) ProfileState
}
