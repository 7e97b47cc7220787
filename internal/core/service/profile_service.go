package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sokoyetu/storefront/internal/core/domain"
	"github.com/sokoyetu/storefront/internal/core/ports"
)

// ProfileService holds each client's fetched profile, decoupled from the
// session token except as a precondition. Failures are recorded into the
// per-client state as well as returned, so the last error survives for
// subsequent renders.
type ProfileService struct {
	gateway ports.Gateway
	logger  zerolog.Logger

	mu     sync.RWMutex
	states map[string]ports.ProfileState
}

func NewProfileService(gateway ports.Gateway, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		gateway: gateway,
		logger:  logger,
		states:  make(map[string]ports.ProfileState),
	}
}

// FetchUser loads the profile for the given bearer token. A missing token
// fails locally: the error is recorded and no network call is issued.
func (s *ProfileService) FetchUser(ctx context.Context, sessionID, token string) (*domain.UserProfile, error) {
	if token == "" {
		s.setError(sessionID, domain.ErrNoToken.Error())
		return nil, domain.ErrNoToken
	}

	profile, err := s.gateway.FetchProfile(ctx, token)
	if err != nil {
		s.setError(sessionID, err.Error())
		return nil, err
	}

	s.setUser(sessionID, profile)
	return profile, nil
}

// UpdateUser issues a partial update and replaces the local copy with the
// server's authoritative response. No optimistic merge.
func (s *ProfileService) UpdateUser(ctx context.Context, sessionID, token string, patch ports.ProfilePatch) (*domain.UserProfile, error) {
	if token == "" {
		s.setError(sessionID, domain.ErrNoToken.Error())
		return nil, domain.ErrNoToken
	}

	profile, err := s.gateway.UpdateProfile(ctx, token, patch)
	if err != nil {
		s.setError(sessionID, err.Error())
		return nil, err
	}

	s.setUser(sessionID, profile)
	s.logger.Info().Int64("user_id", profile.ID).Msg("profile updated")
	return profile, nil
}

// ClearUser resets the client's profile state. Invoked by logout.
func (s *ProfileService) ClearUser(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
}

// State returns the client's current profile store snapshot.
func (s *ProfileService) State(sessionID string) ports.ProfileState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[sessionID]
}

func (s *ProfileService) setUser(sessionID string, profile *domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[sessionID] = ports.ProfileState{User: profile}
}

func (s *ProfileService) setError(sessionID string, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.states[sessionID]
	state.Err = msg
	s.states[sessionID] = state
}
