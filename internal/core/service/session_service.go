package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sokoyetu/storefront/internal/core/domain"
	"github.com/sokoyetu/storefront/internal/core/ports"
)

// SessionService implements the session state machine: login, signup, logout
// and panel toggles, with every resolved transition persisted in one write.
type SessionService struct {
	repo     ports.SessionRepository
	gateway  ports.Gateway
	profiles ports.ProfileService
	logger   zerolog.Logger
}

func NewSessionService(repo ports.SessionRepository, gateway ports.Gateway, profiles ports.ProfileService, logger zerolog.Logger) *SessionService {
	return &SessionService{repo: repo, gateway: gateway, profiles: profiles, logger: logger}
}

// Current returns the rehydrated session. Missing or corrupt storage yields a
// fresh anonymous session.
func (s *SessionService) Current(ctx context.Context, sessionID string) (domain.Session, error) {
	return s.load(ctx, sessionID), nil
}

// Login runs anonymous → authenticating → authenticated|anonymous. On success
// the token and user are set, the login panel closes, and the session is
// persisted. A backend rejection surfaces its message verbatim as an AuthError
// and leaves the session anonymous; no retry is attempted.
func (s *SessionService) Login(ctx context.Context, sessionID, email, password string) (domain.Session, error) {
	sess := s.load(ctx, sessionID)

	if email == "" || password == "" {
		return sess, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	if err := sess.BeginAuth(); err != nil {
		return sess, err
	}

	result, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		sess.FailAuth()
		s.logger.Info().Str("email", email).Msg("login rejected")
		return sess, asAuthError(err)
	}

	if err := sess.CompleteAuth(result.User, result.Token); err != nil {
		return sess, err
	}
	sess.IsLoginOpen = false

	if err := s.repo.Save(ctx, sessionID, sess); err != nil {
		return sess, fmt.Errorf("persist session: %w", err)
	}
	s.logger.Info().Int64("user_id", result.User.ID).Msg("login succeeded")
	return sess, nil
}

// Signup validates the registration constraints locally before any network
// call, then follows the same transition shape as Login.
func (s *SessionService) Signup(ctx context.Context, sessionID string, input ports.SignupInput) (domain.Session, error) {
	sess := s.load(ctx, sessionID)

	if err := validateSignup(input); err != nil {
		return sess, err
	}
	if err := sess.BeginAuth(); err != nil {
		return sess, err
	}

	result, err := s.gateway.Signup(ctx, input)
	if err != nil {
		sess.FailAuth()
		s.logger.Info().Str("email", input.Email).Msg("signup rejected")
		return sess, asAuthError(err)
	}

	if err := sess.CompleteAuth(result.User, result.Token); err != nil {
		return sess, err
	}
	sess.IsSignupOpen = false

	if err := s.repo.Save(ctx, sessionID, sess); err != nil {
		return sess, fmt.Errorf("persist session: %w", err)
	}
	s.logger.Info().Int64("user_id", result.User.ID).Str("role", string(result.User.Role)).Msg("signup succeeded")
	return sess, nil
}

// Logout clears the authenticated identity unconditionally and drops the
// client's cached profile. Calling it twice yields the same anonymous state.
func (s *SessionService) Logout(ctx context.Context, sessionID string) (domain.Session, error) {
	sess := s.load(ctx, sessionID)
	sess.Logout()

	if err := s.repo.Save(ctx, sessionID, sess); err != nil {
		return sess, fmt.Errorf("persist session: %w", err)
	}
	s.profiles.ClearUser(sessionID)
	return sess, nil
}

// TogglePanel flips one panel and closes the rest. No backend interaction.
func (s *SessionService) TogglePanel(ctx context.Context, sessionID string, panel domain.Panel) (domain.Session, error) {
	sess := s.load(ctx, sessionID)
	if err := sess.Toggle(panel); err != nil {
		return sess, err
	}
	if err := s.repo.Save(ctx, sessionID, sess); err != nil {
		return sess, fmt.Errorf("persist session: %w", err)
	}
	return sess, nil
}

// RequestPasswordReset asks the backend to email a reset link.
func (s *SessionService) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	return s.gateway.RequestPasswordReset(ctx, email)
}

// ResetPassword redeems a reset token for a new password.
func (s *SessionService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return fmt.Errorf("%w: reset token is required", domain.ErrInvalidInput)
	}
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", domain.ErrInvalidInput)
	}
	return s.gateway.ResetPassword(ctx, token, newPassword)
}

func (s *SessionService) load(ctx context.Context, sessionID string) domain.Session {
	sess, err := s.repo.Find(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.logger.Warn().Err(err).Msg("session rehydration failed, starting anonymous")
		}
		return domain.NewSession()
	}
	return sess
}

func validateSignup(input ports.SignupInput) error {
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}
	if len(input.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", domain.ErrInvalidInput)
	}
	if !input.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, input.Role)
	}
	if !input.Country.Valid() {
		return fmt.Errorf("%w: unknown country %q", domain.ErrInvalidInput, input.Country)
	}
	return nil
}

// asAuthError converts backend credential rejections (4xx) into AuthError so
// the message reaches the caller verbatim. Transport and 5xx failures pass
// through untouched.
func asAuthError(err error) error {
	var gwErr ports.GatewayError
	if errors.As(err, &gwErr) && gwErr.StatusCode() >= http.StatusBadRequest && gwErr.StatusCode() < http.StatusInternalServerError {
		return &domain.AuthError{Message: gwErr.Error()}
	}
	return err
}
