package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/sokoyetu/storefront/internal/core/domain"
	"github.com/sokoyetu/storefront/internal/core/ports"
)

// stubRepository is an in-memory SessionRepository that counts writes.
type stubRepository struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	saves    int
	findErr  error
	saveErr  error
}

func newStubRepository() *stubRepository {
	return &stubRepository{sessions: make(map[string]domain.Session)}
}

func (r *stubRepository) Find(_ context.Context, sessionID string) (domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return domain.Session{}, r.findErr
	}
	sess, ok := r.sessions[sessionID]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (r *stubRepository) Save(_ context.Context, sessionID string, sess domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.sessions[sessionID] = sess
	return nil
}

func (r *stubRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

// stubGateway implements ports.Gateway with overridable behaviour and
// per-method call counters.
type stubGateway struct {
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	signupFn   func(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error)
	fetchFn    func(ctx context.Context, token string) (*domain.UserProfile, error)
	updateFn   func(ctx context.Context, token string, patch ports.ProfilePatch) (*domain.UserProfile, error)
	featuredFn func(ctx context.Context) ([]domain.Product, error)
	feedbackFn func(ctx context.Context, fb domain.Feedback) error

	calls map[string]int
}

func newStubGateway() *stubGateway {
	return &stubGateway{calls: make(map[string]int)}
}

func (g *stubGateway) record(method string) {
	g.calls[method]++
}

func (g *stubGateway) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	g.record("Login")
	if g.loginFn != nil {
		return g.loginFn(ctx, email, password)
	}
	return nil, fmt.Errorf("stubGateway: Login not configured")
}

func (g *stubGateway) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	g.record("Signup")
	if g.signupFn != nil {
		return g.signupFn(ctx, input)
	}
	return nil, fmt.Errorf("stubGateway: Signup not configured")
}

func (g *stubGateway) RequestPasswordReset(_ context.Context, _ string) error {
	g.record("RequestPasswordReset")
	return nil
}

func (g *stubGateway) ResetPassword(_ context.Context, _, _ string) error {
	g.record("ResetPassword")
	return nil
}

func (g *stubGateway) FetchProfile(ctx context.Context, token string) (*domain.UserProfile, error) {
	g.record("FetchProfile")
	if g.fetchFn != nil {
		return g.fetchFn(ctx, token)
	}
	return nil, fmt.Errorf("stubGateway: FetchProfile not configured")
}

func (g *stubGateway) UpdateProfile(ctx context.Context, token string, patch ports.ProfilePatch) (*domain.UserProfile, error) {
	g.record("UpdateProfile")
	if g.updateFn != nil {
		return g.updateFn(ctx, token, patch)
	}
	return nil, fmt.Errorf("stubGateway: UpdateProfile not configured")
}

func (g *stubGateway) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	g.record("FeaturedProducts")
	if g.featuredFn != nil {
		return g.featuredFn(ctx)
	}
	return nil, fmt.Errorf("stubGateway: FeaturedProducts not configured")
}

func (g *stubGateway) SubmitFeedback(ctx context.Context, fb domain.Feedback) error {
	g.record("SubmitFeedback")
	if g.feedbackFn != nil {
		return g.feedbackFn(ctx, fb)
	}
	return nil
}

// stubGatewayError mimics a backend HTTP rejection.
type stubGatewayError struct {
	status  int
	message string
}

func (e *stubGatewayError) Error() string   { return e.message }
func (e *stubGatewayError) StatusCode() int { return e.status }

// stubProfiles records ClearUser calls for logout assertions.
type stubProfiles struct {
	cleared []string
}

func (p *stubProfiles) FetchUser(_ context.Context, _, _ string) (*domain.UserProfile, error) {
	return nil, nil
}

func (p *stubProfiles) UpdateUser(_ context.Context, _, _ string, _ ports.ProfilePatch) (*domain.UserProfile, error) {
	return nil, nil
}

func (p *stubProfiles) ClearUser(sessionID string) {
	p.cleared = append(p.cleared, sessionID)
}

func (p *stubProfiles) State(_ string) ports.ProfileState {
	return ports.ProfileState{}
}
