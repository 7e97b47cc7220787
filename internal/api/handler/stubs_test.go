package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sokoyetu/storefront/internal/core/domain"
	"github.com/sokoyetu/storefront/internal/core/ports"
)

// newContext builds an echo.Context with the validator installed and the
// session middleware's context keys populated, the way requests arrive in
// production.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxSessionID, "sid-test")
	c.Set(CtxSession, domain.NewSession())
	return c, rec
}

// stubSessionService implements ports.SessionService with overridable funcs.
type stubSessionService struct {
	loginFn  func(ctx context.Context, sessionID, email, password string) (domain.Session, error)
	signupFn func(ctx context.Context, sessionID string, input ports.SignupInput) (domain.Session, error)
	logoutFn func(ctx context.Context, sessionID string) (domain.Session, error)
	toggleFn func(ctx context.Context, sessionID string, panel domain.Panel) (domain.Session, error)
	resetFn  func(ctx context.Context, token, newPassword string) error
}

func (s *stubSessionService) Current(_ context.Context, _ string) (domain.Session, error) {
	return domain.NewSession(), nil
}

func (s *stubSessionService) Login(ctx context.Context, sessionID, email, password string) (domain.Session, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, sessionID, email, password)
	}
	return domain.NewSession(), nil
}

func (s *stubSessionService) Signup(ctx context.Context, sessionID string, input ports.SignupInput) (domain.Session, error) {
	if s.signupFn != nil {
		return s.signupFn(ctx, sessionID, input)
	}
	return domain.NewSession(), nil
}

func (s *stubSessionService) Logout(ctx context.Context, sessionID string) (domain.Session, error) {
	if s.logoutFn != nil {
		return s.logoutFn(ctx, sessionID)
	}
	return domain.NewSession(), nil
}

func (s *stubSessionService) TogglePanel(ctx context.Context, sessionID string, panel domain.Panel) (domain.Session, error) {
	if s.toggleFn != nil {
		return s.toggleFn(ctx, sessionID, panel)
	}
	sess := domain.NewSession()
	if err := sess.Toggle(panel); err != nil {
		return sess, err
	}
	return sess, nil
}

func (s *stubSessionService) RequestPasswordReset(_ context.Context, _ string) error {
	return nil
}

func (s *stubSessionService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if s.resetFn != nil {
		return s.resetFn(ctx, token, newPassword)
	}
	return nil
}

// stubCatalogService implements ports.CatalogService.
type stubCatalogService struct {
	featuredFn func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
}

func (s *stubCatalogService) FeaturedProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.featuredFn(ctx, filter)
}

// stubFeedbackService implements ports.FeedbackService.
type stubFeedbackService struct {
	submitFn func(ctx context.Context, fb domain.Feedback) error
	calls    int
}

func (s *stubFeedbackService) Submit(ctx context.Context, fb domain.Feedback) error {
	s.calls++
	if s.submitFn != nil {
		return s.submitFn(ctx, fb)
	}
	return nil
}

// stubProfileService implements ports.ProfileService.
type stubProfileService struct {
	fetchFn  func(ctx context.Context, sessionID, token string) (*domain.UserProfile, error)
	updateFn func(ctx context.Context, sessionID, token string, patch ports.ProfilePatch) (*domain.UserProfile, error)
}

func (s *stubProfileService) FetchUser(ctx context.Context, sessionID, token string) (*domain.UserProfile, error) {
	return s.fetchFn(ctx, sessionID, token)
}

func (s *stubProfileService) UpdateUser(ctx context.Context, sessionID, token string, patch ports.ProfilePatch) (*domain.UserProfile, error) {
	return s.updateFn(ctx, sessionID, token, patch)
}

func (s *stubProfileService) ClearUser(_ string) {}

func (s *stubProfileService) State(_ string) ports.ProfileState {
	return ports.ProfileState{}
}
