package domain

import "errors"

// AuthState represents the authentication lifecycle state of a client session.
type AuthState string

const (
	StateAnonymous      AuthState = "anonymous"
	StateAuthenticating AuthState = "authenticating"
	StateAuthenticated  AuthState = "authenticated"
)

// authTransitions defines the allowed state machine transitions.
// Logout is handled separately because it is unconditional from any state.
var authTransitions = map[AuthState][]AuthState{
	StateAnonymous:      {StateAuthenticating},
	StateAuthenticating: {StateAuthenticated, StateAnonymous},
	StateAuthenticated:  {StateAnonymous},
}

var ErrInvalidTransition = errors.New("invalid auth state transition")
var ErrSessionNotFound = errors.New("session not found")
var ErrNoToken = errors.New("no authentication token found")
var ErrUnknownPanel = errors.New("unknown panel")
var ErrInvalidInput = errors.New("invalid input")

// CanTransitionTo reports whether a transition from the current auth state to next is valid.
func (s AuthState) CanTransitionTo(next AuthState) bool {
	for _, allowed := range authTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AuthError carries a credential rejection from the backend. The message is
// surfaced to the caller verbatim and the failure is recoverable by retry.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// Panel identifies one of the storefront's modal panels. At most one panel
// may be open at a time.
type Panel string

const (
	PanelLogin         Panel = "login"
	PanelSignup        Panel = "signup"
	PanelPasswordReset Panel = "password-reset"
	PanelFeedback      Panel = "feedback"
)

// ParsePanel converts a route parameter into a Panel.
func ParsePanel(s string) (Panel, error) {
	switch Panel(s) {
	case PanelLogin, PanelSignup, PanelPasswordReset, PanelFeedback:
		return Panel(s), nil
	}
	return "", ErrUnknownPanel
}

// Session is the per-client storefront state: authentication plus the modal
// panel visibility flags. The auth state is derived, not persisted (see
// Normalize). The remaining fields round-trip through durable storage as JSON.
type Session struct {
	State AuthState `json:"-"`

	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *UserSummary `json:"user"`
	Token           string       `json:"token,omitempty"`

	IsLoginOpen         bool `json:"isLoginOpen"`
	IsSignupOpen        bool `json:"isSignupOpen"`
	IsPasswordResetOpen bool `json:"isPasswordResetOpen"`
	IsFeedbackOpen      bool `json:"isFeedbackOpen"`
}

// NewSession returns an empty anonymous session.
func NewSession() Session {
	return Session{State: StateAnonymous}
}

// Normalize derives the auth state after rehydration from storage and repairs
// inconsistent field combinations (a session claiming authentication without
// a token or user is demoted to anonymous).
func (s *Session) Normalize() {
	if s.IsAuthenticated && s.Token != "" && s.User != nil {
		s.State = StateAuthenticated
		return
	}
	s.State = StateAnonymous
	s.IsAuthenticated = false
	s.User = nil
	s.Token = ""
}

// BeginAuth moves the session into the transient authenticating state.
// Only valid from anonymous: an already authenticated session must log out first.
func (s *Session) BeginAuth() error {
	if !s.State.CanTransitionTo(StateAuthenticating) {
		return ErrInvalidTransition
	}
	s.State = StateAuthenticating
	return nil
}

// CompleteAuth resolves a successful login or signup: the user and token are
// set in one step.
func (s *Session) CompleteAuth(user UserSummary, token string) error {
	if !s.State.CanTransitionTo(StateAuthenticated) {
		return ErrInvalidTransition
	}
	s.State = StateAuthenticated
	s.IsAuthenticated = true
	u := user
	s.User = &u
	s.Token = token
	return nil
}

// FailAuth resolves a rejected login or signup, returning to anonymous.
func (s *Session) FailAuth() {
	s.State = StateAnonymous
	s.IsAuthenticated = false
	s.User = nil
	s.Token = ""
}

// Logout clears the authenticated identity unconditionally. Calling it on an
// anonymous session is a no-op, so the operation is idempotent.
func (s *Session) Logout() {
	s.State = StateAnonymous
	s.IsAuthenticated = false
	s.User = nil
	s.Token = ""
}

// Toggle flips the named panel's visibility and forces the other three
// closed, preserving the mutual exclusion invariant.
func (s *Session) Toggle(p Panel) error {
	var open bool
	switch p {
	case PanelLogin:
		open = !s.IsLoginOpen
	case PanelSignup:
		open = !s.IsSignupOpen
	case PanelPasswordReset:
		open = !s.IsPasswordResetOpen
	case PanelFeedback:
		open = !s.IsFeedbackOpen
	default:
		return ErrUnknownPanel
	}

	s.CloseAllPanels()
	switch p {
	case PanelLogin:
		s.IsLoginOpen = open
	case PanelSignup:
		s.IsSignupOpen = open
	case PanelPasswordReset:
		s.IsPasswordResetOpen = open
	case PanelFeedback:
		s.IsFeedbackOpen = open
	}
	return nil
}

// CloseAllPanels forces every panel flag to false.
func (s *Session) CloseAllPanels() {
	s.IsLoginOpen = false
	s.IsSignupOpen = false
	s.IsPasswordResetOpen = false
	s.IsFeedbackOpen = false
}

// OpenPanel returns the currently open panel, if any.
func (s *Session) OpenPanel() (Panel, bool) {
	switch {
	case s.IsLoginOpen:
		return PanelLogin, true
	case s.IsSignupOpen:
		return PanelSignup, true
	case s.IsPasswordResetOpen:
		return PanelPasswordReset, true
	case s.IsFeedbackOpen:
		return PanelFeedback, true
	}
	return "", false
}
