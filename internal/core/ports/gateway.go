package ports

import (
	"context"

	"github.com/sokoyetu/storefront/internal/core/domain"
)

// AuthResult is what the backend returns on a successful login or signup.
type AuthResult struct {
	User  domain.UserSummary
	Token string
}

// SignupInput carries a registration request to the backend.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
	Country   domain.Country
}

// ProfilePatch is a partial profile update. Nil fields are omitted from the
// PATCH body; the backend's response is authoritative and replaces the local copy.
type ProfilePatch struct {
	FirstName   *string  `json:"firstName,omitempty"`
	LastName    *string  `json:"lastName,omitempty"`
	PhoneNumber *string  `json:"phoneNumber,omitempty"`
	County      *string  `json:"county,omitempty"`
	SubCounty   *string  `json:"subCounty,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	IDNumber    *string  `json:"idNumber,omitempty"`
	IDImageURL  *string  `json:"idImageUrl,omitempty"`
	AvatarURL   *string  `json:"avatarUrl,omitempty"`
}

// Gateway is the thin client to the marketplace backend. Implementations
// attach the bearer token when one is provided and normalize error payloads
// into a message. One request per call: no caching, no retry, no batching.
type Gateway interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	FetchProfile(ctx context.Context, token string) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, patch ProfilePatch) (*domain.UserProfile, error)
	FeaturedProducts(ctx context.Context) ([]domain.Product, error)
	SubmitFeedback(ctx context.Context, fb domain.Feedback) error
}

// GatewayError exposes the HTTP status of a backend rejection, letting core
// services distinguish rejections from transport failures without importing
// the HTTP client.
type GatewayError interface {
	error
	StatusCode() int
}
