package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sokoyetu/storefront/internal/core/domain"
	"github.com/sokoyetu/storefront/internal/core/ports"
)

func newTestClient(url string) *Client {
	return NewClient(url, 2*time.Second, zerolog.Nop())
}

func TestClient_LoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("missing content type, got %q", got)
		}

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.com" || body["password"] != "secret1" {
			t.Fatalf("credentials not forwarded: %v", body)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"user":  map[string]any{"id": 12, "email": "a@b.com", "role": "FARMER", "country": "KENYA"},
			"token": "jwt-abc",
		})
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token != "jwt-abc" || result.User.ID != 12 || result.User.Role != domain.RoleFarmer {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestClient_ErrorMessageNormalization(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"message field", http.StatusUnauthorized, `{"message":"Invalid email or password"}`, "Invalid email or password"},
		{"empty body", http.StatusInternalServerError, ``, fallbackMessage},
		{"non-json body", http.StatusBadGateway, `upstream timeout`, fallbackMessage},
		{"json without message", http.StatusConflict, `{"error":"taken"}`, fallbackMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).Login(context.Background(), "a@b.com", "secret1")

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.Status != tc.status || apiErr.Message != tc.wantMsg {
				t.Fatalf("got %d %q, want %d %q", apiErr.Status, apiErr.Message, tc.status, tc.wantMsg)
			}
		})
	}
}

func TestClient_BearerTokenAttached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-99" {
			t.Fatalf("bearer header missing, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(domain.UserProfile{ID: 7, Email: "a@b.com"})
	}))
	defer srv.Close()

	profile, err := newTestClient(srv.URL).FetchProfile(context.Background(), "tok-99")
	if err != nil {
		t.Fatalf("FetchProfile: %v", err)
	}
	if profile.ID != 7 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Fatalf("unexpected Authorization header %q", got)
		}
		_ = json.NewEncoder(w).Encode([]domain.Product{})
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).FeaturedProducts(context.Background()); err != nil {
		t.Fatalf("FeaturedProducts: %v", err)
	}
}

func TestClient_UpdateProfileOmitsNilFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Fatalf("expected PATCH, got %s", r.Method)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if len(body) != 1 {
			t.Fatalf("nil fields leaked into patch: %v", body)
		}
		if body["county"] != "Nakuru" {
			t.Fatalf("patch field missing: %v", body)
		}
		_ = json.NewEncoder(w).Encode(domain.UserProfile{ID: 7, County: "Nakuru"})
	}))
	defer srv.Close()

	county := "Nakuru"
	profile, err := newTestClient(srv.URL).UpdateProfile(context.Background(), "tok", ports.ProfilePatch{County: &county})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if profile.County != "Nakuru" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestClient_FeaturedProductsDecodesSeller(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"Dried Maize","price":50,"imageUrls":["a.jpg"],"user":{"firstName":"Juma","county":"Kitale"}}]`))
	}))
	defer srv.Close()

	products, err := newTestClient(srv.URL).FeaturedProducts(context.Background())
	if err != nil {
		t.Fatalf("FeaturedProducts: %v", err)
	}
	if len(products) != 1 || products[0].Seller.County != "Kitale" || products[0].ImageURLs[0] != "a.jpg" {
		t.Fatalf("wire format mismatch: %+v", products)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listens anymore

	_, err := newTestClient(srv.URL).Login(context.Background(), "a@b.com", "secret1")
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure must not be an APIError")
	}
}

func TestClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	client := newTestClient(srv.URL)
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	srv.Close()
	if err := client.Ping(context.Background()); !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable after shutdown, got %v", err)
	}
}
