package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sokoyetu/storefront/internal/core/domain"
)

func TestFeedbackHandler_Submit(t *testing.T) {
	var got domain.Feedback
	svc := &stubFeedbackService{
		submitFn: func(_ context.Context, fb domain.Feedback) error {
			got = fb
			return nil
		},
	}
	h := NewFeedbackHandler(svc)

	c, rec := newContext(http.MethodPost, "/api/feedback", `{"name":"Amina","rating":5,"comment":"great marketplace"}`)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	want := domain.Feedback{Name: "Amina", Rating: 5, Comment: "great marketplace"}
	if got != want {
		t.Fatalf("feedback mangled: %+v", got)
	}

	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "thank you for your feedback" {
		t.Fatalf("unexpected ack: %v", resp)
	}
}

func TestFeedbackHandler_AnonymousNameOptional(t *testing.T) {
	svc := &stubFeedbackService{}
	h := NewFeedbackHandler(svc)

	c, rec := newContext(http.MethodPost, "/api/feedback", `{"rating":3,"comment":"okay"}`)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusOK || svc.calls != 1 {
		t.Fatalf("anonymous feedback rejected: status=%d calls=%d", rec.Code, svc.calls)
	}
}

func TestFeedbackHandler_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"rating zero", `{"rating":0,"comment":"x"}`},
		{"rating above five", `{"rating":6,"comment":"x"}`},
		{"missing comment", `{"rating":4}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubFeedbackService{}
			h := NewFeedbackHandler(svc)

			c, _ := newContext(http.MethodPost, "/api/feedback", tc.body)
			err := h.Submit(c)

			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %v", err)
			}
			if svc.calls != 0 {
				t.Fatalf("invalid feedback reached the service")
			}
		})
	}
}
