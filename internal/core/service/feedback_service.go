package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sokoyetu/storefront/internal/core/domain"
	"github.com/sokoyetu/storefront/internal/core/ports"
)

// FeedbackService validates and forwards visitor feedback.
type FeedbackService struct {
	gateway ports.Gateway
}

func NewFeedbackService(gateway ports.Gateway) *FeedbackService {
	return &FeedbackService{gateway: gateway}
}

// Submit checks the feedback constraints before any network call, then
// forwards it to the backend.
func (s *FeedbackService) Submit(ctx context.Context, fb domain.Feedback) error {
	if fb.Rating < 1 || fb.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(fb.Comment) == "" {
		return fmt.Errorf("%w: comment is required", domain.ErrInvalidInput)
	}
	return s.gateway.SubmitFeedback(ctx, fb)
}
