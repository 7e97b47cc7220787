package ports

import (
	"context"

	"github.com/sokoyetu/storefront/internal/core/domain"
)

// CatalogService serves the featured product listing with client-side
// filtering applied on top of the backend response.
type CatalogService interface {
	FeaturedProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
}

// FeedbackService forwards visitor feedback to the backend after local validation.
type FeedbackService interface {
	Submit(ctx context.Context, fb domain.Feedback) error
}
