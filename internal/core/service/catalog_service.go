package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sokoyetu/storefront/internal/core/domain"
	"github.com/sokoyetu/storefront/internal/core/ports"
)

// CatalogService fetches the featured listing and applies the client-side
// filter set on top of it.
type CatalogService struct {
	gateway ports.Gateway
	logger  zerolog.Logger
}

func NewCatalogService(gateway ports.Gateway, logger zerolog.Logger) *CatalogService {
	return &CatalogService{gateway: gateway, logger: logger}
}

// FeaturedProducts returns the filtered featured listing. Products the
// backend ships without a category get one derived from their name; a stored
// category always wins over the heuristic.
func (s *CatalogService) FeaturedProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.gateway.FeaturedProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("featured products fetch failed")
		return nil, err
	}

	for i := range products {
		if products[i].Category == "" {
			products[i].Category = domain.InferCategory(products[i].Name)
		}
	}

	return domain.FilterProducts(products, filter), nil
}
