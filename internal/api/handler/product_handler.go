package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sokoyetu/storefront/internal/core/domain"
	"github.com/sokoyetu/storefront/internal/core/ports"
)

// ProductHandler serves the featured product listing with optional filters.
type ProductHandler struct {
	catalog ports.CatalogService
}

func NewProductHandler(catalog ports.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type listProductsResponse struct {
	Data  []domain.Product `json:"data"`
	Total int              `json:"total"`
}

// Featured handles GET /api/products/featured. Filters combine with logical
// AND; an absent query parameter imposes no constraint.
//
// @Summary      Featured products
// @Tags         products
// @Produce      json
// @Param        category   query     string  false  "Category filter (case-insensitive)"
// @Param        county     query     string  false  "County filter (case-insensitive)"
// @Param        min_price  query     number  false  "Minimum price, inclusive"
// @Param        max_price  query     number  false  "Maximum price, inclusive"
// @Param        search     query     string  false  "Substring match on product name"
// @Success      200        {object}  listProductsResponse
// @Failure      400        {object}  errorResponse
// @Failure      502        {object}  errorResponse
// @Router       /api/products/featured [get]
func (h *ProductHandler) Featured(c echo.Context) error {
	filter := domain.ProductFilter{
		Category: c.QueryParam("category"),
		County:   c.QueryParam("county"),
		Search:   c.QueryParam("search"),
	}

	minPrice, err := parsePriceParam(c.QueryParam("min_price"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "min_price must be a number")
	}
	maxPrice, err := parsePriceParam(c.QueryParam("max_price"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "max_price must be a number")
	}
	filter.MinPrice = minPrice
	filter.MaxPrice = maxPrice

	products, err := h.catalog.FeaturedProducts(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listProductsResponse{Data: products, Total: len(products)})
}

// parsePriceParam returns nil for an absent parameter, mirroring the filter's
// "inactive predicate" semantics.
func parsePriceParam(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
