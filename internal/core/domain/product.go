package domain

import "strings"

// Seller is the product owner slice embedded in listings. The backend nests
// it under the "user" key.
type Seller struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	AverageRating float64 `json:"averageRating,omitempty"`
	County        string  `json:"county,omitempty"`
}

// Product is a marketplace listing as served by the backend, plus the derived
// Category field. Category is a display heuristic, not authoritative data:
// when the backend starts storing it, the stored value wins (see CatalogService).
type Product struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Quantity       float64  `json:"quantity"`
	Price          float64  `json:"price"`
	PredictedPrice float64  `json:"predictedPrice,omitempty"`
	QualityScore   float64  `json:"qualityScore,omitempty"`
	ImageURLs      []string `json:"imageUrls"`
	Seller         Seller   `json:"user"`
	Category       string   `json:"category,omitempty"`
}

// ProductFilter is a conjunction of optional predicates. Zero-valued fields
// impose no constraint.
type ProductFilter struct {
	Category string
	County   string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

// Matches reports whether the product satisfies every active predicate.
// Category and county compare case-insensitively.
func (f ProductFilter) Matches(p Product) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.County != "" && !strings.EqualFold(p.Seller.County, f.County) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// FilterProducts returns the subset of products matching the filter,
// preserving input order.
func FilterProducts(products []Product, f ProductFilter) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// CategoryUnknown is assigned when no keyword matches.
const CategoryUnknown = "Unknown"

// categoryKeywords maps produce name fragments to display categories.
// Order matters: the first match wins.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"maize", "Cereals"},
	{"wheat", "Cereals"},
	{"tomato", "Vegetables"},
	{"spinach", "Vegetables"},
	{"avocado", "Fruits"},
	{"mango", "Fruits"},
	{"beans", "Legumes"},
	{"peas", "Legumes"},
	{"potato", "Tubers"},
	{"yam", "Tubers"},
}

// InferCategory guesses a product's category from its name. This is a
// stopgap until category becomes a stored attribute on the listing itself.
func InferCategory(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.category
		}
	}
	return CategoryUnknown
}
