package domain

import "testing"

func fl(v float64) *float64 { return &v }

func TestProductFilter_Matches(t *testing.T) {
	product := Product{
		Name:     "Hass Avocado",
		Price:    300,
		Category: "Fruits",
		Seller:   Seller{County: "Murang'a"},
	}

	cases := []struct {
		name   string
		filter ProductFilter
		want   bool
	}{
		{"no predicates", ProductFilter{}, true},
		{"category match", ProductFilter{Category: "Fruits"}, true},
		{"category case-insensitive", ProductFilter{Category: "fruits"}, true},
		{"category mismatch", ProductFilter{Category: "Cereals"}, false},
		{"county match", ProductFilter{County: "murang'a"}, true},
		{"county mismatch", ProductFilter{County: "Nakuru"}, false},
		{"min price inclusive", ProductFilter{MinPrice: fl(300)}, true},
		{"min price excludes", ProductFilter{MinPrice: fl(301)}, false},
		{"max price inclusive", ProductFilter{MaxPrice: fl(300)}, true},
		{"max price excludes", ProductFilter{MaxPrice: fl(299)}, false},
		{"search substring", ProductFilter{Search: "avoca"}, true},
		{"search no match", ProductFilter{Search: "mango"}, false},
		{"all active, all pass", ProductFilter{Category: "Fruits", County: "Murang'a", MinPrice: fl(100), MaxPrice: fl(500)}, true},
		{"all active, one fails", ProductFilter{Category: "Fruits", County: "Murang'a", MinPrice: fl(100), MaxPrice: fl(200)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Matches(product); got != tc.want {
				t.Fatalf("Matches = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterProducts(t *testing.T) {
	products := []Product{
		{Name: "Avocado", Price: 300, Category: "Fruits"},
		{Name: "Mango", Price: 600, Category: "Fruits"},
		{Name: "Spinach", Price: 100, Category: "Vegetables"},
	}

	filtered := FilterProducts(products, ProductFilter{Category: "Fruits", MaxPrice: fl(500)})

	if len(filtered) != 1 || filtered[0].Name != "Avocado" {
		t.Fatalf("expected only the 300-shilling fruit, got %+v", filtered)
	}

	for _, p := range filtered {
		if p.Category != "Fruits" || p.Price > 500 {
			t.Fatalf("filtered item violates predicates: %+v", p)
		}
	}
}

func TestInferCategory(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Dried Maize 90kg", "Cereals"},
		{"Wheat Flour Grade 1", "Cereals"},
		{"Fresh Tomatoes", "Vegetables"},
		{"Spinach Bundle", "Vegetables"},
		{"Hass Avocado", "Fruits"},
		{"Apple Mangoes", "Fruits"},
		{"Yellow Beans", "Legumes"},
		{"Green Peas", "Legumes"},
		{"Irish Potatoes", "Tubers"},
		{"White Yams", "Tubers"},
		{"Raw Honey", CategoryUnknown},
	}

	for _, tc := range cases {
		if got := InferCategory(tc.name); got != tc.want {
			t.Errorf("InferCategory(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
