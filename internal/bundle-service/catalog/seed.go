// Package catalog holds the reference data the dashboard starts with when no
// persisted snapshot exists.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/bundle-builder/internal/bundle-service/domain"
)

const placeholderImage = "/api/placeholder/100/100"

// Products is the fixed product catalog. It is never mutated at runtime.
func Products() []domain.Product {
	return []domain.Product{
		product("1", "Moisturizing Cream", "29.99", "Skincare"),
		product("2", "Face Cleanser", "19.99", "Skincare"),
		product("3", "Sunscreen SPF 50", "24.99", "Skincare"),
		product("4", "Wireless Mouse", "49.99", "Office"),
		product("5", "Keyboard", "89.99", "Office"),
		product("6", "Monitor Stand", "39.99", "Office"),
		product("7", "Gaming Headset", "79.99", "Gaming"),
		product("8", "Gaming Controller", "59.99", "Gaming"),
	}
}

// Bundles returns the sample bundles, newest first as the store keeps them.
func Bundles() []domain.Bundle {
	products := Products()
	return []domain.Bundle{
		{
			ID:            "1",
			Name:          "Summer Skincare Bundle",
			Products:      clone(products[0:3]),
			DiscountType:  domain.DiscountPercentage,
			DiscountValue: decimal.NewFromInt(20),
			Status:        domain.StatusActive,
			Sales:         45,
			Revenue:       decimal.NewFromInt(2280),
			CreatedAt:     date(2024, time.January, 15),
		},
		{
			ID:            "2",
			Name:          "Essential Office Pack",
			Products:      clone(products[3:6]),
			DiscountType:  domain.DiscountFixed,
			DiscountValue: decimal.NewFromInt(15),
			Status:        domain.StatusActive,
			Sales:         32,
			Revenue:       decimal.NewFromInt(1920),
			CreatedAt:     date(2024, time.February, 1),
		},
		{
			ID:            "3",
			Name:          "Gaming Starter Kit",
			Products:      clone(products[6:8]),
			DiscountType:  domain.DiscountPercentage,
			DiscountValue: decimal.NewFromInt(25),
			Status:        domain.StatusDraft,
			Sales:         28,
			Revenue:       decimal.NewFromInt(3360),
			CreatedAt:     date(2024, time.February, 10),
		},
	}
}

// Metrics are the seeded dashboard figures. TotalRevenue and ActiveBundles
// are replaced on the first bundle mutation; the rest stay as display values.
func Metrics() domain.DashboardMetrics {
	return domain.DashboardMetrics{
		TotalRevenue:     decimal.NewFromInt(24570),
		RevenueChange:    12.5,
		ActiveBundles:    18,
		NewBundles:       3,
		BundleConversion: 8.4,
		ConversionChange: 0.7,
		Customers:        1249,
		NewCustomers:     84,
	}
}

// DefaultState is the full initial state with an empty cart.
func DefaultState() domain.State {
	return domain.State{
		Products: Products(),
		Bundles:  Bundles(),
		Cart:     []domain.CartItem{},
		Metrics:  Metrics(),
	}
}

func product(id, name, price, category string) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Image:    placeholderImage,
		Category: category,
	}
}

func clone(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
