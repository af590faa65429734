package domain

import "github.com/shopspring/decimal"

// DashboardMetrics is the dashboard summary. Only TotalRevenue and
// ActiveBundles follow the bundle collection; the rest are seeded display
// values.
type DashboardMetrics struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	RevenueChange    float64         `json:"revenueChange"`
	ActiveBundles    int             `json:"activeBundles"`
	NewBundles       int             `json:"newBundles"`
	BundleConversion float64         `json:"bundleConversion"`
	ConversionChange float64         `json:"conversionChange"`
	Customers        int             `json:"customers"`
	NewCustomers     int             `json:"newCustomers"`
}

// Recompute refreshes the two live fields from bundles and keeps the others.
func (m DashboardMetrics) Recompute(bundles []Bundle) DashboardMetrics {
	active := 0
	revenue := decimal.Zero
	for _, b := range bundles {
		if b.Status == StatusActive {
			active++
		}
		revenue = revenue.Add(b.Revenue)
	}
	m.ActiveBundles = active
	m.TotalRevenue = revenue
	return m
}

// State is everything the store owns. It is also the persisted snapshot shape.
type State struct {
	Products []Product        `json:"products"`
	Bundles  []Bundle         `json:"bundles"`
	Cart     []CartItem       `json:"cart"`
	Metrics  DashboardMetrics `json:"metrics"`
}

// Clone deep-copies s so callers can hold it while the store keeps mutating.
func (s State) Clone() State {
	out := State{Metrics: s.Metrics}
	if s.Products != nil {
		out.Products = make([]Product, len(s.Products))
		copy(out.Products, s.Products)
	}
	if s.Bundles != nil {
		out.Bundles = make([]Bundle, len(s.Bundles))
		for i, b := range s.Bundles {
			out.Bundles[i] = b.Clone()
		}
	}
	if s.Cart != nil {
		out.Cart = make([]CartItem, len(s.Cart))
		for i, it := range s.Cart {
			out.Cart[i] = CartItem{Bundle: it.Bundle.Clone(), Quantity: it.Quantity}
		}
	}
	return out
}
