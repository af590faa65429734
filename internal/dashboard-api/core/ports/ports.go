package ports

import (
	"context"

	bundle "github.com/jcmexdev/bundle-builder/internal/bundle-service/domain"
	customer "github.com/jcmexdev/bundle-builder/internal/customer-service/domain"
)

// BundleStore is what the dashboard needs from the bundle domain store.
type BundleStore interface {
	Products() []bundle.Product
	Product(id string) (bundle.Product, bool)
	Bundles() []bundle.Bundle
	Bundle(id string) (bundle.Bundle, bool)
	Cart() []bundle.CartItem
	Metrics() bundle.DashboardMetrics

	CreateBundle(data bundle.NewBundle) bundle.Bundle
	UpdateBundle(id string, patch bundle.BundlePatch)
	DeleteBundle(id string)

	AddToCart(b bundle.Bundle, quantity int)
	RemoveFromCart(bundleID string)
	UpdateCartQuantity(bundleID string, quantity int)
	ClearCart()
}

type CustomerDirectory interface {
	List(f customer.Filter) []customer.Customer
	Get(id string) (customer.Customer, error)
	Summary() customer.Summary
}

// SnapshotSaver persists the store after a mutation. Implementations log
// their own failures; the dashboard never fails a request because of them.
type SnapshotSaver interface {
	Save(ctx context.Context) error
}
