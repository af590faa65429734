package app

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcmexdev/bundle-builder/internal/bundle-service/domain"
)

// DefaultQuantity is used by AddToCart when no positive quantity is given.
const DefaultQuantity = 1

// Store is the single in-process owner of products, bundles, cart and
// metrics. Every method runs to completion under the lock, so readers never
// observe a half-applied mutation.
type Store struct {
	mu       sync.RWMutex
	products []domain.Product
	bundles  []domain.Bundle
	cart     []domain.CartItem
	metrics  domain.DashboardMetrics

	now    func() time.Time
	newID  func() string
	issued map[string]struct{}
}

type Option func(*Store)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the bundle id source. Ids that collide with an
// existing bundle, or with one issued earlier by this store, are drawn again.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// NewStore builds a store holding a private copy of initial.
func NewStore(initial domain.State, opts ...Option) *Store {
	st := initial.Clone()
	s := &Store{
		products: st.Products,
		bundles:  st.Bundles,
		cart:     st.Cart,
		metrics:  st.Metrics,
		now:      time.Now,
		newID:    uuid.NewString,
		issued:   make(map[string]struct{}),
	}
	if s.products == nil {
		s.products = []domain.Product{}
	}
	if s.bundles == nil {
		s.bundles = []domain.Bundle{}
	}
	if s.cart == nil {
		s.cart = []domain.CartItem{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBundle stores a new bundle at the head of the collection and returns
// it. Sales and revenue always start at zero. No validation happens here.
func (s *Store) CreateBundle(data domain.NewBundle) domain.Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]domain.Product, len(data.Products))
	copy(products, data.Products)

	b := domain.Bundle{
		ID:            s.uniqueID(),
		Name:          data.Name,
		Products:      products,
		DiscountType:  data.DiscountType,
		DiscountValue: data.DiscountValue,
		Status:        data.Status,
		Sales:         0,
		Revenue:       decimal.Zero,
		CreatedAt:     s.now(),
	}

	bundles := make([]domain.Bundle, 0, len(s.bundles)+1)
	bundles = append(bundles, b)
	s.bundles = append(bundles, s.bundles...)

	s.recomputeMetrics()
	return b.Clone()
}

// UpdateBundle applies patch to the bundle with the given id. Unknown ids are
// ignored; metrics are recomputed either way.
func (s *Store) UpdateBundle(id string, patch domain.BundlePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bundles {
		if s.bundles[i].ID == id {
			s.bundles[i] = patch.Apply(s.bundles[i])
		}
	}
	s.recomputeMetrics()
}

// DeleteBundle removes the bundle if present. Cart lines holding a copy of it
// are left alone.
func (s *Store) DeleteBundle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]domain.Bundle, 0, len(s.bundles))
	for _, b := range s.bundles {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.bundles = kept
	s.recomputeMetrics()
}

// AddToCart increments the line for bundle.ID by quantity, or appends a new
// line holding a copy of bundle. A non-positive quantity counts as one.
func (s *Store) AddToCart(bundle domain.Bundle, quantity int) {
	if quantity <= 0 {
		quantity = DefaultQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Bundle.ID == bundle.ID {
			s.cart[i].Quantity += quantity
			return
		}
	}
	s.cart = append(s.cart, domain.CartItem{Bundle: bundle.Clone(), Quantity: quantity})
}

func (s *Store) RemoveFromCart(bundleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromCart(bundleID)
}

// UpdateCartQuantity sets the absolute quantity of a line. Zero or below
// removes the line.
func (s *Store) UpdateCartQuantity(bundleID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeFromCart(bundleID)
		return
	}
	for i := range s.cart {
		if s.cart[i].Bundle.ID == bundleID {
			s.cart[i].Quantity = quantity
		}
	}
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = []domain.CartItem{}
}

func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Product(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Bundles returns the collection most-recent-first.
func (s *Store) Bundles() []domain.Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Bundle, len(s.bundles))
	for i, b := range s.bundles {
		out[i] = b.Clone()
	}
	return out
}

func (s *Store) Bundle(id string) (domain.Bundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bundles {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return domain.Bundle{}, false
}

func (s *Store) Cart() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartItem, len(s.cart))
	for i, it := range s.cart {
		out[i] = domain.CartItem{Bundle: it.Bundle.Clone(), Quantity: it.Quantity}
	}
	return out
}

func (s *Store) Metrics() domain.DashboardMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics
}

// State returns a deep copy of everything the store holds, suitable for
// persisting.
func (s *Store) State() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.State{
		Products: s.products,
		Bundles:  s.bundles,
		Cart:     s.cart,
		Metrics:  s.metrics,
	}.Clone()
}

// recomputeMetrics must be called with the write lock held.
func (s *Store) recomputeMetrics() {
	s.metrics = s.metrics.Recompute(s.bundles)
}

func (s *Store) removeFromCart(bundleID string) {
	kept := make([]domain.CartItem, 0, len(s.cart))
	for _, it := range s.cart {
		if it.Bundle.ID != bundleID {
			kept = append(kept, it)
		}
	}
	s.cart = kept
}

func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if _, seen := s.issued[id]; seen || s.hasBundle(id) {
			continue
		}
		s.issued[id] = struct{}{}
		return id
	}
}

func (s *Store) hasBundle(id string) bool {
	for _, b := range s.bundles {
		if b.ID == id {
			return true
		}
	}
	return false
}
