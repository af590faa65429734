package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// ParseDiscountType validates raw input coming from outside the store.
func ParseDiscountType(s string) (DiscountType, error) {
	switch DiscountType(s) {
	case DiscountPercentage, DiscountFixed:
		return DiscountType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDiscountType, s)
}

type BundleStatus string

const (
	StatusActive BundleStatus = "active"
	StatusDraft  BundleStatus = "draft"
)

func ParseBundleStatus(s string) (BundleStatus, error) {
	switch BundleStatus(s) {
	case StatusActive, StatusDraft:
		return BundleStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Bundle is a named grouping of product copies sold under one discount rule.
type Bundle struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Products      []Product       `json:"products"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	Status        BundleStatus    `json:"status"`
	Sales         int             `json:"sales"`
	Revenue       decimal.Decimal `json:"revenue"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Clone returns a copy that shares no slice storage with b.
func (b Bundle) Clone() Bundle {
	if b.Products != nil {
		products := make([]Product, len(b.Products))
		copy(products, b.Products)
		b.Products = products
	}
	return b
}

// NewBundle carries the caller-controlled fields of a bundle at creation.
// Identity, timestamps and sales counters are assigned by the store.
type NewBundle struct {
	Name          string
	Products      []Product
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	Status        BundleStatus
}

// BundlePatch is a partial update. Nil fields are left untouched.
type BundlePatch struct {
	Name          *string
	Products      *[]Product
	DiscountType  *DiscountType
	DiscountValue *decimal.Decimal
	Status        *BundleStatus
	Sales         *int
	Revenue       *decimal.Decimal
}

// Apply returns b with the non-nil patch fields written over it.
func (p BundlePatch) Apply(b Bundle) Bundle {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Products != nil {
		products := make([]Product, len(*p.Products))
		copy(products, *p.Products)
		b.Products = products
	}
	if p.DiscountType != nil {
		b.DiscountType = *p.DiscountType
	}
	if p.DiscountValue != nil {
		b.DiscountValue = *p.DiscountValue
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Sales != nil {
		b.Sales = *p.Sales
	}
	if p.Revenue != nil {
		b.Revenue = *p.Revenue
	}
	return b
}

// StatusFilterAll disables status filtering in FilterBundles.
const StatusFilterAll = "all"

// FilterBundles keeps the bundles whose name contains search (case-insensitive)
// and whose status matches status. An empty status or "all" matches everything.
func FilterBundles(bundles []Bundle, search, status string) []Bundle {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]Bundle, 0, len(bundles))
	for _, b := range bundles {
		if needle != "" && !strings.Contains(strings.ToLower(b.Name), needle) {
			continue
		}
		if status != "" && status != StatusFilterAll && string(b.Status) != status {
			continue
		}
		out = append(out, b)
	}
	return out
}
