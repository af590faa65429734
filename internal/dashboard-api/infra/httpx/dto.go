package httpx

import (
	"github.com/shopspring/decimal"

	"github.com/jcmexdev/bundle-builder/internal/bundle-service/domain"
)

type CreateBundleRequest struct {
	Name          string          `json:"name"`
	ProductIDs    []string        `json:"productIds"`
	DiscountType  string          `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	Status        string          `json:"status"`
}

// UpdateBundleRequest is a partial update; absent fields stay unchanged.
type UpdateBundleRequest struct {
	Name          *string          `json:"name"`
	ProductIDs    *[]string        `json:"productIds"`
	DiscountType  *string          `json:"discountType"`
	DiscountValue *decimal.Decimal `json:"discountValue"`
	Status        *string          `json:"status"`
	Sales         *int             `json:"sales"`
	Revenue       *decimal.Decimal `json:"revenue"`
}

type PreviewRequest struct {
	ProductIDs    []string        `json:"productIds"`
	DiscountType  string          `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
}

type AddToCartRequest struct {
	BundleID string `json:"bundleId"`
	// Quantity defaults to 1 when omitted.
	Quantity int `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type BundleResponse struct {
	domain.Bundle
	Pricing domain.Quote `json:"pricing"`
}

type PreviewResponse struct {
	Products []domain.Product `json:"products"`
	domain.Quote
}

type CartLineResponse struct {
	Bundle    BundleResponse  `json:"bundle"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	Total      decimal.Decimal    `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
