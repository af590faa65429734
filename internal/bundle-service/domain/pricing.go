package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Subtotal is the undiscounted sum of the bundle's product prices.
func Subtotal(products []Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}

// DiscountAmount is the amount taken off subtotal by the given rule.
// Percentages are not clamped to [0,100]; FinalPrice absorbs the excess.
func DiscountAmount(subtotal decimal.Decimal, discountType DiscountType, value decimal.Decimal) decimal.Decimal {
	if discountType == DiscountPercentage {
		return subtotal.Mul(value).Div(hundred)
	}
	return value
}

// FinalPrice never goes below zero, whatever the discount magnitude.
func FinalPrice(subtotal, discount decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, subtotal.Sub(discount))
}

// Quote is the full price breakdown of one bundle.
type Quote struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	FinalPrice     decimal.Decimal `json:"finalPrice"`
	Savings        decimal.Decimal `json:"savings"`
}

// Price quotes a prospective bundle made of products under the given rule.
// It backs the creation preview as well as priced bundles.
func Price(products []Product, discountType DiscountType, value decimal.Decimal) Quote {
	subtotal := Subtotal(products)
	discount := DiscountAmount(subtotal, discountType, value)
	final := FinalPrice(subtotal, discount)
	return Quote{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		FinalPrice:     final,
		Savings:        subtotal.Sub(final),
	}
}

func (b Bundle) Quote() Quote {
	return Price(b.Products, b.DiscountType, b.DiscountValue)
}

func (b Bundle) FinalPrice() decimal.Decimal {
	return b.Quote().FinalPrice
}
