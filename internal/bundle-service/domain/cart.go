package domain

import "github.com/shopspring/decimal"

// CartItem holds a copy of the bundle taken when it was added, so later edits
// or deletion of the bundle do not change what sits in the cart.
type CartItem struct {
	Bundle   Bundle `json:"bundle"`
	Quantity int    `json:"quantity"`
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.Bundle.FinalPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotal sums the discounted bundle price times quantity over every line.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// CartItemCount sums quantities, not lines.
func CartItemCount(items []CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
