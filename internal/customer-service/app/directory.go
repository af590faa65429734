package app

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/bundle-builder/internal/customer-service/domain"
)

// Directory is a read-only customer listing. It never changes after
// construction, so it needs no locking.
type Directory struct {
	customers []domain.Customer
}

func NewDirectory(customers []domain.Customer) *Directory {
	out := make([]domain.Customer, len(customers))
	copy(out, customers)
	return &Directory{customers: out}
}

// List returns customers whose name or email contains the search term
// (case-insensitive) and whose status matches the filter.
func (d *Directory) List(f domain.Filter) []domain.Customer {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domain.Customer, 0, len(d.customers))
	for _, c := range d.customers {
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Email), needle) {
			continue
		}
		if f.Status != "" && f.Status != "all" && string(c.Status) != f.Status {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (d *Directory) Get(id string) (domain.Customer, error) {
	for _, c := range d.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Customer{}, domain.ErrCustomerNotFound
}

// Summary aggregates over the whole directory, ignoring any filter.
func (d *Directory) Summary() domain.Summary {
	s := domain.Summary{
		TotalCustomers:    len(d.customers),
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}
	orders := 0
	for _, c := range d.customers {
		if c.Status == domain.StatusActive {
			s.ActiveCustomers++
		}
		s.TotalRevenue = s.TotalRevenue.Add(c.TotalSpent)
		orders += c.TotalOrders
	}
	if orders > 0 {
		s.AverageOrderValue = s.TotalRevenue.Div(decimal.NewFromInt(int64(orders))).Round(2)
	}
	return s
}
