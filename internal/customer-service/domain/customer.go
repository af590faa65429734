package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerStatus string

const (
	StatusActive   CustomerStatus = "active"
	StatusInactive CustomerStatus = "inactive"
)

type Customer struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone,omitempty"`
	Location         string          `json:"location"`
	JoinDate         string          `json:"joinDate"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	TotalOrders      int             `json:"totalOrders"`
	Status           CustomerStatus  `json:"status"`
	LastOrder        string          `json:"lastOrder"`
	BundlesPurchased []string        `json:"bundlesPurchased"`
}

// Filter narrows a customer listing. Status "" or "all" matches every status.
type Filter struct {
	Search string
	Status string
}

type Summary struct {
	TotalCustomers    int             `json:"totalCustomers"`
	ActiveCustomers   int             `json:"activeCustomers"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}
