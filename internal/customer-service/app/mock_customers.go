package app

import (
	"github.com/shopspring/decimal"

	"github.com/jcmexdev/bundle-builder/internal/customer-service/domain"
)

// MockCustomers is the static directory shown on the customers page.
func MockCustomers() []domain.Customer {
	return []domain.Customer{
		{
			ID:               "1",
			Name:             "Sarah Johnson",
			Email:            "sarah.johnson@email.com",
			Phone:            "+1 (555) 123-4567",
			Location:         "New York, NY",
			JoinDate:         "2024-01-15",
			TotalSpent:       decimal.RequireFromString("1250.00"),
			TotalOrders:      8,
			Status:           domain.StatusActive,
			LastOrder:        "2024-03-10",
			BundlesPurchased: []string{"Summer Skincare Bundle", "Office Essentials Pack"},
		},
		{
			ID:               "2",
			Name:             "Michael Chen",
			Email:            "michael.chen@email.com",
			Phone:            "+1 (555) 987-6543",
			Location:         "San Francisco, CA",
			JoinDate:         "2024-02-03",
			TotalSpent:       decimal.RequireFromString("890.50"),
			TotalOrders:      5,
			Status:           domain.StatusActive,
			LastOrder:        "2024-03-08",
			BundlesPurchased: []string{"Gaming Starter Kit", "Summer Skincare Bundle"},
		},
		{
			ID:               "3",
			Name:             "Emma Wilson",
			Email:            "emma.wilson@email.com",
			Location:         "Austin, TX",
			JoinDate:         "2023-11-20",
			TotalSpent:       decimal.RequireFromString("2100.75"),
			TotalOrders:      12,
			Status:           domain.StatusActive,
			LastOrder:        "2024-03-05",
			BundlesPurchased: []string{"Office Essentials Pack", "Gaming Starter Kit", "Summer Skincare Bundle"},
		},
		{
			ID:               "4",
			Name:             "David Brown",
			Email:            "david.brown@email.com",
			Phone:            "+1 (555) 456-7890",
			Location:         "Chicago, IL",
			JoinDate:         "2024-01-28",
			TotalSpent:       decimal.RequireFromString("450.25"),
			TotalOrders:      3,
			Status:           domain.StatusInactive,
			LastOrder:        "2024-02-15",
			BundlesPurchased: []string{"Office Essentials Pack"},
		},
		{
			ID:               "5",
			Name:             "Lisa Garcia",
			Email:            "lisa.garcia@email.com",
			Location:         "Miami, FL",
			JoinDate:         "2024-02-14",
			TotalSpent:       decimal.RequireFromString("680.00"),
			TotalOrders:      4,
			Status:           domain.StatusActive,
			LastOrder:        "2024-03-12",
			BundlesPurchased: []string{"Summer Skincare Bundle", "Gaming Starter Kit"},
		},
	}
}
