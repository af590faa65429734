// Package analyticsservice serves the static analytics figures of the dashboard.
// None of the numbers are derived from live store state.
package analyticsservice

import "github.com/shopspring/decimal"

type MonthlyRevenue struct {
	Month      string          `json:"month"`
	Revenue    decimal.Decimal `json:"revenue"`
	Bundles    int             `json:"bundles"`
	Conversion float64         `json:"conversion"`
}

type BundlePerformance struct {
	Name       string          `json:"name"`
	Sales      int             `json:"sales"`
	Revenue    decimal.Decimal `json:"revenue"`
	Conversion float64         `json:"conversion"`
	Trend      string          `json:"trend"`
}

type CategoryShare struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

type FunnelStage struct {
	Stage      string  `json:"stage"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type Report struct {
	Revenue    []MonthlyRevenue    `json:"revenue"`
	Bundles    []BundlePerformance `json:"bundles"`
	Categories []CategoryShare     `json:"categories"`
	Funnel     []FunnelStage       `json:"funnel"`
}

// TotalRevenue sums the monthly revenue series.
func (r Report) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, m := range r.Revenue {
		total = total.Add(m.Revenue)
	}
	return total
}

// MockReport returns a fresh copy of the static report.
func MockReport() Report {
	return Report{
		Revenue: []MonthlyRevenue{
			{"Jan", decimal.NewFromInt(12400), 45, 8.2},
			{"Feb", decimal.NewFromInt(18600), 67, 8.8},
			{"Mar", decimal.NewFromInt(24570), 89, 9.1},
			{"Apr", decimal.NewFromInt(22100), 78, 8.9},
			{"May", decimal.NewFromInt(28900), 102, 9.4},
			{"Jun", decimal.NewFromInt(32400), 115, 9.8},
		},
		Bundles: []BundlePerformance{
			{"Summer Skincare Bundle", 145, decimal.NewFromInt(4350), 12.5, "trending"},
			{"Essential Office Pack", 123, decimal.NewFromInt(3690), 10.8, "stable"},
			{"Gaming Starter Kit", 98, decimal.NewFromInt(3920), 8.9, "growing"},
			{"Fitness Essentials", 87, decimal.NewFromInt(2610), 7.2, "stable"},
			{"Home Chef Bundle", 76, decimal.NewFromInt(2280), 6.8, "declining"},
		},
		Categories: []CategoryShare{
			{"Beauty & Skincare", 35},
			{"Office & Work", 25},
			{"Gaming & Tech", 20},
			{"Fitness & Health", 12},
			{"Home & Kitchen", 8},
		},
		Funnel: []FunnelStage{
			{"Visitors", 12500, 100},
			{"Product Views", 8750, 70},
			{"Bundle Interactions", 3125, 25},
			{"Add to Cart", 1875, 15},
			{"Checkout", 1250, 10},
			{"Purchase", 1050, 8.4},
		},
	}
}
