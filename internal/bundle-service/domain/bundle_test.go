package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundlePatchApply(t *testing.T) {
	orig := Bundle{
		ID:            "b1",
		Name:          "Old",
		Products:      products("10"),
		DiscountType:  DiscountFixed,
		DiscountValue: dec("1"),
		Status:        StatusDraft,
	}

	name := "New"
	status := StatusActive
	got := BundlePatch{Name: &name, Status: &status}.Apply(orig)

	assert.Equal(t, "New", got.Name)
	assert.Equal(t, StatusActive, got.Status)
	assert.Equal(t, "b1", got.ID)
	assert.Equal(t, DiscountFixed, got.DiscountType)
	assertDecimal(t, "1", got.DiscountValue)
	assert.Equal(t, "Old", orig.Name, "original must not change")
}

func TestBundlePatchProductsAreCopied(t *testing.T) {
	ps := products("1", "2")
	got := BundlePatch{Products: &ps}.Apply(Bundle{})

	ps[0].Name = "mutated"
	require.Len(t, got.Products, 2)
	assert.Equal(t, "p1", got.Products[0].Name)
}

func TestFilterBundles(t *testing.T) {
	bundles := []Bundle{
		{ID: "1", Name: "Summer Skincare Bundle", Status: StatusActive},
		{ID: "2", Name: "Essential Office Pack", Status: StatusActive},
		{ID: "3", Name: "Gaming Starter Kit", Status: StatusDraft},
	}

	tests := []struct {
		search string
		status string
		want   []string
	}{
		{"", "", []string{"1", "2", "3"}},
		{"", StatusFilterAll, []string{"1", "2", "3"}},
		{"", "draft", []string{"3"}},
		{"SKIN", "", []string{"1"}},
		{"a", "active", []string{"1", "2"}},
		{"kit", "active", nil},
	}

	for _, tt := range tests {
		t.Run(tt.search+"/"+tt.status, func(t *testing.T) {
			var ids []string
			for _, b := range FilterBundles(bundles, tt.search, tt.status) {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestStateCloneIsDeep(t *testing.T) {
	s := State{
		Products: products("1"),
		Bundles:  []Bundle{{ID: "b", Products: products("2")}},
		Cart:     []CartItem{{Bundle: Bundle{ID: "b", Products: products("2")}, Quantity: 1}},
	}
	c := s.Clone()

	c.Products[0].Name = "x"
	c.Bundles[0].Products[0].Name = "x"
	c.Cart[0].Bundle.Products[0].Name = "x"
	c.Cart[0].Quantity = 9

	assert.Equal(t, "p1", s.Products[0].Name)
	assert.Equal(t, "p2", s.Bundles[0].Products[0].Name)
	assert.Equal(t, "p2", s.Cart[0].Bundle.Products[0].Name)
	assert.Equal(t, 1, s.Cart[0].Quantity)
}

func TestMetricsRecompute(t *testing.T) {
	m := DashboardMetrics{TotalRevenue: dec("24570"), ActiveBundles: 18, RevenueChange: 12.5, Customers: 1249}
	got := m.Recompute([]Bundle{
		{Status: StatusActive, Revenue: dec("2280")},
		{Status: StatusDraft, Revenue: dec("3360")},
		{Status: StatusActive, Revenue: dec("0.5")},
	})

	assert.Equal(t, 2, got.ActiveBundles)
	assertDecimal(t, "5640.5", got.TotalRevenue)
	assert.Equal(t, 12.5, got.RevenueChange)
	assert.Equal(t, 1249, got.Customers)
}
