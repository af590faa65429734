package analyticsservice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockReport(t *testing.T) {
	r := MockReport()

	require.Len(t, r.Revenue, 6)
	assert.True(t, decimal.NewFromInt(138970).Equal(r.TotalRevenue()))

	share := 0
	for _, c := range r.Categories {
		share += c.Percent
	}
	assert.Equal(t, 100, share)

	require.NotEmpty(t, r.Funnel)
	for i := 1; i < len(r.Funnel); i++ {
		assert.LessOrEqual(t, r.Funnel[i].Count, r.Funnel[i-1].Count, r.Funnel[i].Stage)
	}
}

func TestMockReportReturnsCopies(t *testing.T) {
	a := MockReport()
	a.Bundles[0].Name = "changed"

	assert.Equal(t, "Summer Skincare Bundle", MockReport().Bundles[0].Name)
}
