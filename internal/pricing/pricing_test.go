package pricing_test

import (
	"testing"

	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/retail-automation/orders/internal/platform/models/modelstesting"
	"github.com/retail-automation/orders/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(shopID int, shopName string, price, quantity int) models.OrderItem {
	return modelstesting.FakeOrderItem(func(i *models.OrderItem) {
		i.ShopID = shopID
		i.ShopName = shopName
		i.Price = price
		i.Quantity = quantity
	})
}

func TestUnitComputeShopBreakdown(t *testing.T) {
	items := []models.OrderItem{
		item(2, "Evroset", 500, 1),
		item(1, "Svyaznoy", 1000, 2),
		item(1, "Svyaznoy", 250, 2),
	}
	tiers := map[int][]models.DeliveryTier{
		1: {
			{ShopID: 1, MinSum: 0, Cost: 300},
			{ShopID: 1, MinSum: 2000, Cost: 150},
			{ShopID: 1, MinSum: 5000, Cost: 0},
		},
		2: {
			{ShopID: 2, MinSum: 0, Cost: 200},
		},
	}

	breakdowns := pricing.ComputeShopBreakdown(items, tiers)

	require.Len(t, breakdowns, 2, "should return one breakdown per shop")

	assert.Equal(t, 1, breakdowns[0].ShopID, "breakdowns should be sorted by shop ID")
	assert.Equal(t, 2500, breakdowns[0].Subtotal, "should sum price times quantity per shop")
	require.True(t, breakdowns[0].Delivery.Resolved, "delivery should resolve")
	assert.Equal(t, 150, breakdowns[0].Delivery.Cost,
		"should pick the tier with the greatest minimum not exceeding the subtotal")
	assert.Len(t, breakdowns[0].Items, 2, "should keep the shop's items in the breakdown")

	assert.Equal(t, 2, breakdowns[1].ShopID, "breakdowns should be sorted by shop ID")
	assert.Equal(t, 500, breakdowns[1].Subtotal, "should sum the second shop's items")
	assert.Equal(t, 200, breakdowns[1].Delivery.Cost, "should use the only qualifying tier")
}

func TestUnitComputeShopBreakdownNoTiers(t *testing.T) {
	items := []models.OrderItem{item(3, "TechnoPoint", 900, 1)}

	breakdowns := pricing.ComputeShopBreakdown(items, map[int][]models.DeliveryTier{})

	require.Len(t, breakdowns, 1, "should return one breakdown")
	assert.False(t, breakdowns[0].Delivery.Resolved, "delivery shouldn't resolve without tiers")
	assert.Equal(t, "TechnoPoint: delivery is unavailable", breakdowns[0].Delivery.Issue,
		"should explain delivery is unavailable for the shop")
}

func TestUnitComputeShopBreakdownBelowMinimum(t *testing.T) {
	items := []models.OrderItem{item(3, "TechnoPoint", 900, 1)}
	tiers := map[int][]models.DeliveryTier{
		3: {{ShopID: 3, MinSum: 1000, Cost: 100}},
	}

	breakdowns := pricing.ComputeShopBreakdown(items, tiers)

	require.Len(t, breakdowns, 1, "should return one breakdown")
	assert.False(t, breakdowns[0].Delivery.Resolved, "delivery shouldn't resolve below the lowest tier")
	assert.Equal(t, "TechnoPoint: order sum is below the minimum", breakdowns[0].Delivery.Issue,
		"should explain the order sum is too low for the shop")
}

func TestUnitComputeShopBreakdownExactMinimum(t *testing.T) {
	items := []models.OrderItem{item(3, "TechnoPoint", 1000, 1)}
	tiers := map[int][]models.DeliveryTier{
		3: {{ShopID: 3, MinSum: 1000, Cost: 100}},
	}

	breakdowns := pricing.ComputeShopBreakdown(items, tiers)

	require.True(t, breakdowns[0].Delivery.Resolved, "a subtotal equal to the minimum qualifies")
	assert.Equal(t, 100, breakdowns[0].Delivery.Cost, "should use the exactly matched tier")
}

func TestUnitComputeShopBreakdownEmpty(t *testing.T) {
	breakdowns := pricing.ComputeShopBreakdown(nil, map[int][]models.DeliveryTier{})

	assert.Empty(t, breakdowns, "no items means no breakdowns")
}

func TestUnitComputeOrderTotals(t *testing.T) {
	tests := map[string]struct {
		breakdowns []pricing.ShopBreakdown
		want       pricing.Totals
	}{
		"all resolved": {
			breakdowns: []pricing.ShopBreakdown{
				{ShopID: 1, Subtotal: 2500, Delivery: pricing.Quote{Resolved: true, Cost: 150}},
				{ShopID: 2, Subtotal: 500, Delivery: pricing.Quote{Resolved: true, Cost: 200}},
			},
			want: pricing.Totals{
				TotalSum: 3000,
				Delivery: pricing.Summary{AllResolved: true, Total: 350},
			},
		},
		"one shop unresolved": {
			breakdowns: []pricing.ShopBreakdown{
				{ShopID: 1, Subtotal: 2500, Delivery: pricing.Quote{Resolved: true, Cost: 150}},
				{ShopID: 2, Subtotal: 500, Delivery: pricing.Quote{Issue: "Evroset: delivery is unavailable"}},
			},
			want: pricing.Totals{
				TotalSum: 3000,
				Delivery: pricing.Summary{
					AllResolved: false,
					Issues:      []string{"Evroset: delivery is unavailable"},
				},
			},
		},
		"empty": {
			want: pricing.Totals{
				Delivery: pricing.Summary{AllResolved: true},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			totals := pricing.ComputeOrderTotals(tt.breakdowns)

			assert.Equal(t, tt.want, totals, "should compute correct totals")
		})
	}
}
