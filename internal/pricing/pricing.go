// Package pricing computes per-shop order subtotals and resolves delivery
// costs against tiered per-shop delivery cost schedules. All functions are
// pure: output depends only on the provided items and tiers.
package pricing

import (
	"fmt"
	"sort"

	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/samber/lo"
)

// ShopBreakdown is one shop's share of an order.
type ShopBreakdown struct {
	ShopID   int
	ShopName string
	Subtotal int
	Delivery Quote
	Items    []models.OrderItem
}

// Quote is a resolved delivery cost for one shop, or the reason why it could
// not be resolved.
type Quote struct {
	Resolved bool
	Cost     int
	Issue    string
}

// Summary is an order-level delivery outcome: either the numeric sum of all
// shop delivery costs, or the list of per-shop unavailability reasons.
type Summary struct {
	AllResolved bool
	Total       int
	Issues      []string
}

// Totals is an order-level pricing outcome.
type Totals struct {
	TotalSum int
	Delivery Summary
}

// ComputeShopBreakdown groups items by owning shop, computes each shop's
// subtotal and resolves the applicable delivery tier for it. Tiers are keyed
// by shop ID. Breakdowns are sorted by shop ID so repeated calls over the
// same data yield identical output.
func ComputeShopBreakdown(items []models.OrderItem, tiers map[int][]models.DeliveryTier) []ShopBreakdown {
	byShop := lo.GroupBy(items, func(item models.OrderItem) int { return item.ShopID })

	breakdowns := make([]ShopBreakdown, 0, len(byShop))
	for shopID, shopItems := range byShop {
		subtotal := lo.SumBy(shopItems, func(item models.OrderItem) int {
			return item.Quantity * item.Price
		})

		breakdowns = append(breakdowns, ShopBreakdown{
			ShopID:   shopID,
			ShopName: shopItems[0].ShopName,
			Subtotal: subtotal,
			Delivery: resolveDelivery(shopItems[0].ShopName, subtotal, tiers[shopID]),
			Items:    shopItems,
		})
	}

	sort.Slice(breakdowns, func(i, j int) bool { return breakdowns[i].ShopID < breakdowns[j].ShopID })

	return breakdowns
}

// ComputeOrderTotals combines per-shop breakdowns into an order total and a
// delivery summary. The order total sums all subtotals regardless of whether
// every shop's delivery resolved.
func ComputeOrderTotals(breakdowns []ShopBreakdown) Totals {
	totals := Totals{
		Delivery: Summary{AllResolved: true},
	}

	for ix := range breakdowns {
		totals.TotalSum += breakdowns[ix].Subtotal

		if breakdowns[ix].Delivery.Resolved {
			totals.Delivery.Total += breakdowns[ix].Delivery.Cost
			continue
		}

		totals.Delivery.AllResolved = false
		totals.Delivery.Issues = append(totals.Delivery.Issues, breakdowns[ix].Delivery.Issue)
	}

	if !totals.Delivery.AllResolved {
		totals.Delivery.Total = 0
	}

	return totals
}

// resolveDelivery picks the tier with the greatest minimum sum not exceeding
// subtotal. A shop with no tiers at all is "unavailable"; a shop whose lowest
// tier is above the subtotal is "below the minimum".
func resolveDelivery(shopName string, subtotal int, tiers []models.DeliveryTier) Quote {
	if len(tiers) == 0 {
		return Quote{Issue: fmt.Sprintf("%s: delivery is unavailable", shopName)}
	}

	applicable := lo.Filter(tiers, func(tier models.DeliveryTier, _ int) bool {
		return tier.MinSum <= subtotal
	})
	if len(applicable) == 0 {
		return Quote{Issue: fmt.Sprintf("%s: order sum is below the minimum", shopName)}
	}

	best := lo.MaxBy(applicable, func(a, b models.DeliveryTier) bool { return a.MinSum > b.MinSum })

	return Quote{Resolved: true, Cost: best.Cost}
}
