package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/retail-automation/orders/internal/pricing"
	"github.com/samber/lo"
)

// OrderView is an order presented with per-shop breakdowns and resolved
// pricing. It is the unit all order listing operations return.
type OrderView struct {
	ID        int
	State     string
	CreatedAt time.Time
	Address   *models.Address
	Shops     []pricing.ShopBreakdown
	TotalSum  int
	Delivery  pricing.Summary
}

// buildOrderViews prices orders against the current delivery tiers. Tiers
// for all shops involved are loaded in one query.
func (s *Service) buildOrderViews(ctx context.Context, orders []models.Order) ([]OrderView, error) {
	shopIDs := lo.Uniq(lo.FlatMap(orders, func(order models.Order, _ int) []int {
		return lo.Map(order.Items, func(item models.OrderItem, _ int) int { return item.ShopID })
	}))

	tiers, err := s.storage.DeliveryTiers(ctx, shopIDs)
	if err != nil {
		return nil, fmt.Errorf("can't get delivery tiers: %w", err)
	}

	views := make([]OrderView, 0, len(orders))
	for ix := range orders {
		order := &orders[ix]

		breakdowns := pricing.ComputeShopBreakdown(order.Items, tiers)
		totals := pricing.ComputeOrderTotals(breakdowns)

		views = append(views, OrderView{
			ID:        order.ID,
			State:     order.State,
			CreatedAt: order.CreatedAt,
			Address:   order.Address,
			Shops:     breakdowns,
			TotalSum:  totals.TotalSum,
			Delivery:  totals.Delivery,
		})
	}

	return views, nil
}
