package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/retail-automation/orders/internal/platform"
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/retail-automation/orders/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/retail-automation/orders/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// OrderQuery restricts which orders are loaded.
type OrderQuery struct {
	// UserID restricts to orders owned by the user.
	UserID *int
	// PartnerUserID restricts to orders containing goods of the shop owned
	// by the partner user. Only that shop's items are loaded.
	PartnerUserID *int
	// OnlyBasket loads the basket-state order only; ExcludeBasket loads
	// everything but it.
	OnlyBasket    bool
	ExcludeBasket bool
}

// GetOrCreateBasket returns the user's basket-state order, creating an empty
// one if none exists. At most one basket per user exists at any time; a
// concurrent create loses the insert race and picks up the winner's row.
func (p Postgres) GetOrCreateBasket(ctx context.Context, userID int) (*models.Order, error) {
	// A plain insert-or-select in one transaction doesn't work here: a
	// unique violation aborts the whole transaction in Postgres. DO NOTHING
	// against the partial unique index sidesteps that.
	_, err := table.Orders.INSERT(table.Orders.UserID, table.Orders.State).
		VALUES(int32(userID), models.StateBasket).
		ON_CONFLICT(table.Orders.UserID).
		WHERE(table.Orders.State.EQ(pg.String(models.StateBasket))).
		DO_NOTHING().
		ExecContext(ctx, p.db)
	if err != nil {
		return nil, fmt.Errorf("can't create basket: %w", err)
	}

	return p.GetBasket(ctx, userID)
}

// GetBasket returns the user's basket-state order with its items, or
// platform.ErrNoBasket if there is none.
func (p Postgres) GetBasket(ctx context.Context, userID int) (*models.Order, error) {
	orders, err := p.ListOrders(ctx, OrderQuery{UserID: &userID, OnlyBasket: true})
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, platform.ErrNoBasket
	}

	return &orders[0], nil
}

// GetOrder returns one order with its items.
func (p Postgres) GetOrder(ctx context.Context, orderID int) (*models.Order, error) {
	orders, err := p.listOrders(ctx, table.Orders.ID.EQ(pg.Int32(int32(orderID))), nil)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, platform.ErrNotFound
	}

	return &orders[0], nil
}

// AddItems inserts basket positions one by one. Positions referencing a
// missing variant or duplicating an already present one are reported as
// failures without affecting the rest.
func (p Postgres) AddItems(ctx context.Context, orderID int, items []models.OrderItem) (int, []models.ItemFailure, error) {
	var (
		created  int
		failures []models.ItemFailure
	)

	for ix := range items {
		row := pgmodels.OrderItem{
			OrderID:   int32(orderID),
			VariantID: int32(items[ix].VariantID),
			Quantity:  int32(items[ix].Quantity),
		}

		_, err := table.OrderItem.INSERT(table.OrderItem.OrderID, table.OrderItem.VariantID, table.OrderItem.Quantity).
			MODEL(row).
			ExecContext(ctx, p.db)

		switch {
		case err == nil:
			created++
		case isUniqueViolation(err):
			failures = append(failures, models.ItemFailure{
				VariantID: items[ix].VariantID,
				Reason:    "variant is already in the order",
			})
		case isForeignKeyViolation(err):
			failures = append(failures, models.ItemFailure{
				VariantID: items[ix].VariantID,
				Reason:    "no such variant",
			})
		default:
			return created, failures, fmt.Errorf("can't add order item: %w", err)
		}
	}

	return created, failures, nil
}

// UpdateItems applies quantity changes to the order's positions. A zero
// quantity deletes the position. Updates naming positions of other orders or
// missing positions match nothing and are silently skipped.
func (p Postgres) UpdateItems(ctx context.Context, orderID int, updates []models.ItemUpdate) (updated, deleted int64, err error) {
	err = runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		for _, update := range updates {
			cond := table.OrderItem.ID.EQ(pg.Int32(int32(update.ItemID))).
				AND(table.OrderItem.OrderID.EQ(pg.Int32(int32(orderID))))

			var (
				result sql.Result
				err    error
			)

			if update.Quantity == 0 {
				result, err = table.OrderItem.DELETE().
					WHERE(cond).
					ExecContext(ctx, tx)
			} else {
				result, err = table.OrderItem.UPDATE(table.OrderItem.Quantity).
					SET(pg.Int32(int32(update.Quantity))).
					WHERE(cond).
					ExecContext(ctx, tx)
			}
			if err != nil {
				return fmt.Errorf("can't update order item: %w", err)
			}

			rowsAffected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("can't count affected rows: %w", err)
			}

			if update.Quantity == 0 {
				deleted += rowsAffected
			} else {
				updated += rowsAffected
			}
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return updated, deleted, nil
}

// ListOrders returns orders matching the query, newest first, with addresses
// and items loaded.
func (p Postgres) ListOrders(ctx context.Context, query OrderQuery) ([]models.Order, error) {
	cond := pg.Bool(true).EQ(pg.Bool(true))

	if query.UserID != nil {
		cond = cond.AND(table.Orders.UserID.EQ(pg.Int32(int32(*query.UserID))))
	}
	if query.PartnerUserID != nil {
		cond = cond.AND(table.Shop.UserID.EQ(pg.Int32(int32(*query.PartnerUserID))))
	}
	if query.OnlyBasket {
		cond = cond.AND(table.Orders.State.EQ(pg.String(models.StateBasket)))
	}
	if query.ExcludeBasket {
		cond = cond.AND(table.Orders.State.NOT_EQ(pg.String(models.StateBasket)))
	}

	var itemJoin pg.BoolExpression
	if query.PartnerUserID != nil {
		itemJoin = partnerItemCond(*query.PartnerUserID)
	}

	return p.listOrders(ctx, cond, itemJoin)
}

// partnerItemCond restricts loaded order items to variants sold by shops of
// the partner user. The shop table is joined after order_item, so the
// restriction can't reference it directly and goes through a subquery.
func partnerItemCond(partnerUserID int) pg.BoolExpression {
	return table.OrderItem.VariantID.IN(
		pg.SELECT(table.Variant.ID).
			FROM(table.Variant).
			WHERE(table.Variant.ShopID.IN(
				pg.SELECT(table.Shop.ID).
					FROM(table.Shop).
					WHERE(table.Shop.UserID.EQ(pg.Int32(int32(partnerUserID)))),
			)),
	)
}

// listOrdersStatement builds the single query loading orders with their
// addresses and items. itemCond, when set, additionally restricts which items
// join in; it may only reference order_item and subqueries.
func listOrdersStatement(cond, itemCond pg.BoolExpression) pg.SelectStatement {
	itemJoin := table.OrderItem.OrderID.EQ(table.Orders.ID)
	if itemCond != nil {
		itemJoin = itemJoin.AND(itemCond)
	}

	return pg.SELECT(
		table.Orders.AllColumns,
		table.Address.AllColumns,
		table.OrderItem.AllColumns,
		table.Variant.AllColumns,
		table.Product.AllColumns,
		table.Category.AllColumns,
		table.Shop.AllColumns,
	).
		FROM(table.Orders.
			LEFT_JOIN(table.Address, table.Address.ID.EQ(table.Orders.AddressID)).
			LEFT_JOIN(table.OrderItem, itemJoin).
			LEFT_JOIN(table.Variant, table.Variant.ID.EQ(table.OrderItem.VariantID)).
			LEFT_JOIN(table.Product, table.Product.ID.EQ(table.Variant.ProductID)).
			LEFT_JOIN(table.Category, table.Category.ID.EQ(table.Product.CategoryID)).
			LEFT_JOIN(table.Shop, table.Shop.ID.EQ(table.Variant.ShopID)),
		).
		WHERE(cond).
		ORDER_BY(table.Orders.CreatedAt.DESC(), table.Orders.ID.DESC(), table.OrderItem.ID.ASC())
}

func (p Postgres) listOrders(ctx context.Context, cond, itemCond pg.BoolExpression) ([]models.Order, error) {
	var rows []struct {
		pgmodels.Orders

		Address *pgmodels.Address

		Items []struct {
			pgmodels.OrderItem

			Variant  pgmodels.Variant
			Product  pgmodels.Product
			Category pgmodels.Category
			Shop     pgmodels.Shop
		}
	}

	err := listOrdersStatement(cond, itemCond).QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't list orders: %w", err)
	}

	orders := make([]models.Order, 0, len(rows))
	for ix := range rows {
		row := &rows[ix]

		order := models.Order{
			ID:        int(row.ID),
			UserID:    int(row.UserID),
			State:     row.State,
			AddressID: toIntPtr(row.AddressID),
			CreatedAt: row.CreatedAt,
		}
		if row.Address != nil {
			order.Address = toAppAddress(row.Address)
		}

		for jx := range row.Items {
			item := &row.Items[jx]
			order.Items = append(order.Items, models.OrderItem{
				ID:          int(item.ID),
				OrderID:     int(item.OrderID),
				VariantID:   int(item.VariantID),
				Quantity:    int(item.Quantity),
				ExternalID:  int(item.Variant.ExternalID),
				Model:       item.Variant.Model,
				ProductName: item.Product.Name,
				Category:    item.Category.Name,
				Price:       int(item.Variant.Price),
				PriceRRC:    int(item.Variant.PriceRrc),
				ShopID:      int(item.Shop.ID),
				ShopName:    item.Shop.Name,
			})
		}

		orders = append(orders, order)
	}

	return orders, nil
}

// PlaceOrder moves the user's basket-state order into the "new" state with
// the given delivery address attached. The address must exist and belong to
// the user.
func (p Postgres) PlaceOrder(ctx context.Context, userID, orderID, addressID int) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var address pgmodels.Address
		err := table.Address.SELECT(table.Address.AllColumns).
			WHERE(table.Address.ID.EQ(pg.Int32(int32(addressID)))).
			QueryContext(ctx, tx, &address)

		if errors.Is(err, qrm.ErrNoRows) {
			return platform.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("can't get address: %w", err)
		}
		if int(address.UserID) != userID {
			return platform.ErrAddressOwnership
		}

		result, err := table.Orders.UPDATE(table.Orders.State, table.Orders.AddressID).
			SET(pg.String(models.StateNew), pg.Int32(int32(addressID))).
			WHERE(
				table.Orders.ID.EQ(pg.Int32(int32(orderID))).
					AND(table.Orders.UserID.EQ(pg.Int32(int32(userID)))).
					AND(table.Orders.State.EQ(pg.String(models.StateBasket))),
			).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't place order: %w", err)
		}

		if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
			return platform.ErrNoBasket
		}

		return nil
	})
}

// SetOrderState moves an order into the given state.
func (p Postgres) SetOrderState(ctx context.Context, orderID int, state string) error {
	result, err := table.Orders.UPDATE(table.Orders.State).
		SET(pg.String(state)).
		WHERE(table.Orders.ID.EQ(pg.Int32(int32(orderID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't set order state: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return platform.ErrNotFound
	}

	return nil
}
