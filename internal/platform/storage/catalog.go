package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/retail-automation/orders/internal/platform"
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/retail-automation/orders/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/retail-automation/orders/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// productKey identifies a global catalog product within one feed.
type productKey struct {
	name       string
	categoryID int
}

// variantKey identifies a variant within one shop's feed.
type variantKey struct {
	productID  int32
	externalID int32
}

// ReplaceListing atomically replaces one shop's product listing with the
// provided price list. Categories and products are upserted, the shop's
// previous variants are deleted wholesale, and the shop is renamed after the
// feed and marked up to date. Other shops' data is never touched.
func (p Postgres) ReplaceListing(ctx context.Context, shopID int, list *models.PriceList) error {
	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		if err := upsertCategories(ctx, tx, int32(shopID), list.Categories); err != nil {
			return fmt.Errorf("can't upsert categories: %w", err)
		}

		_, err := table.Variant.DELETE().
			WHERE(table.Variant.ShopID.EQ(pg.Int32(int32(shopID)))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete shop variants: %w", err)
		}

		if err := insertGoods(ctx, tx, int32(shopID), list.Goods); err != nil {
			return fmt.Errorf("can't insert goods: %w", err)
		}

		result, err := table.Shop.UPDATE(table.Shop.Name, table.Shop.IsUptodate).
			SET(pg.String(list.ShopName), pg.Bool(true)).
			WHERE(table.Shop.ID.EQ(pg.Int32(int32(shopID)))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't finalize shop: %w", err)
		}

		if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
			return platform.ErrNotFound
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("can't replace listing: %w", err)
	}

	return nil
}

// upsertCategories upserts feed categories by ID and associates them with the
// shop. Associations are add-only: a re-import never removes the shop from a
// category it was linked to before.
func upsertCategories(ctx context.Context, tx *sql.Tx, shopID int32, categories []models.PriceListCategory) error {
	if len(categories) == 0 {
		return nil
	}

	dbCategories := lo.Map(categories, func(category models.PriceListCategory, _ int) pgmodels.Category {
		return pgmodels.Category{ID: int32(category.ID), Name: category.Name}
	})

	_, err := table.Category.INSERT(table.Category.AllColumns).
		MODELS(dbCategories).
		ON_CONFLICT(table.Category.ID).
		DO_UPDATE(
			pg.SET(table.Category.Name.SET(table.Category.EXCLUDED.Name)),
		).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}

	links := lo.Map(categories, func(category models.PriceListCategory, _ int) pgmodels.ShopCategory {
		return pgmodels.ShopCategory{ShopID: shopID, CategoryID: int32(category.ID)}
	})

	_, err = table.ShopCategory.INSERT(table.ShopCategory.AllColumns).
		MODELS(links).
		ON_CONFLICT(table.ShopCategory.ShopID, table.ShopCategory.CategoryID).
		DO_NOTHING().
		ExecContext(ctx, tx)

	return err
}

func insertGoods(ctx context.Context, tx *sql.Tx, shopID int32, goods []models.PriceListGood) error {
	if len(goods) == 0 {
		return nil
	}

	productIDs, err := upsertProducts(ctx, tx, goods)
	if err != nil {
		return fmt.Errorf("can't upsert products: %w", err)
	}

	variantIDs, err := insertVariants(ctx, tx, shopID, goods, productIDs)
	if err != nil {
		return fmt.Errorf("can't insert variants: %w", err)
	}

	if err := insertParameters(ctx, tx, goods, productIDs, variantIDs); err != nil {
		return fmt.Errorf("can't insert parameters: %w", err)
	}

	return nil
}

// upsertProducts upserts global products by (name, category) and returns
// their IDs keyed by that pair.
func upsertProducts(ctx context.Context, tx *sql.Tx, goods []models.PriceListGood) (map[productKey]int32, error) {
	unique := lo.UniqBy(goods, func(good models.PriceListGood) productKey {
		return productKey{name: good.Name, categoryID: good.CategoryID}
	})

	dbProducts := lo.Map(unique, func(good models.PriceListGood, _ int) pgmodels.Product {
		return pgmodels.Product{Name: good.Name, CategoryID: int32(good.CategoryID)}
	})

	upserted := make([]pgmodels.Product, 0, len(dbProducts))
	err := table.Product.INSERT(table.Product.Name, table.Product.CategoryID).
		MODELS(dbProducts).
		ON_CONFLICT(table.Product.Name, table.Product.CategoryID).
		DO_UPDATE(
			pg.SET(table.Product.Name.SET(table.Product.EXCLUDED.Name)),
		).
		RETURNING(table.Product.AllColumns).
		QueryContext(ctx, tx, &upserted)
	if err != nil {
		return nil, err
	}

	productIDs := make(map[productKey]int32, len(upserted))
	for ix := range upserted {
		key := productKey{name: upserted[ix].Name, categoryID: int(upserted[ix].CategoryID)}
		productIDs[key] = upserted[ix].ID
	}

	return productIDs, nil
}

// insertVariants inserts fresh variants for the shop and returns their IDs
// keyed by (product, external ID).
func insertVariants(
	ctx context.Context,
	tx *sql.Tx,
	shopID int32,
	goods []models.PriceListGood,
	productIDs map[productKey]int32,
) (map[variantKey]int32, error) {
	dbVariants := lo.Map(goods, func(good models.PriceListGood, _ int) pgmodels.Variant {
		return pgmodels.Variant{
			ProductID:  productIDs[productKey{name: good.Name, categoryID: good.CategoryID}],
			ShopID:     shopID,
			ExternalID: int32(good.ExternalID),
			Model:      good.Model,
			Price:      int32(good.Price),
			PriceRrc:   int32(good.PriceRRC),
			Quantity:   int32(good.Quantity),
		}
	})

	inserted := make([]pgmodels.Variant, 0, len(dbVariants))
	err := table.Variant.INSERT(table.Variant.MutableColumns).
		MODELS(dbVariants).
		RETURNING(table.Variant.AllColumns).
		QueryContext(ctx, tx, &inserted)
	if err != nil {
		return nil, err
	}

	variantIDs := make(map[variantKey]int32, len(inserted))
	for ix := range inserted {
		key := variantKey{productID: inserted[ix].ProductID, externalID: inserted[ix].ExternalID}
		variantIDs[key] = inserted[ix].ID
	}

	return variantIDs, nil
}

// insertParameters upserts parameter names and attaches key-value pairs to
// the freshly inserted variants.
func insertParameters(
	ctx context.Context,
	tx *sql.Tx,
	goods []models.PriceListGood,
	productIDs map[productKey]int32,
	variantIDs map[variantKey]int32,
) error {
	names := lo.Uniq(lo.FlatMap(goods, func(good models.PriceListGood, _ int) []string {
		return lo.Keys(good.Parameters)
	}))
	if len(names) == 0 {
		return nil
	}

	dbParameters := lo.Map(names, func(name string, _ int) pgmodels.Parameter {
		return pgmodels.Parameter{Name: name}
	})

	upserted := make([]pgmodels.Parameter, 0, len(dbParameters))
	err := table.Parameter.INSERT(table.Parameter.Name).
		MODELS(dbParameters).
		ON_CONFLICT(table.Parameter.Name).
		DO_UPDATE(
			pg.SET(table.Parameter.Name.SET(table.Parameter.EXCLUDED.Name)),
		).
		RETURNING(table.Parameter.AllColumns).
		QueryContext(ctx, tx, &upserted)
	if err != nil {
		return err
	}

	parameterIDs := make(map[string]int32, len(upserted))
	for ix := range upserted {
		parameterIDs[upserted[ix].Name] = upserted[ix].ID
	}

	rows := make([]pgmodels.VariantParameter, 0, len(goods))
	for ix := range goods {
		good := &goods[ix]
		variantID := variantIDs[variantKey{
			productID:  productIDs[productKey{name: good.Name, categoryID: good.CategoryID}],
			externalID: int32(good.ExternalID),
		}]
		for name, value := range good.Parameters {
			rows = append(rows, pgmodels.VariantParameter{
				VariantID:   variantID,
				ParameterID: parameterIDs[name],
				Value:       value,
			})
		}
	}
	if len(rows) == 0 {
		return nil
	}

	_, err = table.VariantParameter.INSERT(
		table.VariantParameter.VariantID,
		table.VariantParameter.ParameterID,
		table.VariantParameter.Value,
	).
		MODELS(rows).
		ExecContext(ctx, tx)

	return err
}

// MarkPricelistReported records that a partner reported a new price list for
// the shop: the source URL and report time are stored and the shop's listing
// is flagged as out of date until the import finishes.
func (p Postgres) MarkPricelistReported(ctx context.Context, shopID int, url string, reportedAt time.Time) error {
	result, err := table.Shop.UPDATE(table.Shop.URL, table.Shop.IsUptodate, table.Shop.ReportedAt).
		SET(pg.String(url), pg.Bool(false), pg.TimestampzT(reportedAt)).
		WHERE(table.Shop.ID.EQ(pg.Int32(int32(shopID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't mark price list reported: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return platform.ErrNotFound
	}

	return nil
}

// GetOrCreateShopByUser returns the partner user's shop, creating a
// placeholder one on first use.
func (p Postgres) GetOrCreateShopByUser(ctx context.Context, userID int, placeholderName string) (*models.Shop, error) {
	var shop pgmodels.Shop
	err := table.Shop.SELECT(table.Shop.AllColumns).
		WHERE(table.Shop.UserID.EQ(pg.Int32(int32(userID)))).
		QueryContext(ctx, p.db, &shop)

	if errors.Is(err, qrm.ErrNoRows) {
		return p.insertShop(ctx, userID, placeholderName)
	}

	if err != nil {
		return nil, fmt.Errorf("can't get shop: %w", err)
	}

	return toAppShop(&shop, nil), nil
}

func (p Postgres) insertShop(ctx context.Context, userID int, name string) (*models.Shop, error) {
	shop := pgmodels.Shop{
		Name:   name,
		UserID: lo.ToPtr(int32(userID)),
	}

	err := table.Shop.INSERT(table.Shop.Name, table.Shop.UserID).
		MODEL(shop).
		RETURNING(table.Shop.AllColumns).
		QueryContext(ctx, p.db, &shop)
	if err != nil {
		return nil, fmt.Errorf("can't add shop: %w", err)
	}

	return toAppShop(&shop, nil), nil
}

// GetShop returns one shop by ID.
func (p Postgres) GetShop(ctx context.Context, shopID int) (*models.Shop, error) {
	var shop pgmodels.Shop
	err := table.Shop.SELECT(table.Shop.AllColumns).
		WHERE(table.Shop.ID.EQ(pg.Int32(int32(shopID)))).
		QueryContext(ctx, p.db, &shop)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get shop: %w", err)
	}

	return toAppShop(&shop, nil), nil
}

// ListShops returns shops with their delivery tiers, optionally restricted to
// shops currently accepting orders.
func (p Postgres) ListShops(ctx context.Context, onlyAccepting bool) ([]models.Shop, error) {
	cond := pg.Bool(true).EQ(pg.Bool(true))
	if onlyAccepting {
		cond = table.Shop.AcceptsOrders.IS_TRUE()
	}

	var rows []struct {
		pgmodels.Shop

		Tiers []pgmodels.DeliveryTier
	}

	err := pg.SELECT(table.Shop.AllColumns, table.DeliveryTier.AllColumns).
		FROM(table.Shop.
			LEFT_JOIN(table.DeliveryTier, table.DeliveryTier.ShopID.EQ(table.Shop.ID)),
		).
		WHERE(cond).
		ORDER_BY(table.Shop.Name.ASC(), table.DeliveryTier.MinSum.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't list shops: %w", err)
	}

	shops := make([]models.Shop, 0, len(rows))
	for ix := range rows {
		shops = append(shops, *toAppShop(&rows[ix].Shop, rows[ix].Tiers))
	}

	return shops, nil
}

// ListCategories returns all catalog categories.
func (p Postgres) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []pgmodels.Category
	err := table.Category.SELECT(table.Category.AllColumns).
		ORDER_BY(table.Category.Name.ASC()).
		QueryContext(ctx, p.db, &categories)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't list categories: %w", err)
	}

	return lo.Map(categories, func(category pgmodels.Category, _ int) models.Category {
		return models.Category{ID: int(category.ID), Name: category.Name}
	}), nil
}

// VariantFilter restricts a catalog search.
type VariantFilter struct {
	ShopID     *int
	CategoryID *int
}

// SearchVariants returns sellable variants of accepting-orders shops with
// product, category and parameter data attached.
func (p Postgres) SearchVariants(ctx context.Context, filter VariantFilter) ([]models.Variant, error) {
	cond := table.Shop.AcceptsOrders.IS_TRUE()
	if filter.ShopID != nil {
		cond = cond.AND(table.Variant.ShopID.EQ(pg.Int32(int32(*filter.ShopID))))
	}
	if filter.CategoryID != nil {
		cond = cond.AND(table.Product.CategoryID.EQ(pg.Int32(int32(*filter.CategoryID))))
	}

	var rows []struct {
		pgmodels.Variant

		Product  pgmodels.Product
		Category pgmodels.Category
		Shop     pgmodels.Shop

		Parameters []struct {
			pgmodels.VariantParameter

			Parameter pgmodels.Parameter
		}
	}

	err := pg.SELECT(
		table.Variant.AllColumns,
		table.Product.AllColumns,
		table.Category.AllColumns,
		table.Shop.AllColumns,
		table.VariantParameter.AllColumns,
		table.Parameter.AllColumns,
	).
		FROM(table.Variant.
			INNER_JOIN(table.Product, table.Product.ID.EQ(table.Variant.ProductID)).
			INNER_JOIN(table.Category, table.Category.ID.EQ(table.Product.CategoryID)).
			INNER_JOIN(table.Shop, table.Shop.ID.EQ(table.Variant.ShopID)).
			LEFT_JOIN(table.VariantParameter, table.VariantParameter.VariantID.EQ(table.Variant.ID)).
			LEFT_JOIN(table.Parameter, table.Parameter.ID.EQ(table.VariantParameter.ParameterID)),
		).
		WHERE(cond).
		ORDER_BY(table.Variant.ID.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't search variants: %w", err)
	}

	variants := make([]models.Variant, 0, len(rows))
	for ix := range rows {
		variant := toAppVariant(&rows[ix].Variant)
		variant.ProductName = rows[ix].Product.Name
		variant.Category = rows[ix].Category.Name
		variant.ShopName = rows[ix].Shop.Name
		for px := range rows[ix].Parameters {
			variant.Parameters = append(variant.Parameters, models.VariantParameter{
				Name:  rows[ix].Parameters[px].Parameter.Name,
				Value: rows[ix].Parameters[px].Value,
			})
		}
		variants = append(variants, *variant)
	}

	return variants, nil
}

// UpsertDeliveryTiers adds or updates the shop's delivery cost steps by
// minimum order sum.
func (p Postgres) UpsertDeliveryTiers(ctx context.Context, shopID int, tiers []models.DeliveryTier) error {
	if len(tiers) == 0 {
		return nil
	}

	dbTiers := lo.Map(tiers, func(tier models.DeliveryTier, _ int) pgmodels.DeliveryTier {
		return pgmodels.DeliveryTier{
			ShopID: int32(shopID),
			MinSum: int32(tier.MinSum),
			Cost:   int32(tier.Cost),
		}
	})

	_, err := table.DeliveryTier.INSERT(
		table.DeliveryTier.ShopID,
		table.DeliveryTier.MinSum,
		table.DeliveryTier.Cost,
	).
		MODELS(dbTiers).
		ON_CONFLICT(table.DeliveryTier.ShopID, table.DeliveryTier.MinSum).
		DO_UPDATE(
			pg.SET(table.DeliveryTier.Cost.SET(table.DeliveryTier.EXCLUDED.Cost)),
		).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't upsert delivery tiers: %w", err)
	}

	return nil
}

// DeliveryTiers returns delivery cost schedules keyed by shop ID.
func (p Postgres) DeliveryTiers(ctx context.Context, shopIDs []int) (map[int][]models.DeliveryTier, error) {
	if len(shopIDs) == 0 {
		return map[int][]models.DeliveryTier{}, nil
	}

	ids := make([]pg.Expression, 0, len(shopIDs))
	for _, id := range shopIDs {
		ids = append(ids, pg.Int32(int32(id)))
	}

	var tiers []pgmodels.DeliveryTier
	err := table.DeliveryTier.SELECT(table.DeliveryTier.AllColumns).
		WHERE(table.DeliveryTier.ShopID.IN(ids...)).
		ORDER_BY(table.DeliveryTier.ShopID.ASC(), table.DeliveryTier.MinSum.ASC()).
		QueryContext(ctx, p.db, &tiers)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get delivery tiers: %w", err)
	}

	result := make(map[int][]models.DeliveryTier, len(shopIDs))
	for ix := range tiers {
		shopID := int(tiers[ix].ShopID)
		result[shopID] = append(result[shopID], models.DeliveryTier{
			ShopID: shopID,
			MinSum: int(tiers[ix].MinSum),
			Cost:   int(tiers[ix].Cost),
		})
	}

	return result, nil
}

// SetShopState toggles the shop's accepting-orders flag.
func (p Postgres) SetShopState(ctx context.Context, shopID int, acceptsOrders bool) error {
	result, err := table.Shop.UPDATE(table.Shop.AcceptsOrders).
		SET(pg.Bool(acceptsOrders)).
		WHERE(table.Shop.ID.EQ(pg.Int32(int32(shopID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't set shop state: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return platform.ErrNotFound
	}

	return nil
}
