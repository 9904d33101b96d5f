// Package storagetesting provides helpers for storage integration tests.
package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	"github.com/go-jet/jet/v2/qrm"
	pgmodels "github.com/retail-automation/orders/internal/platform/storage/gen/postgres/public/model"
	"github.com/retail-automation/orders/internal/platform/storage/gen/postgres/public/table"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertUsers is a helper test function to insert users.
func InsertUsers(t *testing.T, exc qrm.Executable, users ...pgmodels.Users) {
	t.Helper()

	if len(users) == 0 {
		return
	}

	_, err := table.Users.INSERT(table.Users.AllColumns).MODELS(users).Exec(exc)
	if err != nil {
		t.Fatal("can't insert users", err)
	}
}

// InsertShops is a helper test function to insert shops.
func InsertShops(t *testing.T, exc qrm.Executable, shops ...pgmodels.Shop) {
	t.Helper()

	if len(shops) == 0 {
		return
	}

	_, err := table.Shop.INSERT(table.Shop.AllColumns).MODELS(shops).Exec(exc)
	if err != nil {
		t.Fatal("can't insert shops", err)
	}
}

// InsertCategories is a helper test function to insert categories.
func InsertCategories(t *testing.T, exc qrm.Executable, categories ...pgmodels.Category) {
	t.Helper()

	if len(categories) == 0 {
		return
	}

	_, err := table.Category.INSERT(table.Category.AllColumns).MODELS(categories).Exec(exc)
	if err != nil {
		t.Fatal("can't insert categories", err)
	}
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	_, err := table.Product.INSERT(table.Product.AllColumns).MODELS(products).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// InsertVariants is a helper test function to insert variants.
func InsertVariants(t *testing.T, exc qrm.Executable, variants ...pgmodels.Variant) {
	t.Helper()

	if len(variants) == 0 {
		return
	}

	_, err := table.Variant.INSERT(table.Variant.AllColumns).MODELS(variants).Exec(exc)
	if err != nil {
		t.Fatal("can't insert variants", err)
	}
}

// InsertDeliveryTiers is a helper test function to insert delivery tiers.
func InsertDeliveryTiers(t *testing.T, exc qrm.Executable, tiers ...pgmodels.DeliveryTier) {
	t.Helper()

	if len(tiers) == 0 {
		return
	}

	_, err := table.DeliveryTier.INSERT(table.DeliveryTier.AllColumns.Except(table.DeliveryTier.ID)).
		MODELS(tiers).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert delivery tiers", err)
	}
}

// InsertAddresses is a helper test function to insert addresses.
func InsertAddresses(t *testing.T, exc qrm.Executable, addresses ...pgmodels.Address) {
	t.Helper()

	if len(addresses) == 0 {
		return
	}

	_, err := table.Address.INSERT(table.Address.AllColumns).MODELS(addresses).Exec(exc)
	if err != nil {
		t.Fatal("can't insert addresses", err)
	}
}

// InsertOrders is a helper test function to insert orders.
func InsertOrders(t *testing.T, exc qrm.Executable, orders ...pgmodels.Orders) {
	t.Helper()

	if len(orders) == 0 {
		return
	}

	_, err := table.Orders.INSERT(table.Orders.AllColumns).MODELS(orders).Exec(exc)
	if err != nil {
		t.Fatal("can't insert orders", err)
	}
}

// InsertOrderItems is a helper test function to insert order items.
func InsertOrderItems(t *testing.T, exc qrm.Executable, items ...pgmodels.OrderItem) {
	t.Helper()

	if len(items) == 0 {
		return
	}

	_, err := table.OrderItem.INSERT(table.OrderItem.AllColumns).MODELS(items).Exec(exc)
	if err != nil {
		t.Fatal("can't insert order items", err)
	}
}

// GetCategories is a helper test function to get all categories.
func GetCategories(t *testing.T, queryable qrm.Queryable) []pgmodels.Category {
	t.Helper()

	categories := []pgmodels.Category{}
	err := table.Category.SELECT(table.Category.AllColumns).
		WHERE(table.Category.ID.IS_NOT_NULL()).
		Query(queryable, &categories)
	if err != nil {
		t.Fatal("can't get categories", err)
	}

	return categories
}

// GetProducts is a helper test function to get all products.
func GetProducts(t *testing.T, queryable qrm.Queryable) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.IS_NOT_NULL()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetVariants is a helper test function to get all variants.
func GetVariants(t *testing.T, queryable qrm.Queryable) []pgmodels.Variant {
	t.Helper()

	variants := []pgmodels.Variant{}
	err := table.Variant.SELECT(table.Variant.AllColumns).
		WHERE(table.Variant.ID.IS_NOT_NULL()).
		Query(queryable, &variants)
	if err != nil {
		t.Fatal("can't get variants", err)
	}

	return variants
}

// GetOrders is a helper test function to get all orders.
func GetOrders(t *testing.T, queryable qrm.Queryable) []pgmodels.Orders {
	t.Helper()

	orders := []pgmodels.Orders{}
	err := table.Orders.SELECT(table.Orders.AllColumns).
		WHERE(table.Orders.ID.IS_NOT_NULL()).
		Query(queryable, &orders)
	if err != nil {
		t.Fatal("can't get orders", err)
	}

	return orders
}

// GetOrderItems is a helper test function to get all order items.
func GetOrderItems(t *testing.T, queryable qrm.Queryable) []pgmodels.OrderItem {
	t.Helper()

	items := []pgmodels.OrderItem{}
	err := table.OrderItem.SELECT(table.OrderItem.AllColumns).
		WHERE(table.OrderItem.ID.IS_NOT_NULL()).
		Query(queryable, &items)
	if err != nil {
		t.Fatal("can't get order items", err)
	}

	return items
}

// GetUsers is a helper test function to get all users.
func GetUsers(t *testing.T, queryable qrm.Queryable) []pgmodels.Users {
	t.Helper()

	users := []pgmodels.Users{}
	err := table.Users.SELECT(table.Users.AllColumns).
		WHERE(table.Users.ID.IS_NOT_NULL()).
		Query(queryable, &users)
	if err != nil {
		t.Fatal("can't get users", err)
	}

	return users
}

// CleanupData is a helper test function to remove all data between tests.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	// children first, respecting foreign keys
	for _, step := range []struct {
		name string
		exec func() (sql.Result, error)
	}{
		{"variant parameters", func() (sql.Result, error) {
			return table.VariantParameter.DELETE().WHERE(table.VariantParameter.ID.IS_NOT_NULL()).Exec(exc)
		}},
		{"parameters", func() (sql.Result, error) {
			return table.Parameter.DELETE().WHERE(table.Parameter.ID.IS_NOT_NULL()).Exec(exc)
		}},
		{"order items", func() (sql.Result, error) {
			return table.OrderItem.DELETE().WHERE(table.OrderItem.ID.IS_NOT_NULL()).Exec(exc)
		}},
		{"orders", func() (sql.Result, error) {
			return table.Orders.DELETE().WHERE(table.Orders.ID.IS_NOT_NULL()).Exec(exc)
		}},
		{"delivery tiers", func() (sql.Result, error) {
			return table.DeliveryTier.DELETE().WHERE(table.DeliveryTier.ID.IS_NOT_NULL()).Exec(exc)
		}},
		{"variants", func() (sql.Result, error) {
			return table.Variant.DELETE().WHERE(table.Variant.ID.IS_NOT_NULL()).Exec(exc)
		}},
		{"products", func() (sql.Result, error) {
			return table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL()).Exec(exc)
		}},
		{"shop categories", func() (sql.Result, error) {
			return table.ShopCategory.DELETE().WHERE(table.ShopCategory.ShopID.IS_NOT_NULL()).Exec(exc)
		}},
		{"categories", func() (sql.Result, error) {
			return table.Category.DELETE().WHERE(table.Category.ID.IS_NOT_NULL()).Exec(exc)
		}},
		{"addresses", func() (sql.Result, error) {
			return table.Address.DELETE().WHERE(table.Address.ID.IS_NOT_NULL()).Exec(exc)
		}},
		{"confirmation tokens", func() (sql.Result, error) {
			return table.ConfirmationToken.DELETE().WHERE(table.ConfirmationToken.ID.IS_NOT_NULL()).Exec(exc)
		}},
		{"shops", func() (sql.Result, error) {
			return table.Shop.DELETE().WHERE(table.Shop.ID.IS_NOT_NULL()).Exec(exc)
		}},
		{"users", func() (sql.Result, error) {
			return table.Users.DELETE().WHERE(table.Users.ID.IS_NOT_NULL()).Exec(exc)
		}},
	} {
		if _, err := step.exec(); err != nil {
			t.Fatalf("can't delete %s data: %s", step.name, err)
		}
	}
}
