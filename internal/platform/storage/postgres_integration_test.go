package storage_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/retail-automation/orders/internal/platform"
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/retail-automation/orders/internal/platform/storage"
	pgmodels "github.com/retail-automation/orders/internal/platform/storage/gen/postgres/public/model"
	"github.com/retail-automation/orders/internal/platform/storage/storagetesting"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	_ "github.com/lib/pq"
)

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) TestIntegrationReplaceListing() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	storagetesting.InsertUsers(s.T(), s.DB, pgmodels.Users{ID: 1, Email: "partner@example.com", Type: models.UserTypeShop})
	storagetesting.InsertShops(s.T(), s.DB, pgmodels.Shop{
		ID:            10,
		Name:          "Unnamed shop",
		UserID:        lo.ToPtr(int32(1)),
		AcceptsOrders: true,
	})

	list := models.PriceList{
		ShopName: "Svyaznoy",
		Categories: []models.PriceListCategory{
			{ID: 224, Name: "Smartphones"},
			{ID: 15, Name: "Accessories"},
		},
		Goods: []models.PriceListGood{
			{
				ExternalID: 4216292,
				CategoryID: 224,
				Name:       "Smartphone Apple iPhone XS Max 512GB (golden)",
				Model:      "apple/iphone/xs-max",
				Price:      110000,
				PriceRRC:   116990,
				Quantity:   14,
				Parameters: map[string]string{"Color": "golden", "Internal memory (GB)": "512"},
			},
			{
				ExternalID: 4216313,
				CategoryID: 224,
				Name:       "Smartphone Apple iPhone XR 256GB (red)",
				Model:      "apple/iphone/xr",
				Price:      65990,
				PriceRRC:   69990,
				Quantity:   9,
				Parameters: map[string]string{"Color": "red"},
			},
			{
				ExternalID: 4672670,
				CategoryID: 15,
				Name:       "AirPods wireless headphones (white)",
				Model:      "apple/airpods",
				Price:      9900,
				PriceRRC:   10990,
				Quantity:   31,
			},
		},
	}

	post := storage.NewPostgres(s.DB)

	s.Run("unknown shop", func() {
		err := post.ReplaceListing(context.TODO(), 999, &list)
		s.Require().ErrorIs(err, platform.ErrNotFound, "should report unknown shop")
	})

	s.Run("first import", func() {
		err := post.ReplaceListing(context.TODO(), 10, &list)
		s.Require().NoError(err, "shouldn't return any error")

		shop, err := post.GetShop(context.TODO(), 10)
		s.Require().NoError(err, "shouldn't return any error")
		s.Equal("Svyaznoy", shop.Name, "shop should be renamed after the feed")
		s.True(shop.IsUpToDate, "shop should be marked up to date")

		s.Len(storagetesting.GetCategories(s.T(), s.DB), 2, "should store feed categories")
		s.Len(storagetesting.GetProducts(s.T(), s.DB), 3, "should store global products")
		s.Len(storagetesting.GetVariants(s.T(), s.DB), 3, "should store shop variants")

		variants, err := post.SearchVariants(context.TODO(), storage.VariantFilter{ShopID: lo.ToPtr(10)})
		s.Require().NoError(err, "shouldn't return any error")
		s.Require().Len(variants, 3, "should find all shop variants")

		xsMax, found := lo.Find(variants, func(v models.Variant) bool { return v.ExternalID == 4216292 })
		s.Require().True(found, "should find variant by feed ID")
		s.Equal(110000, xsMax.Price, "should keep feed price")
		s.Equal("Smartphones", xsMax.Category, "should resolve category name")
		s.Len(xsMax.Parameters, 2, "should keep feed parameters")
	})

	s.Run("repeated import replaces variants", func() {
		err := post.ReplaceListing(context.TODO(), 10, &models.PriceList{
			ShopName:   "Svyaznoy",
			Categories: []models.PriceListCategory{{ID: 224, Name: "Smartphones"}},
			Goods: []models.PriceListGood{
				{
					ExternalID: 4216292,
					CategoryID: 224,
					Name:       "Smartphone Apple iPhone XS Max 512GB (golden)",
					Model:      "apple/iphone/xs-max",
					Price:      99000,
					PriceRRC:   116990,
					Quantity:   2,
				},
			},
		})
		s.Require().NoError(err, "shouldn't return any error")

		variants := storagetesting.GetVariants(s.T(), s.DB)
		s.Require().Len(variants, 1, "previous variants should be replaced")
		s.Equal(int32(99000), variants[0].Price, "price should follow the new feed")

		s.Len(storagetesting.GetCategories(s.T(), s.DB), 2, "category associations are add-only")
		s.Len(storagetesting.GetProducts(s.T(), s.DB), 3, "global products should survive re-imports")
	})
}

func (s *PostgresTestSuite) TestIntegrationBasketFlow() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	storagetesting.InsertUsers(s.T(), s.DB,
		pgmodels.Users{ID: 1, Email: "buyer@example.com", Type: models.UserTypeBuyer},
		pgmodels.Users{ID: 2, Email: "partner@example.com", Type: models.UserTypeShop},
	)
	storagetesting.InsertShops(s.T(), s.DB, pgmodels.Shop{
		ID:            10,
		Name:          "Svyaznoy",
		UserID:        lo.ToPtr(int32(2)),
		AcceptsOrders: true,
	})
	storagetesting.InsertCategories(s.T(), s.DB, pgmodels.Category{ID: 224, Name: "Smartphones"})
	storagetesting.InsertProducts(s.T(), s.DB, pgmodels.Product{ID: 100, Name: "iPhone XR", CategoryID: 224})
	storagetesting.InsertVariants(s.T(), s.DB,
		pgmodels.Variant{ID: 1000, ProductID: 100, ShopID: 10, ExternalID: 4216313, Model: "apple/iphone/xr", Price: 65990, PriceRrc: 69990, Quantity: 9},
		pgmodels.Variant{ID: 1001, ProductID: 100, ShopID: 10, ExternalID: 4216314, Model: "apple/iphone/xr", Price: 71990, PriceRrc: 74990, Quantity: 3},
	)
	storagetesting.InsertAddresses(s.T(), s.DB,
		pgmodels.Address{ID: 50, UserID: 1, City: "Moscow", Street: "Tverskaya", House: "1"},
		pgmodels.Address{ID: 51, UserID: 2, City: "Moscow", Street: "Arbat", House: "2"},
	)

	post := storage.NewPostgres(s.DB)

	basket, err := post.GetOrCreateBasket(context.TODO(), 1)
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(models.StateBasket, basket.State, "new order should be a basket")

	again, err := post.GetOrCreateBasket(context.TODO(), 1)
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(basket.ID, again.ID, "user should have a single basket")

	created, failures, err := post.AddItems(context.TODO(), basket.ID, []models.OrderItem{
		{VariantID: 1000, Quantity: 2},
		{VariantID: 1000, Quantity: 1},
		{VariantID: 9999, Quantity: 1},
	})
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(1, created, "only the first position should be added")
	s.Equal([]models.ItemFailure{
		{VariantID: 1000, Reason: "variant is already in the order"},
		{VariantID: 9999, Reason: "no such variant"},
	}, failures, "should report per-position failures")

	basket, err = post.GetBasket(context.TODO(), 1)
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(basket.Items, 1, "basket should hold the added position")
	s.Equal(2, basket.Items[0].Quantity, "should keep requested quantity")
	s.Equal("iPhone XR", basket.Items[0].ProductName, "should denormalize product name")
	s.Equal("Svyaznoy", basket.Items[0].ShopName, "should denormalize shop name")
	s.Equal(65990, basket.Items[0].Price, "should denormalize variant price")

	updated, deleted, err := post.UpdateItems(context.TODO(), basket.ID, []models.ItemUpdate{
		{ItemID: basket.Items[0].ID, Quantity: 5},
	})
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(int64(1), updated, "should update the position")
	s.Equal(int64(0), deleted, "shouldn't delete anything")

	updated, deleted, err = post.UpdateItems(context.TODO(), basket.ID, []models.ItemUpdate{
		{ItemID: basket.Items[0].ID, Quantity: 0},
		{ItemID: 424242, Quantity: 3},
	})
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(int64(0), updated, "missing positions should be skipped")
	s.Equal(int64(1), deleted, "zero quantity should delete the position")

	_, _, err = post.AddItems(context.TODO(), basket.ID, []models.OrderItem{{VariantID: 1001, Quantity: 1}})
	s.Require().NoError(err, "shouldn't return any error")

	err = post.PlaceOrder(context.TODO(), 1, basket.ID, 51)
	s.Require().ErrorIs(err, platform.ErrAddressOwnership, "shouldn't accept other user's address")

	err = post.PlaceOrder(context.TODO(), 1, basket.ID, 999)
	s.Require().ErrorIs(err, platform.ErrNotFound, "shouldn't accept missing address")

	err = post.PlaceOrder(context.TODO(), 1, basket.ID, 50)
	s.Require().NoError(err, "shouldn't return any error")

	_, err = post.GetBasket(context.TODO(), 1)
	s.Require().ErrorIs(err, platform.ErrNoBasket, "placed order should leave no basket")

	placed, err := post.GetOrder(context.TODO(), basket.ID)
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(models.StateNew, placed.State, "placed order should be in the new state")
	s.Require().NotNil(placed.Address, "placed order should carry its address")
	s.Equal("Tverskaya", placed.Address.Street, "should load the chosen address")

	partnerOrders, err := post.ListOrders(context.TODO(), storage.OrderQuery{
		PartnerUserID: lo.ToPtr(2),
		ExcludeBasket: true,
	})
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(partnerOrders, 1, "partner should see orders with their goods")
	s.Len(partnerOrders[0].Items, 1, "partner should see only their shop's positions")
}

func (s *PostgresTestSuite) TestIntegrationAccounts() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)

	user, err := post.CreateUser(context.TODO(), &models.User{
		Email:     "ivan@example.com",
		FirstName: "Ivan",
		LastName:  "Petrov",
		Type:      models.UserTypeBuyer,
	})
	s.Require().NoError(err, "shouldn't return any error")
	s.NotZero(user.ID, "user should get an ID")
	s.False(user.IsActive, "new user should be inactive")

	_, err = post.CreateUser(context.TODO(), &models.User{
		Email: "ivan@example.com",
		Type:  models.UserTypeBuyer,
	})
	s.Require().ErrorIs(err, platform.ErrEmailTaken, "should reject duplicate email")

	err = post.CreateConfirmationToken(context.TODO(), user.ID, "secret-key")
	s.Require().NoError(err, "shouldn't return any error")

	err = post.ConfirmUser(context.TODO(), "ivan@example.com", "wrong-key")
	s.Require().ErrorIs(err, platform.ErrNotFound, "shouldn't confirm with a wrong key")

	err = post.ConfirmUser(context.TODO(), "ivan@example.com", "secret-key")
	s.Require().NoError(err, "shouldn't return any error")

	confirmed, err := post.GetUser(context.TODO(), user.ID)
	s.Require().NoError(err, "shouldn't return any error")
	s.True(confirmed.IsActive, "confirmed user should be active")

	err = post.ConfirmUser(context.TODO(), "ivan@example.com", "secret-key")
	s.Require().ErrorIs(err, platform.ErrNotFound, "token should be single-use")

	for ix := 0; ix < 5; ix++ {
		_, err := post.CreateAddress(context.TODO(), &models.Address{
			UserID: user.ID,
			City:   "Moscow",
			Street: "Tverskaya",
			House:  "1",
		})
		s.Require().NoError(err, "shouldn't return any error")
	}

	_, err = post.CreateAddress(context.TODO(), &models.Address{
		UserID: user.ID,
		City:   "Moscow",
		Street: "Tverskaya",
		House:  "6",
	})
	s.Require().ErrorIs(err, platform.ErrAddressLimit, "should cap addresses per user")

	addresses, err := post.ListAddresses(context.TODO(), user.ID)
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(addresses, 5, "should list stored addresses")

	err = post.DeleteAddress(context.TODO(), user.ID+1, addresses[0].ID)
	s.Require().ErrorIs(err, platform.ErrNotFound, "other user's addresses shouldn't be reachable")

	err = post.DeleteAddress(context.TODO(), user.ID, addresses[0].ID)
	s.Require().NoError(err, "shouldn't return any error")
}

func (s *PostgresTestSuite) TestIntegrationDeliveryTiers() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	storagetesting.InsertUsers(s.T(), s.DB, pgmodels.Users{ID: 1, Email: "partner@example.com", Type: models.UserTypeShop})
	storagetesting.InsertShops(s.T(), s.DB,
		pgmodels.Shop{ID: 10, Name: "Svyaznoy", UserID: lo.ToPtr(int32(1))},
		pgmodels.Shop{ID: 11, Name: "Evroset"},
	)

	post := storage.NewPostgres(s.DB)

	err := post.UpsertDeliveryTiers(context.TODO(), 10, []models.DeliveryTier{
		{MinSum: 0, Cost: 300},
		{MinSum: 5000, Cost: 100},
	})
	s.Require().NoError(err, "shouldn't return any error")

	// same minimum sum updates the cost in place
	err = post.UpsertDeliveryTiers(context.TODO(), 10, []models.DeliveryTier{
		{MinSum: 5000, Cost: 150},
	})
	s.Require().NoError(err, "shouldn't return any error")

	tiers, err := post.DeliveryTiers(context.TODO(), []int{10, 11})
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(tiers[10], 2, "should keep one tier per minimum sum")

	costs := lo.SliceToMap(tiers[10], func(tier models.DeliveryTier) (int, int) {
		return tier.MinSum, tier.Cost
	})
	s.Equal(map[int]int{0: 300, 5000: 150}, costs, "repeated upsert should update the cost")
	s.Empty(tiers[11], "shop without a schedule should have no tiers")
}
