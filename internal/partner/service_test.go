package partner_test

import (
	"context"
	"testing"
	"time"

	"github.com/retail-automation/orders/internal/partner"
	"github.com/retail-automation/orders/internal/partner/mocks"
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	partnerUserID = 12
	shopID        = 4
	pricelistURL  = "https://partner.example.com/pricelist.yaml"
	adminEmail    = "admin@orders.example.com"
)

var (
	logger = zerolog.Nop()
	now    = time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)
	shop   = &models.Shop{ID: shopID, Name: "Svyaznoy"}
)

type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

func TestUnitReportPricelist(t *testing.T) {
	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)
	notifier := mocks.NewNotifier(t)

	storage.On("GetOrCreateShopByUser", mock.Anything, partnerUserID, "Unnamed shop").Return(shop, nil)
	storage.On("MarkPricelistReported", mock.Anything, shopID, pricelistURL, now).Return(nil)
	commander.On("SendImportCommand", mock.Anything, shopID, pricelistURL).Return(nil)
	notifier.On("Notify", mock.Anything, "Price list update", mock.AnythingOfType("string"), []string{adminEmail}).
		Return(nil)

	svc := partner.NewService(storage, commander, notifier, &logger, adminEmail, partner.WithClock(fakeClock{now: now}))

	got, err := svc.ReportPricelist(context.TODO(), partnerUserID, pricelistURL)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, shop, got, "should return the partner's shop")
}

func TestUnitReportPricelistBadURL(t *testing.T) {
	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)
	notifier := mocks.NewNotifier(t)

	svc := partner.NewService(storage, commander, notifier, &logger, adminEmail, partner.WithClock(fakeClock{now: now}))

	got, err := svc.ReportPricelist(context.TODO(), partnerUserID, "not-a-url")

	require.ErrorContains(t, err, "invalid price list url", "should reject a malformed url")
	assert.Nil(t, got, "shouldn't return a shop")
}

func TestUnitReportPricelistCommanderError(t *testing.T) {
	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)
	notifier := mocks.NewNotifier(t)

	storage.On("GetOrCreateShopByUser", mock.Anything, partnerUserID, "Unnamed shop").Return(shop, nil)
	storage.On("MarkPricelistReported", mock.Anything, shopID, pricelistURL, now).Return(nil)
	commander.On("SendImportCommand", mock.Anything, shopID, pricelistURL).Return(assert.AnError)

	svc := partner.NewService(storage, commander, notifier, &logger, adminEmail, partner.WithClock(fakeClock{now: now}))

	got, err := svc.ReportPricelist(context.TODO(), partnerUserID, pricelistURL)

	require.ErrorContains(t, err, "can't schedule import", "should return scheduling error")
	require.ErrorIs(t, err, assert.AnError, "should return error containing assert.AnError")
	assert.Nil(t, got, "shouldn't return a shop")
}

func TestUnitReportPricelistNotificationFailure(t *testing.T) {
	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)
	notifier := mocks.NewNotifier(t)

	storage.On("GetOrCreateShopByUser", mock.Anything, partnerUserID, "Unnamed shop").Return(shop, nil)
	storage.On("MarkPricelistReported", mock.Anything, shopID, pricelistURL, now).Return(nil)
	commander.On("SendImportCommand", mock.Anything, shopID, pricelistURL).Return(nil)
	notifier.On("Notify", mock.Anything, "Price list update", mock.AnythingOfType("string"), []string{adminEmail}).
		Return(assert.AnError)

	svc := partner.NewService(storage, commander, notifier, &logger, adminEmail, partner.WithClock(fakeClock{now: now}))

	got, err := svc.ReportPricelist(context.TODO(), partnerUserID, pricelistURL)

	require.NoError(t, err, "a lost notification shouldn't fail the report")
	assert.Equal(t, shop, got, "should return the partner's shop")
}

func TestUnitSetDeliveryTiers(t *testing.T) {
	tiers := []models.DeliveryTier{
		{MinSum: 0, Cost: 300},
		{MinSum: 2000, Cost: 150},
	}

	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)
	notifier := mocks.NewNotifier(t)

	storage.On("GetOrCreateShopByUser", mock.Anything, partnerUserID, "Unnamed shop").Return(shop, nil)
	storage.On("UpsertDeliveryTiers", mock.Anything, shopID, tiers).Return(nil)

	svc := partner.NewService(storage, commander, notifier, &logger, adminEmail)

	err := svc.SetDeliveryTiers(context.TODO(), partnerUserID, tiers)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitSetDeliveryTiersInvalid(t *testing.T) {
	tests := map[string][]models.DeliveryTier{
		"empty":         {},
		"negative sum":  {{MinSum: -1, Cost: 100}},
		"negative cost": {{MinSum: 0, Cost: -100}},
	}

	for name, tiers := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			commander := mocks.NewCommander(t)
			notifier := mocks.NewNotifier(t)

			svc := partner.NewService(storage, commander, notifier, &logger, adminEmail)

			err := svc.SetDeliveryTiers(context.TODO(), partnerUserID, tiers)

			require.Error(t, err, "should reject invalid tiers")
		})
	}
}

func TestUnitSetState(t *testing.T) {
	storage := mocks.NewStorage(t)
	commander := mocks.NewCommander(t)
	notifier := mocks.NewNotifier(t)

	storage.On("GetOrCreateShopByUser", mock.Anything, partnerUserID, "Unnamed shop").Return(shop, nil)
	storage.On("SetShopState", mock.Anything, shopID, false).Return(nil)

	svc := partner.NewService(storage, commander, notifier, &logger, adminEmail)

	err := svc.SetState(context.TODO(), partnerUserID, false)

	require.NoError(t, err, "shouldn't return any error")
}
