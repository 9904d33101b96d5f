// Package partner implements shop-side operations: reporting new price
// lists, managing delivery cost schedules and toggling order intake.
package partner

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Commander --filename commander.go
//go:generate mockery --name Notifier --filename notifier.go

// placeholderShopName is used until the first imported price list names the
// shop.
const placeholderShopName = "Unnamed shop"

// Storage is shops and delivery tiers storage.
type Storage interface {
	GetOrCreateShopByUser(ctx context.Context, userID int, placeholderName string) (*models.Shop, error)
	MarkPricelistReported(ctx context.Context, shopID int, url string, reportedAt time.Time) error
	UpsertDeliveryTiers(ctx context.Context, shopID int, tiers []models.DeliveryTier) error
	SetShopState(ctx context.Context, shopID int, acceptsOrders bool) error
}

// Commander schedules price list imports.
type Commander interface {
	SendImportCommand(ctx context.Context, shopID int, url string) error
}

// Notifier sends email notifications.
type Notifier interface {
	Notify(ctx context.Context, title, message string, recipients []string) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Service.
type Option func(s *Service)

// Service is the partner-facing shop management service.
type Service struct {
	storage    Storage
	commander  Commander
	notifier   Notifier
	validate   *validator.Validate
	clock      Clock
	logger     *zerolog.Logger
	adminEmail string
}

// NewService returns new Service. Price list reports are announced to
// adminEmail.
func NewService(storage Storage, commander Commander, notifier Notifier, logger *zerolog.Logger, adminEmail string, ops ...Option) *Service {
	svc := &Service{
		storage:    storage,
		commander:  commander,
		notifier:   notifier,
		validate:   validator.New(),
		clock:      systemClock{},
		logger:     logger,
		adminEmail: adminEmail,
	}

	for _, op := range ops {
		op(svc)
	}

	return svc
}

// ReportPricelist records that the partner's shop has a new price list at
// url and schedules an asynchronous import of it. The shop's listing is
// marked out of date until the import finishes.
func (s *Service) ReportPricelist(ctx context.Context, partnerUserID int, url string) (*models.Shop, error) {
	if err := s.validate.Var(url, "required,url"); err != nil {
		return nil, fmt.Errorf("invalid price list url: %w", err)
	}

	shop, err := s.storage.GetOrCreateShopByUser(ctx, partnerUserID, placeholderShopName)
	if err != nil {
		return nil, fmt.Errorf("can't get shop: %w", err)
	}

	if err := s.storage.MarkPricelistReported(ctx, shop.ID, url, s.clock.Now()); err != nil {
		return nil, fmt.Errorf("can't mark price list reported: %w", err)
	}

	if err := s.commander.SendImportCommand(ctx, shop.ID, url); err != nil {
		return nil, fmt.Errorf("can't schedule import: %w", err)
	}

	s.logger.Info().
		Int("shopId", shop.ID).
		Str("url", url).
		Msg("price list import scheduled")

	message := fmt.Sprintf("Shop %q reported a new price list at %s.", shop.Name, url)
	if err := s.notifier.Notify(ctx, "Price list update", message, []string{s.adminEmail}); err != nil {
		// the import is already scheduled, a lost notification shouldn't undo it
		s.logger.Warn().
			Err(err).
			Int("shopId", shop.ID).
			Msg("can't notify about price list report")
	}

	return shop, nil
}

// SetDeliveryTiers replaces or extends the shop's delivery cost schedule.
// Tiers are upserted by minimum sum, so re-sending a tier updates its cost.
func (s *Service) SetDeliveryTiers(ctx context.Context, partnerUserID int, tiers []models.DeliveryTier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("at least one delivery tier is required")
	}
	for ix := range tiers {
		if tiers[ix].MinSum < 0 || tiers[ix].Cost < 0 {
			return fmt.Errorf("invalid delivery tier: minimum sum and cost must not be negative")
		}
	}

	shop, err := s.storage.GetOrCreateShopByUser(ctx, partnerUserID, placeholderShopName)
	if err != nil {
		return fmt.Errorf("can't get shop: %w", err)
	}

	return s.storage.UpsertDeliveryTiers(ctx, shop.ID, tiers)
}

// SetState toggles whether the partner's shop accepts new orders.
func (s *Service) SetState(ctx context.Context, partnerUserID int, acceptsOrders bool) error {
	shop, err := s.storage.GetOrCreateShopByUser(ctx, partnerUserID, placeholderShopName)
	if err != nil {
		return fmt.Errorf("can't get shop: %w", err)
	}

	return s.storage.SetShopState(ctx, shop.ID, acceptsOrders)
}

// Shop returns the partner's shop, creating a placeholder one on first use.
func (s *Service) Shop(ctx context.Context, partnerUserID int) (*models.Shop, error) {
	return s.storage.GetOrCreateShopByUser(ctx, partnerUserID, placeholderShopName)
}

// WithClock sets Service's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

type systemClock struct{}

// Now returns current UTC time.
func (c systemClock) Now() time.Time {
	return time.Now().UTC()
}
