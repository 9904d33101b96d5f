// Package orders implements the buyer-facing order lifecycle: basket
// management, placement with delivery resolution and order history.
package orders

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/retail-automation/orders/internal/metrics"
	"github.com/retail-automation/orders/internal/platform"
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/retail-automation/orders/internal/platform/storage"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Notifier --filename notifier.go

// Storage is orders, users and delivery tiers storage.
type Storage interface {
	GetOrCreateBasket(ctx context.Context, userID int) (*models.Order, error)
	GetBasket(ctx context.Context, userID int) (*models.Order, error)
	GetOrder(ctx context.Context, orderID int) (*models.Order, error)
	SetOrderState(ctx context.Context, orderID int, state string) error
	AddItems(ctx context.Context, orderID int, items []models.OrderItem) (int, []models.ItemFailure, error)
	UpdateItems(ctx context.Context, orderID int, updates []models.ItemUpdate) (updated, deleted int64, err error)
	ListOrders(ctx context.Context, query storage.OrderQuery) ([]models.Order, error)
	PlaceOrder(ctx context.Context, userID, orderID, addressID int) error
	DeliveryTiers(ctx context.Context, shopIDs []int) (map[int][]models.DeliveryTier, error)
	GetUser(ctx context.Context, userID int) (*models.User, error)
}

// Notifier sends email notifications.
type Notifier interface {
	Notify(ctx context.Context, title, message string, recipients []string) error
}

// AddItem is a request to put a variant into the basket.
type AddItem struct {
	VariantID int `validate:"required"`
	Quantity  int `validate:"min=1"`
}

// Service is the order lifecycle service.
type Service struct {
	storage    Storage
	notifier   Notifier
	validate   *validator.Validate
	logger     *zerolog.Logger
	adminEmail string
}

// NewService returns new Service. Notifications about placed orders go to the
// buyer and to adminEmail.
func NewService(storage Storage, notifier Notifier, logger *zerolog.Logger, adminEmail string) *Service {
	return &Service{
		storage:    storage,
		notifier:   notifier,
		validate:   validator.New(),
		logger:     logger,
		adminEmail: adminEmail,
	}
}

// Basket returns the user's basket, creating an empty one if needed.
func (s *Service) Basket(ctx context.Context, userID int) (*OrderView, error) {
	order, err := s.storage.GetOrCreateBasket(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("can't get basket: %w", err)
	}

	views, err := s.buildOrderViews(ctx, []models.Order{*order})
	if err != nil {
		return nil, err
	}

	return &views[0], nil
}

// AddItems puts variants into the user's basket. Each position is applied
// independently: failures over single positions (unknown variant, duplicate)
// are reported without rolling back the rest.
func (s *Service) AddItems(ctx context.Context, userID int, items []AddItem) (int, []models.ItemFailure, error) {
	for ix := range items {
		if err := s.validate.Struct(&items[ix]); err != nil {
			return 0, nil, fmt.Errorf("invalid item: %w", err)
		}
	}

	basket, err := s.storage.GetOrCreateBasket(ctx, userID)
	if err != nil {
		return 0, nil, fmt.Errorf("can't get basket: %w", err)
	}

	orderItems := lo.Map(items, func(item AddItem, _ int) models.OrderItem {
		return models.OrderItem{VariantID: item.VariantID, Quantity: item.Quantity}
	})

	return s.storage.AddItems(ctx, basket.ID, orderItems)
}

// UpdateItems changes quantities of basket positions. A zero quantity removes
// the position. Updates naming unknown positions match nothing.
func (s *Service) UpdateItems(ctx context.Context, userID int, updates []models.ItemUpdate) (updated, deleted int64, err error) {
	for ix := range updates {
		if updates[ix].Quantity < 0 {
			return 0, 0, fmt.Errorf("invalid quantity %d for item %d", updates[ix].Quantity, updates[ix].ItemID)
		}
	}

	basket, err := s.storage.GetBasket(ctx, userID)
	if err != nil {
		return 0, 0, err
	}

	return s.storage.UpdateItems(ctx, basket.ID, updates)
}

// Place turns the user's basket into a placed order with the given delivery
// address. Delivery must resolve for every shop in the basket first; when it
// doesn't, a platform.DeliveryError with per-shop reasons is returned and the
// basket stays untouched.
func (s *Service) Place(ctx context.Context, userID, addressID int) (*OrderView, error) {
	basket, err := s.storage.GetBasket(ctx, userID)
	if err != nil {
		return nil, err
	}

	views, err := s.buildOrderViews(ctx, []models.Order{*basket})
	if err != nil {
		return nil, err
	}
	view := views[0]

	if !view.Delivery.AllResolved {
		return nil, &platform.DeliveryError{Issues: view.Delivery.Issues}
	}

	if err := s.storage.PlaceOrder(ctx, userID, basket.ID, addressID); err != nil {
		return nil, err
	}
	metrics.OrdersPlaced.Inc()

	view.State = models.StateNew
	s.notifyPlaced(ctx, userID, &view)

	return &view, nil
}

// History returns the user's placed orders, newest first. The basket is not
// part of the history.
func (s *Service) History(ctx context.Context, userID int) ([]OrderView, error) {
	orders, err := s.storage.ListOrders(ctx, storage.OrderQuery{UserID: &userID, ExcludeBasket: true})
	if err != nil {
		return nil, err
	}

	return s.buildOrderViews(ctx, orders)
}

// PartnerOrders returns placed orders containing goods of the shop owned by
// the partner user. Only that shop's positions are included.
func (s *Service) PartnerOrders(ctx context.Context, partnerUserID int) ([]OrderView, error) {
	orders, err := s.storage.ListOrders(ctx, storage.OrderQuery{PartnerUserID: &partnerUserID, ExcludeBasket: true})
	if err != nil {
		return nil, err
	}

	return s.buildOrderViews(ctx, orders)
}

// SetState moves a placed order to the next fulfillment state and notifies
// the buyer. Only transitions allowed by models.NextStates are accepted.
func (s *Service) SetState(ctx context.Context, orderID int, state string) (*models.Order, error) {
	order, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !lo.Contains(models.NextStates(order.State), state) {
		return nil, fmt.Errorf("can't move order from %q to %q", order.State, state)
	}

	if err := s.storage.SetOrderState(ctx, orderID, state); err != nil {
		return nil, err
	}
	order.State = state

	message := fmt.Sprintf("Order %d is now %s.", order.ID, state)
	if err := s.notifyUser(ctx, order.UserID, "Order update", message); err != nil {
		s.logger.Warn().Err(err).Int("orderId", order.ID).Msg("can't send order state notification")
	}

	return order, nil
}

// notifyUser emails one user.
func (s *Service) notifyUser(ctx context.Context, userID int, title, message string) error {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("can't get recipient: %w", err)
	}

	return s.notifier.Notify(ctx, title, message, []string{user.Email})
}

// notifyPlaced emails the buyer and the administrator about a placed order.
// Notification failures don't fail the placement.
func (s *Service) notifyPlaced(ctx context.Context, userID int, view *OrderView) {
	message := fmt.Sprintf("Order %d has been placed, total sum %d (delivery %d).",
		view.ID, view.TotalSum, view.Delivery.Total)

	recipients := []string{s.adminEmail}
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Int("userId", userID).Msg("can't get buyer for notification")
	} else {
		recipients = append([]string{user.Email}, recipients...)
	}

	if err := s.notifier.Notify(ctx, "Order placed", message, recipients); err != nil {
		s.logger.Warn().Err(err).Int("orderId", view.ID).Msg("can't send order notification")
	}
}
