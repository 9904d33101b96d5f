// Package accounts implements user registration with email confirmation and
// delivery address management.
package accounts

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Notifier --filename notifier.go

// Storage is users, confirmation tokens and addresses storage.
type Storage interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	CreateConfirmationToken(ctx context.Context, userID int, key string) error
	ConfirmUser(ctx context.Context, email, key string) error
	CreateAddress(ctx context.Context, address *models.Address) (*models.Address, error)
	ListAddresses(ctx context.Context, userID int) ([]models.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID int) error
}

// Notifier sends email notifications.
type Notifier interface {
	Notify(ctx context.Context, title, message string, recipients []string) error
}

// Registration is a new user signup request.
type Registration struct {
	Email      string `validate:"required,email"`
	FirstName  string `validate:"required"`
	LastName   string `validate:"required"`
	Patronymic string
	Company    string
	Position   string
	Phone      string
	Type       string `validate:"omitempty,oneof=buyer shop"`
}

// Service is the accounts service.
type Service struct {
	storage  Storage
	notifier Notifier
	validate *validator.Validate
	logger   *zerolog.Logger
}

// NewService returns new Service.
func NewService(storage Storage, notifier Notifier, logger *zerolog.Logger) *Service {
	return &Service{
		storage:  storage,
		notifier: notifier,
		validate: validator.New(),
		logger:   logger,
	}
}

// Register creates an inactive user and emails them a confirmation key. The
// user stays inactive until Confirm is called with that key.
func (s *Service) Register(ctx context.Context, reg *Registration) (*models.User, error) {
	if err := s.validate.Struct(reg); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}

	userType := reg.Type
	if userType == "" {
		userType = models.UserTypeBuyer
	}

	user, err := s.storage.CreateUser(ctx, &models.User{
		Email:      reg.Email,
		FirstName:  reg.FirstName,
		LastName:   reg.LastName,
		Patronymic: reg.Patronymic,
		Company:    reg.Company,
		Position:   reg.Position,
		Phone:      reg.Phone,
		Type:       userType,
	})
	if err != nil {
		return nil, err
	}

	key := uuid.NewString()
	if err := s.storage.CreateConfirmationToken(ctx, user.ID, key); err != nil {
		return nil, fmt.Errorf("can't create confirmation token: %w", err)
	}

	message := fmt.Sprintf("Your confirmation key is %s.", key)
	if err := s.notifier.Notify(ctx, "Confirm your registration", message, []string{user.Email}); err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).Msg("can't send confirmation email")
	}

	return user, nil
}

// Confirm activates the user matching email and confirmation key.
func (s *Service) Confirm(ctx context.Context, email, key string) error {
	return s.storage.ConfirmUser(ctx, email, key)
}

// CreateAddress adds a delivery address for the user. Storage enforces the
// per-user address cap.
func (s *Service) CreateAddress(ctx context.Context, address *models.Address) (*models.Address, error) {
	if address.City == "" || address.Street == "" || address.House == "" {
		return nil, fmt.Errorf("city, street and house are required")
	}

	return s.storage.CreateAddress(ctx, address)
}

// ListAddresses returns the user's delivery addresses.
func (s *Service) ListAddresses(ctx context.Context, userID int) ([]models.Address, error) {
	return s.storage.ListAddresses(ctx, userID)
}

// DeleteAddress removes the user's address.
func (s *Service) DeleteAddress(ctx context.Context, userID, addressID int) error {
	return s.storage.DeleteAddress(ctx, userID, addressID)
}
