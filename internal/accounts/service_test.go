package accounts_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/retail-automation/orders/internal/accounts"
	"github.com/retail-automation/orders/internal/accounts/mocks"
	"github.com/retail-automation/orders/internal/platform"
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/retail-automation/orders/internal/platform/models/modelstesting"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var logger = zerolog.Nop()

func TestUnitRegister(t *testing.T) {
	reg := &accounts.Registration{
		Email:     faker.Email(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Type:      models.UserTypeShop,
	}
	created := modelstesting.FakeUser(func(u *models.User) {
		u.Email = reg.Email
		u.Type = models.UserTypeShop
		u.IsActive = false
	})

	storage := mocks.NewStorage(t)
	notifier := mocks.NewNotifier(t)

	storage.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == reg.Email && u.Type == models.UserTypeShop && !u.IsActive
	})).Return(&created, nil)
	storage.On("CreateConfirmationToken", mock.Anything, created.ID, mock.AnythingOfType("string")).Return(nil)
	notifier.On("Notify", mock.Anything, "Confirm your registration", mock.AnythingOfType("string"),
		[]string{reg.Email}).Return(nil)

	svc := accounts.NewService(storage, notifier, &logger)

	user, err := svc.Register(context.TODO(), reg)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, &created, user, "should return the created user")
}

func TestUnitRegisterDefaultsToBuyer(t *testing.T) {
	reg := &accounts.Registration{
		Email:     faker.Email(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
	}
	created := modelstesting.FakeUser(func(u *models.User) { u.Email = reg.Email })

	storage := mocks.NewStorage(t)
	notifier := mocks.NewNotifier(t)

	storage.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Type == models.UserTypeBuyer
	})).Return(&created, nil)
	storage.On("CreateConfirmationToken", mock.Anything, created.ID, mock.AnythingOfType("string")).Return(nil)
	notifier.On("Notify", mock.Anything, "Confirm your registration", mock.AnythingOfType("string"),
		[]string{reg.Email}).Return(nil)

	svc := accounts.NewService(storage, notifier, &logger)

	_, err := svc.Register(context.TODO(), reg)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitRegisterInvalidEmail(t *testing.T) {
	storage := mocks.NewStorage(t)
	notifier := mocks.NewNotifier(t)

	svc := accounts.NewService(storage, notifier, &logger)

	user, err := svc.Register(context.TODO(), &accounts.Registration{
		Email:     "not-an-email",
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
	})

	require.ErrorContains(t, err, "invalid registration", "should reject a malformed email")
	assert.Nil(t, user, "shouldn't return a user")
}

func TestUnitRegisterEmailTaken(t *testing.T) {
	reg := &accounts.Registration{
		Email:     faker.Email(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
	}

	storage := mocks.NewStorage(t)
	notifier := mocks.NewNotifier(t)

	storage.On("CreateUser", mock.Anything, mock.Anything).Return(nil, platform.ErrEmailTaken)

	svc := accounts.NewService(storage, notifier, &logger)

	user, err := svc.Register(context.TODO(), reg)

	require.ErrorIs(t, err, platform.ErrEmailTaken, "should return ErrEmailTaken")
	assert.Nil(t, user, "shouldn't return a user")
}

func TestUnitConfirm(t *testing.T) {
	email := faker.Email()
	key := faker.UUIDHyphenated()

	storage := mocks.NewStorage(t)
	notifier := mocks.NewNotifier(t)

	storage.On("ConfirmUser", mock.Anything, email, key).Return(nil)

	svc := accounts.NewService(storage, notifier, &logger)

	require.NoError(t, svc.Confirm(context.TODO(), email, key), "shouldn't return any error")
}

func TestUnitCreateAddress(t *testing.T) {
	address := modelstesting.FakeAddress()

	storage := mocks.NewStorage(t)
	notifier := mocks.NewNotifier(t)

	storage.On("CreateAddress", mock.Anything, &address).Return(&address, nil)

	svc := accounts.NewService(storage, notifier, &logger)

	created, err := svc.CreateAddress(context.TODO(), &address)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, &address, created, "should return the created address")
}

func TestUnitCreateAddressMissingFields(t *testing.T) {
	address := modelstesting.FakeAddress(func(a *models.Address) { a.City = "" })

	storage := mocks.NewStorage(t)
	notifier := mocks.NewNotifier(t)

	svc := accounts.NewService(storage, notifier, &logger)

	created, err := svc.CreateAddress(context.TODO(), &address)

	require.ErrorContains(t, err, "required", "should reject an incomplete address")
	assert.Nil(t, created, "shouldn't return an address")
}

func TestUnitCreateAddressLimit(t *testing.T) {
	address := modelstesting.FakeAddress()

	storage := mocks.NewStorage(t)
	notifier := mocks.NewNotifier(t)

	storage.On("CreateAddress", mock.Anything, &address).Return(nil, platform.ErrAddressLimit)

	svc := accounts.NewService(storage, notifier, &logger)

	created, err := svc.CreateAddress(context.TODO(), &address)

	require.ErrorIs(t, err, platform.ErrAddressLimit, "should pass the address cap error through")
	assert.Nil(t, created, "shouldn't return an address")
}
