package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/retail-automation/orders/internal/platform"
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/retail-automation/orders/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/retail-automation/orders/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

const maxAddressesPerUser = 5

// CreateUser inserts an inactive user. Emails are unique;
// platform.ErrEmailTaken is returned on a duplicate.
func (p Postgres) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	row := pgmodels.Users{
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Patronymic: user.Patronymic,
		Company:    user.Company,
		Position:   user.Position,
		Phone:      user.Phone,
		Type:       user.Type,
	}

	err := table.Users.INSERT(
		table.Users.Email,
		table.Users.FirstName,
		table.Users.LastName,
		table.Users.Patronymic,
		table.Users.Company,
		table.Users.Position,
		table.Users.Phone,
		table.Users.Type,
	).
		MODEL(row).
		RETURNING(table.Users.AllColumns).
		QueryContext(ctx, p.db, &row)

	if isUniqueViolation(err) {
		return nil, platform.ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("can't add user: %w", err)
	}

	return toAppUser(&row), nil
}

// GetUser returns one user by ID.
func (p Postgres) GetUser(ctx context.Context, userID int) (*models.User, error) {
	var user pgmodels.Users
	err := table.Users.SELECT(table.Users.AllColumns).
		WHERE(table.Users.ID.EQ(pg.Int32(int32(userID)))).
		QueryContext(ctx, p.db, &user)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get user: %w", err)
	}

	return toAppUser(&user), nil
}

// CreateConfirmationToken stores a single-use registration confirmation key
// for the user.
func (p Postgres) CreateConfirmationToken(ctx context.Context, userID int, key string) error {
	row := pgmodels.ConfirmationToken{
		UserID: int32(userID),
		Key:    key,
	}

	_, err := table.ConfirmationToken.INSERT(table.ConfirmationToken.UserID, table.ConfirmationToken.Key).
		MODEL(row).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't add confirmation token: %w", err)
	}

	return nil
}

// ConfirmUser activates the user matching the email and confirmation key and
// burns the token. platform.ErrNotFound is returned when the pair doesn't
// match any pending registration.
func (p Postgres) ConfirmUser(ctx context.Context, email, key string) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var token pgmodels.ConfirmationToken
		err := pg.SELECT(table.ConfirmationToken.AllColumns).
			FROM(table.ConfirmationToken.
				INNER_JOIN(table.Users, table.Users.ID.EQ(table.ConfirmationToken.UserID)),
			).
			WHERE(
				table.Users.Email.EQ(pg.String(email)).
					AND(table.ConfirmationToken.Key.EQ(pg.String(key))),
			).
			QueryContext(ctx, tx, &token)

		if errors.Is(err, qrm.ErrNoRows) {
			return platform.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("can't get confirmation token: %w", err)
		}

		_, err = table.Users.UPDATE(table.Users.IsActive).
			SET(pg.Bool(true)).
			WHERE(table.Users.ID.EQ(pg.Int32(token.UserID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't activate user: %w", err)
		}

		_, err = table.ConfirmationToken.DELETE().
			WHERE(table.ConfirmationToken.ID.EQ(pg.Int32(token.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete confirmation token: %w", err)
		}

		return nil
	})
}

// CreateAddress adds a delivery address for the user. Each user can hold at
// most five addresses.
func (p Postgres) CreateAddress(ctx context.Context, address *models.Address) (*models.Address, error) {
	var created *models.Address

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var count struct {
			Count int64
		}
		err := pg.SELECT(pg.COUNT(table.Address.ID).AS("count.count")).
			FROM(table.Address).
			WHERE(table.Address.UserID.EQ(pg.Int32(int32(address.UserID)))).
			QueryContext(ctx, tx, &count)
		if err != nil {
			return fmt.Errorf("can't count addresses: %w", err)
		}

		if count.Count >= maxAddressesPerUser {
			return platform.ErrAddressLimit
		}

		row := pgmodels.Address{
			UserID:    int32(address.UserID),
			City:      address.City,
			Street:    address.Street,
			House:     address.House,
			Structure: address.Structure,
			Building:  address.Building,
			Apartment: address.Apartment,
		}

		err = table.Address.INSERT(table.Address.MutableColumns).
			MODEL(row).
			RETURNING(table.Address.AllColumns).
			QueryContext(ctx, tx, &row)
		if err != nil {
			return fmt.Errorf("can't add address: %w", err)
		}

		created = toAppAddress(&row)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ListAddresses returns the user's delivery addresses.
func (p Postgres) ListAddresses(ctx context.Context, userID int) ([]models.Address, error) {
	var addresses []pgmodels.Address
	err := table.Address.SELECT(table.Address.AllColumns).
		WHERE(table.Address.UserID.EQ(pg.Int32(int32(userID)))).
		ORDER_BY(table.Address.ID.ASC()).
		QueryContext(ctx, p.db, &addresses)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't list addresses: %w", err)
	}

	return lo.Map(addresses, func(address pgmodels.Address, _ int) models.Address {
		return *toAppAddress(&address)
	}), nil
}

// DeleteAddress removes the user's address. Addresses of other users are not
// reachable this way.
func (p Postgres) DeleteAddress(ctx context.Context, userID, addressID int) error {
	result, err := table.Address.DELETE().
		WHERE(
			table.Address.ID.EQ(pg.Int32(int32(addressID))).
				AND(table.Address.UserID.EQ(pg.Int32(int32(userID)))),
		).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't delete address: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return platform.ErrNotFound
	}

	return nil
}
