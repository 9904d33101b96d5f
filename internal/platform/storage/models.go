package storage

import (
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/retail-automation/orders/internal/platform/storage/gen/postgres/public/model"
)

func toAppShop(shop *pgmodels.Shop, tiers []pgmodels.DeliveryTier) *models.Shop {
	return &models.Shop{
		ID:            int(shop.ID),
		Name:          shop.Name,
		URL:           shop.URL,
		UserID:        toIntPtr(shop.UserID),
		AcceptsOrders: shop.AcceptsOrders,
		IsUpToDate:    shop.IsUptodate,
		ReportedAt:    shop.ReportedAt,
		CreatedAt:     shop.CreatedAt,
		DeliveryTiers: lo.Map(tiers, func(tier pgmodels.DeliveryTier, _ int) models.DeliveryTier {
			return models.DeliveryTier{
				ShopID: int(tier.ShopID),
				MinSum: int(tier.MinSum),
				Cost:   int(tier.Cost),
			}
		}),
	}
}

func toAppVariant(variant *pgmodels.Variant) *models.Variant {
	return &models.Variant{
		ID:         int(variant.ID),
		ProductID:  int(variant.ProductID),
		ShopID:     int(variant.ShopID),
		ExternalID: int(variant.ExternalID),
		Model:      variant.Model,
		Price:      int(variant.Price),
		PriceRRC:   int(variant.PriceRrc),
		Quantity:   int(variant.Quantity),
	}
}

func toAppUser(user *pgmodels.Users) *models.User {
	return &models.User{
		ID:         int(user.ID),
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Patronymic: user.Patronymic,
		Company:    user.Company,
		Position:   user.Position,
		Phone:      user.Phone,
		Type:       user.Type,
		IsActive:   user.IsActive,
		CreatedAt:  user.CreatedAt,
	}
}

func toAppAddress(address *pgmodels.Address) *models.Address {
	return &models.Address{
		ID:        int(address.ID),
		UserID:    int(address.UserID),
		City:      address.City,
		Street:    address.Street,
		House:     address.House,
		Structure: address.Structure,
		Building:  address.Building,
		Apartment: address.Apartment,
	}
}

func toIntPtr(value *int32) *int {
	if value == nil {
		return nil
	}
	converted := int(*value)
	return &converted
}
