package decoder

import "github.com/retail-automation/orders/internal/platform/models"

// priceList is model for partner price list documents.
type priceList struct {
	Shop       string         `yaml:"shop" json:"shop" validate:"required"`
	Categories []feedCategory `yaml:"categories" json:"categories" validate:"dive"`
	Goods      []feedGood     `yaml:"goods" json:"goods" validate:"dive"`
}

// feedCategory is model for category entries in price list documents.
type feedCategory struct {
	ID   int    `yaml:"id" json:"id" validate:"required"`
	Name string `yaml:"name" json:"name" validate:"required"`
}

// feedGood is model for sellable positions in price list documents.
type feedGood struct {
	ID         int               `yaml:"id" json:"id" validate:"required"`
	Category   int               `yaml:"category" json:"category" validate:"required"`
	Model      string            `yaml:"model" json:"model"`
	Name       string            `yaml:"name" json:"name" validate:"required"`
	Price      int               `yaml:"price" json:"price" validate:"min=0"`
	PriceRRC   int               `yaml:"price_rrc" json:"price_rrc" validate:"min=0"`
	Quantity   int               `yaml:"quantity" json:"quantity" validate:"min=0"`
	Parameters map[string]string `yaml:"parameters" json:"parameters"`
}

func toAppPriceList(list *priceList) *models.PriceList {
	appList := models.PriceList{
		ShopName:   list.Shop,
		Categories: make([]models.PriceListCategory, 0, len(list.Categories)),
		Goods:      make([]models.PriceListGood, 0, len(list.Goods)),
	}

	for ix := range list.Categories {
		appList.Categories = append(appList.Categories, models.PriceListCategory{
			ID:   list.Categories[ix].ID,
			Name: list.Categories[ix].Name,
		})
	}

	for ix := range list.Goods {
		appList.Goods = append(appList.Goods, models.PriceListGood{
			ExternalID: list.Goods[ix].ID,
			CategoryID: list.Goods[ix].Category,
			Name:       list.Goods[ix].Name,
			Model:      list.Goods[ix].Model,
			Price:      list.Goods[ix].Price,
			PriceRRC:   list.Goods[ix].PriceRRC,
			Quantity:   list.Goods[ix].Quantity,
			Parameters: list.Goods[ix].Parameters,
		})
	}

	return &appList
}
