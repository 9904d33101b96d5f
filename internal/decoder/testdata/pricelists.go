// Package testdata holds expected decoding results for the price list files
// next to it.
package testdata

import "github.com/retail-automation/orders/internal/platform/models"

// PriceList is the decoded form of both pricelist.yaml and pricelist.json.
var PriceList = models.PriceList{
	ShopName: "Svyaznoy",
	Categories: []models.PriceListCategory{
		{ID: 224, Name: "Smartphones"},
		{ID: 15, Name: "Accessories"},
	},
	Goods: []models.PriceListGood{
		{
			ExternalID: 4216292,
			CategoryID: 224,
			Name:       "Apple iPhone XS Max 512GB (gold)",
			Model:      "apple/iphone/xs-max",
			Price:      110000,
			PriceRRC:   116990,
			Quantity:   14,
			Parameters: map[string]string{
				"Screen size (inch)":   "6.5",
				"Resolution (pix)":     "2688x1242",
				"Internal memory (GB)": "512",
				"Color":                "gold",
			},
		},
		{
			ExternalID: 4216313,
			CategoryID: 224,
			Name:       "Apple iPhone XR 256GB (red)",
			Model:      "apple/iphone/xr",
			Price:      65990,
			PriceRRC:   69990,
			Quantity:   9,
			Parameters: map[string]string{
				"Screen size (inch)":   "6.1",
				"Resolution (pix)":     "1792x828",
				"Internal memory (GB)": "256",
				"Color":                "red",
			},
		},
		{
			ExternalID: 5000112,
			CategoryID: 15,
			Name:       "Apple AirPods 2 charging case",
			Model:      "apple/airpods",
			Price:      12990,
			PriceRRC:   13990,
			Quantity:   22,
			Parameters: map[string]string{},
		},
	},
}
