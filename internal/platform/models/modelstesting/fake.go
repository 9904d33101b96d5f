package modelstesting

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/retail-automation/orders/internal/platform/models"
)

// FakePriceList returns models.PriceList with fake data and random number of fake goods.
func FakePriceList(ops ...func(l *models.PriceList)) models.PriceList {
	goodsLen := rand.Intn(5) + 1
	goods := make([]models.PriceListGood, 0, goodsLen)
	for i := 0; i < goodsLen; i++ {
		goods = append(goods, FakePriceListGood())
	}

	list := models.PriceList{
		ShopName: faker.Word(),
		Categories: []models.PriceListCategory{
			{ID: rand.Intn(1000) + 1, Name: faker.Word()},
		},
		Goods: goods,
	}

	for _, op := range ops {
		op(&list)
	}

	return list
}

// FakePriceListGood returns models.PriceListGood with fake data.
func FakePriceListGood(ops ...func(g *models.PriceListGood)) models.PriceListGood {
	good := models.PriceListGood{
		ExternalID: rand.Intn(1000000) + 1,
		CategoryID: rand.Intn(1000) + 1,
		Name:       faker.Sentence(),
		Model:      faker.Word(),
		Price:      rand.Intn(100000) + 1,
		PriceRRC:   rand.Intn(100000) + 1,
		Quantity:   rand.Intn(100) + 1,
		Parameters: map[string]string{faker.Word(): faker.Word()},
	}

	for _, op := range ops {
		op(&good)
	}

	return good
}

// FakeOrderItem returns models.OrderItem with fake data.
func FakeOrderItem(ops ...func(i *models.OrderItem)) models.OrderItem {
	item := models.OrderItem{
		ID:          rand.Intn(1000000) + 1,
		OrderID:     rand.Intn(1000000) + 1,
		VariantID:   rand.Intn(1000000) + 1,
		Quantity:    rand.Intn(10) + 1,
		ExternalID:  rand.Intn(1000000) + 1,
		Model:       faker.Word(),
		ProductName: faker.Sentence(),
		Category:    faker.Word(),
		Price:       rand.Intn(100000) + 1,
		PriceRRC:    rand.Intn(100000) + 1,
		ShopID:      rand.Intn(1000) + 1,
		ShopName:    faker.Word(),
	}

	for _, op := range ops {
		op(&item)
	}

	return item
}

// FakeAddress returns models.Address with fake data.
func FakeAddress(ops ...func(a *models.Address)) models.Address {
	address := models.Address{
		ID:        rand.Intn(1000000) + 1,
		UserID:    rand.Intn(1000000) + 1,
		City:      faker.Word(),
		Street:    faker.Word(),
		House:     faker.Word(),
		Apartment: faker.Word(),
	}

	for _, op := range ops {
		op(&address)
	}

	return address
}

// FakeUser returns models.User with fake data.
func FakeUser(ops ...func(u *models.User)) models.User {
	user := models.User{
		ID:        rand.Intn(1000000) + 1,
		Email:     faker.Email(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Company:   faker.Word(),
		Position:  faker.Word(),
		Phone:     faker.Phonenumber(),
		Type:      models.UserTypeBuyer,
		IsActive:  true,
	}

	for _, op := range ops {
		op(&user)
	}

	return user
}
