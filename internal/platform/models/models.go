package models

import "time"

// Order states. An order starts its life as the user's basket and moves
// forward through the fulfillment states; "canceled" is reachable from any
// non-terminal state.
const (
	StateBasket    = "basket"
	StateNew       = "new"
	StateConfirmed = "confirmed"
	StateAssembled = "assembled"
	StateSent      = "sent"
	StateDelivered = "delivered"
	StateCanceled  = "canceled"
)

// User types.
const (
	UserTypeBuyer = "buyer"
	UserTypeShop  = "shop"
)

// NextStates returns order states reachable from state.
func NextStates(state string) []string {
	switch state {
	case StateBasket:
		return []string{StateNew, StateCanceled}
	case StateNew:
		return []string{StateConfirmed, StateCanceled}
	case StateConfirmed:
		return []string{StateAssembled, StateCanceled}
	case StateAssembled:
		return []string{StateSent, StateCanceled}
	case StateSent:
		return []string{StateDelivered, StateCanceled}
	default:
		return nil
	}
}

// User is user model.
type User struct {
	ID         int
	Email      string
	FirstName  string
	LastName   string
	Patronymic string
	Company    string
	Position   string
	Phone      string
	Type       string
	IsActive   bool
	CreatedAt  time.Time
}

// ConfirmationToken is single-use registration confirmation token model.
type ConfirmationToken struct {
	ID        int
	UserID    int
	Key       string
	CreatedAt time.Time
}

// Shop is shop model.
type Shop struct {
	ID            int
	Name          string
	URL           *string
	UserID        *int
	AcceptsOrders bool
	IsUpToDate    bool
	ReportedAt    *time.Time
	CreatedAt     time.Time

	DeliveryTiers []DeliveryTier
}

// Category is catalog category model. IDs are assigned by partner feeds.
type Category struct {
	ID   int
	Name string
}

// Product is global catalog product model shared across shops.
type Product struct {
	ID         int
	Name       string
	CategoryID int
}

// Variant is one shop's sellable listing of a product.
type Variant struct {
	ID         int
	ProductID  int
	ShopID     int
	ExternalID int
	Model      string
	Price      int
	PriceRRC   int
	Quantity   int

	ProductName string
	Category    string
	ShopName    string
	Parameters  []VariantParameter
}

// VariantParameter is free-form key-value attribute of a variant.
type VariantParameter struct {
	Name  string
	Value string
}

// DeliveryTier is one (minimum order sum, delivery cost) step of a shop's
// delivery cost schedule.
type DeliveryTier struct {
	ShopID int
	MinSum int
	Cost   int
}

// Address is user's delivery address.
type Address struct {
	ID        int
	UserID    int
	City      string
	Street    string
	House     string
	Structure string
	Building  string
	Apartment string
}

// Order is order model. Items are loaded together with the order.
type Order struct {
	ID        int
	UserID    int
	State     string
	AddressID *int
	CreatedAt time.Time

	Address *Address
	Items   []OrderItem
}

// OrderItem is one ordered position. Variant fields needed for pricing and
// presentation are denormalized onto the item when orders are loaded.
type OrderItem struct {
	ID        int
	OrderID   int
	VariantID int
	Quantity  int

	ExternalID  int
	Model       string
	ProductName string
	Category    string
	Price       int
	PriceRRC    int
	ShopID      int
	ShopName    string
}

// ItemFailure explains why one requested basket position was not added.
type ItemFailure struct {
	VariantID int
	Reason    string
}

// ItemUpdate is a requested quantity change of one basket position. A zero
// quantity removes the position.
type ItemUpdate struct {
	ItemID   int
	Quantity int
}

// PriceList is a parsed partner feed document.
type PriceList struct {
	ShopName   string
	Categories []PriceListCategory
	Goods      []PriceListGood
}

// PriceListCategory is one category entry of a feed.
type PriceListCategory struct {
	ID   int
	Name string
}

// PriceListGood is one sellable position of a feed.
type PriceListGood struct {
	ExternalID int
	CategoryID int
	Name       string
	Model      string
	Price      int
	PriceRRC   int
	Quantity   int
	Parameters map[string]string
}
