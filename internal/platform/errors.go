package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrNoBasket is returned when the user has no basket-state order.
var ErrNoBasket = errors.New("no basket-state order")

// ErrAddressLimit is returned when a user already has the maximum allowed
// number of addresses.
var ErrAddressLimit = errors.New("maximum number of addresses reached")

// ErrAddressOwnership is returned when an address does not belong to the
// requesting user.
var ErrAddressOwnership = errors.New("address does not belong to the user")

// ErrEmailTaken is returned when a user with the given email already exists.
var ErrEmailTaken = errors.New("email is already registered")

// ErrAlreadyUpToDate is returned when a price list refresh is requested for a
// shop whose listing is already up to date.
var ErrAlreadyUpToDate = errors.New("price list is already up to date")

// ErrNoPricelistSource is returned when a shop has no price list URL to
// refresh from.
var ErrNoPricelistSource = errors.New("no price list source")

// DeliveryError carries per-shop delivery resolution issues which reject an
// order placement. Reason strings are surfaced to the caller verbatim.
type DeliveryError struct {
	Issues []string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery unresolved: %s", strings.Join(e.Issues, "; "))
}
