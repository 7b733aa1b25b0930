package delivery

import (
	"errors"

	"dispatch/internal/pkg/errs"
)

// ErrItemRefIsNotConstructed is returned when an ItemRef was not created through
// the NewItemRef factory function.
var ErrItemRefIsNotConstructed = errors.New("ItemRef must be created via NewItemRef constructor")

// ItemRef is a read-only snapshot of one line of equipment to deliver.
// It references the invoiced item by its external SKU; the catalog itself is an
// external collaborator and is never consulted by the dispatch engine.
//
// ItemRef is an immutable value object: once part of a delivery's item list it
// is never modified, matching the invoicing snapshot it was taken from.
type ItemRef struct {
	sku      string
	name     string
	quantity int

	isConstructed bool
}

// NewItemRef creates a validated item snapshot.
// The SKU and name must be non-empty and the quantity positive.
func NewItemRef(sku, name string, quantity int) (ItemRef, error) {
	if sku == "" {
		return ItemRef{}, errs.NewValueIsRequiredError("sku")
	}
	if name == "" {
		return ItemRef{}, errs.NewValueIsRequiredError("name")
	}
	if quantity < 1 || quantity > maxItemQuantity {
		return ItemRef{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}

	return ItemRef{
		sku:           sku,
		name:          name,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// maxItemQuantity bounds a single invoice line. Rental invoices never carry more
// units of one SKU than this.
const maxItemQuantity = 1000

// Validate ensures the ItemRef was created via NewItemRef.
func (i ItemRef) Validate() error {
	if !i.isConstructed {
		return ErrItemRefIsNotConstructed
	}
	return nil
}

// SKU returns the external catalog identifier of the item.
func (i ItemRef) SKU() string {
	return i.sku
}

// Name returns the display name captured at invoicing time.
func (i ItemRef) Name() string {
	return i.name
}

// Quantity returns the number of units to deliver.
func (i ItemRef) Quantity() int {
	return i.quantity
}
