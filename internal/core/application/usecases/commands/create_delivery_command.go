package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// ItemSpec is the inbound shape of one invoice line. It is converted to the
// domain item snapshot by the handler; validation of ranges happens there.
type ItemSpec struct {
	SKU      string
	Name     string
	Quantity int
}

// CreateDeliveryCommand represents ingesting one external invoice into the
// pool. The invoice reference is opaque; the item list is a read-only snapshot
// of what has to be delivered.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	invoiceRef string
	items      []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a pool ingestion request.
// Emptiness of the invoice reference and item list is rejected by the domain
// constructor; the command only carries the raw input.
func NewCreateDeliveryCommand(invoiceRef string, items []ItemSpec) (CreateDeliveryCommand, error) {
	return CreateDeliveryCommand{
		invoiceRef: invoiceRef,
		items:      append([]ItemSpec(nil), items...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// InvoiceRef returns the opaque external invoice identifier.
func (c CreateDeliveryCommand) InvoiceRef() string {
	return c.invoiceRef
}

// Items returns the inbound invoice lines.
func (c CreateDeliveryCommand) Items() []ItemSpec {
	return append([]ItemSpec(nil), c.items...)
}
