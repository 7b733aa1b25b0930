// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the aggregates and read optimized models straight from
// storage; writes stay behind the command handlers.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetPoolQueryIsNotConstructed = errors.New(
	"GetPoolQuery must be created via NewGetPoolQuery constructor",
)

// GetPoolQuery retrieves the shared pool of unclaimed deliveries.
// Every worker sees the same pool, ordered oldest first, so the longest-waiting
// invoice surfaces at the top of the claim dialog.
//
// Example:
//
//	query := NewGetPoolQuery()
//	handler := NewGetPoolQueryHandler(db)
//
//	pool, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read the pool: %w", err)
//	}
//
//	for _, d := range pool {
//	    fmt.Printf("%s waiting since %s\n", d.InvoiceRef, d.CreatedAt)
//	}
type GetPoolQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPoolQuery creates a query for the unclaimed pool.
// This is a parameterless query; filtering and ordering are fixed.
func NewGetPoolQuery() GetPoolQuery {
	return GetPoolQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPoolQuery) Validate() error {
	return q.guard.Validate(ErrGetPoolQueryIsNotConstructed)
}

// ItemResponse is one invoice line in a delivery read model.
type ItemResponse struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// GetPoolQueryResponse represents one pooled delivery awaiting a claim.
type GetPoolQueryResponse struct {
	ID         kernel.UUID
	InvoiceRef string
	Items      []ItemResponse
	CreatedAt  time.Time
}
