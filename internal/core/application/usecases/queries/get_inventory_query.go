package queries

import (
	"errors"

	"supermart/internal/pkg/guard"
)

var ErrGetInventoryQueryIsNotConstructed = errors.New(
	"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
)

// GetInventoryQuery retrieves the stocked quantities with their reorder status.
type GetInventoryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetInventoryQuery() GetInventoryQuery {
	return GetInventoryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

// InventoryLineResponse is one stocked item. NeedsRestock is true when the
// quantity is at or below the reorder point.
type InventoryLineResponse struct {
	Name         string
	Quantity     int
	ReorderPoint int
	NeedsRestock bool
}
