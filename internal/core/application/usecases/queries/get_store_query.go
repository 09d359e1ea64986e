package queries

import (
	"errors"

	"supermart/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetStoreQueryIsNotConstructed = errors.New(
	"GetStoreQuery must be created via NewGetStoreQuery constructor",
)

// GetStoreQuery retrieves the store's headline figures.
type GetStoreQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStoreQuery() GetStoreQuery {
	return GetStoreQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStoreQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreQueryIsNotConstructed)
}

// GetStoreQueryResponse summarises the store.
//
// Example:
//
//	GetStoreQueryResponse{
//	    Name:             "SuperMart",
//	    Capital:          decimal.NewFromInt(99125),
//	    FormattedCapital: "$99,125.00",
//	    Items:            1,
//	    InventoryUnits:   100,
//	    ManifestVehicles: 1,
//	}
type GetStoreQueryResponse struct {
	Name             string
	Capital          decimal.Decimal
	FormattedCapital string
	Items            int
	InventoryUnits   int
	ManifestVehicles int
}
