package queries

import (
	"errors"

	"supermart/internal/core/domain/model/item"
	"supermart/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetItemsQueryIsNotConstructed = errors.New(
	"GetItemsQuery must be created via NewGetItemsQuery or NewGetItemQuery constructor",
)

// GetItemsQuery retrieves the catalog, or a single catalogued item when
// built with NewGetItemQuery.
//
// Example:
//
//	items, err := handler.Handle(ctx, NewGetItemsQuery())
//	milk, err := handler.Handle(ctx, NewGetItemQuery("Milk")) // one element or UnknownItem
type GetItemsQuery struct {
	name string

	guard guard.ConstructorGuard
}

func NewGetItemsQuery() GetItemsQuery {
	return GetItemsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetItemQuery selects the item with exactly this name.
func NewGetItemQuery(name string) GetItemsQuery {
	return GetItemsQuery{name: name, guard: guard.NewConstructorGuard()}
}

func (q GetItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemsQueryIsNotConstructed)
}

// Name returns the selected item name, or "" for the whole catalog.
func (q GetItemsQuery) Name() string {
	return q.name
}

// ItemResponse is the read model of a catalogued item. IdealTemperature is
// nil for dry goods.
type ItemResponse struct {
	Name              string
	ManufacturingCost decimal.Decimal
	SellPrice         decimal.Decimal
	ReorderPoint      int
	ReorderAmount     int
	IdealTemperature  *float64
}

func newItemResponse(it *item.Item) ItemResponse {
	response := ItemResponse{
		Name:              it.Name(),
		ManufacturingCost: it.ManufacturingCost(),
		SellPrice:         it.SellPrice(),
		ReorderPoint:      it.ReorderPoint(),
		ReorderAmount:     it.ReorderAmount(),
	}
	if temp, ok := it.IdealTemperature(); ok {
		celsius := temp.Celsius()
		response.IdealTemperature = &celsius
	}
	return response
}
