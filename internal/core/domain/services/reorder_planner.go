package services

import (
	"supermart/internal/core/domain/model/item"
	"supermart/internal/core/domain/model/stock"
	"supermart/internal/pkg/errs"
)

// ReorderPlanner works out which catalogued items need restocking.
//
// Business rules:
//   - An item needs restocking when its inventory quantity is at or below its
//     reorder point; an item that is not stocked counts as zero units
//   - A restocked item is requested at its reorder amount
//   - Items with a reorder amount of zero are never requested
type ReorderPlanner struct{}

func NewReorderPlanner() ReorderPlanner {
	return ReorderPlanner{}
}

// Plan returns the requested order for catalog given the current inventory.
// The result is empty when nothing needs restocking.
func (p ReorderPlanner) Plan(catalog []*item.Item, inventory *stock.Stock) (*stock.Stock, error) {
	if err := inventory.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("inventory", err)
	}

	order := stock.NewBuilder()
	for _, it := range catalog {
		if err := it.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("item", err)
		}
		if it.ReorderAmount() == 0 {
			continue
		}

		quantity, _ := inventory.Quantity(it.Name())
		if !it.NeedsRestock(quantity) {
			continue
		}
		if err := order.AddStockedItem(it, it.ReorderAmount()); err != nil {
			return nil, err
		}
	}
	return order.Build(), nil
}
