package item

import (
	"errors"

	"supermart/internal/core/domain/model/kernel"
	"supermart/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was declared rather than built.
var ErrItemIsNotConstructed = errors.New("Item must be created via item.Builder")

// Item describes a stockable product. It is a value object: it never changes
// after Build, and two items are equal when their names are equal.
//
// Business rules:
//   - Name is non-empty and case-sensitive
//   - Costs and prices are non-negative money amounts
//   - Reorder point and reorder amount are non-negative unit counts
//   - The ideal temperature, when present, lies within [-20, 10] °C
//
// Example usage:
//
//	milk, err := item.NewTemperatureControlledItem("Milk", 1.0, 2.0, 10, 50, 4.0)
//	if err != nil {
//	    return err
//	}
//	temp, ok := milk.IdealTemperature() // 4.0°C, true
type Item struct {
	// name identifies the item in catalogs, stock and manifests
	name string

	// manufacturingCost is paid per unit when the item is delivered
	manufacturingCost decimal.Decimal

	// sellPrice is earned per unit when the item is sold
	sellPrice decimal.Decimal

	// reorderPoint is the inventory level at or below which a restock is requested
	reorderPoint int

	// reorderAmount is the number of units requested by a restock
	reorderAmount int

	// idealTemperature is nil for dry goods
	idealTemperature *kernel.Temperature

	guard guard.ConstructorGuard
}

// NewItem builds a dry good.
//
// Parameters:
//   - name: non-empty item name
//   - manufacturingCost: cost per delivered unit (>= 0)
//   - sellPrice: price per sold unit (>= 0)
//   - reorderPoint: restock threshold (>= 0)
//   - reorderAmount: restock quantity (>= 0)
//
// Returns:
//   - *Item: the built item
//   - error: every validation failure, joined
func NewItem(name string, manufacturingCost, sellPrice float64, reorderPoint, reorderAmount int) (*Item, error) {
	b := NewBuilder()
	if err := errors.Join(
		b.Name(name),
		b.ManufacturingCost(manufacturingCost),
		b.SellPrice(sellPrice),
		b.ReorderPoint(reorderPoint),
		b.ReorderAmount(reorderAmount),
	); err != nil {
		return nil, err
	}
	return b.Build()
}

// NewTemperatureControlledItem builds an item that must be kept at idealTemperature.
// It accepts the same parameters as NewItem plus the temperature in °C.
//
// Example:
//
//	ice, err := item.NewTemperatureControlledItem("Ice Cream", 8, 14, 175, 250, -20)
func NewTemperatureControlledItem(
	name string,
	manufacturingCost, sellPrice float64,
	reorderPoint, reorderAmount int,
	idealTemperature float64,
) (*Item, error) {
	b := NewBuilder()
	if err := errors.Join(
		b.Name(name),
		b.ManufacturingCost(manufacturingCost),
		b.SellPrice(sellPrice),
		b.ReorderPoint(reorderPoint),
		b.ReorderAmount(reorderAmount),
		b.IdealTemperature(idealTemperature),
	); err != nil {
		return nil, err
	}
	return b.Build()
}

// Validate reports whether the item came out of a Builder.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares items by name.
func (i *Item) IsEqual(other *Item) bool {
	return i != nil && other != nil && i.name == other.name
}

// Name returns the item's identity.
func (i *Item) Name() string {
	return i.name
}

// ManufacturingCost returns the cost paid per delivered unit.
func (i *Item) ManufacturingCost() decimal.Decimal {
	return i.manufacturingCost
}

// SellPrice returns the price earned per sold unit.
func (i *Item) SellPrice() decimal.Decimal {
	return i.sellPrice
}

func (i *Item) ReorderPoint() int {
	return i.reorderPoint
}

func (i *Item) ReorderAmount() int {
	return i.reorderAmount
}

// IdealTemperature returns the storage temperature and true for a
// temperature-controlled item, or zero and false for a dry good.
func (i *Item) IdealTemperature() (kernel.Temperature, bool) {
	if i.idealTemperature == nil {
		return 0, false
	}
	return *i.idealTemperature, true
}

// IsTemperatureControlled reports whether the item needs refrigeration.
func (i *Item) IsTemperatureControlled() bool {
	return i.idealTemperature != nil
}

// NeedsRestock reports whether quantity has fallen to the reorder point.
func (i *Item) NeedsRestock(quantity int) bool {
	return quantity <= i.reorderPoint
}

func (i *Item) String() string {
	return i.name
}
