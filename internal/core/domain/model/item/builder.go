package item

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"supermart/internal/core/domain/model/kernel"
	"supermart/internal/pkg/errs"
	"supermart/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Builder accumulates the attributes of an Item. Each setter validates its
// argument immediately and leaves the builder unchanged on failure; Build
// checks that every required attribute was set.
//
// A Builder is reusable: Build does not consume its state and Reset clears it.
//
// Example:
//
//	b := item.NewBuilder()
//	if err := errors.Join(
//	    b.Name("Rice"),
//	    b.ManufacturingCost(2),
//	    b.SellPrice(3),
//	    b.ReorderPoint(225),
//	    b.ReorderAmount(300),
//	); err != nil {
//	    return err
//	}
//	rice, err := b.Build()
type Builder struct {
	name              *string
	manufacturingCost *decimal.Decimal
	sellPrice         *decimal.Decimal
	reorderPoint      *int
	reorderAmount     *int
	idealTemperature  *kernel.Temperature
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Name sets the item's identity. An empty name is invalid.
func (b *Builder) Name(name string) error {
	if name == "" {
		return errs.NewValueIsInvalidErrorWithCause("name", errors.New("name must not be empty"))
	}
	if strings.TrimSpace(name) != name {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("%q has surrounding whitespace", name))
	}
	b.name = &name
	return nil
}

func (b *Builder) ManufacturingCost(cost float64) error {
	amount, err := nonNegativeMoney("manufacturing cost", cost)
	if err != nil {
		return err
	}
	b.manufacturingCost = &amount
	return nil
}

func (b *Builder) SellPrice(price float64) error {
	amount, err := nonNegativeMoney("sell price", price)
	if err != nil {
		return err
	}
	b.sellPrice = &amount
	return nil
}

func (b *Builder) ReorderPoint(point int) error {
	if point < 0 {
		return errs.NewValueIsInvalidErrorWithCause("reorder point", fmt.Errorf("%d is negative", point))
	}
	b.reorderPoint = &point
	return nil
}

func (b *Builder) ReorderAmount(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("reorder amount", fmt.Errorf("%d is negative", amount))
	}
	b.reorderAmount = &amount
	return nil
}

// IdealTemperature marks the item as temperature-controlled. The temperature
// must lie within [kernel.MinTemperature, kernel.MaxTemperature].
func (b *Builder) IdealTemperature(celsius float64) error {
	temp, err := kernel.NewTemperature(celsius)
	if err != nil {
		return err
	}
	b.idealTemperature = &temp
	return nil
}

// Build returns a new Item from the accumulated attributes. It fails with a
// joined ValueIsRequired error naming every unset required attribute.
func (b *Builder) Build() (*Item, error) {
	var missing []error
	if b.name == nil {
		missing = append(missing, errs.NewValueIsRequiredError("name"))
	}
	if b.manufacturingCost == nil {
		missing = append(missing, errs.NewValueIsRequiredError("manufacturing cost"))
	}
	if b.sellPrice == nil {
		missing = append(missing, errs.NewValueIsRequiredError("sell price"))
	}
	if b.reorderPoint == nil {
		missing = append(missing, errs.NewValueIsRequiredError("reorder point"))
	}
	if b.reorderAmount == nil {
		missing = append(missing, errs.NewValueIsRequiredError("reorder amount"))
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	built := &Item{
		name:              *b.name,
		manufacturingCost: *b.manufacturingCost,
		sellPrice:         *b.sellPrice,
		reorderPoint:      *b.reorderPoint,
		reorderAmount:     *b.reorderAmount,
		guard:             guard.NewConstructorGuard(),
	}
	if b.idealTemperature != nil {
		temp := *b.idealTemperature
		built.idealTemperature = &temp
	}
	return built, nil
}

// Reset discards every accumulated attribute.
func (b *Builder) Reset() {
	*b = Builder{}
}

func nonNegativeMoney(paramName string, value float64) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%v is not a number", value))
	}
	if value < 0 {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%v is negative", value))
	}
	return decimal.NewFromFloat(value), nil
}
