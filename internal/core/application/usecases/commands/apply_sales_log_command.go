package commands

import (
	"errors"

	"supermart/internal/core/domain/model/stock"
	"supermart/internal/pkg/errs"
	"supermart/internal/pkg/guard"
)

var ErrApplySalesLogCommandIsNotConstructed = errors.New(
	"ApplySalesLogCommand must be created via NewApplySalesLogCommand constructor",
)

// ApplySalesLogCommand records a batch of sales against the store.
//
// Example:
//
//	cmd, err := NewApplySalesLogCommand(sold)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); errs.KindOf(err) == errs.KindInsufficientStock {
//	    // nothing was sold
//	}
type ApplySalesLogCommand struct {
	sold *stock.Stock

	guard guard.ConstructorGuard
}

func NewApplySalesLogCommand(sold *stock.Stock) (ApplySalesLogCommand, error) {
	cmd := ApplySalesLogCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSold(sold); err != nil {
		return ApplySalesLogCommand{}, err
	}

	return cmd, nil
}

func (c ApplySalesLogCommand) Validate() error {
	return c.guard.Validate(ErrApplySalesLogCommandIsNotConstructed)
}

// Sold returns the units sold per item.
func (c ApplySalesLogCommand) Sold() *stock.Stock {
	return c.sold
}

func (c *ApplySalesLogCommand) setSold(sold *stock.Stock) error {
	if err := sold.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sales log", err)
	}

	c.sold = sold
	return nil
}
