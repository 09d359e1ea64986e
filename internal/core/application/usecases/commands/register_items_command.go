package commands

import (
	"errors"

	"supermart/internal/core/domain/model/item"
	"supermart/internal/pkg/errs"
	"supermart/internal/pkg/guard"
)

var (
	ErrRegisterItemsCommandIsNotConstructed = errors.New(
		"RegisterItemsCommand must be created via NewRegisterItemsCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// RegisterItemsCommand adds items to the store's catalog.
//
// With stockable set, every newly catalogued item is also stocked with zero
// units, which is how a store takes on a whole item-properties file.
// Without it, items are only catalogued.
//
// Example:
//
//	cmd, err := NewRegisterItemsCommand([]*item.Item{rice, milk}, true)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register items: %w", err)
//	}
type RegisterItemsCommand struct {
	items     []*item.Item
	stockable bool

	guard guard.ConstructorGuard
}

// NewRegisterItemsCommand validates every item up front, so the handler can
// register them as one batch.
func NewRegisterItemsCommand(items []*item.Item, stockable bool) (RegisterItemsCommand, error) {
	cmd := RegisterItemsCommand{
		stockable: stockable,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setItems(items); err != nil {
		return RegisterItemsCommand{}, err
	}

	return cmd, nil
}

func (c RegisterItemsCommand) Validate() error {
	return c.guard.Validate(ErrRegisterItemsCommandIsNotConstructed)
}

// Items returns a copy of the items to register.
func (c RegisterItemsCommand) Items() []*item.Item {
	return append([]*item.Item(nil), c.items...)
}

func (c RegisterItemsCommand) Stockable() bool {
	return c.stockable
}

func (c *RegisterItemsCommand) setItems(items []*item.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	var invalid []error
	for _, it := range items {
		if err := it.Validate(); err != nil {
			invalid = append(invalid, errs.NewValueIsInvalidErrorWithCause("item", err))
		}
	}
	if err := errors.Join(invalid...); err != nil {
		return err
	}

	c.items = append([]*item.Item(nil), items...)
	return nil
}
