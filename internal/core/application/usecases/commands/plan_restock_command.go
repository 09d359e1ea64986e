package commands

import (
	"errors"

	"supermart/internal/pkg/guard"
)

var ErrPlanRestockCommandIsNotConstructed = errors.New(
	"PlanRestockCommand must be created via NewPlanRestockCommand constructor",
)

// PlanRestockCommand replaces the store's current manifest with a freshly
// allocated restock of every item at or below its reorder point. Nothing is
// delivered; see DeliverManifestCommand.
//
// Example:
//
//	cmd := NewPlanRestockCommand()
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("restock planning failed: %w", err)
//	}
type PlanRestockCommand struct {
	guard guard.ConstructorGuard
}

func NewPlanRestockCommand() PlanRestockCommand {
	return PlanRestockCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c PlanRestockCommand) Validate() error {
	return c.guard.Validate(ErrPlanRestockCommandIsNotConstructed)
}
