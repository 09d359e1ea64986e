package commands

import (
	"context"

	"supermart/internal/core/domain/model/item"
	"supermart/internal/core/domain/model/manifest"
	"supermart/internal/core/domain/model/stock"
	"supermart/internal/core/ports"
)

type (
	// ReorderPlanner works out the requested order from catalog and inventory.
	ReorderPlanner interface {
		Plan(catalog []*item.Item, inventory *stock.Stock) (*stock.Stock, error)
	}

	// Allocator packs a requested order into vehicles.
	Allocator interface {
		Allocate(order *stock.Stock) (*manifest.Manifest, error)
	}
)

// PlanRestockCommandHandler runs the reorder planner over a consistent
// snapshot of the store and allocates the result into a manifest.
//
// Example:
//
//	handler := NewPlanRestockCommandHandler(repo, services.NewReorderPlanner(), services.NewAllocator())
//	if err := handler.Handle(ctx, NewPlanRestockCommand()); err != nil {
//	    return err
//	}
//	s, _ := repo.Get(ctx)
//	fmt.Println(s.Manifest().Len(), "vehicles planned")
type PlanRestockCommandHandler struct {
	storeRepository ports.StoreRepository
	planner         ReorderPlanner
	allocator       Allocator
}

func NewPlanRestockCommandHandler(
	storeRepository ports.StoreRepository,
	planner ReorderPlanner,
	allocator Allocator,
) PlanRestockCommandHandler {
	return PlanRestockCommandHandler{
		storeRepository: storeRepository,
		planner:         planner,
		allocator:       allocator,
	}
}

func (h *PlanRestockCommandHandler) Handle(ctx context.Context, cmd PlanRestockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.storeRepository.Get(ctx)
	if err != nil {
		return err
	}

	snapshot := s.Snapshot()
	order, err := h.planner.Plan(snapshot.Items, snapshot.Inventory)
	if err != nil {
		return err
	}

	planned, err := h.allocator.Allocate(order)
	if err != nil {
		return err
	}

	return s.SetManifest(planned, false)
}
