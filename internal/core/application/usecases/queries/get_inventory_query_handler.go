package queries

import (
	"context"

	"supermart/internal/core/ports"
)

// GetInventoryQueryHandler reads the inventory ordered by item name.
type GetInventoryQueryHandler struct {
	storeRepository ports.StoreRepository
}

func NewGetInventoryQueryHandler(storeRepository ports.StoreRepository) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{storeRepository: storeRepository}
}

func (h GetInventoryQueryHandler) Handle(ctx context.Context, query GetInventoryQuery) ([]InventoryLineResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s, err := h.storeRepository.Get(ctx)
	if err != nil {
		return nil, err
	}

	entries := s.Inventory().Entries()
	lines := make([]InventoryLineResponse, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, InventoryLineResponse{
			Name:         e.Item.Name(),
			Quantity:     e.Quantity,
			ReorderPoint: e.Item.ReorderPoint(),
			NeedsRestock: e.Item.NeedsRestock(e.Quantity),
		})
	}
	return lines, nil
}
