package queries

import (
	"context"

	"supermart/internal/core/domain/model/kernel"
	"supermart/internal/core/ports"
)

// GetStoreQueryHandler reads the store summary.
type GetStoreQueryHandler struct {
	storeRepository ports.StoreRepository
}

func NewGetStoreQueryHandler(storeRepository ports.StoreRepository) GetStoreQueryHandler {
	return GetStoreQueryHandler{storeRepository: storeRepository}
}

func (h GetStoreQueryHandler) Handle(ctx context.Context, query GetStoreQuery) (GetStoreQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStoreQueryResponse{}, err
	}

	s, err := h.storeRepository.Get(ctx)
	if err != nil {
		return GetStoreQueryResponse{}, err
	}

	snapshot := s.Snapshot()
	return GetStoreQueryResponse{
		Name:             snapshot.Name,
		Capital:          snapshot.Capital,
		FormattedCapital: kernel.FormatCurrency(snapshot.Capital),
		Items:            len(snapshot.Items),
		InventoryUnits:   snapshot.Inventory.TotalUnits(),
		ManifestVehicles: snapshot.Manifest.Len(),
	}, nil
}
