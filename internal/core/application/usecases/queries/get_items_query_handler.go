package queries

import (
	"context"

	"supermart/internal/core/ports"
	"supermart/internal/pkg/errs"
)

// GetItemsQueryHandler reads the catalog ordered by item name.
type GetItemsQueryHandler struct {
	storeRepository ports.StoreRepository
}

func NewGetItemsQueryHandler(storeRepository ports.StoreRepository) GetItemsQueryHandler {
	return GetItemsQueryHandler{storeRepository: storeRepository}
}

// Handle returns the catalog, or the single selected item. A selected name
// that is not catalogued fails with ObjectNotFound.
func (h GetItemsQueryHandler) Handle(ctx context.Context, query GetItemsQuery) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s, err := h.storeRepository.Get(ctx)
	if err != nil {
		return nil, err
	}

	if query.Name() != "" {
		it, ok := s.Item(query.Name())
		if !ok {
			return nil, errs.NewObjectNotFoundError("item", query.Name())
		}
		return []ItemResponse{newItemResponse(it)}, nil
	}

	items := s.Items()
	responses := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		responses = append(responses, newItemResponse(it))
	}
	return responses, nil
}
