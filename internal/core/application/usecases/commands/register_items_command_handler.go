package commands

import (
	"context"

	"supermart/internal/core/ports"
)

// RegisterItemsCommandHandler catalogues items in the session store.
type RegisterItemsCommandHandler struct {
	storeRepository ports.StoreRepository
}

func NewRegisterItemsCommandHandler(storeRepository ports.StoreRepository) RegisterItemsCommandHandler {
	return RegisterItemsCommandHandler{
		storeRepository: storeRepository,
	}
}

// Handle registers the command's items. A stockable batch is registered
// atomically; otherwise items are catalogued one by one, and names already in
// the catalog are skipped.
func (h *RegisterItemsCommandHandler) Handle(ctx context.Context, cmd RegisterItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.storeRepository.Get(ctx)
	if err != nil {
		return err
	}

	if cmd.Stockable() {
		return s.RegisterStockableItems(cmd.Items())
	}

	for _, it := range cmd.Items() {
		if err = s.RegisterItem(it); err != nil {
			return err
		}
	}
	return nil
}
