package commands

import (
	"context"

	"supermart/internal/core/ports"
)

// ApplySalesLogCommandHandler removes sold units from the inventory and
// credits their value to the capital, all or nothing.
type ApplySalesLogCommandHandler struct {
	storeRepository ports.StoreRepository
}

func NewApplySalesLogCommandHandler(storeRepository ports.StoreRepository) ApplySalesLogCommandHandler {
	return ApplySalesLogCommandHandler{
		storeRepository: storeRepository,
	}
}

func (h *ApplySalesLogCommandHandler) Handle(ctx context.Context, cmd ApplySalesLogCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.storeRepository.Get(ctx)
	if err != nil {
		return err
	}

	return s.ApplySalesLog(cmd.Sold())
}
