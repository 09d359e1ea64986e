package commands

import (
	"context"

	"supermart/internal/core/ports"
)

// DeliverManifestCommandHandler applies the current manifest as a delivery.
// The manifest stays current and is marked delivered, so each plan is paid
// for once.
type DeliverManifestCommandHandler struct {
	storeRepository ports.StoreRepository
}

func NewDeliverManifestCommandHandler(storeRepository ports.StoreRepository) DeliverManifestCommandHandler {
	return DeliverManifestCommandHandler{
		storeRepository: storeRepository,
	}
}

func (h *DeliverManifestCommandHandler) Handle(ctx context.Context, cmd DeliverManifestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.storeRepository.Get(ctx)
	if err != nil {
		return err
	}

	return s.DeliverManifest(cmd.ManifestID())
}
