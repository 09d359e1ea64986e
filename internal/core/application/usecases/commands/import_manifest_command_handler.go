package commands

import (
	"context"

	"supermart/internal/core/ports"
)

// ImportManifestCommandHandler delivers an imported manifest and keeps it as
// the current one, in a single atomic step.
type ImportManifestCommandHandler struct {
	storeRepository ports.StoreRepository
}

func NewImportManifestCommandHandler(storeRepository ports.StoreRepository) ImportManifestCommandHandler {
	return ImportManifestCommandHandler{
		storeRepository: storeRepository,
	}
}

func (h *ImportManifestCommandHandler) Handle(ctx context.Context, cmd ImportManifestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.storeRepository.Get(ctx)
	if err != nil {
		return err
	}

	return s.SetManifest(cmd.Manifest(), true)
}
