package commands

import (
	"errors"

	"supermart/internal/core/domain/model/manifest"
	"supermart/internal/pkg/errs"
	"supermart/internal/pkg/guard"
)

var ErrImportManifestCommandIsNotConstructed = errors.New(
	"ImportManifestCommand must be created via NewImportManifestCommand constructor",
)

// ImportManifestCommand receives an externally prepared manifest, typically
// read from a manifest file, and makes it the store's current manifest.
type ImportManifestCommand struct {
	manifest *manifest.Manifest

	guard guard.ConstructorGuard
}

func NewImportManifestCommand(m *manifest.Manifest) (ImportManifestCommand, error) {
	cmd := ImportManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setManifest(m); err != nil {
		return ImportManifestCommand{}, err
	}

	return cmd, nil
}

func (c ImportManifestCommand) Validate() error {
	return c.guard.Validate(ErrImportManifestCommandIsNotConstructed)
}

func (c ImportManifestCommand) Manifest() *manifest.Manifest {
	return c.manifest
}

func (c *ImportManifestCommand) setManifest(m *manifest.Manifest) error {
	if err := m.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("manifest", err)
	}

	c.manifest = m
	return nil
}
