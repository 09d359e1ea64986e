package commands

import (
	"errors"

	"supermart/internal/core/domain/model/kernel"
	"supermart/internal/pkg/guard"
)

var ErrDeliverManifestCommandIsNotConstructed = errors.New(
	"DeliverManifestCommand must be created via NewDeliverManifestCommand constructor",
)

// DeliverManifestCommand receives the store's current manifest. The manifest
// ID guards against delivering a plan that was replaced in the meantime.
type DeliverManifestCommand struct {
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeliverManifestCommand(manifestID kernel.UUID) (DeliverManifestCommand, error) {
	cmd := DeliverManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setManifestID(manifestID); err != nil {
		return DeliverManifestCommand{}, err
	}

	return cmd, nil
}

func (c DeliverManifestCommand) Validate() error {
	return c.guard.Validate(ErrDeliverManifestCommandIsNotConstructed)
}

func (c DeliverManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

func (c *DeliverManifestCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}
