package manifest

import (
	"slices"

	"supermart/internal/core/domain/model/kernel"
	"supermart/internal/core/domain/model/vehicle"
	"supermart/internal/pkg/errs"
	"supermart/internal/pkg/guard"
)

// Builder accumulates vehicles into a Manifest. It is reusable after Reset.
type Builder struct {
	vehicles []*vehicle.Vehicle
}

func NewBuilder() *Builder {
	return &Builder{}
}

// AddVehicle appends v unless a vehicle with the same identity was already
// added. It rejects a nil or unbuilt vehicle.
func (b *Builder) AddVehicle(v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicle", err)
	}
	if slices.ContainsFunc(b.vehicles, v.IsEqual) {
		return nil
	}
	b.vehicles = append(b.vehicles, v)
	return nil
}

// Build returns a new Manifest with its own identity. The builder keeps its
// vehicles, so Build may be called again.
func (b *Builder) Build() *Manifest {
	return &Manifest{
		id:       kernel.NewUUID(),
		vehicles: slices.Clone(b.vehicles),
		guard:    guard.NewConstructorGuard(),
	}
}

// Reset discards every accumulated vehicle.
func (b *Builder) Reset() {
	b.vehicles = nil
}
