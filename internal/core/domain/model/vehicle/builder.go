package vehicle

import (
	"supermart/internal/core/domain/model/stock"
	"supermart/internal/pkg/errs"
)

// Builder loads a vehicle of a fixed kind. It is reusable after Reset.
type Builder struct {
	kind  Kind
	cargo *stock.Stock
}

func NewBuilder(kind Kind) *Builder {
	return &Builder{kind: kind}
}

func NewStandardBuilder() *Builder {
	return NewBuilder(Standard)
}

func NewRefrigeratedBuilder() *Builder {
	return NewBuilder(Refrigerated)
}

// Cargo sets the load after checking it against the kind's capacity and
// content rules. On failure the previous cargo is kept.
//
// Returns:
//   - CapacityExceeded error when cargo holds more units than the kind carries
//   - ContentMismatch error when a Standard vehicle is given a temperature-controlled item
//   - ValueIsInvalid error when the kind or the stock is invalid
func (b *Builder) Cargo(cargo *stock.Stock) error {
	if err := validateCargo(b.kind, cargo); err != nil {
		return err
	}
	b.cargo = cargo
	return nil
}

// Build returns the loaded vehicle. It fails with ValueIsRequired when no
// cargo was set, and re-checks the cargo rules.
func (b *Builder) Build() (*Vehicle, error) {
	if b.cargo == nil {
		return nil, errs.NewValueIsRequiredError("cargo")
	}
	if err := validateCargo(b.kind, b.cargo); err != nil {
		return nil, err
	}
	return newVehicle(b.kind, b.cargo), nil
}

// Reset discards the cargo. The kind is kept.
func (b *Builder) Reset() {
	b.cargo = nil
}

func validateCargo(kind Kind, cargo *stock.Stock) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if err := cargo.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("cargo", err)
	}

	units := 0
	for _, e := range cargo.Entries() {
		if e.Quantity > kind.Capacity()-units {
			return errs.NewCapacityExceededError(kind.String(), cargo.TotalUnits(), kind.Capacity())
		}
		units += e.Quantity
	}

	if !kind.AcceptsTemperatureControlled() {
		for _, e := range cargo.Entries() {
			if e.Item.IsTemperatureControlled() {
				return errs.NewContentMismatchError(kind.String(), e.Item.Name())
			}
		}
	}
	return nil
}
