package manifest

import (
	"errors"

	"supermart/internal/core/domain/model/kernel"
	"supermart/internal/core/domain/model/stock"
	"supermart/internal/core/domain/model/vehicle"
	"supermart/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrManifestIsNotConstructed is returned when a Manifest was declared rather than built.
var ErrManifestIsNotConstructed = errors.New("Manifest must be created via manifest.Builder")

// Manifest is an immutable set of vehicles. Vehicles keep the order in which
// they were added; adding the same vehicle twice keeps one copy.
//
// Example usage:
//
//	b := manifest.NewBuilder()
//	_ = b.AddVehicle(refrigerated)
//	_ = b.AddVehicle(standard)
//	m := b.Build()
//	fmt.Println(m.Len(), m.TotalCost())
type Manifest struct {
	id       kernel.UUID
	vehicles []*vehicle.Vehicle
	guard    guard.ConstructorGuard
}

// Empty returns a manifest with no vehicles.
func Empty() *Manifest {
	return NewBuilder().Build()
}

func (m *Manifest) Validate() error {
	if m == nil {
		return ErrManifestIsNotConstructed
	}
	return m.guard.Validate(ErrManifestIsNotConstructed)
}

func (m *Manifest) ID() kernel.UUID {
	return m.id
}

// Vehicles returns the vehicles in insertion order. The slice is a copy.
func (m *Manifest) Vehicles() []*vehicle.Vehicle {
	return append([]*vehicle.Vehicle(nil), m.vehicles...)
}

func (m *Manifest) Len() int {
	return len(m.vehicles)
}

func (m *Manifest) IsEmpty() bool {
	return len(m.vehicles) == 0
}

// Contains reports whether v is one of the manifest's vehicles.
func (m *Manifest) Contains(v *vehicle.Vehicle) bool {
	for _, existing := range m.vehicles {
		if existing.IsEqual(v) {
			return true
		}
	}
	return false
}

// TotalCost sums the trip cost of every vehicle. Cargo manufacturing cost is
// not included.
func (m *Manifest) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, v := range m.vehicles {
		total = total.Add(v.Cost())
	}
	return total
}

// TotalUnits sums the units carried by every vehicle.
func (m *Manifest) TotalUnits() int {
	total := 0
	for _, v := range m.vehicles {
		total += v.Units()
	}
	return total
}

// Cargo merges the cargo of every vehicle into one Stock.
func (m *Manifest) Cargo() (*stock.Stock, error) {
	b := stock.NewBuilder()
	for _, v := range m.vehicles {
		if err := b.AddStock(v.Cargo()); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}
