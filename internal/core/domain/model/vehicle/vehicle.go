package vehicle

import (
	"errors"
	"math"

	"supermart/internal/core/domain/model/kernel"
	"supermart/internal/core/domain/model/stock"
	"supermart/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle was declared rather than built.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via vehicle.Builder")

var (
	standardBaseCost     = decimal.NewFromInt(750)
	standardCostPerUnit  = decimal.RequireFromString("0.25")
	refrigeratedBaseCost = decimal.NewFromInt(900)
)

// Vehicle is a loaded delivery vehicle. Its cargo, storage temperature and
// cost are fixed when it is built.
//
// Business rules:
//   - Cargo never exceeds the kind's capacity
//   - A Standard vehicle never carries temperature-controlled items
//   - A Refrigerated vehicle may carry dry goods alongside cold ones
//   - Each vehicle has its own identity, so two vehicles with the same
//     cargo are still two vehicles in a manifest
//
// Example usage:
//
//	b := vehicle.NewBuilder(vehicle.Refrigerated)
//	if err := b.Cargo(order); err != nil {
//	    return err
//	}
//	truck, err := b.Build()
//	fmt.Println(truck.Cost()) // 900 + 200 × 0.7^(T/5)
type Vehicle struct {
	// id distinguishes vehicles with identical cargo
	id kernel.UUID

	kind Kind

	// cargo is the load carried by the vehicle
	cargo *stock.Stock

	// storageTemperature is the hold temperature; always MaxTemperature for Standard
	storageTemperature kernel.Temperature

	// cost is what the store pays for the trip
	cost decimal.Decimal

	guard guard.ConstructorGuard
}

func newVehicle(kind Kind, cargo *stock.Stock) *Vehicle {
	v := &Vehicle{
		id:                 kernel.NewUUID(),
		kind:               kind,
		cargo:              cargo,
		storageTemperature: kernel.MaxTemperature,
		guard:              guard.NewConstructorGuard(),
	}

	switch kind {
	case Refrigerated:
		v.storageTemperature = coldestTemperature(cargo)
		factor := math.Pow(0.7, v.storageTemperature.Celsius()/5)
		v.cost = refrigeratedBaseCost.Add(decimal.NewFromFloat(200 * factor))
	default:
		units := decimal.NewFromInt(int64(cargo.TotalUnits()))
		v.cost = standardBaseCost.Add(standardCostPerUnit.Mul(units))
	}
	return v
}

// coldestTemperature returns the minimum ideal temperature of the
// temperature-controlled cargo, clamped to the supported range.
func coldestTemperature(cargo *stock.Stock) kernel.Temperature {
	coldest := kernel.MaxTemperature
	for _, e := range cargo.Entries() {
		if temp, ok := e.Item.IdealTemperature(); ok && temp < coldest {
			coldest = temp
		}
	}
	return coldest.Clamp()
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares vehicles by identity.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return v != nil && other != nil && v.id.IsEqual(other.id)
}

func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

func (v *Vehicle) Kind() Kind {
	return v.kind
}

// Cargo returns the vehicle's load. The returned Stock is immutable.
func (v *Vehicle) Cargo() *stock.Stock {
	return v.cargo
}

// Units returns the total number of units carried.
func (v *Vehicle) Units() int {
	return v.cargo.TotalUnits()
}

func (v *Vehicle) Capacity() int {
	return v.kind.Capacity()
}

// StorageTemperature returns the temperature of the hold. For a Standard
// vehicle this is always kernel.MaxTemperature.
func (v *Vehicle) StorageTemperature() kernel.Temperature {
	return v.storageTemperature
}

// Cost returns the trip cost, excluding the manufacturing cost of the cargo.
func (v *Vehicle) Cost() decimal.Decimal {
	return v.cost
}
