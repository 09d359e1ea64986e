package services

import (
	"sort"

	"supermart/internal/core/domain/model/item"
	"supermart/internal/core/domain/model/manifest"
	"supermart/internal/core/domain/model/stock"
	"supermart/internal/core/domain/model/vehicle"
	"supermart/internal/pkg/errs"
)

// Allocator is a domain service that packs a requested order into vehicles.
//
// It is a greedy heuristic, not an optimiser. Every requested unit ends up in
// exactly one vehicle, no vehicle exceeds its capacity and no Standard vehicle
// carries a temperature-controlled item.
//
// Allocation algorithm:
//   - Split the order into cold units (temperature-controlled) and warm units (dry goods)
//   - Order cold units coldest first, ties by item name
//   - Fill Refrigerated vehicles from the cold units, topping up spare
//     capacity with warm units
//   - Fill Standard vehicles with whatever warm units remain
//
// Example usage:
//
//	allocator := services.NewAllocator()
//	m, err := allocator.Allocate(order)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(m.Len(), m.TotalCost())
type Allocator struct{}

func NewAllocator() Allocator {
	return Allocator{}
}

// unitRun is a run of consecutive units of one item. Allocating runs instead
// of single units keeps the work proportional to the number of items.
type unitRun struct {
	item  *item.Item
	count int
}

// Allocate returns a manifest carrying exactly the units of order. An empty
// order yields an empty manifest.
//
// Parameters:
//   - order: the requested stock (must be built through stock.Builder)
//
// Returns:
//   - *manifest.Manifest: the loaded vehicles, Refrigerated ones first
//   - error: ValueIsInvalid when order is nil or unbuilt
func (a Allocator) Allocate(order *stock.Stock) (*manifest.Manifest, error) {
	if err := order.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order", err)
	}

	cold, warm := splitByTemperature(order)
	manifestBuilder := manifest.NewBuilder()

	refrigerated := vehicle.NewRefrigeratedBuilder()
	for len(cold) > 0 {
		cargo := stock.NewBuilder()
		taken, err := takeUnits(&cold, vehicle.RefrigeratedCapacity, cargo)
		if err != nil {
			return nil, err
		}
		if _, err = takeUnits(&warm, vehicle.RefrigeratedCapacity-taken, cargo); err != nil {
			return nil, err
		}

		if err := a.load(refrigerated, cargo, manifestBuilder); err != nil {
			return nil, err
		}
	}

	standard := vehicle.NewStandardBuilder()
	for len(warm) > 0 {
		cargo := stock.NewBuilder()
		if _, err := takeUnits(&warm, vehicle.StandardCapacity, cargo); err != nil {
			return nil, err
		}

		if err := a.load(standard, cargo, manifestBuilder); err != nil {
			return nil, err
		}
	}

	return manifestBuilder.Build(), nil
}

func (a Allocator) load(vb *vehicle.Builder, cargo *stock.Builder, mb *manifest.Builder) error {
	defer vb.Reset()

	if err := vb.Cargo(cargo.Build()); err != nil {
		return err
	}
	v, err := vb.Build()
	if err != nil {
		return err
	}
	return mb.AddVehicle(v)
}

// splitByTemperature expands order into cold and warm runs. Cold runs are
// sorted coldest first; within a temperature, and for warm runs, items keep
// the stock's name order.
func splitByTemperature(order *stock.Stock) (cold, warm []unitRun) {
	for _, e := range order.Entries() {
		if e.Quantity == 0 {
			continue
		}
		run := unitRun{item: e.Item, count: e.Quantity}
		if e.Item.IsTemperatureControlled() {
			cold = append(cold, run)
		} else {
			warm = append(warm, run)
		}
	}

	sort.SliceStable(cold, func(i, j int) bool {
		ti, _ := cold[i].item.IdealTemperature()
		tj, _ := cold[j].item.IdealTemperature()
		return ti < tj
	})
	return cold, warm
}

// takeUnits moves up to limit units from the front of runs into cargo and
// returns how many were moved.
func takeUnits(runs *[]unitRun, limit int, cargo *stock.Builder) (int, error) {
	taken := 0
	for taken < limit && len(*runs) > 0 {
		front := &(*runs)[0]
		n := min(front.count, limit-taken)
		if err := cargo.AddStockedItem(front.item, n); err != nil {
			return taken, err
		}
		taken += n
		front.count -= n

		if front.count == 0 {
			*runs = (*runs)[1:]
		}
	}
	return taken, nil
}
