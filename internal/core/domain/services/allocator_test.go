package services_test

import (
	"math"
	"testing"

	"supermart/internal/core/domain/model/item"
	"supermart/internal/core/domain/model/kernel"
	"supermart/internal/core/domain/model/manifest"
	"supermart/internal/core/domain/model/stock"
	"supermart/internal/core/domain/model/vehicle"
	"supermart/internal/core/domain/services"
	"supermart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	item *item.Item
	qty  int
}

func orderOf(t *testing.T, lines ...line) *stock.Stock {
	t.Helper()
	b := stock.NewBuilder()
	for _, l := range lines {
		require.NoError(t, b.AddStockedItem(l.item, l.qty))
	}
	return b.Build()
}

func dry(t *testing.T, name string) *item.Item {
	t.Helper()
	it, err := item.NewItem(name, 1, 2, 10, 50)
	require.NoError(t, err)
	return it
}

func cold(t *testing.T, name string, celsius float64) *item.Item {
	t.Helper()
	it, err := item.NewTemperatureControlledItem(name, 1, 2, 10, 50, celsius)
	require.NoError(t, err)
	return it
}

// assertAllocation checks that m carries exactly order and that every
// vehicle respects its capacity and content rules.
func assertAllocation(t *testing.T, order *stock.Stock, m *manifest.Manifest) {
	t.Helper()

	cargo, err := m.Cargo()
	require.NoError(t, err)
	assert.True(t, order.IsEqual(cargo), "manifest cargo must equal the order")

	for _, v := range m.Vehicles() {
		assert.LessOrEqual(t, v.Units(), v.Capacity())
		if v.Kind() == vehicle.Standard {
			for _, e := range v.Cargo().Entries() {
				assert.False(t, e.Item.IsTemperatureControlled(), "standard vehicle carries %s", e.Item.Name())
			}
		}
	}
}

func TestAllocator_Allocate(t *testing.T) {
	allocator := services.NewAllocator()

	t.Run("single cold item fits one refrigerated vehicle", func(t *testing.T) {
		milk := cold(t, "Milk", 4.0)
		order := orderOf(t, line{milk, 50})

		m, err := allocator.Allocate(order)

		require.NoError(t, err)
		require.Equal(t, 1, m.Len())
		v := m.Vehicles()[0]
		assert.Equal(t, vehicle.Refrigerated, v.Kind())
		assert.Equal(t, kernel.Temperature(4), v.StorageTemperature())
		assert.InDelta(t, 900+200*math.Pow(0.7, 0.8), v.Cost().InexactFloat64(), 1e-6)
		assert.Equal(t, 50, v.Units())
	})

	t.Run("cold overflow opens a second refrigerated vehicle", func(t *testing.T) {
		order := orderOf(t, line{cold(t, "Frozen Peas", -10), 900})

		m, err := allocator.Allocate(order)

		require.NoError(t, err)
		require.Equal(t, 2, m.Len())
		assert.Equal(t, 800, m.Vehicles()[0].Units())
		assert.Equal(t, 100, m.Vehicles()[1].Units())
		for _, v := range m.Vehicles() {
			assert.Equal(t, vehicle.Refrigerated, v.Kind())
		}
		assertAllocation(t, order, m)
	})

	t.Run("empty order yields empty manifest", func(t *testing.T) {
		m, err := allocator.Allocate(stock.Empty())

		require.NoError(t, err)
		assert.True(t, m.IsEmpty())
	})

	t.Run("dry goods backfill refrigerated capacity", func(t *testing.T) {
		order := orderOf(t, line{cold(t, "Milk", 3), 300}, line{dry(t, "Rice"), 600})

		m, err := allocator.Allocate(order)

		require.NoError(t, err)
		require.Equal(t, 1, m.Len())
		v := m.Vehicles()[0]
		assert.Equal(t, vehicle.Refrigerated, v.Kind())
		assert.Equal(t, 800, v.Units())
		rice, _ := v.Cargo().Quantity("Rice")
		assert.Equal(t, 500, rice)

		// the Rice left over is not lost
		m2, err := allocator.Allocate(orderOf(t, line{cold(t, "Milk", 3), 300}, line{dry(t, "Rice"), 1600}))
		require.NoError(t, err)
		require.Equal(t, 3, m2.Len())
		assert.Equal(t, vehicle.Standard, m2.Vehicles()[1].Kind())
		assert.Equal(t, 1000, m2.Vehicles()[1].Units())
		assert.Equal(t, 100, m2.Vehicles()[2].Units())
	})

	t.Run("coldest items travel together", func(t *testing.T) {
		iceCream := cold(t, "Ice Cream", -20)
		frozenMeat := cold(t, "Frozen Meat", -14)
		milk := cold(t, "Milk", 3)
		order := orderOf(t, line{milk, 400}, line{iceCream, 500}, line{frozenMeat, 500})

		m, err := allocator.Allocate(order)

		require.NoError(t, err)
		require.Equal(t, 2, m.Len())
		first, second := m.Vehicles()[0], m.Vehicles()[1]
		assert.Equal(t, kernel.Temperature(-20), first.StorageTemperature())
		iceInFirst, _ := first.Cargo().Quantity("Ice Cream")
		meatInFirst, _ := first.Cargo().Quantity("Frozen Meat")
		assert.Equal(t, 500, iceInFirst)
		assert.Equal(t, 300, meatInFirst)
		assert.Equal(t, kernel.Temperature(-14), second.StorageTemperature())
		assert.False(t, first.Cargo().Contains("Milk"))
		assertAllocation(t, order, m)
	})

	t.Run("only dry goods use standard vehicles", func(t *testing.T) {
		order := orderOf(t, line{dry(t, "Rice"), 1500}, line{dry(t, "Beans"), 700})

		m, err := allocator.Allocate(order)

		require.NoError(t, err)
		require.Equal(t, 3, m.Len())
		for _, v := range m.Vehicles() {
			assert.Equal(t, vehicle.Standard, v.Kind())
		}
		assertAllocation(t, order, m)
	})

	t.Run("realistic restock keeps every invariant", func(t *testing.T) {
		order := orderOf(t,
			line{dry(t, "Rice"), 300},
			line{dry(t, "Beans"), 525},
			line{dry(t, "Pasta"), 250},
			line{dry(t, "Biscuits"), 575},
			line{dry(t, "Nuts"), 125},
			line{dry(t, "Chips"), 325},
			line{dry(t, "Chocolate"), 375},
			line{dry(t, "Bread"), 650},
			line{cold(t, "Mushrooms", 10), 325},
			line{cold(t, "Beef", 3), 425},
			line{cold(t, "Chicken", 4), 575},
			line{cold(t, "Fish", 2), 300},
			line{cold(t, "Ice Cream", -20), 250},
			line{cold(t, "Frozen Meat", -14), 525},
			line{cold(t, "Frozen Vegetable Mix", -12), 425},
		)

		m, err := allocator.Allocate(order)

		require.NoError(t, err)
		assertAllocation(t, order, m)
		assert.Equal(t, order.TotalUnits(), m.TotalUnits())
	})

	t.Run("rejects unbuilt order", func(t *testing.T) {
		m, err := allocator.Allocate(nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, m)
	})
}
