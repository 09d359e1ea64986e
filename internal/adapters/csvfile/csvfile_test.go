package csvfile_test

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"supermart/internal/adapters/csvfile"
	"supermart/internal/core/domain/model/item"
	"supermart/internal/core/domain/model/vehicle"
	"supermart/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemProperties = `rice,2,3,225,300
beans,4,6,450,525
mushrooms,2,4,200,325,10
ice cream,8,14,175,250,-20
`

type catalog map[string]*item.Item

func (c catalog) Item(name string) (*item.Item, bool) {
	it, ok := c[name]
	return it, ok
}

func loadCatalog(t *testing.T) catalog {
	t.Helper()
	items, err := csvfile.ReadItemProperties(strings.NewReader(itemProperties))
	require.NoError(t, err)
	c := catalog{}
	for _, it := range items {
		c[it.Name()] = it
	}
	return c
}

func TestReadItemProperties(t *testing.T) {
	t.Run("reads dry and temperature-controlled items", func(t *testing.T) {
		items, err := csvfile.ReadItemProperties(strings.NewReader(itemProperties))

		require.NoError(t, err)
		require.Len(t, items, 4)
		assert.Equal(t, "rice", items[0].Name())
		assert.True(t, decimal.NewFromInt(3).Equal(items[0].SellPrice()))
		assert.False(t, items[0].IsTemperatureControlled())
		assert.Equal(t, "ice cream", items[3].Name())
		temp, ok := items[3].IdealTemperature()
		assert.True(t, ok)
		assert.InDelta(t, -20, temp.Celsius(), 1e-9)
	})

	t.Run("reads quoted names", func(t *testing.T) {
		items, err := csvfile.ReadItemProperties(strings.NewReader("\"Salt, Sea\",1,2,3,4\n"))

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Salt, Sea", items[0].Name())
	})

	t.Run("reports malformed line with its number", func(t *testing.T) {
		_, err := csvfile.ReadItemProperties(strings.NewReader("rice,2,3,225,300\nbeans,four,6,450,525\n"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "line 2")
		assert.Contains(t, err.Error(), "[beans], [four], [6], [450], [525]")
	})

	t.Run("rejects wrong column count", func(t *testing.T) {
		_, err := csvfile.ReadItemProperties(strings.NewReader("rice,2,3\n"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("domain validation keeps its kind", func(t *testing.T) {
		_, err := csvfile.ReadItemProperties(strings.NewReader("lava,1,1,1,1,40\n"))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("empty file yields no items", func(t *testing.T) {
		items, err := csvfile.ReadItemProperties(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestReadSalesLog(t *testing.T) {
	c := loadCatalog(t)

	t.Run("adds up repeated lines", func(t *testing.T) {
		sold, err := csvfile.ReadSalesLog(strings.NewReader("rice,10\nbeans,3\nrice,5\n"), c)

		require.NoError(t, err)
		qty, _ := sold.Quantity("rice")
		assert.Equal(t, 15, qty)
		qty, _ = sold.Quantity("beans")
		assert.Equal(t, 3, qty)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := csvfile.ReadSalesLog(strings.NewReader("rice,1\ncaviar,1\n"), c)

		assert.Equal(t, errs.KindUnknownItem, errs.KindOf(err))
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("rejects quantities that overflow when merged", func(t *testing.T) {
		input := "rice," + strconv.Itoa(math.MaxInt) + "\nrice,1\n"

		_, err := csvfile.ReadSalesLog(strings.NewReader(input), c)

		assert.Equal(t, errs.KindInvalidQuantity, errs.KindOf(err))
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("malformed quantity", func(t *testing.T) {
		for _, input := range []string{"rice,ten\n", "rice\n", "rice,1,2\n", "rice,-1\n"} {
			_, err := csvfile.ReadSalesLog(strings.NewReader(input), c)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})
}

func TestReadManifest(t *testing.T) {
	c := loadCatalog(t)

	t.Run("reads vehicles and their cargo", func(t *testing.T) {
		input := ">Refrigerated\nice cream,200\nrice,100\n>Ordinary\nbeans,300\n>standard\nrice,5\n"

		m, err := csvfile.ReadManifest(strings.NewReader(input), c)

		require.NoError(t, err)
		require.Equal(t, 3, m.Len())
		vs := m.Vehicles()
		assert.Equal(t, vehicle.Refrigerated, vs[0].Kind())
		assert.Equal(t, 300, vs[0].Units())
		assert.Equal(t, vehicle.Standard, vs[1].Kind())
		assert.Equal(t, 300, vs[1].Units())
		assert.Equal(t, 5, vs[2].Units())
	})

	t.Run("rejects manifest without vehicles", func(t *testing.T) {
		_, err := csvfile.ReadManifest(strings.NewReader(""), c)

		require.ErrorIs(t, err, csvfile.ErrManifestHasNoVehicles)
	})

	t.Run("rejects cargo before header", func(t *testing.T) {
		_, err := csvfile.ReadManifest(strings.NewReader("rice,5\n>Standard\n"), c)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("rejects unknown vehicle type", func(t *testing.T) {
		_, err := csvfile.ReadManifest(strings.NewReader(">Boat\nrice,5\n"), c)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("vehicle rules keep their kind", func(t *testing.T) {
		_, err := csvfile.ReadManifest(strings.NewReader(">Standard\nice cream,5\n"), c)

		assert.Equal(t, errs.KindContentMismatch, errs.KindOf(err))
		assert.Contains(t, err.Error(), "vehicle on line 1")

		_, err = csvfile.ReadManifest(strings.NewReader(">Refrigerated\nrice,801\n"), c)
		assert.Equal(t, errs.KindCapacityExceeded, errs.KindOf(err))
	})

	t.Run("capacity holds for huge quantities", func(t *testing.T) {
		input := ">Standard\nrice," + strconv.Itoa(math.MaxInt) + "\nbeans,2\n"

		m, err := csvfile.ReadManifest(strings.NewReader(input), c)

		assert.Nil(t, m)
		assert.Equal(t, errs.KindCapacityExceeded, errs.KindOf(err))
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := csvfile.ReadManifest(strings.NewReader(">Standard\ncaviar,5\n"), c)

		assert.Equal(t, errs.KindUnknownItem, errs.KindOf(err))
	})
}

func TestWriteManifest(t *testing.T) {
	c := loadCatalog(t)
	input := ">Refrigerated\nrice,100\nice cream,200\n>Standard\nbeans,300\n"
	m, err := csvfile.ReadManifest(strings.NewReader(input), c)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, csvfile.WriteManifest(&buf, m))

	assert.Equal(t, ">Refrigerated\nice cream,200\nrice,100\n>Standard\nbeans,300\n", buf.String())

	reread, err := csvfile.ReadManifest(&buf, c)
	require.NoError(t, err)
	assert.Equal(t, m.TotalUnits(), reread.TotalUnits())
	assert.True(t, m.TotalCost().Equal(reread.TotalCost()))
}

func TestWriteManifest_QuotedNames(t *testing.T) {
	c := loadCatalog(t)
	for _, name := range []string{"Salt, Sea", `Grandma's "Best" Jam`, ">Special"} {
		it, err := item.NewItem(name, 1, 2, 3, 4)
		require.NoError(t, err)
		c[name] = it
	}
	input := ">Standard\n\"Salt, Sea\",5\n\"Grandma's \"\"Best\"\" Jam\",2\n>Special,1\nrice,3\n"
	m, err := csvfile.ReadManifest(strings.NewReader(input), c)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, csvfile.WriteManifest(&buf, m))

	reread, err := csvfile.ReadManifest(strings.NewReader(buf.String()), c)
	require.NoError(t, err, buf.String())
	require.Equal(t, 1, reread.Len())
	cargo := reread.Vehicles()[0].Cargo()
	for name, want := range map[string]int{"Salt, Sea": 5, `Grandma's "Best" Jam`: 2, ">Special": 1, "rice": 3} {
		qty, ok := cargo.Quantity(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, qty, name)
	}
}
