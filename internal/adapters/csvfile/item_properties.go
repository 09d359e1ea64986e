package csvfile

import (
	"errors"
	"io"
	"strconv"

	"supermart/internal/core/domain/model/item"
)

const itemPropertiesShape = "[item], [cost], [price], [reorder point], [reorder amount] or " +
	"[item], [cost], [price], [reorder point], [reorder amount], [temperature]"

// ReadItemProperties parses an item-properties file into items, in file order.
// It stops at the first malformed line.
func ReadItemProperties(r io.Reader) ([]*item.Item, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	items := make([]*item.Item, 0, len(records))
	for _, rec := range records {
		it, err := parseItem(rec)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func parseItem(rec record) (*item.Item, error) {
	f := rec.fields
	if len(f) != 5 && len(f) != 6 {
		return nil, formatError(rec, itemPropertiesShape)
	}

	cost, costErr := strconv.ParseFloat(f[1], 64)
	price, priceErr := strconv.ParseFloat(f[2], 64)
	point, pointErr := strconv.Atoi(f[3])
	amount, amountErr := strconv.Atoi(f[4])
	if errors.Join(costErr, priceErr, pointErr, amountErr) != nil {
		return nil, formatError(rec, itemPropertiesShape)
	}

	b := item.NewBuilder()
	setErr := errors.Join(
		b.Name(f[0]),
		b.ManufacturingCost(cost),
		b.SellPrice(price),
		b.ReorderPoint(point),
		b.ReorderAmount(amount),
	)
	if len(f) == 6 {
		temp, err := strconv.ParseFloat(f[5], 64)
		if err != nil {
			return nil, formatError(rec, itemPropertiesShape)
		}
		setErr = errors.Join(setErr, b.IdealTemperature(temp))
	}
	if setErr != nil {
		return nil, lineError(rec, setErr)
	}

	it, err := b.Build()
	if err != nil {
		return nil, lineError(rec, err)
	}
	return it, nil
}
