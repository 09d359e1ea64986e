package csvfile

import (
	"io"
	"strconv"

	"supermart/internal/core/domain/model/stock"
	"supermart/internal/pkg/errs"
)

const quantityLineShape = "[item], [quantity]"

// ReadSalesLog parses a sales log into the sold stock. Every item must be in
// catalog; repeated lines for one item add up.
func ReadSalesLog(r io.Reader, catalog ItemResolver) (*stock.Stock, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	sold := stock.NewBuilder()
	for _, rec := range records {
		if err = addQuantityLine(sold, rec, catalog); err != nil {
			return nil, err
		}
	}
	return sold.Build(), nil
}

// addQuantityLine adds one "name,quantity" record to b.
func addQuantityLine(b *stock.Builder, rec record, catalog ItemResolver) error {
	if len(rec.fields) != 2 || rec.fields[0] == "" {
		return formatError(rec, quantityLineShape)
	}

	quantity, err := strconv.Atoi(rec.fields[1])
	if err != nil || quantity < 0 {
		return formatError(rec, quantityLineShape)
	}

	it, ok := catalog.Item(rec.fields[0])
	if !ok {
		return lineError(rec, errs.NewObjectNotFoundError("item", rec.fields[0]))
	}

	if err = b.AddStockedItem(it, quantity); err != nil {
		return lineError(rec, err)
	}
	return nil
}
