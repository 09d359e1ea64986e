package stock

import (
	"maps"
	"math"

	"supermart/internal/core/domain/model/item"
	"supermart/internal/pkg/errs"
	"supermart/internal/pkg/guard"
)

// Builder accumulates quantity changes into a Stock. A positive delta adds
// units, a negative delta removes them; repeated calls for one item merge.
//
// A failed AddStockedItem leaves the accumulated state untouched. Build may be
// called any number of times and every call returns an independent Stock.
type Builder struct {
	entries map[string]Entry
}

func NewBuilder() *Builder {
	return &Builder{
		entries: map[string]Entry{},
	}
}

// NewBuilderFrom returns a Builder seeded with the contents of s, used to
// derive a changed copy of an existing stock.
func NewBuilderFrom(s *Stock) *Builder {
	b := NewBuilder()
	if s != nil {
		maps.Copy(b.entries, s.entries)
	}
	return b
}

// AddStockedItem merges delta units of it into the builder.
//
// Returns a QuantityIsInvalid error when:
//   - it is nil or was not built through item.Builder
//   - it is not yet in the builder and delta is negative
//   - the merged quantity would be negative or overflow int
//
// A delta of zero on a new item stocks it with zero units.
func (b *Builder) AddStockedItem(it *item.Item, delta int) error {
	if err := it.Validate(); err != nil {
		return errs.NewQuantityIsInvalidErrorWithCause("", 0, delta, err)
	}

	current, ok := b.entries[it.Name()]
	if !ok {
		if delta < 0 {
			return errs.NewQuantityIsInvalidError(it.Name(), 0, delta)
		}
		b.entries[it.Name()] = Entry{Item: it, Quantity: delta}
		return nil
	}

	if delta > 0 && delta > math.MaxInt-current.Quantity {
		return errs.NewQuantityIsInvalidError(it.Name(), current.Quantity, delta)
	}
	merged := current.Quantity + delta
	if merged < 0 {
		return errs.NewQuantityIsInvalidError(it.Name(), current.Quantity, delta)
	}
	b.entries[it.Name()] = Entry{Item: current.Item, Quantity: merged}
	return nil
}

// AddStock merges every entry of other, stopping at the first failure.
// Entries merged before the failure stay merged.
func (b *Builder) AddStock(other *Stock) error {
	if err := other.Validate(); err != nil {
		return errs.NewQuantityIsInvalidErrorWithCause("", 0, 0, err)
	}
	for _, e := range other.Entries() {
		if err := b.AddStockedItem(e.Item, e.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// Build returns a snapshot of the accumulated quantities.
func (b *Builder) Build() *Stock {
	return &Stock{
		entries: maps.Clone(b.entries),
		guard:   guard.NewConstructorGuard(),
	}
}

// Reset discards every accumulated quantity.
func (b *Builder) Reset() {
	clear(b.entries)
}
