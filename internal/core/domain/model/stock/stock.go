package stock

import (
	"errors"
	"math"
	"sort"

	"supermart/internal/core/domain/model/item"
	"supermart/internal/pkg/guard"
)

// ErrStockIsNotConstructed is returned when a Stock was declared rather than built.
var ErrStockIsNotConstructed = errors.New("Stock must be created via stock.Builder")

// Entry pairs an item with its quantity.
type Entry struct {
	Item     *item.Item
	Quantity int
}

// Stock maps items, by name, to non-negative quantities. It never changes
// after Build; every accessor returns copies or immutable values.
//
// Iteration through Entries and Items is ordered by item name, so two
// equal stocks always produce the same sequence.
//
// Example usage:
//
//	b := stock.NewBuilder()
//	_ = b.AddStockedItem(milk, 50)
//	_ = b.AddStockedItem(milk, -20)
//	s := b.Build()
//	qty, ok := s.Quantity("Milk") // 30, true
type Stock struct {
	entries map[string]Entry
	guard   guard.ConstructorGuard
}

// Empty returns a Stock with no items.
func Empty() *Stock {
	return &Stock{
		entries: map[string]Entry{},
		guard:   guard.NewConstructorGuard(),
	}
}

func (s *Stock) Validate() error {
	if s == nil {
		return ErrStockIsNotConstructed
	}
	return s.guard.Validate(ErrStockIsNotConstructed)
}

// Quantity returns the units held of the named item and whether the item is stocked.
func (s *Stock) Quantity(name string) (int, bool) {
	e, ok := s.entries[name]
	return e.Quantity, ok
}

// Item returns the stocked item with the given name.
func (s *Stock) Item(name string) (*item.Item, bool) {
	e, ok := s.entries[name]
	return e.Item, ok
}

func (s *Stock) Contains(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// Entries returns every (item, quantity) pair ordered by item name.
func (s *Stock) Entries() []Entry {
	result := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Item.Name() < result[j].Item.Name()
	})
	return result
}

// Items returns the stocked items ordered by name.
func (s *Stock) Items() []*item.Item {
	entries := s.Entries()
	result := make([]*item.Item, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.Item)
	}
	return result
}

// Len returns the number of distinct stocked items.
func (s *Stock) Len() int {
	return len(s.entries)
}

func (s *Stock) IsEmpty() bool {
	return len(s.entries) == 0
}

// TotalUnits returns the sum of all quantities, saturating at math.MaxInt.
func (s *Stock) TotalUnits() int {
	total := 0
	for _, e := range s.entries {
		if e.Quantity > math.MaxInt-total {
			return math.MaxInt
		}
		total += e.Quantity
	}
	return total
}

// IsEqual reports whether both stocks hold the same items in the same quantities.
func (s *Stock) IsEqual(other *Stock) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.entries) != len(other.entries) {
		return false
	}
	for name, e := range s.entries {
		o, ok := other.entries[name]
		if !ok || o.Quantity != e.Quantity {
			return false
		}
	}
	return true
}
