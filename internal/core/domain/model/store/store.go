package store

import (
	"errors"
	"sort"
	"sync"

	"supermart/internal/core/domain/model/item"
	"supermart/internal/core/domain/model/kernel"
	"supermart/internal/core/domain/model/manifest"
	"supermart/internal/core/domain/model/stock"
	"supermart/internal/pkg/errs"
	"supermart/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrStoreIsNotConstructed is returned when a Store was declared rather than created via NewStore.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")
	// ErrNameIsRequired is returned when creating a store without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Store is the mutable root of a trading session.
//
// Business rules:
//   - The name never changes
//   - Capital is signed and unbounded; a delivery may push it below zero
//   - Inventory quantities are never negative
//   - An item can be delivered or sold only once it is in the catalog
//   - Registering an item whose name is already catalogued is a no-op
//   - A failed ApplyDelivery or ApplySalesLog changes nothing
//
// Example usage:
//
//	s, err := store.NewStore("SuperMart", decimal.NewFromInt(100000))
//	if err != nil {
//	    return err
//	}
//	_ = s.RegisterItem(milk)
//	if err := s.ApplyDelivery(m); err != nil {
//	    // inventory and capital are unchanged
//	}
//	fmt.Println(s.FormattedCapital())
type Store struct {
	mu sync.RWMutex

	// name is fixed at construction
	name string

	// capital is debited by deliveries and credited by sales
	capital decimal.Decimal

	// inventory is replaced as a whole on every successful change
	inventory *stock.Stock

	// catalog maps item names to every item ever registered as stockable
	catalog map[string]*item.Item

	// manifest is the pending or last delivered restock
	manifest *manifest.Manifest

	// delivered is set once manifest has been applied as a delivery
	delivered bool

	guard guard.ConstructorGuard
}

// Snapshot is a consistent view of a Store taken under a single read lock.
type Snapshot struct {
	Name      string
	Capital   decimal.Decimal
	Inventory *stock.Stock
	Items     []*item.Item
	Manifest  *manifest.Manifest
	Delivered bool
}

// NewStore creates a store with the given starting capital, an empty
// inventory, an empty catalog and an empty manifest.
//
// Parameters:
//   - name: non-empty store name
//   - capital: starting capital, may be negative
//
// Returns:
//   - *Store: the new store
//   - error: ErrNameIsRequired when name is empty
func NewStore(name string, capital decimal.Decimal) (*Store, error) {
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Store{
		name:      name,
		capital:   capital,
		inventory: stock.Empty(),
		catalog:   map[string]*item.Item{},
		manifest:  manifest.Empty(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

func (s *Store) Name() string {
	return s.name
}

func (s *Store) Capital() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.capital
}

// SetCapital replaces the capital outright.
func (s *Store) SetCapital(capital decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capital = capital
}

// FormattedCapital renders the capital in dollars, e.g. "$100,000.00" or "-$10.00".
func (s *Store) FormattedCapital() string {
	return kernel.FormatCurrency(s.Capital())
}

func (s *Store) Inventory() *stock.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inventory
}

// SetInventory replaces the inventory outright. It rejects a nil or unbuilt stock.
func (s *Store) SetInventory(inventory *stock.Stock) error {
	if err := inventory.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("inventory", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory = inventory
	return nil
}

// Items returns the catalog ordered by item name.
func (s *Store) Items() []*item.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itemsLocked()
}

func (s *Store) itemsLocked() []*item.Item {
	result := make([]*item.Item, 0, len(s.catalog))
	for _, it := range s.catalog {
		result = append(result, it)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// Item looks up a catalogued item by its exact name.
func (s *Store) Item(name string) (*item.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.catalog[name]
	return it, ok
}

// RegisterItem adds it to the catalog. Registering a name that is already
// catalogued keeps the existing item and is not an error.
func (s *Store) RegisterItem(it *item.Item) error {
	if err := it.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("item", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.catalog[it.Name()]; !ok {
		s.catalog[it.Name()] = it
	}
	return nil
}

// RegisterStockableItems registers every item and stocks each newly
// catalogued one with zero units. Either all items are registered or, when
// any item is invalid, none is.
func (s *Store) RegisterStockableItems(items []*item.Item) error {
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("item", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := stock.NewBuilderFrom(s.inventory)
	added := make(map[string]*item.Item, len(items))
	for _, it := range items {
		if _, ok := s.catalog[it.Name()]; ok {
			continue
		}
		if _, ok := added[it.Name()]; ok {
			continue
		}
		if err := working.AddStockedItem(it, 0); err != nil {
			return err
		}
		added[it.Name()] = it
	}

	for name, it := range added {
		s.catalog[name] = it
	}
	s.inventory = working.Build()
	return nil
}

func (s *Store) Manifest() *manifest.Manifest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.manifest
}

// ManifestDelivered reports whether the current manifest has already been
// applied as a delivery.
func (s *Store) ManifestDelivered() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.delivered
}

// SetManifest replaces the current manifest. With update set, the manifest
// is first applied as a delivery; the manifest is stored only when the
// delivery succeeds, in the same atomic step, and is marked delivered.
func (s *Store) SetManifest(m *manifest.Manifest, update bool) error {
	if err := m.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("manifest", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if update {
		inventory, total, err := s.deliveryLocked(m)
		if err != nil {
			return err
		}
		s.inventory = inventory
		s.capital = s.capital.Sub(total)
	}
	s.manifest = m
	s.delivered = update
	return nil
}

// ApplyDelivery receives every vehicle of m. The store pays each vehicle's
// cost plus the manufacturing cost of its cargo, and the cargo is added to
// the inventory.
//
// Returns:
//   - ObjectNotFound error (Kind UnknownItem) if any cargo item is not catalogued
//   - ValueIsInvalid error if m is nil or unbuilt
//
// On error inventory and capital are unchanged.
func (s *Store) ApplyDelivery(m *manifest.Manifest) error {
	if err := m.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("manifest", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inventory, total, err := s.deliveryLocked(m)
	if err != nil {
		return err
	}
	s.inventory = inventory
	s.capital = s.capital.Sub(total)
	return nil
}

// DeliverManifest applies the current manifest as a delivery and marks it
// delivered, so a planned restock is received only once. id must name the
// current, undelivered manifest; otherwise DeliverManifest fails with
// ObjectNotFound and changes nothing.
func (s *Store) DeliverManifest(id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.delivered || !s.manifest.ID().IsEqual(id) {
		return errs.NewObjectNotFoundError("pending manifest", id)
	}

	inventory, total, err := s.deliveryLocked(s.manifest)
	if err != nil {
		return err
	}
	s.inventory = inventory
	s.capital = s.capital.Sub(total)
	s.delivered = true
	return nil
}

func (s *Store) deliveryLocked(m *manifest.Manifest) (*stock.Stock, decimal.Decimal, error) {
	working := stock.NewBuilderFrom(s.inventory)
	total := decimal.Zero

	for _, v := range m.Vehicles() {
		total = total.Add(v.Cost())
		for _, e := range v.Cargo().Entries() {
			catalogued, ok := s.catalog[e.Item.Name()]
			if !ok {
				return nil, decimal.Zero, errs.NewObjectNotFoundError("item", e.Item.Name())
			}
			total = total.Add(e.Item.ManufacturingCost().Mul(decimal.NewFromInt(int64(e.Quantity))))
			if err := working.AddStockedItem(catalogued, e.Quantity); err != nil {
				return nil, decimal.Zero, err
			}
		}
	}
	return working.Build(), total, nil
}

// ApplySalesLog removes the sold units from the inventory and credits the
// capital with their sell value.
//
// Returns:
//   - ObjectNotFound error (Kind UnknownItem) if any sold item is not catalogued
//   - InsufficientStock error if an item is not stocked or has fewer units than sold
//   - ValueIsInvalid error if sold is nil or unbuilt
//
// On error inventory and capital are unchanged.
func (s *Store) ApplySalesLog(sold *stock.Stock) error {
	if err := sold.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sales log", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := stock.NewBuilderFrom(s.inventory)
	value := decimal.Zero

	for _, e := range sold.Entries() {
		name := e.Item.Name()
		if _, ok := s.catalog[name]; !ok {
			return errs.NewObjectNotFoundError("item", name)
		}
		value = value.Add(e.Item.SellPrice().Mul(decimal.NewFromInt(int64(e.Quantity))))

		available, stocked := s.inventory.Quantity(name)
		if !stocked {
			return errs.NewInsufficientStockError(name, e.Quantity, 0)
		}
		if err := working.AddStockedItem(e.Item, -e.Quantity); err != nil {
			return errs.NewInsufficientStockErrorWithCause(name, e.Quantity, available, err)
		}
	}

	s.inventory = working.Build()
	s.capital = s.capital.Add(value)
	return nil
}

// Snapshot returns name, capital, inventory, catalog and manifest as they
// were at a single point in time.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Name:      s.name,
		Capital:   s.capital,
		Inventory: s.inventory,
		Items:     s.itemsLocked(),
		Manifest:  s.manifest,
		Delivered: s.delivered,
	}
}
