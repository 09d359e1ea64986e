package commands_test

import (
	"context"
	"testing"

	"supermart/internal/core/domain/model/item"
	"supermart/internal/core/domain/model/manifest"
	"supermart/internal/core/domain/model/stock"
	"supermart/internal/core/domain/model/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Get(ctx context.Context) (*store.Store, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*store.Store)
	return s, args.Error(1)
}

type MockReorderPlanner struct{ mock.Mock }

func (m *MockReorderPlanner) Plan(catalog []*item.Item, inventory *stock.Stock) (*stock.Stock, error) {
	args := m.Called(catalog, inventory)
	s, _ := args.Get(0).(*stock.Stock)
	return s, args.Error(1)
}

type MockAllocator struct{ mock.Mock }

func (m *MockAllocator) Allocate(order *stock.Stock) (*manifest.Manifest, error) {
	args := m.Called(order)
	mf, _ := args.Get(0).(*manifest.Manifest)
	return mf, args.Error(1)
}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewStore("SuperMart", decimal.NewFromInt(100000))
	require.NoError(t, err)
	return s
}

func stockOf(t *testing.T, it *item.Item, qty int) *stock.Stock {
	t.Helper()
	b := stock.NewBuilder()
	require.NoError(t, b.AddStockedItem(it, qty))
	return b.Build()
}
