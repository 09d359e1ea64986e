package commands_test

import (
	"testing"

	"supermart/internal/core/application/usecases/commands"
	"supermart/internal/core/domain/model/item"
	"supermart/internal/core/domain/services"
	"supermart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportManifestCommandHandler_Handle(t *testing.T) {
	rice, _ := item.NewItem("Rice", 1, 2, 10, 50)
	imported, err := services.NewAllocator().Allocate(stockOf(t, rice, 100))
	require.NoError(t, err)

	t.Run("delivers and keeps the manifest", func(t *testing.T) {
		ctx := t.Context()
		s := newStore(t)
		require.NoError(t, s.RegisterItem(rice))
		repo := new(MockStoreRepository)
		repo.On("Get", ctx).Return(s, nil).Once()
		cmd, err := commands.NewImportManifestCommand(imported)
		require.NoError(t, err)

		h := commands.NewImportManifestCommandHandler(repo)
		err = h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Same(t, imported, s.Manifest())
		assert.True(t, s.ManifestDelivered())
		qty, _ := s.Inventory().Quantity("Rice")
		assert.Equal(t, 100, qty)
	})

	t.Run("unknown items are rejected", func(t *testing.T) {
		ctx := t.Context()
		s := newStore(t)
		repo := new(MockStoreRepository)
		repo.On("Get", ctx).Return(s, nil).Once()
		cmd, _ := commands.NewImportManifestCommand(imported)

		h := commands.NewImportManifestCommandHandler(repo)
		err := h.Handle(ctx, cmd)

		assert.Equal(t, errs.KindUnknownItem, errs.KindOf(err))
		assert.True(t, s.Manifest().IsEmpty())
	})

	t.Run("rejects nil manifest", func(t *testing.T) {
		_, err := commands.NewImportManifestCommand(nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
