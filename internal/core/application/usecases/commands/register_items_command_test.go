package commands_test

import (
	"errors"
	"testing"

	"supermart/internal/core/application/usecases/commands"
	"supermart/internal/core/domain/model/item"
	"supermart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterItemsCommand(t *testing.T) {
	rice, _ := item.NewItem("Rice", 2, 3, 225, 300)

	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewRegisterItemsCommand([]*item.Item{rice}, true)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Items(), 1)
		assert.True(t, cmd.Stockable())
	})

	t.Run("requires items", func(t *testing.T) {
		_, err := commands.NewRegisterItemsCommand(nil, false)

		assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("rejects unbuilt items", func(t *testing.T) {
		_, err := commands.NewRegisterItemsCommand([]*item.Item{rice, nil}, false)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("declared command is invalid", func(t *testing.T) {
		var cmd commands.RegisterItemsCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrRegisterItemsCommandIsNotConstructed)
	})
}

func TestRegisterItemsCommandHandler_Handle(t *testing.T) {
	rice, _ := item.NewItem("Rice", 2, 3, 225, 300)
	milk, _ := item.NewTemperatureControlledItem("Milk", 1, 2, 10, 50, 4)

	t.Run("stockable batch seeds inventory", func(t *testing.T) {
		ctx := t.Context()
		s := newStore(t)
		repo := new(MockStoreRepository)
		repo.On("Get", ctx).Return(s, nil).Once()
		cmd, _ := commands.NewRegisterItemsCommand([]*item.Item{rice, milk}, true)

		h := commands.NewRegisterItemsCommandHandler(repo)
		err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Len(t, s.Items(), 2)
		assert.Equal(t, 2, s.Inventory().Len())
		repo.AssertExpectations(t)
	})

	t.Run("plain registration leaves inventory alone", func(t *testing.T) {
		ctx := t.Context()
		s := newStore(t)
		repo := new(MockStoreRepository)
		repo.On("Get", ctx).Return(s, nil).Once()
		cmd, _ := commands.NewRegisterItemsCommand([]*item.Item{rice, rice}, false)

		h := commands.NewRegisterItemsCommandHandler(repo)
		err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Len(t, s.Items(), 1)
		assert.True(t, s.Inventory().IsEmpty())
	})

	t.Run("repository error", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockStoreRepository)
		repo.On("Get", ctx).Return(nil, errors.New("no store")).Once()
		cmd, _ := commands.NewRegisterItemsCommand([]*item.Item{rice}, true)

		h := commands.NewRegisterItemsCommandHandler(repo)
		err := h.Handle(ctx, cmd)

		require.EqualError(t, err, "no store")
	})

	t.Run("validation error does not reach the repository", func(t *testing.T) {
		repo := new(MockStoreRepository)

		h := commands.NewRegisterItemsCommandHandler(repo)
		err := h.Handle(t.Context(), commands.RegisterItemsCommand{})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Get", mock.Anything)
	})
}
