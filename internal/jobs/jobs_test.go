package jobs_test

import (
	"context"
	"errors"
	"testing"

	"supermart/internal/core/application/usecases/commands"
	"supermart/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockRestockPlanner struct {
	mock.Mock
}

func (m *MockRestockPlanner) Handle(ctx context.Context, cmd commands.PlanRestockCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func TestRestockJob_Run(t *testing.T) {
	t.Run("plans a restock", func(t *testing.T) {
		ctx := t.Context()
		core, logs := observer.New(zapcore.InfoLevel)
		planner := new(MockRestockPlanner)
		planner.On("Handle", ctx, mock.MatchedBy(func(cmd commands.PlanRestockCommand) bool {
			return cmd.Validate() == nil
		})).Return(nil).Once()

		jobs.NewRestockJob(planner, "@every 1h", zap.New(core)).Run(ctx)

		planner.AssertExpectations(t)
		require.Equal(t, 1, logs.FilterMessage("Restock planned").Len())
	})

	t.Run("logs a failed plan", func(t *testing.T) {
		ctx := t.Context()
		core, logs := observer.New(zapcore.InfoLevel)
		planner := new(MockRestockPlanner)
		planner.On("Handle", ctx, mock.Anything).Return(errors.New("boom")).Once()

		jobs.NewRestockJob(planner, "@every 1h", zap.New(core)).Run(ctx)

		failed := logs.FilterMessage("Restock planning failed").All()
		require.Len(t, failed, 1)
		assert.Equal(t, "restock_job", failed[0].LoggerName)
		assert.Equal(t, "boom", failed[0].ContextMap()["error"])
	})
}

func TestRestockJob_Start(t *testing.T) {
	t.Run("rejects invalid schedule", func(t *testing.T) {
		job := jobs.NewRestockJob(new(MockRestockPlanner), "every now and then", zap.NewNop())

		err := job.Start()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid restock schedule")
	})

	t.Run("starts and stops", func(t *testing.T) {
		job := jobs.NewRestockJob(new(MockRestockPlanner), "@every 1h", zap.NewNop())

		require.NoError(t, job.Start())
		job.Stop()
	})
}

func TestJobManager(t *testing.T) {
	t.Run("empty schedule disables the restock job", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		jm := jobs.NewJobManager(new(MockRestockPlanner), "", zap.New(core))

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Equal(t, 1, logs.FilterMessage("Restock job disabled").Len())
	})

	t.Run("invalid schedule fails StartAll", func(t *testing.T) {
		jm := jobs.NewJobManager(new(MockRestockPlanner), "61 * * * *", zap.NewNop())

		err := jm.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start restock job")
	})

	t.Run("starts and stops the restock job", func(t *testing.T) {
		jm := jobs.NewJobManager(new(MockRestockPlanner), "*/5 * * * *", zap.NewNop())

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})
}
