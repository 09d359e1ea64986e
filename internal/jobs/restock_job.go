package jobs

import (
	"context"
	"fmt"

	"supermart/internal/core/application/usecases/commands"
	"supermart/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RestockPlanner handles PlanRestockCommand. *commands.PlanRestockCommandHandler
// satisfies it.
type RestockPlanner interface {
	Handle(ctx context.Context, cmd commands.PlanRestockCommand) error
}

// RestockJob re-plans the store's restock manifest on a cron schedule.
// The planned manifest is only proposed; receiving it stays a separate step.
type RestockJob struct {
	handler  RestockPlanner
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewRestockJob creates a job running handler on schedule, a standard
// five-field cron expression or a descriptor such as "@every 1h".
func NewRestockJob(handler RestockPlanner, schedule string, baseLogger *zap.Logger) *RestockJob {
	return &RestockJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.Named(baseLogger, "restock_job").With(zap.String("schedule", schedule)),
	}
}

// Start schedules the job.
func (j *RestockJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid restock schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Restock job started")
	return nil
}

// Run plans one restock. Failures are logged; the next tick tries again.
func (j *RestockJob) Run(ctx context.Context) {
	if err := j.handler.Handle(ctx, commands.NewPlanRestockCommand()); err != nil {
		j.logger.Error("Restock planning failed", zap.Error(err))
		return
	}
	j.logger.Info("Restock planned")
}

// Stop unschedules the job and waits for a running plan to finish.
func (j *RestockJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Restock job stopped")
}
