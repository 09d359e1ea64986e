package cmd

import (
	"context"

	httpadapter "supermart/internal/adapters/in/http"
	"supermart/internal/adapters/out/memory"
	"supermart/internal/core/application/usecases/commands"
	"supermart/internal/core/application/usecases/queries"
	"supermart/internal/core/domain/model/store"
	"supermart/internal/core/domain/services"
	"supermart/internal/jobs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CompositionRoot owns the session store and builds every handler around it.
type CompositionRoot struct {
	config          Config
	logger          *zap.Logger
	storeRepository *memory.StoreRepository
}

// NewCompositionRoot opens a new store named and funded as configured.
func NewCompositionRoot(config Config, logger *zap.Logger) (*CompositionRoot, error) {
	s, err := store.NewStore(config.StoreName, config.StoreCapital)
	if err != nil {
		return nil, err
	}

	repo, err := memory.NewStoreRepository(s)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:          config,
		logger:          logger,
		storeRepository: repo,
	}, nil
}

func (c *CompositionRoot) CreateRegisterItemsCommandHandler() commands.RegisterItemsCommandHandler {
	return commands.NewRegisterItemsCommandHandler(c.storeRepository)
}

func (c *CompositionRoot) CreateApplySalesLogCommandHandler() commands.ApplySalesLogCommandHandler {
	return commands.NewApplySalesLogCommandHandler(c.storeRepository)
}

func (c *CompositionRoot) CreatePlanRestockCommandHandler() commands.PlanRestockCommandHandler {
	return commands.NewPlanRestockCommandHandler(c.storeRepository, services.NewReorderPlanner(), services.NewAllocator())
}

func (c *CompositionRoot) CreateDeliverManifestCommandHandler() commands.DeliverManifestCommandHandler {
	return commands.NewDeliverManifestCommandHandler(c.storeRepository)
}

func (c *CompositionRoot) CreateImportManifestCommandHandler() commands.ImportManifestCommandHandler {
	return commands.NewImportManifestCommandHandler(c.storeRepository)
}

func (c *CompositionRoot) CreateGetStoreQueryHandler() queries.GetStoreQueryHandler {
	return queries.NewGetStoreQueryHandler(c.storeRepository)
}

func (c *CompositionRoot) CreateGetItemsQueryHandler() queries.GetItemsQueryHandler {
	return queries.NewGetItemsQueryHandler(c.storeRepository)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.storeRepository)
}

func (c *CompositionRoot) CreateGetManifestQueryHandler() queries.GetManifestQueryHandler {
	return queries.NewGetManifestQueryHandler(c.storeRepository)
}

// CreateHTTPServer builds the echo instance serving the API.
func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*echo.Echo, error) {
	server := httpadapter.NewServer(
		c.CreateRegisterItemsCommandHandler(),
		c.CreateApplySalesLogCommandHandler(),
		c.CreatePlanRestockCommandHandler(),
		c.CreateDeliverManifestCommandHandler(),
		c.CreateImportManifestCommandHandler(),
		c.CreateGetStoreQueryHandler(),
		c.CreateGetItemsQueryHandler(),
		c.CreateGetInventoryQueryHandler(),
		c.CreateGetManifestQueryHandler(),
		c.storeRepository,
		c.logger,
	)
	return httpadapter.NewRouter(ctx, server)
}

// CreateJobManager builds the scheduled jobs. The restock job is disabled
// when no schedule is configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreatePlanRestockCommandHandler()
	return jobs.NewJobManager(&handler, c.config.RestockCron, c.logger)
}
