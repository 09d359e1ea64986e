package http

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"net/http"
	"slices"
	"strings"

	"supermart/internal/adapters/csvfile"
	"supermart/internal/core/application/usecases/commands"
	"supermart/internal/core/application/usecases/queries"
	"supermart/internal/core/domain/model/item"
	"supermart/internal/core/domain/model/kernel"
	"supermart/internal/core/domain/model/stock"
	"supermart/internal/core/ports"
	"supermart/internal/pkg/errs"
	"supermart/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
)

// Server handles the HTTP API. It translates requests into commands and
// queries and their results into JSON or CSV documents.
type Server struct {
	// Command handlers
	registerItemsHandler   commands.RegisterItemsCommandHandler
	applySalesLogHandler   commands.ApplySalesLogCommandHandler
	planRestockHandler     commands.PlanRestockCommandHandler
	deliverManifestHandler commands.DeliverManifestCommandHandler
	importManifestHandler  commands.ImportManifestCommandHandler

	// Query handlers
	getStoreHandler     queries.GetStoreQueryHandler
	getItemsHandler     queries.GetItemsQueryHandler
	getInventoryHandler queries.GetInventoryQueryHandler
	getManifestHandler  queries.GetManifestQueryHandler

	// Resolves item names in sales logs and manifest files.
	storeRepository ports.StoreRepository

	logger *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerItemsHandler commands.RegisterItemsCommandHandler,
	applySalesLogHandler commands.ApplySalesLogCommandHandler,
	planRestockHandler commands.PlanRestockCommandHandler,
	deliverManifestHandler commands.DeliverManifestCommandHandler,
	importManifestHandler commands.ImportManifestCommandHandler,
	getStoreHandler queries.GetStoreQueryHandler,
	getItemsHandler queries.GetItemsQueryHandler,
	getInventoryHandler queries.GetInventoryQueryHandler,
	getManifestHandler queries.GetManifestQueryHandler,
	storeRepository ports.StoreRepository,
	baseLogger *zap.Logger,
) *Server {
	return &Server{
		registerItemsHandler:   registerItemsHandler,
		applySalesLogHandler:   applySalesLogHandler,
		planRestockHandler:     planRestockHandler,
		deliverManifestHandler: deliverManifestHandler,
		importManifestHandler:  importManifestHandler,
		getStoreHandler:        getStoreHandler,
		getItemsHandler:        getItemsHandler,
		getInventoryHandler:    getInventoryHandler,
		getManifestHandler:     getManifestHandler,
		storeRepository:        storeRepository,
		logger:                 logger.Named(baseLogger, "http"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetStore handles GET /store - name, capital and headline counts.
func (s *Server) GetStore(ctx echo.Context) error {
	response, err := s.getStoreHandler.Handle(ctx.Request().Context(), queries.NewGetStoreQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toStore(response))
}

// GetItems handles GET /items - the whole catalog.
func (s *Server) GetItems(ctx echo.Context) error {
	items, err := s.getItemsHandler.Handle(ctx.Request().Context(), queries.NewGetItemsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Item, len(items))
	for i, it := range items {
		response[i] = toItem(it)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetItem handles GET /items/:name.
func (s *Server) GetItem(ctx echo.Context) error {
	var name string
	err := runtime.BindStyledParameterWithOptions("simple", "name", itemNameSegment(ctx), &name,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("name", err))
	}

	items, err := s.getItemsHandler.Handle(ctx.Request().Context(), queries.NewGetItemQuery(name))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toItem(items[0]))
}

// CreateItem handles POST /items - catalogues one item and stocks it with
// zero units.
func (s *Server) CreateItem(ctx echo.Context) error {
	var newItem NewItem
	if err := ctx.Bind(&newItem); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	it, err := buildItem(newItem)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.registerItems(ctx, []*item.Item{it})
}

// ImportItems handles POST /items/csv - catalogues and stocks every item of
// an item-properties file.
func (s *Server) ImportItems(ctx echo.Context) error {
	items, err := csvfile.ReadItemProperties(ctx.Request().Body)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.registerItems(ctx, items)
}

func (s *Server) registerItems(ctx echo.Context, items []*item.Item) error {
	cmd, err := commands.NewRegisterItemsCommand(items, true)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.registerItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// GetInventory handles GET /inventory.
func (s *Server) GetInventory(ctx echo.Context) error {
	lines, err := s.getInventoryHandler.Handle(ctx.Request().Context(), queries.NewGetInventoryQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]InventoryLine, len(lines))
	for i, line := range lines {
		response[i] = toInventoryLine(line)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ApplySales handles POST /sales - records a JSON sales log.
func (s *Server) ApplySales(ctx echo.Context) error {
	var sales SalesLog
	if err := ctx.Bind(&sales); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	catalog, err := s.catalog(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	sold, err := soldStock(sales, catalog)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.applySales(ctx, sold)
}

// ImportSales handles POST /sales/csv - records a sales log file.
func (s *Server) ImportSales(ctx echo.Context) error {
	catalog, err := s.catalog(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	sold, err := csvfile.ReadSalesLog(ctx.Request().Body, catalog)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.applySales(ctx, sold)
}

func (s *Server) applySales(ctx echo.Context, sold *stock.Stock) error {
	cmd, err := commands.NewApplySalesLogCommand(sold)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.applySalesLogHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetManifest handles GET /manifest.
func (s *Server) GetManifest(ctx echo.Context) error {
	response, err := s.getManifestHandler.Handle(ctx.Request().Context(), queries.NewGetManifestQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toManifest(response))
}

// ExportManifest handles GET /manifest/csv - the current manifest as a
// manifest file.
func (s *Server) ExportManifest(ctx echo.Context) error {
	response, err := s.getManifestHandler.Handle(ctx.Request().Context(), queries.NewGetManifestQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	var buf bytes.Buffer
	if err = csvfile.WriteManifest(&buf, response.Manifest); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.Blob(http.StatusOK, "text/csv; charset=UTF-8", buf.Bytes())
}

// ImportManifest handles POST /manifest/csv - delivers a manifest file and
// makes it the current manifest.
func (s *Server) ImportManifest(ctx echo.Context) error {
	catalog, err := s.catalog(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	m, err := csvfile.ReadManifest(ctx.Request().Body, catalog)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewImportManifestCommand(m)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.importManifestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PlanRestock handles POST /manifest/plan - allocates a restock of every item
// at or below its reorder point. Nothing is delivered.
func (s *Server) PlanRestock(ctx echo.Context) error {
	if err := s.planRestockHandler.Handle(ctx.Request().Context(), commands.NewPlanRestockCommand()); err != nil {
		return s.fail(ctx, err)
	}
	return s.GetManifest(ctx)
}

// DeliverManifest handles POST /manifest/deliver - receives the current
// manifest. A manifestId in the body must name it.
func (s *Server) DeliverManifest(ctx echo.Context) error {
	var request DeliverRequest
	if err := ctx.Bind(&request); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	if request.ManifestID == "" {
		current, err := s.getManifestHandler.Handle(ctx.Request().Context(), queries.NewGetManifestQuery())
		if err != nil {
			return s.fail(ctx, err)
		}
		request.ManifestID = current.ID
	}

	manifestID, err := kernel.UUIDFromString(request.ManifestID)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("manifestId", err))
	}

	cmd, err := commands.NewDeliverManifestCommand(manifestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.deliverManifestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// itemNameSegment returns the :name segment still escaped. ctx.Param is
// already decoded, and the binder decodes once more.
func itemNameSegment(ctx echo.Context) string {
	return strings.TrimPrefix(ctx.Request().URL.EscapedPath(), "/items/")
}

func (s *Server) catalog(ctx context.Context) (csvfile.ItemResolver, error) {
	return s.storeRepository.Get(ctx)
}

func buildItem(newItem NewItem) (*item.Item, error) {
	b := item.NewBuilder()
	err := errors.Join(
		b.Name(newItem.Name),
		b.ManufacturingCost(newItem.ManufacturingCost),
		b.SellPrice(newItem.SellPrice),
		b.ReorderPoint(newItem.ReorderPoint),
		b.ReorderAmount(newItem.ReorderAmount),
	)
	if newItem.IdealTemperature != nil {
		err = errors.Join(err, b.IdealTemperature(*newItem.IdealTemperature))
	}
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// soldStock resolves a sales log against catalog. Names are visited in order
// so the reported error does not depend on map iteration.
func soldStock(sales SalesLog, catalog csvfile.ItemResolver) (*stock.Stock, error) {
	b := stock.NewBuilder()
	for _, name := range slices.Sorted(maps.Keys(sales)) {
		it, ok := catalog.Item(name)
		if !ok {
			return nil, errs.NewObjectNotFoundError("item", name)
		}
		if err := b.AddStockedItem(it, sales[name]); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}
