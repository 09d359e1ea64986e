package http

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving s. Requests are logged and
// validated against the embedded API document, which is also published at
// /swagger/index.html.
func NewRouter(ctx context.Context, s *Server) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(requestLogger(s.logger))
	e.Use(s.requestValidator(router))

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", s.GetHealth)

	e.GET("/store", s.GetStore)

	e.GET("/items", s.GetItems)
	e.POST("/items", s.CreateItem)
	e.POST("/items/csv", s.ImportItems)
	e.GET("/items/:name", s.GetItem)

	e.GET("/inventory", s.GetInventory)

	e.POST("/sales", s.ApplySales)
	e.POST("/sales/csv", s.ImportSales)

	e.GET("/manifest", s.GetManifest)
	e.GET("/manifest/csv", s.ExportManifest)
	e.POST("/manifest/csv", s.ImportManifest)
	e.POST("/manifest/plan", s.PlanRestock)
	e.POST("/manifest/deliver", s.DeliverManifest)

	return e, nil
}
