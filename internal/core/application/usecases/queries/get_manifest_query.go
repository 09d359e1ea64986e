package queries

import (
	"errors"

	"supermart/internal/core/domain/model/manifest"
	"supermart/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetManifestQueryIsNotConstructed = errors.New(
	"GetManifestQuery must be created via NewGetManifestQuery constructor",
)

// GetManifestQuery retrieves the store's current manifest.
type GetManifestQuery struct {
	guard guard.ConstructorGuard
}

func NewGetManifestQuery() GetManifestQuery {
	return GetManifestQuery{guard: guard.NewConstructorGuard()}
}

func (q GetManifestQuery) Validate() error {
	return q.guard.Validate(ErrGetManifestQueryIsNotConstructed)
}

// GetManifestQueryResponse describes the current manifest. Manifest is the
// domain value itself, for adapters that export it.
type GetManifestQueryResponse struct {
	ID         string
	Delivered  bool
	TotalCost  decimal.Decimal
	TotalUnits int
	Vehicles   []VehicleResponse
	Manifest   *manifest.Manifest
}

// VehicleResponse describes one loaded vehicle.
type VehicleResponse struct {
	ID                 string
	Kind               string
	Capacity           int
	Units              int
	StorageTemperature float64
	Cost               decimal.Decimal
	Cargo              []CargoLineResponse
}

type CargoLineResponse struct {
	Name     string
	Quantity int
}
