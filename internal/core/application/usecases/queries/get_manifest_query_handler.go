package queries

import (
	"context"

	"supermart/internal/core/domain/model/vehicle"
	"supermart/internal/core/ports"
)

// GetManifestQueryHandler reads the current manifest with its vehicles in
// loading order.
type GetManifestQueryHandler struct {
	storeRepository ports.StoreRepository
}

func NewGetManifestQueryHandler(storeRepository ports.StoreRepository) GetManifestQueryHandler {
	return GetManifestQueryHandler{storeRepository: storeRepository}
}

func (h GetManifestQueryHandler) Handle(ctx context.Context, query GetManifestQuery) (GetManifestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetManifestQueryResponse{}, err
	}

	s, err := h.storeRepository.Get(ctx)
	if err != nil {
		return GetManifestQueryResponse{}, err
	}

	snapshot := s.Snapshot()
	m := snapshot.Manifest

	vehicles := m.Vehicles()
	response := GetManifestQueryResponse{
		ID:         m.ID().String(),
		Delivered:  snapshot.Delivered,
		TotalCost:  m.TotalCost(),
		TotalUnits: m.TotalUnits(),
		Vehicles:   make([]VehicleResponse, 0, len(vehicles)),
		Manifest:   m,
	}
	for _, v := range vehicles {
		response.Vehicles = append(response.Vehicles, newVehicleResponse(v))
	}
	return response, nil
}

func newVehicleResponse(v *vehicle.Vehicle) VehicleResponse {
	entries := v.Cargo().Entries()
	response := VehicleResponse{
		ID:                 v.ID().String(),
		Kind:               v.Kind().String(),
		Capacity:           v.Capacity(),
		Units:              v.Units(),
		StorageTemperature: v.StorageTemperature().Celsius(),
		Cost:               v.Cost(),
		Cargo:              make([]CargoLineResponse, 0, len(entries)),
	}
	for _, e := range entries {
		response.Cargo = append(response.Cargo, CargoLineResponse{Name: e.Item.Name(), Quantity: e.Quantity})
	}
	return response
}
