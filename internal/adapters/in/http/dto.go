package http

import (
	"supermart/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Store struct {
	Name             string          `json:"name"`
	Capital          decimal.Decimal `json:"capital"`
	FormattedCapital string          `json:"formattedCapital"`
	Items            int             `json:"items"`
	InventoryUnits   int             `json:"inventoryUnits"`
	ManifestVehicles int             `json:"manifestVehicles"`
}

type Item struct {
	Name              string          `json:"name"`
	ManufacturingCost decimal.Decimal `json:"manufacturingCost"`
	SellPrice         decimal.Decimal `json:"sellPrice"`
	ReorderPoint      int             `json:"reorderPoint"`
	ReorderAmount     int             `json:"reorderAmount"`
	IdealTemperature  *float64        `json:"idealTemperature,omitempty"`
}

// NewItem is the body of POST /items. A nil IdealTemperature makes a dry item.
type NewItem struct {
	Name              string   `json:"name"`
	ManufacturingCost float64  `json:"manufacturingCost"`
	SellPrice         float64  `json:"sellPrice"`
	ReorderPoint      int      `json:"reorderPoint"`
	ReorderAmount     int      `json:"reorderAmount"`
	IdealTemperature  *float64 `json:"idealTemperature,omitempty"`
}

type InventoryLine struct {
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	ReorderPoint int    `json:"reorderPoint"`
	NeedsRestock bool   `json:"needsRestock"`
}

// SalesLog maps item names to units sold.
type SalesLog map[string]int

// DeliverRequest names the manifest to deliver. An empty ManifestID means the
// current manifest.
type DeliverRequest struct {
	ManifestID string `json:"manifestId"`
}

type CargoLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Vehicle struct {
	ID                 string          `json:"id"`
	Kind               string          `json:"kind"`
	Capacity           int             `json:"capacity"`
	Units              int             `json:"units"`
	StorageTemperature float64         `json:"storageTemperature"`
	Cost               decimal.Decimal `json:"cost"`
	Cargo              []CargoLine     `json:"cargo"`
}

type Manifest struct {
	ID         string          `json:"id"`
	Delivered  bool            `json:"delivered"`
	TotalCost  decimal.Decimal `json:"totalCost"`
	TotalUnits int             `json:"totalUnits"`
	Vehicles   []Vehicle       `json:"vehicles"`
}

func toStore(r queries.GetStoreQueryResponse) Store {
	return Store{
		Name:             r.Name,
		Capital:          r.Capital,
		FormattedCapital: r.FormattedCapital,
		Items:            r.Items,
		InventoryUnits:   r.InventoryUnits,
		ManifestVehicles: r.ManifestVehicles,
	}
}

func toItem(r queries.ItemResponse) Item {
	return Item{
		Name:              r.Name,
		ManufacturingCost: r.ManufacturingCost,
		SellPrice:         r.SellPrice,
		ReorderPoint:      r.ReorderPoint,
		ReorderAmount:     r.ReorderAmount,
		IdealTemperature:  r.IdealTemperature,
	}
}

func toInventoryLine(r queries.InventoryLineResponse) InventoryLine {
	return InventoryLine{
		Name:         r.Name,
		Quantity:     r.Quantity,
		ReorderPoint: r.ReorderPoint,
		NeedsRestock: r.NeedsRestock,
	}
}

func toManifest(r queries.GetManifestQueryResponse) Manifest {
	response := Manifest{
		ID:         r.ID,
		Delivered:  r.Delivered,
		TotalCost:  r.TotalCost,
		TotalUnits: r.TotalUnits,
		Vehicles:   make([]Vehicle, len(r.Vehicles)),
	}
	for i, v := range r.Vehicles {
		cargo := make([]CargoLine, len(v.Cargo))
		for j, line := range v.Cargo {
			cargo[j] = CargoLine{Name: line.Name, Quantity: line.Quantity}
		}
		response.Vehicles[i] = Vehicle{
			ID:                 v.ID,
			Kind:               v.Kind,
			Capacity:           v.Capacity,
			Units:              v.Units,
			StorageTemperature: v.StorageTemperature,
			Cost:               v.Cost,
			Cargo:              cargo,
		}
	}
	return response
}
