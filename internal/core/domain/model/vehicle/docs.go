// Package vehicle provides the delivery vehicles a manifest is made of.
//
// A Vehicle is one of a closed set of kinds:
//   - Standard: carries up to 1000 units of dry goods only, and costs
//     750 + 0.25 per unit carried
//   - Refrigerated: carries up to 800 units of any goods, and costs
//     900 + 200 × 0.7^(T/5), where T is the coldest ideal temperature among
//     its temperature-controlled cargo (clamped to [-20, 10], 10 when none)
//
// Vehicles are built by a Builder that checks capacity and content when the
// cargo is set and again when the vehicle is built.
package vehicle
