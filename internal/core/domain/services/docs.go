// Package services provides domain services that work across several value
// types of the store domain and belong to none of them.
//
// The package includes:
//   - Allocator: splits a requested restock order into loaded vehicles
//   - ReorderPlanner: works out the restock order from the catalog and the inventory
//
// Both services are stateless and deterministic: the same input always
// yields the same result.
package services
