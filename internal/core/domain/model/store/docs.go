// Package store provides the Store aggregate: the session root that holds
// the store's capital, its inventory, the catalog of stockable items and
// the current restock manifest.
//
// Capital and inventory change only through ApplyDelivery and ApplySalesLog.
// Both compute the new inventory and capital against fresh values and swap
// them in only when the whole operation succeeds, so a failed call leaves
// the store exactly as it was. The catalog only grows.
//
// A Store is safe for concurrent use. Every mutating call holds an exclusive
// lock across its validation and its commit.
package store
