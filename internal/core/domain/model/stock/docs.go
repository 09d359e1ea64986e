// Package stock provides Stock, an immutable multiset of items with their
// unit quantities, and the Builder that accumulates it.
//
// An item absent from a Stock is "not stocked", which is distinct from an
// item stocked with zero units. Quantities are never negative.
package stock
