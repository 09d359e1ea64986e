// Package manifest provides Manifest, the set of loaded vehicles that makes
// up one restock delivery, and its Builder.
//
// A manifest with no vehicles is a legal value and is what a store starts with.
package manifest
