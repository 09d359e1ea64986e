// Package queries contains the read-only use cases of the store. Each query
// handler returns a plain read model built from one consistent snapshot of
// the Store.
package queries
