// Package ports defines the interfaces the application layer uses to reach
// infrastructure, so use cases can be tested against mocks.
package ports

import (
	"context"

	"supermart/internal/core/domain/model/store"
)

// StoreRepository gives use cases access to the session's Store aggregate.
// The Store guards its own consistency, so callers mutate the returned
// aggregate directly and need no transaction around it.
type StoreRepository interface {
	// Get returns the current Store. It fails when ctx is done or when no
	// store has been opened.
	Get(ctx context.Context) (*store.Store, error)
}
