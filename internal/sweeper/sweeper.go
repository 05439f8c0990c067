// Package sweeper hosts the ledger's long-running maintenance loops.
package sweeper

import (
	"context"
)

// Sweeper is a background maintenance loop over ledger state
type Sweeper interface {
	// Start runs the sweep loop, blocking until the context is canceled
	Start(ctx context.Context) error

	// Stop shuts the loop down, waiting for the in-flight cycle to finish
	// or the given context to expire
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
