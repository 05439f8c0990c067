// Package anchor integrates the ledger with an external notarizing service.
// Anchoring is best-effort: it runs strictly after the authoritative ledger
// mutation is durable, and a failed call never rolls the mutation back.
package anchor

import (
	"context"

	"github.com/civicstack/token-ledger/internal/domain"
)

// Notary publishes an opaque event descriptor to an external append-only
// ledger and returns the reference id it was recorded under.
//
//go:generate mockgen -source=notary.go -destination=../mocks/notary.go -package=mocks -mock_names=Notary=MockNotary
type Notary interface {
	Notarize(ctx context.Context, event *domain.LedgerEvent) (domain.TxRef, error)
}
