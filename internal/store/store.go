package store

import (
	"context"
	"time"

	"github.com/civicstack/token-ledger/internal/domain"
	"github.com/civicstack/token-ledger/internal/store/schema"
)

// Holding pairs a token with one holder's balance on it
type Holding struct {
	Token   *schema.Token
	Balance int64
}

// ConfirmInput identifies one unspent ledger entry consumed by a confirmed transfer
type ConfirmInput struct {
	EntryID string
	Sender  domain.Identity
	Amount  int64
}

// ConfirmTransferInput carries the state changes of the confirm phase of a
// two-phase transfer: inputs to mark spent, output entries to append, and the
// reservation to clear.
type ConfirmTransferInput struct {
	TokenID       string
	ExternalTxRef domain.TxRef
	ReservationID string
	Inputs        []ConfirmInput
	OutputEntries []*schema.LedgerEntry
}

// Store defines the interface for ledger database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateToken inserts a token definition and its genesis entry in one
	// transaction. Returns domain.ErrSymbolTaken when the symbol is already
	// registered.
	CreateToken(ctx context.Context, token *schema.Token, genesis *schema.LedgerEntry) error
	// GetTokenByID retrieves a token by its id; (nil, nil) when absent
	GetTokenByID(ctx context.Context, id string) (*schema.Token, error)
	// GetTokenBySymbol retrieves a token by its normalized symbol; (nil, nil) when absent
	GetTokenBySymbol(ctx context.Context, symbol string) (*schema.Token, error)
	// ListTokens retrieves all token definitions
	ListTokens(ctx context.Context) ([]*schema.Token, error)
	// ListTokensByCreator retrieves tokens created by the given identity
	ListTokensByCreator(ctx context.Context, creator domain.Identity) ([]*schema.Token, error)

	// ApplyMint atomically increments the token's total supply (honoring the
	// max-supply ceiling), upserts the holder balance, and appends the entry.
	// Returns the holder's new balance.
	ApplyMint(ctx context.Context, token *schema.Token, entry *schema.LedgerEntry) (int64, error)
	// ApplyBurn atomically decrements the holder balance (rejecting overdraw
	// with domain.InsufficientBalanceError), decrements total supply, and
	// appends the entry. Returns the holder's new balance.
	ApplyBurn(ctx context.Context, token *schema.Token, entry *schema.LedgerEntry) (int64, error)
	// ApplyTransfer atomically moves entry.Amount from the entry's from
	// identity to its to identity and appends the entry. Returns the sender's
	// and recipient's new balances.
	ApplyTransfer(ctx context.Context, token *schema.Token, entry *schema.LedgerEntry) (int64, int64, error)
	// ApplyConfirmTransfer atomically spends the given inputs, debits their
	// senders, appends the output entries, credits their recipients, and
	// clears the reservation. Re-confirming an already spent input returns
	// domain.ErrEntryAlreadySpent without applying anything.
	ApplyConfirmTransfer(ctx context.Context, input ConfirmTransferInput) error

	// ApplyRedemption claims an external payment reference and applies the
	// granted mint in one transaction, so a duplicate reference can never
	// credit a balance. Returns the holder's new balance.
	ApplyRedemption(ctx context.Context, token *schema.Token, entry *schema.LedgerEntry, ref *schema.UsedReference) (int64, error)

	// GetEntryByID retrieves a ledger entry by its id; (nil, nil) when absent
	GetEntryByID(ctx context.Context, id string) (*schema.LedgerEntry, error)
	// GetBalance returns the holder's balance for a token; 0 when no holder record exists
	GetBalance(ctx context.Context, tokenID string, holder domain.Identity) (int64, error)
	// ListHoldings returns the holder's positive balances across all tokens
	ListHoldings(ctx context.Context, holder domain.Identity) ([]*Holding, error)
	// ListEntriesByToken returns a token's ledger entries, newest first
	ListEntriesByToken(ctx context.Context, tokenID string, limit int) ([]*schema.LedgerEntry, error)

	// ListUnspentEntries returns the holder's unspent, unreserved credit
	// entries for a token in id order (oldest first)
	ListUnspentEntries(ctx context.Context, tokenID string, holder domain.Identity) ([]*schema.LedgerEntry, error)
	// ReserveEntries places an expiring reservation on the given unspent
	// entries. Returns domain.ErrEntryReserved when any of them is spent or
	// held by a live reservation.
	ReserveEntries(ctx context.Context, entryIDs []string, reservationID string, until time.Time) error
	// ReleaseReservation clears all entries reserved under the given reservation id
	ReleaseReservation(ctx context.Context, reservationID string) error

	// SetEntryExternalRef attaches an anchor reference to an entry
	SetEntryExternalRef(ctx context.Context, entryID string, ref string) error
	// ListUnanchoredEntries returns entries still missing an anchor reference,
	// oldest first, skipping entries newer than the grace cutoff
	ListUnanchoredEntries(ctx context.Context, olderThan time.Time, limit int) ([]*schema.LedgerEntry, error)

	// ClaimReference records an external payment reference as consumed.
	// Claiming is a single insert-if-absent: a previously consumed reference
	// returns domain.ErrReferenceAlreadyUsed.
	ClaimReference(ctx context.Context, ref *schema.UsedReference) error
	// IsReferenceUsed checks whether an external payment reference was already consumed
	IsReferenceUsed(ctx context.Context, externalRef string) (bool, error)
	// GetReference retrieves the consumption record for a reference; (nil, nil) when absent
	GetReference(ctx context.Context, externalRef string) (*schema.UsedReference, error)
}
