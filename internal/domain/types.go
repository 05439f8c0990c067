package domain

import (
	"strings"
	"time"
)

// EventType represents the kind of ledger mutation carried by a LedgerEvent
type EventType string

const (
	EventTypeGenesis  EventType = "genesis"
	EventTypeMint     EventType = "mint"
	EventTypeBurn     EventType = "burn"
	EventTypeTransfer EventType = "transfer"
)

// NormalizeSymbol canonicalizes a token symbol. Symbols are short uppercase
// mnemonics; lookup is case-insensitive.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// LedgerEvent is the normalized record of one ledger mutation.
// This is the standard format published to NATS and sent to the anchor notary.
type LedgerEvent struct {
	EntryID     string    `json:"entry_id"`               // ledger entry id (ULID)
	TokenID     string    `json:"token_id"`               // token the mutation applies to
	TokenSymbol string    `json:"token_symbol"`           // denormalized for subject routing
	EventType   EventType `json:"event_type"`             // genesis, mint, burn, transfer
	From        *Identity `json:"from,omitempty"`         // absent for genesis/mint
	To          *Identity `json:"to,omitempty"`           // absent for burn
	Amount      int64     `json:"amount"`                 // amount in base units
	ExternalRef string    `json:"external_ref,omitempty"` // anchor reference, empty until anchored
	Timestamp   time.Time `json:"timestamp"`
}
