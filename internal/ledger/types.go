package ledger

import (
	"encoding/json"

	"github.com/civicstack/token-ledger/internal/domain"
	"github.com/civicstack/token-ledger/internal/store/schema"
)

// CreateTokenInput carries the parameters of a genesis operation
type CreateTokenInput struct {
	Name          string
	Symbol        string
	Decimals      int
	MaxSupply     int64
	Creator       domain.Identity
	Metadata      json.RawMessage
	InitialSupply int64
}

// MutationOutcome is the result of a mint, burn, or redemption.
// ExternalRef is empty when anchoring failed or is still pending; the ledger
// mutation itself succeeded regardless.
type MutationOutcome struct {
	Token       *schema.Token
	EntryID     string
	Balance     int64
	ExternalRef string
}

// TransferOutcome is the result of a direct custodial transfer
type TransferOutcome struct {
	Token            *schema.Token
	EntryID          string
	SenderBalance    int64
	RecipientBalance int64
	ExternalRef      string
}

// TransferPlan is the read-only result of the prepare phase of a two-phase
// transfer: the unspent entries selected as inputs, the computed change, and
// the reservation holding the inputs until confirm or expiry.
type TransferPlan struct {
	ReservationID string
	Inputs        []*schema.LedgerEntry
	InputTotal    int64
	ChangeAmount  int64
}

// TransferOutput is one recipient credit of a confirmed transfer
type TransferOutput struct {
	Recipient domain.Identity
	Amount    int64
}
