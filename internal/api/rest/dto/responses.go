package dto

import (
	"encoding/json"
	"time"

	"github.com/civicstack/token-ledger/internal/store/schema"
)

// TokenResponse is the wire representation of a token definition
type TokenResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Symbol      string          `json:"symbol"`
	Decimals    int             `json:"decimals"`
	TotalSupply int64           `json:"total_supply"`
	MaxSupply   int64           `json:"max_supply"`
	Creator     string          `json:"creator"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewTokenResponse maps a token record to its wire representation
func NewTokenResponse(token *schema.Token) TokenResponse {
	return TokenResponse{
		ID:          token.ID,
		Name:        token.Name,
		Symbol:      token.Symbol,
		Decimals:    token.Decimals,
		TotalSupply: token.TotalSupply,
		MaxSupply:   token.MaxSupply,
		Creator:     token.CreatorIdentity,
		Metadata:    json.RawMessage(token.Metadata),
		CreatedAt:   token.CreatedAt,
	}
}

// EntryResponse is the wire representation of one ledger entry
type EntryResponse struct {
	ID          string    `json:"id"`
	TokenID     string    `json:"token_id"`
	EntryType   string    `json:"entry_type"`
	From        *string   `json:"from,omitempty"`
	To          *string   `json:"to,omitempty"`
	Amount      int64     `json:"amount"`
	ExternalRef string    `json:"external_ref,omitempty"`
	SpentBy     string    `json:"spent_by,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewEntryResponse maps an entry record to its wire representation
func NewEntryResponse(entry *schema.LedgerEntry) EntryResponse {
	return EntryResponse{
		ID:          entry.ID,
		TokenID:     entry.TokenID,
		EntryType:   string(entry.EntryType),
		From:        entry.FromIdentity,
		To:          entry.ToIdentity,
		Amount:      entry.Amount,
		ExternalRef: entry.ExternalRef,
		SpentBy:     entry.SpentBy,
		Notes:       entry.Notes,
		Timestamp:   entry.Timestamp,
	}
}

// MutationResponse reports the outcome of a mint, burn or redeem
type MutationResponse struct {
	TokenID     string `json:"token_id"`
	EntryID     string `json:"entry_id"`
	Balance     int64  `json:"balance"`
	ExternalRef string `json:"external_ref,omitempty"`
}

// TransferResponse reports the outcome of an executed transfer
type TransferResponse struct {
	TokenID          string `json:"token_id"`
	EntryID          string `json:"entry_id"`
	SenderBalance    int64  `json:"sender_balance"`
	RecipientBalance int64  `json:"recipient_balance"`
	ExternalRef      string `json:"external_ref,omitempty"`
}

// BalanceResponse reports one holder's balance on a token
type BalanceResponse struct {
	TokenID string `json:"token_id"`
	Holder  string `json:"holder"`
	Balance int64  `json:"balance"`
}

// HoldingResponse pairs a token with the holder's balance
type HoldingResponse struct {
	Token   TokenResponse `json:"token"`
	Balance int64         `json:"balance"`
}

// TransferPlanResponse describes a reserved transfer plan
type TransferPlanResponse struct {
	ReservationID string          `json:"reservation_id"`
	Inputs        []EntryResponse `json:"inputs"`
	InputTotal    int64           `json:"input_total"`
	ChangeAmount  int64           `json:"change_amount"`
}

// ReferenceResponse reports whether an external payment reference was consumed
type ReferenceResponse struct {
	ExternalRef string `json:"external_ref"`
	Used        bool   `json:"used"`
}
