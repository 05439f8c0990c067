package dto

import "encoding/json"

// CreateTokenRequest is the request body for POST /tokens
type CreateTokenRequest struct {
	Name          string          `json:"name" binding:"required"`
	Symbol        string          `json:"symbol" binding:"required"`
	Decimals      int             `json:"decimals"`
	MaxSupply     int64           `json:"max_supply"`
	InitialSupply int64           `json:"initial_supply"`
	Creator       string          `json:"creator" binding:"required"`
	Metadata      json.RawMessage `json:"metadata"`
}

// MintRequest is the request body for POST /tokens/:token/mint
type MintRequest struct {
	Holder string `json:"holder" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
	Notes  string `json:"notes"`
}

// BurnRequest is the request body for POST /tokens/:token/burn
type BurnRequest struct {
	Holder string `json:"holder" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
	Notes  string `json:"notes"`
}

// TransferRequest is the request body for POST /tokens/:token/transfer
type TransferRequest struct {
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
	Notes  string `json:"notes"`
}

// PrepareTransferRequest is the request body for POST /tokens/:token/transfers/prepare
type PrepareTransferRequest struct {
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
}

// TransferOutputRequest is one recipient of a confirmed transfer
type TransferOutputRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Amount    int64  `json:"amount" binding:"required"`
}

// ConfirmTransferRequest is the request body for POST /tokens/:token/transfers/confirm
type ConfirmTransferRequest struct {
	ExternalTxRef string                  `json:"external_tx_ref" binding:"required"`
	InputIDs      []string                `json:"input_ids" binding:"required"`
	Outputs       []TransferOutputRequest `json:"outputs" binding:"required"`
	ReservationID string                  `json:"reservation_id"`
}

// RedeemRequest is the request body for POST /tokens/:token/redeem
type RedeemRequest struct {
	Payer          string `json:"payer" binding:"required"`
	ExternalRef    string `json:"external_ref" binding:"required"`
	AmountReceived int64  `json:"amount_received" binding:"required"`
	TokensGranted  int64  `json:"tokens_granted" binding:"required"`
	Notes          string `json:"notes"`
}
