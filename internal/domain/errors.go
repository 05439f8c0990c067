package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTokenNotFound is returned when no token matches the given id or symbol
	ErrTokenNotFound = errors.New("token not found")

	// ErrSymbolTaken is returned when creating a token whose symbol is already registered
	ErrSymbolTaken = errors.New("token symbol already taken")

	// ErrInvalidAmount is returned when a non-positive amount is supplied to a ledger operation
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidIdentity is returned when a holder identity fails normalization
	ErrInvalidIdentity = errors.New("invalid holder identity")

	// ErrInvalidTxRef is returned when an external reference is not a 64-character hex string
	ErrInvalidTxRef = errors.New("invalid external reference")

	// ErrReferenceAlreadyUsed is returned when an external payment reference was previously consumed
	ErrReferenceAlreadyUsed = errors.New("external reference already used")

	// ErrEntryAlreadySpent is returned when confirming a transfer against an input that was already consumed
	ErrEntryAlreadySpent = errors.New("ledger entry already spent")

	// ErrEntryReserved is returned when a prepare step cannot reserve the entries it selected
	ErrEntryReserved = errors.New("ledger entry reserved by another transfer")
)

// InsufficientBalanceError is returned when a burn or transfer requests more
// than the holder's available balance. It carries the available and required
// amounts for caller-facing messaging.
type InsufficientBalanceError struct {
	TokenID   string
	Holder    Identity
	Available int64
	Required  int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for %s on token %s: available %d, required %d",
		e.Holder, e.TokenID, e.Available, e.Required)
}

// SupplyExceededError is returned when a mint would push a token's total
// supply past its configured maximum.
type SupplyExceededError struct {
	TokenID     string
	TotalSupply int64
	MaxSupply   int64
	Requested   int64
}

func (e *SupplyExceededError) Error() string {
	return fmt.Sprintf("mint of %d would exceed max supply for token %s: total %d, max %d",
		e.Requested, e.TokenID, e.TotalSupply, e.MaxSupply)
}
