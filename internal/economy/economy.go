// Package economy maps application actions onto ledger operations for a
// single credit token. It carries no accounting logic of its own.
package economy

import (
	"context"
	"fmt"

	"github.com/civicstack/token-ledger/internal/domain"
	"github.com/civicstack/token-ledger/internal/ledger"
)

// Service exposes credit economy actions backed by the ledger engine
//
//go:generate mockgen -source=economy.go -destination=../mocks/economy.go -package=mocks -mock_names=Service=MockEconomyService
type Service interface {
	// UseService burns credits from a user for consuming a named service
	UseService(ctx context.Context, user domain.Identity, serviceName string, cost int64) (int64, error)
	// GrantServiceCredits mints credits to a user, e.g. a signup or referral grant
	GrantServiceCredits(ctx context.Context, user domain.Identity, amount int64, reason string) (int64, error)
	// PurchaseCredits redeems an external payment into credits, exactly once per payment
	PurchaseCredits(ctx context.Context, user domain.Identity, paymentRef domain.TxRef, amountPaid, credits int64) (int64, error)
	// TransferCredits moves credits between two users
	TransferCredits(ctx context.Context, from, to domain.Identity, amount int64) (int64, error)
	// CreditBalance returns the user's current credit balance
	CreditBalance(ctx context.Context, user domain.Identity) (int64, error)
}

type economy struct {
	engine ledger.Service
	symbol string
}

// NewService creates an economy façade bound to the token with the given symbol
func NewService(engine ledger.Service, symbol string) Service {
	return &economy{
		engine: engine,
		symbol: domain.NormalizeSymbol(symbol),
	}
}

// UseService burns credits from a user for consuming a named service
func (e *economy) UseService(ctx context.Context, user domain.Identity, serviceName string, cost int64) (int64, error) {
	outcome, err := e.engine.Burn(ctx, e.symbol, user, cost, fmt.Sprintf("service: %s", serviceName))
	if err != nil {
		return 0, err
	}
	return outcome.Balance, nil
}

// GrantServiceCredits mints credits to a user
func (e *economy) GrantServiceCredits(ctx context.Context, user domain.Identity, amount int64, reason string) (int64, error) {
	outcome, err := e.engine.Mint(ctx, e.symbol, user, amount, reason)
	if err != nil {
		return 0, err
	}
	return outcome.Balance, nil
}

// PurchaseCredits redeems an external payment into credits
func (e *economy) PurchaseCredits(ctx context.Context, user domain.Identity, paymentRef domain.TxRef, amountPaid, credits int64) (int64, error) {
	outcome, err := e.engine.RedeemExternalPayment(ctx, ledger.RedeemInput{
		TokenIDOrSymbol: e.symbol,
		Payer:           user,
		ExternalRef:     paymentRef,
		AmountReceived:  amountPaid,
		TokensGranted:   credits,
		Notes:           "credit purchase",
	})
	if err != nil {
		return 0, err
	}
	return outcome.Balance, nil
}

// TransferCredits moves credits between two users
func (e *economy) TransferCredits(ctx context.Context, from, to domain.Identity, amount int64) (int64, error) {
	outcome, err := e.engine.ExecuteTransfer(ctx, e.symbol, from, to, amount, "credit transfer")
	if err != nil {
		return 0, err
	}
	return outcome.SenderBalance, nil
}

// CreditBalance returns the user's current credit balance
func (e *economy) CreditBalance(ctx context.Context, user domain.Identity) (int64, error) {
	return e.engine.GetBalance(ctx, e.symbol, user)
}
