// Package ledger implements the token ledger engine: custodial double-entry
// accounting over named fungible tokens, with an immutable entry log and
// best-effort anchoring of every mutation to an external notarizing service.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/civicstack/token-ledger/internal/adapter"
	"github.com/civicstack/token-ledger/internal/anchor"
	"github.com/civicstack/token-ledger/internal/domain"
	"github.com/civicstack/token-ledger/internal/logger"
	"github.com/civicstack/token-ledger/internal/messaging"
	"github.com/civicstack/token-ledger/internal/store"
	"github.com/civicstack/token-ledger/internal/store/schema"
)

const (
	// DefaultAnchorTimeout bounds a single notarization attempt
	DefaultAnchorTimeout = 10 * time.Second
	// DefaultReservationTTL bounds how long a transfer plan holds its inputs
	DefaultReservationTTL = 2 * time.Minute
)

// Service defines the ledger engine operations
//
//go:generate mockgen -source=engine.go -destination=../mocks/ledger.go -package=mocks -mock_names=Service=MockLedgerService
type Service interface {
	// CreateToken registers a new token and logs its genesis entry.
	// A duplicate symbol is rejected at creation time.
	CreateToken(ctx context.Context, input CreateTokenInput) (*schema.Token, error)

	// Mint credits newly issued tokens to a holder
	Mint(ctx context.Context, tokenIDOrSymbol string, holder domain.Identity, amount int64, notes string) (*MutationOutcome, error)
	// Burn removes tokens from a holder's balance and from circulation
	Burn(ctx context.Context, tokenIDOrSymbol string, holder domain.Identity, amount int64, notes string) (*MutationOutcome, error)
	// ExecuteTransfer moves custodially held balance between two holders
	ExecuteTransfer(ctx context.Context, tokenIDOrSymbol string, sender, recipient domain.Identity, amount int64, notes string) (*TransferOutcome, error)

	// PrepareTransfer selects and reserves the sender's unspent entries
	// covering the requested amount, for a transfer the sender signs
	// externally. No balance changes.
	PrepareTransfer(ctx context.Context, tokenIDOrSymbol string, sender, recipient domain.Identity, amount int64) (*TransferPlan, error)
	// ConfirmTransfer applies an externally signed transfer: spends the
	// inputs, credits the outputs, and releases the plan's reservation
	ConfirmTransfer(ctx context.Context, tokenIDOrSymbol string, externalTxRef domain.TxRef, inputIDs []string, outputs []TransferOutput, reservationID string) error
	// CancelTransfer releases a plan's reservation without spending anything
	CancelTransfer(ctx context.Context, reservationID string) error

	// RedeemExternalPayment consumes an external payment reference exactly
	// once and mints the granted tokens to the payer
	RedeemExternalPayment(ctx context.Context, input RedeemInput) (*MutationOutcome, error)
	// IsReferenceUsed reports whether an external payment reference was already consumed
	IsReferenceUsed(ctx context.Context, ref domain.TxRef) (bool, error)

	// GetToken resolves a token by id, falling back to symbol
	GetToken(ctx context.Context, tokenIDOrSymbol string) (*schema.Token, error)
	// GetBalance returns a holder's balance; 0 when the holder has none
	GetBalance(ctx context.Context, tokenIDOrSymbol string, holder domain.Identity) (int64, error)
	// GetHolderTokens returns the holder's positive balances across all tokens
	GetHolderTokens(ctx context.Context, holder domain.Identity) ([]*store.Holding, error)
	// GetTokensByCreator returns tokens created by the given identity
	GetTokensByCreator(ctx context.Context, creator domain.Identity) ([]*schema.Token, error)
	// GetAllTokens returns all token definitions
	GetAllTokens(ctx context.Context) ([]*schema.Token, error)
	// GetTokenEntries returns a token's ledger entries, newest first
	GetTokenEntries(ctx context.Context, tokenIDOrSymbol string, limit int) ([]*schema.LedgerEntry, error)
}

// RedeemInput carries the parameters of an external payment redemption
type RedeemInput struct {
	TokenIDOrSymbol string
	Payer           domain.Identity
	ExternalRef     domain.TxRef
	AmountReceived  int64
	TokensGranted   int64
	Notes           string
}

// Config holds engine tuning knobs
type Config struct {
	AnchorTimeout  time.Duration
	ReservationTTL time.Duration
}

type engine struct {
	store     store.Store
	notary    anchor.Notary
	publisher messaging.Publisher
	clock     adapter.Clock
	cfg       Config
}

// NewEngine creates a ledger engine. The publisher is optional; a nil
// publisher disables event publication.
func NewEngine(s store.Store, notary anchor.Notary, publisher messaging.Publisher, clock adapter.Clock, cfg Config) Service {
	if cfg.AnchorTimeout <= 0 {
		cfg.AnchorTimeout = DefaultAnchorTimeout
	}
	if cfg.ReservationTTL <= 0 {
		cfg.ReservationTTL = DefaultReservationTTL
	}
	return &engine{
		store:     s,
		notary:    notary,
		publisher: publisher,
		clock:     clock,
		cfg:       cfg,
	}
}

// CreateToken registers a new token and logs its genesis entry
func (e *engine) CreateToken(ctx context.Context, input CreateTokenInput) (*schema.Token, error) {
	symbol := domain.NormalizeSymbol(input.Symbol)
	if symbol == "" {
		return nil, fmt.Errorf("token symbol is required: %w", domain.ErrInvalidAmount)
	}
	if input.MaxSupply < 0 {
		return nil, fmt.Errorf("max supply must not be negative: %w", domain.ErrInvalidAmount)
	}
	if input.InitialSupply < 0 || (input.MaxSupply > 0 && input.InitialSupply > input.MaxSupply) {
		return nil, domain.ErrInvalidAmount
	}
	if input.Creator == "" {
		return nil, domain.ErrInvalidIdentity
	}

	now := e.clock.Now().UTC()
	token := &schema.Token{
		ID:              ulid.Make().String(),
		Name:            input.Name,
		Symbol:          symbol,
		Decimals:        input.Decimals,
		MaxSupply:       input.MaxSupply,
		CreatorIdentity: input.Creator.String(),
		Metadata:        []byte(input.Metadata),
		CreatedAt:       now,
	}

	genesis := &schema.LedgerEntry{
		ID:        ulid.Make().String(),
		TokenID:   token.ID,
		EntryType: schema.EntryTypeGenesis,
		Amount:    0,
		Notes:     fmt.Sprintf("genesis of %s", symbol),
		Timestamp: now,
	}

	if err := e.store.CreateToken(ctx, token, genesis); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "token created",
		zap.String("token_id", token.ID),
		zap.String("symbol", token.Symbol),
		zap.Int64("max_supply", token.MaxSupply),
	)

	e.finalizeEntry(ctx, token, genesis)

	if input.InitialSupply > 0 {
		if _, err := e.Mint(ctx, token.ID, input.Creator, input.InitialSupply, "initial supply"); err != nil {
			return nil, fmt.Errorf("failed to mint initial supply: %w", err)
		}
		token.TotalSupply = input.InitialSupply
	}

	return token, nil
}

// Mint credits newly issued tokens to a holder
func (e *engine) Mint(ctx context.Context, tokenIDOrSymbol string, holder domain.Identity, amount int64, notes string) (*MutationOutcome, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	token, err := e.resolveToken(ctx, tokenIDOrSymbol)
	if err != nil {
		return nil, err
	}

	to := holder.String()
	entry := &schema.LedgerEntry{
		ID:         ulid.Make().String(),
		TokenID:    token.ID,
		EntryType:  schema.EntryTypeMint,
		ToIdentity: &to,
		Amount:     amount,
		Notes:      notes,
		Timestamp:  e.clock.Now().UTC(),
	}

	balance, err := e.store.ApplyMint(ctx, token, entry)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "minted",
		zap.String("token_id", token.ID),
		zap.String("holder", holder.String()),
		zap.Int64("amount", amount),
		zap.Int64("balance", balance),
	)

	ref := e.finalizeEntry(ctx, token, entry)

	return &MutationOutcome{Token: token, EntryID: entry.ID, Balance: balance, ExternalRef: ref}, nil
}

// Burn removes tokens from a holder's balance and from circulation
func (e *engine) Burn(ctx context.Context, tokenIDOrSymbol string, holder domain.Identity, amount int64, notes string) (*MutationOutcome, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	token, err := e.resolveToken(ctx, tokenIDOrSymbol)
	if err != nil {
		return nil, err
	}

	from := holder.String()
	entry := &schema.LedgerEntry{
		ID:           ulid.Make().String(),
		TokenID:      token.ID,
		EntryType:    schema.EntryTypeBurn,
		FromIdentity: &from,
		Amount:       amount,
		Notes:        notes,
		Timestamp:    e.clock.Now().UTC(),
	}

	balance, err := e.store.ApplyBurn(ctx, token, entry)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "burned",
		zap.String("token_id", token.ID),
		zap.String("holder", holder.String()),
		zap.Int64("amount", amount),
		zap.Int64("balance", balance),
	)

	ref := e.finalizeEntry(ctx, token, entry)

	return &MutationOutcome{Token: token, EntryID: entry.ID, Balance: balance, ExternalRef: ref}, nil
}

// ExecuteTransfer moves custodially held balance between two holders
func (e *engine) ExecuteTransfer(ctx context.Context, tokenIDOrSymbol string, sender, recipient domain.Identity, amount int64, notes string) (*TransferOutcome, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if sender == recipient {
		return nil, fmt.Errorf("sender and recipient are the same: %w", domain.ErrInvalidIdentity)
	}
	token, err := e.resolveToken(ctx, tokenIDOrSymbol)
	if err != nil {
		return nil, err
	}

	from := sender.String()
	to := recipient.String()
	entry := &schema.LedgerEntry{
		ID:           ulid.Make().String(),
		TokenID:      token.ID,
		EntryType:    schema.EntryTypeTransfer,
		FromIdentity: &from,
		ToIdentity:   &to,
		Amount:       amount,
		Notes:        notes,
		Timestamp:    e.clock.Now().UTC(),
	}

	senderBalance, recipientBalance, err := e.store.ApplyTransfer(ctx, token, entry)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "transferred",
		zap.String("token_id", token.ID),
		zap.String("sender", sender.String()),
		zap.String("recipient", recipient.String()),
		zap.Int64("amount", amount),
	)

	ref := e.finalizeEntry(ctx, token, entry)

	return &TransferOutcome{
		Token:            token,
		EntryID:          entry.ID,
		SenderBalance:    senderBalance,
		RecipientBalance: recipientBalance,
		ExternalRef:      ref,
	}, nil
}

// PrepareTransfer selects and reserves the sender's unspent entries covering
// the requested amount
func (e *engine) PrepareTransfer(ctx context.Context, tokenIDOrSymbol string, sender, recipient domain.Identity, amount int64) (*TransferPlan, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	token, err := e.resolveToken(ctx, tokenIDOrSymbol)
	if err != nil {
		return nil, err
	}

	unspent, err := e.store.ListUnspentEntries(ctx, token.ID, sender)
	if err != nil {
		return nil, err
	}

	// First-fit accumulation in entry id order (oldest credits first)
	var selected []*schema.LedgerEntry
	var total int64
	for _, entry := range unspent {
		selected = append(selected, entry)
		total += entry.Amount
		if total >= amount {
			break
		}
	}
	if total < amount {
		return nil, &domain.InsufficientBalanceError{
			TokenID:   token.ID,
			Holder:    sender,
			Available: total,
			Required:  amount,
		}
	}

	reservationID := uuid.NewString()
	ids := make([]string, 0, len(selected))
	for _, entry := range selected {
		ids = append(ids, entry.ID)
	}
	until := e.clock.Now().UTC().Add(e.cfg.ReservationTTL)
	if err := e.store.ReserveEntries(ctx, ids, reservationID, until); err != nil {
		return nil, err
	}

	return &TransferPlan{
		ReservationID: reservationID,
		Inputs:        selected,
		InputTotal:    total,
		ChangeAmount:  total - amount,
	}, nil
}

// ConfirmTransfer applies an externally signed transfer
func (e *engine) ConfirmTransfer(ctx context.Context, tokenIDOrSymbol string, externalTxRef domain.TxRef, inputIDs []string, outputs []TransferOutput, reservationID string) error {
	if externalTxRef == "" {
		return domain.ErrInvalidTxRef
	}
	if len(inputIDs) == 0 || len(outputs) == 0 {
		return fmt.Errorf("transfer needs at least one input and one output: %w", domain.ErrInvalidAmount)
	}
	token, err := e.resolveToken(ctx, tokenIDOrSymbol)
	if err != nil {
		return err
	}

	var inputs []store.ConfirmInput
	var inputTotal int64
	for _, id := range inputIDs {
		entry, err := e.store.GetEntryByID(ctx, id)
		if err != nil {
			return err
		}
		if entry == nil || entry.TokenID != token.ID || entry.ToIdentity == nil {
			return fmt.Errorf("entry %s is not a spendable input of token %s", id, token.ID)
		}
		if entry.SpentBy != "" {
			return fmt.Errorf("entry %s: %w", id, domain.ErrEntryAlreadySpent)
		}
		inputs = append(inputs, store.ConfirmInput{
			EntryID: entry.ID,
			Sender:  domain.Identity(*entry.ToIdentity),
			Amount:  entry.Amount,
		})
		inputTotal += entry.Amount
	}

	var outputTotal int64
	for _, out := range outputs {
		if out.Amount <= 0 {
			return domain.ErrInvalidAmount
		}
		outputTotal += out.Amount
	}
	// Inputs and outputs must balance: change goes back to the sender as an
	// explicit output, never disappears.
	if outputTotal != inputTotal {
		return fmt.Errorf("outputs total %d does not match inputs total %d: %w", outputTotal, inputTotal, domain.ErrInvalidAmount)
	}

	from := inputs[0].Sender.String()
	now := e.clock.Now().UTC()
	outputEntries := make([]*schema.LedgerEntry, 0, len(outputs))
	events := make([]*domain.LedgerEvent, 0, len(outputs))
	for _, out := range outputs {
		to := out.Recipient.String()
		entry := &schema.LedgerEntry{
			ID:           ulid.Make().String(),
			TokenID:      token.ID,
			EntryType:    schema.EntryTypeTransfer,
			FromIdentity: &from,
			ToIdentity:   &to,
			Amount:       out.Amount,
			// The externally signed transaction is itself the anchor
			ExternalRef: externalTxRef.String(),
			Timestamp:   now,
		}
		outputEntries = append(outputEntries, entry)
		events = append(events, e.ledgerEvent(token, entry))
	}

	err = e.store.ApplyConfirmTransfer(ctx, store.ConfirmTransferInput{
		TokenID:       token.ID,
		ExternalTxRef: externalTxRef,
		ReservationID: reservationID,
		Inputs:        inputs,
		OutputEntries: outputEntries,
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "transfer confirmed",
		zap.String("token_id", token.ID),
		zap.String("external_ref", externalTxRef.String()),
		zap.Int("inputs", len(inputs)),
		zap.Int("outputs", len(outputs)),
	)

	for _, event := range events {
		e.publish(ctx, event)
	}

	return nil
}

// CancelTransfer releases a plan's reservation without spending anything
func (e *engine) CancelTransfer(ctx context.Context, reservationID string) error {
	if reservationID == "" {
		return nil
	}
	return e.store.ReleaseReservation(ctx, reservationID)
}

// RedeemExternalPayment consumes an external payment reference exactly once
// and mints the granted tokens to the payer
func (e *engine) RedeemExternalPayment(ctx context.Context, input RedeemInput) (*MutationOutcome, error) {
	if input.TokensGranted <= 0 || input.AmountReceived <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if input.ExternalRef == "" {
		return nil, domain.ErrInvalidTxRef
	}
	token, err := e.resolveToken(ctx, input.TokenIDOrSymbol)
	if err != nil {
		return nil, err
	}

	to := input.Payer.String()
	notes := input.Notes
	if notes == "" {
		notes = fmt.Sprintf("redeemed payment %s", input.ExternalRef)
	}
	entry := &schema.LedgerEntry{
		ID:         ulid.Make().String(),
		TokenID:    token.ID,
		EntryType:  schema.EntryTypeMint,
		ToIdentity: &to,
		Amount:     input.TokensGranted,
		Notes:      notes,
		Timestamp:  e.clock.Now().UTC(),
	}
	ref := &schema.UsedReference{
		ID:             uuid.NewString(),
		ExternalRef:    input.ExternalRef.String(),
		PayerIdentity:  input.Payer.String(),
		AmountReceived: input.AmountReceived,
		TokensGranted:  input.TokensGranted,
	}

	// Claim and credit happen in one store transaction: a duplicate
	// reference is rejected before any balance changes.
	balance, err := e.store.ApplyRedemption(ctx, token, entry, ref)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "external payment redeemed",
		zap.String("token_id", token.ID),
		zap.String("payer", input.Payer.String()),
		zap.String("payment_ref", input.ExternalRef.String()),
		zap.Int64("tokens_granted", input.TokensGranted),
	)

	anchorRef := e.finalizeEntry(ctx, token, entry)

	return &MutationOutcome{Token: token, EntryID: entry.ID, Balance: balance, ExternalRef: anchorRef}, nil
}

// IsReferenceUsed reports whether an external payment reference was already consumed
func (e *engine) IsReferenceUsed(ctx context.Context, ref domain.TxRef) (bool, error) {
	return e.store.IsReferenceUsed(ctx, ref.String())
}

// GetToken resolves a token by id, falling back to symbol
func (e *engine) GetToken(ctx context.Context, tokenIDOrSymbol string) (*schema.Token, error) {
	return e.resolveToken(ctx, tokenIDOrSymbol)
}

// GetBalance returns a holder's balance; 0 when the holder has none
func (e *engine) GetBalance(ctx context.Context, tokenIDOrSymbol string, holder domain.Identity) (int64, error) {
	token, err := e.resolveToken(ctx, tokenIDOrSymbol)
	if err != nil {
		return 0, err
	}
	return e.store.GetBalance(ctx, token.ID, holder)
}

// GetHolderTokens returns the holder's positive balances across all tokens
func (e *engine) GetHolderTokens(ctx context.Context, holder domain.Identity) ([]*store.Holding, error) {
	return e.store.ListHoldings(ctx, holder)
}

// GetTokensByCreator returns tokens created by the given identity
func (e *engine) GetTokensByCreator(ctx context.Context, creator domain.Identity) ([]*schema.Token, error) {
	return e.store.ListTokensByCreator(ctx, creator)
}

// GetAllTokens returns all token definitions
func (e *engine) GetAllTokens(ctx context.Context) ([]*schema.Token, error) {
	return e.store.ListTokens(ctx)
}

// GetTokenEntries returns a token's ledger entries, newest first
func (e *engine) GetTokenEntries(ctx context.Context, tokenIDOrSymbol string, limit int) ([]*schema.LedgerEntry, error) {
	token, err := e.resolveToken(ctx, tokenIDOrSymbol)
	if err != nil {
		return nil, err
	}
	return e.store.ListEntriesByToken(ctx, token.ID, limit)
}

// resolveToken looks a token up by id first, then by normalized symbol
func (e *engine) resolveToken(ctx context.Context, tokenIDOrSymbol string) (*schema.Token, error) {
	token, err := e.store.GetTokenByID(ctx, tokenIDOrSymbol)
	if err != nil {
		return nil, err
	}
	if token == nil {
		token, err = e.store.GetTokenBySymbol(ctx, domain.NormalizeSymbol(tokenIDOrSymbol))
		if err != nil {
			return nil, err
		}
	}
	if token == nil {
		return nil, fmt.Errorf("%q: %w", tokenIDOrSymbol, domain.ErrTokenNotFound)
	}
	return token, nil
}

// finalizeEntry anchors a freshly written entry and publishes its event.
// Both steps are best-effort: the ledger mutation already stands, so failures
// here are logged and the entry is simply left without an external ref.
func (e *engine) finalizeEntry(ctx context.Context, token *schema.Token, entry *schema.LedgerEntry) string {
	event := e.ledgerEvent(token, entry)

	actx, cancel := context.WithTimeout(ctx, e.cfg.AnchorTimeout)
	ref, err := e.notary.Notarize(actx, event)
	cancel()
	if err != nil {
		logger.WarnCtx(ctx, "anchor notarization failed, entry left unanchored",
			zap.String("entry_id", entry.ID),
			zap.Error(err),
		)
	} else {
		if err := e.store.SetEntryExternalRef(ctx, entry.ID, ref.String()); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("entry_id", entry.ID))
		} else {
			entry.ExternalRef = ref.String()
			event.ExternalRef = ref.String()
		}
	}

	e.publish(ctx, event)
	return event.ExternalRef
}

// publish sends a ledger event to the broker, if one is configured
func (e *engine) publish(ctx context.Context, event *domain.LedgerEvent) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish ledger event",
			zap.String("entry_id", event.EntryID),
			zap.Error(err),
		)
	}
}

// ledgerEvent builds the normalized event record for an entry
func (e *engine) ledgerEvent(token *schema.Token, entry *schema.LedgerEntry) *domain.LedgerEvent {
	event := &domain.LedgerEvent{
		EntryID:     entry.ID,
		TokenID:     token.ID,
		TokenSymbol: token.Symbol,
		EventType:   domain.EventType(entry.EntryType),
		Amount:      entry.Amount,
		ExternalRef: entry.ExternalRef,
		Timestamp:   entry.Timestamp,
	}
	if entry.FromIdentity != nil {
		from := domain.Identity(*entry.FromIdentity)
		event.From = &from
	}
	if entry.ToIdentity != nil {
		to := domain.Identity(*entry.ToIdentity)
		event.To = &to
	}
	return event
}
