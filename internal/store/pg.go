package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/civicstack/token-ledger/internal/domain"
	"github.com/civicstack/token-ledger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance.
// The gorm connection must be opened with TranslateError enabled so unique
// constraint violations surface as gorm.ErrDuplicatedKey.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	// database/sql treats MaxIdleConns above MaxOpenConns as MaxOpenConns anyway
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CreateToken inserts a token definition and its genesis entry in a single transaction
func (s *pgStore) CreateToken(ctx context.Context, token *schema.Token, genesis *schema.LedgerEntry) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(token).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrSymbolTaken
			}
			return fmt.Errorf("failed to create token: %w", err)
		}

		if genesis != nil {
			if err := tx.Create(genesis).Error; err != nil {
				return fmt.Errorf("failed to create genesis entry: %w", err)
			}
		}

		return nil
	})
}

// GetTokenByID retrieves a token by its id
func (s *pgStore) GetTokenByID(ctx context.Context, id string) (*schema.Token, error) {
	var token schema.Token
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return &token, nil
}

// GetTokenBySymbol retrieves a token by its normalized symbol
func (s *pgStore) GetTokenBySymbol(ctx context.Context, symbol string) (*schema.Token, error) {
	var token schema.Token
	err := s.db.WithContext(ctx).Where("symbol = ?", symbol).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token by symbol: %w", err)
	}
	return &token, nil
}

// ListTokens retrieves all token definitions
func (s *pgStore) ListTokens(ctx context.Context) ([]*schema.Token, error) {
	var tokens []*schema.Token
	err := s.db.WithContext(ctx).Order("created_at ASC").Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return tokens, nil
}

// ListTokensByCreator retrieves tokens created by the given identity
func (s *pgStore) ListTokensByCreator(ctx context.Context, creator domain.Identity) ([]*schema.Token, error) {
	var tokens []*schema.Token
	err := s.db.WithContext(ctx).
		Where("creator_identity = ?", creator.String()).
		Order("created_at ASC").
		Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens by creator: %w", err)
	}
	return tokens, nil
}

// ApplyMint atomically increments supply, upserts the holder balance, and appends the entry
func (s *pgStore) ApplyMint(ctx context.Context, token *schema.Token, entry *schema.LedgerEntry) (int64, error) {
	var newBalance int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		balance, err := applyMint(tx, token, entry)
		if err != nil {
			return err
		}
		newBalance = balance
		return nil
	})
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}

// ApplyRedemption claims an external payment reference and applies the granted
// mint in one transaction
func (s *pgStore) ApplyRedemption(ctx context.Context, token *schema.Token, entry *schema.LedgerEntry, ref *schema.UsedReference) (int64, error) {
	var newBalance int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_ref"}},
			DoNothing: true,
		}).Create(ref)
		if res.Error != nil {
			return fmt.Errorf("failed to claim reference: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrReferenceAlreadyUsed
		}

		balance, err := applyMint(tx, token, entry)
		if err != nil {
			return err
		}
		newBalance = balance
		return nil
	})
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}

// applyMint performs the mint mutation inside an open transaction
func applyMint(tx *gorm.DB, token *schema.Token, entry *schema.LedgerEntry) (int64, error) {
	// Guarded increment: the WHERE clause enforces the max-supply ceiling so
	// concurrent mints cannot both pass a pre-read check.
	res := tx.Model(&schema.Token{}).
		Where("id = ? AND (max_supply = 0 OR total_supply + ? <= max_supply)", token.ID, entry.Amount).
		Update("total_supply", gorm.Expr("total_supply + ?", entry.Amount))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to increment total supply: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var current schema.Token
		if err := tx.Where("id = ?", token.ID).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, domain.ErrTokenNotFound
			}
			return 0, fmt.Errorf("failed to re-read token: %w", err)
		}
		return 0, &domain.SupplyExceededError{
			TokenID:     current.ID,
			TotalSupply: current.TotalSupply,
			MaxSupply:   current.MaxSupply,
			Requested:   entry.Amount,
		}
	}

	balance, err := upsertBalance(tx, token.ID, *entry.ToIdentity, entry.Amount)
	if err != nil {
		return 0, err
	}

	if err := tx.Create(entry).Error; err != nil {
		return 0, fmt.Errorf("failed to create mint entry: %w", err)
	}

	return balance, nil
}

// GetEntryByID retrieves a ledger entry by its id
func (s *pgStore) GetEntryByID(ctx context.Context, id string) (*schema.LedgerEntry, error) {
	var entry schema.LedgerEntry
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return &entry, nil
}

// ApplyBurn atomically decrements the holder balance and supply, and appends the entry
func (s *pgStore) ApplyBurn(ctx context.Context, token *schema.Token, entry *schema.LedgerEntry) (int64, error) {
	var newBalance int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		balance, err := debitBalance(tx, token.ID, *entry.FromIdentity, entry.Amount)
		if err != nil {
			return err
		}
		newBalance = balance

		res := tx.Model(&schema.Token{}).
			Where("id = ?", token.ID).
			Update("total_supply", gorm.Expr("total_supply - ?", entry.Amount))
		if res.Error != nil {
			return fmt.Errorf("failed to decrement total supply: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrTokenNotFound
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to create burn entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}

// ApplyTransfer atomically moves balance from sender to recipient and appends the entry
func (s *pgStore) ApplyTransfer(ctx context.Context, token *schema.Token, entry *schema.LedgerEntry) (int64, int64, error) {
	var senderBalance, recipientBalance int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		balance, err := debitBalance(tx, token.ID, *entry.FromIdentity, entry.Amount)
		if err != nil {
			return err
		}
		senderBalance = balance

		balance, err = upsertBalance(tx, token.ID, *entry.ToIdentity, entry.Amount)
		if err != nil {
			return err
		}
		recipientBalance = balance

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to create transfer entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return senderBalance, recipientBalance, nil
}

// ApplyConfirmTransfer atomically spends inputs, adjusts balances, appends
// output entries, and clears the reservation
func (s *pgStore) ApplyConfirmTransfer(ctx context.Context, input ConfirmTransferInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, in := range input.Inputs {
			// Spend exactly once: the guard on spent_by makes a re-confirm of
			// the same input a detected conflict, not a double application.
			res := tx.Model(&schema.LedgerEntry{}).
				Where("id = ? AND spent_by = ''", in.EntryID).
				Updates(map[string]interface{}{
					"spent_by":       input.ExternalTxRef.String(),
					"reserved_by":    "",
					"reserved_until": nil,
				})
			if res.Error != nil {
				return fmt.Errorf("failed to spend entry %s: %w", in.EntryID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("entry %s: %w", in.EntryID, domain.ErrEntryAlreadySpent)
			}

			if _, err := debitBalance(tx, input.TokenID, in.Sender.String(), in.Amount); err != nil {
				return err
			}
		}

		for _, out := range input.OutputEntries {
			if err := tx.Create(out).Error; err != nil {
				return fmt.Errorf("failed to create transfer output entry: %w", err)
			}
			if _, err := upsertBalance(tx, input.TokenID, *out.ToIdentity, out.Amount); err != nil {
				return err
			}
		}

		if input.ReservationID != "" {
			if err := releaseReservation(tx, input.ReservationID); err != nil {
				return err
			}
		}

		return nil
	})
}

// GetBalance returns the holder's balance for a token; 0 when no holder record exists
func (s *pgStore) GetBalance(ctx context.Context, tokenID string, holder domain.Identity) (int64, error) {
	var record schema.Holder
	err := s.db.WithContext(ctx).
		Where("token_id = ? AND holder_identity = ?", tokenID, holder.String()).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return record.Balance, nil
}

// ListHoldings returns the holder's positive balances across all tokens
func (s *pgStore) ListHoldings(ctx context.Context, holder domain.Identity) ([]*Holding, error) {
	var records []schema.Holder
	err := s.db.WithContext(ctx).
		Preload("Token").
		Where("holder_identity = ? AND balance > 0", holder.String()).
		Order("token_id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	holdings := make([]*Holding, 0, len(records))
	for i := range records {
		token := records[i].Token
		holdings = append(holdings, &Holding{Token: &token, Balance: records[i].Balance})
	}
	return holdings, nil
}

// ListEntriesByToken returns a token's ledger entries, newest first
func (s *pgStore) ListEntriesByToken(ctx context.Context, tokenID string, limit int) ([]*schema.LedgerEntry, error) {
	q := s.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var entries []*schema.LedgerEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// ListUnspentEntries returns the holder's unspent, unreserved credit entries in id order
func (s *pgStore) ListUnspentEntries(ctx context.Context, tokenID string, holder domain.Identity) ([]*schema.LedgerEntry, error) {
	var entries []*schema.LedgerEntry
	err := s.db.WithContext(ctx).
		Where("token_id = ? AND to_identity = ? AND spent_by = ''", tokenID, holder.String()).
		Where("reserved_by = '' OR reserved_until < now()").
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unspent entries: %w", err)
	}
	return entries, nil
}

// ReserveEntries places an expiring reservation on the given unspent entries
func (s *pgStore) ReserveEntries(ctx context.Context, entryIDs []string, reservationID string, until time.Time) error {
	if len(entryIDs) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schema.LedgerEntry{}).
			Where("id IN ? AND spent_by = ''", entryIDs).
			Where("reserved_by = '' OR reserved_until < now()").
			Updates(map[string]interface{}{
				"reserved_by":    reservationID,
				"reserved_until": until,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to reserve entries: %w", res.Error)
		}
		// All-or-nothing: a partial reservation means another plan holds some
		// of the selected entries, so the transaction rolls back.
		if res.RowsAffected != int64(len(entryIDs)) {
			return domain.ErrEntryReserved
		}
		return nil
	})
}

// ReleaseReservation clears all entries reserved under the given reservation id
func (s *pgStore) ReleaseReservation(ctx context.Context, reservationID string) error {
	return releaseReservation(s.db.WithContext(ctx), reservationID)
}

// SetEntryExternalRef attaches an anchor reference to an entry
func (s *pgStore) SetEntryExternalRef(ctx context.Context, entryID string, ref string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.LedgerEntry{}).
		Where("id = ?", entryID).
		Update("external_ref", ref).Error
	if err != nil {
		return fmt.Errorf("failed to set external ref: %w", err)
	}
	return nil
}

// ListUnanchoredEntries returns entries still missing an anchor reference, oldest first
func (s *pgStore) ListUnanchoredEntries(ctx context.Context, olderThan time.Time, limit int) ([]*schema.LedgerEntry, error) {
	q := s.db.WithContext(ctx).
		Where("external_ref = '' AND created_at < ?", olderThan).
		Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var entries []*schema.LedgerEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list unanchored entries: %w", err)
	}
	return entries, nil
}

// ClaimReference records an external payment reference as consumed
func (s *pgStore) ClaimReference(ctx context.Context, ref *schema.UsedReference) error {
	// Single atomic insert-if-absent over the unique index on external_ref.
	// A zero-row insert means the reference was consumed before.
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_ref"}},
			DoNothing: true,
		}).
		Create(ref)
	if res.Error != nil {
		return fmt.Errorf("failed to claim reference: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrReferenceAlreadyUsed
	}
	return nil
}

// IsReferenceUsed checks whether an external payment reference was already consumed
func (s *pgStore) IsReferenceUsed(ctx context.Context, externalRef string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.UsedReference{}).
		Where("external_ref = ?", externalRef).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check reference: %w", err)
	}
	return count > 0, nil
}

// GetReference retrieves the consumption record for a reference
func (s *pgStore) GetReference(ctx context.Context, externalRef string) (*schema.UsedReference, error) {
	var record schema.UsedReference
	err := s.db.WithContext(ctx).
		Where("external_ref = ?", externalRef).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reference: %w", err)
	}
	return &record, nil
}

// upsertBalance lazily creates or atomically increments a holder balance and
// returns the resulting balance
func upsertBalance(tx *gorm.DB, tokenID string, identity string, amount int64) (int64, error) {
	holder := schema.Holder{
		TokenID:        tokenID,
		HolderIdentity: identity,
		Balance:        amount,
	}
	err := tx.Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "token_id"}, {Name: "holder_identity"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"balance":    gorm.Expr("holders.balance + ?", amount),
				"updated_at": gorm.Expr("now()"),
			}),
		},
		clause.Returning{},
	).Create(&holder).Error
	if err != nil {
		return 0, fmt.Errorf("failed to upsert balance: %w", err)
	}
	return holder.Balance, nil
}

// debitBalance atomically decrements a holder balance, rejecting overdraw, and
// returns the resulting balance
func debitBalance(tx *gorm.DB, tokenID string, identity string, amount int64) (int64, error) {
	// The balance guard in the WHERE clause is the overdraw defense: two
	// concurrent debits cannot both pass a pre-read balance check.
	res := tx.Model(&schema.Holder{}).
		Where("token_id = ? AND holder_identity = ? AND balance >= ?", tokenID, identity, amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": gorm.Expr("now()"),
		})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to debit balance: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var current schema.Holder
		available := int64(0)
		err := tx.Where("token_id = ? AND holder_identity = ?", tokenID, identity).First(&current).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("failed to re-read balance: %w", err)
		}
		if err == nil {
			available = current.Balance
		}
		return 0, &domain.InsufficientBalanceError{
			TokenID:   tokenID,
			Holder:    domain.Identity(identity),
			Available: available,
			Required:  amount,
		}
	}

	var updated schema.Holder
	if err := tx.Where("token_id = ? AND holder_identity = ?", tokenID, identity).First(&updated).Error; err != nil {
		return 0, fmt.Errorf("failed to read debited balance: %w", err)
	}
	return updated.Balance, nil
}

func releaseReservation(tx *gorm.DB, reservationID string) error {
	err := tx.Model(&schema.LedgerEntry{}).
		Where("reserved_by = ?", reservationID).
		Updates(map[string]interface{}{
			"reserved_by":    "",
			"reserved_until": nil,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to release reservation: %w", err)
	}
	return nil
}
