package schema

import (
	"time"
)

// EntryType represents the kind of ledger mutation an entry records
type EntryType string

const (
	// EntryTypeGenesis indicates token creation
	EntryTypeGenesis EntryType = "genesis"
	// EntryTypeMint indicates supply and balance increase
	EntryTypeMint EntryType = "mint"
	// EntryTypeBurn indicates supply and balance decrease
	EntryTypeBurn EntryType = "burn"
	// EntryTypeTransfer indicates balance movement between holders
	EntryTypeTransfer EntryType = "transfer"
)

// LedgerEntry represents the ledger_entries table - the immutable log of one
// balance mutation. Entries are append-only: after creation only ExternalRef,
// SpentBy and the reservation columns may change, each from empty to set.
type LedgerEntry struct {
	// ID is the entry identifier (ULID, lexically ordered by creation time)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TokenID references the token this entry mutates
	TokenID string `gorm:"column:token_id;not null;type:text;index:idx_entries_token_to,priority:1"`
	// EntryType identifies the mutation kind (genesis, mint, burn, transfer)
	EntryType EntryType `gorm:"column:entry_type;not null;type:text"`
	// FromIdentity is the debited identity (nil for genesis/mint)
	FromIdentity *string `gorm:"column:from_identity;type:text"`
	// ToIdentity is the credited identity (nil for burn)
	ToIdentity *string `gorm:"column:to_identity;type:text;index:idx_entries_token_to,priority:2"`
	// Amount is the mutation amount in base units
	Amount int64 `gorm:"column:amount;not null"`
	// ExternalRef is the anchor reference attached after notarization; empty if anchoring failed or is pending
	ExternalRef string `gorm:"column:external_ref;not null;default:'';type:text;index"`
	// SpentBy is the external reference that consumed this entry as a transfer input; empty while unspent
	SpentBy string `gorm:"column:spent_by;not null;default:'';type:text"`
	// ReservedBy ties this entry to an in-flight transfer plan; empty when unreserved
	ReservedBy string `gorm:"column:reserved_by;not null;default:'';type:text"`
	// ReservedUntil is the reservation expiry; reservations past this instant are reclaimable
	ReservedUntil *time.Time `gorm:"column:reserved_until;type:timestamptz"`
	// Notes holds caller-supplied context for the mutation
	Notes string `gorm:"column:notes;not null;default:'';type:text"`
	// Timestamp is when the mutation was applied
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Token Token `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
