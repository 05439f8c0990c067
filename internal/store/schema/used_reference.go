package schema

import (
	"time"
)

// UsedReference represents the used_references table - the dedup set of
// externally supplied payment references. The unique index on ExternalRef is
// the double-spend defense: claiming a reference is a single insert-if-absent.
type UsedReference struct {
	// ID is the record identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ExternalRef is the consumed payment reference (64 hex characters); unique across all records
	ExternalRef string `gorm:"column:external_ref;not null;uniqueIndex;type:text"`
	// PayerIdentity is the identity that presented the reference
	PayerIdentity string `gorm:"column:payer_identity;not null;type:text"`
	// AmountReceived is the external payment amount, in the payment system's base units
	AmountReceived int64 `gorm:"column:amount_received;not null"`
	// TokensGranted is the amount of tokens credited for the payment
	TokensGranted int64 `gorm:"column:tokens_granted;not null"`
	// CreatedAt is the timestamp when the reference was accepted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UsedReference model
func (UsedReference) TableName() string {
	return "used_references"
}
