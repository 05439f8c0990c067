package schema

import (
	"time"
)

// Holder represents the holders table - the balance of one identity for one token
type Holder struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID references the token being held
	TokenID string `gorm:"column:token_id;not null;type:text;uniqueIndex:idx_holders_token_identity,priority:1"`
	// HolderIdentity is the normalized identity owning the balance
	HolderIdentity string `gorm:"column:holder_identity;not null;type:text;uniqueIndex:idx_holders_token_identity,priority:2"`
	// Balance is the current balance in base units; never negative
	Balance int64 `gorm:"column:balance;not null;default:0;check:chk_holders_balance,balance >= 0"`
	// CreatedAt is the timestamp when this holder record was first created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last balance mutation
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Token Token `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Holder model
func (Holder) TableName() string {
	return "holders"
}
