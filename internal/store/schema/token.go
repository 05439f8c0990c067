package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Token represents the tokens table - one fungible asset definition
type Token struct {
	// ID is the token identifier, derived from the genesis anchor reference or assigned at creation (ULID)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the human-readable token name
	Name string `gorm:"column:name;not null;type:text"`
	// Symbol is the short uppercase mnemonic used for lookup; unique across all tokens
	Symbol string `gorm:"column:symbol;not null;uniqueIndex;type:text"`
	// Decimals is the number of decimal places for display purposes
	Decimals int `gorm:"column:decimals;not null;default:0"`
	// TotalSupply is the running sum of all net mint/burn amounts; never negative
	TotalSupply int64 `gorm:"column:total_supply;not null;default:0;check:chk_tokens_total_supply,total_supply >= 0"`
	// MaxSupply is the supply ceiling; 0 means unlimited
	MaxSupply int64 `gorm:"column:max_supply;not null;default:0"`
	// CreatorIdentity is the normalized identity of the token's creator
	CreatorIdentity string `gorm:"column:creator_identity;not null;type:text;index"`
	// Metadata holds opaque caller-supplied token metadata
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// CreatedAt is the timestamp when the token was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Holders []Holder      `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
	Entries []LedgerEntry `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
