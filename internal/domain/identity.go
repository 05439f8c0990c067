package domain

import "strings"

// Identity is the normalized holder identity at the ledger boundary.
// Callers may hold a DID, a wallet public key, or any other opaque external
// identity key; the ledger only requires that it is non-empty and stable.
type Identity string

// NewIdentity normalizes a raw identity string. Validation of the identity's
// meaning (DID resolution, key ownership) belongs to the auth subsystem, not
// the ledger.
func NewIdentity(raw string) (Identity, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidIdentity
	}
	return Identity(trimmed), nil
}

// String returns the string representation of the identity
func (i Identity) String() string {
	return string(i)
}
