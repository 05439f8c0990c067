package domain

import (
	"regexp"
	"strings"
)

// txRefPattern matches a 64-character lowercase hex transaction id
var txRefPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// TxRef is an external transaction reference: the id assigned by the
// notarizing ledger or an externally supplied payment proof. Expected to be
// 64 hex characters; the format is checked, not cryptographically enforced.
type TxRef string

// NewTxRef normalizes and validates a raw external reference
func NewTxRef(raw string) (TxRef, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !txRefPattern.MatchString(normalized) {
		return "", ErrInvalidTxRef
	}
	return TxRef(normalized), nil
}

// String returns the string representation of the reference
func (r TxRef) String() string {
	return string(r)
}
