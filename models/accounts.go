package models

import "encoding/json"

// Accounts wraps the account list found under the wildcard key of the
// mail client's config document. Elements are forwarded verbatim.
type Accounts struct {
	Accounts json.RawMessage `json:"accounts"`
}

// EmptyAccountList is the JSON literal returned when no accounts are known.
var EmptyAccountList = json.RawMessage(`[]`)

// NewEmptyAccounts returns an [Accounts] holding an empty list.
func NewEmptyAccounts() Accounts {
	return Accounts{Accounts: EmptyAccountList}
}
