package ledger

import (
	"slices"
)

// Account is a named credential plus its record sequence. It is the unit of
// both isolation and of merge replacement: deletion and merge always act on
// the whole account, never on part of it.
type Account struct {
	// Verifier is the one-way derivation of the password. The password
	// itself is never stored or exported.
	Verifier string
	// Records is the ordered record sequence. Order is meaningful:
	// records are addressed by position.
	Records []Record
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	return &Account{
		Verifier: a.Verifier,
		Records:  slices.Clone(a.Records),
	}
}

// Store is the authoritative mapping from account name to account state.
// Names are case-sensitive and unique by construction.
type Store map[string]*Account

// Names returns all account names in sorted order.
func (s Store) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clone returns a deep copy of the store.
func (s Store) Clone() Store {
	c := make(Store, len(s))
	for name, acct := range s {
		c[name] = acct.Clone()
	}
	return c
}
