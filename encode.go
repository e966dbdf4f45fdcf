package ledger

import (
	"encoding/json"
	"fmt"
	"time"
)

// This file contains the snapshot JSON codec. The document format is shared
// with earlier versions of the system and with its sync codes, so it is
// frozen: a top-level "users" mapping, an optional "currentUser", and an
// "exportedAt" timestamp.
//
// The codec is pure: it reads and produces data, never a live store.

// ScopeAll selects every account of the store for export.
const ScopeAll = "all"

// jaccount is the wire form of an account. Old exports stored the verifier
// under "password"; newer ones use "passwordHash". Both decode to the same
// verifier, and only "passwordHash" is ever written.
type jaccount struct {
	PasswordHash string   `json:"passwordHash,omitempty"`
	Password     string   `json:"password,omitempty"`
	Records      []Record `json:"records"`
}

// jdocument is the export envelope.
type jdocument struct {
	Users       map[string]jaccount `json:"users"`
	CurrentUser string              `json:"currentUser,omitempty"`
	ExportedAt  string              `json:"exportedAt,omitempty"`
}

func (a *Account) wire() jaccount {
	records := a.Records
	if records == nil {
		records = []Record{}
	}
	return jaccount{PasswordHash: a.Verifier, Records: records}
}

func (ja jaccount) account() *Account {
	verifier := ja.PasswordHash
	if verifier == "" {
		verifier = ja.Password
	}
	records := ja.Records
	if records == nil {
		records = []Record{}
	}
	return &Account{Verifier: verifier, Records: records}
}

// buildDocument projects the selected scope of the store into an envelope.
// scope is ScopeAll or a single account name; a single-account scope also
// designates that account as current.
func buildDocument(s Store, scope string, now time.Time) (jdocument, error) {
	doc := jdocument{
		Users:      make(map[string]jaccount),
		ExportedAt: now.UTC().Format(time.RFC3339),
	}
	if scope == ScopeAll {
		for name, acct := range s {
			doc.Users[name] = acct.wire()
		}
		return doc, nil
	}
	acct, ok := s[scope]
	if !ok {
		return doc, fmt.Errorf("export %q: %w", scope, ErrUnknownAccount)
	}
	doc.Users[scope] = acct.wire()
	doc.CurrentUser = scope
	return doc, nil
}

// EncodeJSON serializes the selected scope of the store as the pretty JSON
// export document.
func EncodeJSON(s Store, scope string) ([]byte, error) {
	doc, err := buildDocument(s, scope, time.Now())
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeJSON parses an export document into a snapshot. Anything that does
// not carry the "users" mapping fails with ErrMalformedSnapshot.
func DecodeJSON(data []byte) (*Snapshot, error) {
	var doc jdocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if doc.Users == nil {
		return nil, fmt.Errorf("%w: missing \"users\" mapping", ErrMalformedSnapshot)
	}
	snap := &Snapshot{Accounts: make(Store, len(doc.Users)), Designated: doc.CurrentUser}
	for name, ja := range doc.Users {
		snap.Accounts[name] = ja.account()
	}
	if doc.ExportedAt != "" {
		// Lenient: an unparseable timestamp degrades to zero, it is
		// envelope metadata and not part of the merged state.
		if t, err := time.Parse(time.RFC3339, doc.ExportedAt); err == nil {
			snap.ProducedAt = t
		}
	}
	return snap, nil
}

// ExportFilename returns the conventional file name for an export:
// ledger_<account>.json, or ledger_backup.json for the full store.
func ExportFilename(scope string) string {
	if scope == ScopeAll {
		return "ledger_backup.json"
	}
	return fmt.Sprintf("ledger_%s.json", scope)
}

// encodeAccounts serializes the bare account mapping, the shape the
// persistence medium holds under StoreKey.
func encodeAccounts(s Store) ([]byte, error) {
	users := make(map[string]jaccount, len(s))
	for name, acct := range s {
		users[name] = acct.wire()
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// decodeAccounts parses the persisted account mapping.
func decodeAccounts(data []byte) (Store, error) {
	var users map[string]jaccount
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceRead, err)
	}
	store := make(Store, len(users))
	for name, ja := range users {
		store[name] = ja.account()
	}
	return store, nil
}
