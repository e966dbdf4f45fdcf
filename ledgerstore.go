package ledger

import (
	"fmt"
	"log"
	"slices"
)

// StoreKey is the fixed key under which the full store lives in the
// persistence medium. It is shared with earlier versions of the system and
// must not change.
const StoreKey = "ledger_users"

// LedgerStore owns the persisted account mapping and the at-most-one live
// session against it. All mutations go through it; it persists the store
// after every mutating operation.
type LedgerStore struct {
	medium  Medium
	store   Store
	session *Session
}

// Open loads the store from the medium. A missing or unreadable medium
// degrades to an empty store with a logged warning. Startup never fails
// on corruption, it trades data-loss visibility for availability.
func Open(m Medium) *LedgerStore {
	l := &LedgerStore{medium: m, store: Store{}}
	data, ok, err := m.Read(StoreKey)
	if err != nil {
		log.Printf("warning: cannot read store, starting empty: %v", err)
		return l
	}
	if !ok {
		return l
	}
	store, err := decodeAccounts(data)
	if err != nil {
		log.Printf("warning: store content is malformed, starting empty: %v", err)
		return l
	}
	l.store = store
	return l
}

// Store returns the live account mapping. Callers must treat it as
// read-only; mutations go through the LedgerStore operations.
func (l *LedgerStore) Store() Store { return l.store }

// AccountNames returns all account names in sorted order.
func (l *LedgerStore) AccountNames() []string { return l.store.Names() }

// Persist writes the full store back to the medium. It is idempotent; a
// failed write is reported to the caller and never retried.
func (l *LedgerStore) Persist() error {
	data, err := encodeAccounts(l.store)
	if err != nil {
		return fmt.Errorf("%w: encode store: %v", ErrPersistenceWrite, err)
	}
	return l.medium.Write(StoreKey, data)
}

// OpenSession binds a session to the named account, replacing any session
// currently open. The caller is expected to have verified credentials.
func (l *LedgerStore) OpenSession(name string) (*Session, error) {
	acct, ok := l.store[name]
	if !ok {
		return nil, fmt.Errorf("open session %q: %w", name, ErrUnknownAccount)
	}
	l.session = &Session{name: name, records: acct.Records}
	return l.session, nil
}

// Session returns the currently open session, or nil.
func (l *LedgerStore) Session() *Session { return l.session }

// writeBack copies the session's working records into its account. The
// account always exists while a session is open: sessions are replaced,
// never left dangling, when their account is deleted or merged over.
func (l *LedgerStore) writeBack(s *Session) {
	l.store[s.name].Records = s.records
}

// AddRecord appends a record to the session's working sequence, writes it
// back and persists.
func (l *LedgerStore) AddRecord(s *Session, r Record) error {
	s.records = append(s.records, r)
	l.writeBack(s)
	return l.Persist()
}

// DeleteRecord removes the record at index from the session's working
// sequence. The index is validated against the sequence as it is now, so a
// position computed against stale state is rejected with ErrIndexOutOfRange
// and the sequence is left unchanged.
func (l *LedgerStore) DeleteRecord(s *Session, index int) error {
	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("delete record %d of %d: %w", index, len(s.records), ErrIndexOutOfRange)
	}
	s.records = slices.Delete(s.records, index, index+1)
	l.writeBack(s)
	return l.Persist()
}

// CloseSession writes the session back, persists, and clears it.
func (l *LedgerStore) CloseSession(s *Session) error {
	l.writeBack(s)
	if l.session == s {
		l.session = nil
	}
	return l.Persist()
}

// DeleteAccount removes the whole account. If a session is open against
// it, the session is closed first. Accounts are never partially deleted.
func (l *LedgerStore) DeleteAccount(name string) error {
	if _, ok := l.store[name]; !ok {
		return fmt.Errorf("delete account %q: %w", name, ErrUnknownAccount)
	}
	if l.session != nil && l.session.name == name {
		l.session = nil
	}
	delete(l.store, name)
	return l.Persist()
}

// Close is the teardown hook: a final write-back and persist of the active
// session, best-effort. The medium may refuse the write at teardown; the
// error is reported but there is nothing left to roll back.
func (l *LedgerStore) Close() error {
	if l.session != nil {
		l.writeBack(l.session)
		l.session = nil
	}
	return l.Persist()
}
