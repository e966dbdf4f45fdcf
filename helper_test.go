package ledger

import (
	"errors"
	"testing"
)

// memMedium is an in-memory Medium for tests. failWrites makes every write
// fail, to exercise the surfaced-not-retried write error contract.
type memMedium struct {
	data       map[string][]byte
	failWrites bool
	writes     int
}

func newMemMedium() *memMedium {
	return &memMedium{data: make(map[string][]byte)}
}

func (m *memMedium) Read(key string) ([]byte, bool, error) {
	data, ok := m.data[key]
	return data, ok, nil
}

func (m *memMedium) Write(key string, data []byte) error {
	m.writes++
	if m.failWrites {
		return errors.New("medium refused the write")
	}
	m.data[key] = data
	return nil
}

// openTestStore returns an empty store over a fresh memory medium.
func openTestStore(t *testing.T) (*LedgerStore, *memMedium) {
	t.Helper()
	m := newMemMedium()
	return Open(m), m
}

// registerAndOpen registers an account and opens a session against it.
func registerAndOpen(t *testing.T, l *LedgerStore, name, password string) *Session {
	t.Helper()
	if err := l.Register(name, password); err != nil {
		t.Fatalf("Register(%q) returned an unexpected error: %v", name, err)
	}
	s, err := l.OpenSession(name)
	if err != nil {
		t.Fatalf("OpenSession(%q) returned an unexpected error: %v", name, err)
	}
	return s
}

func mustAdd(t *testing.T, l *LedgerStore, s *Session, r Record) {
	t.Helper()
	if err := l.AddRecord(s, r); err != nil {
		t.Fatalf("AddRecord(%+v) returned an unexpected error: %v", r, err)
	}
}

func sameRecords(a, b []Record) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
