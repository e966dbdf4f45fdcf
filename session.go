package ledger

// Session is the ephemeral, in-memory binding between a logged-in account
// and its working record sequence. The working records are a live view:
// every mutation through the store is written back to the account
// immediately, so export and merge always see the current state.
//
// A session is bound to exactly one account of one LedgerStore and becomes
// invalid once closed or replaced by a merge.
type Session struct {
	name    string
	records []Record
}

// Name returns the account the session is bound to.
func (s *Session) Name() string { return s.name }

// Records returns the current working record sequence. Callers must treat
// it as read-only and mutate only through the LedgerStore operations.
func (s *Session) Records() []Record { return s.records }
