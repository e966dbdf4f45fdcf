package ledger

import "time"

// Snapshot is an immutable, transferable projection of part or all of a
// store. It is pure data: decoding an artifact yields a snapshot that holds
// no reference into any live store.
type Snapshot struct {
	// Accounts is the subset of the store carried by the snapshot.
	Accounts Store
	// Designated is the account the producing device considered active,
	// or "". After a merge the session is re-opened against it.
	Designated string
	// ProducedAt is the export timestamp, zero when the artifact did not
	// carry one.
	ProducedAt time.Time
}
