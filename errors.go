package ledger

import "errors"

// Domain errors returned by store, credential and codec operations. Callers
// are expected to match them with errors.Is and turn them into user-visible
// messages; the package itself never presents UI.
var (
	// ErrAccountExists is returned by Register when the name is taken.
	ErrAccountExists = errors.New("account already exists")

	// ErrUnknownAccount is returned when an operation names an account
	// that is not in the store.
	ErrUnknownAccount = errors.New("unknown account")

	// ErrWrongCredential is returned by callers that require a successful
	// verification (the core Verify reports a plain false instead).
	ErrWrongCredential = errors.New("wrong credential")

	// ErrHashingUnavailable is returned when no verifier can be derived.
	ErrHashingUnavailable = errors.New("password hashing unavailable")

	// ErrIndexOutOfRange is returned by DeleteRecord when the index does
	// not address a record in the current sequence.
	ErrIndexOutOfRange = errors.New("record index out of range")

	// ErrMalformedSnapshot is returned when an import artifact does not
	// decode to the expected document shape.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrPersistenceWrite is returned when the medium refuses a write.
	// Writes are never retried.
	ErrPersistenceWrite = errors.New("persistence write failed")

	// ErrPersistenceRead is returned by media on unreadable content. At
	// store startup it is recovered locally by substituting an empty
	// store, never propagated.
	ErrPersistenceRead = errors.New("persistence read failed")
)
