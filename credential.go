package ledger

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log"
)

// HashPassword derives the stored verifier from a plaintext password: the
// hexadecimal SHA-256 digest of the password bytes. The derivation is
// deterministic and unsalted on purpose: verifiers travel inside exported
// snapshots and must verify identically on every device, including against
// digests produced by earlier versions of the system.
func HashPassword(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// legacyVerifier is the reversible obfuscation some early stores used when
// no digest primitive was available: plain base64 of the password. It is
// accepted on verify only, never produced, and flagged as reduced security
// when matched.
func legacyVerifier(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

// Register creates a new empty account guarded by password. It fails with
// ErrAccountExists when the name is taken, and persists the store on
// success.
func (l *LedgerStore) Register(name, password string) error {
	if _, ok := l.store[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrAccountExists)
	}
	verifier, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("register %q: %w: %v", name, ErrHashingUnavailable, err)
	}
	l.store[name] = &Account{Verifier: verifier, Records: []Record{}}
	return l.Persist()
}

// Verify checks password against the stored verifier of name. It returns
// false (with a nil error) on mismatch, and fails with ErrUnknownAccount
// when the account does not exist. Verify never mutates the store.
func (l *LedgerStore) Verify(name, password string) (bool, error) {
	acct, ok := l.store[name]
	if !ok {
		return false, fmt.Errorf("verify %q: %w", name, ErrUnknownAccount)
	}
	candidate, err := HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("verify %q: %w: %v", name, ErrHashingUnavailable, err)
	}
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(acct.Verifier)) == 1 {
		return true, nil
	}
	if acct.Verifier == legacyVerifier(password) {
		log.Printf("warning: account %q uses a legacy reversible verifier; re-register to upgrade", name)
		return true, nil
	}
	return false, nil
}
