package ledger

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSyncCodeRoundTripWithUnicode(t *testing.T) {
	store := Store{
		"alice": &Account{
			Verifier: "aaaa",
			Records: []Record{
				{Date: "2024-01-10", Amount: A(2000), Category: "收入", Note: "备注 emoji 🎉"},
			},
		},
	}
	code, err := EncodeSyncCode(store, "alice")
	if err != nil {
		t.Fatalf("EncodeSyncCode returned an unexpected error: %v", err)
	}
	if strings.ContainsAny(code, " \n") {
		t.Errorf("sync code is not a single token: %q", code)
	}
	snap, err := DecodeSyncCode(code)
	if err != nil {
		t.Fatalf("DecodeSyncCode returned an unexpected error: %v", err)
	}
	records := snap.Accounts["alice"].Records
	if len(records) != 1 {
		t.Fatalf("decoded %d records, want 1", len(records))
	}
	if got := records[0].Note; got != "备注 emoji 🎉" {
		t.Errorf("note = %q, want it byte-for-byte", got)
	}
	if got := records[0].Category; got != "收入" {
		t.Errorf("category = %q, want %q", got, "收入")
	}
	if snap.Designated != "alice" {
		t.Errorf("designated = %q, want %q", snap.Designated, "alice")
	}
}

func TestDecodeSyncCodeLegacyEncoding(t *testing.T) {
	// A token from the variant that skipped the UTF-8 step: base64 over
	// the Latin-1 code units of the document text.
	doc := `{"users":{"rené":{"passwordHash":"cafe","records":[{"date":"2024-03-01","amount":12,"category":"café","note":"crème"}]}},"currentUser":"rené"}`
	latin1 := make([]byte, 0, len(doc))
	for _, r := range doc {
		if r > 0xFF {
			t.Fatalf("legacy fixture contains a code point beyond Latin-1: %q", r)
		}
		latin1 = append(latin1, byte(r))
	}
	if utf8.Valid(latin1) {
		t.Fatalf("legacy fixture decodes as UTF-8; it would not exercise the fallback")
	}
	code := base64.StdEncoding.EncodeToString(latin1)

	snap, err := DecodeSyncCode(code)
	if err != nil {
		t.Fatalf("DecodeSyncCode on legacy token returned an unexpected error: %v", err)
	}
	acct := snap.Accounts["rené"]
	if acct == nil {
		t.Fatalf("legacy token lost the account name: %v", snap.Accounts.Names())
	}
	if got := acct.Records[0].Category; got != "café" {
		t.Errorf("category = %q, want %q", got, "café")
	}
	if got := acct.Records[0].Note; got != "crème" {
		t.Errorf("note = %q, want %q", got, "crème")
	}
}

func TestDecodeSyncCodeMalformed(t *testing.T) {
	cases := []string{
		"",
		"not base64!!!",
		base64.StdEncoding.EncodeToString([]byte("not json")),
		base64.StdEncoding.EncodeToString([]byte(`{"currentUser":"x"}`)),
	}
	for _, code := range cases {
		if _, err := DecodeSyncCode(code); !errors.Is(err, ErrMalformedSnapshot) {
			t.Errorf("DecodeSyncCode(%q) = %v, want ErrMalformedSnapshot", code, err)
		}
	}
}

func TestDecodeSyncCodeTrimsWhitespace(t *testing.T) {
	code, err := EncodeSyncCode(testStore(), ScopeAll)
	if err != nil {
		t.Fatalf("EncodeSyncCode returned an unexpected error: %v", err)
	}
	// Pasted tokens routinely pick up surrounding whitespace.
	if _, err := DecodeSyncCode("  " + code + "\n"); err != nil {
		t.Errorf("DecodeSyncCode on padded token = %v, want nil", err)
	}
}
