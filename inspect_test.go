package ledger

import (
	"errors"
	"strings"
	"testing"
)

func TestQuery(t *testing.T) {
	doc, err := EncodeJSON(testStore(), ScopeAll)
	if err != nil {
		t.Fatalf("EncodeJSON returned an unexpected error: %v", err)
	}

	got, err := Query(doc, "$.users.alice.records[1].note")
	if err != nil {
		t.Fatalf("Query returned an unexpected error: %v", err)
	}
	if got != `"salary"` {
		t.Errorf("Query = %s, want %q", got, `"salary"`)
	}

	got, err = Query(doc, "$.users.bob.records")
	if err != nil {
		t.Fatalf("Query returned an unexpected error: %v", err)
	}
	if !strings.Contains(got, `"bus"`) {
		t.Errorf("Query over records = %s, want it to contain the note", got)
	}
}

func TestQueryErrors(t *testing.T) {
	if _, err := Query([]byte("nope"), "$.users"); !errors.Is(err, ErrMalformedSnapshot) {
		t.Errorf("Query on non-JSON = %v, want ErrMalformedSnapshot", err)
	}
	doc, _ := EncodeJSON(testStore(), ScopeAll)
	if _, err := Query(doc, "$["); err == nil {
		t.Errorf("Query with broken path = nil, want error")
	}
}
