package ledger

import "testing"

// TestSyncCodeAcrossDevices walks the full manual-sync flow: register and
// record on one device, carry a sync code out-of-band, merge on a second
// device with an independent store.
func TestSyncCodeAcrossDevices(t *testing.T) {
	deviceA := Open(newMemMedium())
	if err := deviceA.Register("alice", "pw1"); err != nil {
		t.Fatalf("Register returned an unexpected error: %v", err)
	}
	s, err := deviceA.OpenSession("alice")
	if err != nil {
		t.Fatalf("OpenSession returned an unexpected error: %v", err)
	}
	records := []Record{
		{Date: "2024-01-05", Amount: A(50), Category: "餐饮", Note: ""},
		{Date: "2024-01-10", Amount: A(2000), Category: "收入", Note: "salary"},
	}
	for _, r := range records {
		mustAdd(t, deviceA, s, r)
	}

	code, err := EncodeSyncCode(deviceA.Store(), "alice")
	if err != nil {
		t.Fatalf("EncodeSyncCode returned an unexpected error: %v", err)
	}

	// The token travels out-of-band; the receiving device starts fresh.
	deviceB := Open(newMemMedium())
	snap, err := DecodeSyncCode(code)
	if err != nil {
		t.Fatalf("DecodeSyncCode returned an unexpected error: %v", err)
	}
	if err := deviceB.Merge(snap); err != nil {
		t.Fatalf("Merge returned an unexpected error: %v", err)
	}

	got := deviceB.Store()["alice"]
	if got == nil {
		t.Fatalf("account did not arrive on the second device")
	}
	if !sameRecords(got.Records, records) {
		t.Errorf("records on second device = %+v, want %+v", got.Records, records)
	}

	// The designated-account rule re-opens the session on the importing
	// device, and credentials verify there because the verifier traveled
	// with the account.
	if sess := deviceB.Session(); sess == nil || sess.Name() != "alice" {
		t.Errorf("session on second device = %+v, want bound to alice", sess)
	}
	if ok, err := deviceB.Verify("alice", "pw1"); err != nil || !ok {
		t.Errorf("Verify on second device = (%v, %v), want (true, nil)", ok, err)
	}

	summary := Summarize(deviceB.Session().Records())
	if !summary.Balance.Equal(A(1950)) {
		t.Errorf("balance on second device = %s, want 1950", summary.Balance)
	}
}

// TestJSONExportAcrossDevices covers the file-based variant of the same
// flow, including idempotence of a second import.
func TestJSONExportAcrossDevices(t *testing.T) {
	deviceA := Open(newMemMedium())
	if err := deviceA.Register("alice", "pw1"); err != nil {
		t.Fatalf("Register returned an unexpected error: %v", err)
	}
	s, _ := deviceA.OpenSession("alice")
	mustAdd(t, deviceA, s, Record{Date: "2024-01-05", Amount: A(50), Category: "餐饮"})

	doc, err := EncodeJSON(deviceA.Store(), ScopeAll)
	if err != nil {
		t.Fatalf("EncodeJSON returned an unexpected error: %v", err)
	}

	deviceB := Open(newMemMedium())
	snap, err := DecodeJSON(doc)
	if err != nil {
		t.Fatalf("DecodeJSON returned an unexpected error: %v", err)
	}
	if err := deviceB.Merge(snap); err != nil {
		t.Fatalf("Merge returned an unexpected error: %v", err)
	}
	before := deviceB.Store().Clone()

	// Importing the same artifact again changes nothing.
	snap2, err := DecodeJSON(doc)
	if err != nil {
		t.Fatalf("DecodeJSON returned an unexpected error: %v", err)
	}
	if err := deviceB.Merge(snap2); err != nil {
		t.Fatalf("second Merge returned an unexpected error: %v", err)
	}
	for name, acct := range before {
		got := deviceB.Store()[name]
		if got.Verifier != acct.Verifier || !sameRecords(got.Records, acct.Records) {
			t.Errorf("account %q changed on repeated import", name)
		}
	}
}
