package ledger

// Merge reconciles an imported snapshot with the local store. Every account
// present in the snapshot replaces the local account of the same name
// wholesale, last writer wins at whole-account granularity. There is no
// record-level union and no conflict error: with no network, no clocks and
// no central authority, any finer reconciliation would have to infer intent
// the data cannot express.
//
// Accounts not named by the snapshot are left untouched. If the snapshot
// designates an account that exists after the merge, the session is
// (re)opened against it, replacing the current session without
// confirmation; otherwise an open session against a replaced account is
// re-bound so its working view reflects the imported records.
//
// Merge never fails on semantic grounds; the returned error is the persist
// outcome.
func (l *LedgerStore) Merge(snap *Snapshot) error {
	for name, acct := range snap.Accounts {
		l.store[name] = acct.Clone()
	}
	switch {
	case snap.Designated != "":
		if _, ok := l.store[snap.Designated]; ok {
			l.session = &Session{
				name:    snap.Designated,
				records: l.store[snap.Designated].Records,
			}
		}
	case l.session != nil:
		if _, replaced := snap.Accounts[l.session.name]; replaced {
			l.session.records = l.store[l.session.name].Records
		}
	}
	return l.Persist()
}
