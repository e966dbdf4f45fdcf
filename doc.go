// Package ledger implements a local-first personal ledger: named accounts,
// each holding a password verifier and an ordered list of expense/income
// records, persisted on a single device with no backend server.
//
// Because there is no server, consistency across devices is manual: a
// snapshot of one or all accounts is exported as a JSON document or as a
// compact sync code, moved out-of-band (file share, clipboard), and merged
// into the store on the other device. The merge policy is deliberately
// simple: an imported account replaces the local account of the same name
// wholesale, and accounts absent from the snapshot are untouched.
//
// The core functionalities include:
//   - Account management: registration with a one-way password verifier,
//     credential verification, account deletion.
//   - Record keeping: appending and deleting ledger records through a live
//     session bound to exactly one account, persisted after every change.
//   - Snapshot codec: a human-readable JSON export and an equivalent
//     copy-pasteable sync code, both losslessly round-tripping arbitrary
//     Unicode notes and categories.
//   - Merging: reconciling an imported snapshot with local state under the
//     last-writer-wins, whole-account replacement rule.
//   - Reporting: summaries, category breakdowns and monthly trends that
//     presentation layers consume without touching the store.
//
// This package serves as the foundational logic for the `lgr` command-line
// tool.
package ledger
