// Package reconcile implements the reconciliation engine between the
// authoritative identity records in the document store and the accounts in
// the remote directory.
//
// The engine processes one record at a time: derive the principal name
// from the source UID, look up the account, then create it, patch the
// drifted attributes, or skip. The differ decides create-vs-update-vs-skip
// by comparing every tracked attribute; a non-empty change set is the only
// update trigger. The builder projects records into create or update
// payloads; the immutable anchor and the initial credential exist only in
// creation payloads, enforced by construction.
//
// The orphan scanner is the second pass: it enumerates the whole directory
// through pagination, derives a candidate source key per account, and
// reports accounts with no matching source record, honoring the keep-list.
//
// # Failure model
//
// Source and directory connectivity failures are fatal before any record
// is processed. Per-record failures are logged and counted; the batch
// always runs to completion. A pagination failure truncates the orphan
// scan, which proceeds with the partial set and flags the report as
// possibly incomplete. Nothing is retried.
package reconcile
