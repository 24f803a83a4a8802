// Package source provides read-only access to the authoritative identity
// records held in the document store.
//
// Records are selected either by the eligible-for-sync flag or by an
// explicit allow-list of primary email addresses (SOURCE_TARGET_EMAILS).
// The document store is always authoritative: changes never flow from the
// directory back into it, and the sync never writes here.
//
// The Seeder is the one exception to the read-only rule; it generates
// random records for test environments and is only reachable through the
// seed command.
package source
