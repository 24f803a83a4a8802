// Package directory is a client for the remote cloud identity directory
// (Microsoft Graph, users resource).
//
// Authentication uses the OAuth2 client-credential flow. The token is
// acquired eagerly at construction so credential problems abort a run
// before any record is touched.
//
// All calls are synchronous, carry a bounded timeout, and are never
// retried: a failed call is either fatal (construction) or handled as a
// per-record failure by the caller. Full-directory enumeration follows the
// @odata.nextLink continuation internally; consumers only see a stream of
// accounts.
package directory
