// Package secret generates cryptographically strong initial credentials
// for newly created directory accounts.
//
// Passwords are only ever set on account creation; the sync never rotates
// or updates credentials on existing accounts.
package secret
