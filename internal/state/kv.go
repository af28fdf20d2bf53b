// Package state provides client-side state persistence behind a small
// key-value port, so auth/session containers can be backed by a file in
// production and by a map in tests. Nothing in the codebase reaches for
// a global store; state objects are constructed once and injected.
package state

import "errors"

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("state: key not found")

// KV is the persistence port for client-side state.
type KV interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) (string, error)

	// Set stores the value under key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error
}
