// Package credentials persists the bearer token and the cached user profile
// of the health assistant client.
//
// A Backend is the durable key-value capability provided by the host
// environment; the Store layers the token/user contract on top and absorbs
// storage faults so the UI keeps working when local storage misbehaves.
package credentials

import "context"

// Backend is a durable, per-installation key-value store.
// Get must return (nil, nil) for a missing key.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
