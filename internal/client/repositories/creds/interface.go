// Package creds persists client-side credentials that must survive a process
// restart, most importantly the opaque bearer token attached to protected
// reads.
package creds

import "context"

// TokenKey is the well-known key the bearer token is stored under.
const TokenKey = "token"

// Repository is a durable key-value holder for credentials. Get returns an
// empty string for a missing key; callers that care about presence should
// check for "" rather than an error.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
