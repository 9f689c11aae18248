// Package storage persists the session pair (bearer token + profile
// snapshot) in a local sqlite database, schema-managed by goose.
package storage

import "context"

// Keys under which the session pair is stored. The two entries are always
// written and erased together.
const (
	KeyToken   = "token"
	KeyProfile = "profile"
)

// Repository is a small key/value store for durable session material.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error

	// SaveSession writes the token/profile pair in one transaction.
	SaveSession(ctx context.Context, token string, profile []byte) error
	// ClearSession erases the token/profile pair in one transaction.
	ClearSession(ctx context.Context) error
}
