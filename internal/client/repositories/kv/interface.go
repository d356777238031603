// Package kv is the durable local key/value store the client keeps its
// recordings, session and credential cache in.
package kv

import "context"

// Repository stores opaque values by key. Get returns common.ErrorNotFound
// for keys that were never set.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
