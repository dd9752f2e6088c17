// Package storage provides abstractions for persisting the current bill.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get when the key has never been written or
// has been deleted.
var ErrNotFound = errors.New("key not found")

// Fixed keys, one per bill variant.
const (
	BillKey     = "billSplitData"
	DiscountKey = "discountData"
)

// KV is the local device storage: a small string-keyed document store.
// This abstraction allows swapping storage backends (SQLite, memory)
// without changing the session layer.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Timestamped is implemented by stores that record when each key was last
// written.
type Timestamped interface {
	// UpdatedAt returns the Unix time of the last write to key, or
	// ErrNotFound.
	UpdatedAt(ctx context.Context, key string) (int64, error)
}
