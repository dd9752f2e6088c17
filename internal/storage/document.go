package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// State is a persisted document type. T is a pointer type such as
// *models.Bill.
type State[T any] interface {
	Normalize()
	Clone() T
}

// Document reads and writes one JSON document stored under a fixed key.
type Document[T State[T]] struct {
	kv    KV
	key   string
	empty func() T
}

// NewDocument creates a Document for key. empty returns a fresh default
// value and is used whenever nothing usable is stored.
func NewDocument[T State[T]](kv KV, key string, empty func() T) *Document[T] {
	return &Document[T]{kv: kv, key: key, empty: empty}
}

// Key returns the storage key of the document.
func (d *Document[T]) Key() string {
	return d.key
}

// Empty returns a fresh default value without touching storage.
func (d *Document[T]) Empty() T {
	return d.empty()
}

// Load returns the stored document. It never fails: an absent key, a read
// error or malformed JSON all yield the empty default, and found is false.
func (d *Document[T]) Load(ctx context.Context) (value T, found bool) {
	raw, err := d.kv.Get(ctx, d.key)
	if errors.Is(err, ErrNotFound) {
		return d.empty(), false
	}
	if err != nil {
		slog.Error("Failed to read stored document", "key", d.key, "error", err)
		return d.empty(), false
	}

	value = d.empty()
	if err := json.Unmarshal(raw, value); err != nil {
		slog.Warn("Stored document is malformed, using defaults", "key", d.key, "error", err)
		return d.empty(), false
	}
	value.Normalize()
	return value, true
}

// LastSaved reports when the document was last written. ok is false when
// the store does not record write times or nothing is stored.
func (d *Document[T]) LastSaved(ctx context.Context) (t time.Time, ok bool) {
	ts, isTimestamped := d.kv.(Timestamped)
	if !isTimestamped {
		return time.Time{}, false
	}
	unix, err := ts.UpdatedAt(ctx, d.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Warn("Failed to read last save time", "key", d.key, "error", err)
		}
		return time.Time{}, false
	}
	return time.Unix(unix, 0), true
}

// Save writes the document.
func (d *Document[T]) Save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.key, err)
	}
	if err := d.kv.Put(ctx, d.key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", d.key, err)
	}
	return nil
}

// Clear removes the stored document.
func (d *Document[T]) Clear(ctx context.Context) error {
	if err := d.kv.Delete(ctx, d.key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", d.key, err)
	}
	return nil
}
