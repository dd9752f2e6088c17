// Package session owns the single in-memory "current bill" for each bill
// variant. State is loaded once at startup, every mutation is saved back to
// storage and the allocation is recomputed from scratch after each change.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/storage"
)

// State is a bill document the session can own.
type State[T any] interface {
	storage.State[T]
	PaidAt(i int) bool
}

// InputFunc derives the allocation strategy and participants from a state.
type InputFunc[T any] func(state T) (calculator.Allocator, []calculator.Person)

// Snapshot is a consistent view of the state and everything computed from it.
type Snapshot[T any] struct {
	State      T
	Allocation calculator.Allocation
	Payments   calculator.PaymentSummary
}

// Session serialises access to one bill. There is exactly one writer.
type Session[T State[T]] struct {
	mu    sync.Mutex
	doc   *storage.Document[T]
	input InputFunc[T]
	state T
}

// New loads the stored document (or an empty default) and returns a session
// owning it.
func New[T State[T]](ctx context.Context, doc *storage.Document[T], input InputFunc[T]) *Session[T] {
	state, found := doc.Load(ctx)
	attrs := []any{"key", doc.Key(), "found", found}
	if saved, ok := doc.LastSaved(ctx); ok {
		attrs = append(attrs, "last_saved", humanize.Time(saved))
	}
	slog.Info("Session loaded", attrs...)
	return &Session[T]{doc: doc, input: input, state: state}
}

// Snapshot returns the current state and its allocation.
func (s *Session[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Update applies fn to a copy of the state. If fn fails the state is left
// untouched and the error is returned. Otherwise the new state replaces the
// old one and is saved; a failed save is logged but does not undo the change.
func (s *Session[T]) Update(ctx context.Context, fn func(state T) error) (Snapshot[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(next); err != nil {
		return Snapshot[T]{}, err
	}
	s.state = next

	if err := s.doc.Save(ctx, s.state); err != nil {
		slog.Error("Failed to persist session", "key", s.doc.Key(), "error", err)
	}
	return s.snapshotLocked(), nil
}

// Reset clears storage and replaces the state with an empty default. The
// in-memory state is always reset; if the stored document cannot be
// removed it is overwritten with the empty default instead.
func (s *Session[T]) Reset(ctx context.Context) Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.doc.Empty()
	if err := s.doc.Clear(ctx); err != nil {
		slog.Error("Failed to clear session", "key", s.doc.Key(), "error", err)
		if err := s.doc.Save(ctx, s.state); err != nil {
			slog.Error("Failed to persist reset session", "key", s.doc.Key(), "error", err)
		}
	}
	return s.snapshotLocked()
}

func (s *Session[T]) snapshotLocked() Snapshot[T] {
	state := s.state.Clone()
	allocator, people := s.input(state)
	alloc := allocator.Allocate(people)
	return Snapshot[T]{
		State:      state,
		Allocation: alloc,
		Payments:   calculator.Summarize(alloc.Shares, state.PaidAt),
	}
}
