// Package listing holds the row collections behind the channel and program
// tables. Rows are appended one at a time as a refresh delivers them and
// cleared wholesale when the next refresh starts; every mutation is reported
// to the registered listeners so the views can update incrementally.
package listing

import "sync"

// ChangeKind identifies a row mutation.
type ChangeKind int

const (
	// RowsRemoved reports that rows First..Last (inclusive) were removed.
	RowsRemoved ChangeKind = iota
	// RowInserted reports that a row was inserted at First.
	RowInserted
)

// Change describes a mutation of a Store.
type Change struct {
	Kind  ChangeKind
	First int
	Last  int
}

// Store is an ordered, append-only row collection. It is safe for
// concurrent use; listeners are called after the store lock is released.
type Store[T any] struct {
	mu        sync.RWMutex
	rows      []T
	listeners []func(Change)
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{rows: make([]T, 0)}
}

// OnChange registers fn to be called after every mutation.
func (s *Store[T]) OnChange(fn func(Change)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Clear removes every row. Listeners are told about the removed range; an
// already empty store notifies nobody.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	n := len(s.rows)
	s.rows = make([]T, 0)
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	if n == 0 {
		return
	}
	notify(listeners, Change{Kind: RowsRemoved, First: 0, Last: n - 1})
}

// Append adds row at the end.
func (s *Store[T]) Append(row T) {
	s.mu.Lock()
	s.rows = append(s.rows, row)
	index := len(s.rows) - 1
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, Change{Kind: RowInserted, First: index, Last: index})
}

// Len returns the number of rows.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// At returns the row at index. ok is false when index is out of range.
func (s *Store[T]) At(index int) (row T, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.rows) {
		return row, false
	}
	return s.rows[index], true
}

// Rows returns a copy of all rows in order.
func (s *Store[T]) Rows() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.rows))
	copy(out, s.rows)
	return out
}

func (s *Store[T]) snapshotListeners() []func(Change) {
	if len(s.listeners) == 0 {
		return nil
	}
	out := make([]func(Change), len(s.listeners))
	copy(out, s.listeners)
	return out
}

func notify(listeners []func(Change), c Change) {
	for _, fn := range listeners {
		fn(c)
	}
}
