// Package collection provides the ordered, keyed, mutex-guarded collection
// behind every list page of the dashboard (crops, fields, seasons, diseases).
package collection

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrDuplicateKey is returned by Add when the key is already present.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound is returned by Remove when the key is absent.
	ErrNotFound = errors.New("not found")
)

// Collection keeps items in insertion order and indexes them by key.
// All methods are safe for concurrent use. Read methods return copies of the
// item slice; items themselves are values of T and are not deep-copied.
type Collection[K comparable, T any] struct {
	mu    sync.RWMutex
	keyOf func(T) K
	items []T
	index map[K]int
}

// New creates an empty collection keyed by keyOf.
func New[K comparable, T any](keyOf func(T) K) *Collection[K, T] {
	return &Collection[K, T]{
		keyOf: keyOf,
		index: make(map[K]int),
	}
}

// Seed creates a collection holding items in order. It fails on the first
// duplicate key.
func Seed[K comparable, T any](keyOf func(T) K, items ...T) (*Collection[K, T], error) {
	c := New(keyOf)
	for _, item := range items {
		if err := c.Add(item); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends item. A second item with the same key is rejected with
// ErrDuplicateKey.
func (c *Collection[K, T]) Add(item T) error {
	key := c.keyOf(item)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.index[key]; exists {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	c.index[key] = len(c.items)
	c.items = append(c.items, item)
	return nil
}

// Remove deletes the item with key and returns it.
func (c *Collection[K, T]) Remove(key K) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	removed := c.items[pos]
	c.items = slices.Delete(c.items, pos, pos+1)
	delete(c.index, key)
	for i := pos; i < len(c.items); i++ {
		c.index[c.keyOf(c.items[i])] = i
	}
	return removed, nil
}

// Update replaces the item stored under key with fn's result. The key of the
// returned item must not change.
func (c *Collection[K, T]) Update(key K, fn func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	pos, ok := c.index[key]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	updated := fn(c.items[pos])
	if c.keyOf(updated) != key {
		return zero, fmt.Errorf("update changed key %v", key)
	}
	c.items[pos] = updated
	return updated, nil
}

// Get returns the item with key.
func (c *Collection[K, T]) Get(key K) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.index[key]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[pos], true
}

// All returns every item in insertion order.
func (c *Collection[K, T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Filter returns the items for which keep reports true, in insertion order.
// A nil predicate keeps everything. The result is never nil.
func (c *Collection[K, T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of items.
func (c *Collection[K, T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
