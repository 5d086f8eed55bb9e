package declared

import (
	"context"
	"slices"
	"time"

	"github.com/ers-returns/fileupload/pkg/cache"
)

// DefaultMemoryCapacity is the number of sessions a Memory store holds when
// no capacity is given.
const DefaultMemoryCapacity = 10000

// Memory is an in-process Store. It holds a bounded number of sessions and
// evicts the least recently used one when full.
type Memory struct {
	entries *cache.LRU[string, Declaration]
}

type memoryOptions struct {
	capacity int
	now      func() time.Time
}

// MemoryOption configures a Memory store.
type MemoryOption func(*memoryOptions)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(o *memoryOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithCapacity caps the number of sessions kept.
func WithCapacity(n int) MemoryOption {
	return func(o *memoryOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// NewMemory creates a Memory store. A ttl of zero keeps entries until they
// are evicted.
func NewMemory(ttl time.Duration, opts ...MemoryOption) *Memory {
	o := memoryOptions{capacity: DefaultMemoryCapacity, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Memory{
		entries: cache.NewLRU[string, Declaration](o.capacity, cache.WithTTL(ttl), cache.WithClock(o.now)),
	}
}

func (m *Memory) Declare(_ context.Context, sessionID string, d Declaration) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	m.entries.Put(sessionID, Declaration{Scheme: d.Scheme, Files: slices.Clone(d.Files)})
	return nil
}

func (m *Memory) Declared(_ context.Context, sessionID string) (Declaration, error) {
	if sessionID == "" {
		return Declaration{}, ErrEmptySessionID
	}
	d, ok := m.entries.Get(sessionID)
	if !ok {
		return Declaration{}, ErrNotDeclared
	}
	return Declaration{Scheme: d.Scheme, Files: slices.Clone(d.Files)}, nil
}

func (m *Memory) Clear(_ context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	m.entries.Remove(sessionID)
	return nil
}

// Len returns the number of sessions held, including expired ones not yet
// deleted.
func (m *Memory) Len() int {
	return m.entries.Len()
}
