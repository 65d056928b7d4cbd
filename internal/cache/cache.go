// Package cache implements the mutation cache the resource services sit
// behind: list results are cached per resource key and marked stale after
// every successful mutation, so the next reader refetches from the
// database. Concurrent mutations to the same key are not ordered relative
// to each other; the last refetch wins.
package cache

import "sync"

// Well-known resource keys.
const (
	KeyPartners   = "partners"
	KeyPortfolio  = "portfolio"
	KeyHeroSlides = "hero-slides"
	KeyQuickLinks = "quick-links"
)

// Store holds one cached value per resource key.
type Store struct {
	mu      sync.Mutex
	entries map[string]any
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{entries: make(map[string]any)}
}

// Invalidate drops the cached value for key; the next Fetch reloads it.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// get/put keep the type-erased map private to this package; Fetch provides
// the typed surface.
func (s *Store) get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.entries[key]
	return value, ok
}

func (s *Store) put(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

// Fetch returns the cached value for key, loading and caching it when the
// entry is absent or stale. Load errors are returned verbatim and nothing
// is cached for them, so a failed read does not poison later reads.
func Fetch[T any](s *Store, key string, load func() (T, error)) (T, error) {
	if cached, ok := s.get(key); ok {
		if typed, ok := cached.(T); ok {
			return typed, nil
		}
	}

	value, err := load()
	if err != nil {
		var zero T
		return zero, err
	}

	s.put(key, value)
	return value, nil
}
