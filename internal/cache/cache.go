// Package cache holds the session-scoped coordinate cache. Keys are
// pre-normalized place names; the store itself never normalizes.
package cache

import (
	"sync"

	"github.com/couchcryptid/city-distance/internal/domain"
)

// State tags a cache entry as a successful or a confirmed-failed lookup.
type State int

const (
	// Resolved marks a place whose coordinates were found.
	Resolved State = iota
	// Invalid marks a place whose lookup failed (not found or request
	// error); kept so the same name is never retried within a session.
	Invalid
)

// Entry is the cached outcome of one lookup. Coord is meaningful only when
// State is Resolved.
type Entry struct {
	State State
	Coord domain.Coordinate
}

// Stats is a point-in-time snapshot of cache contents and traffic.
type Stats struct {
	Total   int
	Valid   int
	Invalid int
	Hits    int
	Misses  int
}

// Store maps normalized place names to lookup outcomes and counts hits and
// misses. Lookup is a pure read; the resolver that owns the lookup flow
// advances the counters explicitly via RecordHit/RecordMiss.
type Store struct {
	mu      sync.Mutex
	entries map[string]Entry
	hits    int
	misses  int
}

// New creates an empty Store.
func New() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// Lookup returns the entry for a normalized name, if present. It does not
// touch the hit/miss counters.
func (s *Store) Lookup(name string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[name]
	return e, ok
}

// Insert records the outcome of a lookup. Last write wins, so a repeated
// insert for the same name simply overwrites.
func (s *Store) Insert(name string, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[name] = e
}

// RecordHit advances the cumulative hit counter.
func (s *Store) RecordHit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hits++
}

// RecordMiss advances the cumulative miss counter.
func (s *Store) RecordMiss() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.misses++
}

// Clear empties all entries and resets both counters.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]Entry)
	s.hits = 0
	s.misses = 0
}

// Statistics scans the entries and returns a snapshot of the cache state.
func (s *Store) Statistics() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Total: len(s.entries), Hits: s.hits, Misses: s.misses}
	for _, e := range s.entries {
		if e.State == Resolved {
			st.Valid++
		} else {
			st.Invalid++
		}
	}
	return st
}
