package cache

import (
	"testing"

	"github.com/couchcryptid/city-distance/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStore_LookupMissing(t *testing.T) {
	s := New()

	_, ok := s.Lookup("Vilnius")
	assert.False(t, ok)
	assert.Equal(t, Stats{}, s.Statistics())
}

func TestStore_InsertAndLookup(t *testing.T) {
	s := New()
	coord := domain.Coordinate{Lat: 54.6872, Lon: 25.2797}

	s.Insert("Vilnius", Entry{State: Resolved, Coord: coord})
	s.Insert("Atlantis", Entry{State: Invalid})

	e, ok := s.Lookup("Vilnius")
	assert.True(t, ok)
	assert.Equal(t, Resolved, e.State)
	assert.Equal(t, coord, e.Coord)

	e, ok = s.Lookup("Atlantis")
	assert.True(t, ok)
	assert.Equal(t, Invalid, e.State)
}

func TestStore_InsertOverwrites(t *testing.T) {
	s := New()

	s.Insert("Kaunas", Entry{State: Invalid})
	s.Insert("Kaunas", Entry{State: Resolved, Coord: domain.Coordinate{Lat: 54.8985, Lon: 23.9036}})

	e, ok := s.Lookup("Kaunas")
	assert.True(t, ok)
	assert.Equal(t, Resolved, e.State)
	assert.Equal(t, 1, s.Statistics().Total, "overwrite should not add a second entry")
}

func TestStore_LookupDoesNotTouchCounters(t *testing.T) {
	s := New()
	s.Insert("Vilnius", Entry{State: Resolved})

	s.Lookup("Vilnius")
	s.Lookup("missing")

	st := s.Statistics()
	assert.Zero(t, st.Hits)
	assert.Zero(t, st.Misses)
}

func TestStore_Statistics(t *testing.T) {
	s := New()
	s.Insert("Vilnius", Entry{State: Resolved})
	s.Insert("Kaunas", Entry{State: Resolved})
	s.Insert("Atlantis", Entry{State: Invalid})
	s.RecordHit()
	s.RecordHit()
	s.RecordMiss()

	assert.Equal(t, Stats{Total: 3, Valid: 2, Invalid: 1, Hits: 2, Misses: 1}, s.Statistics())
}

func TestStore_Clear(t *testing.T) {
	s := New()
	s.Insert("Vilnius", Entry{State: Resolved})
	s.Insert("Atlantis", Entry{State: Invalid})
	s.RecordHit()
	s.RecordMiss()

	s.Clear()

	assert.Equal(t, Stats{}, s.Statistics())
	_, ok := s.Lookup("Vilnius")
	assert.False(t, ok)
}
