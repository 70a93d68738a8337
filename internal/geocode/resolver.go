// Package geocode combines the geocoding client with the session cache and
// the mandatory rate-limit pause.
package geocode

import (
	"context"
	"log/slog"
	"time"

	"github.com/couchcryptid/city-distance/internal/cache"
	"github.com/couchcryptid/city-distance/internal/domain"
	"github.com/couchcryptid/city-distance/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Resolver answers "where is this place" with at most one network request per
// distinct name per session. Failed lookups are negatively cached so they are
// never retried until the cache is cleared.
type Resolver struct {
	geocoder domain.Geocoder
	cache    *cache.Store
	delay    time.Duration
	clock    clockwork.Clock
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewResolver creates a Resolver. delay is the pause enforced after every
// network attempt; pass clockwork.NewRealClock() outside tests.
func NewResolver(g domain.Geocoder, store *cache.Store, delay time.Duration, clock clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) *Resolver {
	return &Resolver{
		geocoder: g,
		cache:    store,
		delay:    delay,
		clock:    clock,
		metrics:  metrics,
		logger:   logger,
	}
}

// Resolve returns the coordinates for a place name, normalizing it first.
// Cache hits return immediately; otherwise exactly one request is issued, the
// outcome (positive or negative) is cached, and the rate-limit pause runs
// before control returns. Network failures never escape: they become a
// negative cache entry and ok=false.
func (r *Resolver) Resolve(ctx context.Context, name string) (domain.Coordinate, bool) {
	key := domain.NormalizePlace(name)

	if e, ok := r.cache.Lookup(key); ok {
		r.cache.RecordHit()
		r.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return e.Coord, e.State == cache.Resolved
	}
	r.cache.RecordMiss()
	r.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	// The pause must fire on every exit path below, success and failure
	// alike, to keep a minimum spacing between outbound requests.
	defer r.pause(ctx)

	coord, found, err := r.geocoder.Search(ctx, key)
	if err != nil {
		// The shell prints the user-facing warning; this is diagnostics only.
		r.logger.Debug("geocode lookup failed", "place", key, "error", err)
		r.cache.Insert(key, cache.Entry{State: cache.Invalid})
		return domain.Coordinate{}, false
	}
	if !found {
		r.logger.Debug("no coordinates found", "place", key)
		r.cache.Insert(key, cache.Entry{State: cache.Invalid})
		return domain.Coordinate{}, false
	}

	r.cache.Insert(key, cache.Entry{State: cache.Resolved, Coord: coord})
	return coord, true
}

// Validate reports whether a place name resolves to coordinates, reusing the
// cache and only issuing a request when the name has never been looked up.
func (r *Resolver) Validate(ctx context.Context, name string) bool {
	key := domain.NormalizePlace(name)

	if e, ok := r.cache.Lookup(key); ok {
		r.cache.RecordHit()
		r.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return e.State == cache.Resolved
	}

	_, ok := r.Resolve(ctx, key)
	return ok
}

// pause blocks for the configured rate-limit delay, aborting early if the
// context is cancelled.
func (r *Resolver) pause(ctx context.Context) {
	if r.delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-r.clock.After(r.delay):
	}
}
