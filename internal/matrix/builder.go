// Package matrix assembles pairwise distance tables for lists of place names.
package matrix

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/city-distance/internal/domain"
)

// PlaceResolver resolves a place name to coordinates, absorbing lookup
// failures into ok=false.
type PlaceResolver interface {
	Resolve(ctx context.Context, name string) (domain.Coordinate, bool)
}

// Builder turns an ordered list of place names into a square distance matrix.
type Builder struct {
	resolver PlaceResolver
	logger   *slog.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(r PlaceResolver, logger *slog.Logger) *Builder {
	return &Builder{resolver: r, logger: logger}
}

// Build normalizes the input names (order and duplicates preserved), resolves
// each distinct name at most once, and fills the table. The diagonal is zero
// regardless of resolution status; off-diagonal cells are known only when
// both endpoints resolved.
func (b *Builder) Build(ctx context.Context, names []string) domain.DistanceMatrix {
	places := make([]string, len(names))
	for i, n := range names {
		places[i] = domain.NormalizePlace(n)
	}

	// Resolve distinct names in first-seen order so duplicates cost neither
	// a request nor a rate-limit pause.
	coords := make(map[string]domain.Coordinate, len(places))
	resolved := make(map[string]bool, len(places))
	for _, p := range places {
		if _, seen := resolved[p]; seen {
			continue
		}
		coord, ok := b.resolver.Resolve(ctx, p)
		resolved[p] = ok
		if ok {
			coords[p] = coord
		} else {
			b.logger.Warn("excluding unresolved place from distances", "place", p)
		}
	}

	cells := make([][]domain.Cell, len(places))
	for i, from := range places {
		cells[i] = make([]domain.Cell, len(places))
		for j, to := range places {
			switch {
			case i == j:
				cells[i][j] = domain.Cell{Km: 0, Known: true}
			case resolved[from] && resolved[to]:
				cells[i][j] = domain.Cell{
					Km:    domain.Distance(coords[from], coords[to], domain.Kilometers),
					Known: true,
				}
			}
		}
	}

	return domain.DistanceMatrix{Places: places, Cells: cells}
}
