// Command citydist resolves a configured list of Lithuanian place names to
// coordinates via Nominatim, prints a pairwise distance matrix, and exports
// it to CSV or Excel. Lookups are cached per run and every network request is
// followed by a mandatory delay to respect the shared API's rate limit.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/city-distance/internal/adapter/nominatim"
	"github.com/couchcryptid/city-distance/internal/cache"
	"github.com/couchcryptid/city-distance/internal/config"
	"github.com/couchcryptid/city-distance/internal/domain"
	"github.com/couchcryptid/city-distance/internal/export"
	"github.com/couchcryptid/city-distance/internal/geocode"
	"github.com/couchcryptid/city-distance/internal/matrix"
	"github.com/couchcryptid/city-distance/internal/observability"
)

func main() {
	// .env is optional; real deployments configure via the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	if err := run(context.Background(), cfg, logger, metrics); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) error {
	store := cache.New()
	client := nominatim.NewClient(cfg.NominatimURL, cfg.UserAgent, cfg.RequestTimeout, metrics, logger)
	resolver := geocode.NewResolver(client, store, cfg.RateLimitDelay, clockwork.NewRealClock(), metrics, logger)
	builder := matrix.NewBuilder(resolver, logger)

	logger.Info("resolving places", "count", len(cfg.Cities), "delay", cfg.RateLimitDelay)

	valid := make([]string, 0, len(cfg.Cities))
	for _, city := range cfg.Cities {
		name := domain.NormalizePlace(city)
		coord, ok := resolver.Resolve(ctx, name)
		if !ok {
			fmt.Printf("WARNING: no coordinates found for %s\n", name)
			continue
		}
		fmt.Printf("%s: (%.4f, %.4f)\n", name, coord.Lat, coord.Lon)
		valid = append(valid, name)
	}

	if len(valid) < 2 {
		fmt.Printf("Only %d place(s) resolved; need at least 2 for a distance matrix.\n", len(valid))
		return nil
	}

	m := builder.Build(ctx, valid)

	fmt.Println()
	fmt.Println("Distance Matrix (km):")
	printMatrix(m)

	if err := export.Write(m, cfg.ExportFile, export.Format(cfg.ExportFormat)); err != nil {
		return fmt.Errorf("export matrix: %w", err)
	}
	fmt.Printf("\nMatrix exported to %s\n", cfg.ExportFile)

	st := store.Statistics()
	fmt.Printf("Cache: %d entries (%d valid, %d invalid), %d hits, %d misses\n",
		st.Total, st.Valid, st.Invalid, st.Hits, st.Misses)

	// One illustrative cross distance in the alternate unit; both lookups
	// are cache hits at this point.
	first, last := m.Places[0], m.Places[len(m.Places)-1]
	a, okA := resolver.Resolve(ctx, first)
	b, okB := resolver.Resolve(ctx, last)
	if okA && okB {
		fmt.Printf("%s -> %s: %.2f miles\n", first, last, domain.Distance(a, b, domain.Miles))
	}

	return nil
}

// printMatrix renders the table with fixed-width columns, "-" for cells where
// an endpoint failed to resolve.
func printMatrix(m domain.DistanceMatrix) {
	fmt.Printf("%-12s", "")
	for _, p := range m.Places {
		fmt.Printf("%12s", p)
	}
	fmt.Println()

	for i, p := range m.Places {
		fmt.Printf("%-12s", p)
		for _, c := range m.Cells[i] {
			if c.Known {
				fmt.Printf("%12.2f", c.Km)
			} else {
				fmt.Printf("%12s", "-")
			}
		}
		fmt.Println()
	}
}
