package domain

import "context"

// Geocoder resolves a place name to coordinates via an external provider.
type Geocoder interface {
	// Search looks up a single place name. found is false when the provider
	// returned zero results; err covers transport-level failures only.
	Search(ctx context.Context, name string) (coord Coordinate, found bool, err error)
}
