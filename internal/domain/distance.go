package domain

import (
	"math"

	"github.com/pymaxion/geographiclib-go/geodesic"
)

// Unit selects the measurement unit for reported distances.
type Unit int

const (
	Kilometers Unit = iota
	Miles
)

const milesPerKm = 0.621371

// Distance returns the geodesic distance between a and b on the WGS84
// ellipsoid, rounded to two decimals. Miles are converted from the rounded
// kilometer value and re-rounded, so the two units stay consistent.
func Distance(a, b Coordinate, unit Unit) float64 {
	if a == b {
		return 0
	}
	r := geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon)
	km := round2(r.S12 / 1000.0)
	if unit == Miles {
		return round2(km * milesPerKm)
	}
	return km
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
