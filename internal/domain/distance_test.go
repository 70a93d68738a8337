package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	vilnius = Coordinate{Lat: 54.6872, Lon: 25.2797}
	kaunas  = Coordinate{Lat: 54.8985, Lon: 23.9036}
)

func TestDistance_IdenticalCoordinatesIsExactlyZero(t *testing.T) {
	assert.Equal(t, 0.0, Distance(vilnius, vilnius, Kilometers))
	assert.Equal(t, 0.0, Distance(vilnius, vilnius, Miles))
}

func TestDistance_Symmetric(t *testing.T) {
	assert.Equal(t, Distance(vilnius, kaunas, Kilometers), Distance(kaunas, vilnius, Kilometers))
	assert.Equal(t, Distance(vilnius, kaunas, Miles), Distance(kaunas, vilnius, Miles))
}

func TestDistance_VilniusKaunas(t *testing.T) {
	km := Distance(vilnius, kaunas, Kilometers)
	// Geodesic distance between the two city centers is a bit over 90 km.
	assert.Greater(t, km, 85.0)
	assert.Less(t, km, 100.0)
}

func TestDistance_MilesConversion(t *testing.T) {
	km := Distance(vilnius, kaunas, Kilometers)
	mi := Distance(vilnius, kaunas, Miles)
	assert.Equal(t, round2(km*0.621371), mi)
}

func TestDistance_RoundedToTwoDecimals(t *testing.T) {
	km := Distance(vilnius, kaunas, Kilometers)
	assert.Equal(t, round2(km), km)
}
