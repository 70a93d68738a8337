// Package domain models Lithuanian place names, coordinates, and pairwise
// distances.
//
// # Place names
//
// Place names act as cache keys, so every entry point normalizes them the same
// way: surrounding whitespace is stripped and each word is title-cased
// ("  vilnius " and "VILNIUS" both become "Vilnius"). Normalization is
// idempotent and deliberately simple — no locale-aware special cases for
// hyphenated or apostrophe-bearing names.
//
// # Coordinates and distances
//
// Coordinates are WGS84 decimal-degree latitude/longitude pairs, taken from
// the first result the geocoding provider returns. Distances are inverse
// geodesics on the WGS84 ellipsoid (GeographicLib), reported in kilometers or
// miles (1 km = 0.621371 mi) and rounded to two decimals.
package domain
