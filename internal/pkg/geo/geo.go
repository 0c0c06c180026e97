// Package geo provides the great-circle distance calculation and geohash
// helpers used by the candidate matcher.
package geo

import (
	"math"

	"github.com/mechafix/dispatch/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula
const EarthRadiusKm = 6371.0

// Coordinate is a bare latitude/longitude pair
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// ValidCoordinate reports whether both components are finite and within
// the valid latitude/longitude ranges
func ValidCoordinate(c Coordinate) bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Haversine calculates the great-circle distance between two points in
// kilometers. Pure and symmetric; Haversine(a, a) == 0.
func Haversine(a, b Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// CoordinateFromLocation converts a Location model to a Coordinate
func CoordinateFromLocation(location models.Location) Coordinate {
	return Coordinate{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// NeighborCells returns the neighboring geohash cells of a given cell,
// used to prefilter candidates near cell boundaries
func NeighborCells(hash string) []string {
	return geohash.Neighbors(hash)
}
