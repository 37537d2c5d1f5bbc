package model

import (
	"math"
)

// earthRadiusMeters is the mean Earth radius used for great-circle distances.
const earthRadiusMeters = 6_371_000.0

// Location is a point on the Earth's surface in WGS-84 degrees.
// Value type, passed by value.
type Location struct {
	Latitude  float64
	Longitude float64
}

// NewLocation creates a Location from latitude and longitude in degrees.
func NewLocation(lat, lon float64) Location {
	return Location{Latitude: lat, Longitude: lon}
}

// Valid reports whether the coordinates are within [-90,90] x [-180,180].
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// DistanceTo returns the great-circle (haversine) distance to other in whole meters.
func (l Location) DistanceTo(other Location) int {
	lat1 := l.Latitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (other.Longitude - l.Longitude) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(earthRadiusMeters * c))
}
