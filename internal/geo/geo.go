// Package geo provides great-circle distance and flight duration estimation.
// The estimates are deliberately coarse: a constant-radius sphere and a
// single cruise-speed model are enough for logbook purposes.
package geo

import (
	"math"
	"time"
)

// EarthRadiusKm is the mean radius of the Earth in kilometers.
const EarthRadiusKm = 6371.0

// Duration model constants.
const (
	// cruiseSpeedKmh is the assumed average cruise speed.
	cruiseSpeedKmh = 800.0

	// groundOverhead covers taxi, climb and descent on any real flight.
	groundOverhead = 30 * time.Minute
)

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the great-circle distance between two coordinates in
// kilometers, computed with the haversine formula.
func Distance(a, b Coordinate) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// EstimateDuration estimates the block time of a flight over the given
// great-circle distance. The estimate is monotonic non-decreasing in
// distance and zero at zero distance: cruise time at a constant speed plus
// a fixed taxi/climb/descent overhead.
func EstimateDuration(distanceKm float64) time.Duration {
	if distanceKm <= 0 {
		return 0
	}

	cruise := time.Duration(distanceKm / cruiseSpeedKmh * float64(time.Hour))
	return cruise + groundOverhead
}

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
