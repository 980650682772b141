package geo

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Well-known airport coordinates used across the tests.
var (
	jfk = Coordinate{Latitude: 40.6413, Longitude: -73.7781}
	lax = Coordinate{Latitude: 33.9416, Longitude: -118.4085}
	cgk = Coordinate{Latitude: -6.1256, Longitude: 106.6559}
	dps = Coordinate{Latitude: -8.7482, Longitude: 115.1672}
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Coordinate
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "zero distance for identical points",
			a:         jfk,
			b:         jfk,
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name:      "JFK to LAX transcontinental",
			a:         jfk,
			b:         lax,
			wantKm:    3974,
			tolerance: 50,
		},
		{
			name:      "Jakarta to Denpasar short haul",
			a:         cgk,
			b:         dps,
			wantKm:    990,
			tolerance: 30,
		},
		{
			name:      "antipodal-ish pair stays below half circumference",
			a:         Coordinate{Latitude: 0, Longitude: 0},
			b:         Coordinate{Latitude: 0, Longitude: 180},
			wantKm:    halfCircumferenceKm(),
			tolerance: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			assert.InDelta(t, tt.wantKm, got, tt.tolerance)
		})
	}
}

// halfCircumferenceKm returns half the Earth's circumference at the constant radius.
func halfCircumferenceKm() float64 {
	return EarthRadiusKm * math.Pi
}

func TestDistance_Symmetric(t *testing.T) {
	assert.InDelta(t, Distance(jfk, lax), Distance(lax, jfk), 0.0001)
}

func TestEstimateDuration_ZeroAtZero(t *testing.T) {
	assert.Equal(t, time.Duration(0), EstimateDuration(0))
	assert.Equal(t, time.Duration(0), EstimateDuration(-10))
}

func TestEstimateDuration_IncludesOverhead(t *testing.T) {
	// 800 km at 800 km/h cruise is one hour in the air plus the fixed
	// taxi/climb/descent overhead.
	got := EstimateDuration(800)
	assert.Equal(t, 90*time.Minute, got)
}

func TestEstimateDuration_Monotonic(t *testing.T) {
	distances := []float64{0, 1, 50, 100, 500, 1000, 5000, 15000}

	var prev time.Duration
	for _, d := range distances {
		got := EstimateDuration(d)
		assert.GreaterOrEqual(t, got, prev, "duration must not decrease at %.0f km", d)
		prev = got
	}
}
