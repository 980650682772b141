package usecase

import (
	"github.com/flightlog/flight-record-service/internal/domain"
)

// Airport fixtures spanning several timezones.
var (
	apJFK = &domain.Airport{
		ID: "ap-jfk", ICAO: "KJFK", IATA: "JFK", Name: "John F. Kennedy International",
		Latitude: 40.6413, Longitude: -73.7781, Timezone: "America/New_York",
	}
	apLAX = &domain.Airport{
		ID: "ap-lax", ICAO: "KLAX", IATA: "LAX", Name: "Los Angeles International",
		Latitude: 33.9416, Longitude: -118.4085, Timezone: "America/Los_Angeles",
	}
	apCGK = &domain.Airport{
		ID: "ap-cgk", ICAO: "WIII", IATA: "CGK", Name: "Soekarno-Hatta International",
		Latitude: -6.1256, Longitude: 106.6559, Timezone: "Asia/Jakarta",
	}
	apDPS = &domain.Airport{
		ID: "ap-dps", ICAO: "WADD", IATA: "DPS", Name: "I Gusti Ngurah Rai International",
		Latitude: -8.7482, Longitude: 115.1672, Timezone: "Asia/Makassar",
	}
)

// strPtr returns a pointer to the given string.
func strPtr(s string) *string { return &s }

// userSeat builds a seat input for a registered user.
func userSeat(userID string) domain.SeatInput {
	return domain.SeatInput{UserID: strPtr(userID)}
}

// basicLeg builds a valid leg input from JFK to LAX with an actual
// departure and one seat.
func basicLeg(userID string) domain.LegInput {
	return domain.LegInput{
		From:      apJFK,
		To:        apLAX,
		Departure: domain.DateTimePair{Date: "2024-01-01", Time: "10:00"},
		Seats:     []domain.SeatInput{userSeat(userID)},
	}
}
