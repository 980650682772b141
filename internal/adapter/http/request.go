// Package http provides the HTTP handler layer for the flight record API.
// It handles request parsing, wire-shape normalization, response formatting
// and error mapping.
package http

import (
	"github.com/flightlog/flight-record-service/internal/domain"
	"github.com/flightlog/flight-record-service/internal/usecase"
)

// DateTimeDTO is a wall-clock date and time as entered, both parts optional.
type DateTimeDTO struct {
	// Date is the local calendar date in YYYY-MM-DD format
	Date string `json:"date,omitempty"`

	// Time is the local time of day in HH:MM format
	Time string `json:"time,omitempty"`
}

func (d *DateTimeDTO) toPair() domain.DateTimePair {
	if d == nil {
		return domain.DateTimePair{}
	}
	return domain.DateTimePair{Date: d.Date, Time: d.Time}
}

// SeatDTO is one traveller on a leg.
type SeatDTO struct {
	// UserID is the registered traveller, if any
	UserID *string `json:"userId,omitempty"`

	// GuestName is the free-text guest traveller, if any
	GuestName *string `json:"guestName,omitempty"`

	// SeatType is the optional physical seat position
	SeatType string `json:"seatType,omitempty"`

	// SeatNumber is the optional seat designator
	SeatNumber string `json:"seatNumber,omitempty"`

	// SeatClass is the optional cabin class
	SeatClass string `json:"seatClass,omitempty"`
}

// LegDTO is one leg of a flight as sent over the wire. Airports, airline
// and aircraft are referenced by ID.
type LegDTO struct {
	// From and To are airport IDs
	From string `json:"from"`
	To   string `json:"to"`

	Departure          *DateTimeDTO `json:"departure,omitempty"`
	Arrival            *DateTimeDTO `json:"arrival,omitempty"`
	DepartureScheduled *DateTimeDTO `json:"departureScheduled,omitempty"`
	ArrivalScheduled   *DateTimeDTO `json:"arrivalScheduled,omitempty"`
	Takeoff            *DateTimeDTO `json:"takeoff,omitempty"`
	Landing            *DateTimeDTO `json:"landing,omitempty"`

	DepartureTerminal string `json:"departureTerminal,omitempty"`
	DepartureGate     string `json:"departureGate,omitempty"`
	ArrivalTerminal   string `json:"arrivalTerminal,omitempty"`
	ArrivalGate       string `json:"arrivalGate,omitempty"`

	FlightNumber         string `json:"flightNumber,omitempty"`
	AircraftRegistration string `json:"aircraftRegistration,omitempty"`

	// AirlineID and AircraftID are optional reference IDs
	AirlineID  string `json:"airlineId,omitempty"`
	AircraftID string `json:"aircraftId,omitempty"`

	Seats []SeatDTO `json:"seats,omitempty"`
}

// SaveFlightRequest is the request body for creating or replacing a flight.
// Two wire shapes are accepted: the current legs-array form, and the legacy
// flat single-leg form where the leg fields sit at the top level. Both are
// normalized into the canonical ordered-legs shape before the core sees
// them; the core never branches on format version.
type SaveFlightRequest struct {
	// Reason is the optional trip reason (leisure, business, crew, other)
	Reason string `json:"reason,omitempty"`

	// Note is an optional free-text note
	Note string `json:"note,omitempty"`

	// Legs is the ordered list of legs (current shape)
	Legs []LegDTO `json:"legs,omitempty"`

	// Legacy flat single-leg shape. Ignored when Legs is present.
	LegDTO
}

// normalizedLegs returns the canonical leg list regardless of which wire
// shape the client used.
func (r *SaveFlightRequest) normalizedLegs() []LegDTO {
	if len(r.Legs) > 0 {
		return r.Legs
	}
	if r.isFlatShape() {
		return []LegDTO{r.LegDTO}
	}
	return nil
}

// isFlatShape reports whether the legacy top-level leg fields carry data.
func (r *SaveFlightRequest) isFlatShape() bool {
	return r.From != "" || r.To != "" ||
		r.Departure != nil || r.DepartureScheduled != nil ||
		r.Arrival != nil || r.ArrivalScheduled != nil ||
		r.Takeoff != nil || r.Landing != nil
}

// ImportRequest is the request body for a bulk import. Traveller names are
// resolved against UserMappings; unmatched names become guest seats.
type ImportRequest struct {
	// Flights is the batch to import
	Flights []usecase.ImportFlight `json:"flights"`

	// UserMappings maps traveller display names to user IDs
	UserMappings map[string]string `json:"userMappings,omitempty"`
}

func toSeatInputs(seats []SeatDTO) []domain.SeatInput {
	if len(seats) == 0 {
		return nil
	}
	out := make([]domain.SeatInput, 0, len(seats))
	for _, s := range seats {
		out = append(out, domain.SeatInput{
			UserID:     s.UserID,
			GuestName:  s.GuestName,
			SeatType:   domain.SeatType(s.SeatType),
			SeatNumber: s.SeatNumber,
			SeatClass:  domain.SeatClass(s.SeatClass),
		})
	}
	return out
}
